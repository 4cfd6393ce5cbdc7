package classify

import (
	"reflect"
	"testing"
)

func TestKeywordTagger_Section(t *testing.T) {
	tagger := NewKeywordTagger()

	tests := []struct {
		name       string
		paragraphs []string
		want       string
	}{
		{"empty input", nil, SectionUnspecified},
		{"introduction", []string{"Cette introduction présente le sujet."}, "Introduction"},
		{"methodology", []string{"La méthode retenue est décrite ici."}, "Méthodologie"},
		{"results", []string{"Les résultats de l'analyse sont clairs."}, "Résultats et Discussion"},
		{"application", []string{"Un exemple en pratique clinique."}, "Application clinique"},
		{"conclusion", []string{"En conclusion, la synthèse suit."}, "Conclusion"},
		{"no match", []string{"Du texte parfaitement neutre."}, SectionMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tagger.Section(0, tt.paragraphs); got != tt.want {
				t.Errorf("Section(%v) = %q, want %q", tt.paragraphs, got, tt.want)
			}
		})
	}
}

func TestKeywordTagger_SectionPriority(t *testing.T) {
	tagger := NewKeywordTagger()

	// Both introduction and conclusion terms present: the earlier group in
	// priority order wins.
	got := tagger.Section(0, []string{"Le contexte et la conclusion se croisent."})
	if got != "Introduction" {
		t.Errorf("Section = %q, want Introduction (first matching group wins)", got)
	}
}

func TestKeywordTagger_Concepts(t *testing.T) {
	tagger := NewKeywordTagger()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			// Two table hits yield exactly two concepts, no padding to 3.
			name: "two matches, no padding",
			text: "Le feedback observé au MRI reste un résultat central.",
			want: []string{"feedback", "MRI"},
		},
		{
			name: "case-insensitive term",
			text: "les travaux du mental research institute",
			want: []string{"MRI"},
		},
		{
			name: "fallback triple when nothing matches",
			text: "Du texte sans aucun terme du tableau.",
			want: []string{"communication circulaire", "feedback", "MRI"},
		},
		{
			name: "truncated to three in table order",
			text: "communication, feedback, palo alto, équilibre et paradoxe",
			want: []string{"communication circulaire", "feedback", "MRI"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tagger.Concepts(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Concepts(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordTagger_CustomRules(t *testing.T) {
	tagger := NewKeywordTaggerWithRules(
		[]SectionRule{{Label: "Corpus", Terms: []string{"corpus"}}},
		[]ConceptRule{{Concept: "indexing", Terms: []string{"index"}}},
		nil,
	)

	if got := tagger.Section(0, []string{"un corpus annoté"}); got != "Corpus" {
		t.Errorf("Section = %q, want Corpus", got)
	}
	if got := tagger.Concepts("sans correspondance"); got != nil {
		t.Errorf("Concepts with nil fallback = %v, want nil", got)
	}
}

func TestPositionalTagger(t *testing.T) {
	tagger := NewPositionalTagger()

	wantByIndex := []string{
		"Introduction", "Méthodologie", "Application clinique",
		"Introduction", "Méthodologie", "Application clinique",
	}
	for i, want := range wantByIndex {
		if got := tagger.Section(i, nil); got != want {
			t.Errorf("Section(%d) = %q, want %q", i, got, want)
		}
	}

	if got := tagger.Concepts("any text"); got != nil {
		t.Errorf("Concepts = %v, want nil", got)
	}
}
