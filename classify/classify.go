// Package classify assigns section labels and key-concept tags to chunk
// content. The shipped implementations are deterministic keyword lookups,
// not NLP: [KeywordTagger] matches fixed term tables against chunk text and
// [PositionalTagger] cycles through placeholder labels by chunk index. Both
// satisfy [Tagger], so a real classifier backend can replace them without
// touching the chunking state machine.
package classify

import "strings"

// Section labels returned when no keyword group matches.
const (
	// SectionUnspecified is returned for empty input.
	SectionUnspecified = "Section non spécifiée"

	// SectionMain is returned when content matches no keyword group.
	SectionMain = "Contenu principal"
)

// maxConcepts caps the number of key concepts reported for one chunk.
const maxConcepts = 3

// Tagger labels chunk content. Implementations may use the chunk index, the
// paragraphs that built the chunk, or both; unused arguments are ignored.
type Tagger interface {
	// Section returns a section label for the chunk at the given index,
	// built from the given paragraphs.
	Section(index int, paragraphs []string) string

	// Concepts returns up to three key-concept tags for the chunk text.
	// It may return nil when the implementation does not tag concepts.
	Concepts(text string) []string
}

// SectionRule maps a section label to the terms that select it.
type SectionRule struct {
	Label string
	Terms []string
}

// ConceptRule maps a concept name to its surface terms.
type ConceptRule struct {
	Concept string
	Terms   []string
}

// DefaultSectionRules returns the built-in section keyword groups, in
// priority order: the first group with any matching term wins.
func DefaultSectionRules() []SectionRule {
	return []SectionRule{
		{Label: "Introduction", Terms: []string{"introduction", "contexte", "préambule", "avant-propos"}},
		{Label: "Méthodologie", Terms: []string{"méthode", "approche", "démarche", "processus"}},
		{Label: "Résultats et Discussion", Terms: []string{"résultat", "analyse", "observation", "discussion"}},
		{Label: "Application clinique", Terms: []string{"application", "cas", "exemple", "pratique", "clinique"}},
		{Label: "Conclusion", Terms: []string{"conclusion", "synthèse", "perspective", "recommandation"}},
	}
}

// DefaultConceptRules returns the built-in concept table, in declaration
// order. Concepts are reported in this order, not ranked by relevance.
func DefaultConceptRules() []ConceptRule {
	return []ConceptRule{
		{Concept: "communication circulaire", Terms: []string{"communication", "circulaire", "circularité"}},
		{Concept: "feedback", Terms: []string{"feedback", "rétroaction", "boucle"}},
		{Concept: "MRI", Terms: []string{"MRI", "mental research institute", "palo alto"}},
		{Concept: "homéostasie", Terms: []string{"homéostasie", "équilibre", "stabilité"}},
		{Concept: "double contrainte", Terms: []string{"double contrainte", "double bind", "paradoxe"}},
		{Concept: "recadrage", Terms: []string{"recadrage", "reframing", "nouvelle perspective"}},
		{Concept: "prescription du symptôme", Terms: []string{"prescription", "symptôme", "paradoxale"}},
	}
}

// DefaultConcepts returns the fallback concept triple reported when no
// table entry matches.
func DefaultConcepts() []string {
	return []string{"communication circulaire", "feedback", "MRI"}
}

// KeywordTagger derives section labels and key concepts from chunk content
// using fixed term tables.
type KeywordTagger struct {
	sections []SectionRule
	concepts []ConceptRule
	fallback []string
}

// NewKeywordTagger returns a KeywordTagger using the default French tables.
func NewKeywordTagger() *KeywordTagger {
	return NewKeywordTaggerWithRules(DefaultSectionRules(), DefaultConceptRules(), DefaultConcepts())
}

// NewKeywordTaggerWithRules returns a KeywordTagger with custom tables.
// The fallback concepts are returned when no concept rule matches; pass nil
// to report no concepts in that case.
func NewKeywordTaggerWithRules(sections []SectionRule, concepts []ConceptRule, fallback []string) *KeywordTagger {
	return &KeywordTagger{
		sections: sections,
		concepts: concepts,
		fallback: fallback,
	}
}

// Section tests the lower-cased concatenation of paragraphs against the
// section groups in priority order. Empty input yields SectionUnspecified;
// no match yields SectionMain. The chunk index is ignored.
func (t *KeywordTagger) Section(_ int, paragraphs []string) string {
	if len(paragraphs) == 0 {
		return SectionUnspecified
	}

	text := strings.ToLower(strings.Join(paragraphs, " "))
	for _, rule := range t.sections {
		for _, term := range rule.Terms {
			if strings.Contains(text, strings.ToLower(term)) {
				return rule.Label
			}
		}
	}
	return SectionMain
}

// Concepts returns up to three concepts whose terms appear in the
// lower-cased text, in table order. When nothing matches, the fallback
// triple is returned.
func (t *KeywordTagger) Concepts(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, rule := range t.concepts {
		for _, term := range rule.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				found = append(found, rule.Concept)
				break
			}
		}
	}

	if len(found) == 0 && len(t.fallback) > 0 {
		found = append(found, t.fallback...)
	}
	if len(found) > maxConcepts {
		found = found[:maxConcepts]
	}
	return found
}

// PositionalTagger assigns section labels by cycling through a fixed label
// list on the chunk index. It is a display placeholder, not content-derived;
// the fixed and paragraph chunking strategies use it for compatibility with
// their historical output.
type PositionalTagger struct {
	labels []string
}

// NewPositionalTagger returns a PositionalTagger with the historical label
// rotation.
func NewPositionalTagger() *PositionalTagger {
	return &PositionalTagger{
		labels: []string{"Introduction", "Méthodologie", "Application clinique"},
	}
}

// Section returns the label for the given chunk index; paragraphs are
// ignored.
func (t *PositionalTagger) Section(index int, _ []string) string {
	return t.labels[index%len(t.labels)]
}

// Concepts always returns nil: positional tagging has no content to draw
// concepts from.
func (t *PositionalTagger) Concepts(string) []string {
	return nil
}
