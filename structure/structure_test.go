package structure

import "testing"

func TestIdentify_Empty(t *testing.T) {
	st := Identify("")

	if st.HasTOC {
		t.Error("empty text should not have a TOC")
	}
	if len(st.Chapters)+len(st.Sections)+len(st.Subsections)+len(st.Figures)+len(st.Tables) != 0 {
		t.Errorf("empty text should yield empty structure: %+v", st)
	}
}

func TestIdentify_TOC(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"french", "Table des matières"},
		{"sommaire", "SOMMAIRE"},
		{"english", "Table of Contents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Identify(tt.line)
			if !st.HasTOC {
				t.Errorf("line %q should set HasTOC", tt.line)
			}
			// TOC lines are consumed by the TOC check, never recorded as
			// sections.
			if len(st.Sections) != 0 {
				t.Errorf("TOC line leaked into sections: %+v", st.Sections)
			}
		})
	}
}

func TestIdentify_Chapters(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"chapitre keyword", "Chapitre 2"},
		{"numbered", "3. Les principes de la communication."},
		{"roman", "IV. Applications pratiques."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Identify(tt.line)
			if len(st.Chapters) != 1 {
				t.Fatalf("expected 1 chapter for %q, got %+v", tt.line, st)
			}
			if st.Chapters[0].Title != tt.line {
				t.Errorf("title = %q, want %q", st.Chapters[0].Title, tt.line)
			}
		})
	}
}

func TestIdentify_SectionsAndSubsections(t *testing.T) {
	text := "2.1. La rétroaction positive.\nUn paragraphe ordinaire qui se termine par un point.\n2.1.1. Cas particuliers\n• Premier point important."

	st := Identify(text)

	if len(st.Sections) != 1 || st.Sections[0].Position != 0 {
		t.Errorf("sections = %+v, want one at line 0", st.Sections)
	}
	if len(st.Subsections) != 2 {
		t.Fatalf("subsections = %+v, want two", st.Subsections)
	}
	if st.Subsections[0].Position != 2 || st.Subsections[1].Position != 3 {
		t.Errorf("subsection positions = %d/%d, want 2/3",
			st.Subsections[0].Position, st.Subsections[1].Position)
	}
}

func TestIdentify_CapitalizedLineIsSection(t *testing.T) {
	st := Identify("Introduction")

	if len(st.Sections) != 1 {
		t.Fatalf("capitalized punctuation-free line should be a section: %+v", st)
	}
}

func TestIdentify_FiguresAndTables(t *testing.T) {
	text := "Figure 2. Le schéma de la boucle.\nTableau 1. Résumé des résultats.\nTable 4. Summary of results."

	st := Identify(text)

	if len(st.Figures) != 1 {
		t.Errorf("figures = %+v, want one", st.Figures)
	}
	if len(st.Tables) != 2 {
		t.Errorf("tables = %+v, want two", st.Tables)
	}
}

func TestIdentify_PriorityOrder(t *testing.T) {
	// A numbered chapter line also matches the section patterns; the
	// chapter check runs first and wins.
	st := Identify("1. Introduction générale.")

	if len(st.Chapters) != 1 {
		t.Fatalf("expected chapter match: %+v", st)
	}
	if len(st.Sections) != 0 {
		t.Errorf("line classified twice: %+v", st)
	}
}

func TestIdentify_LineIndexesIntoCleanedText(t *testing.T) {
	text := "Un préambule qui se termine ici.\n\nChapitre 1\n\nDu texte."

	st := Identify(text)

	if len(st.Chapters) != 1 {
		t.Fatalf("expected one chapter: %+v", st)
	}
	if st.Chapters[0].Position != 2 {
		t.Errorf("position = %d, want 2 (blank lines count)", st.Chapters[0].Position)
	}
}
