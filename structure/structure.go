// Package structure identifies the logical structure of cleaned document
// text: table of contents, chapters, sections, subsections, figures, and
// tables. It is a single stateless pass over lines; no chunking or cleaning
// concerns leak in here.
package structure

import (
	"regexp"
	"strings"
)

// Marker records one structural element: the raw line that matched and its
// line index into the cleaned text.
type Marker struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Structure describes the logical structure of a document. HasTOC is always
// serialized; empty categories are omitted.
type Structure struct {
	HasTOC      bool     `json:"has_toc"`
	Chapters    []Marker `json:"chapters,omitempty"`
	Sections    []Marker `json:"sections,omitempty"`
	Subsections []Marker `json:"subsections,omitempty"`
	Figures     []Marker `json:"figures,omitempty"`
	Tables      []Marker `json:"tables,omitempty"`
}

// Keyword matching is case-insensitive; the capital-letter classes are not,
// since an initial capital is what distinguishes a title line from prose.
var (
	tocRe = regexp.MustCompile(`(?i)^(table\s+des\s+matières|sommaire|table\s+of\s+contents)`)

	chapterRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^chapitre\s+\d+`),
		regexp.MustCompile(`^\d+\.\s+[A-Z]`),
		regexp.MustCompile(`^[IVX]+\.\s+[A-Z]`),
	}

	sectionRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\.\d+\.\s+[A-Z]`),
		regexp.MustCompile(`^[A-Z][^.!?]*$`),
	}

	subsectionRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\.\d+\.\d+\.\s+`),
		regexp.MustCompile(`^•\s+[A-Z]`),
	}

	figureRe = regexp.MustCompile(`(?i)^(figure|fig\.)\s+\d+`)
	tableRe  = regexp.MustCompile(`(?i)^(tableau|table)\s+\d+`)
)

// Identify scans cleaned text line by line and returns its structure.
// Each line is tested against the categories in fixed priority order; the
// first match wins and later categories are not re-tested for that line.
// The worst case is an all-empty Structure; there are no failure modes.
func Identify(text string) Structure {
	var st Structure

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if tocRe.MatchString(line) {
			st.HasTOC = true
			continue
		}

		if matchAny(chapterRes, line) {
			st.Chapters = append(st.Chapters, Marker{Title: line, Position: i})
			continue
		}

		if matchAny(sectionRes, line) {
			st.Sections = append(st.Sections, Marker{Title: line, Position: i})
			continue
		}

		if matchAny(subsectionRes, line) {
			st.Subsections = append(st.Subsections, Marker{Title: line, Position: i})
			continue
		}

		if figureRe.MatchString(line) {
			st.Figures = append(st.Figures, Marker{Title: line, Position: i})
			continue
		}

		if tableRe.MatchString(line) {
			st.Tables = append(st.Tables, Marker{Title: line, Position: i})
		}
	}

	return st
}

func matchAny(patterns []*regexp.Regexp, line string) bool {
	for _, re := range patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
