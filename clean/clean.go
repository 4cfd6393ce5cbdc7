package clean

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docprep/docprep/normalize"
)

// Removed-element categories reported in Stats.RemovedElements.
const (
	ElementHeaders         = "headers"
	ElementFooters         = "footers"
	ElementPageNumbers     = "page_numbers"
	ElementHyphenation     = "hyphenation"
	ElementQuotes          = "non_standard_quotes"
	ElementExtraWhitespace = "extra_whitespace"
)

// shortLineMax is the length below which a candidate header/footer line is
// considered "short". Windows made entirely of short lines are treated as
// page furniture even without a keyword match.
const shortLineMax = 60

// Stats describes what Clean removed and by how much it shrank the text.
type Stats struct {
	// OriginalLength is the input length in bytes, after newline
	// normalization.
	OriginalLength int `json:"original_length"`

	// CleanedLength is the output length in bytes.
	CleanedLength int `json:"cleaned_length"`

	// ReductionPercentage is (original-cleaned)/original*100, rounded to
	// two decimals. Zero when the input is empty.
	ReductionPercentage float64 `json:"reduction_percentage"`

	// RemovedElements lists the categories that triggered, deduplicated in
	// first-trigger order.
	RemovedElements []string `json:"removed_elements"`
}

var (
	// Page separators: form feed, a bare page number between blank lines,
	// or a -N- style centered page marker.
	pageSplitRe = regexp.MustCompile(`\f|\n\s*\n\s*\d+\s*\n|\n\s*-\s*\d+\s*-\s*\n`)

	// Fallback separator: a run of three or more blank lines.
	blankRunSplitRe = regexp.MustCompile(`\n\s*\n\s*\n\s*\n`)

	headerRe = regexp.MustCompile(`(?i)(page|chapitre|\d+/\d+|confidential|draft)`)
	footerRe = regexp.MustCompile(`(?i)(page|©|copyright|tous droits|www|http|@|\d+$|\d+/\d+)`)

	pageNumberLineRe = regexp.MustCompile(`^\s*\d+\s*$`)
	trailingNumberRe = regexp.MustCompile(`\s+\d+\s*$`)

	multiBlankRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	spaceRunRe   = regexp.MustCompile(` +`)
	edgeSpaceRe  = regexp.MustCompile(`(?m)^ +| +$`)
)

// quoteReplacer maps curly, low, and angled quote variants to ASCII quotes.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"„", `"`, // low double
	"‟", `"`, // reversed double
	"«", `"`, // left guillemet
	"»", `"`, // right guillemet
	"‘", "'", // left single
	"’", "'", // right single
	"‛", "'", // reversed single
)

// Clean strips page furniture from text according to opts and reports what
// it removed. It is total over any string input, including the empty string.
func Clean(text string, opts Options) (string, Stats) {
	text = normalize.Newlines(text)

	stats := Stats{OriginalLength: len(text)}
	var removed []string

	pages := pageSplitRe.Split(text, -1)
	if len(pages) <= 1 {
		pages = blankRunSplitRe.Split(text, -1)
	}

	cleanedPages := make([]string, 0, len(pages))

	for _, page := range pages {
		lines := strings.Split(page, "\n")
		pageLines := len(lines)

		// Pages under three lines are separator noise, not content.
		if pageLines < 3 {
			continue
		}

		headerWindow := minInt(2, pageLines/10)
		footerWindow := minInt(3, pageLines/10)

		if opts.RemoveHeaders && pageLines > headerWindow {
			candidate := strings.Join(lines[:headerWindow], "\n")
			if headerRe.MatchString(candidate) || allShort(lines[:headerWindow]) {
				lines = lines[headerWindow:]
				removed = append(removed, ElementHeaders)
			}
		}

		if opts.RemoveFooters && pageLines > footerWindow {
			candidate := strings.Join(lines[len(lines)-footerWindow:], "\n")
			if footerRe.MatchString(candidate) || allShort(lines[len(lines)-footerWindow:]) {
				lines = lines[:len(lines)-footerWindow]
				removed = append(removed, ElementFooters)
			}
		}

		if opts.RemovePageNumbers {
			kept := lines[:0]
			for _, line := range lines {
				if pageNumberLineRe.MatchString(line) {
					continue
				}
				kept = append(kept, trailingNumberRe.ReplaceAllString(line, ""))
			}
			lines = kept
			// Recorded whenever the pass runs, matched or not.
			removed = append(removed, ElementPageNumbers)
		}

		if opts.FixHyphenation {
			for i := 0; i < len(lines)-1; i++ {
				if strings.HasSuffix(lines[i], "-") && startsLower(lines[i+1]) {
					// Strip the hyphen only; the continuation line stays in
					// place and is joined at render time.
					lines[i] = strings.TrimSuffix(lines[i], "-")
				}
			}
			removed = append(removed, ElementHyphenation)
		}

		if opts.NormalizeQuotes {
			for i := range lines {
				lines[i] = quoteReplacer.Replace(lines[i])
			}
			removed = append(removed, ElementQuotes)
		}

		cleanedPages = append(cleanedPages, strings.Join(lines, "\n"))
	}

	cleaned := strings.Join(cleanedPages, "\n\n")

	if opts.RemoveExtraWhitespace {
		cleaned = multiBlankRe.ReplaceAllString(cleaned, "\n\n")
		cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
		cleaned = edgeSpaceRe.ReplaceAllString(cleaned, "")
		removed = append(removed, ElementExtraWhitespace)
	}

	stats.CleanedLength = len(cleaned)
	if stats.OriginalLength > 0 {
		ratio := float64(stats.OriginalLength-stats.CleanedLength) / float64(stats.OriginalLength) * 100
		stats.ReductionPercentage = math.Round(ratio*100) / 100
	}
	stats.RemovedElements = dedupe(removed)

	return cleaned, stats
}

// allShort reports whether every line is under shortLineMax characters.
// It is vacuously true for an empty window.
func allShort(lines []string) bool {
	for _, line := range lines {
		if utf8.RuneCountInString(line) >= shortLineMax {
			return false
		}
	}
	return true
}

// startsLower reports whether the first rune of s is a lowercase letter.
func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// dedupe removes duplicates, keeping first-occurrence order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
