// Package clean removes page furniture from extracted document text.
//
// Extracted text commonly carries artifacts of the physical page: running
// headers and footers, bare page numbers, words hyphenated across line
// breaks, typographic quote variants, and uneven blank-line runs. The
// [Clean] function strips these according to [Options] and reports what it
// did in [Stats].
//
// The engine is total: it never fails, for any input including the empty
// string. It works page by page, using form feeds or common page-number
// separator patterns to find page boundaries, falling back to runs of blank
// lines when no explicit separators exist.
//
// Basic usage:
//
//	cleaned, stats := clean.Clean(raw, clean.DefaultOptions())
//	fmt.Printf("reduced by %.2f%%\n", stats.ReductionPercentage)
package clean
