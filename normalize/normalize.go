// Package normalize provides the text normalization shared by every stage of
// the pipeline: line-ending normalization and optional Unicode composition.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Newlines converts all CRLF sequences to LF. It is pure, total over any
// string input, and idempotent.
func Newlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// NFC applies Unicode normalization form C. Extracted text for accented
// languages frequently arrives with decomposed code points; composing them
// keeps keyword matching and length accounting stable across extractors.
func NFC(s string) string {
	return norm.NFC.String(s)
}
