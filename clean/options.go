package clean

// Options controls which cleaning passes run. Each flag enables one pass;
// all passes are independent and all are enabled by default.
type Options struct {
	// RemoveHeaders strips running headers from the top of each page.
	RemoveHeaders bool

	// RemoveFooters strips running footers from the bottom of each page.
	RemoveFooters bool

	// RemovePageNumbers drops digit-only lines and trailing digit runs.
	RemovePageNumbers bool

	// RemoveExtraWhitespace collapses blank-line runs and space runs and
	// trims per-line leading/trailing spaces.
	RemoveExtraWhitespace bool

	// NormalizeQuotes maps typographic quote variants to ASCII quotes.
	NormalizeQuotes bool

	// FixHyphenation removes the trailing hyphen from words broken across
	// line boundaries.
	FixHyphenation bool
}

// DefaultOptions returns Options with every cleaning pass enabled.
func DefaultOptions() Options {
	return Options{
		RemoveHeaders:         true,
		RemoveFooters:         true,
		RemovePageNumbers:     true,
		RemoveExtraWhitespace: true,
		NormalizeQuotes:       true,
		FixHyphenation:        true,
	}
}
