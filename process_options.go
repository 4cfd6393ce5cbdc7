package docprep

import (
	"github.com/docprep/docprep/chunk"
	"github.com/docprep/docprep/classify"
	"github.com/docprep/docprep/clean"
)

// processOptions holds the configuration accumulated by a Pipeline chain.
type processOptions struct {
	cleaning clean.Options
	chunking chunk.Config

	// Apply NFC normalization before cleaning.
	normalizeUnicode bool

	// Overrides the strategy's default tagger when non-nil.
	tagger classify.Tagger
}

// defaultProcessOptions returns the default pipeline configuration.
func defaultProcessOptions() processOptions {
	return processOptions{
		cleaning:         clean.DefaultOptions(),
		chunking:         chunk.DefaultConfig(),
		normalizeUnicode: false,
		tagger:           nil,
	}
}

// clone creates a copy of processOptions. The option structs contain no
// slices, so a value copy is a deep copy.
func (o processOptions) clone() processOptions {
	return processOptions{
		cleaning:         o.cleaning,
		chunking:         o.chunking,
		normalizeUnicode: o.normalizeUnicode,
		tagger:           o.tagger,
	}
}
