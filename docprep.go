// Package docprep prepares raw document text for retrieval pipelines: it
// cleans extraction artifacts, identifies structural markers, and splits the
// result into tagged chunks.
//
// Basic usage:
//
//	doc, err := docprep.Process(raw).Document()
//	if err != nil {
//	    // handle error
//	}
//	for _, record := range doc.Chunks {
//	    fmt.Println(record.ID, record.Metadata.Section)
//	}
//
// With options:
//
//	opts := clean.DefaultOptions()
//	opts.RemoveHeaders = false
//
//	config := chunk.DefaultConfig()
//	config.Strategy = chunk.StrategyParagraph
//
//	doc, err := docprep.Process(raw).
//	    NormalizeUnicode().
//	    WithCleaning(opts).
//	    WithChunking(config).
//	    Document()
//
// The cleaning, structure, classification, and chunking stages are also
// available directly from the clean, structure, classify, and chunk packages.
package docprep

import (
	"github.com/docprep/docprep/chunk"
	"github.com/docprep/docprep/clean"
	"github.com/docprep/docprep/structure"
)

// CleanAndStructure cleans raw text and identifies structural markers in the
// cleaned result. It is the first half of the pipeline, usable on its own
// when chunking is handled elsewhere.
func CleanAndStructure(raw string, opts clean.Options) (string, clean.Stats, structure.Structure) {
	cleaned, stats := clean.Clean(raw, opts)
	return cleaned, stats, structure.Identify(cleaned)
}

// Chunk splits cleaned text into chunks using the given configuration. It is
// the second half of the pipeline; the input is normally the cleaned text
// returned by CleanAndStructure.
func Chunk(cleaned string, cfg chunk.Config) ([]chunk.Chunk, error) {
	return chunk.NewChunkerWithConfig(cfg).Chunk(cleaned)
}
