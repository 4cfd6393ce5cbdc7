// Package chunk splits cleaned document text into overlapping chunks for
// vector indexing.
//
// Three strategies are available:
//
//   - [StrategyFixed] walks a character cursor, snapping each cut point
//     backward to the nearest sentence end or paragraph break.
//   - [StrategyParagraph] accumulates blank-line-delimited paragraphs into a
//     buffer, flushing when the target size is reached and carrying a
//     character overlap into the next buffer.
//   - [StrategySemantic] (the default) adds a heading heuristic to the
//     paragraph accumulation: a short paragraph with no terminal punctuation
//     always starts a new chunk. Semantic chunks are labeled by a
//     content-derived tagger; the other strategies keep their historical
//     round-robin placeholder labels.
//
// All strategies are pure: the same text and configuration always yield the
// same chunk sequence, and chunking terminates for any input. Configuration
// misuse is rejected by [Config.Validate] before any strategy runs.
//
// Basic usage:
//
//	chunker := chunk.NewChunker()
//	chunks, err := chunker.Chunk(cleanedText)
//
// The package also provides per-corpus statistics ([Stats]), token counting
// ([TokenCounter]), and chunk export for downstream indexers ([Export]).
package chunk
