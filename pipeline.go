package docprep

import (
	"github.com/docprep/docprep/chunk"
	"github.com/docprep/docprep/classify"
	"github.com/docprep/docprep/clean"
	"github.com/docprep/docprep/normalize"
	"github.com/docprep/docprep/structure"
)

// Pipeline provides a fluent interface for running the full preparation
// pipeline on one document. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method chaining.
type Pipeline struct {
	raw     string
	options processOptions
}

// Process starts a pipeline over raw document text. Configure it with the
// chain methods, then call Document to run it.
//
// Example:
//
//	doc, err := docprep.Process(raw).Document()
func Process(raw string) *Pipeline {
	return &Pipeline{
		raw:     raw,
		options: defaultProcessOptions(),
	}
}

// clone creates a copy of the Pipeline with a copy of its options. This
// ensures immutability: each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		raw:     p.raw,
		options: p.options.clone(),
	}
}

// WithCleaning sets the cleaning options.
func (p *Pipeline) WithCleaning(opts clean.Options) *Pipeline {
	next := p.clone()
	next.options.cleaning = opts
	return next
}

// WithChunking sets the chunking configuration.
func (p *Pipeline) WithChunking(config chunk.Config) *Pipeline {
	next := p.clone()
	next.options.chunking = config
	return next
}

// NormalizeUnicode enables NFC normalization of the raw text before
// cleaning, so decomposed accents compare and match like their composed
// forms.
func (p *Pipeline) NormalizeUnicode() *Pipeline {
	next := p.clone()
	next.options.normalizeUnicode = true
	return next
}

// UseTagger overrides the tagger used to label chunks, replacing the
// chunking strategy's default.
func (p *Pipeline) UseTagger(t classify.Tagger) *Pipeline {
	next := p.clone()
	next.options.tagger = t
	return next
}

// Document runs the pipeline: normalization (when enabled), cleaning,
// structure identification, chunking, and record shaping. The only error is
// an invalid chunking configuration.
func (p *Pipeline) Document() (*Document, error) {
	raw := p.raw
	if p.options.normalizeUnicode {
		raw = normalize.NFC(raw)
	}

	cleaned, stats := clean.Clean(raw, p.options.cleaning)

	chunker := chunk.NewChunkerWithConfig(p.options.chunking)
	if p.options.tagger != nil {
		chunker.UseTagger(p.options.tagger)
	}
	chunks, err := chunker.Chunk(cleaned)
	if err != nil {
		return nil, err
	}

	return &Document{
		CleanedText:   cleaned,
		CleaningStats: stats,
		Structure:     structure.Identify(cleaned),
		Chunks:        buildRecords(chunks),
	}, nil
}
