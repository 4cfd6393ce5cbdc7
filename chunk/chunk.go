package chunk

import (
	"fmt"
	"regexp"

	"github.com/docprep/docprep/classify"
	"github.com/docprep/docprep/normalize"
)

// approxPageSize is the assumed characters-per-page used to derive page
// ranges from character offsets. Real page breaks are known to the cleaning
// engine but are not threaded through to chunking; this approximation is the
// documented placeholder.
const approxPageSize = 2000

// headingMaxLen is the length under which a punctuation-free paragraph is
// treated as a heading by the semantic strategy.
const headingMaxLen = 100

// Strategy selects the chunking algorithm.
type Strategy int

const (
	// StrategySemantic accumulates paragraphs with heading detection and
	// content-derived section labels. It is the default.
	StrategySemantic Strategy = iota
	// StrategyFixed cuts fixed-size spans with sentence-boundary snapping.
	StrategyFixed
	// StrategyParagraph accumulates whole paragraphs up to the target size.
	StrategyParagraph
)

// String returns the strategy name as used in configuration.
func (s Strategy) String() string {
	switch s {
	case StrategySemantic:
		return "semantic"
	case StrategyFixed:
		return "fixed"
	case StrategyParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "semantic":
		return StrategySemantic, nil
	case "fixed":
		return StrategyFixed, nil
	case "paragraph":
		return StrategyParagraph, nil
	default:
		return 0, fmt.Errorf("unknown chunking strategy %q", name)
	}
}

// Config holds chunking configuration.
type Config struct {
	// Strategy selects the chunking algorithm.
	Strategy Strategy

	// ChunkSize is the target chunk length in characters.
	// Default: 800
	ChunkSize int

	// ChunkOverlap is the number of trailing characters carried into the
	// next chunk. Default: 100
	ChunkOverlap int

	// MinChunkSize is the minimum chunk length; smaller spans are dropped.
	// Default: 200
	MinChunkSize int

	// RespectBoundaries enables heading detection in the semantic strategy.
	// Default: true
	RespectBoundaries bool
}

// DefaultConfig returns the default chunking configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:          StrategySemantic,
		ChunkSize:         800,
		ChunkOverlap:      100,
		MinChunkSize:      200,
		RespectBoundaries: true,
	}
}

// Validate rejects configuration the strategies are not defined for. The
// strategies themselves are total; this is the only error surface of the
// package.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategySemantic, StrategyFixed, StrategyParagraph:
	default:
		return fmt.Errorf("unknown chunking strategy %d", c.Strategy)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.MinChunkSize <= 0 {
		return fmt.Errorf("min chunk size must be positive, got %d", c.MinChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk overlap must be non-negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", c.ChunkOverlap, c.ChunkSize)
	}
	return nil
}

// Chunk is one span of cleaned text plus its retrieval metadata.
type Chunk struct {
	// Text is the chunk content.
	Text string `json:"text"`

	// PageRange is "start-end", 1-indexed, approximated from character
	// offsets at approxPageSize characters per page.
	PageRange string `json:"page_range"`

	// StartChar and EndChar are offsets into the cleaned text.
	StartChar int `json:"start_char"`
	EndChar   int `json:"end_char"`

	// Section is the section label assigned by the tagger.
	Section string `json:"section,omitempty"`

	// KeyConcepts holds up to three concept tags, in table order.
	KeyConcepts []string `json:"key_concepts,omitempty"`
}

// Chunker splits cleaned text into chunks according to its configuration.
type Chunker struct {
	config Config
	tagger classify.Tagger
}

// NewChunker creates a Chunker with the default configuration.
func NewChunker() *Chunker {
	return &Chunker{config: DefaultConfig()}
}

// NewChunkerWithConfig creates a Chunker with a custom configuration.
func NewChunkerWithConfig(config Config) *Chunker {
	return &Chunker{config: config}
}

// UseTagger overrides the tagger used to label chunks. When not set, the
// semantic strategy uses a content-derived keyword tagger and the fixed and
// paragraph strategies use the round-robin positional tagger.
func (c *Chunker) UseTagger(t classify.Tagger) *Chunker {
	c.tagger = t
	return c
}

// Chunk splits text into an ordered chunk sequence. The same text and
// configuration always yield the same sequence; the Chunker holds no state
// across calls.
func (c *Chunker) Chunk(text string) ([]Chunk, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	text = normalize.Newlines(text)

	tagger := c.tagger
	switch c.config.Strategy {
	case StrategyFixed:
		if tagger == nil {
			tagger = classify.NewPositionalTagger()
		}
		return chunkFixed(text, c.config, tagger), nil
	case StrategyParagraph:
		if tagger == nil {
			tagger = classify.NewPositionalTagger()
		}
		return chunkParagraph(text, c.config, tagger), nil
	default:
		if tagger == nil {
			tagger = classify.NewKeywordTagger()
		}
		return chunkSemantic(text, c.config, tagger), nil
	}
}

// paragraphSplitRe delimits paragraphs on blank lines, tolerating trailing
// whitespace on the blank line.
var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// pageRange formats the 1-indexed approximate page range for a character
// span.
func pageRange(startChar, endChar int) string {
	return fmt.Sprintf("%d-%d", startChar/approxPageSize+1, endChar/approxPageSize+1)
}
