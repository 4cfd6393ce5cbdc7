package chunk

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts the tokens a chunk of text would produce in a
// downstream embedding or language model.
type TokenCounter interface {
	Count(text string) int
}

// EstimatorCounter approximates token counts as characters divided by four.
// It needs no model data and is the default used by Stats.
type EstimatorCounter struct{}

// Count returns len(text)/4.
func (EstimatorCounter) Count(text string) int {
	return len(text) / 4
}

// TiktokenCounter counts tokens with a real BPE encoding. Loading the
// encoding can fetch model data, so construction may fail; counting itself
// cannot.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the BPE encoding for the given model name.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load encoding for model %s: %w", model, err)
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

// Count returns the exact token count for text under the loaded encoding.
func (c *TiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}
