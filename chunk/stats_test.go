package chunk

import (
	"strings"
	"testing"
)

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil, nil)

	if stats.TotalChunks != 0 || stats.TotalCharacters != 0 || stats.TotalWords != 0 {
		t.Errorf("empty sequence should produce zero totals: %+v", stats)
	}
	if stats.MinChunkSize != 0 || stats.MaxChunkSize != 0 || stats.AvgChunkSize != 0 {
		t.Errorf("empty sequence should produce zero sizes: %+v", stats)
	}
}

func TestStats_Totals(t *testing.T) {
	chunks := []Chunk{
		{Text: "quatre mots par ici"},           // 19 chars, 4 words
		{Text: strings.Repeat("a", 40)},         // 40 chars, 1 word
		{Text: "un deux trois quatre cinq six"}, // 29 chars, 6 words
	}

	stats := Stats(chunks, nil)

	if stats.TotalChunks != 3 {
		t.Errorf("TotalChunks = %d, want 3", stats.TotalChunks)
	}
	if stats.TotalCharacters != 88 {
		t.Errorf("TotalCharacters = %d, want 88", stats.TotalCharacters)
	}
	if stats.TotalWords != 11 {
		t.Errorf("TotalWords = %d, want 11", stats.TotalWords)
	}
	if want := 19/4 + 40/4 + 29/4; stats.TotalTokens != want {
		t.Errorf("TotalTokens = %d, want %d (chars/4 estimator)", stats.TotalTokens, want)
	}
	if stats.MinChunkSize != 19 {
		t.Errorf("MinChunkSize = %d, want 19", stats.MinChunkSize)
	}
	if stats.MaxChunkSize != 40 {
		t.Errorf("MaxChunkSize = %d, want 40", stats.MaxChunkSize)
	}
	if stats.AvgChunkSize != 88/3 {
		t.Errorf("AvgChunkSize = %d, want %d", stats.AvgChunkSize, 88/3)
	}
}

type fixedCounter int

func (c fixedCounter) Count(string) int { return int(c) }

func TestStats_CustomCounter(t *testing.T) {
	chunks := []Chunk{{Text: "a"}, {Text: "b"}}

	stats := Stats(chunks, fixedCounter(7))

	if stats.TotalTokens != 14 {
		t.Errorf("TotalTokens = %d, want 14 from the injected counter", stats.TotalTokens)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"mot", 1},
		{"deux mots", 2},
		{"  espaces   multiples  ", 2},
		{"ligne\nsuivante\tet tab", 4},
	}

	for _, tt := range tests {
		if got := countWords(tt.text); got != tt.want {
			t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTiktokenCounter(t *testing.T) {
	counter, err := NewTiktokenCounter("gpt-3.5-turbo")
	if err != nil {
		// Encoding data may need a network fetch on first use.
		t.Skipf("encoding unavailable: %v", err)
	}

	if got := counter.Count("hello world"); got < 1 {
		t.Errorf("Count(\"hello world\") = %d, want at least 1", got)
	}
	if got := counter.Count(""); got != 0 {
		t.Errorf("Count(\"\") = %d, want 0", got)
	}
}
