package chunk

import "unicode"

// ChunkStats summarizes a chunk sequence.
type ChunkStats struct {
	TotalChunks     int
	TotalCharacters int
	TotalWords      int
	TotalTokens     int
	AvgChunkSize    int
	MinChunkSize    int
	MaxChunkSize    int
}

// Stats computes summary statistics for a chunk sequence. A nil counter
// falls back to the chars/4 estimator.
func Stats(chunks []Chunk, counter TokenCounter) ChunkStats {
	if counter == nil {
		counter = EstimatorCounter{}
	}

	stats := ChunkStats{
		TotalChunks:  len(chunks),
		MinChunkSize: -1,
	}

	for _, c := range chunks {
		size := len(c.Text)
		stats.TotalCharacters += size
		stats.TotalWords += countWords(c.Text)
		stats.TotalTokens += counter.Count(c.Text)

		if stats.MinChunkSize < 0 || size < stats.MinChunkSize {
			stats.MinChunkSize = size
		}
		if size > stats.MaxChunkSize {
			stats.MaxChunkSize = size
		}
	}

	if len(chunks) > 0 {
		stats.AvgChunkSize = stats.TotalCharacters / len(chunks)
	}
	if stats.MinChunkSize < 0 {
		stats.MinChunkSize = 0
	}

	return stats
}

// countWords counts whitespace-delimited words.
func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return words
}
