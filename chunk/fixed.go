package chunk

import (
	"strings"

	"github.com/docprep/docprep/classify"
)

// boundaryMarks are the cut points the fixed strategy snaps back to, from a
// tentative end position. "\n\n" doubles as a paragraph boundary.
var boundaryMarks = []string{". ", "? ", "! ", "\n\n"}

// chunkFixed walks a cursor through text, emitting spans of roughly
// ChunkSize characters. Each tentative cut is snapped backward to the
// rightmost sentence or paragraph boundary in the window, provided the
// boundary leaves at least MinChunkSize characters in the span. Spans that
// trim to under MinChunkSize are dropped. The cursor advances by
// ChunkSize-ChunkOverlap with a guard that forces it to the span end when
// the overlap would stall progress, so chunking terminates for any input.
func chunkFixed(text string, cfg Config, tagger classify.Tagger) []Chunk {
	var chunks []Chunk

	start := 0
	length := len(text)

	for start < length {
		end := start + cfg.ChunkSize
		if end > length {
			end = length
		}

		// Not at end of text: prefer to cut just past a natural boundary.
		if end < length {
			if mark := lastBoundary(text[start:end]); mark >= cfg.MinChunkSize {
				end = start + mark + 1
			}
		}

		chunkText := strings.TrimSpace(text[start:end])
		if chunkText != "" && len(chunkText) >= cfg.MinChunkSize {
			chunks = append(chunks, Chunk{
				Text:      chunkText,
				PageRange: pageRange(start, end),
				StartChar: start,
				EndChar:   end,
			})
		}

		next := end - cfg.ChunkOverlap
		// Loop guard: force the cursor past the span when the overlap
		// would not advance it meaningfully.
		guard := cfg.ChunkOverlap
		if half := cfg.MinChunkSize / 2; half < guard {
			guard = half
		}
		if next >= end-guard {
			next = end
		}
		// A snapped end combined with a large overlap could move the
		// cursor backward; force it forward so chunking always terminates.
		if next <= start {
			next = end
		}
		start = next
	}

	for i := range chunks {
		chunks[i].Section = tagger.Section(i, nil)
	}

	return chunks
}

// lastBoundary returns the offset of the rightmost boundary mark in window,
// or -1 when no mark occurs.
func lastBoundary(window string) int {
	best := -1
	for _, mark := range boundaryMarks {
		if idx := strings.LastIndex(window, mark); idx > best {
			best = idx
		}
	}
	return best
}
