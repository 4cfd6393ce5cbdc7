package chunk

import (
	"strings"

	"github.com/docprep/docprep/classify"
)

// chunkParagraph accumulates blank-line-delimited paragraphs into a buffer.
// When appending the next paragraph would exceed ChunkSize and the buffer
// already holds at least MinChunkSize characters, the buffer is flushed as a
// chunk and the next buffer is seeded with its trailing ChunkOverlap
// characters. The final buffer is flushed if it reaches MinChunkSize.
//
// Offsets advance by paragraph length plus the two characters of the
// blank-line separator; the end offset of a flushed chunk includes the
// overlap carried from the previous flush.
func chunkParagraph(text string, cfg Config, tagger classify.Tagger) []Chunk {
	var chunks []Chunk

	var buf string
	currentStart := 0
	startChar := 0

	for _, paragraph := range paragraphSplitRe.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if len(buf)+len(paragraph) > cfg.ChunkSize && len(buf) >= cfg.MinChunkSize {
			// End offsets track the running paragraph counter, so they
			// overshoot the true text position when the buffer carries an
			// overlap prefix. The next start is derived from this end, so
			// chunks never leave a forward gap.
			endChar := startChar + len(buf)
			chunks = append(chunks, Chunk{
				Text:      buf,
				PageRange: pageRange(currentStart, endChar),
				StartChar: currentStart,
				EndChar:   endChar,
			})

			overlap := trailingOverlap(buf, cfg.ChunkOverlap)
			buf = overlap
			currentStart = endChar - len(overlap)
		}

		if buf != "" {
			buf += "\n\n" + paragraph
		} else {
			buf = paragraph
			currentStart = startChar
		}
		startChar += len(paragraph) + 2
	}

	if len(buf) >= cfg.MinChunkSize {
		chunks = append(chunks, Chunk{
			Text:      buf,
			PageRange: pageRange(currentStart, startChar),
			StartChar: currentStart,
			EndChar:   startChar,
		})
	}

	for i := range chunks {
		chunks[i].Section = tagger.Section(i, nil)
	}

	return chunks
}

// trailingOverlap returns the last n characters of buf, or all of buf when
// it is shorter than n.
func trailingOverlap(buf string, n int) string {
	if n < len(buf) {
		return buf[len(buf)-n:]
	}
	return buf
}
