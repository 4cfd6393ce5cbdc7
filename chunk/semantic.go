package chunk

import (
	"strings"

	"github.com/docprep/docprep/classify"
)

// chunkSemantic accumulates paragraphs like the paragraph strategy but adds
// heading detection: a paragraph under headingMaxLen characters with no
// terminal punctuation marks a structural break. A heading flushes the
// current buffer even when under ChunkSize and becomes the sole seed of the
// next buffer, with no overlap carried across the break. Non-heading
// flushes seed the next buffer from the first sentence boundary inside the
// overlap window, falling back to a raw character overlap.
//
// Every flushed chunk is labeled by the tagger from the paragraphs that
// built it, and tagged with up to three key concepts. This is the only
// strategy with content-derived section labels.
func chunkSemantic(text string, cfg Config, tagger classify.Tagger) []Chunk {
	var chunks []Chunk

	var buf string
	var bufParagraphs []string
	currentStart := 0
	startChar := 0

	flush := func(endChar int) {
		chunks = append(chunks, Chunk{
			Text:        buf,
			PageRange:   pageRange(currentStart, endChar),
			StartChar:   currentStart,
			EndChar:     endChar,
			Section:     tagger.Section(len(chunks), bufParagraphs),
			KeyConcepts: tagger.Concepts(buf),
		})
	}

	for _, paragraph := range paragraphSplitRe.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		isHeading := false
		if cfg.RespectBoundaries {
			isHeading = len(paragraph) < headingMaxLen && !hasTerminalPunct(paragraph)
		}

		overflow := len(buf)+len(paragraph) > cfg.ChunkSize && len(buf) >= cfg.MinChunkSize
		if overflow || (isHeading && buf != "") {
			endChar := startChar
			flush(endChar)

			if isHeading {
				// The heading starts the next chunk on its own: no overlap
				// crosses a structural break.
				buf = paragraph
				bufParagraphs = []string{paragraph}
				currentStart = startChar
				startChar += len(paragraph) + 2
				continue
			}

			overlap := sentenceOverlap(buf, cfg.ChunkOverlap)
			buf = overlap
			bufParagraphs = retainParagraphs(bufParagraphs, overlap)
			currentStart = endChar - len(overlap)
		}

		if buf != "" {
			buf += "\n\n" + paragraph
		} else {
			buf = paragraph
			currentStart = startChar
		}
		bufParagraphs = append(bufParagraphs, paragraph)
		startChar += len(paragraph) + 2
	}

	if len(buf) >= cfg.MinChunkSize {
		flush(startChar)
	}

	return chunks
}

// hasTerminalPunct reports whether s ends with sentence-ending punctuation.
func hasTerminalPunct(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// sentenceOverlap returns the overlap seed for the next buffer: the text
// after the first sentence boundary found strictly inside the trailing
// overlap window, or the raw trailing overlap characters when no boundary
// is found there.
func sentenceOverlap(buf string, overlap int) string {
	windowStart := len(buf) - overlap
	if windowStart < 0 {
		windowStart = 0
	}

	if idx := strings.Index(buf[windowStart:], ". "); idx > 0 {
		return buf[windowStart+idx+2:]
	}

	return trailingOverlap(buf, overlap)
}

// retainParagraphs keeps the paragraphs still present in the overlap seed,
// so section tagging of the next chunk only sees content it actually
// contains.
func retainParagraphs(paragraphs []string, overlap string) []string {
	var kept []string
	for _, p := range paragraphs {
		if strings.Contains(overlap, p) {
			kept = append(kept, p)
		}
	}
	return kept
}
