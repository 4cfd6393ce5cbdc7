package docprep

import (
	"fmt"

	"github.com/docprep/docprep/chunk"
	"github.com/docprep/docprep/classify"
	"github.com/docprep/docprep/clean"
	"github.com/docprep/docprep/structure"
)

// Document is the result of running the full pipeline on one document.
type Document struct {
	// CleanedText is the cleaned text all offsets refer to.
	CleanedText string `json:"cleaned_text"`

	// CleaningStats describes what cleaning removed.
	CleaningStats clean.Stats `json:"cleaning_stats"`

	// Structure holds the structural markers found in the cleaned text.
	Structure structure.Structure `json:"structure"`

	// Chunks are the shaped chunk records, in document order.
	Chunks []ChunkRecord `json:"chunks"`
}

// ChunkRecord is the ingestion-ready form of one chunk: a stable ID, a
// human-readable position, and the retrieval metadata a vector store indexes
// alongside the content.
type ChunkRecord struct {
	// ID is "chunk-<index>", 0-indexed.
	ID string `json:"id"`

	// Content is the chunk text.
	Content string `json:"content"`

	// Position is "chunk_<n>", 1-indexed.
	Position string `json:"position"`

	// Metadata holds the retrieval metadata.
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata is the retrieval metadata of one chunk record. Fields are
// never empty: missing values are filled with the documented defaults.
type ChunkMetadata struct {
	PageRange   string   `json:"page_range"`
	Section     string   `json:"section"`
	KeyConcepts []string `json:"key_concepts"`
}

// buildRecords shapes chunks into ingestion-ready records. Empty metadata is
// defaulted: the section label falls back to "Section non spécifiée", the
// concepts to the standard triple, and the page range to a five-pages-per-
// chunk estimate.
func buildRecords(chunks []chunk.Chunk) []ChunkRecord {
	records := make([]ChunkRecord, len(chunks))
	for i, c := range chunks {
		pageRange := c.PageRange
		if pageRange == "" {
			pageRange = fmt.Sprintf("%d-%d", i*5+1, (i+1)*5)
		}
		section := c.Section
		if section == "" {
			section = classify.SectionUnspecified
		}
		concepts := c.KeyConcepts
		if len(concepts) == 0 {
			concepts = classify.DefaultConcepts()
		}

		records[i] = ChunkRecord{
			ID:       fmt.Sprintf("chunk-%d", i),
			Content:  c.Text,
			Position: fmt.Sprintf("chunk_%d", i+1),
			Metadata: ChunkMetadata{
				PageRange:   pageRange,
				Section:     section,
				KeyConcepts: concepts,
			},
		}
	}
	return records
}
