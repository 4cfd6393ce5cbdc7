package chunk

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExportFormat defines the available chunk export formats.
type ExportFormat int

const (
	// ExportFormatJSONL exports as JSON Lines (one JSON object per line).
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON exports as a JSON array.
	ExportFormatJSON
	// ExportFormatCSV exports as comma-separated values.
	ExportFormatCSV
	// ExportFormatTSV exports as tab-separated values.
	ExportFormatTSV
)

// String returns a human-readable representation of the export format.
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatJSON:
		return "json"
	case ExportFormatCSV:
		return "csv"
	case ExportFormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatJSON:
		return ".json"
	case ExportFormatCSV:
		return ".csv"
	case ExportFormatTSV:
		return ".tsv"
	default:
		return ".txt"
	}
}

// ExportConfig holds configuration options for chunk export.
type ExportConfig struct {
	// Format specifies the export format.
	Format ExportFormat

	// IDPrefix is the prefix for generated chunk IDs ("<prefix>_<index>").
	IDPrefix string

	// PrettyPrint enables indented output for the JSON format.
	PrettyPrint bool

	// IncludeHeader includes a header row in CSV/TSV exports.
	IncludeHeader bool

	// CSVDelimiter is the delimiter for the CSV format (default comma).
	CSVDelimiter rune
}

// DefaultExportConfig returns sensible defaults for export.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:        ExportFormatJSONL,
		IDPrefix:      "chunk",
		PrettyPrint:   false,
		IncludeHeader: true,
		CSVDelimiter:  ',',
	}
}

// exportRecord is the serialized form of one chunk.
type exportRecord struct {
	ChunkID     string   `json:"chunk_id"`
	Text        string   `json:"text"`
	PageRange   string   `json:"page_range"`
	StartChar   int      `json:"start_char"`
	EndChar     int      `json:"end_char"`
	Section     string   `json:"section,omitempty"`
	KeyConcepts []string `json:"key_concepts,omitempty"`
}

// Export writes chunks to w in the configured format. Chunk IDs are
// generated from the chunk position so exports of the same sequence are
// identical.
func Export(w io.Writer, chunks []Chunk, config ExportConfig) error {
	records := make([]exportRecord, len(chunks))
	for i, c := range chunks {
		records[i] = exportRecord{
			ChunkID:     fmt.Sprintf("%s_%d", config.IDPrefix, i),
			Text:        c.Text,
			PageRange:   c.PageRange,
			StartChar:   c.StartChar,
			EndChar:     c.EndChar,
			Section:     c.Section,
			KeyConcepts: c.KeyConcepts,
		}
	}

	switch config.Format {
	case ExportFormatJSONL:
		return exportJSONL(w, records)
	case ExportFormatJSON:
		return exportJSON(w, records, config.PrettyPrint)
	case ExportFormatCSV:
		delimiter := config.CSVDelimiter
		if delimiter == 0 {
			delimiter = ','
		}
		return exportSeparated(w, records, delimiter, config.IncludeHeader)
	case ExportFormatTSV:
		return exportSeparated(w, records, '\t', config.IncludeHeader)
	default:
		return fmt.Errorf("unknown export format %d", config.Format)
	}
}

func exportJSONL(w io.Writer, records []exportRecord) error {
	encoder := json.NewEncoder(w)
	for i := range records {
		if err := encoder.Encode(&records[i]); err != nil {
			return fmt.Errorf("encode chunk %d: %w", i, err)
		}
	}
	return nil
}

func exportJSON(w io.Writer, records []exportRecord, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode chunks: %w", err)
	}
	return nil
}

func exportSeparated(w io.Writer, records []exportRecord, delimiter rune, header bool) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if header {
		if err := writer.Write([]string{"chunk_id", "text", "page_range", "start_char", "end_char", "section", "key_concepts"}); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range records {
		row := []string{
			r.ChunkID,
			r.Text,
			r.PageRange,
			strconv.Itoa(r.StartChar),
			strconv.Itoa(r.EndChar),
			r.Section,
			strings.Join(r.KeyConcepts, "; "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write chunk %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
