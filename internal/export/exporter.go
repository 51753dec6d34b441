// Package export renders comparison records for external consumers:
// delimited CSV files for spreadsheet import and a formatted text block
// for pasting elsewhere. Encoded descriptors are decoded here; the
// records themselves are never mutated.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"

	"trk/internal/track"
)

// Header is the column layout of the CSV export
var Header = []string{
	"Change Type", "Track ID", "Room Number", "Room Name",
	"Parameter Name", "Old Value", "New Value",
}

// Options controls export rendering
type Options struct {
	// Gzip wraps the CSV output in a gzip stream
	Gzip bool
}

// Rows flattens records into export rows, one row per decoded
// parameter change. New and Deleted records, and Modified records
// without detail, emit a single row with empty parameter columns.
func Rows(records []track.ChangeRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for i := range records {
		rec := &records[i]
		if len(rec.Changes) == 0 {
			rows = append(rows, recordRow(rec, track.Change{}))
			continue
		}
		for _, change := range track.DecodeChanges(rec.Changes) {
			rows = append(rows, recordRow(rec, change))
		}
	}
	return rows
}

func recordRow(rec *track.ChangeRecord, change track.Change) []string {
	return []string{
		string(rec.Category), rec.TrackID, rec.Number, rec.Name,
		change.FieldName, change.OldValue, change.NewValue,
	}
}

// WriteCSV writes the header and flattened rows to w, optionally
// gzip-compressed
func WriteCSV(w io.Writer, records []track.ChangeRecord, opts Options) error {
	if opts.Gzip {
		gz := gzip.NewWriter(w)
		if err := writeCSV(gz, records); err != nil {
			_ = gz.Close()
			return err
		}
		return gz.Close()
	}
	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records []track.ChangeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range Rows(records) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatText renders records as a clipboard-style text block: one
// header line per record, decoded changes indented beneath it.
func FormatText(records []track.ChangeRecord) string {
	var sb strings.Builder

	for i := range records {
		rec := &records[i]
		sb.WriteString(fmt.Sprintf("[%s] %s", rec.Category, rec.TrackID))
		if rec.Number != "" || rec.Name != "" {
			sb.WriteString(fmt.Sprintf(" - %s %s", rec.Number, rec.Name))
		}
		sb.WriteString("\n")
		sb.WriteString("  " + rec.Summary() + "\n")

		for _, change := range track.DecodeChanges(rec.Changes) {
			sb.WriteString(fmt.Sprintf("  %s: %q -> %q\n",
				change.FieldName, change.OldValue, change.NewValue))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
