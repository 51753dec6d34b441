package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trk/internal/export"
	"trk/internal/history"
	"trk/internal/track"
)

var (
	exportInput    string
	exportCategory string
	exportQuery    string
	exportOut      string
	exportFormat   string
	exportGzip     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export comparison records as CSV or formatted text",
	Long: `Export the (optionally filtered) records of a comparison artifact.

CSV output carries one row per decoded parameter change; New and Deleted
records emit a single row with empty parameter columns. Text output is a
clipboard-style block per record.

Examples:
  trk export --input cmp.json --out rooms.csv
  trk export --input cmp.json --category modified --out changes.csv --gzip
  trk export --input cmp.json --format text`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Comparison artifact file (required)")
	exportCmd.Flags().StringVar(&exportCategory, "category", "all", "Category filter: all, new, modified, deleted")
	exportCmd.Flags().StringVar(&exportQuery, "query", "", "Free-text search query")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format (csv, text); default from config")
	exportCmd.Flags().BoolVar(&exportGzip, "gzip", false, "Gzip-compress CSV output")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	format := exportFormat
	if format == "" {
		format = cfg.Export.Format
	}
	if format != "csv" && format != "text" {
		return fmt.Errorf("unsupported export format %q (want csv or text)", format)
	}
	gzipOut := exportGzip || (cfg.Export.Gzip && !cmd.Flags().Changed("gzip"))

	category, ok := track.ParseCategoryFilter(exportCategory)
	if !ok {
		return fmt.Errorf("unknown category filter %q (want all, new, modified, deleted)", exportCategory)
	}

	artifact, err := loadArtifact(exportInput, logger)
	if err != nil {
		return err
	}
	records := track.Filter(artifact.Records, category, exportQuery)

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	switch format {
	case "text":
		if _, err := fmt.Fprint(out, export.FormatText(records)); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	default:
		if err := export.WriteCSV(out, records, export.Options{Gzip: gzipOut}); err != nil {
			return err
		}
	}

	logger.Debug("Export completed", map[string]interface{}{
		"records": len(records),
		"format":  format,
		"out":     exportOut,
	})
	recordSession(cfg, logger, history.KindExport,
		fmt.Sprintf("format=%s out=%s", format, exportOut), len(records))

	return nil
}
