package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trk/internal/history"
	"trk/internal/track"
)

var (
	filterInput    string
	filterCategory string
	filterQuery    string
	filterFormat   string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show a filtered view of a comparison artifact",
	Long: `Filter the records of a comparison artifact by category and free text.

The category filter and the text query compose by AND. The query matches
case-insensitively against the track ID, number, name, and the
parameter-change summary of each record.

Examples:
  trk filter --input cmp.json
  trk filter --input cmp.json --category modified
  trk filter --input cmp.json --query kitchen --format json`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterInput, "input", "", "Comparison artifact file (required)")
	filterCmd.Flags().StringVar(&filterCategory, "category", "all", "Category filter: all, new, modified, deleted")
	filterCmd.Flags().StringVar(&filterQuery, "query", "", "Free-text search query")
	filterCmd.Flags().StringVar(&filterFormat, "format", "human", "Output format (human, json)")
	_ = filterCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	format, err := ParseOutputFormat(filterFormat)
	if err != nil {
		return err
	}
	category, ok := track.ParseCategoryFilter(filterCategory)
	if !ok {
		return fmt.Errorf("unknown category filter %q (want all, new, modified, deleted)", filterCategory)
	}

	artifact, err := loadArtifact(filterInput, logger)
	if err != nil {
		return err
	}

	filtered := track.Filter(artifact.Records, category, filterQuery)

	switch format {
	case FormatJSON:
		out, err := formatJSON(filtered)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		printRecords(filtered, artifact)
	}

	recordSession(cfg, logger, history.KindFilter,
		fmt.Sprintf("category=%s query=%q", category, filterQuery), len(filtered))

	return nil
}

func printRecords(records []track.ChangeRecord, artifact *track.Artifact) {
	if artifact.BaseVersion != "" || artifact.TargetVersion != "" {
		fmt.Printf("Comparing %s -> %s\n", artifact.BaseVersion, artifact.TargetVersion)
	}
	stats := artifact.ComputeStats()
	fmt.Printf("%d record(s) shown of %d (new %d, modified %d, deleted %d)\n\n",
		len(records), len(artifact.Records), stats.New, stats.Modified, stats.Deleted)

	for i := range records {
		rec := &records[i]
		label := strings.TrimSpace(strings.Join([]string{rec.Number, rec.Name}, " "))
		fmt.Printf("%-9s %-14s %s\n", rec.Category, rec.TrackID, label)
		fmt.Printf("          %s\n", rec.Summary())
		for _, change := range track.DecodeChanges(rec.Changes) {
			fmt.Printf("          %s: %q -> %q\n", change.FieldName, change.OldValue, change.NewValue)
		}
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No records match the current filter.")
	}
}
