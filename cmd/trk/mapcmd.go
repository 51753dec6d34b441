package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trk/internal/config"
	"trk/internal/history"
	"trk/internal/mapping"
)

var (
	mapSourceVocab string
	mapTargetVocab string
	mapFormat      string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Field mapping between element-kind vocabularies",
}

var mapSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a field mapping between two vocabularies",
	Long: `Build mapping rows from a source vocabulary to a target vocabulary,
pre-selecting a suggestion per row: exact name match first, then
prefix-normalized match, then the keyword fallback table, and the skip
sentinel when nothing fits.

The JSON output is the row format consumed by 'trk preset save --rows'.

Examples:
  trk map suggest --source-vocab regions.yaml --target-vocab rooms.yaml
  trk map suggest --source-vocab regions.yaml --target-vocab rooms.yaml --format json > rows.json`,
	RunE: runMapSuggest,
}

func init() {
	mapSuggestCmd.Flags().StringVar(&mapSourceVocab, "source-vocab", "", "Source vocabulary YAML file (required)")
	mapSuggestCmd.Flags().StringVar(&mapTargetVocab, "target-vocab", "", "Target vocabulary YAML file (required)")
	mapSuggestCmd.Flags().StringVar(&mapFormat, "format", "human", "Output format (human, json)")
	_ = mapSuggestCmd.MarkFlagRequired("source-vocab")
	_ = mapSuggestCmd.MarkFlagRequired("target-vocab")
	mapCmd.AddCommand(mapSuggestCmd)
	rootCmd.AddCommand(mapCmd)
}

func runMapSuggest(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	format, err := ParseOutputFormat(mapFormat)
	if err != nil {
		return err
	}

	rows, err := buildRowsFromFiles(cfg, mapSourceVocab, mapTargetVocab)
	if err != nil {
		return err
	}

	if err := printRows(rows, format); err != nil {
		return err
	}

	recordSession(cfg, logger, history.KindMap,
		fmt.Sprintf("source=%s target=%s", mapSourceVocab, mapTargetVocab), len(rows))

	return nil
}

// buildRowsFromFiles loads both vocabularies and the keyword table,
// then runs the suggestion engine
func buildRowsFromFiles(cfg *config.Config, sourcePath, targetPath string) ([]mapping.Row, error) {
	source, err := mapping.LoadVocabulary(sourcePath)
	if err != nil {
		return nil, err
	}
	target, err := mapping.LoadVocabulary(targetPath)
	if err != nil {
		return nil, err
	}
	table, err := loadKeywordTable(cfg)
	if err != nil {
		return nil, err
	}
	return mapping.BuildRows(source, target, table), nil
}

// printRows renders mapping rows; JSON output is the interchange form
// for preset save
func printRows(rows []mapping.Row, format OutputFormat) error {
	if format == FormatJSON {
		out, err := formatJSON(rows)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for _, row := range rows {
		marker := "->"
		if row.Target == mapping.SkipSentinel {
			marker = "--"
		}
		fmt.Printf("%-28s %s %s\n", row.SourceField, marker, row.Target)
	}
	return nil
}
