package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trk/internal/history"
	"trk/internal/mapping"
	"trk/internal/paths"
	"trk/internal/preset"
)

var (
	presetRows        string
	presetSourceVocab string
	presetTargetVocab string
	presetFormat      string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named mapping presets",
	Long: `Presets persist confirmed field-mapping selections by name, one JSON
file per preset in the application config directory. A preset can be
reapplied to a fresh mapping session later, even after the vocabularies
have drifted: stale sources and targets are silently skipped.`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save mapping rows as a named preset",
	Long: `Save the selections of a mapping session under a name, overwriting any
existing preset of that name.

The --rows file is the JSON emitted by 'trk map suggest --format json',
with targets edited as desired.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved preset names",
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a preset to a fresh mapping session",
	Long: `Build fresh suggestion rows from the two vocabularies, then overlay the
stored preset: each stored pair replaces the suggested target wherever
the source field still exists and the stored target is still a valid
candidate.

Examples:
  trk preset apply level2 --source-vocab regions.yaml --target-vocab rooms.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetApply,
}

func init() {
	presetSaveCmd.Flags().StringVar(&presetRows, "rows", "", "Mapping rows JSON file (required)")
	_ = presetSaveCmd.MarkFlagRequired("rows")

	presetApplyCmd.Flags().StringVar(&presetSourceVocab, "source-vocab", "", "Source vocabulary YAML file (required)")
	presetApplyCmd.Flags().StringVar(&presetTargetVocab, "target-vocab", "", "Target vocabulary YAML file (required)")
	presetApplyCmd.Flags().StringVar(&presetFormat, "format", "human", "Output format (human, json)")
	_ = presetApplyCmd.MarkFlagRequired("source-vocab")
	_ = presetApplyCmd.MarkFlagRequired("target-vocab")

	presetCmd.AddCommand(presetSaveCmd, presetListCmd, presetShowCmd, presetApplyCmd)
	rootCmd.AddCommand(presetCmd)
}

func openPresetStore() (*preset.Store, error) {
	dir, err := paths.PresetDir()
	if err != nil {
		return nil, err
	}
	return preset.NewStore(dir), nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	name := args[0]

	data, err := os.ReadFile(presetRows)
	if err != nil {
		return fmt.Errorf("failed to read rows file: %w", err)
	}
	var rows []mapping.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse rows file: %w", err)
	}

	store, err := openPresetStore()
	if err != nil {
		return err
	}
	p := preset.FromRows(name, rows)
	if err := store.Save(p); err != nil {
		return err
	}

	fmt.Printf("Saved preset %q with %d mapping(s)\n", name, len(p.Mappings))
	recordSession(cfg, logger, history.KindPreset, "save "+name, len(p.Mappings))
	return nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	store, err := openPresetStore()
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No presets saved.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	store, err := openPresetStore()
	if err != nil {
		return err
	}

	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Preset %q (%d mapping(s))\n", p.Name, len(p.Mappings))
	for _, pair := range p.Mappings {
		fmt.Printf("  %-28s -> %s\n", pair.SourceColumn, pair.TargetParameter)
	}
	return nil
}

func runPresetApply(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	format, err := ParseOutputFormat(presetFormat)
	if err != nil {
		return err
	}

	store, err := openPresetStore()
	if err != nil {
		return err
	}
	p, err := store.Load(args[0])
	if err != nil {
		return err
	}

	rows, err := buildRowsFromFiles(cfg, presetSourceVocab, presetTargetVocab)
	if err != nil {
		return err
	}
	p.Apply(rows)

	if err := printRows(rows, format); err != nil {
		return err
	}

	recordSession(cfg, logger, history.KindPreset, "apply "+p.Name, len(rows))
	return nil
}
