package main

import (
	"os"

	"github.com/spf13/cobra"

	"trk/internal/paths"
	"trk/internal/version"
)

var (
	// configDirFlag overrides the application config directory
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "trk",
	Short: "trk - tracked-element snapshot comparison",
	Long: `trk compares two snapshots of tracked spatial elements (rooms, filled
regions, doors) and presents per-element, per-parameter differences.
Comparison artifacts are produced by an external diff source; trk filters
them, exports them, and suggests field mappings when converting one
element kind into another.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDirFlag != "" {
			_ = os.Setenv(paths.EnvConfigDir, configDirFlag)
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("trk version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"Override the application config directory")
}
