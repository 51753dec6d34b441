package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"trk/internal/history"
	"trk/internal/paths"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent comparison sessions",
	Long: `Show the most recent filter, export, mapping, and preset actions
recorded in the local session log.

Examples:
  trk history
  trk history -n 50`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Number of sessions to show (default from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	dbPath, err := paths.HistoryDBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	store, err := history.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.History.MaxEntries
	}

	sessions, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	for _, sess := range sessions {
		fmt.Printf("%s  %-7s %4d record(s)  %s\n",
			sess.CreatedAt.Format(time.RFC3339), sess.Kind, sess.Records, sess.Detail)
	}
	return nil
}
