package main

import (
	"fmt"
	"os"

	"trk/internal/config"
	"trk/internal/history"
	"trk/internal/logging"
	"trk/internal/mapping"
	"trk/internal/paths"
	"trk/internal/track"
)

// loadConfig reads the configuration, falling back to defaults with a
// warning rather than failing the command
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger builds a logger from the effective configuration
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// loadArtifact reads and validates a comparison artifact, logging any
// category/changes convention violations
func loadArtifact(path string, logger *logging.Logger) (*track.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read comparison artifact: %w", err)
	}

	artifact, violations, err := track.ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	for _, v := range violations {
		logger.Warn("Record violates category convention", map[string]interface{}{
			"record":   v.Index,
			"category": string(v.Category),
			"trackId":  v.TrackID,
		})
	}

	return artifact, nil
}

// loadKeywordTable resolves the keyword table: explicit config path,
// else the conventional override file in the config dir, else the
// built-in table
func loadKeywordTable(cfg *config.Config) (mapping.Table, error) {
	path := cfg.Mapping.KeywordTable
	if path == "" {
		resolved, err := paths.KeywordTablePath(mapping.KeywordsFile)
		if err != nil {
			return mapping.DefaultTable(), nil
		}
		path = resolved
	}
	return mapping.LoadTable(path)
}

// recordSession appends to the history database. History is advisory:
// failures are logged and swallowed.
func recordSession(cfg *config.Config, logger *logging.Logger, kind history.Kind, detail string, records int) {
	if !cfg.History.Enabled {
		return
	}

	dbPath, err := paths.HistoryDBPath()
	if err == nil {
		_, dirErr := paths.EnsureConfigDir()
		if dirErr != nil {
			err = dirErr
		}
	}
	if err != nil {
		logger.Warn("History unavailable", map[string]interface{}{"error": err.Error()})
		return
	}

	store, err := history.OpenStore(dbPath)
	if err != nil {
		logger.Warn("History unavailable", map[string]interface{}{"error": err.Error()})
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.Record(kind, detail, records); err != nil {
		logger.Warn("Failed to record session", map[string]interface{}{"error": err.Error()})
	}
}
