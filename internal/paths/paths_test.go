package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir = %q, want %q", got, dir)
	}
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	got, err := ConfigDir()
	if err != nil {
		t.Skipf("no user config dir in this environment: %v", err)
	}
	if filepath.Base(got) != "trk" {
		t.Errorf("ConfigDir = %q, want a trk-scoped directory", got)
	}
}

func TestEnsureConfigDirCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "trk")
	t.Setenv(EnvConfigDir, dir)

	got, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestDerivedPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	presets, err := PresetDir()
	if err != nil {
		t.Fatal(err)
	}
	if presets != filepath.Join(dir, "presets") {
		t.Errorf("PresetDir = %q", presets)
	}

	db, err := HistoryDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if db != filepath.Join(dir, "history.db") {
		t.Errorf("HistoryDBPath = %q", db)
	}

	kw, err := KeywordTablePath("keywords.toml")
	if err != nil {
		t.Fatal(err)
	}
	if kw != filepath.Join(dir, "keywords.toml") {
		t.Errorf("KeywordTablePath = %q", kw)
	}
}
