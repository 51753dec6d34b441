package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	trkerrors "trk/internal/errors"
	"trk/internal/mapping"
)

func sessionRows(t *testing.T) []mapping.Row {
	t.Helper()
	source := []string{"Room_Name", "region_area", "custom_field"}
	target := []string{"Name", "Area", "Level"}
	return mapping.BuildRows(source, target, mapping.DefaultTable())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "presets"))

	rows := sessionRows(t)
	rows[2].Target = "Level" // user edit on top of the suggestions

	if err := store.Save(FromRows("level2 rooms", rows)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load("level2 rooms")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "level2 rooms" {
		t.Errorf("Name = %q", loaded.Name)
	}
	if len(loaded.Mappings) != 3 {
		t.Fatalf("got %d mappings, want 3", len(loaded.Mappings))
	}

	// Applying to fresh rows built from the same vocabularies
	// reproduces the original selections exactly
	fresh := sessionRows(t)
	loaded.Apply(fresh)
	for i := range rows {
		if fresh[i].Target != rows[i].Target {
			t.Errorf("row %d target = %q, want %q", i, fresh[i].Target, rows[i].Target)
		}
	}
}

func TestSaveOverwritesSilently(t *testing.T) {
	store := NewStore(t.TempDir())

	first := &Preset{Name: "p", Mappings: []Pair{{SourceColumn: "a", TargetParameter: "X"}}}
	second := &Preset{Name: "p", Mappings: []Pair{{SourceColumn: "b", TargetParameter: "Y"}}}

	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load("p")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Mappings) != 1 || loaded.Mappings[0].SourceColumn != "b" {
		t.Errorf("overwrite not applied: %+v", loaded.Mappings)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "presets"))

	// Absent directory means no presets, not an error
	names, err := store.List()
	if err != nil {
		t.Fatalf("List on absent dir: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no presets, got %v", names)
	}

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if err := store.Save(&Preset{Name: name, Mappings: []Pair{}}); err != nil {
			t.Fatal(err)
		}
	}

	names, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "mike", "zulu"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	t.Run("not found", func(t *testing.T) {
		_, err := store.Load("absent")
		if trkerrors.CodeOf(err) != trkerrors.PresetNotFound {
			t.Errorf("code = %v, want PresetNotFound", trkerrors.CodeOf(err))
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		writePresetFile(t, dir, "broken", "{not json")
		_, err := store.Load("broken")
		if trkerrors.CodeOf(err) != trkerrors.PresetCorrupt {
			t.Errorf("code = %v, want PresetCorrupt", trkerrors.CodeOf(err))
		}
	})

	t.Run("missing mappings field", func(t *testing.T) {
		writePresetFile(t, dir, "nomaps", `{"name":"nomaps"}`)
		_, err := store.Load("nomaps")
		if trkerrors.CodeOf(err) != trkerrors.PresetCorrupt {
			t.Errorf("code = %v, want PresetCorrupt", trkerrors.CodeOf(err))
		}
	})

	t.Run("empty mappings is valid", func(t *testing.T) {
		writePresetFile(t, dir, "empty", `{"name":"empty","mappings":[]}`)
		p, err := store.Load("empty")
		if err != nil {
			t.Fatalf("empty mappings should load: %v", err)
		}
		if len(p.Mappings) != 0 {
			t.Errorf("Mappings = %v", p.Mappings)
		}
	})

	t.Run("name falls back to storage key", func(t *testing.T) {
		writePresetFile(t, dir, "keyed", `{"mappings":[]}`)
		p, err := store.Load("keyed")
		if err != nil {
			t.Fatal(err)
		}
		if p.Name != "keyed" {
			t.Errorf("Name = %q, want %q", p.Name, "keyed")
		}
	})
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"level2", true},
		{"With Spaces", true},
		{"ünïcode-名前", true},
		{"", false},
		{"   ", false},
		{"a/b", false},
		{`a\b`, false},
		{"..", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if (err == nil) != tt.wantOK {
				t.Errorf("ValidateName(%q) error = %v, wantOK %v", tt.name, err, tt.wantOK)
			}
		})
	}
}

func TestApplyToleratesDrift(t *testing.T) {
	rows := []mapping.Row{
		{SourceField: "Room_Name", Candidates: []string{mapping.SkipSentinel, "Name"}, Target: "Name"},
		{SourceField: "region_area", Candidates: []string{mapping.SkipSentinel, "Area"}, Target: mapping.SkipSentinel},
	}

	p := &Preset{Name: "drift", Mappings: []Pair{
		// Target no longer among candidates: row keeps its prior target
		{SourceColumn: "Room_Name", TargetParameter: "Room Name"},
		// Source no longer in the session: silently ignored
		{SourceColumn: "vanished_field", TargetParameter: "Area"},
		// Valid pair still applies
		{SourceColumn: "region_area", TargetParameter: "Area"},
	}}

	p.Apply(rows)

	if rows[0].Target != "Name" {
		t.Errorf("stale target should leave row unchanged, got %q", rows[0].Target)
	}
	if rows[1].Target != "Area" {
		t.Errorf("valid pair not applied, got %q", rows[1].Target)
	}
}

func TestApplySkipSentinelPair(t *testing.T) {
	rows := []mapping.Row{
		{SourceField: "f", Candidates: []string{mapping.SkipSentinel, "Name"}, Target: "Name"},
	}
	p := &Preset{Name: "skip", Mappings: []Pair{
		{SourceColumn: "f", TargetParameter: mapping.SkipSentinel},
	}}

	p.Apply(rows)
	if rows[0].Target != mapping.SkipSentinel {
		t.Errorf("explicit skip should apply, got %q", rows[0].Target)
	}
}

func TestSaveFailsOnUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	store := NewStore(filepath.Join(dir, "presets"))
	err := store.Save(&Preset{Name: "p", Mappings: []Pair{}})
	if trkerrors.CodeOf(err) != trkerrors.StorageUnavailable {
		t.Errorf("code = %v, want StorageUnavailable", trkerrors.CodeOf(err))
	}

	var te *trkerrors.TrkError
	if !errors.As(err, &te) {
		t.Error("error should be a TrkError")
	}
}

func writePresetFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
