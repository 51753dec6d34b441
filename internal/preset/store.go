package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	trkerrors "trk/internal/errors"
)

// Store persists presets as <name>.json files in a single directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ValidateName rejects names unusable as both display label and file
// name. Path separators would escape the preset directory.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("preset name %q must not contain path separators", name)
	}
	return nil
}

// Save serializes the preset under its name, silently overwriting an
// existing preset of the same name. The write is staged through a
// temporary file and renamed into place, so a failed save never leaves
// a truncated preset on disk.
func (s *Store) Save(p *Preset) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return trkerrors.New(trkerrors.StorageUnavailable,
			fmt.Sprintf("cannot create preset directory %s", s.dir), err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return trkerrors.New(trkerrors.InternalError, "failed to serialize preset", err)
	}

	tmp, err := os.CreateTemp(s.dir, p.Name+".*.tmp")
	if err != nil {
		return trkerrors.New(trkerrors.StorageUnavailable,
			fmt.Sprintf("preset directory %s is not writable", s.dir), err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return trkerrors.New(trkerrors.StorageUnavailable, "failed to write preset", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return trkerrors.New(trkerrors.StorageUnavailable, "failed to write preset", err)
	}

	if err := os.Rename(tmpPath, s.path(p.Name)); err != nil {
		_ = os.Remove(tmpPath)
		return trkerrors.New(trkerrors.StorageUnavailable, "failed to store preset", err)
	}

	return nil
}

// List enumerates available preset names, sorted. An absent preset
// directory means no presets yet, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, trkerrors.New(trkerrors.StorageUnavailable,
			fmt.Sprintf("cannot read preset directory %s", s.dir), err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)

	return names, nil
}

// Load reads the preset stored under name. Returns PresetNotFound when
// no such preset exists and PresetCorrupt when the stored data cannot
// be parsed or lacks the mappings field.
func (s *Store) Load(name string) (*Preset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, trkerrors.New(trkerrors.PresetNotFound,
				fmt.Sprintf("no preset named %q", name), err)
		}
		return nil, trkerrors.New(trkerrors.StorageUnavailable,
			fmt.Sprintf("cannot read preset %q", name), err)
	}

	// Mappings must be distinguishable between "absent" and "empty",
	// hence the pointer. An absent field is a corrupt preset.
	var raw struct {
		Name     string  `json:"name"`
		Mappings *[]Pair `json:"mappings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, trkerrors.New(trkerrors.PresetCorrupt,
			fmt.Sprintf("preset %q is not valid JSON", name), err)
	}
	if raw.Mappings == nil {
		return nil, trkerrors.New(trkerrors.PresetCorrupt,
			fmt.Sprintf("preset %q lacks the mappings field", name), nil)
	}

	p := &Preset{Name: raw.Name, Mappings: *raw.Mappings}
	if p.Name == "" {
		p.Name = name
	}

	return p, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
