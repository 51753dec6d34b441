package mapping

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the flat list of parameter display names available on
// one element kind. Data-source adapters dump these as YAML lists.
type Vocabulary []string

// LoadVocabulary reads a parameter-name list from a YAML file. Accepts
// either a bare list or a mapping with a "parameters" key, so adapters
// can attach metadata without breaking older files.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		var wrapped struct {
			Parameters []string `yaml:"parameters"`
		}
		if err2 := yaml.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
		}
		names = wrapped.Parameters
	}

	vocab := make(Vocabulary, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		vocab = append(vocab, name)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no parameter names", path)
	}

	return vocab, nil
}
