package mapping

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// KeywordsFile is the default filename for a keyword table override
const KeywordsFile = "keywords.toml"

//go:embed keywords.toml
var defaultKeywordsTOML []byte

// Entry maps one keyword to its ordered list of preferred target names
type Entry struct {
	Keyword   string
	Preferred []string
}

// Table is the keyword fallback table, scanned in order. The table is
// data, not code: extending the fallback vocabulary means editing
// keywords.toml, not the matching algorithm.
type Table []Entry

// keywordsFile is the TOML shape: [keywords] name = ["Name", "Room Name"]
type keywordsFile struct {
	Keywords map[string][]string `toml:"keywords"`
}

// DefaultTable returns the built-in keyword table
func DefaultTable() Table {
	table, err := parseTable(defaultKeywordsTOML)
	if err != nil {
		// The embedded table is fixed at build time; a parse failure
		// here is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded keyword table invalid: %v", err))
	}
	return table
}

// LoadTable reads a keyword table from a TOML file. A missing path
// falls back to the built-in table; a present but malformed file is an
// error, not a silent fallback.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTable(), nil
		}
		return nil, fmt.Errorf("failed to read keyword table: %w", err)
	}

	table, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse keyword table %s: %w", path, err)
	}
	return table, nil
}

func parseTable(data []byte) (Table, error) {
	var file keywordsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Keywords) == 0 {
		return nil, fmt.Errorf("keyword table has no [keywords] entries")
	}

	// TOML maps are unordered; sort keywords for a deterministic scan
	// order across runs.
	table := make(Table, 0, len(file.Keywords))
	for keyword, preferred := range file.Keywords {
		table = append(table, Entry{
			Keyword:   strings.ToLower(keyword),
			Preferred: preferred,
		})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Keyword < table[j].Keyword })

	return table, nil
}
