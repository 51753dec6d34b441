// Package preset persists named field-mapping selections so a mapping
// session can be reproduced across runs. One JSON file per preset,
// keyed by name, under the application config directory.
package preset

import (
	"trk/internal/mapping"
)

// Pair is one confirmed source-to-target correspondence. The target
// may be the skip sentinel: "deliberately unmapped" is worth saving.
type Pair struct {
	SourceColumn    string `json:"sourceColumn"`
	TargetParameter string `json:"targetParameter"`
}

// Preset is a named snapshot of confirmed mappings
type Preset struct {
	Name     string `json:"name"`
	Mappings []Pair `json:"mappings"`
}

// FromRows captures the current selections of a mapping session
func FromRows(name string, rows []mapping.Row) *Preset {
	pairs := make([]Pair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, Pair{
			SourceColumn:    row.SourceField,
			TargetParameter: row.Target,
		})
	}
	return &Preset{Name: name, Mappings: pairs}
}

// Apply overlays the preset onto rows in place. For each stored pair
// the matching row (by source field) takes the stored target, but only
// when that target is still among the row's candidates. Rows with no
// stored pair, and pairs whose source or target no longer exists, are
// left untouched: vocabulary drift between save and reapply is
// expected and never an error.
func (p *Preset) Apply(rows []mapping.Row) {
	for _, pair := range p.Mappings {
		for i := range rows {
			if rows[i].SourceField != pair.SourceColumn {
				continue
			}
			for _, candidate := range rows[i].Candidates {
				if candidate == pair.TargetParameter {
					rows[i].Target = pair.TargetParameter
					break
				}
			}
			break
		}
	}
}
