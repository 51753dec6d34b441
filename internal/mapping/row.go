// Package mapping proposes correspondences between two parameter-name
// vocabularies when converting one element kind into another (filled
// regions into rooms). Matching is best-effort with a strict priority
// order; an unmapped field always falls back to an explicit skip rather
// than a wrong guess.
package mapping

// SkipSentinel is the reserved "do not map this field" choice. It is
// always the first candidate offered for every row.
const SkipSentinel = "(none)"

// Row is one proposed or confirmed correspondence in a mapping session
type Row struct {
	// SourceField is the source-vocabulary name, unique among rows
	SourceField string `json:"source_field"`

	// Candidates is the selectable target list, skip sentinel first
	Candidates []string `json:"candidates"`

	// Target is the currently selected candidate. Initialized by the
	// suggestion engine, mutable by the user afterward.
	Target string `json:"target"`
}

// BuildRows constructs one row per source field, injecting the skip
// sentinel as the first candidate and pre-selecting the engine's
// suggestion for each row.
func BuildRows(sourceFields, targetVocab []string, table Table) []Row {
	rows := make([]Row, 0, len(sourceFields))
	for _, src := range sourceFields {
		candidates := make([]string, 0, len(targetVocab)+1)
		candidates = append(candidates, SkipSentinel)
		candidates = append(candidates, targetVocab...)

		rows = append(rows, Row{
			SourceField: src,
			Candidates:  candidates,
			Target:      Suggest(src, targetVocab, table),
		})
	}
	return rows
}
