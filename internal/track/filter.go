package track

import "strings"

// CategoryFilter selects which record categories a filtered view shows
type CategoryFilter string

const (
	FilterAll      CategoryFilter = "all"
	FilterNew      CategoryFilter = "new"
	FilterModified CategoryFilter = "modified"
	FilterDeleted  CategoryFilter = "deleted"
)

// ParseCategoryFilter parses a filter selector from CLI or config input
func ParseCategoryFilter(s string) (CategoryFilter, bool) {
	switch CategoryFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, true
	case FilterNew:
		return FilterNew, true
	case FilterModified:
		return FilterModified, true
	case FilterDeleted:
		return FilterDeleted, true
	default:
		return "", false
	}
}

// matches reports whether the filter admits the given category
func (f CategoryFilter) matches(c ChangeCategory) bool {
	switch f {
	case FilterNew:
		return c == CategoryNew
	case FilterModified:
		return c == CategoryModified
	case FilterDeleted:
		return c == CategoryDeleted
	default:
		return true
	}
}

// Filter returns the records admitted by both the category filter and the
// free-text query, preserving input order. The query matches
// case-insensitively as a substring of the track ID, number, name, or the
// record's summary string. Both criteria compose by AND. Pure function:
// the view is recomputed wholesale from the full set on every call, so
// repeated filtering is idempotent and independent of prior filter state.
func Filter(records []ChangeRecord, category CategoryFilter, query string) []ChangeRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]ChangeRecord, 0, len(records))
	for i := range records {
		rec := &records[i]
		if !category.matches(rec.Category) {
			continue
		}
		if query != "" && !matchesQuery(rec, query) {
			continue
		}
		filtered = append(filtered, *rec)
	}

	return filtered
}

// matchesQuery checks the lowered query against each searchable field
func matchesQuery(rec *ChangeRecord, loweredQuery string) bool {
	for _, field := range []string{rec.TrackID, rec.Number, rec.Name, rec.Summary()} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
