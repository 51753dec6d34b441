package mapping

import "strings"

// sourcePrefixes are stripped from source field names before normalized
// comparison. Region exports prefix their parameters by element kind.
var sourcePrefixes = []string{"region_", "space_", "room_", "fr_"}

// targetPrefixes are stripped from target vocabulary names for the same
// comparison. Room parameters only ever carry these two.
var targetPrefixes = []string{"room_", "space_"}

// Suggest proposes a target vocabulary entry for one source field.
// Stages apply in strict priority order, first match wins:
//
//  1. exact match, case-insensitive
//  2. prefix-normalized match (region_/space_/room_/fr_ stripped from
//     the source, room_/space_ from targets)
//  3. keyword-table fallback: if the normalized source contains a table
//     keyword, the first preferred name present in the vocabulary wins
//  4. the skip sentinel
//
// Literal identity beats normalized identity beats keyword guessing;
// when nothing matches, skipping is safer than guessing. Pure and
// deterministic given its inputs and the table.
func Suggest(sourceField string, targetVocab []string, table Table) string {
	// Stage 1: exact
	for _, target := range targetVocab {
		if target == SkipSentinel {
			continue
		}
		if strings.EqualFold(target, sourceField) {
			return target
		}
	}

	// Stage 2: normalized
	normalized := normalize(sourceField, sourcePrefixes)
	for _, target := range targetVocab {
		if target == SkipSentinel {
			continue
		}
		if normalize(target, targetPrefixes) == normalized {
			return target
		}
	}

	// Stage 3: keyword table
	for _, entry := range table {
		if !strings.Contains(normalized, entry.Keyword) {
			continue
		}
		for _, preferred := range entry.Preferred {
			for _, target := range targetVocab {
				if strings.EqualFold(target, preferred) {
					return target
				}
			}
		}
	}

	// Stage 4: explicit skip
	return SkipSentinel
}

// normalize lowercases a field name and strips the first matching prefix
func normalize(field string, prefixes []string) string {
	lowered := strings.ToLower(field)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lowered, prefix) {
			return lowered[len(prefix):]
		}
	}
	return lowered
}
