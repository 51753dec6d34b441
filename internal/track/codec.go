package track

import (
	"fmt"
	"strings"
)

// Change is one parameter's before/after pair in structured form
type Change struct {
	// FieldName is the parameter display name
	FieldName string `json:"field_name"`
	// OldValue is the base-version value, empty when absent
	OldValue string `json:"old_value"`
	// NewValue is the target-version value, empty when absent
	NewValue string `json:"new_value"`
}

// arrow separates the old and new values in the encoded line
const arrow = "→"

// EncodeChange renders a change in its canonical single-line form:
//
//	Area: '120' → '140'
//
// Inverse of DecodeChange for field names free of ':' and the arrow,
// and values free of the arrow and of decorative surrounding quotes.
// Values are not escaped.
func EncodeChange(c Change) string {
	return fmt.Sprintf("%s: '%s' %s '%s'", c.FieldName, c.OldValue, arrow, c.NewValue)
}

// DecodeChange parses an encoded descriptor line. Best-effort and total:
// when the line lacks a colon followed by the arrow, the whole line
// becomes the field name and both values are empty. Never fails.
//
// Exactly one layer of surrounding single quotes is stripped from each
// value, without escaping, so a value whose real content begins or ends
// with an apostrophe is mis-decoded. The encoded form comes from an
// external generator; staying symmetric with it wins over fixing this.
func DecodeChange(line string) Change {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return Change{FieldName: line}
	}

	rest := line[colon+1:]
	arrowIdx := strings.Index(rest, arrow)
	if arrowIdx < 0 {
		return Change{FieldName: line}
	}

	return Change{
		FieldName: strings.TrimSpace(line[:colon]),
		OldValue:  stripQuotes(strings.TrimSpace(rest[:arrowIdx])),
		NewValue:  stripQuotes(strings.TrimSpace(rest[arrowIdx+len(arrow):])),
	}
}

// DecodeChanges decodes every descriptor carried by a record, in order
func DecodeChanges(lines []string) []Change {
	if len(lines) == 0 {
		return nil
	}
	changes := make([]Change, 0, len(lines))
	for _, line := range lines {
		changes = append(changes, DecodeChange(line))
	}
	return changes
}

// stripQuotes removes one layer of surrounding single quotes, if both
// are present
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		return s[1 : len(s)-1]
	}
	return s
}
