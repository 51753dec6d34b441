// Package track models version-to-version deltas of tracked spatial
// elements (rooms, filled regions, doors). A comparison artifact is
// produced by an external diff computation; this package only parses,
// validates, filters, and formats it.
package track

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is the current comparison artifact schema version
const SchemaVersion = 1

// ChangeCategory classifies one record's delta between versions
type ChangeCategory string

const (
	// CategoryNew indicates the element exists only in the target version
	CategoryNew ChangeCategory = "New"
	// CategoryModified indicates the element exists in both versions with differences
	CategoryModified ChangeCategory = "Modified"
	// CategoryDeleted indicates the element exists only in the base version
	CategoryDeleted ChangeCategory = "Deleted"
)

// Valid reports whether c is one of the closed category set
func (c ChangeCategory) Valid() bool {
	switch c {
	case CategoryNew, CategoryModified, CategoryDeleted:
		return true
	default:
		return false
	}
}

// ParseCategory parses a category string from an artifact
func ParseCategory(s string) (ChangeCategory, error) {
	c := ChangeCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown change category %q", s)
	}
	return c, nil
}

// ChangeRecord is one tracked element's delta between two versions.
// Records are created by the comparison source and read-only afterward.
type ChangeRecord struct {
	// Category is one of New, Modified, Deleted
	Category ChangeCategory `json:"category"`

	// TrackID is the stable tracking identifier, may be empty
	TrackID string `json:"track_id"`

	// Number is the element number in the model, may be empty
	Number string `json:"number,omitempty"`

	// Name is the element display name, may be empty
	Name string `json:"name,omitempty"`

	// Changes holds encoded parameter change descriptors.
	// Only Modified records are expected to carry any.
	Changes []string `json:"changes,omitempty"`
}

// Summary returns the parameter-change count in display form.
// The filter engine matches queries against this string as well.
func (r *ChangeRecord) Summary() string {
	if len(r.Changes) == 0 {
		return "No parameter changes"
	}
	return fmt.Sprintf("%d parameter(s) changed", len(r.Changes))
}

// Artifact is a complete comparison artifact: one immutable snapshot of
// the differences between two model versions.
type Artifact struct {
	// SchemaVersion for forward compatibility
	SchemaVersion int `json:"schema_version"`

	// BaseVersion labels the older model version
	BaseVersion string `json:"base_version,omitempty"`

	// TargetVersion labels the newer model version
	TargetVersion string `json:"target_version,omitempty"`

	// Generated is Unix epoch seconds when the comparison ran
	Generated int64 `json:"generated"`

	// Records contains all element-level changes, in comparison order
	Records []ChangeRecord `json:"records"`
}

// Violation flags a record that breaks the category/changes convention:
// New and Deleted records carry no descriptors by construction.
type Violation struct {
	Index    int
	Category ChangeCategory
	TrackID  string
}

func (v Violation) String() string {
	return fmt.Sprintf("record %d (%s, track %q) carries parameter-change descriptors",
		v.Index, v.Category, v.TrackID)
}

// NewArtifact creates an empty artifact with the current timestamp
func NewArtifact(baseVersion, targetVersion string) *Artifact {
	return &Artifact{
		SchemaVersion: SchemaVersion,
		BaseVersion:   baseVersion,
		TargetVersion: targetVersion,
		Generated:     time.Now().Unix(),
	}
}

// ParseArtifact deserializes a comparison artifact from JSON.
// Unknown categories are a hard error. Records that violate the
// category/changes convention are kept but reported as violations;
// the producer is sloppy, the data is not discarded.
func ParseArtifact(data []byte) (*Artifact, []Violation, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, nil, fmt.Errorf("failed to parse comparison artifact: %w", err)
	}

	var violations []Violation
	for i := range a.Records {
		rec := &a.Records[i]
		if !rec.Category.Valid() {
			return nil, nil, fmt.Errorf("record %d: unknown change category %q", i, rec.Category)
		}
		if rec.Category != CategoryModified && len(rec.Changes) > 0 {
			violations = append(violations, Violation{
				Index:    i,
				Category: rec.Category,
				TrackID:  rec.TrackID,
			})
		}
	}

	return &a, violations, nil
}

// ToJSON serializes the artifact to indented JSON
func (a *Artifact) ToJSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// Stats summarizes category counts for display and session logging
type Stats struct {
	New      int `json:"new"`
	Modified int `json:"modified"`
	Deleted  int `json:"deleted"`
}

// ComputeStats tallies records per category
func (a *Artifact) ComputeStats() Stats {
	var s Stats
	for i := range a.Records {
		switch a.Records[i].Category {
		case CategoryNew:
			s.New++
		case CategoryModified:
			s.Modified++
		case CategoryDeleted:
			s.Deleted++
		}
	}
	return s
}

// IsEmpty returns true if the artifact contains no records
func (a *Artifact) IsEmpty() bool {
	return len(a.Records) == 0
}
