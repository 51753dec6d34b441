package track

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		changes []string
		want    string
	}{
		{"no changes", nil, "No parameter changes"},
		{"one change", []string{"Area: '1' → '2'"}, "1 parameter(s) changed"},
		{"three changes", []string{"a", "b", "c"}, "3 parameter(s) changed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ChangeRecord{Category: CategoryModified, Changes: tt.changes}
			if got := rec.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"New", "Modified", "Deleted"} {
		if _, err := ParseCategory(valid); err != nil {
			t.Errorf("ParseCategory(%q) failed: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "new", "Changed", "MODIFIED"} {
		if _, err := ParseCategory(invalid); err == nil {
			t.Errorf("ParseCategory(%q) should fail", invalid)
		}
	}
}

func TestParseArtifactRoundTrip(t *testing.T) {
	original := NewArtifact("2026-07-01", "2026-08-01")
	original.Records = testRecords()

	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	parsed, violations, err := ParseArtifact(data)
	if err != nil {
		t.Fatalf("ParseArtifact failed: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("unexpected violations: %v", violations)
	}
	if parsed.BaseVersion != original.BaseVersion || parsed.TargetVersion != original.TargetVersion {
		t.Errorf("version labels lost: %+v", parsed)
	}
	if len(parsed.Records) != len(original.Records) {
		t.Fatalf("got %d records, want %d", len(parsed.Records), len(original.Records))
	}
	if parsed.Records[1].Changes[0] != original.Records[1].Changes[0] {
		t.Errorf("descriptors lost in round trip")
	}
}

func TestParseArtifactUnknownCategory(t *testing.T) {
	data := []byte(`{"schema_version":1,"records":[{"category":"Renamed","track_id":"T-1"}]}`)
	_, _, err := ParseArtifact(data)
	if err == nil {
		t.Fatal("unknown category should be a hard error")
	}
	if !strings.Contains(err.Error(), "Renamed") {
		t.Errorf("error should name the bad category: %v", err)
	}
}

func TestParseArtifactFlagsConventionViolations(t *testing.T) {
	data := []byte(`{
		"schema_version": 1,
		"records": [
			{"category": "New", "track_id": "T-1", "changes": ["Area: '1' → '2'"]},
			{"category": "Modified", "track_id": "T-2", "changes": ["Area: '1' → '2'"]},
			{"category": "Deleted", "track_id": "T-3", "changes": ["x"]}
		]
	}`)

	artifact, violations, err := ParseArtifact(data)
	if err != nil {
		t.Fatalf("ParseArtifact failed: %v", err)
	}

	if len(violations) != 2 {
		t.Fatalf("got %d violations, want 2", len(violations))
	}
	if violations[0].Index != 0 || violations[0].Category != CategoryNew {
		t.Errorf("first violation = %+v", violations[0])
	}
	if violations[1].Index != 2 || violations[1].Category != CategoryDeleted {
		t.Errorf("second violation = %+v", violations[1])
	}

	// Violating records are kept, not discarded
	if len(artifact.Records) != 3 {
		t.Errorf("violating records dropped, got %d", len(artifact.Records))
	}
}

func TestParseArtifactMalformed(t *testing.T) {
	if _, _, err := ParseArtifact([]byte("{not json")); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestComputeStats(t *testing.T) {
	a := &Artifact{Records: testRecords()}
	stats := a.ComputeStats()
	if stats.New != 1 || stats.Modified != 2 || stats.Deleted != 1 {
		t.Errorf("ComputeStats = %+v", stats)
	}

	if !(&Artifact{}).IsEmpty() {
		t.Error("empty artifact should report IsEmpty")
	}
	if a.IsEmpty() {
		t.Error("populated artifact should not report IsEmpty")
	}
}
