package intake

import (
	"encoding/json"
	"errors"
	"testing"

	"yearcompass/internal/extract"
)

func TestParseDocument_NullCategoriesAccepted(t *testing.T) {
	raw := json.RawMessage(`{
		"aspirations": {"career": "grow", "health": null, "finance": null, "learning": null, "spirituality": null, "lifestyle": null},
		"constraints": {"work_schedule": null, "energy_patterns": null, "commitments": null, "available_daily_time": null},
		"derailment_factors": [],
		"top_3_priorities": ["career"],
		"coaching_style": "gentle"
	}`)
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc.Aspirations.Health != nil {
		t.Errorf("null category should stay nil")
	}
	if doc.Aspirations.Career == nil || *doc.Aspirations.Career != "grow" {
		t.Errorf("unexpected aspirations: %+v", doc.Aspirations)
	}
}

func TestParseDocument_MissingSections(t *testing.T) {
	for _, raw := range []string{
		`{"constraints": {}}`,
		`{"aspirations": {}}`,
		`[1,2,3]`,
	} {
		_, err := ParseDocument(json.RawMessage(raw))
		if !errors.Is(err, extract.ErrMalformedDocument) {
			t.Errorf("ParseDocument(%s): expected malformed document error, got %v", raw, err)
		}
	}
}

func TestParseDocument_TruncatesPriorities(t *testing.T) {
	raw := json.RawMessage(`{
		"aspirations": {},
		"constraints": {},
		"top_3_priorities": ["a", "b", "c", "d", "e"]
	}`)
	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.TopPriorities) != 3 {
		t.Errorf("expected at most 3 priorities, got %d", len(doc.TopPriorities))
	}
}

func TestResponseDocumentRoundTrip(t *testing.T) {
	doc := SampleDocument()
	row := NewResponse("user-1", doc)
	back := row.Document()
	if back.CoachingStyle != doc.CoachingStyle {
		t.Errorf("coaching style lost: %q", back.CoachingStyle)
	}
	if len(back.TopPriorities) != len(doc.TopPriorities) {
		t.Errorf("priorities lost: %+v", back.TopPriorities)
	}
	if back.Constraints.WorkSchedule == nil || *back.Constraints.WorkSchedule != *doc.Constraints.WorkSchedule {
		t.Errorf("constraints lost: %+v", back.Constraints)
	}
}
