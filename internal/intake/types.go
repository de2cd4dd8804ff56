package intake

import (
	"encoding/json"
	"fmt"

	"yearcompass/internal/extract"
)

// Document is the structured summary the interview must terminate in.
// Individual aspiration and constraint values may be null, but both sections
// must be present for the document to be accepted.
type Document struct {
	IntakeComplete    bool        `json:"intake_complete,omitempty"`
	Aspirations       Aspirations `json:"aspirations"`
	Constraints       Constraints `json:"constraints"`
	DerailmentFactors []string    `json:"derailment_factors"`
	TopPriorities     []string    `json:"top_3_priorities"`
	CoachingStyle     string      `json:"coaching_style"`
}

type Aspirations struct {
	Career       *string `json:"career"`
	Health       *string `json:"health"`
	Finance      *string `json:"finance"`
	Learning     *string `json:"learning"`
	Spirituality *string `json:"spirituality"`
	Lifestyle    *string `json:"lifestyle"`
}

type Constraints struct {
	WorkSchedule       *string `json:"work_schedule"`
	EnergyPatterns     *string `json:"energy_patterns"`
	Commitments        *string `json:"commitments"`
	AvailableDailyTime *string `json:"available_daily_time"`
}

// ParseDocument validates the required-field schema on an extracted value.
// Failures share extract.ErrMalformedDocument so callers treat "no JSON" and
// "JSON missing required sections" as the same recoverable condition.
func ParseDocument(raw json.RawMessage) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: not an object", extract.ErrMalformedDocument)
	}
	if _, ok := fields["aspirations"]; !ok {
		return nil, fmt.Errorf("%w: missing aspirations", extract.ErrMalformedDocument)
	}
	if _, ok := fields["constraints"]; !ok {
		return nil, fmt.Errorf("%w: missing constraints", extract.ErrMalformedDocument)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", extract.ErrMalformedDocument, err)
	}
	if len(doc.TopPriorities) > 3 {
		doc.TopPriorities = doc.TopPriorities[:3]
	}
	return &doc, nil
}
