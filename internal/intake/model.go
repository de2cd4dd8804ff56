package intake

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Response is the persisted intake, one row per user, aspiration and
// constraint fields flattened into columns. A later intake overwrites the
// existing row.
type Response struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"size:36;uniqueIndex;not null"`
	CompletedAt time.Time `json:"completed_at"`

	CareerGoals       *string `json:"career_goals"`
	HealthGoals       *string `json:"health_goals"`
	FinanceGoals      *string `json:"finance_goals"`
	LearningGoals     *string `json:"learning_goals"`
	SpiritualityGoals *string `json:"spirituality_goals"`
	LifestyleGoals    *string `json:"lifestyle_goals"`

	WorkSchedule        *string `json:"work_schedule"`
	EnergyPatterns      *string `json:"energy_patterns"`
	ExistingCommitments *string `json:"existing_commitments"`
	AvailableDailyTime  *string `json:"available_daily_time"`

	DerailmentFactors datatypes.JSON `json:"derailment_factors"`
	TopPriorities     datatypes.JSON `json:"top_priorities"`
	CoachingStyle     string         `json:"coaching_style"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Response) TableName() string {
	return "intake_responses"
}

// NewResponse flattens a validated document into a row for userID.
func NewResponse(userID string, doc *Document) Response {
	derail, _ := json.Marshal(doc.DerailmentFactors)
	prios, _ := json.Marshal(doc.TopPriorities)
	return Response{
		UserID:              userID,
		CompletedAt:         time.Now().UTC(),
		CareerGoals:         doc.Aspirations.Career,
		HealthGoals:         doc.Aspirations.Health,
		FinanceGoals:        doc.Aspirations.Finance,
		LearningGoals:       doc.Aspirations.Learning,
		SpiritualityGoals:   doc.Aspirations.Spirituality,
		LifestyleGoals:      doc.Aspirations.Lifestyle,
		WorkSchedule:        doc.Constraints.WorkSchedule,
		EnergyPatterns:      doc.Constraints.EnergyPatterns,
		ExistingCommitments: doc.Constraints.Commitments,
		AvailableDailyTime:  doc.Constraints.AvailableDailyTime,
		DerailmentFactors:   datatypes.JSON(derail),
		TopPriorities:       datatypes.JSON(prios),
		CoachingStyle:       doc.CoachingStyle,
	}
}

// Document reassembles the structured form from the flattened row, for
// embedding into the plan generation call.
func (r *Response) Document() Document {
	var derail, prios []string
	_ = json.Unmarshal(r.DerailmentFactors, &derail)
	_ = json.Unmarshal(r.TopPriorities, &prios)
	return Document{
		Aspirations: Aspirations{
			Career:       r.CareerGoals,
			Health:       r.HealthGoals,
			Finance:      r.FinanceGoals,
			Learning:     r.LearningGoals,
			Spirituality: r.SpiritualityGoals,
			Lifestyle:    r.LifestyleGoals,
		},
		Constraints: Constraints{
			WorkSchedule:       r.WorkSchedule,
			EnergyPatterns:     r.EnergyPatterns,
			Commitments:        r.ExistingCommitments,
			AvailableDailyTime: r.AvailableDailyTime,
		},
		DerailmentFactors: derail,
		TopPriorities:     prios,
		CoachingStyle:     r.CoachingStyle,
	}
}
