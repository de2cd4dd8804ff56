package intake

import "gorm.io/gorm"

func strptr(s string) *string { return &s }

// SampleDocument is a filled-in intake for demo environments and tests,
// letting the dashboard be exercised without sitting through the interview.
func SampleDocument() *Document {
	return &Document{
		Aspirations: Aspirations{
			Career:       strptr("Get promoted and build new skills"),
			Health:       strptr("Exercise 3x per week and eat better"),
			Finance:      strptr("Save $10,000 this year"),
			Learning:     strptr("Learn Spanish to B1 level"),
			Spirituality: strptr("Daily meditation practice"),
			Lifestyle:    strptr("Better work-life balance"),
		},
		Constraints: Constraints{
			WorkSchedule:       strptr("9-6 Monday to Friday with 30-min commute"),
			EnergyPatterns:     strptr("Morning person, crash around 3pm, second wind at 7pm"),
			Commitments:        strptr("Family dinner on Sundays"),
			AvailableDailyTime: strptr("2-3 hours on weekdays, 6-8 hours on weekends"),
		},
		DerailmentFactors: []string{"work stress", "lack of motivation", "unexpected events"},
		TopPriorities:     []string{"Career growth", "Health improvement", "Financial security"},
		CoachingStyle:     "Firm but compassionate - push me but recognize when I'm struggling",
	}
}

// SkipInterview commits the sample document for a user, bypassing the chat.
func SkipInterview(db *gorm.DB, userID string) error {
	return SaveResponse(db, userID, SampleDocument())
}
