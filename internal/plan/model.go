package plan

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// YearPlan is the persisted plan, one active row per (user, year). The full
// document lives in plan_data; vision is lifted into its own column for the
// dashboard header.
type YearPlan struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"size:36;index:idx_plan_user_year;not null"`
	IntakeID  uint           `json:"intake_id"`
	Year      int            `json:"year" gorm:"index:idx_plan_user_year;not null"`
	Vision    string         `json:"vision"`
	PlanData  datatypes.JSON `json:"plan_data"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	Version   int            `json:"version" gorm:"default:1"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (YearPlan) TableName() string {
	return "year_plans"
}

// ActivePlan returns the user's active plan for a year, highest version
// first. gorm.ErrRecordNotFound when none exists.
func ActivePlan(db *gorm.DB, userID string, year int) (*YearPlan, error) {
	var p YearPlan
	err := db.
		Where("user_id = ? AND year = ? AND is_active = ?", userID, year, true).
		Order("version desc").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
