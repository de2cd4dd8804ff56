package task

import (
	"gorm.io/gorm"
)

// MaterializeDay turns a day's task templates into persisted rows. Existing
// rows for the same (user, date) are removed first, so regenerating a plan
// on the same day replaces rather than duplicates. An empty template list
// just clears the day.
func MaterializeDay(db *gorm.DB, userID string, planID uint, date string, templates []Template) ([]DailyTask, error) {
	if err := db.Where("user_id = ? AND date = ?", userID, date).Delete(&DailyTask{}).Error; err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, nil
	}

	rows := make([]DailyTask, len(templates))
	for i, tpl := range templates {
		rows[i] = DailyTask{
			UserID:          userID,
			PlanID:          planID,
			Date:            date,
			Title:           tpl.Title,
			Description:     tpl.Description,
			Area:            tpl.Area,
			DurationMinutes: tpl.Duration,
			TimeSuggestion:  tpl.Time,
			Why:             tpl.Why,
			Priority:        tpl.Priority,
			OrderIndex:      i,
		}
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TasksFor lists a user's tasks for one day in schedule order.
func TasksFor(db *gorm.DB, userID, date string) ([]DailyTask, error) {
	var tasks []DailyTask
	err := db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("order_index asc").
		Find(&tasks).Error
	return tasks, err
}
