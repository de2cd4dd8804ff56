package task

import (
	"time"
)

// DateLayout is the calendar-day format used across tasks and streaks.
const DateLayout = "2006-01-02"

// DailyTask is one scheduled action for one user on one calendar day.
type DailyTask struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          string     `json:"user_id" gorm:"size:36;index:idx_task_user_date;not null"`
	PlanID          uint       `json:"plan_id" gorm:"index;not null"`
	Date            string     `json:"date" gorm:"size:10;index:idx_task_user_date;not null"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description"`
	Area            string     `json:"area" gorm:"size:32"`
	DurationMinutes int        `json:"duration_minutes"`
	TimeSuggestion  string     `json:"time_suggestion" gorm:"size:32"`
	Why             string     `json:"why"`
	Priority        int        `json:"priority"`
	OrderIndex      int        `json:"order_index"`
	Completed       bool       `json:"completed" gorm:"default:false"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (DailyTask) TableName() string {
	return "daily_tasks"
}

// Template is the plan's description of a task before it is materialized
// into a dated row.
type Template struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Area        string `json:"area"`
	Duration    int    `json:"duration"`
	Time        string `json:"time"`
	Why         string `json:"why"`
	Priority    int    `json:"priority,omitempty"`
}

// Streak is the consecutive-day counter, one row per (user, type).
type Streak struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"size:36;uniqueIndex:idx_streak_user_type;not null"`
	StreakType   string    `json:"streak_type" gorm:"size:32;uniqueIndex:idx_streak_user_type;not null"`
	CurrentCount int       `json:"current_count"`
	LongestCount int       `json:"longest_count"`
	LastUpdated  string    `json:"last_updated" gorm:"size:10"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Streak) TableName() string {
	return "streaks"
}

// TypeDailyCompletion tracks full completion of a day's task list.
const TypeDailyCompletion = "daily_completion"

// Weekday returns the lowercase English day name for a date string,
// matching the plan document's sample_tasks keys.
func Weekday(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	switch d.Weekday() {
	case time.Sunday:
		return "sunday", nil
	case time.Monday:
		return "monday", nil
	case time.Tuesday:
		return "tuesday", nil
	case time.Wednesday:
		return "wednesday", nil
	case time.Thursday:
		return "thursday", nil
	case time.Friday:
		return "friday", nil
	default:
		return "saturday", nil
	}
}

// Stats summarizes a day's completion state.
type Stats struct {
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completionRate"`
}

// StatsFor computes completion stats over a day's tasks.
func StatsFor(tasks []DailyTask) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
