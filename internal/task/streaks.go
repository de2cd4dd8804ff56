package task

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tracker maintains the daily-completion streak. Streaks are ratchets by
// default: crediting happens when a day becomes fully complete, and
// un-completing a task later does not take the credit back. Strict mode
// recomputes instead, for deployments that want the honest number.
type Tracker struct {
	db     *gorm.DB
	strict bool
}

func NewTracker(db *gorm.DB, strict bool) *Tracker {
	return &Tracker{db: db, strict: strict}
}

// RecordCompletion re-evaluates the streak after a task was marked complete
// on the given date. No-op unless every task for that date is complete.
// Re-running for a date that already advanced the streak is also a no-op;
// without that guard a toggle-off/toggle-on cycle would recompute from the
// already-advanced row and drift.
func (t *Tracker) RecordCompletion(userID, date string) error {
	tasks, err := TasksFor(t.db, userID, date)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}
	for _, tk := range tasks {
		if !tk.Completed {
			return nil
		}
	}

	existing, err := t.streakRow(userID)
	if err != nil {
		return err
	}
	if existing != nil && existing.LastUpdated == date {
		return nil
	}

	yesterday, err := previousDay(date)
	if err != nil {
		return err
	}
	newCount := 1
	longest := newCount
	if existing != nil {
		if existing.LastUpdated == yesterday {
			newCount = existing.CurrentCount + 1
		}
		longest = existing.LongestCount
	}
	if newCount > longest {
		longest = newCount
	}

	return t.upsert(userID, newCount, longest, date)
}

// RecordUncompletion runs when a task is toggled back off. Ratchet policy
// ignores it; strict mode recomputes the consecutive run ending at the most
// recent fully-complete day.
func (t *Tracker) RecordUncompletion(userID, date string) error {
	if !t.strict {
		return nil
	}
	tasks, err := TasksFor(t.db, userID, date)
	if err != nil {
		return err
	}
	if allComplete(tasks) {
		return nil
	}

	existing, err := t.streakRow(userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	count := 0
	day := date
	for {
		prev, err := previousDay(day)
		if err != nil {
			return err
		}
		day = prev
		dayTasks, err := TasksFor(t.db, userID, day)
		if err != nil {
			return err
		}
		if len(dayTasks) == 0 || !allComplete(dayTasks) {
			break
		}
		count++
	}

	lastComplete := existing.LastUpdated
	if count == 0 {
		lastComplete = ""
	} else {
		lastComplete, err = previousDay(date)
		if err != nil {
			return err
		}
	}
	return t.upsert(userID, count, existing.LongestCount, lastComplete)
}

// StreaksFor lists all streak rows for a user.
func StreaksFor(db *gorm.DB, userID string) ([]Streak, error) {
	var streaks []Streak
	err := db.Where("user_id = ?", userID).Find(&streaks).Error
	return streaks, err
}

func (t *Tracker) streakRow(userID string) (*Streak, error) {
	var s Streak
	err := t.db.Where("user_id = ? AND streak_type = ?", userID, TypeDailyCompletion).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (t *Tracker) upsert(userID string, current, longest int, lastUpdated string) error {
	row := Streak{
		UserID:       userID,
		StreakType:   TypeDailyCompletion,
		CurrentCount: current,
		LongestCount: longest,
		LastUpdated:  lastUpdated,
	}
	return t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "streak_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_count", "longest_count", "last_updated", "updated_at"}),
	}).Create(&row).Error
}

func allComplete(tasks []DailyTask) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, tk := range tasks {
		if !tk.Completed {
			return false
		}
	}
	return true
}

func previousDay(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format(DateLayout), nil
}
