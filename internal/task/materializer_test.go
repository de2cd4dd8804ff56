package task

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskDB(t *testing.T) *gorm.DB {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&DailyTask{}, &Streak{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	for _, table := range []string{"daily_tasks", "streaks"} {
		if err := dbConn.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s: %v", table, err)
		}
	}
	return dbConn
}

func sampleTemplates() []Template {
	return []Template{
		{Title: "Wake at 6am", Area: "health", Duration: 0, Time: "6:00 AM", Why: "Anchor", Priority: 1},
		{Title: "Morning meditation", Area: "spirituality", Duration: 10, Time: "6:05 AM", Why: "Foundation"},
		{Title: "15-min walk", Area: "health", Duration: 15, Time: "6:20 AM", Why: "Energy"},
	}
}

func TestMaterializeDay_CreatesOrderedRows(t *testing.T) {
	dbConn := setupTaskDB(t)
	userID := uuid.NewString()

	rows, err := MaterializeDay(dbConn, userID, 1, "2026-01-05", sampleTemplates())
	if err != nil {
		t.Fatalf("MaterializeDay failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.OrderIndex != i {
			t.Errorf("row %d has order index %d", i, r.OrderIndex)
		}
	}
	if rows[0].Title != "Wake at 6am" || rows[0].Priority != 1 {
		t.Errorf("template fields not carried over: %+v", rows[0])
	}
}

func TestMaterializeDay_Idempotent(t *testing.T) {
	dbConn := setupTaskDB(t)
	userID := uuid.NewString()

	if _, err := MaterializeDay(dbConn, userID, 1, "2026-01-05", sampleTemplates()); err != nil {
		t.Fatalf("first materialize: %v", err)
	}
	second := []Template{{Title: "Only task", Area: "career", Duration: 20, Time: "8:00 AM", Why: "Focus"}}
	if _, err := MaterializeDay(dbConn, userID, 2, "2026-01-05", second); err != nil {
		t.Fatalf("second materialize: %v", err)
	}

	tasks, err := TasksFor(dbConn, userID, "2026-01-05")
	if err != nil {
		t.Fatalf("TasksFor: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Only task" {
		t.Errorf("expected exactly the second call's task set, got %+v", tasks)
	}
}

func TestMaterializeDay_EmptyDay(t *testing.T) {
	dbConn := setupTaskDB(t)
	userID := uuid.NewString()

	rows, err := MaterializeDay(dbConn, userID, 1, "2026-01-04", nil)
	if err != nil {
		t.Fatalf("MaterializeDay failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows for an empty day")
	}
}

func TestStatsFor(t *testing.T) {
	tasks := []DailyTask{
		{Completed: true}, {Completed: true}, {Completed: false},
	}
	s := StatsFor(tasks)
	if s.Completed != 2 || s.Total != 3 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.CompletionRate < 66.6 || s.CompletionRate > 66.7 {
		t.Errorf("expected ~66.67, got %f", s.CompletionRate)
	}
	if empty := StatsFor(nil); empty.CompletionRate != 0 {
		t.Errorf("empty day should have rate 0")
	}
}

func TestWeekday(t *testing.T) {
	// 2026-01-05 is a Monday.
	day, err := Weekday("2026-01-05")
	if err != nil || day != "monday" {
		t.Errorf("expected monday, got %q (%v)", day, err)
	}
	day, err = Weekday("2026-01-04")
	if err != nil || day != "sunday" {
		t.Errorf("expected sunday, got %q (%v)", day, err)
	}
	if _, err := Weekday("not-a-date"); err == nil {
		t.Errorf("expected error for bad date")
	}
}
