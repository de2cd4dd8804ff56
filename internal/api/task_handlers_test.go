package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yearcompass/internal/db"
	"yearcompass/internal/task"
)

func taskRouter(userID string, strict bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tracker := task.NewTracker(db.DB, strict)
	r := gin.New()
	r.Use(asUser(userID))
	r.GET("/tasks", ListTasksHandler())
	r.POST("/tasks", ToggleTaskHandler(tracker))
	r.PATCH("/tasks/:id", RescheduleTaskHandler())
	r.DELETE("/tasks/:id", DeleteTaskHandler())
	return r
}

func seedTasks(t *testing.T, userID, date string, titles ...string) []task.DailyTask {
	t.Helper()
	templates := make([]task.Template, len(titles))
	for i, title := range titles {
		templates[i] = task.Template{Title: title, Area: "health"}
	}
	rows, err := task.MaterializeDay(db.DB, userID, 1, date, templates)
	if err != nil {
		t.Fatalf("failed to seed tasks: %v", err)
	}
	return rows
}

func TestListTasksHandler_EmptyDay(t *testing.T) {
	setupAPIDB(t)
	r := taskRouter(uuid.NewString(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks?date=2026-03-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Tasks []task.DailyTask `json:"tasks"`
		Stats task.Stats       `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(resp.Tasks) != 0 || resp.Stats.Total != 0 {
		t.Errorf("expected empty day, got %+v", resp)
	}
}

func TestListTasksHandler_InvalidDate(t *testing.T) {
	setupAPIDB(t)
	r := taskRouter(uuid.NewString(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks?date=03/02/2026", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListTasksHandler_StatsAndMessage(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	rows := seedTasks(t, userID, "2026-03-02", "Walk", "Read")
	db.DB.Model(&rows[0]).Update("completed", true)
	r := taskRouter(userID, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks?date=2026-03-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Stats   task.Stats `json:"stats"`
		Message string     `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp.Stats.Completed != 1 || resp.Stats.Total != 2 {
		t.Errorf("unexpected stats: %+v", resp.Stats)
	}
	if resp.Message == "" {
		t.Errorf("expected an encouragement message")
	}
}

func TestToggleTaskHandler_CompletingDayAdvancesStreak(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	date := time.Now().Format(task.DateLayout)
	rows := seedTasks(t, userID, date, "Only task")
	r := taskRouter(userID, false)

	w := postJSON(r, "/tasks", gin.H{"taskId": rows[0].ID, "completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	streaks, err := task.StreaksFor(db.DB, userID)
	if err != nil {
		t.Fatalf("StreaksFor: %v", err)
	}
	if len(streaks) != 1 || streaks[0].CurrentCount != 1 || streaks[0].LastUpdated != date {
		t.Errorf("expected streak of 1 for %s, got %+v", date, streaks)
	}
}

func TestToggleTaskHandler_PartialDayNoStreak(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	date := time.Now().Format(task.DateLayout)
	rows := seedTasks(t, userID, date, "First", "Second")
	r := taskRouter(userID, false)

	w := postJSON(r, "/tasks", gin.H{"taskId": rows[0].ID, "completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	streaks, _ := task.StreaksFor(db.DB, userID)
	if len(streaks) != 0 {
		t.Errorf("partial completion must not create a streak: %+v", streaks)
	}
}

func TestToggleTaskHandler_UncompleteKeepsRatchet(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	date := time.Now().Format(task.DateLayout)
	rows := seedTasks(t, userID, date, "Only task")
	r := taskRouter(userID, false)

	postJSON(r, "/tasks", gin.H{"taskId": rows[0].ID, "completed": true})
	w := postJSON(r, "/tasks", gin.H{"taskId": rows[0].ID, "completed": false})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	streaks, _ := task.StreaksFor(db.DB, userID)
	if len(streaks) != 1 || streaks[0].CurrentCount != 1 {
		t.Errorf("ratchet policy should keep the credit: %+v", streaks)
	}

	var row task.DailyTask
	db.DB.First(&row, rows[0].ID)
	if row.Completed || row.CompletedAt != nil {
		t.Errorf("task should be marked incomplete: %+v", row)
	}
}

func TestToggleTaskHandler_OtherUsersTask(t *testing.T) {
	setupAPIDB(t)
	owner := uuid.NewString()
	rows := seedTasks(t, owner, "2026-03-02", "Private task")
	r := taskRouter(uuid.NewString(), false)

	w := postJSON(r, "/tasks", gin.H{"taskId": rows[0].ID, "completed": true})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's task, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleTaskHandler_MissingFields(t *testing.T) {
	setupAPIDB(t)
	r := taskRouter(uuid.NewString(), false)

	w := postJSON(r, "/tasks", gin.H{"taskId": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRescheduleTaskHandler(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	rows := seedTasks(t, userID, "2026-03-02", "Movable")
	db.DB.Model(&rows[0]).Update("completed", true)
	r := taskRouter(userID, false)

	b, _ := json.Marshal(gin.H{"newDate": "2026-03-03"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/tasks/%d", rows[0].ID), bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var row task.DailyTask
	db.DB.First(&row, rows[0].ID)
	if row.Date != "2026-03-03" {
		t.Errorf("expected task moved to 2026-03-03, got %s", row.Date)
	}
	if !row.Completed {
		t.Errorf("rescheduling must not touch completion state")
	}
}

func TestDeleteTaskHandler(t *testing.T) {
	setupAPIDB(t)
	userID := uuid.NewString()
	rows := seedTasks(t, userID, "2026-03-02", "Doomed")
	r := taskRouter(userID, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/tasks/%d", rows[0].ID), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var count int64
	db.DB.Model(&task.DailyTask{}).Where("id = ?", rows[0].ID).Count(&count)
	if count != 0 {
		t.Errorf("task should be gone")
	}
}

func TestDeleteTaskHandler_NotFound(t *testing.T) {
	setupAPIDB(t)
	r := taskRouter(uuid.NewString(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/tasks/99999", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
