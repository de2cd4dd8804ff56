package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yearcompass/internal/auth"
	"yearcompass/internal/db"
	"yearcompass/internal/task"
)

// findOwnedTask loads a task by id scoped to its owner, so one user can
// never touch another's rows.
func findOwnedTask(userID, taskID string) (*task.DailyTask, error) {
	var row task.DailyTask
	err := db.DB.Where("id = ? AND user_id = ?", taskID, userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GET /tasks?date= — the day's tasks with stats, streaks, and a message
func ListTasksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		date := c.Query("date")
		if date == "" {
			date = time.Now().Format(task.DateLayout)
		}
		if _, err := time.Parse(task.DateLayout, date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}

		tasks, err := task.TasksFor(db.DB, userID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		streaks, err := task.StreaksFor(db.DB, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		stats := task.StatsFor(tasks)
		current := 0
		for _, s := range streaks {
			if s.StreakType == task.TypeDailyCompletion {
				current = s.CurrentCount
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"date":    date,
			"tasks":   tasks,
			"stats":   stats,
			"streaks": streaks,
			"message": task.Encouragement(stats.Completed, stats.Total, current),
		})
	}
}

// POST /tasks — set a task's completion state and update streaks
func ToggleTaskHandler(tracker *task.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			TaskID    *uint `json:"taskId"`
			Completed *bool `json:"completed"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.TaskID == nil || req.Completed == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "taskId and completed are required"})
			return
		}

		var row task.DailyTask
		err := db.DB.Where("id = ? AND user_id = ?", *req.TaskID, userID).First(&row).Error
		if err != nil {
			respondError(c, err)
			return
		}

		row.Completed = *req.Completed
		if *req.Completed {
			now := time.Now()
			row.CompletedAt = &now
		} else {
			row.CompletedAt = nil
		}
		if err := db.DB.Save(&row).Error; err != nil {
			respondError(c, err)
			return
		}

		if *req.Completed {
			err = tracker.RecordCompletion(userID, row.Date)
		} else {
			err = tracker.RecordUncompletion(userID, row.Date)
		}
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"task": row})
	}
}

// PATCH /tasks/:id — move a task to another day
func RescheduleTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			NewDate string `json:"newDate"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.NewDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "newDate is required"})
			return
		}
		if _, err := time.Parse(task.DateLayout, req.NewDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid newDate, expected YYYY-MM-DD"})
			return
		}

		row, err := findOwnedTask(userID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		row.Date = req.NewDate
		if err := db.DB.Save(row).Error; err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"task": row})
	}
}

// DELETE /tasks/:id
func DeleteTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		row, err := findOwnedTask(userID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if err := db.DB.Delete(row).Error; err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
