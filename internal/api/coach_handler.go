package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yearcompass/internal/auth"
	"yearcompass/internal/db"
	"yearcompass/internal/llm"
	"yearcompass/internal/plan"
	"yearcompass/internal/prompts"
	"yearcompass/internal/task"
)

// POST /coach — a short check-in reply grounded in today's progress
func CoachHandler(gateway llm.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		today := time.Now().Format(task.DateLayout)
		tasks, err := task.TasksFor(db.DB, userID, today)
		if err != nil {
			respondError(c, err)
			return
		}
		streaks, err := task.StreaksFor(db.DB, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		vision := ""
		if current, err := plan.ActivePlan(db.DB, userID, time.Now().Year()); err == nil {
			vision = current.Vision
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}

		coachContext := gin.H{
			"date":    today,
			"vision":  vision,
			"tasks":   tasks,
			"stats":   task.StatsFor(tasks),
			"streaks": streaks,
		}
		reply, err := llm.CoachReply(c.Request.Context(), gateway, coachContext, req.Message, prompts.DailyCoach)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
