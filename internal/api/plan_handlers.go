package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yearcompass/internal/auth"
	"yearcompass/internal/db"
	"yearcompass/internal/plan"
)

// POST /plan — generate (or regenerate) the year plan from committed intake
func GeneratePlanHandler(generator *plan.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		out, err := generator.Generate(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"plan":         json.RawMessage(out.Plan.PlanData),
			"vision":       out.Vision,
			"year":         out.Plan.Year,
			"tasksCreated": out.TasksCreated,
		})
	}
}

// GET /plan?year= — the active plan for a year (defaults to current)
func GetPlanHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		year := time.Now().Year()
		if q := c.Query("year"); q != "" {
			parsed, err := strconv.Atoi(q)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
				return
			}
			year = parsed
		}

		current, err := plan.ActivePlan(db.DB, userID, year)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"plan":      json.RawMessage(current.PlanData),
			"vision":    current.Vision,
			"year":      current.Year,
			"version":   current.Version,
			"createdAt": current.CreatedAt,
		})
	}
}

// POST /plan/adapt — propose plan adjustments from recent completion history
func AdaptPlanHandler(generator *plan.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Reason == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
			return
		}

		adaptation, err := generator.Adapt(c.Request.Context(), userID, req.Reason)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, adaptation)
	}
}
