package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yearcompass/internal/auth"
	"yearcompass/internal/convo"
	"yearcompass/internal/db"
	"yearcompass/internal/intake"
)

// POST /intake — one interview turn
func SubmitIntakeHandler(machine *intake.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			Message        string `json:"message"`
			ConversationID string `json:"conversationId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		result, err := machine.Submit(c.Request.Context(), userID, req.Message, req.ConversationID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"conversationId": result.ConversationID,
			"reply":          result.Reply,
			"state":          result.State,
			"intakeComplete": result.Complete,
			"intakeData":     result.Document,
			"questionCount":  result.TurnCount,
		})
	}
}

// GET /intake — the user's active interview, if any
func GetIntakeHandler(store *convo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var conv convo.Conversation
		err := db.DB.
			Where("user_id = ? AND type = ? AND active = ?", userID, convo.TypeIntake, true).
			Order("created_at desc").
			First(&conv).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"conversation": nil})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}

		turns, err := conv.Turns()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"conversation": gin.H{
				"id":            conv.ID,
				"messages":      turns,
				"questionCount": conv.UserTurnCount(),
			},
		})
	}
}

// POST /intake/skip — commit a sample document without the interview
func SkipIntakeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := intake.SkipInterview(db.DB, userID); err != nil {
			respondError(c, err)
			return
		}
		row, err := intake.ResponseFor(db.DB, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		doc := row.Document()
		c.JSON(http.StatusOK, gin.H{
			"intakeComplete": true,
			"intakeData":     doc,
		})
	}
}
