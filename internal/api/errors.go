package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yearcompass/internal/extract"
	"yearcompass/internal/intake"
	"yearcompass/internal/llm"
	"yearcompass/internal/plan"
)

// respondError translates domain errors into HTTP responses. Upstream model
// failures are logged in full but reported generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, extract.ErrMalformedDocument), errors.Is(err, plan.ErrInvalidStructure):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      err.Error(),
			"suggestion": intake.Suggestion,
		})
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrEmptyResponse):
		log.Printf("[API] upstream model error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI service unavailable"})
	default:
		log.Printf("[API] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
