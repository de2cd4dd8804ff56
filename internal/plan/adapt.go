package plan

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"yearcompass/internal/extract"
	"yearcompass/internal/llm"
	"yearcompass/internal/prompts"
	"yearcompass/internal/task"
)

// Adaptation is the model's proposed set of plan adjustments.
type Adaptation struct {
	Analysis string             `json:"analysis"`
	Options  []AdaptationOption `json:"options"`
}

type AdaptationOption struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Changes     json.RawMessage `json:"changes"`
}

type historyEntry struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	Area      string `json:"area"`
	Completed bool   `json:"completed"`
}

// Adapt asks the model for adjustment options based on the last 30 days of
// completion history plus the user's stated reason. Nothing is applied
// automatically; the user picks an option in the client.
func (g *Generator) Adapt(ctx context.Context, userID, reason string) (*Adaptation, error) {
	year := time.Now().Year()
	current, err := ActivePlan(g.db, userID, year)
	if err != nil {
		return nil, err
	}

	history, err := recentHistory(g.db, userID, 30)
	if err != nil {
		return nil, err
	}

	var planDoc json.RawMessage = json.RawMessage(current.PlanData)
	text, err := llm.AdaptationReply(ctx, g.gateway, planDoc, history, reason, prompts.Adaptation)
	if err != nil {
		return nil, err
	}

	var adaptation Adaptation
	if err := extract.Into(text, &adaptation); err != nil {
		return nil, err
	}
	if len(adaptation.Options) == 0 {
		return nil, ErrInvalidStructure
	}
	return &adaptation, nil
}

func recentHistory(db *gorm.DB, userID string, days int) ([]historyEntry, error) {
	since := time.Now().AddDate(0, 0, -days).Format(task.DateLayout)
	var tasks []task.DailyTask
	if err := db.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc, order_index asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	history := make([]historyEntry, len(tasks))
	for i, t := range tasks {
		history[i] = historyEntry{Date: t.Date, Title: t.Title, Area: t.Area, Completed: t.Completed}
	}
	return history, nil
}
