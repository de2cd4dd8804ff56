package convo

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"yearcompass/internal/llm"
)

// TypeIntake is the only conversation type today; the column exists so other
// coached flows can share the table.
const TypeIntake = "intake"

// Conversation is the durable message history for one multi-turn exchange.
// Turns are immutable once appended; the ordered sequence is the only
// mechanism carrying context between model calls.
type Conversation struct {
	ID        string         `json:"id" gorm:"primaryKey;size:64"`
	UserID    string         `json:"user_id" gorm:"size:36;index:idx_conv_user_type;not null"`
	Type      string         `json:"type" gorm:"size:20;index:idx_conv_user_type;not null"`
	Messages  datatypes.JSON `json:"messages"`
	Active    bool           `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (Conversation) TableName() string {
	return "ai_conversations"
}

// Turns decodes the stored message history.
func (c *Conversation) Turns() ([]llm.Turn, error) {
	if len(c.Messages) == 0 {
		return nil, nil
	}
	var turns []llm.Turn
	if err := json.Unmarshal(c.Messages, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// SetTurns replaces the stored history. Callers only ever grow it.
func (c *Conversation) SetTurns(turns []llm.Turn) error {
	raw, err := json.Marshal(turns)
	if err != nil {
		return err
	}
	c.Messages = datatypes.JSON(raw)
	return nil
}

// UserTurnCount reports how many user messages the history holds. Purely
// informational; the model, not a counter, decides when the interview ends.
func (c *Conversation) UserTurnCount() int {
	turns, err := c.Turns()
	if err != nil {
		return 0
	}
	n := 0
	for _, t := range turns {
		if t.Role == llm.RoleUser {
			n++
		}
	}
	return n
}
