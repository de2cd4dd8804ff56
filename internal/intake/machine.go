package intake

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yearcompass/internal/convo"
	"yearcompass/internal/extract"
	"yearcompass/internal/llm"
	"yearcompass/internal/prompts"
)

// State is the coarse interview position. The content of each turn is the
// model's business; the server only tracks whether it is waiting on the
// user, talking to the model, or done.
type State string

const (
	StateAwaitingInput State = "AWAITING_INPUT"
	StateProcessing    State = "PROCESSING"
	StateComplete      State = "COMPLETE"
)

// The model signals it is done by emitting this key/value pair. The check is
// string containment on the raw reply, before any JSON parsing.
var completionMarkers = []string{
	`"intake_complete": true`,
	`"intake_complete":true`,
}

// HasCompletionMarker reports whether a reply carries the completion signal.
func HasCompletionMarker(reply string) bool {
	for _, m := range completionMarkers {
		if strings.Contains(reply, m) {
			return true
		}
	}
	return false
}

// Suggestion accompanies recoverable completion failures: the model claimed
// to be done but produced an unusable document, and re-confirming usually
// fixes it on the next turn.
const Suggestion = "Please say 'yes' or 'ready' to confirm your information."

// Result is what one submitted turn produces.
type Result struct {
	ConversationID string    `json:"conversationId"`
	Reply          string    `json:"reply"`
	State          State     `json:"state"`
	Complete       bool      `json:"complete"`
	Document       *Document `json:"document,omitempty"`
	TurnCount      int       `json:"turnCount"`
}

// Machine drives the multi-turn interview to a validated, committed
// document.
type Machine struct {
	db      *gorm.DB
	store   *convo.Store
	gateway llm.Gateway
}

func NewMachine(db *gorm.DB, store *convo.Store, gateway llm.Gateway) *Machine {
	return &Machine{db: db, store: store, gateway: gateway}
}

// Submit appends one user turn, obtains the model's reply, and either keeps
// the interview open or commits the extracted document. On extraction or
// validation failure the exchange is retained, the conversation stays
// active, and the error is recoverable by another turn.
func (m *Machine) Submit(ctx context.Context, userID, message, conversationID string) (*Result, error) {
	conv, err := m.store.Active(ctx, userID, convo.TypeIntake, conversationID)
	if err != nil {
		return nil, err
	}
	unlock := m.store.Lock(conv.ID)
	defer unlock()

	// A concurrent turn may have appended between the resolve and the lock;
	// re-read under the lock so the history we extend is current.
	conv, err = m.store.Active(ctx, userID, convo.TypeIntake, conv.ID)
	if err != nil {
		return nil, err
	}

	history, err := conv.Turns()
	if err != nil {
		return nil, err
	}
	userTurn := llm.Turn{Role: llm.RoleUser, Content: message}

	reply, err := llm.IntakeTurn(ctx, m.gateway, append(history, userTurn), prompts.Intake)
	if err != nil {
		// Nothing persisted yet: a failed upstream call leaves the
		// conversation exactly as it was.
		return nil, err
	}

	assistantTurn := llm.Turn{Role: llm.RoleAssistant, Content: reply}
	if err := m.store.Append(ctx, conv, userTurn, assistantTurn); err != nil {
		return nil, err
	}

	result := &Result{
		ConversationID: conv.ID,
		Reply:          reply,
		State:          StateAwaitingInput,
		TurnCount:      conv.UserTurnCount(),
	}

	if !HasCompletionMarker(reply) {
		return result, nil
	}

	raw, err := extract.JSON(reply)
	if err != nil {
		log.Printf("[Intake] completion marker present but extraction failed for conversation %s: %v", conv.ID, err)
		return nil, err
	}
	doc, err := ParseDocument(raw)
	if err != nil {
		log.Printf("[Intake] extracted document failed validation for conversation %s: %v", conv.ID, err)
		return nil, err
	}

	if err := SaveResponse(m.db, userID, doc); err != nil {
		return nil, fmt.Errorf("failed to save intake: %w", err)
	}
	if err := m.store.Deactivate(ctx, conv); err != nil {
		return nil, err
	}

	result.State = StateComplete
	result.Complete = true
	result.Document = doc
	return result, nil
}

// SaveResponse upserts the user's single intake row.
func SaveResponse(db *gorm.DB, userID string, doc *Document) error {
	row := NewResponse(userID, doc)
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed_at",
			"career_goals", "health_goals", "finance_goals",
			"learning_goals", "spirituality_goals", "lifestyle_goals",
			"work_schedule", "energy_patterns", "existing_commitments",
			"available_daily_time",
			"derailment_factors", "top_priorities", "coaching_style",
			"updated_at",
		}),
	}).Create(&row).Error
}

// ResponseFor loads a user's committed intake. gorm.ErrRecordNotFound when
// the interview was never finished.
func ResponseFor(db *gorm.DB, userID string) (*Response, error) {
	var resp Response
	if err := db.Where("user_id = ?", userID).First(&resp).Error; err != nil {
		return nil, err
	}
	return &resp, nil
}
