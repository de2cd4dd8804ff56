package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const adaptationReply = `{
	"analysis": "Mornings are working, evenings are not.",
	"options": [
		{"id": "opt-1", "title": "Shift evening tasks", "description": "Move reflection to lunch.", "changes": {"move": "evening"}},
		{"id": "opt-2", "title": "Reduce load", "description": "Drop one task per day.", "changes": {"drop": 1}}
	]
}`

func TestAdapt_NoActivePlan(t *testing.T) {
	dbConn := setupPlanDB(t)
	g := NewGenerator(dbConn, &stubGateway{reply: adaptationReply})

	_, err := g.Adapt(context.Background(), uuid.NewString(), "too much in the evenings")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}

func TestAdapt_ReturnsOptions(t *testing.T) {
	dbConn := setupPlanDB(t)
	userID := uuid.NewString()
	seedIntake(t, dbConn, userID)
	if _, err := NewGenerator(dbConn, &stubGateway{reply: testPlanJSON(t, "v")}).Generate(context.Background(), userID); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	g := NewGenerator(dbConn, &stubGateway{reply: adaptationReply})
	adaptation, err := g.Adapt(context.Background(), userID, "too much in the evenings")
	if err != nil {
		t.Fatalf("Adapt failed: %v", err)
	}
	if adaptation.Analysis == "" {
		t.Errorf("analysis missing")
	}
	if len(adaptation.Options) != 2 || adaptation.Options[0].ID != "opt-1" {
		t.Errorf("unexpected options: %+v", adaptation.Options)
	}
}

func TestAdapt_EmptyOptions(t *testing.T) {
	dbConn := setupPlanDB(t)
	userID := uuid.NewString()
	seedIntake(t, dbConn, userID)
	if _, err := NewGenerator(dbConn, &stubGateway{reply: testPlanJSON(t, "v")}).Generate(context.Background(), userID); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	g := NewGenerator(dbConn, &stubGateway{reply: `{"analysis": "nothing to change", "options": []}`})
	if _, err := g.Adapt(context.Background(), userID, "reason"); !errors.Is(err, ErrInvalidStructure) {
		t.Fatalf("expected ErrInvalidStructure, got %v", err)
	}
}
