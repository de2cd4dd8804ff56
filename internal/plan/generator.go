package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"yearcompass/internal/extract"
	"yearcompass/internal/intake"
	"yearcompass/internal/llm"
	"yearcompass/internal/prompts"
	"yearcompass/internal/task"
)

// ErrInvalidStructure means the model's output parsed as JSON but is not a
// usable plan. Distinct from extraction failure so callers can tell "no
// document" from "wrong document".
var ErrInvalidStructure = errors.New("invalid plan structure: missing or empty quarters")

// Generator makes the single-shot plan call and persists the result.
type Generator struct {
	db      *gorm.DB
	gateway llm.Gateway
}

func NewGenerator(db *gorm.DB, gateway llm.Gateway) *Generator {
	return &Generator{db: db, gateway: gateway}
}

// Output is what one generation run produced.
type Output struct {
	Plan         YearPlan `json:"plan"`
	Vision       string   `json:"vision"`
	TasksCreated int      `json:"tasksCreated"`
}

// Generate builds a plan from the user's committed intake. The plan upsert
// and the first day's task materialization commit together or not at all.
// gorm.ErrRecordNotFound propagates when the user has no intake.
func (g *Generator) Generate(ctx context.Context, userID string) (*Output, error) {
	intakeRow, err := intake.ResponseFor(g.db, userID)
	if err != nil {
		return nil, err
	}

	text, err := llm.GeneratePlanText(ctx, g.gateway, intakeRow.Document(), prompts.PlanGeneration)
	if err != nil {
		return nil, err
	}

	raw, err := extract.JSON(text)
	if err != nil {
		log.Printf("[Plan] extraction failed for user %s: %v", userID, err)
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", extract.ErrMalformedDocument, err)
	}
	if len(doc.Quarters) == 0 {
		return nil, ErrInvalidStructure
	}

	year := doc.Year
	if year == 0 {
		year = time.Now().Year()
	}
	today := time.Now().Format(task.DateLayout)

	var out Output
	err = g.db.Transaction(func(tx *gorm.DB) error {
		saved, err := upsertPlan(tx, userID, intakeRow.ID, year, doc.Vision, raw)
		if err != nil {
			return err
		}
		out.Plan = *saved
		out.Vision = doc.Vision

		created, err := materializeToday(tx, &doc, saved.ID, userID, today)
		if err != nil {
			return err
		}
		out.TasksCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// upsertPlan overwrites the existing active (user, year) plan in place, or
// inserts a fresh one. Same identity, updated content.
func upsertPlan(tx *gorm.DB, userID string, intakeID uint, year int, vision string, raw json.RawMessage) (*YearPlan, error) {
	var existing YearPlan
	err := tx.Where("user_id = ? AND year = ? AND is_active = ?", userID, year, true).First(&existing).Error
	if err == nil {
		existing.Vision = vision
		existing.PlanData = datatypes.JSON(raw)
		existing.IntakeID = intakeID
		if err := tx.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := YearPlan{
		UserID:   userID,
		IntakeID: intakeID,
		Year:     year,
		Vision:   vision,
		PlanData: datatypes.JSON(raw),
		IsActive: true,
		Version:  1,
	}
	if err := tx.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// materializeToday expands the plan's first week into rows for the current
// date. A week or weekday with no sample tasks creates nothing.
func materializeToday(tx *gorm.DB, doc *Document, planID uint, userID, date string) (int, error) {
	week := doc.FirstWeek()
	if week == nil || len(week.SampleTasks) == 0 {
		return 0, nil
	}
	weekday, err := task.Weekday(date)
	if err != nil {
		return 0, err
	}
	rows, err := task.MaterializeDay(tx, userID, planID, date, week.SampleTasks[weekday])
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
