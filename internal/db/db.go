package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yearcompass/internal/config"
	"yearcompass/internal/convo"
	"yearcompass/internal/intake"
	"yearcompass/internal/plan"
	"yearcompass/internal/task"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate conversation history
	if err := db.AutoMigrate(&convo.Conversation{}); err != nil {
		return err
	}

	// Auto-migrate intake and plan models
	if err := db.AutoMigrate(&intake.Response{}, &plan.YearPlan{}); err != nil {
		return err
	}

	// Auto-migrate tasks and streaks
	if err := db.AutoMigrate(&task.DailyTask{}, &task.Streak{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
