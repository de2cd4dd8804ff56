package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"yearcompass/internal/auth"
	"yearcompass/internal/config"
	"yearcompass/internal/convo"
	"yearcompass/internal/db"
	"yearcompass/internal/intake"
	"yearcompass/internal/llm"
	"yearcompass/internal/plan"
	"yearcompass/internal/task"
)

func SetupRouter(cfg *config.Config, rdb *redis.Client, gateway llm.Gateway) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/yearcompass" or any custom path, always starts with '/'

	store := convo.NewStore(db.DB, rdb)
	machine := intake.NewMachine(db.DB, store, gateway)
	generator := plan.NewGenerator(db.DB, gateway)
	tracker := task.NewTracker(db.DB, cfg.Streaks.StrictRecompute)

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// Everything below requires a verified token from the auth provider.
		authed := group.Group("", auth.AuthMiddleware(cfg))

		// Intake interview
		authed.POST("/intake", SubmitIntakeHandler(machine))
		authed.GET("/intake", GetIntakeHandler(store))
		authed.POST("/intake/skip", SkipIntakeHandler())

		// Yearly plan
		authed.POST("/plan", GeneratePlanHandler(generator))
		authed.GET("/plan", GetPlanHandler())
		authed.POST("/plan/adapt", AdaptPlanHandler(generator))

		// Daily tasks and streaks
		authed.GET("/tasks", ListTasksHandler())
		authed.POST("/tasks", ToggleTaskHandler(tracker))
		authed.PATCH("/tasks/:id", RescheduleTaskHandler())
		authed.DELETE("/tasks/:id", DeleteTaskHandler())

		// Daily coach
		authed.POST("/coach", CoachHandler(gateway))
	}
	return r
}
