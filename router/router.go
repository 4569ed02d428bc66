package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	achCtrl "farmcare/pkg/achievement/controller"
	authCtrl "farmcare/pkg/auth/controller"
	"farmcare/pkg/middleware"
	notifCtrl "farmcare/pkg/notify/controller"
	plantCtrl "farmcare/pkg/planting/controller"
	schedCtrl "farmcare/pkg/schedule/controller"
)

type Controllers struct {
	Planting     plantCtrl.PlantingController
	Schedule     schedCtrl.ScheduleController
	Achievement  achCtrl.AchievementController
	Notification notifCtrl.NotificationController
	Diagnosis    interface{ Diagnose(echo.Context) error }
	Auth         authCtrl.AuthController
	Health       interface{ Health(echo.Context) error }
}

// New registers every route on e. requireIdentity turns off the dev identity fallbacks.
func New(e *echo.Echo, ctl Controllers, requireIdentity bool) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger())

	e.GET("/health", ctl.Health.Health)

	api := e.Group("", middleware.Identity(requireIdentity))
	api.GET("/whoami", ctl.Auth.WhoAmI)
	api.GET("/devlogin", ctl.Auth.DevLogin)

	api.POST("/plantings", ctl.Planting.Create)
	api.GET("/plantings", ctl.Planting.List)
	api.GET("/plantings/:id", ctl.Planting.Get)
	api.POST("/plantings/:id/schedule", ctl.Planting.Regenerate)
	api.GET("/plantings/:id/tasks", ctl.Planting.Tasks)
	api.GET("/plantings/:id/schedule.xlsx", ctl.Planting.Export)
	api.POST("/schedule/preview", ctl.Planting.Preview)

	api.GET("/tasks", ctl.Schedule.List)
	api.PATCH("/tasks/:task_id/complete", ctl.Schedule.Complete)

	api.GET("/stats", ctl.Achievement.Stats)
	api.GET("/badges", ctl.Achievement.Badges)

	api.GET("/notifications", ctl.Notification.List)
	api.PATCH("/notifications/:id/read", ctl.Notification.Read)
	api.POST("/notifications/read-all", ctl.Notification.ReadAll)

	api.POST("/diagnoses", ctl.Diagnosis.Diagnose)
	return e
}
