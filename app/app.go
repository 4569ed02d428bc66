// Package app wires stores, services and controllers for the processes in cmd/.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmcare/config"
	"farmcare/pkg/climate"
	"farmcare/pkg/clock"
	"farmcare/pkg/diagnosis"
	"farmcare/router"

	achCtrlImp "farmcare/pkg/achievement/controllerImp"
	achRepoImp "farmcare/pkg/achievement/repositoryImp"
	achService "farmcare/pkg/achievement/service"
	achSvcImp "farmcare/pkg/achievement/serviceImp"

	notifCtrlImp "farmcare/pkg/notify/controllerImp"
	notifRepoImp "farmcare/pkg/notify/repositoryImp"
	notifService "farmcare/pkg/notify/service"
	notifSvcImp "farmcare/pkg/notify/serviceImp"

	plantCtrlImp "farmcare/pkg/planting/controllerImp"
	plantRepoImp "farmcare/pkg/planting/repositoryImp"
	plantService "farmcare/pkg/planting/service"
	plantSvcImp "farmcare/pkg/planting/serviceImp"

	schedCtrlImp "farmcare/pkg/schedule/controllerImp"
	schedRepoImp "farmcare/pkg/schedule/repositoryImp"
	schedService "farmcare/pkg/schedule/service"
	schedSvcImp "farmcare/pkg/schedule/serviceImp"

	authCtrlImp "farmcare/pkg/auth/controllerImp"
	diagCtrlImp "farmcare/pkg/diagnosis/controllerImp"
	healthCtrlImp "farmcare/pkg/health/controllerImp"
)

type Deps struct {
	DB        *gorm.DB
	Rules     *climate.Engine
	Clock     clock.Clock
	Loc       *time.Location
	Diagnosis diagnosis.Client
}

type Services struct {
	Plantings     plantService.PlantingService
	Schedule      schedService.ScheduleService
	Achievements  achService.AchievementService
	Notifications notifService.NotificationService
	Reminders     notifService.ReminderService
}

func (d Deps) withDefaults() Deps {
	if d.Rules == nil {
		d.Rules = climate.Default()
	}
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	if d.Loc == nil {
		d.Loc = time.UTC
	}
	if d.Diagnosis == nil {
		d.Diagnosis = diagnosis.NewMock()
	}
	return d
}

// NewServices builds the service graph over one database.
func NewServices(d Deps) *Services {
	d = d.withDefaults()

	plantRepo := plantRepoImp.New(d.DB)
	schedRepo := schedRepoImp.New(d.DB)
	notifRepo := notifRepoImp.New(d.DB)

	notifs := notifSvcImp.NewNotificationService(notifRepo, d.Clock)
	achs := achSvcImp.NewAchievementService(achRepoImp.New(d.DB), d.Clock, d.Loc, notifs)
	sched := schedSvcImp.NewScheduleService(schedRepo, d.Clock, d.Loc, achs)

	return &Services{
		Plantings:     plantSvcImp.NewPlantingService(plantRepo, sched, d.Rules, d.Clock, d.Loc),
		Schedule:      sched,
		Achievements:  achs,
		Notifications: notifs,
		Reminders:     notifSvcImp.NewReminderService(notifRepo, schedRepo, plantRepo, d.Clock, d.Loc),
	}
}

// NewServer mounts every controller on a fresh echo instance.
func NewServer(d Deps, cfg config.AppConfig) *echo.Echo {
	d = d.withDefaults()
	svcs := NewServices(d)

	e := echo.New()
	e.HideBanner = true
	return router.New(e, router.Controllers{
		Planting:     plantCtrlImp.New(svcs.Plantings, d.Loc),
		Schedule:     schedCtrlImp.New(svcs.Schedule, d.Loc),
		Achievement:  achCtrlImp.New(svcs.Achievements),
		Notification: notifCtrlImp.New(svcs.Notifications),
		Diagnosis:    diagCtrlImp.New(d.Diagnosis),
		Auth:         authCtrlImp.NewAuthController(!cfg.RequireIdentity),
		Health:       healthCtrlImp.NewHealthCtrl(d.DB, len(d.Rules.Rules()), d.Clock, d.Loc),
	}, cfg.RequireIdentity)
}
