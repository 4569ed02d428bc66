package service

import (
	"time"

	"farmcare/entities"
	"farmcare/pkg/achievement"
)

type NotificationService interface {
	BadgeEarned(uid string, b achievement.Badge) error
	List(uid string, unreadOnly bool) ([]entities.Notification, int64, error)
	MarkRead(id, uid string) error
	MarkAllRead(uid string) (int64, error)
}

// TaskSource lists incomplete tasks scheduled on a day.
type TaskSource interface {
	ListOpenOn(day time.Time) ([]entities.CareTask, error)
}

// HarvestSource lists plantings whose harvest falls on a day.
type HarvestSource interface {
	ListHarvestOn(day time.Time) ([]entities.PlantingRecord, error)
}

// Report summarizes one reminder run.
type Report struct {
	Day           time.Time               `json:"day"`
	DryRun        bool                    `json:"dry_run"`
	TaskUsers     int                     `json:"task_users"`
	HarvestUsers  int                     `json:"harvest_users"`
	Skipped       int                     `json:"skipped"`
	Notifications []entities.Notification `json:"notifications"`
}

type ReminderService interface {
	// Run composes the daily reminders for day. A user already reminded in a
	// category that day is skipped, so repeated runs are harmless.
	Run(day time.Time, dryRun bool) (*Report, error)
}
