package service

import (
	"io"
	"time"

	"farmcare/entities"
	"farmcare/pkg/achievement"
	"farmcare/pkg/schedule"
)

// TaskView is a stored task with its lifecycle state as of today.
type TaskView struct {
	entities.CareTask
	State       schedule.State `json:"state"`
	Bucket      string         `json:"bucket"`
	CanComplete bool           `json:"can_complete"`
}

// CompletionResult is returned after a task flips to completed.
type CompletionResult struct {
	Task      TaskView            `json:"task"`
	NewBadges []achievement.Badge `json:"new_badges"`
}

// CompletionListener is told when a user completes a task.
type CompletionListener interface {
	TaskCompleted(uid string) ([]achievement.Badge, error)
}

type ScheduleService interface {
	Write(rec *entities.PlantingRecord, drafts []schedule.Draft) ([]TaskView, error)
	ForPlanting(plantingID uint, uid string) ([]TaskView, error)
	ForUser(uid string, from, to time.Time) ([]TaskView, error)
	Complete(taskID uint, uid string) (*CompletionResult, error)
	ExportXLSX(plantingID uint, uid string, w io.Writer) error
}
