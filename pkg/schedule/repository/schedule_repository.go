package repository

import (
	"time"

	"farmcare/entities"
)

type ScheduleRepository interface {
	// ReplaceSchedule swaps a planting's incomplete tasks for tasks in one
	// transaction. It refuses with schedule.ErrHasHistory when any task of the
	// planting is already completed.
	ReplaceSchedule(plantingID uint, tasks []entities.CareTask) error
	ListByPlanting(plantingID uint, uid string) ([]entities.CareTask, error)
	ListByUser(uid string, from, to time.Time) ([]entities.CareTask, error)
	FindByID(id uint, uid string) (*entities.CareTask, error)
	MarkCompleted(id uint, uid string, at time.Time) (bool, error)
	ListOpenOn(day time.Time) ([]entities.CareTask, error)
}
