package service

import (
	"io"

	"farmcare/entities"
	"farmcare/pkg/planting"
	"farmcare/pkg/schedule"
	schedService "farmcare/pkg/schedule/service"
)

type Registration struct {
	Planting  *entities.PlantingRecord `json:"planting"`
	Intervals planting.Intervals       `json:"intervals"`
	Tasks     []schedService.TaskView  `json:"tasks"`
}

// Preview is a schedule computed without storing anything.
type Preview struct {
	Intervals planting.Intervals `json:"intervals"`
	Plan      schedule.Plan      `json:"plan"`
	Drafts    []schedule.Draft   `json:"drafts"`
}

type PlantingService interface {
	// Register stores the planting and its schedule. When only the schedule
	// write fails it returns the stored planting with a *schedule.PersistenceError.
	Register(p *entities.PlantingRecord) (*Registration, error)
	Preview(p *entities.PlantingRecord) (*Preview, error)
	Get(id uint, uid string) (*entities.PlantingRecord, error)
	List(uid string) ([]entities.PlantingRecord, error)
	Regenerate(id uint, uid string) (*Registration, error)
	Tasks(id uint, uid string) ([]schedService.TaskView, error)
	ExportXLSX(id uint, uid string, w io.Writer) error
}
