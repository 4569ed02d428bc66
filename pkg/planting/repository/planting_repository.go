package repository

import (
	"time"

	"farmcare/entities"
)

type PlantingRepository interface {
	Create(p *entities.PlantingRecord) error
	FindByID(id uint, uid string) (*entities.PlantingRecord, error)
	ListByUser(uid string) ([]entities.PlantingRecord, error)
	ListHarvestOn(day time.Time) ([]entities.PlantingRecord, error)
}
