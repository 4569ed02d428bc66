package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"farmcare/entities"
	"farmcare/pkg/planting/repository"
	"farmcare/pkg/schedule"
)

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

func (r *plantingRepo) Create(p *entities.PlantingRecord) error { return r.db.Create(p).Error }

func (r *plantingRepo) FindByID(id uint, uid string) (*entities.PlantingRecord, error) {
	var p entities.PlantingRecord
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *plantingRepo) ListByUser(uid string) ([]entities.PlantingRecord, error) {
	var out []entities.PlantingRecord
	err := r.db.Where("user_id = ?", uid).Order("planted_on DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *plantingRepo) ListHarvestOn(day time.Time) ([]entities.PlantingRecord, error) {
	var out []entities.PlantingRecord
	err := r.db.Where("harvest_on = ?", day).Order("user_id ASC, id ASC").Find(&out).Error
	return out, err
}
