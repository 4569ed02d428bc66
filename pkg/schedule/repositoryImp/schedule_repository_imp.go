package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmcare/entities"
	"farmcare/pkg/schedule"
	"farmcare/pkg/schedule/repository"
)

const batchSize = 200

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) ReplaceSchedule(plantingID uint, tasks []entities.CareTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var done int64
		if err := tx.Model(&entities.CareTask{}).
			Where("planting_id = ? AND completed = ?", plantingID, true).
			Count(&done).Error; err != nil {
			return err
		}
		if done > 0 {
			return schedule.ErrHasHistory
		}
		if err := tx.Where("planting_id = ? AND completed = ?", plantingID, false).
			Delete(&entities.CareTask{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&tasks, batchSize).Error
	})
}

func (r *schedRepo) ListByPlanting(plantingID uint, uid string) ([]entities.CareTask, error) {
	var out []entities.CareTask
	err := r.db.Where("planting_id = ? AND user_id = ?", plantingID, uid).
		Order("date ASC, activity ASC").Find(&out).Error
	return out, err
}

func (r *schedRepo) ListByUser(uid string, from, to time.Time) ([]entities.CareTask, error) {
	var out []entities.CareTask
	q := r.db.Where("user_id = ?", uid)
	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", to)
	}
	if err := q.Order("date ASC, planting_id ASC, activity ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) FindByID(id uint, uid string) (*entities.CareTask, error) {
	var t entities.CareTask
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// MarkCompleted flips completed false to true. It reports false when the task
// was already completed or does not belong to uid.
func (r *schedRepo) MarkCompleted(id uint, uid string, at time.Time) (bool, error) {
	res := r.db.Model(&entities.CareTask{}).
		Where("id = ? AND user_id = ? AND completed = ?", id, uid, false).
		Updates(map[string]any{"completed": true, "completed_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *schedRepo) ListOpenOn(day time.Time) ([]entities.CareTask, error) {
	var out []entities.CareTask
	err := r.db.Where("date = ? AND completed = ?", day, false).
		Order("user_id ASC, planting_id ASC, activity ASC").Find(&out).Error
	return out, err
}
