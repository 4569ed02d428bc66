package repositoryImp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmcare/entities"
	"farmcare/pkg/achievement"
	"farmcare/pkg/achievement/repository"
)

type achRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AchievementRepository { return &achRepo{db} }

func (r *achRepo) History(uid string) ([]achievement.Record, error) {
	var rows []struct {
		Date      time.Time
		Completed bool
	}
	if err := r.db.Model(&entities.CareTask{}).
		Select("date", "completed").
		Where("user_id = ?", uid).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]achievement.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, achievement.Record{Date: row.Date, Completed: row.Completed})
	}
	return out, nil
}

func (r *achRepo) Earned(uid string) ([]entities.EarnedBadge, error) {
	var out []entities.EarnedBadge
	err := r.db.Where("user_id = ?", uid).Order("earned_on ASC").Find(&out).Error
	return out, err
}

func (r *achRepo) Award(uid, badgeID string, on time.Time) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.EarnedBadge{UserID: uid, BadgeID: badgeID, EarnedOn: on})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
