package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"farmcare/entities"
	"farmcare/pkg/notify/repository"
)

type notifRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotificationRepository { return &notifRepo{db} }

func (r *notifRepo) Create(n *entities.Notification) error { return r.db.Create(n).Error }

func (r *notifRepo) List(uid string, unreadOnly bool, limit int) ([]entities.Notification, error) {
	var out []entities.Notification
	q := r.db.Where("user_id = ?", uid)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *notifRepo) CountUnread(uid string) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Notification{}).Where("user_id = ? AND is_read = ?", uid, false).Count(&n).Error
	return n, err
}

func (r *notifRepo) MarkRead(id, uid string) (bool, error) {
	res := r.db.Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *notifRepo) MarkAllRead(uid string) (int64, error) {
	res := r.db.Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", uid, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notifRepo) ExistsSince(uid, category string, since time.Time) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Notification{}).
		Where("user_id = ? AND category = ? AND created_at >= ?", uid, category, since.UTC()).
		Count(&n).Error
	return n > 0, err
}
