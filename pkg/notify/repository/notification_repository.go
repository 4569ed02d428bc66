package repository

import (
	"time"

	"farmcare/entities"
)

type NotificationRepository interface {
	Create(n *entities.Notification) error
	List(uid string, unreadOnly bool, limit int) ([]entities.Notification, error)
	CountUnread(uid string) (int64, error)
	MarkRead(id, uid string) (bool, error)
	MarkAllRead(uid string) (int64, error)
	ExistsSince(uid, category string, since time.Time) (bool, error)
}
