package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EarnedBadge records the day a user first satisfied a badge rule.
// The composite key allows at most one row per (user, badge).
type EarnedBadge struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"user_id"`
	BadgeID   string    `gorm:"primaryKey;type:text" json:"badge_id"`
	EarnedOn  time.Time `json:"earned_on"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	NotificationAchievement = "achievement"
	NotificationTask        = "task"
	NotificationReminder    = "reminder"
)

type Notification struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	UserID      string    `gorm:"index;type:text;not null" json:"user_id"`
	Title       string    `json:"title"`
	Message     string    `gorm:"type:text" json:"message"`
	Category    string    `gorm:"index" json:"category"` // achievement|task|reminder
	ActionURL   string    `json:"action_url,omitempty"`
	ActionLabel string    `json:"action_label,omitempty"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
