package entities

import "time"

// CareTask is one scheduled care activity. (planting_id, date, activity) is
// the natural key that keeps schedule writes idempotent.
type CareTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PlantingID  uint       `gorm:"not null;uniqueIndex:idx_care_task_natural,priority:1" json:"planting_id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	Date        time.Time  `gorm:"not null;uniqueIndex:idx_care_task_natural,priority:2;index" json:"date"`
	Activity    string     `gorm:"not null;uniqueIndex:idx_care_task_natural,priority:3" json:"activity"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
