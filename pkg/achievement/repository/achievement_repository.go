package repository

import (
	"time"

	"farmcare/entities"
	"farmcare/pkg/achievement"
)

type AchievementRepository interface {
	History(uid string) ([]achievement.Record, error)
	Earned(uid string) ([]entities.EarnedBadge, error)
	// Award inserts (uid, badgeID) unless it already exists and reports
	// whether this call created it.
	Award(uid, badgeID string, on time.Time) (bool, error)
}
