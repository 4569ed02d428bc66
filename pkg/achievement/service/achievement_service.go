package service

import "farmcare/pkg/achievement"

// Notifier is told about every newly earned badge.
type Notifier interface {
	BadgeEarned(uid string, b achievement.Badge) error
}

type AchievementService interface {
	Stats(uid string) (achievement.Stats, error)
	Catalogue(uid string) ([]achievement.Standing, error)
	// TaskCompleted recomputes stats, awards newly qualifying badges and
	// returns only the ones this call awarded.
	TaskCompleted(uid string) ([]achievement.Badge, error)
}
