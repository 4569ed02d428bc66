package serviceImp

import (
	"fmt"

	"farmcare/entities"
	"farmcare/pkg/achievement"
	"farmcare/pkg/apperror"
	"farmcare/pkg/clock"
	repo "farmcare/pkg/notify/repository"
	"farmcare/pkg/notify/service"
)

const listLimit = 100

type notifSvc struct {
	r   repo.NotificationRepository
	clk clock.Clock
}

func NewNotificationService(r repo.NotificationRepository, clk clock.Clock) service.NotificationService {
	return &notifSvc{r: r, clk: clk}
}

func (s *notifSvc) BadgeEarned(uid string, b achievement.Badge) error {
	return s.r.Create(&entities.Notification{
		UserID:      uid,
		Title:       "New badge: " + b.Name,
		Message:     fmt.Sprintf("You earned %s. %s.", b.Name, b.Description),
		Category:    entities.NotificationAchievement,
		ActionURL:   "/badges",
		ActionLabel: "View badges",
		CreatedAt:   s.clk.Now().UTC(),
	})
}

func (s *notifSvc) List(uid string, unreadOnly bool) ([]entities.Notification, int64, error) {
	items, err := s.r.List(uid, unreadOnly, listLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.r.CountUnread(uid)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *notifSvc) MarkRead(id, uid string) error {
	ok, err := s.r.MarkRead(id, uid)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("notification not found")
	}
	return nil
}

func (s *notifSvc) MarkAllRead(uid string) (int64, error) {
	return s.r.MarkAllRead(uid)
}
