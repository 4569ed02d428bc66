package serviceImp

import (
	"time"

	"farmcare/pkg/achievement"
	repo "farmcare/pkg/achievement/repository"
	"farmcare/pkg/achievement/service"
	"farmcare/pkg/clock"
	"farmcare/pkg/logger"
)

type achSvc struct {
	r        repo.AchievementRepository
	clk      clock.Clock
	loc      *time.Location
	notifier service.Notifier
}

// NewAchievementService builds the stats and badge service. notifier may be nil.
func NewAchievementService(r repo.AchievementRepository, clk clock.Clock, loc *time.Location, notifier service.Notifier) service.AchievementService {
	return &achSvc{r: r, clk: clk, loc: loc, notifier: notifier}
}

func (s *achSvc) Stats(uid string) (achievement.Stats, error) {
	hist, err := s.r.History(uid)
	if err != nil {
		return achievement.Stats{}, err
	}
	return achievement.Analyze(hist, clock.Today(s.clk, s.loc)), nil
}

func (s *achSvc) Catalogue(uid string) ([]achievement.Standing, error) {
	st, err := s.Stats(uid)
	if err != nil {
		return nil, err
	}
	rows, err := s.r.Earned(uid)
	if err != nil {
		return nil, err
	}
	earned := make(map[string]time.Time, len(rows))
	for _, e := range rows {
		earned[e.BadgeID] = e.EarnedOn
	}
	return achievement.Catalogue(st, earned), nil
}

func (s *achSvc) TaskCompleted(uid string) ([]achievement.Badge, error) {
	st, err := s.Stats(uid)
	if err != nil {
		return nil, err
	}
	rows, err := s.r.Earned(uid)
	if err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(rows))
	for _, e := range rows {
		earned[e.BadgeID] = true
	}

	today := clock.Today(s.clk, s.loc)
	var out []achievement.Badge
	for _, b := range achievement.Evaluate(st, earned) {
		created, err := s.r.Award(uid, b.ID, today)
		if err != nil {
			return out, err
		}
		if !created {
			continue
		}
		logger.Info().Str("user_id", uid).Str("badge", b.ID).Msg("badge awarded")
		out = append(out, b)
		if s.notifier != nil {
			if err := s.notifier.BadgeEarned(uid, b); err != nil {
				logger.Warn().Err(err).Str("user_id", uid).Str("badge", b.ID).Msg("badge notification failed")
			}
		}
	}
	return out, nil
}
