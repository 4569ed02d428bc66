package serviceImp

import (
	"errors"
	"time"

	"farmcare/entities"
	"farmcare/pkg/achievement"
	"farmcare/pkg/clock"
	"farmcare/pkg/logger"
	"farmcare/pkg/schedule"
	repo "farmcare/pkg/schedule/repository"
	"farmcare/pkg/schedule/service"
)

type schedSvc struct {
	r        repo.ScheduleRepository
	clk      clock.Clock
	loc      *time.Location
	listener service.CompletionListener
}

// NewScheduleService wires the task store to a clock. listener may be nil.
func NewScheduleService(r repo.ScheduleRepository, clk clock.Clock, loc *time.Location, listener service.CompletionListener) service.ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &schedSvc{r: r, clk: clk, loc: loc, listener: listener}
}

func (s *schedSvc) today() time.Time { return clock.Today(s.clk, s.loc) }

func (s *schedSvc) view(t entities.CareTask, today time.Time) service.TaskView {
	st := schedule.Classify(today, t.Date, t.Completed)
	return service.TaskView{CareTask: t, State: st, Bucket: st.Bucket(), CanComplete: st == schedule.Due}
}

func (s *schedSvc) views(ts []entities.CareTask) []service.TaskView {
	today := s.today()
	out := make([]service.TaskView, 0, len(ts))
	for _, t := range ts {
		out = append(out, s.view(t, today))
	}
	return out
}

func (s *schedSvc) Write(rec *entities.PlantingRecord, drafts []schedule.Draft) ([]service.TaskView, error) {
	tasks := make([]entities.CareTask, 0, len(drafts))
	for _, d := range drafts {
		tasks = append(tasks, entities.CareTask{
			PlantingID: rec.ID,
			UserID:     rec.UserID,
			Date:       clock.Day(d.Date, nil),
			Activity:   d.Activity,
		})
	}
	if err := s.r.ReplaceSchedule(rec.ID, tasks); err != nil {
		if errors.Is(err, schedule.ErrHasHistory) {
			return nil, err
		}
		logger.Error().Err(err).Uint("planting_id", rec.ID).Str("user_id", rec.UserID).Int("tasks", len(tasks)).Msg("schedule write failed")
		return nil, &schedule.PersistenceError{Op: "write schedule", Err: err}
	}
	logger.Info().Uint("planting_id", rec.ID).Str("user_id", rec.UserID).Int("tasks", len(tasks)).Msg("schedule written")

	stored, err := s.r.ListByPlanting(rec.ID, rec.UserID)
	if err != nil {
		return nil, &schedule.PersistenceError{Op: "read schedule", Err: err}
	}
	return s.views(stored), nil
}

func (s *schedSvc) ForPlanting(plantingID uint, uid string) ([]service.TaskView, error) {
	ts, err := s.r.ListByPlanting(plantingID, uid)
	if err != nil {
		return nil, err
	}
	return s.views(ts), nil
}

func (s *schedSvc) ForUser(uid string, from, to time.Time) ([]service.TaskView, error) {
	ts, err := s.r.ListByUser(uid, from, to)
	if err != nil {
		return nil, err
	}
	return s.views(ts), nil
}

func (s *schedSvc) Complete(taskID uint, uid string) (*service.CompletionResult, error) {
	t, err := s.r.FindByID(taskID, uid)
	if err != nil {
		return nil, err
	}
	today := s.today()
	if _, err := schedule.Complete(today, t.Date, t.Completed); err != nil {
		return nil, err
	}
	now := s.clk.Now()
	ok, err := s.r.MarkCompleted(t.ID, uid, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// lost a race with another completion of the same task
		return nil, schedule.ErrNotCompletable
	}
	t.Completed = true
	t.CompletedAt = &now

	res := &service.CompletionResult{Task: s.view(*t, today), NewBadges: []achievement.Badge{}}
	if s.listener != nil {
		badges, err := s.listener.TaskCompleted(uid)
		if err != nil {
			logger.Warn().Err(err).Str("user_id", uid).Msg("badge evaluation failed")
		} else if len(badges) > 0 {
			res.NewBadges = badges
		}
	}
	return res, nil
}
