package serviceImp

import (
	"io"
	"time"

	"farmcare/entities"
	"farmcare/pkg/climate"
	"farmcare/pkg/clock"
	"farmcare/pkg/logger"
	"farmcare/pkg/planting"
	repo "farmcare/pkg/planting/repository"
	"farmcare/pkg/planting/service"
	"farmcare/pkg/schedule"
	schedService "farmcare/pkg/schedule/service"
)

type plantingSvc struct {
	r     repo.PlantingRepository
	sched schedService.ScheduleService
	rules *climate.Engine
	clk   clock.Clock
	loc   *time.Location
}

func NewPlantingService(r repo.PlantingRepository, sched schedService.ScheduleService, rules *climate.Engine, clk clock.Clock, loc *time.Location) service.PlantingService {
	if rules == nil {
		rules = climate.Default()
	}
	return &plantingSvc{r: r, sched: sched, rules: rules, clk: clk, loc: loc}
}

func (s *plantingSvc) plan(p *entities.PlantingRecord) (schedule.Plan, planting.Intervals, []schedule.Draft, error) {
	if err := planting.Validate(p); err != nil {
		return schedule.Plan{}, planting.Intervals{}, nil, err
	}
	pl, iv := planting.Build(s.rules, p)
	drafts, err := schedule.Materialize(pl)
	return pl, iv, drafts, err
}

func (s *plantingSvc) withProgress(p *entities.PlantingRecord) {
	p.ProgressPct = planting.Progress(p, clock.Today(s.clk, s.loc))
}

func (s *plantingSvc) Register(p *entities.PlantingRecord) (*service.Registration, error) {
	p.PlantedOn = clock.Day(p.PlantedOn, nil)
	p.HarvestOn = clock.Day(p.HarvestOn, nil)
	_, iv, drafts, err := s.plan(p)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	s.withProgress(p)
	reg := &service.Registration{Planting: p, Intervals: iv, Tasks: []schedService.TaskView{}}

	tasks, err := s.sched.Write(p, drafts)
	if err != nil {
		logger.Warn().Err(err).Uint("planting_id", p.ID).Str("user_id", p.UserID).Msg("planting stored without schedule")
		return reg, err
	}
	reg.Tasks = tasks
	return reg, nil
}

func (s *plantingSvc) Preview(p *entities.PlantingRecord) (*service.Preview, error) {
	pl, iv, drafts, err := s.plan(p)
	if err != nil {
		return nil, err
	}
	return &service.Preview{Intervals: iv, Plan: pl, Drafts: drafts}, nil
}

func (s *plantingSvc) Get(id uint, uid string) (*entities.PlantingRecord, error) {
	p, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	s.withProgress(p)
	return p, nil
}

func (s *plantingSvc) List(uid string) ([]entities.PlantingRecord, error) {
	out, err := s.r.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	for i := range out {
		s.withProgress(&out[i])
	}
	return out, nil
}

func (s *plantingSvc) Regenerate(id uint, uid string) (*service.Registration, error) {
	p, err := s.Get(id, uid)
	if err != nil {
		return nil, err
	}
	_, iv, drafts, err := s.plan(p)
	if err != nil {
		return nil, err
	}
	tasks, err := s.sched.Write(p, drafts)
	if err != nil {
		return nil, err
	}
	return &service.Registration{Planting: p, Intervals: iv, Tasks: tasks}, nil
}

func (s *plantingSvc) Tasks(id uint, uid string) ([]schedService.TaskView, error) {
	if _, err := s.r.FindByID(id, uid); err != nil {
		return nil, err
	}
	return s.sched.ForPlanting(id, uid)
}

func (s *plantingSvc) ExportXLSX(id uint, uid string, w io.Writer) error {
	if _, err := s.r.FindByID(id, uid); err != nil {
		return err
	}
	return s.sched.ExportXLSX(id, uid, w)
}
