package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmcare/database"
	"farmcare/entities"
	"farmcare/pkg/clock"
	"farmcare/pkg/planting"
	"farmcare/pkg/planting/repositoryImp"
	"farmcare/pkg/planting/service"
	"farmcare/pkg/schedule"
	schedRepo "farmcare/pkg/schedule/repositoryImp"
	schedService "farmcare/pkg/schedule/service"
	schedImp "farmcare/pkg/schedule/serviceImp"
)

func d(s string) time.Time {
	t, _ := time.Parse(clock.DateLayout, s)
	return t
}

type brokenSchedule struct{ schedService.ScheduleService }

func (brokenSchedule) Write(*entities.PlantingRecord, []schedule.Draft) ([]schedService.TaskView, error) {
	return nil, &schedule.PersistenceError{Op: "write schedule", Err: errors.New("disk I/O error")}
}

func setup(t *testing.T, today string) (*gorm.DB, service.PlantingService, schedService.ScheduleService) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	clk := clock.NewFake(d(today).Add(9 * time.Hour))
	sched := schedImp.NewScheduleService(schedRepo.New(db), clk, nil, nil)
	return db, NewPlantingService(repositoryImp.New(db), sched, nil, clk, nil), sched
}

func sandy() *entities.PlantingRecord {
	return &entities.PlantingRecord{
		UserID: "u1", PlantName: "Chili",
		PlantedOn: d("2024-01-01"), HarvestOn: d("2024-01-10"),
		SoilType: "Pasir", WateringAmount: "3", WateringUnit: "day",
	}
}

func TestRegister_StoresPlantingAndSchedule(t *testing.T) {
	_, svc, _ := setup(t, "2024-01-04")

	reg, err := svc.Register(sandy())
	require.NoError(t, err)
	require.NotZero(t, reg.Planting.ID)
	assert.Equal(t, 2, reg.Intervals.Watering.Interval)
	assert.InDelta(t, 33.3, reg.Planting.ProgressPct, 0.01)

	var dates []string
	for _, v := range reg.Tasks {
		dates = append(dates, v.Date.UTC().Format("01-02"))
	}
	assert.Equal(t, []string{"01-01", "01-03", "01-05", "01-07", "01-09"}, dates)
	assert.Equal(t, schedule.Missed, reg.Tasks[1].State)
	assert.Equal(t, schedule.Upcoming, reg.Tasks[2].State)

	tasks, err := svc.Tasks(reg.Planting.ID, "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 5)
}

func TestRegister_InvalidRangeStoresNothing(t *testing.T) {
	db, svc, _ := setup(t, "2024-01-04")
	rec := sandy()
	rec.HarvestOn = d("2023-12-31")

	_, err := svc.Register(rec)
	assert.ErrorIs(t, err, schedule.ErrInvalidRange)

	_, err = svc.Register(&entities.PlantingRecord{UserID: "u1"})
	assert.ErrorIs(t, err, planting.ErrMissingDates)

	var n int64
	require.NoError(t, db.Model(&entities.PlantingRecord{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRegister_ScheduleFailureKeepsPlanting(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	clk := clock.NewFake(d("2024-01-04"))
	svc := NewPlantingService(repositoryImp.New(db), brokenSchedule{}, nil, clk, nil)

	reg, err := svc.Register(sandy())
	var pe *schedule.PersistenceError
	require.ErrorAs(t, err, &pe)
	require.NotNil(t, reg)
	assert.NotZero(t, reg.Planting.ID)
	assert.Empty(t, reg.Tasks)

	got, err := svc.Get(reg.Planting.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Chili", got.PlantName)
}

func TestRegenerate(t *testing.T) {
	_, svc, sched := setup(t, "2024-01-03")
	reg, err := svc.Register(sandy())
	require.NoError(t, err)

	again, err := svc.Regenerate(reg.Planting.ID, "u1")
	require.NoError(t, err)
	assert.Len(t, again.Tasks, len(reg.Tasks))

	_, err = sched.Complete(reg.Tasks[1].ID, "u1")
	require.NoError(t, err)
	_, err = svc.Regenerate(reg.Planting.ID, "u1")
	assert.ErrorIs(t, err, schedule.ErrHasHistory)

	_, err = svc.Regenerate(reg.Planting.ID, "someone-else")
	assert.ErrorIs(t, err, schedule.ErrNotFound)
}

func TestPreview_StoresNothing(t *testing.T) {
	db, svc, _ := setup(t, "2024-01-01")
	rec := sandy()
	rec.FertilizerType = "NPK"

	p, err := svc.Preview(rec)
	require.NoError(t, err)
	assert.Equal(t, "npk", p.Plan.Fertilizer)
	require.NotNil(t, p.Intervals.Fertilizing)
	assert.NotEmpty(t, p.Drafts)

	var n int64
	require.NoError(t, db.Model(&entities.CareTask{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestList_OnlyOwnPlantings(t *testing.T) {
	_, svc, _ := setup(t, "2024-01-05")
	_, err := svc.Register(sandy())
	require.NoError(t, err)
	other := sandy()
	other.UserID = "u2"
	_, err = svc.Register(other)
	require.NoError(t, err)

	mine, err := svc.List("u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.InDelta(t, 44.4, mine[0].ProgressPct, 0.01)
}
