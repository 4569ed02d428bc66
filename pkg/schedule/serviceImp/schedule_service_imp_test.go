package serviceImp

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmcare/database"
	"farmcare/entities"
	"farmcare/pkg/achievement"
	"farmcare/pkg/clock"
	"farmcare/pkg/schedule"
	"farmcare/pkg/schedule/repository"
	"farmcare/pkg/schedule/repositoryImp"
	"farmcare/pkg/schedule/service"
)

var jakarta = time.FixedZone("WIB", 7*3600)

type listener struct {
	calls  []string
	badges []achievement.Badge
	err    error
}

func (l *listener) TaskCompleted(uid string) ([]achievement.Badge, error) {
	l.calls = append(l.calls, uid)
	return l.badges, l.err
}

type failingRepo struct {
	repository.ScheduleRepository
	err error
}

func (f failingRepo) ReplaceSchedule(uint, []entities.CareTask) error { return f.err }

func setup(t *testing.T, now time.Time, l service.CompletionListener) (service.ScheduleService, *clock.Fake) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	clk := clock.NewFake(now)
	return NewScheduleService(repositoryImp.New(db), clk, jakarta, l), clk
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func drafts(t *testing.T, start, end string, every int) []schedule.Draft {
	t.Helper()
	ds, err := schedule.Materialize(schedule.Plan{Start: day(start), End: day(end), WateringEvery: every, FertilizingEvery: 7, Fertilizer: "urea"})
	require.NoError(t, err)
	return ds
}

func TestWrite_ClassifiesAgainstLocalToday(t *testing.T) {
	// 2024-01-04 20:00 UTC is already 2024-01-05 in WIB
	svc, _ := setup(t, time.Date(2024, 1, 4, 20, 0, 0, 0, time.UTC), nil)
	rec := &entities.PlantingRecord{ID: 1, UserID: "u1"}

	views, err := svc.Write(rec, drafts(t, "2024-01-01", "2024-01-10", 2))
	require.NoError(t, err)
	require.Len(t, views, 7)

	states := map[string]schedule.State{}
	for _, v := range views {
		states[v.Date.UTC().Format("01-02")+" "+v.Activity] = v.State
	}
	assert.Equal(t, schedule.Missed, states["01-03 watering"])
	assert.Equal(t, schedule.Due, states["01-05 watering"])
	assert.Equal(t, schedule.Upcoming, states["01-07 watering"])
	assert.Equal(t, schedule.Upcoming, states["01-08 fertilizing:urea"])
}

func TestWrite_PersistenceFailureIsRetryable(t *testing.T) {
	svc := NewScheduleService(failingRepo{err: errors.New("database is locked")}, clock.NewFake(day("2024-01-01")), nil, nil)
	_, err := svc.Write(&entities.PlantingRecord{ID: 3, UserID: "u1"}, drafts(t, "2024-01-01", "2024-01-05", 1))

	var pe *schedule.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Retryable())
	assert.ErrorContains(t, err, "database is locked")
}

func TestComplete_OnlyDueTasks(t *testing.T) {
	l := &listener{badges: []achievement.Badge{{ID: achievement.Starter}}}
	svc, clk := setup(t, time.Date(2024, 1, 3, 9, 0, 0, 0, jakarta), l)
	views, err := svc.Write(&entities.PlantingRecord{ID: 1, UserID: "u1"}, drafts(t, "2024-01-01", "2024-01-05", 1))
	require.NoError(t, err)

	byDate := map[string]uint{}
	for _, v := range views {
		if v.Activity == schedule.ActivityWatering {
			byDate[v.Date.UTC().Format("01-02")] = v.ID
		}
	}

	_, err = svc.Complete(byDate["01-02"], "u1")
	assert.ErrorIs(t, err, schedule.ErrNotCompletable, "missed")
	_, err = svc.Complete(byDate["01-04"], "u1")
	assert.ErrorIs(t, err, schedule.ErrNotCompletable, "upcoming")
	_, err = svc.Complete(byDate["01-03"], "someone-else")
	assert.ErrorIs(t, err, schedule.ErrNotFound)

	res, err := svc.Complete(byDate["01-03"], "u1")
	require.NoError(t, err)
	assert.Equal(t, schedule.Completed, res.Task.State)
	assert.Equal(t, "history", res.Task.Bucket)
	assert.False(t, res.Task.CanComplete)
	assert.Equal(t, []string{"u1"}, l.calls)
	require.Len(t, res.NewBadges, 1)

	_, err = svc.Complete(byDate["01-03"], "u1")
	assert.ErrorIs(t, err, schedule.ErrNotCompletable, "already completed")

	clk.Advance(24 * time.Hour)
	res, err = svc.Complete(byDate["01-04"], "u1")
	require.NoError(t, err)
	assert.Equal(t, schedule.Completed, res.Task.State)
}

func TestComplete_ListenerFailureDoesNotFailCompletion(t *testing.T) {
	l := &listener{err: errors.New("stats unavailable")}
	svc, _ := setup(t, day("2024-01-01"), l)
	views, err := svc.Write(&entities.PlantingRecord{ID: 1, UserID: "u1"}, drafts(t, "2024-01-01", "2024-01-01", 1))
	require.NoError(t, err)

	res, err := svc.Complete(views[0].ID, "u1")
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges)
	assert.NotNil(t, res.NewBadges)
}

func TestWrite_RegenerationRefusedAfterCompletion(t *testing.T) {
	svc, _ := setup(t, day("2024-01-01"), nil)
	rec := &entities.PlantingRecord{ID: 1, UserID: "u1"}
	views, err := svc.Write(rec, drafts(t, "2024-01-01", "2024-01-03", 1))
	require.NoError(t, err)
	_, err = svc.Complete(views[0].ID, "u1")
	require.NoError(t, err)

	_, err = svc.Write(rec, drafts(t, "2024-01-01", "2024-01-03", 2))
	assert.ErrorIs(t, err, schedule.ErrHasHistory)
}

func TestExportXLSX(t *testing.T) {
	svc, _ := setup(t, day("2024-01-02"), nil)
	_, err := svc.Write(&entities.PlantingRecord{ID: 1, UserID: "u1"}, drafts(t, "2024-01-01", "2024-01-03", 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(1, "u1", &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Date", "Activity", "Fertilizer", "State", "Completed At"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "fertilizing", "urea", "missed"}, rows[1])
	assert.Equal(t, []string{"2024-01-02", "watering", "", "due"}, rows[3])
}
