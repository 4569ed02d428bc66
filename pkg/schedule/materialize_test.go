package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dates(ds []Draft, activity string) []string {
	var out []string
	for _, d := range ds {
		if d.Activity == activity {
			out = append(out, d.Date.Format("2006-01-02"))
		}
	}
	return out
}

func TestMaterialize_SandyWateringEveryTwoDays(t *testing.T) {
	got, err := Materialize(Plan{Start: day("2024-01-01"), End: day("2024-01-10"), WateringEvery: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07", "2024-01-09"}, dates(got, ActivityWatering))
	assert.Len(t, got, 5)
}

func TestMaterialize_MergesByDateThenActivity(t *testing.T) {
	got, err := Materialize(Plan{
		Start: day("2024-03-01"), End: day("2024-03-20"),
		WateringEvery: 3, FertilizingEvery: 7, Fertilizer: "urea",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-01", "2024-03-08", "2024-03-15"}, dates(got, "fertilizing:urea"))
	assert.Len(t, dates(got, ActivityWatering), 7)

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, Draft{Date: day("2024-03-01"), Activity: "fertilizing:urea"}, got[0])
	assert.Equal(t, Draft{Date: day("2024-03-01"), Activity: ActivityWatering}, got[1])
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.Before(got[i-1].Date), "out of order at %d", i)
	}
}

func TestMaterialize_Properties(t *testing.T) {
	start := day("2024-02-10")
	for span := 0; span <= 60; span += 7 {
		end := start.AddDate(0, 0, span)
		for w := 1; w <= 5; w++ {
			got, err := Materialize(Plan{Start: start, End: end, WateringEvery: w, FertilizingEvery: 7 + w, Fertilizer: "npk"})
			require.NoError(t, err)

			var prev time.Time
			for _, d := range got {
				assert.False(t, d.Date.Before(start) || d.Date.After(end), "%v outside range", d.Date)
				if d.Activity != ActivityWatering {
					continue
				}
				if !prev.IsZero() {
					assert.Equal(t, time.Duration(w)*24*time.Hour, d.Date.Sub(prev))
				}
				prev = d.Date
			}
		}
	}
}

func TestMaterialize_SingleDay(t *testing.T) {
	got, err := Materialize(Plan{Start: day("2024-05-05"), End: day("2024-05-05"), WateringEvery: 3, FertilizingEvery: 14, Fertilizer: "compost"})
	require.NoError(t, err)
	assert.Equal(t, []Draft{
		{Date: day("2024-05-05"), Activity: "fertilizing:compost"},
		{Date: day("2024-05-05"), Activity: ActivityWatering},
	}, got)
}

func TestMaterialize_NoFertilizer(t *testing.T) {
	got, err := Materialize(Plan{Start: day("2024-05-01"), End: day("2024-05-03"), WateringEvery: 1, FertilizingEvery: 0})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, d := range got {
		assert.False(t, IsFertilizing(d.Activity))
	}
}

func TestMaterialize_Rejects(t *testing.T) {
	_, err := Materialize(Plan{Start: day("2024-01-10"), End: day("2024-01-01"), WateringEvery: 2})
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = Materialize(Plan{Start: day("2024-01-01"), End: day("2024-01-10"), WateringEvery: 0})
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = Materialize(Plan{Start: day("2024-01-01"), End: day("2024-01-10"), WateringEvery: 2, Fertilizer: "urea", FertilizingEvery: -1})
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	var err error = &PersistenceError{Op: "write schedule", Err: cause}

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.True(t, pe.Retryable())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "write schedule: disk full", err.Error())
}
