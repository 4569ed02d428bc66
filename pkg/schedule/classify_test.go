package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	today := day("2024-06-15")
	tests := []struct {
		name      string
		date      string
		completed bool
		want      State
	}{
		{"future", "2024-06-16", false, Upcoming},
		{"today", "2024-06-15", false, Due},
		{"past", "2024-06-14", false, Missed},
		{"completed today", "2024-06-15", true, Completed},
		{"completed flag wins over date", "2024-06-20", true, Completed},
		{"completed in the past", "2024-06-01", true, Completed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(today, day(tt.date), tt.completed))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Due, Classify(now, day("2024-06-15"), false))
}

func TestComplete_OnlyFromDue(t *testing.T) {
	today := day("2024-06-15")

	s, err := Complete(today, day("2024-06-15"), false)
	assert.NoError(t, err)
	assert.Equal(t, Completed, s)

	for _, c := range []struct {
		date      string
		completed bool
	}{
		{"2024-06-16", false},
		{"2024-06-14", false},
		{"2024-06-15", true},
	} {
		_, err := Complete(today, day(c.date), c.completed)
		assert.ErrorIs(t, err, ErrNotCompletable, "%s completed=%v", c.date, c.completed)
	}
}

func TestTimeOnlyMovesForward(t *testing.T) {
	date := day("2024-06-15")
	var seen []State
	for d := -2; d <= 2; d++ {
		seen = append(seen, Classify(date.AddDate(0, 0, d), date, false))
	}
	assert.Equal(t, []State{Upcoming, Upcoming, Due, Missed, Missed}, seen)
}

func TestGroup(t *testing.T) {
	type task struct {
		n     int
		state State
	}
	items := []task{{1, Missed}, {2, Due}, {3, Upcoming}, {4, Completed}, {5, Upcoming}}
	b := Group(items, func(t task) State { return t.state })

	assert.Equal(t, []task{{2, Due}}, b.Today)
	assert.Equal(t, []task{{3, Upcoming}, {5, Upcoming}}, b.Upcoming)
	assert.Equal(t, []task{{4, Completed}}, b.History)
	assert.Equal(t, []task{{1, Missed}}, b.Missed)

	empty := Group([]task(nil), func(t task) State { return t.state })
	assert.NotNil(t, empty.Today)
	assert.Empty(t, empty.Today)
}

func TestBucket(t *testing.T) {
	assert.Equal(t, "today", Due.Bucket())
	assert.Equal(t, "upcoming", Upcoming.Bucket())
	assert.Equal(t, "history", Completed.Bucket())
	assert.Equal(t, "missed", Missed.Bucket())
}
