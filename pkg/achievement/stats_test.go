package achievement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)

func ago(n int) time.Time { return today.AddDate(0, 0, -n) }

func done(days ...int) []Record {
	out := make([]Record, 0, len(days))
	for _, d := range days {
		out = append(out, Record{Date: ago(d), Completed: true})
	}
	return out
}

func TestAnalyze_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Analyze(nil, today))
}

func TestAnalyze_ConsecutiveDays(t *testing.T) {
	s := Analyze(done(2, 1, 0), today)
	assert.Equal(t, 3, s.MaxStreak)
	assert.Equal(t, 3, s.CurrentStreak)
}

func TestAnalyze_GapBreaksStreak(t *testing.T) {
	s := Analyze(done(5, 3), today)
	assert.Equal(t, 1, s.MaxStreak)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestAnalyze_CurrentStreakEndingYesterday(t *testing.T) {
	s := Analyze(done(3, 2, 1), today)
	assert.Equal(t, 3, s.CurrentStreak)
}

func TestAnalyze_CurrentStreakLapsed(t *testing.T) {
	s := Analyze(done(10, 9, 8, 7, 2), today)
	assert.Equal(t, 4, s.MaxStreak)
	assert.Equal(t, 0, s.CurrentStreak)
}

func TestAnalyze_CurrentIsTrailingRunNotLongest(t *testing.T) {
	s := Analyze(done(12, 11, 10, 9, 8, 1, 0), today)
	assert.Equal(t, 5, s.MaxStreak)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestAnalyze_SameDayCountsOnce(t *testing.T) {
	tasks := append(done(1, 1, 1), done(0, 0)...)
	s := Analyze(tasks, today)
	assert.Equal(t, 5, s.Completed)
	assert.Equal(t, 2, s.MaxStreak)
}

func TestAnalyze_CompletionRate(t *testing.T) {
	tasks := done(4, 3, 2, 1)
	tasks = append(tasks,
		Record{Date: ago(5)},                     // missed
		Record{Date: today},                      // due, not counted
		Record{Date: today.AddDate(0, 0, 3)},     // upcoming, not counted
		Record{Date: today.AddDate(0, 0, 6)},     // upcoming, not counted
	)
	s := Analyze(tasks, today)
	assert.Equal(t, 4, s.Completed)
	assert.Equal(t, 1, s.Missed)
	assert.Equal(t, 5, s.Evaluated)
	assert.InDelta(t, 0.8, s.Rate, 1e-9)
	assert.Equal(t, 80, s.RatePercent())
}

func TestAnalyze_TimeOfDayIgnored(t *testing.T) {
	late := today.Add(23 * time.Hour)
	s := Analyze([]Record{{Date: ago(1).Add(20 * time.Hour), Completed: true}}, late)
	assert.Equal(t, 1, s.CurrentStreak)
}
