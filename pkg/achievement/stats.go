package achievement

import (
	"math"
	"sort"
	"time"

	"farmcare/pkg/clock"
)

// Record is the slice of a care task the analytics look at.
type Record struct {
	Date      time.Time
	Completed bool
}

// Stats is recomputed from a user's task history on every read.
type Stats struct {
	Completed     int     `json:"completed"`
	Missed        int     `json:"missed"`
	Evaluated     int     `json:"evaluated"`
	Rate          float64 `json:"completion_rate"`
	CurrentStreak int     `json:"current_streak"`
	MaxStreak     int     `json:"max_streak"`
}

// RatePercent is Rate as a whole percentage.
func (s Stats) RatePercent() int { return int(math.Round(s.Rate * 100)) }

// Analyze derives Stats from a task history as of today. Tasks dated after
// today do not count toward the completion rate.
func Analyze(tasks []Record, today time.Time) Stats {
	today = clock.Day(today, nil)
	var s Stats
	onTime := 0
	days := map[time.Time]struct{}{}
	for _, t := range tasks {
		d := clock.Day(t.Date, nil)
		switch {
		case t.Completed:
			s.Completed++
			days[d] = struct{}{}
			if !d.After(today) {
				onTime++
			}
		case d.Before(today):
			s.Missed++
		}
	}
	s.Evaluated = onTime + s.Missed
	if s.Evaluated > 0 {
		s.Rate = float64(onTime) / float64(s.Evaluated)
	}
	s.CurrentStreak, s.MaxStreak = streaks(days, today)
	return s
}

func streaks(set map[time.Time]struct{}, today time.Time) (current, longest int) {
	if len(set) == 0 {
		return 0, 0
	}
	days := make([]time.Time, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if clock.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	// run now ends at the most recent completed day
	if clock.DaysBetween(days[len(days)-1], today) <= 1 {
		current = run
	}
	return current, longest
}
