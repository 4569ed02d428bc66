package schedule

import (
	"sort"
	"strings"
	"time"

	"farmcare/pkg/clock"
)

const ActivityWatering = "watering"

const fertilizingPrefix = "fertilizing"

// FertilizingLabel is the activity label stored on fertilizing tasks.
func FertilizingLabel(fertilizer string) string {
	return fertilizingPrefix + ":" + fertilizer
}

// IsFertilizing reports whether an activity label belongs to a fertilizing task.
func IsFertilizing(activity string) bool {
	return activity == fertilizingPrefix || strings.HasPrefix(activity, fertilizingPrefix+":")
}

// Plan is everything needed to expand a planting into dated tasks.
// Fertilizing is active only when Fertilizer is set.
type Plan struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	WateringEvery    int       `json:"watering_every_days"`
	FertilizingEvery int       `json:"fertilizing_every_days,omitempty"`
	Fertilizer       string    `json:"fertilizer,omitempty"`
}

type Draft struct {
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
}

// Materialize emits one draft per occurrence of each active activity in
// [Start, End], ordered by date and then activity.
func Materialize(p Plan) ([]Draft, error) {
	start, end := clock.Day(p.Start, nil), clock.Day(p.End, nil)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	if p.WateringEvery <= 0 {
		return nil, ErrInvalidInterval
	}
	if p.Fertilizer != "" && p.FertilizingEvery <= 0 {
		return nil, ErrInvalidInterval
	}

	out := walk(start, end, p.WateringEvery, ActivityWatering, nil)
	if p.Fertilizer != "" {
		out = walk(start, end, p.FertilizingEvery, FertilizingLabel(p.Fertilizer), out)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Activity < out[j].Activity
	})
	return out, nil
}

func walk(start, end time.Time, every int, activity string, out []Draft) []Draft {
	for d := start; !d.After(end); d = d.AddDate(0, 0, every) {
		out = append(out, Draft{Date: d, Activity: activity})
	}
	return out
}
