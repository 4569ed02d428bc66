package planting

import (
	"errors"
	"math"
	"time"

	"farmcare/entities"
	"farmcare/pkg/climate"
	"farmcare/pkg/clock"
	"farmcare/pkg/schedule"
)

var ErrMissingDates = errors.New("planting and harvest dates are required")

// Intervals explains how each activity's interval was derived.
type Intervals struct {
	Watering    climate.Adjustment  `json:"watering"`
	Fertilizing *climate.Adjustment `json:"fertilizing,omitempty"`
}

func Conditions(r *entities.PlantingRecord) climate.Conditions {
	return climate.Conditions{
		SoilType:       r.SoilType,
		Humidity:       r.Humidity,
		Temperature:    r.Temperature,
		Altitude:       r.Altitude,
		Irrigation:     r.Irrigation,
		SeedSource:     r.SeedSource,
		FertilizerType: r.FertilizerType,
		SoilPH:         r.SoilPH,
	}
}

// Validate checks the date range before anything is stored.
func Validate(r *entities.PlantingRecord) error {
	if r.PlantedOn.IsZero() || r.HarvestOn.IsZero() {
		return ErrMissingDates
	}
	if clock.Day(r.HarvestOn, nil).Before(clock.Day(r.PlantedOn, nil)) {
		return schedule.ErrInvalidRange
	}
	return nil
}

// Build runs the form values through normalization and adjustment and
// returns the materializer input. Fertilizing is planned only when a
// fertilizer type is set.
func Build(e *climate.Engine, r *entities.PlantingRecord) (schedule.Plan, Intervals) {
	c := Conditions(r)
	var iv Intervals

	wBase := climate.IntervalDays(r.WateringAmount, r.WateringUnit, climate.DefaultWateringDays)
	iv.Watering = e.Explain(climate.Watering, wBase, c)

	p := schedule.Plan{
		Start:         clock.Day(r.PlantedOn, nil),
		End:           clock.Day(r.HarvestOn, nil),
		WateringEvery: iv.Watering.Interval,
	}
	if fert := climate.Canonical(climate.FactorFertilizer, r.FertilizerType); fert != "" {
		fBase := climate.IntervalDays(r.FertilizerAmount, r.FertilizerUnit, climate.DefaultFertilizingDays)
		adj := e.Explain(climate.Fertilizing, fBase, c)
		iv.Fertilizing = &adj
		p.Fertilizer = fert
		p.FertilizingEvery = adj.Interval
	}
	return p, iv
}

// Progress is the share of the growing period elapsed by today, 0 to 100,
// rounded to one decimal.
func Progress(r *entities.PlantingRecord, today time.Time) float64 {
	total := clock.DaysBetween(r.PlantedOn, r.HarvestOn)
	if total < 1 {
		total = 1
	}
	pct := float64(clock.DaysBetween(r.PlantedOn, today)) / float64(total) * 100
	pct = math.Max(0, math.Min(100, pct))
	return math.Round(pct*10) / 10
}
