package climate

import (
	"math"
	"strconv"
	"strings"
)

type Unit string

const (
	UnitDay    Unit = "day"
	UnitWeek   Unit = "week"
	UnitMonth  Unit = "month"
	UnitSeason Unit = "season"
)

// Fallback intervals used when the form leaves the amount blank or garbled.
const (
	DefaultWateringDays    = 3
	DefaultFertilizingDays = 14
)

var unitDays = map[Unit]int{
	UnitDay:    1,
	UnitWeek:   7,
	UnitMonth:  30,
	UnitSeason: 90,
}

var unitAliases = map[string]Unit{
	"day": UnitDay, "days": UnitDay, "d": UnitDay, "hari": UnitDay,
	"week": UnitWeek, "weeks": UnitWeek, "w": UnitWeek, "minggu": UnitWeek,
	"month": UnitMonth, "months": UnitMonth, "bulan": UnitMonth,
	"season": UnitSeason, "seasons": UnitSeason, "musim": UnitSeason,
}

// ParseUnit resolves a unit label. An empty label means days.
func ParseUnit(s string) (Unit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnitDay, true
	}
	u, ok := unitAliases[s]
	return u, ok
}

// Days returns the multiplier for u, or 0 for an unknown unit.
func (u Unit) Days() int { return unitDays[u] }

// IntervalDays converts an (amount, unit) pair from the planting form into a day count.
// It never fails: a missing, non-numeric or non-positive amount, or an unknown unit,
// yields fallback. The result is always at least 1.
func IntervalDays(amount, unit string, fallback int) int {
	if fallback < 1 {
		fallback = 1
	}
	n, ok := parseAmount(amount)
	if !ok {
		return fallback
	}
	u, ok := ParseUnit(unit)
	if !ok {
		return fallback
	}
	days := int(math.Round(n * float64(u.Days())))
	if days < 1 {
		days = 1
	}
	return days
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return n, true
}
