package climate

import (
	"fmt"
	"strings"
)

type Activity string

const (
	Watering    Activity = "watering"
	Fertilizing Activity = "fertilizing"
)

type Factor string

const (
	FactorSoilType    Factor = "soil_type"
	FactorHumidity    Factor = "humidity"
	FactorTemperature Factor = "temperature"
	FactorAltitude    Factor = "altitude"
	FactorIrrigation  Factor = "irrigation"
	FactorSeedSource  Factor = "seed_source"
	FactorFertilizer  Factor = "fertilizer_type"
	FactorSoilPH      Factor = "soil_ph"
)

var floors = map[Activity]int{
	Watering:    1,
	Fertilizing: 7,
}

// Floor is the minimum interval in days an adjusted activity may have.
func Floor(a Activity) int { return floors[a] }

// Conditions carries the planting attributes the rules look at.
// String fields may hold canonical keys or the labels the planting form submits.
type Conditions struct {
	SoilType       string
	Humidity       string
	Temperature    string
	Altitude       string
	Irrigation     string
	SeedSource     string
	FertilizerType string
	SoilPH         *float64
}

func (c Conditions) value(f Factor) string {
	var raw string
	switch f {
	case FactorSoilType:
		raw = c.SoilType
	case FactorHumidity:
		raw = c.Humidity
	case FactorTemperature:
		raw = c.Temperature
	case FactorAltitude:
		raw = c.Altitude
	case FactorIrrigation:
		raw = c.Irrigation
	case FactorSeedSource:
		raw = c.SeedSource
	case FactorFertilizer:
		raw = c.FertilizerType
	}
	return Canonical(f, raw)
}

// Rule adds Delta days to an activity's base interval when its factor matches.
// Categorical rules match on Value; the soil_ph rule matches when pH < Below.
type Rule struct {
	Activity Activity `yaml:"activity" json:"activity"`
	Factor   Factor   `yaml:"factor" json:"factor"`
	Value    string   `yaml:"value,omitempty" json:"value,omitempty"`
	Below    *float64 `yaml:"below,omitempty" json:"below,omitempty"`
	Delta    int      `yaml:"delta" json:"delta"`
}

func (r Rule) Matches(c Conditions) bool {
	if r.Factor == FactorSoilPH {
		return c.SoilPH != nil && r.Below != nil && *c.SoilPH < *r.Below
	}
	v := c.value(r.Factor)
	return v != "" && v == r.Value
}

func (r Rule) String() string {
	if r.Factor == FactorSoilPH && r.Below != nil {
		return fmt.Sprintf("%s: %s < %g => %+d", r.Activity, r.Factor, *r.Below, r.Delta)
	}
	return fmt.Sprintf("%s: %s=%s => %+d", r.Activity, r.Factor, r.Value, r.Delta)
}

func (r Rule) validate() error {
	if _, ok := floors[r.Activity]; !ok {
		return fmt.Errorf("unknown activity %q", r.Activity)
	}
	switch r.Factor {
	case FactorSoilPH:
		if r.Below == nil {
			return fmt.Errorf("%s rule needs a 'below' threshold", r.Factor)
		}
	case FactorSoilType, FactorHumidity, FactorTemperature, FactorAltitude,
		FactorIrrigation, FactorSeedSource, FactorFertilizer:
		if r.Value == "" {
			return fmt.Errorf("%s rule needs a value", r.Factor)
		}
	default:
		return fmt.Errorf("unknown factor %q", r.Factor)
	}
	return nil
}

// Adjustment explains how an interval was derived.
type Adjustment struct {
	Activity Activity `json:"activity"`
	Base     int      `json:"base_days"`
	Delta    int      `json:"delta_days"`
	Floor    int      `json:"floor_days"`
	Interval int      `json:"interval_days"`
	Applied  []Rule   `json:"applied_rules"`
}

type Engine struct {
	rules []Rule
}

// NewEngine validates rules and canonicalizes their values.
func NewEngine(rules []Rule) (*Engine, error) {
	out := make([]Rule, 0, len(rules))
	for i, r := range rules {
		r.Activity = Activity(strings.ToLower(strings.TrimSpace(string(r.Activity))))
		r.Factor = Factor(strings.ToLower(strings.TrimSpace(string(r.Factor))))
		if r.Factor != FactorSoilPH {
			r.Value = Canonical(r.Factor, r.Value)
		}
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return &Engine{rules: out}, nil
}

// Default returns an engine over the built-in rule table.
func Default() *Engine {
	e, err := NewEngine(DefaultRules())
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Adjust returns max(base + sum of matching deltas, floor).
func (e *Engine) Adjust(a Activity, base int, c Conditions) int {
	return e.Explain(a, base, c).Interval
}

func (e *Engine) Explain(a Activity, base int, c Conditions) Adjustment {
	adj := Adjustment{Activity: a, Base: base, Floor: Floor(a), Applied: []Rule{}}
	for _, r := range e.rules {
		if r.Activity != a || !r.Matches(c) {
			continue
		}
		adj.Delta += r.Delta
		adj.Applied = append(adj.Applied, r)
	}
	adj.Interval = base + adj.Delta
	if adj.Interval < adj.Floor {
		adj.Interval = adj.Floor
	}
	if adj.Interval < 1 {
		adj.Interval = 1
	}
	return adj
}

func ph(v float64) *float64 { return &v }

// DefaultRules is the built-in heuristic table.
func DefaultRules() []Rule {
	w := func(f Factor, v string, d int) Rule { return Rule{Activity: Watering, Factor: f, Value: v, Delta: d} }
	fz := func(f Factor, v string, d int) Rule { return Rule{Activity: Fertilizing, Factor: f, Value: v, Delta: d} }

	return []Rule{
		w(FactorSoilType, "sand", -1),
		w(FactorSoilType, "peat", +1),
		w(FactorSoilType, "humus", +2),
		w(FactorSoilType, "volcanic", +1),
		w(FactorSoilType, "laterite", +1),
		w(FactorSoilType, "rocky", -1),
		w(FactorHumidity, "low", -1),
		w(FactorHumidity, "high", +1),
		w(FactorTemperature, "cold", +1),
		w(FactorTemperature, "hot", -1),
		w(FactorIrrigation, "drip", +1),
		w(FactorIrrigation, "subsurface", +1),
		w(FactorIrrigation, "surface", -1),
		w(FactorIrrigation, "rain-fed", -1),
		w(FactorIrrigation, "well-pump", -1),

		fz(FactorSeedSource, "self-harvested", -1),
		fz(FactorSeedSource, "from-other-farmer", -1),
		fz(FactorSeedSource, "wild", -2),
		fz(FactorSeedSource, "research-institute", +1),
		fz(FactorAltitude, "lowland", +1),
		fz(FactorAltitude, "midland", +1),
		fz(FactorAltitude, "highland", +2),
		fz(FactorFertilizer, "manure", +1),
		fz(FactorFertilizer, "compost", +1),
		fz(FactorFertilizer, "green", +1),
		fz(FactorFertilizer, "bokashi", +1),
		fz(FactorFertilizer, "microbial", +1),
		fz(FactorFertilizer, "liquid-organic", +1),
		fz(FactorFertilizer, "hydroponic-nutrient", +1),
		fz(FactorFertilizer, "bio-liquid", +1),
		fz(FactorFertilizer, "urea", -1),
		fz(FactorFertilizer, "npk", -1),
		fz(FactorFertilizer, "superphosphate", -1),
		fz(FactorFertilizer, "ammonium-sulfate", -1),
		fz(FactorFertilizer, "potassium-chloride", -1),
		fz(FactorFertilizer, "slow-release", -1),
		{Activity: Fertilizing, Factor: FactorSoilPH, Below: ph(5.5), Delta: -2},
	}
}
