package achievement

import "time"

const (
	Starter      = "starter"
	Punctual     = "punctual"
	StreakKeeper = "streak-keeper"
	Dedicated    = "dedicated"
)

// Badge is a fixed achievement definition.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Target      int    `json:"target"`

	progress  func(Stats) int
	qualifies func(Stats) bool
}

// Qualifies reports whether s satisfies the badge rule.
func (b Badge) Qualifies(s Stats) bool { return b.qualifies(s) }

// Progress is the badge's metric for s, capped at Target.
func (b Badge) Progress(s Stats) int {
	return min(b.progress(s), b.Target)
}

const (
	punctualRate    = 0.85
	punctualMinimum = 10
)

var badges = []Badge{
	{
		ID: Starter, Name: "Diligent Starter",
		Description: "Complete 10 care tasks",
		Target:      10,
		progress:    func(s Stats) int { return s.Completed },
		qualifies:   func(s Stats) bool { return s.Completed >= 10 },
	},
	{
		ID: Punctual, Name: "Right On Time",
		Description: "Keep an 85% completion rate over at least 10 tasks",
		Target:      85,
		progress:    func(s Stats) int { return s.RatePercent() },
		qualifies: func(s Stats) bool {
			return s.Rate >= punctualRate && s.Evaluated >= punctualMinimum
		},
	},
	{
		ID: StreakKeeper, Name: "Streak Farmer",
		Description: "Complete tasks 7 days in a row",
		Target:      7,
		progress:    func(s Stats) int { return s.MaxStreak },
		qualifies:   func(s Stats) bool { return s.MaxStreak >= 7 },
	},
	{
		ID: Dedicated, Name: "Dedicated Grower",
		Description: "Complete 50 care tasks",
		Target:      50,
		progress:    func(s Stats) int { return s.Completed },
		qualifies:   func(s Stats) bool { return s.Completed >= 50 },
	},
}

// Badges returns the catalogue in display order.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

// Lookup finds a badge by id.
func Lookup(id string) (Badge, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate returns the badges s newly qualifies for. Badges already in earned
// are skipped without being checked.
func Evaluate(s Stats, earned map[string]bool) []Badge {
	var out []Badge
	for _, b := range badges {
		if earned[b.ID] {
			continue
		}
		if b.qualifies(s) {
			out = append(out, b)
		}
	}
	return out
}

// Standing is one catalogue row for a user.
type Standing struct {
	Badge
	Progress int        `json:"progress"`
	Earned   bool       `json:"earned"`
	EarnedOn *time.Time `json:"earned_on,omitempty"`
}

// Catalogue lists every badge with the user's progress toward it.
func Catalogue(s Stats, earned map[string]time.Time) []Standing {
	out := make([]Standing, 0, len(badges))
	for _, b := range badges {
		st := Standing{Badge: b, Progress: b.Progress(s)}
		if on, ok := earned[b.ID]; ok {
			on := on
			st.Earned = true
			st.EarnedOn = &on
			st.Progress = b.Target
		}
		out = append(out, st)
	}
	return out
}
