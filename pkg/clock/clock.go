package clock

import (
	"sync"
	"time"
)

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fake is deterministic and test-friendly.
type Fake struct {
	mu sync.Mutex
	t  time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{t: start}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Day returns the calendar day of t as seen in loc, expressed as midnight UTC.
// All scheduled dates are stored in this form so day arithmetic never crosses DST.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is Day(c.Now(), loc).
func Today(c Clock, loc *time.Location) time.Time {
	return Day(c.Now(), loc)
}

// DaysBetween counts whole calendar days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b, nil).Sub(Day(a, nil)).Hours() / 24)
}

// ParseDay parses "YYYY-MM-DD" or an RFC3339 timestamp and keeps only the calendar day.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t, loc), nil
}
