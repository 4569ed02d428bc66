package schedule

import (
	"time"

	"farmcare/pkg/clock"
)

type State string

const (
	Upcoming  State = "upcoming"
	Due       State = "due"
	Completed State = "completed"
	Missed    State = "missed"
)

// Classify derives a task's lifecycle state from today's date. Both dates are
// compared as calendar days.
func Classify(today, date time.Time, completed bool) State {
	if completed {
		return Completed
	}
	switch d := clock.DaysBetween(today, date); {
	case d > 0:
		return Upcoming
	case d == 0:
		return Due
	default:
		return Missed
	}
}

// Complete is the only user-triggered transition: Due to Completed.
func Complete(today, date time.Time, completed bool) (State, error) {
	if Classify(today, date, completed) != Due {
		return "", ErrNotCompletable
	}
	return Completed, nil
}

// Bucket is the display group a state falls into.
func (s State) Bucket() string {
	switch s {
	case Due:
		return "today"
	case Completed:
		return "history"
	default:
		return string(s)
	}
}

type Buckets[T any] struct {
	Today    []T `json:"today"`
	Upcoming []T `json:"upcoming"`
	History  []T `json:"history"`
	Missed   []T `json:"missed"`
}

// Group sorts items into display buckets, keeping their order within each bucket.
func Group[T any](items []T, state func(T) State) Buckets[T] {
	b := Buckets[T]{Today: []T{}, Upcoming: []T{}, History: []T{}, Missed: []T{}}
	for _, it := range items {
		switch state(it) {
		case Due:
			b.Today = append(b.Today, it)
		case Upcoming:
			b.Upcoming = append(b.Upcoming, it)
		case Completed:
			b.History = append(b.History, it)
		case Missed:
			b.Missed = append(b.Missed, it)
		}
	}
	return b
}
