package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrWindowIncomplete = errors.New("select start and end")
	ErrEndNotAfterStart = errors.New("end must be after start")
	ErrStartInPast      = errors.New("start must not be in the past")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// RentalWindow is a validated [start, end) interval in absolute time.
// Validation order matters and first failure wins: missing fields, then
// ordering, then the not-in-the-past rule against the caller's now.
type RentalWindow struct {
	start time.Time
	end   time.Time
}

func NewRentalWindow(start, end, now time.Time) (RentalWindow, error) {
	if start.IsZero() || end.IsZero() {
		return RentalWindow{}, ErrWindowIncomplete
	}
	if !end.After(start) {
		return RentalWindow{}, ErrEndNotAfterStart
	}
	if start.Before(now) {
		return RentalWindow{}, ErrStartInPast
	}
	return RentalWindow{start: start.UTC(), end: end.UTC()}, nil
}

// NewRentalWindowFromDuration supports the start + duration-hours request
// form; it derives the end instant and applies the same validation.
func NewRentalWindowFromDuration(start time.Time, hours float64, now time.Time) (RentalWindow, error) {
	if start.IsZero() || hours == 0 {
		return RentalWindow{}, ErrWindowIncomplete
	}
	if hours < 0 {
		return RentalWindow{}, ErrInvalidDuration
	}
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return NewRentalWindow(start, end, now)
}

func ReconstructRentalWindow(start, end time.Time) RentalWindow {
	return RentalWindow{start: start, end: end}
}

func (w RentalWindow) Start() time.Time {
	return w.start
}

func (w RentalWindow) End() time.Time {
	return w.end
}

func (w RentalWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w RentalWindow) Hours() float64 {
	return w.Duration().Hours()
}

// Overlaps reports whether two half-open windows intersect.
func (w RentalWindow) Overlaps(other RentalWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w RentalWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
