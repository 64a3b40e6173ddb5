// Package elapsed measures how much time has passed since the last reset,
// capped at an adjustable maximum. It performs no scheduling of its own: the
// caller supplies the current time on every tick.
package elapsed

import (
	"time"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
)

const (
	MinDuration     = 1 * time.Second
	MaxDuration     = 60 * time.Second
	DefaultDuration = 30 * time.Second

	// DefaultTick is the cadence at which hosts are expected to call Tick.
	DefaultTick = 16 * time.Millisecond
)

var ErrDurationOutOfRange = &apperr.Error{
	Message: "duration must be between %v and %v, got %v",
}

// Timer tracks the time elapsed since start, never exceeding max.
//
// The zero value is not usable; create timers with New.
type Timer struct {
	start   time.Time
	max     time.Duration
	elapsed time.Duration
}

func validate(d time.Duration) error {
	if d < MinDuration || d > MaxDuration {
		return ErrDurationOutOfRange.Fmt(MinDuration, MaxDuration, d)
	}

	return nil
}

// New returns a timer started at now.
func New(now time.Time, limit time.Duration) (*Timer, error) {
	if err := validate(limit); err != nil {
		return nil, err
	}

	return &Timer{
		start: now,
		max:   limit,
	}, nil
}

// Tick recomputes the elapsed time from now and returns it. The result is
// clamped to [0, max] and is never carried over from a previous tick, so a
// timer that was capped by a lower maximum catches up with the clock once the
// maximum is raised.
func (t *Timer) Tick(now time.Time) time.Duration {
	t.elapsed = min(max(now.Sub(t.start), 0), t.max)

	return t.elapsed
}

// SetMax changes the maximum. Values outside [MinDuration, MaxDuration] are
// rejected and the previous maximum is kept. The start reference is never
// affected.
func (t *Timer) SetMax(d time.Duration) error {
	if err := validate(d); err != nil {
		return err
	}

	t.max = d
	t.elapsed = min(t.elapsed, t.max)

	return nil
}

// Reset makes now the new origin for elapsed time.
func (t *Timer) Reset(now time.Time) {
	t.start = now
	t.elapsed = 0
}

// Elapsed returns the value computed by the last Tick.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Max() time.Duration {
	return t.max
}

// Fraction reports progress towards the maximum in the range [0, 1].
func (t *Timer) Fraction() float64 {
	return t.elapsed.Seconds() / t.max.Seconds()
}

// Done reports whether the elapsed time has reached the maximum.
func (t *Timer) Done() bool {
	return t.elapsed >= t.max
}
