// Package timer is the terminal interface for the elapsed time task: a
// progress bar filling up towards an adjustable duration, with a reset key.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/alert"
	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/elapsed"
	"github.com/ayoisaiah/sevenguis/internal/timeutil"
	"github.com/ayoisaiah/sevenguis/internal/ui"
)

const (
	padding  = 2
	maxWidth = 60

	fineStep   = 100 * time.Millisecond
	coarseStep = 1 * time.Second
)

type (
	// tickMsg carries the time at which a periodic tick fired.
	tickMsg time.Time

	// alertMsg reports the outcome of the alerts fired when the timer fills.
	alertMsg struct {
		err error
	}
)

// Timer is the bubbletea model for the elapsed time task.
type Timer struct {
	clock    *elapsed.Timer
	alerter  *alert.Alerter
	now      func() time.Time
	err      error
	styles   ui.Styles
	help     help.Model
	gauge    progress.Model
	slider   progress.Model
	interval time.Duration
	alerted  bool
}

// Option customises a Timer.
type Option func(t *Timer)

// WithClock replaces the source of the current time used on reset.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New creates a timer model from the configuration. The timer starts
// counting immediately.
func New(cfg *config.Config, opts ...Option) (*Timer, error) {
	t := &Timer{
		now:      time.Now,
		interval: cfg.Timer.Tick,
		styles: ui.NewStyles(
			cfg.Display.AccentColor,
			cfg.Display.InvalidColor,
			cfg.Display.DarkTheme,
		),
		help: help.New(),
		gauge: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		slider: progress.New(
			progress.WithSolidFill(cfg.Display.AccentColor),
			progress.WithoutPercentage(),
		),
		alerter: &alert.Alerter{
			Title:  "Timer",
			Cmd:    cfg.Timer.Cmd,
			Notify: cfg.Timer.Notify,
			Chime:  cfg.Timer.Chime,
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	clock, err := elapsed.New(t.now(), cfg.Timer.MaxDuration)
	if err != nil {
		return nil, err
	}

	t.clock = clock

	return t, nil
}

// Elapsed returns the elapsed time shown by the timer.
func (t *Timer) Elapsed() time.Duration {
	return t.clock.Elapsed()
}

// Max returns the currently selected duration.
func (t *Timer) Max() time.Duration {
	return t.clock.Max()
}

func (t *Timer) tick() tea.Cmd {
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return tickMsg(now)
	})
}

func (t *Timer) fireAlert() tea.Cmd {
	a := *t.alerter
	msg := "Timer reached " + timeutil.Seconds(t.clock.Max())

	return func() tea.Msg {
		return alertMsg{err: a.Fire(context.Background(), msg)}
	}
}

// adjust moves the maximum by delta. Values outside the accepted range are
// ignored so the previous duration stays in effect.
func (t *Timer) adjust(delta time.Duration) {
	err := t.clock.SetMax(t.clock.Max() + delta)
	if err != nil {
		slog.Debug("duration change ignored", slog.Any("error", err))
	}
}

func (t *Timer) Init() tea.Cmd {
	return t.tick()
}
