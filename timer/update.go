package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/logger"
)

// handleTick recomputes the elapsed time and fires the alerts the first time
// the timer fills up.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	t.clock.Tick(time.Time(msg))

	cmds := []tea.Cmd{t.tick()}

	// re-armed by a reset or a larger duration
	if !t.clock.Done() {
		t.alerted = false
	} else if !t.alerted {
		t.alerted = true

		slog.Info("timer filled", slog.Duration("max", t.clock.Max()))

		cmds = append(cmds, t.fireAlert())
	}

	return t, tea.Batch(cmds...)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.reset):
		t.clock.Reset(t.now())
		t.alerted = false
		t.err = nil

	case key.Matches(msg, defaultKeymap.increase):
		t.adjust(fineStep)

	case key.Matches(msg, defaultKeymap.decrease):
		t.adjust(-fineStep)

	case key.Matches(msg, defaultKeymap.increaseMore):
		t.adjust(coarseStep)

	case key.Matches(msg, defaultKeymap.decreaseMore):
		t.adjust(-coarseStep)

	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case alertMsg:
		t.err = msg.err
		return t, nil

	case tea.KeyMsg:
		logger.Dump("timer key", msg)
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		width := min(msg.Width-padding*2-4, maxWidth)
		t.gauge.Width = width
		t.slider.Width = width

		return t, nil
	}

	return t, nil
}
