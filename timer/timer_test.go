package timer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/logger"
	"github.com/ayoisaiah/sevenguis/internal/testutil"
)

func newTestTimer(t *testing.T, limit time.Duration) (*Timer, *testutil.Clock) {
	t.Helper()

	cfg := config.Default()
	cfg.Timer.MaxDuration = limit

	clock := testutil.NewClock()

	tm, err := New(cfg, WithClock(clock.Now))
	require.NoError(t, err)

	return tm, clock
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewRejectsInvalidDuration(t *testing.T) {
	cfg := config.Default()
	cfg.Timer.MaxDuration = 2 * time.Minute

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestTickFillsUpToMax(t *testing.T) {
	tm, clock := newTestTimer(t, 5*time.Second)

	tm.Update(tickMsg(clock.Advance(2 * time.Second)))
	assert.Equal(t, 2*time.Second, tm.Elapsed())

	tm.Update(tickMsg(clock.Advance(10 * time.Second)))
	assert.Equal(t, 5*time.Second, tm.Elapsed())
}

func TestAlertFiresOncePerRunUp(t *testing.T) {
	tm, clock := newTestTimer(t, 2*time.Second)

	tm.Update(tickMsg(clock.Advance(3 * time.Second)))
	assert.True(t, tm.alerted)

	// further ticks at max do not re-arm
	tm.Update(tickMsg(clock.Advance(time.Second)))
	assert.True(t, tm.alerted)

	tm.Update(keyPress("r"))
	assert.False(t, tm.alerted)
	assert.Equal(t, time.Duration(0), tm.Elapsed())

	tm.Update(tickMsg(clock.Advance(500 * time.Millisecond)))
	assert.False(t, tm.alerted)
}

func TestRaisingMaxResumes(t *testing.T) {
	tm, clock := newTestTimer(t, 2*time.Second)

	tm.Update(tickMsg(clock.Advance(5 * time.Second)))
	assert.Equal(t, 2*time.Second, tm.Elapsed())

	for range 10 {
		tm.Update(keyPress("up"))
	}

	assert.Equal(t, 12*time.Second, tm.Max())

	tm.Update(tickMsg(clock.T))
	assert.Equal(t, 5*time.Second, tm.Elapsed())
	assert.False(t, tm.alerted)
}

func TestLoweringMaxClampsElapsed(t *testing.T) {
	tm, clock := newTestTimer(t, 10*time.Second)

	tm.Update(tickMsg(clock.Advance(8 * time.Second)))

	for range 5 {
		tm.Update(keyPress("down"))
	}

	assert.Equal(t, 5*time.Second, tm.Max())
	assert.Equal(t, 5*time.Second, tm.Elapsed())
}

func TestAdjustKeys(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Duration
		keys  []string
		want  time.Duration
	}{
		{
			name:  "fine increase",
			start: 30 * time.Second,
			keys:  []string{"right", "l"},
			want:  30*time.Second + 200*time.Millisecond,
		},
		{
			name:  "fine decrease",
			start: 30 * time.Second,
			keys:  []string{"left", "h", "left"},
			want:  30*time.Second - 300*time.Millisecond,
		},
		{
			name:  "coarse steps",
			start: 30 * time.Second,
			keys:  []string{"up", "up", "down", "k"},
			want:  32 * time.Second,
		},
		{
			name:  "upper bound is kept",
			start: 60 * time.Second,
			keys:  []string{"up", "right"},
			want:  60 * time.Second,
		},
		{
			name:  "lower bound is kept",
			start: 1 * time.Second,
			keys:  []string{"down", "left", "j"},
			want:  1 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tm, _ := newTestTimer(t, tc.start)

			for _, k := range tc.keys {
				tm.Update(keyPress(k))
			}

			assert.Equal(t, tc.want, tm.Max())
		})
	}
}

func TestQuit(t *testing.T) {
	tm, _ := newTestTimer(t, 5*time.Second)

	_, cmd := tm.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAlertErrorIsShown(t *testing.T) {
	tm, _ := newTestTimer(t, 5*time.Second)

	tm.Update(alertMsg{err: assert.AnError})
	assert.Contains(t, tm.View(), assert.AnError.Error())
}

func TestSliderPosition(t *testing.T) {
	tm, _ := newTestTimer(t, 1*time.Second)
	assert.InDelta(t, 0, tm.sliderPosition(), 1e-9)

	tm, _ = newTestTimer(t, 60*time.Second)
	assert.InDelta(t, 1, tm.sliderPosition(), 1e-9)
}

func TestRejectedAdjustmentIsLogged(t *testing.T) {
	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(logger.New(&buf, slog.LevelDebug))

	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	tm, _ := newTestTimer(t, 60*time.Second)

	tm.Update(keyPress("up"))

	assert.Equal(t, 60*time.Second, tm.Max())
	assert.Contains(t, buf.String(), "duration change ignored")
}
