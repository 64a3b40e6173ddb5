package elapsed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sevenguis/internal/testutil"
)

func TestTickResetScenario(t *testing.T) {
	clock := testutil.NewClock()
	t0 := clock.Now()

	timer, err := New(t0, DefaultDuration)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, timer.Tick(t0.Add(10*time.Second)))
	assert.Equal(t, 30*time.Second, timer.Tick(t0.Add(40*time.Second)))
	assert.True(t, timer.Done())
	assert.InDelta(t, 1.0, timer.Fraction(), 1e-9)

	timer.Reset(t0.Add(40 * time.Second))
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	assert.Equal(t, 5*time.Second, timer.Tick(t0.Add(45*time.Second)))
	assert.False(t, timer.Done())
}

func TestTickIsIdempotent(t *testing.T) {
	clock := testutil.NewClock()

	timer, err := New(clock.Now(), DefaultDuration)
	require.NoError(t, err)

	now := clock.Advance(7 * time.Second)

	first := timer.Tick(now)
	second := timer.Tick(now)

	assert.Equal(t, first, second)
}

func TestTickIsMonotonic(t *testing.T) {
	clock := testutil.NewClock()

	timer, err := New(clock.Now(), 5*time.Second)
	require.NoError(t, err)

	var prev time.Duration

	for range 500 {
		got := timer.Tick(clock.Advance(DefaultTick))

		if got < prev {
			t.Fatalf("elapsed decreased from %v to %v", prev, got)
		}

		if got > timer.Max() {
			t.Fatalf("elapsed %v exceeds max %v", got, timer.Max())
		}

		prev = got
	}

	assert.Equal(t, 5*time.Second, prev)
}

func TestTickBeforeStartIsZero(t *testing.T) {
	clock := testutil.NewClock()

	timer, err := New(clock.Now(), DefaultDuration)
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), timer.Tick(clock.Now().Add(-time.Second)))
}

func TestRaisingMaxResumesFromClock(t *testing.T) {
	clock := testutil.NewClock()
	t0 := clock.Now()

	timer, err := New(t0, 10*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, timer.Tick(t0.Add(25*time.Second)))

	require.NoError(t, timer.SetMax(40*time.Second))

	// the frozen value is not the starting point
	assert.Equal(t, 26*time.Second, timer.Tick(t0.Add(26*time.Second)))
}

func TestLoweringMaxClamps(t *testing.T) {
	clock := testutil.NewClock()
	t0 := clock.Now()

	timer, err := New(t0, 30*time.Second)
	require.NoError(t, err)

	timer.Tick(t0.Add(20 * time.Second))

	require.NoError(t, timer.SetMax(15*time.Second))
	assert.Equal(t, 15*time.Second, timer.Elapsed())

	assert.Equal(t, 15*time.Second, timer.Tick(t0.Add(21*time.Second)))
}

func TestSetMaxDoesNotMoveStart(t *testing.T) {
	clock := testutil.NewClock()
	t0 := clock.Now()

	timer, err := New(t0, 30*time.Second)
	require.NoError(t, err)

	require.NoError(t, timer.SetMax(20*time.Second))

	assert.Equal(t, 12*time.Second, timer.Tick(t0.Add(12*time.Second)))
}

func TestSetMaxRejectsOutOfRange(t *testing.T) {
	clock := testutil.NewClock()

	timer, err := New(clock.Now(), 30*time.Second)
	require.NoError(t, err)

	for _, d := range []time.Duration{
		0,
		999 * time.Millisecond,
		60*time.Second + time.Millisecond,
		-time.Second,
	} {
		err := timer.SetMax(d)
		if !errors.Is(err, ErrDurationOutOfRange) {
			t.Errorf("%v: expected ErrDurationOutOfRange, got %v", d, err)
		}

		assert.Equal(t, 30*time.Second, timer.Max())
	}

	assert.NoError(t, timer.SetMax(MinDuration))
	assert.NoError(t, timer.SetMax(MaxDuration))
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(time.Now(), 2*time.Minute)
	assert.ErrorIs(t, err, ErrDurationOutOfRange)
}
