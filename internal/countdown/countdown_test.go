package countdown_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/authflow/internal/countdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 60, countdown.Remaining(countdown.Deadline(now, countdown.DefaultDuration), now))
	assert.Equal(t, 1, countdown.Remaining(now.Add(time.Millisecond), now))
	assert.Equal(t, 2, countdown.Remaining(now.Add(1500*time.Millisecond), now))
	assert.Equal(t, 0, countdown.Remaining(now, now))
	assert.Equal(t, 0, countdown.Remaining(now.Add(-time.Hour), now))
}

func TestRun_TicksDownToZero(t *testing.T) {
	var got []int
	err := countdown.Run(context.Background(), 5, time.Millisecond, func(n int) error {
		got = append(got, n)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, got)
}

func TestRun_ZeroDoesNotTick(t *testing.T) {
	called := false
	err := countdown.Run(context.Background(), 0, time.Millisecond, func(int) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	err := countdown.Run(ctx, 60, time.Millisecond, func(int) error {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, ticks)
}

func TestRun_StopsOnTickError(t *testing.T) {
	boom := errors.New("write failed")
	ticks := 0
	err := countdown.Run(context.Background(), 10, time.Millisecond, func(int) error {
		ticks++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ticks)
}
