// Package countdown implements the resend cooldown shown on the
// validate-email step.
package countdown

import (
	"context"
	"time"
)

const (
	// DefaultSeconds is where the countdown starts on mount and after every resend.
	DefaultSeconds = 60

	// DefaultDuration is DefaultSeconds expressed as a time.Duration.
	DefaultDuration = DefaultSeconds * time.Second

	// DefaultInterval is the time between two ticks.
	DefaultInterval = time.Second
)

// Remaining returns the whole seconds left until deadline, rounded up.
// It never returns a negative number.
func Remaining(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	secs := int(left / time.Second)
	if left%time.Second != 0 {
		secs++
	}
	return secs
}

// Deadline returns the moment a countdown of d started at now reaches zero.
func Deadline(now time.Time, d time.Duration) time.Time {
	return now.Add(d)
}

// Run calls tick once per interval with the remaining count, starting at
// from-1 and ending at 0. It returns nil once zero has been delivered,
// ctx.Err() if ctx is cancelled first, or the first error returned by tick.
// A from of zero or less returns immediately without ticking.
func Run(ctx context.Context, from int, interval time.Duration, tick func(remaining int) error) error {
	if from <= 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for remaining := from - 1; remaining >= 0; remaining-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := tick(remaining); err != nil {
			return err
		}
	}
	return nil
}
