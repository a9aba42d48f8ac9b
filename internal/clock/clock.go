// Package clock supplies wall time and slot arithmetic. Block timestamps
// are unix milliseconds and slots are aligned to the unix epoch, so nodes
// with synchronized clocks tick together.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a Clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Millis returns the clock's time as unix milliseconds.
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}

// SlotOf returns the slot number containing t.
func SlotOf(t time.Time, interval time.Duration) uint64 {
	if interval <= 0 || t.UnixNano() < 0 {
		return 0
	}
	return uint64(t.UnixNano() / int64(interval))
}

// UntilNextSlot returns the wait from t to the start of the next slot.
func UntilNextSlot(t time.Time, interval time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	elapsed := time.Duration(t.UnixNano() % int64(interval))
	if elapsed < 0 {
		elapsed += interval
	}
	return interval - elapsed
}

// SleepWithContext waits for d or returns early with ctx's error.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
