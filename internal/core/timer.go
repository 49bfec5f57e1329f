package core

import (
	"context"
	"time"
)

// FrameClock paces a loop at a steady frames-per-second rate. It stands in for
// the display refresh callback when no window is open.
type FrameClock struct {
	step time.Duration
	next time.Time
	now  func() time.Time
}

// NewFrameClock constructs a FrameClock targeting the given rate. A rate of
// zero or less disables pacing.
func NewFrameClock(tps int) *FrameClock {
	fc := &FrameClock{now: time.Now}
	fc.SetTPS(tps)
	return fc
}

// SetTPS changes the frame rate. It is safe to call between frames.
func (f *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the frame interval, zero when unthrottled.
func (f *FrameClock) Step() time.Duration { return f.step }

// Wait blocks until the next frame is due or ctx is done. Frames that are
// already late are released immediately and the schedule is rebased, so a
// slow frame never causes a burst of catch-up frames.
func (f *FrameClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.step == 0 {
		return nil
	}
	now := f.now()
	if f.next.IsZero() {
		f.next = now
	}
	delay := f.next.Sub(now)
	if delay <= 0 {
		f.next = now.Add(f.step)
		return nil
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	f.next = f.next.Add(f.step)
	return nil
}
