package main

import "time"

// frameInterval is the time between two frames, about 16.67 ms.
const frameInterval = time.Second / 60

// pacer holds the frame loop to a fixed rate.
type pacer struct {
	interval time.Duration
	last     time.Time // Boundary of the previous frame.
}

func newPacer(interval time.Duration, start time.Time) *pacer {
	return &pacer{interval: interval, last: start}
}

// Wait blocks until the next frame boundary.
func (p *pacer) Wait() {
	now := time.Now()
	p.last = nextFrame(p.last, now, p.interval)
	time.Sleep(p.last.Sub(now))
}

// nextFrame returns the first boundary after now on the grid of the given
// interval that passes through last. Boundaries that were already missed
// are skipped rather than caught up on.
func nextFrame(last, now time.Time, interval time.Duration) time.Time {
	next := last.Add(interval)
	if next.After(now) {
		return next
	}
	return last.Add((now.Sub(last)/interval + 1) * interval)
}
