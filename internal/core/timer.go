package core

import "time"

// Timer is a repeating countdown advanced explicitly by the game loop.
// It never reads the wall clock, so simulations stay deterministic.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	finished int // times the period elapsed during the last Tick
}

// NewTimer creates a repeating timer with the given period.
// A non-positive period yields a timer that never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and returns how many times it fired.
func (t *Timer) Tick(dt time.Duration) int {
	t.finished = 0
	if t.period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	for t.elapsed >= t.period {
		t.elapsed -= t.period
		t.finished++
	}
	return t.finished
}

// Finished reports whether the timer fired at least once during the last Tick.
func (t *Timer) Finished() bool {
	return t.finished > 0
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
