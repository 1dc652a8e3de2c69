package core

import (
	"testing"
	"time"
)

func TestTimerRepeats(t *testing.T) {
	tm := NewTimer(time.Second)

	tests := []struct {
		dt       time.Duration
		fired    int
		finished bool
	}{
		{400 * time.Millisecond, 0, false},
		{400 * time.Millisecond, 0, false},
		{400 * time.Millisecond, 1, true}, // 1.2s total
		{500 * time.Millisecond, 0, false},
		{2300 * time.Millisecond, 2, true}, // long tick wraps twice
	}

	for i, tc := range tests {
		got := tm.Tick(tc.dt)
		if got != tc.fired {
			t.Errorf("step %d: Tick() = %d, expected %d", i, got, tc.fired)
		}
		if tm.Finished() != tc.finished {
			t.Errorf("step %d: Finished() = %v, expected %v", i, tm.Finished(), tc.finished)
		}
	}
}

func TestTimerNonPositivePeriod(t *testing.T) {
	tm := NewTimer(0)
	if tm.Tick(time.Hour) != 0 || tm.Finished() {
		t.Error("timer with zero period should never fire")
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Tick(900 * time.Millisecond)
	tm.Reset()
	if tm.Tick(200*time.Millisecond) != 0 {
		t.Error("Reset should discard accumulated time")
	}
}
