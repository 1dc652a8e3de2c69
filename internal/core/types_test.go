package core

import "testing"

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{
		{Kind: EventLifeLost, Value: 0},
		{Kind: EventGameOver, Value: 30},
	}}

	if !r.Has(EventGameOver) || !r.Has(EventLifeLost) {
		t.Error("Has should find queued events")
	}
	if r.Has(EventPointsEarned) {
		t.Error("Has reported an event that did not happen")
	}
	if (StepResult{}).Has(EventGameOver) {
		t.Error("empty result should have no events")
	}
}
