package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ResolveCollisions tests the player against every live object at time now.
// Every overlapping object is removed. A hazard queues a life loss and starts
// an invulnerability window of `invulnerable` seconds unless one is already
// active; a bonus always queues its points. Returns the number of objects hit.
func ResolveCollisions(p *Player, w *World, now, invulnerable float64, q *EventQueue) int {
	hits := 0
	box := p.Box()

	w.Each(func(o *FallingObject) {
		if !box.Overlaps(o.Box()) {
			return
		}
		hits++

		switch o.Kind {
		case KindHazard:
			if p.CanBeHit(now) {
				p.InvulnerableUntil = now + invulnerable
				q.Push(core.Event{Kind: core.EventLifeLost})
			}
		case KindBonus:
			q.Push(core.Event{Kind: core.EventPointsEarned, Value: o.Points})
		}

		o.dead = true
	})

	return hits
}
