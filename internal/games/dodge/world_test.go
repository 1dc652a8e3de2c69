package dodge

import "testing"

// despawn marks a live object dead the way collision and cleanup do.
func despawn(w *World, h Handle) bool {
	o, ok := w.Get(h)
	if !ok {
		return false
	}
	o.dead = true
	return true
}

func TestWorldSpawnDespawnCompact(t *testing.T) {
	w := NewWorld()

	a := w.Spawn(FallingObject{Kind: KindHazard})
	b := w.Spawn(FallingObject{Kind: KindBonus, Points: 10})
	c := w.Spawn(FallingObject{Kind: KindHazard})

	if a == b || b == c {
		t.Fatal("handles should be unique")
	}
	if w.Live() != 3 {
		t.Fatalf("Live() = %d, expected 3", w.Live())
	}

	if !despawn(w, b) {
		t.Fatal("Despawn of live object should succeed")
	}
	if despawn(w, b) {
		t.Error("second Despawn of the same object should fail")
	}
	if _, ok := w.Get(b); ok {
		t.Error("dead object should not be returned by Get")
	}

	// Dead objects are skipped but still stored until compaction
	visited := 0
	w.Each(func(*FallingObject) { visited++ })
	if visited != 2 || len(w.Objects()) != 3 {
		t.Errorf("visited %d, stored %d; expected 2 and 3", visited, len(w.Objects()))
	}

	if removed := w.Compact(); removed != 1 {
		t.Errorf("Compact() = %d, expected 1", removed)
	}
	objs := w.Objects()
	if len(objs) != 2 || objs[0].Handle != a || objs[1].Handle != c {
		t.Errorf("Compact should keep order, got %+v", objs)
	}
}

func TestWorldHandlesNotReused(t *testing.T) {
	w := NewWorld()
	h1 := w.Spawn(FallingObject{})
	w.Reset()
	h2 := w.Spawn(FallingObject{})
	if h2 <= h1 {
		t.Errorf("handle after Reset = %d, expected > %d", h2, h1)
	}
}

func TestWorldDespawnDuringEach(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.Spawn(FallingObject{Points: i})
	}

	w.Each(func(o *FallingObject) {
		if o.Points%2 == 0 {
			despawn(w, o.Handle)
		}
	})
	w.Compact()

	for _, o := range w.Objects() {
		if o.Points%2 == 0 {
			t.Errorf("object with points %d should have been removed", o.Points)
		}
	}
}
