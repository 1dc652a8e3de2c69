package dodge

// Handle identifies a falling object for its whole lifetime.
// Handles are never reused within a session.
type Handle uint64

// World is the arena of falling objects.
// Systems mark objects dead during a tick; Compact removes them once at tick end
// so iteration order and indices stay stable while systems run.
type World struct {
	objects    []FallingObject
	nextHandle Handle
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		objects:    make([]FallingObject, 0, 16),
		nextHandle: 1,
	}
}

// Reset removes every object. Handles keep increasing.
func (w *World) Reset() {
	w.objects = w.objects[:0]
}

// Spawn adds an object and returns its handle.
func (w *World) Spawn(o FallingObject) Handle {
	o.Handle = w.nextHandle
	o.dead = false
	w.nextHandle++
	w.objects = append(w.objects, o)
	return o.Handle
}

// Get returns the live object with the given handle.
func (w *World) Get(h Handle) (*FallingObject, bool) {
	for i := range w.objects {
		if w.objects[i].Handle == h && !w.objects[i].dead {
			return &w.objects[i], true
		}
	}
	return nil, false
}

// Each calls fn for every live object in spawn order.
// fn may mark objects dead; they are skipped by later calls in the same tick.
func (w *World) Each(fn func(o *FallingObject)) {
	for i := range w.objects {
		if w.objects[i].dead {
			continue
		}
		fn(&w.objects[i])
	}
}

// Live returns the number of live objects.
func (w *World) Live() int {
	n := 0
	for i := range w.objects {
		if !w.objects[i].dead {
			n++
		}
	}
	return n
}

// Compact drops dead objects, preserving order. Returns how many were removed.
func (w *World) Compact() int {
	kept := w.objects[:0]
	for _, o := range w.objects {
		if !o.dead {
			kept = append(kept, o)
		}
	}
	removed := len(w.objects) - len(kept)
	// Zero the tail so dropped objects don't linger in the backing array
	for i := len(kept); i < len(w.objects); i++ {
		w.objects[i] = FallingObject{}
	}
	w.objects = kept
	return removed
}

// Objects returns the stored objects, including any not yet compacted.
func (w *World) Objects() []FallingObject {
	return w.objects
}
