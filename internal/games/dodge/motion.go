package dodge

// Fall moves every live object straight down by its speed over dt seconds.
func Fall(w *World, dt float64) {
	w.Each(func(o *FallingObject) {
		o.Pos.Y -= o.FallSpeed * dt
	})
}

// Cleanup marks objects that dropped below the play area. Returns the count.
func Cleanup(w *World, b Boundary) int {
	n := 0
	w.Each(func(o *FallingObject) {
		if o.Pos.Y < b.YMin {
			o.dead = true
			n++
		}
	})
	return n
}
