package ui

// Interact runs one interaction pass: every widget present when the pass starts
// is updated once, in render order. Widgets added by callbacks wait for the
// next pass.
func Interact(r *Registry, p Pointer) {
	r.Walk(func(w Widget) {
		w.Update(p)
	})
}
