package desktop

// Resizable turns pointer gestures on a corner grip into clamped sizes.
type Resizable struct {
	Limits Limits

	active  bool
	start   Point
	initial Size
	last    Size
	resized bool
}

// Begin starts a resize with the pointer at pointer and the entity at size.
func (r *Resizable) Begin(pointer Point, size Size) {
	r.active = true
	r.start = pointer
	r.initial = size
	r.last = size
}

// Active reports whether a resize is in progress.
func (r *Resizable) Active() bool {
	return r.active
}

// Move returns max(min, start+delta) for each axis.
func (r *Resizable) Move(pointer Point) Size {
	if !r.active {
		return r.last
	}
	r.last = r.sizeAt(pointer)
	return r.last
}

// End commits the final size exactly once. The boolean is false when no
// resize was active.
func (r *Resizable) End(pointer Point) (Size, bool) {
	if !r.active {
		return r.last, false
	}
	r.active = false
	r.last = r.sizeAt(pointer)
	r.resized = true
	return r.last, true
}

// Cancel abandons the resize and returns the starting size.
func (r *Resizable) Cancel() Size {
	if r.active {
		r.active = false
		r.last = r.initial
	}
	return r.last
}

// Resized reports whether a resize has ever been committed.
func (r *Resizable) Resized() bool {
	return r.resized
}

func (r *Resizable) sizeAt(pointer Point) Size {
	delta := pointer.Sub(r.start)
	return r.Limits.Clamp(Size{
		Width:  r.initial.Width + delta.X,
		Height: r.initial.Height + delta.Y,
	})
}
