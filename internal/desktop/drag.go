package desktop

// DefaultClickThreshold is the pointer travel, measured as |dx|+|dy|, below
// which a released gesture counts as a click rather than a drag.
const DefaultClickThreshold = 5

// DragResult describes how a drag gesture ended.
type DragResult struct {
	Position  Point
	Clicked   bool // travel stayed under the threshold
	Committed bool // a real drag was committed
}

// Draggable turns pointer-down/move/up on a handle into absolute positions.
// Pointers are screen coordinates; positions are desktop coordinates, so
// BarHeight rows are subtracted on every move.
type Draggable struct {
	Threshold int
	BarHeight int

	active bool
	offset Point // pointer minus the handle's screen origin
	start  Point // pointer at Begin
	origin Point // position at Begin
	last   Point
	placed bool
}

// Begin starts a gesture with the pointer at pointer and the entity at
// position.
func (d *Draggable) Begin(pointer, position Point) {
	handle := position.Add(Point{Y: d.BarHeight})
	d.active = true
	d.offset = pointer.Sub(handle)
	d.start = pointer
	d.origin = position
	d.last = position
}

// Active reports whether a gesture is in progress.
func (d *Draggable) Active() bool {
	return d.active
}

// Move returns the entity position for the current pointer. It returns the
// last position when no gesture is active.
func (d *Draggable) Move(pointer Point) Point {
	if !d.active {
		return d.last
	}
	d.last = d.positionAt(pointer)
	return d.last
}

// End finishes the gesture. A release under the click threshold restores the
// starting position and reports a click; anything else commits exactly once.
func (d *Draggable) End(pointer Point) DragResult {
	if !d.active {
		return DragResult{Position: d.last}
	}
	d.active = false

	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultClickThreshold
	}
	if pointer.Manhattan(d.start) < threshold {
		d.last = d.origin
		return DragResult{Position: d.origin, Clicked: true}
	}

	d.last = d.positionAt(pointer)
	d.placed = true
	return DragResult{Position: d.last, Committed: true}
}

// Cancel abandons the gesture and returns the starting position.
func (d *Draggable) Cancel() Point {
	if d.active {
		d.active = false
		d.last = d.origin
	}
	return d.last
}

// positionAt keeps the handle below the menu bar, where it can be grabbed
// again.
func (d *Draggable) positionAt(pointer Point) Point {
	p := pointer.Sub(d.offset).Sub(Point{Y: d.BarHeight})
	p.Y = max(0, p.Y)
	return p
}

// Placed reports whether a drag has ever been committed. Placed entities keep
// their manual position for their lifetime in memory.
func (d *Draggable) Placed() bool {
	return d.placed
}
