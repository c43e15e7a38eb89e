package desktop

// WindowState is the lifecycle state of a Window.
type WindowState int

const (
	// Entering is the state right after opening, until the next frame.
	Entering WindowState = iota
	// Visible is the idle state.
	Visible
	// Dragging means a title-bar drag is in progress.
	Dragging
	// Resizing means a grip resize is in progress.
	Resizing
	// Closed is terminal; the window is discarded.
	Closed
)

// String returns the state name.
func (s WindowState) String() string {
	switch s {
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Window is one open window: a draggable, resizable container for a pane.
type Window struct {
	ID       string
	Title    string
	Position Point
	Size     Size
	State    WindowState

	// Generation identifies this opening of the window. Frame events
	// carrying another generation are stale.
	Generation uint64

	drag   Draggable
	resize Resizable
}

func newWindow(id, title string, pos Point, size Size, gen uint64, drag Draggable, resize Resizable) *Window {
	w := &Window{
		ID:         id,
		Title:      title,
		Position:   pos,
		Size:       resize.Limits.Clamp(size),
		State:      Entering,
		Generation: gen,
		drag:       drag,
		resize:     resize,
	}
	return w
}

// Bounds returns the window rectangle in desktop coordinates.
func (w *Window) Bounds() Rect {
	return Rect{Point: w.Position, Size: w.Size}
}

// Settle moves an entering window to Visible. Frames for another generation
// are ignored.
func (w *Window) Settle(gen uint64) bool {
	if w.State != Entering || gen != w.Generation {
		return false
	}
	w.State = Visible
	return true
}

// Busy reports whether a gesture owns the window.
func (w *Window) Busy() bool {
	return w.State == Dragging || w.State == Resizing
}

// StartDrag begins a title-bar drag. It is a no-op while another gesture is
// active or the window is closed.
func (w *Window) StartDrag(pointer Point) bool {
	if w.Busy() || w.State == Closed {
		return false
	}
	w.State = Dragging
	w.drag.Begin(pointer, w.Position)
	return true
}

// StartResize begins a grip resize.
func (w *Window) StartResize(pointer Point) bool {
	if w.Busy() || w.State == Closed {
		return false
	}
	w.State = Resizing
	w.resize.Begin(pointer, w.Size)
	return true
}

// Move applies a pointer move to the active gesture.
func (w *Window) Move(pointer Point) {
	switch w.State {
	case Dragging:
		w.Position = w.drag.Move(pointer)
	case Resizing:
		w.Size = w.resize.Move(pointer)
	}
}

// GestureResult reports the geometry committed by a released gesture.
type GestureResult struct {
	PositionChanged bool
	SizeChanged     bool
	Clicked         bool
}

// Release ends the active gesture and returns the window to Visible.
func (w *Window) Release(pointer Point) GestureResult {
	var res GestureResult
	switch w.State {
	case Dragging:
		r := w.drag.End(pointer)
		w.Position = r.Position
		res.PositionChanged = r.Committed
		res.Clicked = r.Clicked
	case Resizing:
		size, ok := w.resize.End(pointer)
		w.Size = size
		res.SizeChanged = ok
	default:
		return res
	}
	w.State = Visible
	return res
}

// Cancel abandons the active gesture without committing anything.
func (w *Window) Cancel() {
	switch w.State {
	case Dragging:
		w.Position = w.drag.Cancel()
	case Resizing:
		w.Size = w.resize.Cancel()
	default:
		return
	}
	w.State = Visible
}

// SetDefaultPosition applies an externally supplied position unless the
// window has been dragged.
func (w *Window) SetDefaultPosition(p Point) {
	if w.drag.Placed() || w.State == Dragging {
		return
	}
	w.Position = p
}

// SetDefaultSize applies an externally supplied size unless the window has
// been resized.
func (w *Window) SetDefaultSize(s Size) {
	if w.resize.Resized() || w.State == Resizing {
		return
	}
	w.Size = w.resize.Limits.Clamp(s)
}

// Placed reports whether the window was moved by hand.
func (w *Window) Placed() bool {
	return w.drag.Placed()
}

// Resized reports whether the window was resized by hand.
func (w *Window) Resized() bool {
	return w.resize.Resized()
}

func (w *Window) close() {
	w.drag.Cancel()
	w.resize.Cancel()
	w.State = Closed
}
