package desktop

// Command is an input to Desktop.Dispatch. Pointers are screen coordinates.
type Command interface {
	command()
}

// Button identifies a mouse button.
type Button int

// Mouse buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// RefKind says what a Ref names: a window, an icon, or the close box of a
// window.
type RefKind int

// Ref kinds.
const (
	WindowKind RefKind = iota
	IconKind
	CloseBoxKind
)

// Ref names a gesture owner.
type Ref struct {
	Kind RefKind
	ID   string
}

// WindowRef returns a Ref to window id.
func WindowRef(id string) Ref {
	return Ref{Kind: WindowKind, ID: id}
}

// IconRef returns a Ref to icon id.
func IconRef(id string) Ref {
	return Ref{Kind: IconKind, ID: id}
}

// CloseBoxRef returns a Ref to the close box of window id. It is armed by a
// press and fires when the pointer is released over the same box.
func CloseBoxRef(id string) Ref {
	return Ref{Kind: CloseBoxKind, ID: id}
}

// window reports whether the gesture is bound to an open window.
func (r Ref) window() bool {
	return r.Kind == WindowKind || r.Kind == CloseBoxKind
}

type (
	// Press is a pointer-down. It is hit-tested and expanded into Focus,
	// StartDrag, StartResize or an armed close box.
	Press struct {
		Pointer Point
		Button  Button
	}

	// StartDrag begins dragging a window by its title bar or an icon.
	StartDrag struct {
		Target  Ref
		Pointer Point
	}

	// StartResize begins resizing window ID from its grip.
	StartResize struct {
		ID      string
		Pointer Point
	}

	// Move is a pointer move. It is ignored when no gesture is active.
	Move struct {
		Pointer Point
	}

	// Commit is a pointer-up ending the active gesture.
	Commit struct {
		Pointer Point
	}

	// Cancel abandons the active gesture without committing it.
	Cancel struct{}

	// Focus brings window ID to the front.
	Focus struct {
		ID string
	}

	// Close closes window ID.
	Close struct {
		ID string
	}

	// Open opens window ID, or closes it when already open.
	Open struct {
		ID string
	}

	// Frame is an animation frame requested by ScheduleFrameEffect.
	Frame struct {
		ID         string
		Generation uint64
	}
)

func (Press) command()       {}
func (StartDrag) command()   {}
func (StartResize) command() {}
func (Move) command()        {}
func (Commit) command()      {}
func (Cancel) command()      {}
func (Focus) command()       {}
func (Close) command()       {}
func (Open) command()        {}
func (Frame) command()       {}

// Effect is work Dispatch asks its host to perform.
type Effect interface {
	effect()
}

type (
	// OpenLinkEffect asks the host to open an external link.
	OpenLinkEffect struct {
		URL string
	}

	// ScheduleFrameEffect asks the host to deliver Frame{ID, Generation} on
	// the next animation tick.
	ScheduleFrameEffect struct {
		ID         string
		Generation uint64
	}

	// ActivateEffect reports a click inside the content area of window ID.
	// Row and Col are relative to the first content cell.
	ActivateEffect struct {
		ID  string
		Row int
		Col int
	}
)

func (OpenLinkEffect) effect()      {}
func (ScheduleFrameEffect) effect() {}
func (ActivateEffect) effect()      {}
