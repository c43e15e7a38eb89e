package desktop

// Target is what activating an icon does: open a window or follow a link.
type Target struct {
	Window string
	Link   string
}

// OpenWindow returns a Target that opens the window id.
func OpenWindow(id string) Target {
	return Target{Window: id}
}

// OpenLink returns a Target that follows url.
func OpenLink(url string) Target {
	return Target{Link: url}
}

// IconSpec describes a desktop icon before it is laid out.
type IconSpec struct {
	ID     string
	Label  string
	Glyph  string
	Target Target
}

// Icon is a draggable, clickable desktop shortcut. Icon positions are never
// persisted; they come from the viewport unless the icon was dragged.
type Icon struct {
	IconSpec
	Position Point

	drag Draggable
}

// Bounds returns the icon hit box for the given icon size.
func (i *Icon) Bounds(size Size) Rect {
	return Rect{Point: i.Position, Size: size}
}

// Dragging reports whether the icon is being dragged.
func (i *Icon) Dragging() bool {
	return i.drag.Active()
}

// Placed reports whether the icon was moved by hand.
func (i *Icon) Placed() bool {
	return i.drag.Placed()
}

// IconLayout places icons in a right-aligned column.
type IconLayout struct {
	Width   int // icon hit box width
	Height  int // icon hit box height
	Margin  int // gap to the right edge
	Top     int // y of the first icon
	Spacing int // rows between successive icon tops
}

// Slot returns the default position of the n-th icon for a viewport width.
func (l IconLayout) Slot(n, viewportWidth int) Point {
	return Point{
		X: max(0, viewportWidth-l.Width-l.Margin),
		Y: l.Top + n*l.Spacing,
	}
}
