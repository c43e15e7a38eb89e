package desktop

// Zone is the part of the screen under a pointer.
type Zone int

// Screen zones, as returned by HitTest.
const (
	ZoneDesktop Zone = iota
	ZoneMenuBar
	ZoneTitle
	ZoneCloseBox
	ZoneGrip
	ZoneContent
	ZoneFrame
	ZoneIcon
)

func (z Zone) String() string {
	switch z {
	case ZoneDesktop:
		return "desktop"
	case ZoneMenuBar:
		return "menubar"
	case ZoneTitle:
		return "title"
	case ZoneCloseBox:
		return "close"
	case ZoneGrip:
		return "grip"
	case ZoneContent:
		return "content"
	case ZoneFrame:
		return "frame"
	case ZoneIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Hit is the result of a hit test. Local is relative to the zone origin:
// the first content cell for ZoneContent, the entity origin otherwise.
type Hit struct {
	Zone  Zone
	ID    string
	Local Point
}

// Window chrome, in cells relative to the window origin. Row 0 is the title
// bar; the close box sits at columns 1-3 of it; the grip is the bottom-right
// cell; content starts one cell in from every edge.
const (
	CloseBoxX     = 1
	CloseBoxWidth = 3
)

// CloseBox returns the close box of a window rectangle.
func CloseBox(r Rect) Rect {
	return Rect{
		Point: Point{X: r.X + CloseBoxX, Y: r.Y},
		Size:  Size{Width: CloseBoxWidth, Height: 1},
	}
}

// Grip returns the resize grip cell of a window rectangle.
func Grip(r Rect) Point {
	return Point{X: r.X + r.Width - 1, Y: r.Y + r.Height - 1}
}

// Content returns the content area of a window rectangle.
func Content(r Rect) Rect {
	return Rect{
		Point: Point{X: r.X + 1, Y: r.Y + 1},
		Size:  Size{Width: max(0, r.Width-2), Height: max(0, r.Height-2)},
	}
}

// HitTest finds what lies under a screen pointer: the menu bar, then windows
// from the topmost down, then icons, then the bare desktop.
func (d *Desktop) HitTest(pointer Point) Hit {
	bar := d.mgr.opts.MenuBarHeight
	if pointer.Y < bar {
		return Hit{Zone: ZoneMenuBar, Local: pointer}
	}
	pt := pointer.Sub(Point{Y: bar})

	ws := d.mgr.Windows()
	for i := len(ws) - 1; i >= 0; i-- {
		w := ws[i]
		r := w.Bounds()
		if !r.Contains(pt) {
			continue
		}
		local := pt.Sub(r.Point)
		switch {
		case CloseBox(r).Contains(pt):
			return Hit{Zone: ZoneCloseBox, ID: w.ID, Local: local}
		case pt == Grip(r):
			return Hit{Zone: ZoneGrip, ID: w.ID, Local: local}
		case pt.Y == r.Y:
			return Hit{Zone: ZoneTitle, ID: w.ID, Local: local}
		case Content(r).Contains(pt):
			return Hit{Zone: ZoneContent, ID: w.ID, Local: pt.Sub(Content(r).Point)}
		default:
			return Hit{Zone: ZoneFrame, ID: w.ID, Local: local}
		}
	}

	size := Size{Width: d.mgr.opts.Icons.Width, Height: d.mgr.opts.Icons.Height}
	for i := len(d.icons) - 1; i >= 0; i-- {
		ic := d.icons[i]
		if ic.Bounds(size).Contains(pt) {
			return Hit{Zone: ZoneIcon, ID: ic.ID, Local: pt.Sub(ic.Position)}
		}
	}
	return Hit{Zone: ZoneDesktop, Local: pt}
}
