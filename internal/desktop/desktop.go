package desktop

import (
	"io"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/history"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
)

// Desktop is the reducer over a Manager and its icons. All pointer input goes
// through Dispatch; at most one gesture is active at a time because pointer
// input is a single stream.
type Desktop struct {
	mgr    *Manager
	icons  []*Icon
	logger *log.Logger

	gesture Ref
	active  bool
}

// New returns a desktop with the given icons in column order.
func New(registry Registry, store storage.Store, nav Navigator, icons []IconSpec, opts Options, logger *log.Logger) *Desktop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mgr := NewManager(registry, store, nav, opts, logger)
	d := &Desktop{mgr: mgr, logger: logger}
	for _, spec := range icons {
		d.icons = append(d.icons, &Icon{
			IconSpec: spec,
			drag: Draggable{
				Threshold: mgr.opts.ClickThreshold,
				BarHeight: mgr.opts.MenuBarHeight,
			},
		})
	}
	d.layoutIcons()
	return d
}

// Manager returns the window manager.
func (d *Desktop) Manager() *Manager {
	return d.mgr
}

// Icons returns the icons in column order.
func (d *Desktop) Icons() []*Icon {
	return d.icons
}

// Icon returns the icon with the given id.
func (d *Desktop) Icon(id string) (*Icon, bool) {
	for _, ic := range d.icons {
		if ic.ID == id {
			return ic, true
		}
	}
	return nil, false
}

// Gesture returns the owner of the active gesture.
func (d *Desktop) Gesture() (Ref, bool) {
	return d.gesture, d.active
}

// SetViewport records the screen size and recomputes default icon positions.
// Dragged icons and open windows keep their geometry.
func (d *Desktop) SetViewport(size Size) {
	d.mgr.SetViewport(size)
	d.layoutIcons()
}

func (d *Desktop) layoutIcons() {
	vw := d.mgr.viewport.Width
	for i, ic := range d.icons {
		if ic.Placed() || ic.Dragging() {
			continue
		}
		ic.Position = d.mgr.opts.Icons.Slot(i, vw)
	}
}

// Restore rehydrates the manager and returns frame requests for the restored
// windows.
func (d *Desktop) Restore(path string) []Effect {
	d.mgr.Restore(path)
	d.dropStaleGesture()
	return d.frames(nil)
}

// Navigate applies a history pop.
func (d *Desktop) Navigate(ps history.PopState) []Effect {
	d.mgr.Navigate(ps)
	d.dropStaleGesture()
	return d.frames(nil)
}

// Dispatch applies cmd and returns the effects the host must perform.
func (d *Desktop) Dispatch(cmd Command) []Effect {
	var effects []Effect
	switch c := cmd.(type) {
	case Press:
		effects = d.press(c)
	case StartDrag:
		d.startDrag(c.Target, c.Pointer)
	case StartResize:
		d.startResize(c.ID, c.Pointer)
	case Move:
		d.move(c.Pointer)
	case Commit:
		effects = d.commit(c.Pointer)
	case Cancel:
		d.cancel()
	case Focus:
		d.mgr.BringToFront(c.ID)
	case Close:
		if d.active && d.gesture.window() && d.gesture.ID == c.ID {
			d.active = false
		}
		d.mgr.Close(c.ID)
	case Open:
		d.mgr.Open(c.ID)
		d.dropStaleGesture()
	case Frame:
		if !d.mgr.Settle(c.ID, c.Generation) {
			d.logger.Debug("dropped stale frame", "id", c.ID, "generation", c.Generation)
		}
	}
	return d.frames(effects)
}

func (d *Desktop) press(c Press) []Effect {
	if d.active {
		d.cancel()
	}

	hit := d.HitTest(c.Pointer)
	var effects []Effect
	switch hit.Zone {
	case ZoneTitle, ZoneCloseBox, ZoneGrip, ZoneContent, ZoneFrame:
		effects = append(effects, d.Dispatch(Focus{ID: hit.ID})...)
	}
	if c.Button != ButtonLeft {
		return effects
	}

	switch hit.Zone {
	case ZoneCloseBox:
		d.gesture, d.active = CloseBoxRef(hit.ID), true
	case ZoneGrip:
		effects = append(effects, d.Dispatch(StartResize{ID: hit.ID, Pointer: c.Pointer})...)
	case ZoneTitle:
		effects = append(effects, d.Dispatch(StartDrag{Target: WindowRef(hit.ID), Pointer: c.Pointer})...)
	case ZoneContent:
		effects = append(effects, ActivateEffect{ID: hit.ID, Row: hit.Local.Y, Col: hit.Local.X})
	case ZoneIcon:
		effects = append(effects, d.Dispatch(StartDrag{Target: IconRef(hit.ID), Pointer: c.Pointer})...)
	}
	return effects
}

func (d *Desktop) startDrag(target Ref, pointer Point) {
	if d.active {
		return
	}
	switch target.Kind {
	case WindowKind:
		w, ok := d.mgr.Window(target.ID)
		if !ok || !w.StartDrag(pointer) {
			return
		}
	case IconKind:
		ic, ok := d.Icon(target.ID)
		if !ok {
			return
		}
		ic.drag.Begin(pointer, ic.Position)
	default:
		return
	}
	d.gesture, d.active = target, true
}

func (d *Desktop) startResize(id string, pointer Point) {
	if d.active {
		return
	}
	w, ok := d.mgr.Window(id)
	if !ok || !w.StartResize(pointer) {
		return
	}
	d.gesture, d.active = WindowRef(id), true
}

func (d *Desktop) move(pointer Point) {
	if !d.active {
		return
	}
	switch d.gesture.Kind {
	case WindowKind:
		if w, ok := d.mgr.Window(d.gesture.ID); ok {
			w.Move(pointer)
		}
	case IconKind:
		if ic, ok := d.Icon(d.gesture.ID); ok {
			ic.Position = ic.drag.Move(pointer)
		}
	}
}

func (d *Desktop) commit(pointer Point) []Effect {
	if !d.active {
		return nil
	}
	d.active = false

	switch d.gesture.Kind {
	case WindowKind:
		w, ok := d.mgr.Window(d.gesture.ID)
		if !ok {
			return nil
		}
		res := w.Release(pointer)
		if res.PositionChanged {
			d.mgr.UpdatePosition(w.ID, w.Position)
		}
		if res.SizeChanged {
			d.mgr.UpdateSize(w.ID, w.Size)
		}
	case IconKind:
		ic, ok := d.Icon(d.gesture.ID)
		if !ok {
			return nil
		}
		r := ic.drag.End(pointer)
		ic.Position = r.Position
		if r.Clicked {
			return d.activate(ic)
		}
	case CloseBoxKind:
		if hit := d.HitTest(pointer); hit.Zone == ZoneCloseBox && hit.ID == d.gesture.ID {
			return d.Dispatch(Close{ID: hit.ID})
		}
	}
	return nil
}

func (d *Desktop) activate(ic *Icon) []Effect {
	switch {
	case ic.Target.Window != "":
		return d.Dispatch(Open{ID: ic.Target.Window})
	case ic.Target.Link != "":
		return []Effect{OpenLinkEffect{URL: ic.Target.Link}}
	}
	return nil
}

func (d *Desktop) cancel() {
	if !d.active {
		return
	}
	d.active = false
	switch d.gesture.Kind {
	case WindowKind:
		if w, ok := d.mgr.Window(d.gesture.ID); ok {
			w.Cancel()
		}
	case IconKind:
		if ic, ok := d.Icon(d.gesture.ID); ok {
			ic.Position = ic.drag.Cancel()
		}
	}
}

func (d *Desktop) dropStaleGesture() {
	if d.active && d.gesture.window() && !d.mgr.IsOpen(d.gesture.ID) {
		d.active = false
	}
}

// frames appends a frame request for every window created since the last
// call that is still entering.
func (d *Desktop) frames(effects []Effect) []Effect {
	for _, w := range d.mgr.takeEntered() {
		if w.State != Entering {
			continue
		}
		if cur, ok := d.mgr.Window(w.ID); !ok || cur != w {
			continue
		}
		effects = append(effects, ScheduleFrameEffect{ID: w.ID, Generation: w.Generation})
	}
	return effects
}
