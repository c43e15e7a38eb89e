package desktop

import (
	"io"
	"slices"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/history"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
)

// Manager owns the open windows of one desktop: the open-id list in
// insertion order, the focus order (last is topmost), the saved geometry and
// the live Window entities. Every operation is synchronous and none fail;
// storage problems degrade to empty state.
type Manager struct {
	opts     Options
	registry Registry
	layout   storage.Layout
	nav      Navigator
	logger   *log.Logger

	open       []string
	order      []string
	placements map[string]storage.Placement
	windows    map[string]*Window
	viewport   Size
	generation uint64

	// windows created since the last call to takeEntered
	entered []*Window
}

// NewManager returns an empty manager. store, nav and logger may be nil.
func NewManager(registry Registry, store storage.Store, nav Navigator, opts Options, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		opts:       opts.withDefaults(),
		registry:   registry,
		layout:     storage.Layout{Store: store},
		nav:        nav,
		logger:     logger,
		placements: make(map[string]storage.Placement),
		windows:    make(map[string]*Window),
	}
}

// Options returns the effective geometry options.
func (m *Manager) Options() Options {
	return m.opts
}

// Known reports whether id is in the registry.
func (m *Manager) Known(id string) bool {
	if m.registry == nil || id == "" {
		return false
	}
	_, ok := m.registry.Lookup(id)
	return ok
}

// SetViewport records the screen size used to center windows. Open windows
// without saved geometry are laid out again; windows placed or resized by
// hand keep theirs.
func (m *Manager) SetViewport(size Size) {
	if size == m.viewport {
		return
	}
	m.viewport = size
	for _, id := range m.open {
		if w, ok := m.windows[id]; ok {
			m.applyDefaults(w)
		}
	}
}

// Viewport returns the last recorded screen size.
func (m *Manager) Viewport() Size {
	return m.viewport
}

// Open opens id and makes it topmost. Opening an open window closes it.
// Unknown ids are ignored. The returned window is nil unless a window was
// created.
func (m *Manager) Open(id string) *Window {
	if !m.Known(id) {
		m.logger.Debug("ignoring unknown window", "id", id)
		return nil
	}
	if slices.Contains(m.open, id) {
		m.Close(id)
		return nil
	}

	m.open = append(m.open, id)
	m.order = append(removeID(m.order, id), id)
	w := m.spawn(id)

	m.saveOpen()
	m.push(history.PathFor(id))
	m.logger.Debug("opened window", "id", id, "x", w.Position.X, "y", w.Position.Y)
	return w
}

// Close closes id, forgets its saved geometry and points history at the last
// remaining window. It reports whether id was open.
func (m *Manager) Close(id string) bool {
	if !slices.Contains(m.open, id) {
		return false
	}
	m.open = removeID(m.open, id)
	m.order = removeID(m.order, id)
	m.discard(id)
	delete(m.placements, id)

	m.saveOpen()
	m.savePlacements()

	path := history.Root
	if n := len(m.open); n > 0 {
		path = history.PathFor(m.open[n-1])
	}
	m.push(path)
	m.logger.Debug("closed window", "id", id)
	return true
}

// BringToFront moves id to the top of the focus order. It is idempotent.
func (m *Manager) BringToFront(id string) {
	if !slices.Contains(m.open, id) {
		return
	}
	if n := len(m.order); n > 0 && m.order[n-1] == id {
		return
	}
	m.order = append(removeID(m.order, id), id)
}

// FocusNext raises the bottom-most window so that repeated calls cycle
// through every open window. It returns the raised id.
func (m *Manager) FocusNext() string {
	ws := m.Windows()
	if len(ws) < 2 {
		return m.Top()
	}
	id := ws[0].ID
	m.BringToFront(id)
	return id
}

// UpdatePosition merges a committed position into the saved geometry.
func (m *Manager) UpdatePosition(id string, pos Point) {
	if !slices.Contains(m.open, id) {
		return
	}
	p := m.placements[id]
	p.X, p.Y = pos.X, pos.Y
	m.placements[id] = p
	if w, ok := m.windows[id]; ok && !w.Busy() {
		w.Position = pos
	}
	m.savePlacements()
}

// UpdateSize merges a committed size into the saved geometry. The size is
// clamped to the minimum.
func (m *Manager) UpdateSize(id string, size Size) {
	if !slices.Contains(m.open, id) {
		return
	}
	size = m.opts.Limits.Clamp(size)
	p, ok := m.placements[id]
	w := m.windows[id]
	if !ok && w != nil {
		p.X, p.Y = w.Position.X, w.Position.Y
	}
	p.Width, p.Height = size.Width, size.Height
	m.placements[id] = p
	if w != nil && !w.Busy() {
		w.Size = size
	}
	m.savePlacements()
}

// Restore rehydrates the desktop from storage and the current path. Stale
// ids are dropped; a recognized path window missing from the saved set is
// appended, and the open list is written back when the path named a window.
func (m *Manager) Restore(path string) {
	ids := m.layout.OpenWindows(m.Known)
	m.placements = m.layout.Placements()

	fromPath := history.WindowFromPath(path, m.Known)
	if fromPath != "" && !slices.Contains(ids, fromPath) {
		ids = append(ids, fromPath)
	}

	m.order = nil
	m.setOpen(ids)
	if fromPath != "" {
		m.saveOpen()
	}
	m.logger.Debug("restored desktop", "path", path, "open", m.open)
}

// Navigate applies a back/forward event. A snapshot is applied verbatim;
// otherwise the path's window is merged into the saved open set, and a root
// or unknown path clears it.
func (m *Manager) Navigate(ps history.PopState) {
	if ps.State != nil {
		m.setOpen(m.filter(ps.State.OpenWindows))
		m.saveOpen()
		return
	}

	id := history.WindowFromPath(ps.Path, m.Known)
	if id == "" {
		m.setOpen(nil)
		m.saveOpen()
		return
	}

	saved := m.layout.OpenWindows(m.Known)
	if !slices.Contains(saved, id) {
		saved = append(saved, id)
		m.setOpen(saved)
		m.saveOpen()
		return
	}
	m.setOpen(saved)
}

// ZIndex returns the stacking value of id: the base plus its index in the
// focus order, or one below the base when id has never been focused.
func (m *Manager) ZIndex(id string) int {
	return m.opts.ZIndexBase + slices.Index(m.order, id)
}

// Windows returns the open windows from bottom to top. Windows with equal
// z-index keep insertion order.
func (m *Manager) Windows() []*Window {
	out := make([]*Window, 0, len(m.open))
	for _, id := range m.open {
		if w, ok := m.windows[id]; ok {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b *Window) int {
		return m.ZIndex(a.ID) - m.ZIndex(b.ID)
	})
	return out
}

// Window returns the live entity of an open window.
func (m *Manager) Window(id string) (*Window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// Top returns the topmost window id, or "" when nothing is open.
func (m *Manager) Top() string {
	ws := m.Windows()
	if len(ws) == 0 {
		return ""
	}
	return ws[len(ws)-1].ID
}

// OpenIDs returns a copy of the open list in insertion order.
func (m *Manager) OpenIDs() []string {
	return slices.Clone(m.open)
}

// Order returns a copy of the focus order, topmost last.
func (m *Manager) Order() []string {
	return slices.Clone(m.order)
}

// IsOpen reports whether id is open.
func (m *Manager) IsOpen(id string) bool {
	return slices.Contains(m.open, id)
}

// Placement returns the saved geometry of id.
func (m *Manager) Placement(id string) (storage.Placement, bool) {
	p, ok := m.placements[id]
	return p, ok
}

// Settle delivers an animation frame to id. Frames for closed windows or a
// previous opening are dropped.
func (m *Manager) Settle(id string, gen uint64) bool {
	w, ok := m.windows[id]
	if !ok {
		return false
	}
	return w.Settle(gen)
}

// CenteredPosition returns where a window of the given size opens when it
// has no saved position.
func (m *Manager) CenteredPosition(size Size) Point {
	desktopHeight := m.viewport.Height - m.opts.MenuBarHeight
	return Point{
		X: max(0, (m.viewport.Width-size.Width)/2),
		Y: max(0, (desktopHeight-size.Height)/2-m.opts.VerticalOffset),
	}
}

func (m *Manager) setOpen(ids []string) {
	for _, id := range m.open {
		if !slices.Contains(ids, id) {
			m.discard(id)
		}
	}
	m.open = slices.Clone(ids)
	m.order = slices.DeleteFunc(m.order, func(id string) bool {
		return !slices.Contains(m.open, id)
	})
	for _, id := range m.open {
		if _, ok := m.windows[id]; !ok {
			m.spawn(id)
		}
	}
}

func (m *Manager) spawn(id string) *Window {
	title := id
	if e, ok := m.registry.Lookup(id); ok && e.Title != "" {
		title = e.Title
	}

	size := m.opts.DefaultSize
	var pos Point
	if p, ok := m.placements[id]; ok {
		pos = Point{X: p.X, Y: p.Y}
		if p.HasSize() {
			size = Size{Width: p.Width, Height: p.Height}
		}
	} else {
		pos = m.CenteredPosition(size)
	}

	m.generation++
	w := newWindow(id, title, pos, size, m.generation,
		Draggable{Threshold: m.opts.ClickThreshold, BarHeight: m.opts.MenuBarHeight},
		Resizable{Limits: m.opts.Limits},
	)
	m.windows[id] = w
	m.entered = append(m.entered, w)
	return w
}

// applyDefaults moves w to its default geometry: the saved placement when
// there is one, otherwise the default size centered in the viewport.
func (m *Manager) applyDefaults(w *Window) {
	p, ok := m.placements[w.ID]
	if !ok {
		w.SetDefaultSize(m.opts.DefaultSize)
		w.SetDefaultPosition(m.CenteredPosition(w.Size))
		return
	}
	if p.HasSize() {
		w.SetDefaultSize(Size{Width: p.Width, Height: p.Height})
	}
	w.SetDefaultPosition(Point{X: p.X, Y: p.Y})
}

func (m *Manager) discard(id string) {
	if w, ok := m.windows[id]; ok {
		w.close()
		delete(m.windows, id)
	}
}

func (m *Manager) takeEntered() []*Window {
	out := m.entered
	m.entered = nil
	return out
}

func (m *Manager) filter(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if m.Known(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func (m *Manager) saveOpen() {
	if err := m.layout.SaveOpenWindows(m.open); err != nil {
		m.logger.Debug("failed to save open windows", "err", err)
	}
}

func (m *Manager) savePlacements() {
	if err := m.layout.SavePlacements(m.placements); err != nil {
		m.logger.Debug("failed to save window positions", "err", err)
	}
}

func (m *Manager) push(path string) {
	if m.nav == nil {
		return
	}
	m.nav.Push(history.Snapshot{OpenWindows: slices.Clone(m.open)}, path)
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(s string) bool { return s == id })
}
