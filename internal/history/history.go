// Package history models the navigable address of the desktop: a stack of
// entries, each carrying the path shown to the user and, when pushed by the
// window manager, a snapshot of the open windows at that point.
package history

import (
	"slices"
	"strings"
)

// DefaultLimit is the number of entries kept before the oldest are dropped.
const DefaultLimit = 100

// Root is the path that opens no window.
const Root = "/"

// Snapshot is the state carried by a pushed entry.
type Snapshot struct {
	OpenWindows []string `json:"openWindows"`
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{OpenWindows: slices.Clone(s.OpenWindows)}
}

// Entry is one history item.
type Entry struct {
	Path  string
	State *Snapshot
}

// PopState is delivered on back/forward. State is nil for entries that were
// entered directly rather than pushed.
type PopState struct {
	Path  string
	State *Snapshot
}

// History is a bounded back/forward stack. It is not safe for concurrent
// use; the desktop mutates it from its event loop only.
type History struct {
	entries []Entry
	index   int
	limit   int
}

// New returns a history positioned at path.
func New(path string, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{
		entries: []Entry{{Path: normalize(path)}},
		limit:   limit,
	}
}

// Push appends an entry after the current one, discarding forward entries.
func (h *History) Push(state Snapshot, path string) {
	h.push(Entry{Path: normalize(path), State: state.Clone()})
}

// Visit appends an entry without state, as when an address is typed in.
func (h *History) Visit(path string) PopState {
	h.push(Entry{Path: normalize(path)})
	return PopState{Path: normalize(path)}
}

func (h *History) push(e Entry) {
	h.entries = append(h.entries[:h.index+1], e)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)
	}
	h.index = len(h.entries) - 1
}

// Back moves to the previous entry.
func (h *History) Back() (PopState, bool) {
	if h.index == 0 {
		return PopState{}, false
	}
	h.index--
	return h.pop(), true
}

// Forward moves to the next entry.
func (h *History) Forward() (PopState, bool) {
	if h.index >= len(h.entries)-1 {
		return PopState{}, false
	}
	h.index++
	return h.pop(), true
}

func (h *History) pop() PopState {
	e := h.entries[h.index]
	return PopState{Path: e.Path, State: e.State.Clone()}
}

// Location returns the current path.
func (h *History) Location() string {
	return h.entries[h.index].Path
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// CanGoBack reports whether Back would move.
func (h *History) CanGoBack() bool {
	return h.index > 0
}

// CanGoForward reports whether Forward would move.
func (h *History) CanGoForward() bool {
	return h.index < len(h.entries)-1
}

// PathFor returns the address of a window.
func PathFor(id string) string {
	if id == "" {
		return Root
	}
	return Root + id
}

// WindowFromPath returns the window named by path, or "" when the path is the
// root or names no window known to known.
func WindowFromPath(path string, known func(id string) bool) string {
	id := strings.Trim(normalize(path), "/")
	if id == "" || strings.Contains(id, "/") {
		return ""
	}
	if known != nil && !known(id) {
		return ""
	}
	return id
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
