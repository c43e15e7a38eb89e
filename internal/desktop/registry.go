package desktop

import "github.com/Gaurav-Gosain/deskfolio/internal/history"

// Entry is what the manager knows about a window kind: its id and title.
// Content stays behind the registry.
type Entry struct {
	ID    string
	Title string
}

// Registry resolves window ids. Unknown ids are never opened or restored.
type Registry interface {
	Lookup(id string) (Entry, bool)
}

// Navigator receives every history push made by the manager.
type Navigator interface {
	Push(state history.Snapshot, path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(state history.Snapshot, path string)

// Push implements Navigator.
func (f NavigatorFunc) Push(state history.Snapshot, path string) {
	f(state, path)
}

// StaticRegistry is a Registry over a fixed list of entries.
type StaticRegistry []Entry

// Lookup implements Registry.
func (r StaticRegistry) Lookup(id string) (Entry, bool) {
	for _, e := range r {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
