// Package content holds the window panes of the portfolio and the registry
// that maps window ids to them.
package content

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

// Pane is the content of one window kind.
type Pane interface {
	ID() string
	Title() string
	// Render returns at most height lines, none wider than width cells.
	Render(width, height int) string
}

// Activation is the outcome of clicking a row of a pane. Both fields empty
// means the row is inert.
type Activation struct {
	Window string
	Link   string
}

// Activator is implemented by panes with clickable rows.
type Activator interface {
	Activate(row int) Activation
}

// Registry maps window ids to panes, keeping registration order.
type Registry struct {
	panes []Pane
}

// NewRegistry returns a registry of panes. Later panes replace earlier ones
// with the same id.
func NewRegistry(panes ...Pane) *Registry {
	r := &Registry{}
	for _, p := range panes {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a pane.
func (r *Registry) Register(p Pane) {
	for i, existing := range r.panes {
		if existing.ID() == p.ID() {
			r.panes[i] = p
			return
		}
	}
	r.panes = append(r.panes, p)
}

// Lookup implements desktop.Registry.
func (r *Registry) Lookup(id string) (desktop.Entry, bool) {
	p, ok := r.Pane(id)
	if !ok {
		return desktop.Entry{}, false
	}
	return desktop.Entry{ID: p.ID(), Title: p.Title()}, true
}

// Pane returns the pane registered under id.
func (r *Registry) Pane(id string) (Pane, bool) {
	for _, p := range r.panes {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// IDs returns the registered ids in order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.panes))
	for i, p := range r.panes {
		ids[i] = p.ID()
	}
	return ids
}

// Activate resolves a click on row of window id.
func (r *Registry) Activate(id string, row int) Activation {
	p, ok := r.Pane(id)
	if !ok {
		return Activation{}
	}
	a, ok := p.(Activator)
	if !ok {
		return Activation{}
	}
	return a.Activate(row)
}

// fit clips lines to the given box.
func fit(lines []string, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(out, "\n")
}

// wrap word-wraps paragraphs to width, separating them with a blank line.
func wrap(width int, paragraphs ...string) []string {
	var lines []string
	for i, p := range paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(ansi.Wrap(p, width, ""), "\n")...)
	}
	return lines
}

// rule returns a horizontal line of the given width.
func rule(width int) string {
	return strings.Repeat("─", max(0, width))
}
