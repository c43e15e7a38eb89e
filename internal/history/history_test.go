package history

import (
	"slices"
	"testing"
)

func TestPushBackForward(t *testing.T) {
	h := New("/", 0)
	h.Push(Snapshot{OpenWindows: []string{"about"}}, "/about")
	h.Push(Snapshot{OpenWindows: []string{"about", "portfolio"}}, "/portfolio")

	if h.Location() != "/portfolio" {
		t.Errorf("Location = %q", h.Location())
	}

	ps, ok := h.Back()
	if !ok || ps.Path != "/about" || !slices.Equal(ps.State.OpenWindows, []string{"about"}) {
		t.Errorf("Back = %+v, %v", ps, ok)
	}

	ps, ok = h.Back()
	if !ok || ps.Path != "/" || ps.State != nil {
		t.Errorf("Back to initial entry = %+v, %v", ps, ok)
	}
	if _, ok := h.Back(); ok {
		t.Error("Back moved past the first entry")
	}

	h.Forward()
	ps, ok = h.Forward()
	if !ok || ps.Path != "/portfolio" || len(ps.State.OpenWindows) != 2 {
		t.Errorf("Forward = %+v, %v", ps, ok)
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward moved past the last entry")
	}
}

func TestPushTruncatesForward(t *testing.T) {
	h := New("/", 0)
	h.Push(Snapshot{OpenWindows: []string{"about"}}, "/about")
	h.Push(Snapshot{OpenWindows: []string{"about", "resume"}}, "/resume")
	h.Back()
	h.Push(Snapshot{OpenWindows: []string{"about", "portfolio"}}, "/portfolio")

	if h.CanGoForward() {
		t.Error("forward entries survived a push")
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestPushCapsLength(t *testing.T) {
	h := New("/", 3)
	for _, id := range []string{"a", "b", "c", "d"} {
		h.Push(Snapshot{OpenWindows: []string{id}}, PathFor(id))
	}

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	h.Back()
	h.Back()
	if h.CanGoBack() || h.Location() != "/b" {
		t.Errorf("oldest entry = %q", h.Location())
	}
}

func TestSnapshotIsCopied(t *testing.T) {
	h := New("/", 0)
	ids := []string{"about"}
	h.Push(Snapshot{OpenWindows: ids}, "/about")
	ids[0] = "changed"

	h.Push(Snapshot{}, "/")
	ps, _ := h.Back()
	if ps.State.OpenWindows[0] != "about" {
		t.Error("history shares the caller's slice")
	}
	ps.State.OpenWindows[0] = "mutated"
	h.Forward()
	ps, _ = h.Back()
	if ps.State.OpenWindows[0] != "about" {
		t.Error("PopState shares the stored slice")
	}
}

func TestVisitHasNoState(t *testing.T) {
	h := New("/", 0)
	h.Push(Snapshot{OpenWindows: []string{"about"}}, "/about")
	ps := h.Visit("resume")

	if ps.Path != "/resume" || ps.State != nil {
		t.Errorf("Visit = %+v", ps)
	}
	h.Back()
	ps, _ = h.Forward()
	if ps.State != nil {
		t.Error("visited entry gained a state")
	}
}

func TestWindowFromPath(t *testing.T) {
	known := func(id string) bool { return id == "about" || id == "personal-website" }
	tests := []struct {
		path string
		want string
	}{
		{"/", ""},
		{"", ""},
		{"/about", "about"},
		{"about", "about"},
		{"/about/", "about"},
		{"/about?ref=home", "about"},
		{"/personal-website#top", "personal-website"},
		{"/blog", ""},
		{"/about/team", ""},
	}

	for _, tt := range tests {
		if got := WindowFromPath(tt.path, known); got != tt.want {
			t.Errorf("WindowFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPathFor(t *testing.T) {
	if got := PathFor("about"); got != "/about" {
		t.Errorf("PathFor(about) = %q", got)
	}
	if got := PathFor(""); got != Root {
		t.Errorf("PathFor(\"\") = %q", got)
	}
}
