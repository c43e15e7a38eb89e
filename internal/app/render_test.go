package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
)

func plain(m *Desktop) string {
	return ansi.Strip(m.Render())
}

func TestRenderMenuBar(t *testing.T) {
	m := newTestDesktop(t, Options{})
	m.Now = time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)

	out := plain(m)
	first := strings.SplitN(out, "\n", 2)[0]
	for _, want := range []string{"Finder", "3:04 PM", "/"} {
		if !strings.Contains(first, want) {
			t.Errorf("menu bar %q missing %q", first, want)
		}
	}

	m.Config.Appearance.HideClock = true
	if first := strings.SplitN(plain(m), "\n", 2)[0]; strings.Contains(first, "PM") {
		t.Errorf("hidden clock still shown: %q", first)
	}
}

func TestRenderFillsScreen(t *testing.T) {
	m := newTestDesktop(t, Options{})
	lines := strings.Split(plain(m), "\n")
	if len(lines) != m.Height {
		t.Errorf("got %d lines, want %d", len(lines), m.Height)
	}
}

func TestRenderEmptyBeforeSize(t *testing.T) {
	m := New(Options{})
	defer m.Close()
	if got := m.Render(); got != "" {
		t.Errorf("Render before WindowSizeMsg = %q", got)
	}
}

func TestRenderWindow(t *testing.T) {
	m := newTestDesktop(t, Options{})
	feed(m, m.OpenWindow(content.AboutID))

	out := plain(m)
	for _, want := range []string{"About Me", "[■]", "◢"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	// the focused window names itself in the menu bar
	if first := strings.SplitN(out, "\n", 2)[0]; !strings.Contains(first, "About") {
		t.Errorf("menu bar %q does not name the focused window", first)
	}
}

func TestRenderASCII(t *testing.T) {
	ascii := config.UseASCIIOnly
	config.UseASCIIOnly = true
	t.Cleanup(func() { config.UseASCIIOnly = ascii })

	m := newTestDesktop(t, Options{})
	feed(m, m.OpenWindow(content.AboutID))

	out := plain(m)
	if !strings.Contains(out, "[x]") {
		t.Error("ascii close box missing")
	}
	for _, r := range []string{"┌", "│", "◢", "■"} {
		if strings.Contains(out, r) {
			t.Errorf("ascii render contains %q", r)
		}
	}
}

func TestRenderHelp(t *testing.T) {
	m := newTestDesktop(t, Options{})
	m.ToggleHelp()

	out := plain(m)
	if !strings.Contains(out, "Keyboard Shortcuts") || !strings.Contains(out, "NAVIGATION") {
		t.Fatal("help overlay not rendered")
	}
	if strings.Contains(out, "FOCUSED WINDOW") {
		t.Error("window bindings shown with no window open")
	}

	feed(m, m.OpenWindow(content.AboutID))
	if !strings.Contains(plain(m), "FOCUSED WINDOW") {
		t.Error("window bindings hidden with a window open")
	}
}

func TestScrollHelpClamps(t *testing.T) {
	m := newTestDesktop(t, Options{})
	m.Height = 12
	m.ShowHelp = true

	m.ScrollHelp(-5)
	if m.HelpScrollOffset != 0 {
		t.Errorf("offset = %d after scrolling up", m.HelpScrollOffset)
	}
	m.ScrollHelp(1000)
	want := len(m.helpLines()) - helpPageSize(m.Height)
	if m.HelpScrollOffset != want {
		t.Errorf("offset = %d, want %d", m.HelpScrollOffset, want)
	}
}

func TestRenderLogsAndNotifications(t *testing.T) {
	m := newTestDesktop(t, Options{})
	m.ShowNotification("Saved layout", "success", time.Hour)
	m.ToggleLogs()

	out := plain(m)
	for _, want := range []string{"System Logs", "Saved layout", "Log viewer opened"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestClipLayer(t *testing.T) {
	block := "abcd\nefgh\nijkl"

	tests := []struct {
		name   string
		x, y   int
		want   string
		wx, wy int
	}{
		{name: "inside", x: 1, y: 1, want: block, wx: 1, wy: 1},
		{name: "off left", x: -2, y: 0, want: "cd\ngh\nkl", wx: 0, wy: 0},
		{name: "off right", x: 8, y: 0, want: "ab\nef\nij", wx: 8, wy: 0},
		{name: "off top", x: 0, y: -1, want: "efgh\nijkl", wx: 0, wy: 0},
		{name: "off bottom", x: 0, y: 4, want: "abcd\nefgh", wx: 0, wy: 4},
		{name: "gone", x: 20, y: 0, want: "", wx: 20, wy: 0},
		{name: "above", x: 0, y: -3, want: "", wx: 0, wy: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, x, y := clipLayer(block, tt.x, tt.y, 10, 6)
			if got != tt.want || x != tt.wx || y != tt.wy {
				t.Errorf("clipLayer = %q (%d,%d), want %q (%d,%d)", got, x, y, tt.want, tt.wx, tt.wy)
			}
		})
	}
}

func TestPadAndCenter(t *testing.T) {
	if got := padRight("abc", 5); got != "abc  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abc" {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abc", 0); got != "" {
		t.Errorf("padRight = %q", got)
	}
	if got := center("ab", 6, "="); got != "==ab==" {
		t.Errorf("center = %q", got)
	}
}
