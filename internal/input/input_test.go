package input

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
)

func newDesktop(t *testing.T) *app.Desktop {
	t.Helper()
	d := app.New(app.Options{Store: storage.NewMemoryStore()})
	t.Cleanup(d.Close)
	d.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return d
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pressKey(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func openIDs(d *app.Desktop) string {
	return strings.Join(d.Manager().OpenIDs(), ",")
}

// ============================================================================
// Keyboard
// ============================================================================

func TestOpenWindowKeys(t *testing.T) {
	d := newDesktop(t)

	tests := []struct {
		key  rune
		want string
	}{
		{'1', "portfolio"},
		{'2', "portfolio,about"},
		{'3', "portfolio,about,resume"},
		{'2', "portfolio,resume"}, // opening an open window closes it
	}
	for _, tt := range tests {
		HandleKey(press(tt.key), d)
		if got := openIDs(d); got != tt.want {
			t.Errorf("after %q open = %s, want %s", tt.key, got, tt.want)
		}
	}
}

func TestCloseAndCycle(t *testing.T) {
	d := newDesktop(t)
	HandleKey(press('1'), d)
	HandleKey(press('2'), d)

	HandleKey(pressKey(tea.KeyTab, 0), d)
	if top := d.Manager().Top(); top != content.PortfolioID {
		t.Errorf("top after tab = %q", top)
	}

	HandleKey(press('x'), d)
	if got := openIDs(d); got != "about" {
		t.Errorf("open after close = %s", got)
	}
}

func TestHistoryKeys(t *testing.T) {
	d := newDesktop(t)
	HandleKey(press('1'), d)
	HandleKey(press('2'), d)

	HandleKey(pressKey(tea.KeyLeft, tea.ModAlt), d)
	if got := openIDs(d); got != "portfolio" {
		t.Errorf("after back open = %s", got)
	}

	HandleKey(press('f'), d)
	if got := openIDs(d); got != "portfolio,about" {
		t.Errorf("after forward open = %s", got)
	}

	// nothing further forward
	if _, cmd := HandleKey(press('f'), d); cmd != nil {
		t.Error("forward at the end returned a command")
	}
}

func TestHelpOverlayCapturesKeys(t *testing.T) {
	d := newDesktop(t)
	HandleKey(press('?'), d)
	if !d.ShowHelp {
		t.Fatal("? did not open help")
	}

	HandleKey(press('1'), d)
	if d.Manager().IsOpen(content.PortfolioID) {
		t.Error("key reached the desktop through the help overlay")
	}

	HandleKey(pressKey(tea.KeyEscape, 0), d)
	if d.ShowHelp {
		t.Error("esc did not close help")
	}
}

func TestLogViewerKeys(t *testing.T) {
	d := newDesktop(t)
	HandleKey(pressKey('l', tea.ModCtrl), d)
	if !d.ShowLogs {
		t.Fatal("ctrl+l did not open the log viewer")
	}

	_, cmd := HandleKey(press('q'), d)
	if d.ShowLogs {
		t.Error("q did not close the log viewer")
	}
	if cmd != nil {
		t.Error("q in the log viewer quit the program")
	}
}

func TestQuit(t *testing.T) {
	d := newDesktop(t)
	_, cmd := HandleKey(press('q'), d)
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestUnboundKey(t *testing.T) {
	d := newDesktop(t)
	if _, cmd := HandleKey(press('z'), d); cmd != nil {
		t.Error("unbound key returned a command")
	}
}

func TestEscStopsTape(t *testing.T) {
	d := newDesktop(t)
	cmds, err := tape.ValidateScript("Open about\n")
	if err != nil {
		t.Fatal(err)
	}
	d.Update(app.PlayTapeMsg{Commands: cmds})

	HandleKey(pressKey(tea.KeyEscape, 0), d)
	if d.TapePlaying() {
		t.Error("esc did not stop playback")
	}
}

func TestDispatcherCoversActions(t *testing.T) {
	d := GetDispatcher()
	for _, action := range []string{
		"open_portfolio", "open_about", "open_resume", "open_system",
		"close_window", "next_window", "history_back", "history_forward",
		"cancel_gesture", "toggle_help", "toggle_logs", "quit",
	} {
		if !d.HasAction(action) {
			t.Errorf("no handler for %s", action)
		}
	}
}

// ============================================================================
// Mouse
// ============================================================================

func TestMouseDragWindow(t *testing.T) {
	d := newDesktop(t)
	d.OpenWindow(content.AboutID)

	w, _ := d.Manager().Window(content.AboutID)
	start := w.Position
	bar := d.Manager().Options().MenuBarHeight
	grab := tea.Mouse{X: start.X + 10, Y: start.Y + bar, Button: tea.MouseLeft}

	HandleInput(tea.MouseClickMsg(grab), d)
	if !d.GestureActive() {
		t.Fatal("title press did not start a drag")
	}

	moved := tea.Mouse{X: grab.X + 5, Y: grab.Y + 3, Button: tea.MouseLeft}
	HandleInput(tea.MouseMotionMsg(moved), d)
	HandleInput(tea.MouseReleaseMsg(moved), d)

	if d.GestureActive() {
		t.Error("gesture still active after release")
	}
	want := desktop.Point{X: start.X + 5, Y: start.Y + 3}
	if w.Position != want {
		t.Errorf("position = %+v, want %+v", w.Position, want)
	}
	if p, ok := d.Manager().Placement(content.AboutID); !ok || p.X != want.X || p.Y != want.Y {
		t.Errorf("placement = %+v, %v", p, ok)
	}
}

func TestEscCancelsDrag(t *testing.T) {
	d := newDesktop(t)
	d.OpenWindow(content.AboutID)
	w, _ := d.Manager().Window(content.AboutID)
	start := w.Position
	bar := d.Manager().Options().MenuBarHeight

	grab := tea.Mouse{X: start.X + 10, Y: start.Y + bar, Button: tea.MouseLeft}
	HandleInput(tea.MouseClickMsg(grab), d)
	HandleInput(tea.MouseMotionMsg(tea.Mouse{X: grab.X + 8, Y: grab.Y + 4}), d)

	HandleKey(pressKey(tea.KeyEscape, 0), d)
	if d.GestureActive() {
		t.Fatal("esc did not cancel the drag")
	}
	if w.Position != start {
		t.Errorf("position = %+v, want %+v", w.Position, start)
	}
}

func TestCloseBoxClosesOnRelease(t *testing.T) {
	d := newDesktop(t)
	d.OpenWindow(content.AboutID)
	w, _ := d.Manager().Window(content.AboutID)
	bar := d.Manager().Options().MenuBarHeight
	box := tea.Mouse{X: w.Position.X + 2, Y: w.Position.Y + bar, Button: tea.MouseLeft}

	HandleInput(tea.MouseClickMsg(box), d)
	if !d.Manager().IsOpen(content.AboutID) {
		t.Fatal("window closed on press")
	}
	HandleInput(tea.MouseReleaseMsg(box), d)
	if d.Manager().IsOpen(content.AboutID) {
		t.Error("release on the close box did not close the window")
	}

	d.OpenWindow(content.AboutID)
	w, _ = d.Manager().Window(content.AboutID)
	box = tea.Mouse{X: w.Position.X + 2, Y: w.Position.Y + bar, Button: tea.MouseLeft}
	HandleInput(tea.MouseClickMsg(box), d)
	off := tea.Mouse{X: box.X + 20, Y: box.Y + 5, Button: tea.MouseLeft}
	HandleInput(tea.MouseMotionMsg(off), d)
	HandleInput(tea.MouseReleaseMsg(off), d)
	if !d.Manager().IsOpen(content.AboutID) {
		t.Error("sliding off the close box still closed the window")
	}
}

func TestRightClickOnlyFocuses(t *testing.T) {
	d := newDesktop(t)
	d.OpenWindow(content.AboutID)
	w, _ := d.Manager().Window(content.AboutID)
	bar := d.Manager().Options().MenuBarHeight

	// right click on the close box
	HandleInput(tea.MouseClickMsg(tea.Mouse{X: w.Position.X + 2, Y: w.Position.Y + bar, Button: tea.MouseRight}), d)
	if !d.Manager().IsOpen(content.AboutID) {
		t.Error("right click closed the window")
	}
	if d.GestureActive() {
		t.Error("right click started a gesture")
	}
}

func TestClicksIgnoredUnderOverlay(t *testing.T) {
	d := newDesktop(t)
	d.OpenWindow(content.AboutID)
	w, _ := d.Manager().Window(content.AboutID)
	bar := d.Manager().Options().MenuBarHeight
	d.ShowHelp = true

	HandleInput(tea.MouseClickMsg(tea.Mouse{X: w.Position.X + 2, Y: w.Position.Y + bar, Button: tea.MouseLeft}), d)
	if !d.Manager().IsOpen(content.AboutID) {
		t.Error("click through the help overlay closed a window")
	}
}

func TestFilterMouseMotion(t *testing.T) {
	d := newDesktop(t)
	motion := tea.MouseMotionMsg(tea.Mouse{X: 3, Y: 3})

	if got := FilterMouseMotion(d, motion); got != nil {
		t.Errorf("idle motion passed the filter: %v", got)
	}
	key := press('a')
	if got := FilterMouseMotion(d, key); got == nil {
		t.Error("key press was filtered")
	}

	d.OpenWindow(content.AboutID)
	w, _ := d.Manager().Window(content.AboutID)
	bar := d.Manager().Options().MenuBarHeight
	HandleInput(tea.MouseClickMsg(tea.Mouse{X: w.Position.X + 10, Y: w.Position.Y + bar, Button: tea.MouseLeft}), d)
	if got := FilterMouseMotion(d, motion); got == nil {
		t.Error("motion during a drag was filtered")
	}
}

func TestWheelScrollsLogs(t *testing.T) {
	d := newDesktop(t)
	for range 200 {
		d.LogInfo("line")
	}
	d.ToggleLogs()
	bottom := d.LogScrollOffset

	HandleInput(tea.MouseWheelMsg(tea.Mouse{Button: tea.MouseWheelUp}), d)
	if d.LogScrollOffset != bottom-wheelStep {
		t.Errorf("offset = %d, want %d", d.LogScrollOffset, bottom-wheelStep)
	}
}
