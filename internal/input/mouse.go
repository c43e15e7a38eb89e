package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

// wheelStep is how many lines one wheel notch scrolls an overlay.
const wheelStep = 3

// FilterMouseMotion drops motion events while no drag or resize is in
// progress. It is meant for tea.WithFilter.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if d.GestureActive() {
		return msg
	}
	return nil
}

func pointer(m tea.Mouse) desktop.Point {
	return desktop.Point{X: m.X, Y: m.Y}
}

func button(b tea.MouseButton) desktop.Button {
	switch b {
	case tea.MouseLeft:
		return desktop.ButtonLeft
	case tea.MouseMiddle:
		return desktop.ButtonMiddle
	case tea.MouseRight:
		return desktop.ButtonRight
	}
	return desktop.ButtonNone
}

// handleMouseClick hit-tests a press. Overlays swallow clicks.
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.ShowHelp || d.ShowLogs {
		return d, nil
	}
	mouse := msg.Mouse()
	return d, d.Dispatch(desktop.Press{Pointer: pointer(mouse), Button: button(mouse.Button)})
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.GestureActive() {
		return d, nil
	}
	return d, d.Dispatch(desktop.Move{Pointer: pointer(msg.Mouse())})
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.GestureActive() {
		return d, nil
	}
	return d, d.Dispatch(desktop.Commit{Pointer: pointer(msg.Mouse())})
}

func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	delta := 0
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		delta = -wheelStep
	case tea.MouseWheelDown:
		delta = wheelStep
	}

	switch {
	case d.ShowHelp:
		d.ScrollHelp(delta)
	case d.ShowLogs:
		d.ScrollLogs(delta)
	}
	return d, nil
}
