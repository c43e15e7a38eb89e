// Package input translates bubbletea key and mouse messages into desktop
// actions.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
)

// HandleInput is registered with app.SetInputHandler.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKey(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	}
	return d, nil
}

// HandleKey handles a key press. Open overlays take the keyboard first;
// everything else is looked up in the keybinding registry.
func HandleKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()

	if d.ShowHelp {
		return handleHelpKey(key, d)
	}
	if d.ShowLogs {
		return handleLogsKey(key, d)
	}

	action := d.KeybindRegistry.GetAction(key)
	if action == "" {
		return d, nil
	}
	return GetDispatcher().Dispatch(action, msg, d)
}

func handleHelpKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		d.ShowHelp = false
		d.HelpScrollOffset = 0
	case "up", "k":
		d.ScrollHelp(-1)
	case "down", "j":
		d.ScrollHelp(1)
	case "pgup":
		d.ScrollHelp(-10)
	case "pgdown", "space":
		d.ScrollHelp(10)
	case "ctrl+c":
		d.Close()
		return d, tea.Quit
	}
	return d, nil
}

func handleLogsKey(key string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch key {
	case "esc", "q":
		d.ShowLogs = false
		d.LogScrollOffset = 0
	case "up", "k":
		d.ScrollLogs(-1)
	case "down", "j":
		d.ScrollLogs(1)
	case "g", "home":
		d.ScrollLogs(-len(d.LogMessages))
	case "G", "end":
		d.ScrollLogs(len(d.LogMessages))
	case "ctrl+c":
		d.Close()
		return d, tea.Quit
	}
	return d, nil
}
