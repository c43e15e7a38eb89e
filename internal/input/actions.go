package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Windows
	for action, id := range config.OpenActions {
		d.Register(action, makeOpenWindowHandler(id))
	}
	d.Register("close_window", handleCloseWindow)
	d.Register("next_window", handleNextWindow)

	// Navigation
	d.Register("history_back", handleHistoryBack)
	d.Register("history_forward", handleHistoryForward)
	d.Register("cancel_gesture", handleCancelGesture)

	// System
	d.Register("toggle_help", handleToggleHelp)
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, desk *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, desk)
	}
	return desk, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Window Action Handlers
// ============================================================================

func makeOpenWindowHandler(id string) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		return d, d.OpenWindow(id)
	}
}

func handleCloseWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	return d, d.CloseFocused()
}

func handleNextWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.FocusNext()
	return d, nil
}

// ============================================================================
// Navigation Action Handlers
// ============================================================================

func handleHistoryBack(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.History.CanGoBack() {
		return d, nil
	}
	return d, d.Back()
}

func handleHistoryForward(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.History.CanGoForward() {
		return d, nil
	}
	return d, d.Forward()
}

// handleCancelGesture cancels a drag or resize. With none in progress it
// stops tape playback.
func handleCancelGesture(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.GestureActive() && d.TapePlaying() {
		d.StopTape()
		return d, nil
	}
	return d, d.Dispatch(desktop.Cancel{})
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleHelp(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ToggleHelp()
	return d, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ToggleLogs()
	return d, nil
}

func handleQuit(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.GestureActive() {
		return d, d.Dispatch(desktop.Cancel{})
	}
	d.Close()
	return d, tea.Quit
}
