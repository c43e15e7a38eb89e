package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// collectTimeout bounds one sysinfo sample.
const collectTimeout = 5 * time.Second

// Init starts the clock and schedules frames for the restored windows.
func (m *Desktop) Init() tea.Cmd {
	effects := m.pending
	m.pending = nil
	return tea.Batch(ClockCmd(), m.apply(effects), m.maybeCollect())
}

// Update handles all incoming messages and updates the application state.
func (m *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClockMsg:
		m.Now = time.Time(msg)
		m.CleanupNotifications()
		return m, ClockCmd()

	case FrameMsg:
		return m, m.Dispatch(desktop.Frame{ID: msg.ID, Generation: msg.Generation})

	case sysinfoTickMsg:
		if !m.Manager().IsOpen(content.SystemID) {
			m.collecting = false
			return m, nil
		}
		return m, m.collectCmd()

	case SysinfoMsg:
		if msg.Err != nil && !m.system.Ready {
			m.LogWarn("System information is incomplete: %v", msg.Err)
		}
		m.system.Info = msg.Info
		m.system.Ready = true
		m.cpu.Add(msg.Info.CPUPercent)
		m.system.CPUGraph = m.cpu.Graph()
		if !m.Manager().IsOpen(content.SystemID) {
			m.collecting = false
			return m, nil
		}
		return m, sysinfoTickCmd()

	case PlayTapeMsg:
		return m, m.PlayTape(msg.Commands)

	case tapeStepMsg:
		return m, m.stepTape(msg)

	case LinkOpenedMsg:
		if msg.Err != nil {
			m.ShowNotification(msg.Err.Error(), "error", config.NotificationDuration)
			return m, nil
		}
		m.LogInfo("Opened %s", msg.URL)
		return m, nil

	case ConfigReloadedMsg:
		m.ApplyConfig(msg.Config)
		m.ShowNotification("Configuration reloaded", "success", config.NotificationDuration)
		return m, nil

	case ConfigErrorMsg:
		m.ShowNotification("Config not reloaded: "+msg.Err.Error(), "warning", config.NotificationDuration)
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.desk.SetViewport(desktop.Size{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil
	}

	return m, nil
}

// Dispatch applies a window manager command and performs its effects.
func (m *Desktop) Dispatch(cmd desktop.Command) tea.Cmd {
	effects := m.desk.Dispatch(cmd)
	return tea.Batch(m.apply(effects), m.maybeCollect())
}

// apply turns window manager effects into commands.
func (m *Desktop) apply(effects []desktop.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case desktop.ScheduleFrameEffect:
			cmds = append(cmds, FrameCmd(e))
		case desktop.OpenLinkEffect:
			cmds = append(cmds, m.OpenLink(e.URL))
		case desktop.ActivateEffect:
			cmds = append(cmds, m.activate(e))
		}
	}
	return tea.Batch(cmds...)
}

// activate follows a click on a row of a pane.
func (m *Desktop) activate(e desktop.ActivateEffect) tea.Cmd {
	a := m.Panes.Activate(e.ID, e.Row)
	switch {
	case a.Window != "":
		if m.Manager().IsOpen(a.Window) {
			return m.Dispatch(desktop.Focus{ID: a.Window})
		}
		return m.Dispatch(desktop.Open{ID: a.Window})
	case a.Link != "":
		return m.OpenLink(a.Link)
	}
	return nil
}

// OpenLink opens url with the configured opener. Remote sessions have no
// way to reach the viewer's browser, so they are shown the URL instead.
func (m *Desktop) OpenLink(url string) tea.Cmd {
	if m.opener == nil {
		m.ShowNotification("Open in your browser: "+url, "info", 2*config.NotificationDuration)
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return LinkOpenedMsg{URL: url, Err: opener.OpenLink(url)}
	}
}

// OpenWindow opens window id, or closes it when it is already open.
func (m *Desktop) OpenWindow(id string) tea.Cmd {
	return m.Dispatch(desktop.Open{ID: id})
}

// CloseFocused closes the topmost window.
func (m *Desktop) CloseFocused() tea.Cmd {
	top := m.Manager().Top()
	if top == "" {
		return nil
	}
	return m.Dispatch(desktop.Close{ID: top})
}

// FocusNext cycles focus through the open windows.
func (m *Desktop) FocusNext() {
	m.Manager().FocusNext()
}

// Back moves one step back in navigation history.
func (m *Desktop) Back() tea.Cmd {
	ps, ok := m.History.Back()
	if !ok {
		return nil
	}
	return tea.Batch(m.apply(m.desk.Navigate(ps)), m.maybeCollect())
}

// Forward moves one step forward in navigation history.
func (m *Desktop) Forward() tea.Cmd {
	ps, ok := m.History.Forward()
	if !ok {
		return nil
	}
	return tea.Batch(m.apply(m.desk.Navigate(ps)), m.maybeCollect())
}

// ToggleHelp shows or hides the help overlay.
func (m *Desktop) ToggleHelp() {
	m.ShowHelp = !m.ShowHelp
	m.HelpScrollOffset = 0
}

// ApplyConfig switches to a reloaded configuration. Theme, appearance and
// keybindings apply immediately; desktop geometry applies to new sessions.
func (m *Desktop) ApplyConfig(cfg *config.UserConfig) {
	if cfg == nil {
		return
	}
	config.ApplyOverrides(m.overrides, cfg)
	m.Config = cfg
	m.KeybindRegistry = config.NewKeybindRegistry(cfg)
	if !theme.Initialize(cfg.Appearance.Theme) {
		m.LogWarn("Unknown theme %q, using the default", cfg.Appearance.Theme)
	}
}

// maybeCollect starts sampling the host when the system window is open.
func (m *Desktop) maybeCollect() tea.Cmd {
	if m.collecting || !m.Manager().IsOpen(content.SystemID) {
		return nil
	}
	m.collecting = true
	return m.collectCmd()
}

func (m *Desktop) collectCmd() tea.Cmd {
	parent, collector := m.ctx, m.collector
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, collectTimeout)
		defer cancel()
		info, err := collector(ctx)
		return SysinfoMsg{Info: info, Err: err}
	}
}
