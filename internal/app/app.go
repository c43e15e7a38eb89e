// Package app provides the bubbletea model of the deskfolio desktop.
package app

import (
	"context"
	"io"
	"time"

	"charm.land/log/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/history"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
	"github.com/Gaurav-Gosain/deskfolio/internal/sysinfo"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
)

// Collector samples the host for the system pane.
type Collector func(ctx context.Context) (sysinfo.Info, error)

// Options configures a Desktop.
type Options struct {
	Config *config.UserConfig
	Store  storage.Store
	Site   content.Site

	// InitialPath is the location the desktop starts at, e.g. "/about".
	InitialPath string

	// Width and Height are the screen size when it is known before the
	// first tea.WindowSizeMsg, as it is for SSH sessions.
	Width, Height int

	// Opener opens external links. Nil shows them in a notification.
	Opener LinkOpener

	// Collector defaults to sysinfo.Collect.
	Collector Collector

	Logger *log.Logger

	// Overrides are re-applied whenever the config is reloaded.
	Overrides config.Overrides

	// SessionID identifies remote sessions in logs; empty for local runs.
	SessionID string
}

// Desktop is the application model. It owns the window manager, navigation
// history, overlays and the periodic work that feeds them.
type Desktop struct {
	Width  int
	Height int

	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry
	Panes           *content.Registry
	History         *history.History

	ShowHelp         bool
	HelpScrollOffset int
	ShowLogs         bool
	LogMessages      []LogMessage
	LogScrollOffset  int
	Notifications    []Notification

	// Now is the time shown by the menu bar clock.
	Now time.Time

	SessionID string
	IsRemote  bool

	desk      *desktop.Desktop
	overrides config.Overrides
	opener    LinkOpener
	collector Collector
	logger    *log.Logger

	system     content.SystemStatus
	cpu        sysinfo.History
	collecting bool

	pending []desktop.Effect
	tape    *tape.Player
	ctx     context.Context
	cancel  context.CancelFunc
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

func createID() string {
	return uuid.New().String()
}

// New builds a desktop and restores its layout from opts.Store at
// opts.InitialPath.
func New(opts Options) *Desktop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}
	collector := opts.Collector
	if collector == nil {
		collector = sysinfo.Collect
	}
	site := opts.Site
	if site.Owner == "" {
		site = content.DefaultSite()
	}

	m := &Desktop{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
		SessionID:       opts.SessionID,
		overrides:       opts.Overrides,
		IsRemote:        opts.Opener == nil,
		opener:          opts.Opener,
		collector:       collector,
		logger:          logger,
		Now:             time.Now(),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	path := opts.InitialPath
	if path == "" {
		path = history.Root
	}
	m.History = history.New(path, cfg.History.Limit)
	m.Panes = site.Registry(m.systemStatus)
	m.desk = desktop.New(m.Panes, store, m.History, site.Icons(), cfg.Desktop.Options(), logger)
	if opts.Width > 0 && opts.Height > 0 {
		m.Width, m.Height = opts.Width, opts.Height
		m.desk.SetViewport(desktop.Size{Width: opts.Width, Height: opts.Height})
	}
	m.pending = m.desk.Restore(path)

	m.LogInfo("Desktop started at %s with %d open window(s)", path, len(m.desk.Manager().OpenIDs()))
	return m
}

// Desktop returns the window manager state machine.
func (m *Desktop) Desktop() *desktop.Desktop {
	return m.desk
}

// Manager is a shortcut for Desktop().Manager().
func (m *Desktop) Manager() *desktop.Manager {
	return m.desk.Manager()
}

// GestureActive reports whether a drag or resize is in progress.
func (m *Desktop) GestureActive() bool {
	_, ok := m.desk.Gesture()
	return ok
}

// Close stops background work. The model must not be used afterwards.
func (m *Desktop) Close() {
	m.cancel()
}

func (m *Desktop) systemStatus() content.SystemStatus {
	return m.system
}
