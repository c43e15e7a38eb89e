// Package server serves deskfolio to remote clients, over SSH with wish and
// to browsers with sip. Every connection gets its own desktop.
package server

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/history"
	"github.com/Gaurav-Gosain/deskfolio/internal/input"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

// SessionOptions are shared by every remote session of one server.
type SessionOptions struct {
	Site      content.Site
	Overrides config.Overrides
	Logger    *log.Logger

	// LoadConfig reads the configuration for a new session. Defaults to
	// config.LoadUserConfig.
	LoadConfig func() (*config.UserConfig, error)
}

// NewSession builds the desktop for one remote connection. Remote layouts are
// kept in memory and links are shown rather than opened, since the browser
// that would open them belongs to the server.
func NewSession(opts SessionOptions, command []string, width, height int) (*app.Desktop, []tea.ProgramOption) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	load := opts.LoadConfig
	if load == nil {
		load = config.LoadUserConfig
	}

	id := uuid.New().String()
	sessLog := logger.With("session", truncateID(id))

	userConfig, err := load()
	if err != nil || userConfig == nil {
		sessLog.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(opts.Overrides, userConfig)
	if !theme.Initialize(userConfig.Appearance.Theme) {
		sessLog.Warn("unknown theme, using the default", "theme", userConfig.Appearance.Theme)
	}

	app.SetInputHandler(input.HandleInput)

	m := app.New(app.Options{
		Config:      userConfig,
		Store:       storage.NewMemoryStore(),
		Site:        opts.Site,
		InitialPath: initialPath(command),
		Width:       width,
		Height:      height,
		Logger:      sessLog,
		Overrides:   opts.Overrides,
		SessionID:   id,
	})
	sessLog.Info("session started", "path", m.History.Location(), "size", [2]int{width, height})

	return m, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(input.FilterMouseMotion),
	}
}

// initialPath turns the remote command line into a start location, so that
// `ssh -t host about` opens the About window.
func initialPath(command []string) string {
	if len(command) == 0 {
		return history.Root
	}
	p := strings.TrimSpace(command[0])
	if p == "" {
		return history.Root
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
