package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/adrg/xdg"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/deskfolio/internal/app"
	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/input"
	"github.com/Gaurav-Gosain/deskfolio/internal/server"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

func overrides() config.Overrides {
	return config.Overrides{
		ASCIIOnly:    asciiOnly,
		NoAnimations: noAnimations,
		ThemeName:    themeName,
		Profile:      profileName,
		Ephemeral:    ephemeral,
	}
}

// localOverrides adds what the host terminal forces, such as ASCII on the
// Linux console, so that it survives config reloads.
func localOverrides(logger *log.Logger) config.Overrides {
	o := overrides()
	caps := app.DetectHostCapabilities()
	logger.Debug("terminal", "name", caps.TerminalName, "truecolor", caps.TrueColor, "unicode", caps.Unicode)
	if !caps.Unicode {
		o.ASCIIOnly = true
	}
	return o
}

// newLogger returns the process logger. The desktop owns the terminal, so
// debug output goes to a file under $XDG_STATE_HOME and is otherwise dropped.
func newLogger() (*log.Logger, func(), error) {
	if !debugMode {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := xdg.StateFile(filepath.Join("deskfolio", "debug.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "deskfolio",
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	fmt.Printf("Debug log: %s\n", path)
	return logger, func() { _ = f.Close() }, nil
}

// loadConfig loads the user config with the command-line overrides applied.
func loadConfig(o config.Overrides) *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config, using defaults: %v\n", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(o, userConfig)
	if !theme.Initialize(userConfig.Appearance.Theme) {
		fmt.Fprintf(os.Stderr, "Warning: Unknown theme %q, using the default\n", userConfig.Appearance.Theme)
	}
	return userConfig
}

func openStore(cfg *config.UserConfig) (storage.Store, error) {
	if cfg.Storage.Ephemeral {
		return storage.NewMemoryStore(), nil
	}
	store, err := storage.OpenProfile(cfg.Storage.Profile)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// runLocal runs the desktop in this terminal. A non-empty script is played on
// it once the program starts.
func runLocal(ctx context.Context, script []tape.Command) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	ov := localOverrides(logger)
	userConfig := loadConfig(ov)
	store, err := openStore(userConfig)
	if err != nil {
		return fmt.Errorf("could not open saved layout: %w", err)
	}

	app.SetInputHandler(input.HandleInput)

	// The size is only a first guess; tea.WindowSizeMsg corrects it.
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 0, 0
	}

	desk := app.New(app.Options{
		Config:      userConfig,
		Store:       store,
		Site:        content.DefaultSite(),
		InitialPath: startPath,
		Width:       width,
		Height:      height,
		Opener:      app.SystemOpener{},
		Logger:      logger,
		Overrides:   ov,
	})
	defer desk.Close()

	p := tea.NewProgram(
		desk,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(input.FilterMouseMotion),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if configPath, err := config.GetConfigPath(); err == nil {
		logger.Debug("watching config", "path", configPath)
		err := config.Watch(ctx, configPath,
			func(cfg *config.UserConfig) { p.Send(app.ConfigReloadedMsg{Config: cfg}) },
			func(err error) { p.Send(app.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		}
	}

	if len(script) > 0 {
		go p.Send(app.PlayTapeMsg{Commands: script})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(ctx context.Context, sshHost, sshPort, sshKeyPath string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "ssh",
		ReportTimestamp: true,
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	config.ApplyOverrides(overrides(), nil)
	if themeName != "" && !theme.Initialize(themeName) {
		logger.Warn("unknown theme, using the default", "theme", themeName)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg := &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Session: server.SessionOptions{
			Site:      content.DefaultSite(),
			Overrides: overrides(),
			Logger:    logger,
		},
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
