package server

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/colorprofile"
)

// WebServerConfig holds configuration for the browser server.
type WebServerConfig struct {
	Host           string
	Port           string
	ReadOnly       bool
	MaxConnections int // 0 is unlimited
	Debug          bool

	Session SessionOptions
}

// StartWebServer serves one desktop per browser tab until ctx is done.
func StartWebServer(ctx context.Context, cfg *WebServerConfig) error {
	if cfg.Session.Logger == nil {
		cfg.Session.Logger = log.Default()
	}

	// Stdout is not a terminal here, so detection would strip every color.
	lipgloss.Writer.Profile = colorprofile.TrueColor
	_ = os.Setenv("TERM", "xterm-256color")
	_ = os.Setenv("COLORTERM", "truecolor")

	sipConfig := sip.DefaultConfig()
	sipConfig.Host = cfg.Host
	sipConfig.Port = cfg.Port
	sipConfig.ReadOnly = cfg.ReadOnly
	sipConfig.MaxConnections = cfg.MaxConnections
	sipConfig.Debug = cfg.Debug

	cfg.Session.Logger.Info("starting web server", "host", cfg.Host, "port", cfg.Port, "read_only", cfg.ReadOnly)
	return sip.NewServer(sipConfig).Serve(ctx, cfg.webHandler)
}

func (cfg *WebServerConfig) webHandler(sess sip.Session) (tea.Model, []tea.ProgramOption) {
	pty := sess.Pty()
	return NewSession(cfg.Session, nil, pty.Width, pty.Height)
}
