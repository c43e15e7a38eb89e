package server

import (
	"errors"
	"io"
	"testing"

	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

func testOptions(load func() (*config.UserConfig, error)) SessionOptions {
	return SessionOptions{
		Site:       content.DefaultSite(),
		Logger:     log.New(io.Discard),
		LoadConfig: load,
	}
}

func TestInitialPath(t *testing.T) {
	tests := []struct {
		name    string
		command []string
		want    string
	}{
		{"no command", nil, "/"},
		{"blank", []string{"  "}, "/"},
		{"bare id", []string{"about"}, "/about"},
		{"absolute", []string{"/portfolio"}, "/portfolio"},
		{"extra args ignored", []string{"resume", "now"}, "/resume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := initialPath(tt.command); got != tt.want {
				t.Errorf("initialPath(%v) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	prev := config.AnimationsEnabled
	t.Cleanup(func() { config.AnimationsEnabled = prev })

	opts := testOptions(func() (*config.UserConfig, error) { return config.DefaultConfig(), nil })
	opts.Overrides = config.Overrides{NoAnimations: true}

	m, progOpts := NewSession(opts, []string{"about"}, 120, 40)
	defer m.Close()

	if !m.IsRemote {
		t.Error("remote session must not open links on the server")
	}
	if m.SessionID == "" {
		t.Error("session id not set")
	}
	if m.Width != 120 || m.Height != 40 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
	if !m.Manager().IsOpen(content.AboutID) {
		t.Errorf("open = %v, want about", m.Manager().OpenIDs())
	}
	// centered in the pty, not in an unknown 0x0 screen
	w, _ := m.Manager().Window(content.AboutID)
	if w == nil || w.Position != (desktop.Point{X: 30, Y: 7}) {
		t.Errorf("about window = %+v, want at {30 7}", w)
	}
	if len(progOpts) == 0 {
		t.Error("no program options")
	}
}

func TestNewSessionConfigFallback(t *testing.T) {
	opts := testOptions(func() (*config.UserConfig, error) { return nil, errors.New("boom") })

	m, _ := NewSession(opts, nil, 0, 0)
	defer m.Close()

	if m.Config == nil {
		t.Fatal("config not defaulted")
	}
	if len(m.Manager().OpenIDs()) != 0 {
		t.Errorf("root path opened %v", m.Manager().OpenIDs())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	opts := testOptions(func() (*config.UserConfig, error) { return config.DefaultConfig(), nil })

	a, _ := NewSession(opts, []string{"about"}, 100, 30)
	defer a.Close()
	b, _ := NewSession(opts, nil, 100, 30)
	defer b.Close()

	if a.SessionID == b.SessionID {
		t.Error("sessions share an id")
	}
	if b.Manager().IsOpen(content.AboutID) {
		t.Error("second session sees the first session's window")
	}
}
