package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // generated on first start when missing

	Session SessionOptions
}

// StartSSHServer serves one desktop per SSH session until ctx is done.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	logger := cfg.Session.Logger
	if logger == nil {
		logger = log.Default()
		cfg.Session.Logger = logger
	}

	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "deskfolio_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(cfg.teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	}

	logger.Info("shutting down SSH server")
	return server.Shutdown(context.Background())
}

// teaHandler creates a desktop for each SSH session.
func (cfg *SSHServerConfig) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := s.Pty()
	if !active {
		wish.Fatalln(s, "deskfolio needs a terminal; connect with ssh -t")
		return nil, nil
	}

	opts := cfg.Session
	opts.Logger = opts.Logger.With("user", s.User(), "remote", s.RemoteAddr().String())
	return NewSession(opts, s.Command(), pty.Window.Width, pty.Window.Height)
}
