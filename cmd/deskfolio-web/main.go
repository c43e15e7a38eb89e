// Package main implements deskfolio-web, which serves the deskfolio desktop
// to browsers. It uses the sip library for the browser terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"charm.land/log/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/server"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Command-line flags
var (
	webPort           string
	webHost           string
	webReadOnly       bool
	webMaxConnections int
	// deskfolio forwarded flags
	debugMode    bool
	asciiOnly    bool
	noAnimations bool
	themeName    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskfolio-web",
		Short: "Serve deskfolio in the browser",
		Long: `deskfolio-web - the deskfolio desktop in a browser tab

Every tab gets its own desktop with an in-memory layout. Links are shown in a
notification rather than opened on the server.
Powered by sip (github.com/Gaurav-Gosain/sip).`,
		Example: `  # Start web server on default port (7681)
  deskfolio-web

  # Bind to all interfaces for remote access
  deskfolio-web --host 0.0.0.0 --port 8080

  # Start in read-only mode (view only)
  deskfolio-web --read-only

  # Limit concurrent connections
  deskfolio-web --max-connections 10`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWebServer(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	rootCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")
	rootCmd.Flags().BoolVar(&webReadOnly, "read-only", false, "Disable input from clients (view only)")
	rootCmd.Flags().IntVar(&webMaxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")

	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&asciiOnly, "ascii-only", false, "Draw with plain ASCII instead of box drawing characters")
	rootCmd.Flags().BoolVar(&noAnimations, "no-animations", false, "Open windows without the entrance animation")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func runWebServer(ctx context.Context) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "web",
		ReportTimestamp: true,
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
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

	overrides := config.Overrides{
		ASCIIOnly:    asciiOnly,
		NoAnimations: noAnimations,
		ThemeName:    themeName,
		Ephemeral:    true,
	}
	config.ApplyOverrides(overrides, nil)
	if themeName != "" && !theme.Initialize(themeName) {
		logger.Warn("unknown theme, using the default", "theme", themeName)
	}

	return server.StartWebServer(ctx, &server.WebServerConfig{
		Host:           webHost,
		Port:           webPort,
		ReadOnly:       webReadOnly,
		MaxConnections: webMaxConnections,
		Debug:          debugMode,
		Session: server.SessionOptions{
			Site:      content.DefaultSite(),
			Overrides: overrides,
			Logger:    logger,
		},
	})
}
