// Package main implements deskfolio, a portfolio presented as a retro
// desktop in the terminal. It runs locally or serves a desktop per
// connection over SSH.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	asciiOnly    bool
	noAnimations bool
	themeName    string
	profileName  string
	ephemeral    bool
	startPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskfolio",
		Short: "A portfolio you can drag around",
		Long: `deskfolio - a portfolio desktop for the terminal

Projects, an about page and a resume live in windows on a classic desktop.
Windows can be dragged, resized and stacked, and the layout is remembered
between runs. Back and forward restore the exact set of open windows.`,
		Example: `  # Run deskfolio
  deskfolio

  # Start with the About window open
  deskfolio --path /about

  # Use a separate saved layout
  deskfolio --profile demo

  # Serve over SSH
  deskfolio ssh --port 2222

  # Replay a script without a terminal
  deskfolio tape run demo.tape`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd.Context(), nil)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Draw with plain ASCII instead of box drawing characters")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Open windows without the entrance animation")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "Saved layout profile (default from config)")
	rootCmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep the layout in memory only")
	rootCmd.Flags().StringVar(&startPath, "path", "", "Location to start at, e.g. /about")

	rootCmd.AddCommand(
		newSSHCommand(),
		newConfigCommand(),
		newKeybindsCommand(),
		newStateCommand(),
		newTapeCommand(),
	)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func newSSHCommand() *cobra.Command {
	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve deskfolio over SSH",
		Long: `Serve deskfolio over SSH

Every connection gets its own desktop. Layouts of remote sessions are kept in
memory and links are shown instead of opened. The remote command selects the
start location, so "ssh -t host -p 2222 about" opens the About window.`,
		Example: `  # Start SSH server on default port
  deskfolio ssh

  # Start on custom port
  deskfolio ssh --port 2222

  # Specify custom host key
  deskfolio ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")
	return sshCmd
}
