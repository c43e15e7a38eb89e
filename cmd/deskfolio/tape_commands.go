package main

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/history"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
)

func newTapeCommand() *cobra.Command {
	tapeCmd := &cobra.Command{
		Use:   "tape",
		Short: "Run desktop scripts without a terminal",
		Long: `Run and validate tape scripts

A tape drives the window manager with pointer gestures and checks the result
with Expect commands. Scripts run against an in-memory layout, so the saved
layout is never touched.`,
	}

	var verbose, realtime bool
	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a tape script",
		Example: `  # Run a script
  deskfolio tape run demo.tape

  # Print every command and honor Sleep
  deskfolio tape run demo.tape --verbose --realtime`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTape(cmd, args[0], verbose, realtime)
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every command as it runs")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Wait for Sleep commands instead of skipping them")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a tape script for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := readTape(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d commands\n", args[0], len(commands))
			return nil
		},
	}

	playCmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Play a tape script on the live desktop",
		Long: `Play a tape script on the live desktop

Commands run one at a time so each step can be watched. Viewport commands are
skipped since the terminal decides the size. Press esc to stop playback.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := readTape(args[0])
			if err != nil {
				return err
			}
			return runLocal(cmd.Context(), commands)
		},
	}

	tapeCmd.AddCommand(runCmd, playCmd, validateCmd)
	return tapeCmd
}

func readTape(path string) ([]tape.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tape file: %w", err)
	}
	commands, err := tape.ValidateScript(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return commands, nil
}

func runTape(cmd *cobra.Command, path string, verbose, realtime bool) error {
	commands, err := readTape(path)
	if err != nil {
		return err
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}

	var logger *log.Logger
	if debugMode {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tape", Level: log.DebugLevel})
	}

	site := content.DefaultSite()
	nav := history.New(history.Root, userConfig.History.Limit)
	desk := desktop.New(site.Registry(nil), storage.NewMemoryStore(), nav, site.Icons(), userConfig.Desktop.Options(), logger)

	runner := tape.NewHeadlessRunner(commands, desk, nav)
	runner.SetVerbose(verbose)
	runner.SetRealtime(realtime)

	runErr := runner.Run(cmd.Context())
	_ = runner.WriteOutput(os.Stdout)

	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	for _, link := range runner.Links {
		fmt.Println(faint.Render("link: " + link))
	}
	for _, a := range runner.Activations {
		fmt.Println(faint.Render(fmt.Sprintf("activate: %s row %d", a.ID, a.Row)))
	}
	return runErr
}
