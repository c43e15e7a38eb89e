package tape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/history"
)

// ExpectationError is a failed Expect command.
type ExpectationError struct {
	Line    int
	Command string
	Got     string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("line %d: %s: got %s", e.Line, e.Command, e.Got)
}

// HeadlessRunner runs a tape script against a desktop without a terminal.
// Frame requests are settled immediately; links and content clicks are
// recorded instead of followed.
type HeadlessRunner struct {
	player *Player
	desk   *desktop.Desktop
	nav    *history.History

	output     strings.Builder
	outputLock sync.Mutex
	verbose    bool
	realtime   bool
	startTime  time.Time

	// Links are the external links the script would have opened.
	Links []string
	// Activations are clicks that landed inside window content.
	Activations []desktop.ActivateEffect
}

// NewHeadlessRunner creates a runner for commands. nav must be the
// navigator desk was built with.
func NewHeadlessRunner(commands []Command, desk *desktop.Desktop, nav *history.History) *HeadlessRunner {
	return &HeadlessRunner{
		player:    NewPlayer(commands),
		desk:      desk,
		nav:       nav,
		startTime: time.Now(),
	}
}

// SetVerbose enables a log line per command.
func (hr *HeadlessRunner) SetVerbose(verbose bool) {
	hr.verbose = verbose
}

// SetRealtime makes Sleep actually wait. By default sleeps are skipped.
func (hr *HeadlessRunner) SetRealtime(realtime bool) {
	hr.realtime = realtime
}

// Run executes every remaining command in order. It stops at the first
// failed expectation.
func (hr *HeadlessRunner) Run(ctx context.Context) error {
	hr.logf("Running %d commands\n", hr.player.TotalCommands())

	for !hr.player.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := hr.player.NextCommand()
		if hr.verbose {
			hr.logf("[%d/%d] %s\n", hr.player.CurrentIndex()+1, hr.player.TotalCommands(), cmd.String())
		}
		if err := hr.exec(ctx, cmd); err != nil {
			hr.logf("FAIL %v\n", err)
			return err
		}
		hr.player.Advance()
	}

	hr.logf("Script completed in %v\n", time.Since(hr.startTime).Round(time.Millisecond))
	return nil
}

func (hr *HeadlessRunner) exec(ctx context.Context, cmd *Command) error {
	if actions, ok := Actions(cmd); ok {
		for _, a := range actions {
			hr.dispatch(a)
		}
		return nil
	}
	if cmd.Type.IsExpectation() {
		return Verify(cmd, hr.desk.Manager())
	}

	switch cmd.Type {
	case CommandType_Viewport:
		hr.desk.SetViewport(desktop.Size{Width: cmd.Ints[0], Height: cmd.Ints[1]})

	case CommandType_Back:
		if ps, ok := hr.nav.Back(); ok {
			hr.settle(hr.desk.Navigate(ps))
		} else if hr.verbose {
			hr.logf("  nothing to go back to\n")
		}
	case CommandType_Forward:
		if ps, ok := hr.nav.Forward(); ok {
			hr.settle(hr.desk.Navigate(ps))
		} else if hr.verbose {
			hr.logf("  nothing to go forward to\n")
		}
	case CommandType_Visit:
		hr.settle(hr.desk.Navigate(hr.nav.Visit(cmd.Args[0])))

	case CommandType_Sleep:
		if !hr.realtime {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cmd.Delay):
		}

	default:
		return fmt.Errorf("line %d: unsupported command %s", cmd.Line, cmd.Type)
	}
	return nil
}

func (hr *HeadlessRunner) dispatch(c desktop.Command) {
	hr.settle(hr.desk.Dispatch(c))
}

// settle performs effects: frames are delivered at once, links and content
// clicks are recorded.
func (hr *HeadlessRunner) settle(effects []desktop.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case desktop.ScheduleFrameEffect:
			hr.dispatch(desktop.Frame{ID: e.ID, Generation: e.Generation})
		case desktop.OpenLinkEffect:
			hr.Links = append(hr.Links, e.URL)
			if hr.verbose {
				hr.logf("  open link %s\n", e.URL)
			}
		case desktop.ActivateEffect:
			hr.Activations = append(hr.Activations, e)
			if hr.verbose {
				hr.logf("  activate %s row %d\n", e.ID, e.Row)
			}
		}
	}
}

// GetOutput returns the captured output
func (hr *HeadlessRunner) GetOutput() string {
	hr.outputLock.Lock()
	defer hr.outputLock.Unlock()
	return hr.output.String()
}

// WriteOutput writes the output to a writer
func (hr *HeadlessRunner) WriteOutput(w io.Writer) error {
	hr.outputLock.Lock()
	defer hr.outputLock.Unlock()
	_, err := io.WriteString(w, hr.output.String())
	return err
}

func (hr *HeadlessRunner) logf(format string, args ...any) {
	hr.outputLock.Lock()
	defer hr.outputLock.Unlock()
	fmt.Fprintf(&hr.output, format, args...)
}

// ValidateScript parses content and reports every problem found.
func ValidateScript(content string) ([]Command, error) {
	commands, err := Parse(content)
	if err != nil {
		return nil, err
	}
	if len(commands) == 0 {
		return nil, errors.New("no commands found in script")
	}
	return commands, nil
}
