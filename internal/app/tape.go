package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
)

// tapeStepDelay is the pause between played commands.
const tapeStepDelay = 250 * time.Millisecond

// PlayTapeMsg starts playing a script, see PlayTape.
type PlayTapeMsg struct {
	Commands []tape.Command
}

// tapeStepMsg plays the next tape command.
type tapeStepMsg struct {
	player *tape.Player
}

// PlayTape plays commands on the live desktop, one step at a time. A failed
// expectation stops playback with an error notification.
func (m *Desktop) PlayTape(commands []tape.Command) tea.Cmd {
	p := tape.NewPlayer(commands)
	m.tape = p
	m.LogInfo("Playing %d tape command(s)", p.TotalCommands())
	return func() tea.Msg { return tapeStepMsg{player: p} }
}

// TapePlaying reports whether a script is being played.
func (m *Desktop) TapePlaying() bool {
	return m.tape != nil
}

// StopTape abandons playback.
func (m *Desktop) StopTape() {
	if m.tape != nil {
		m.LogInfo("Tape stopped at command %d", m.tape.CurrentIndex()+1)
		m.tape = nil
	}
}

// Visit navigates to path as if it had been typed in the address bar.
func (m *Desktop) Visit(path string) tea.Cmd {
	return tea.Batch(m.apply(m.desk.Navigate(m.History.Visit(path))), m.maybeCollect())
}

func (m *Desktop) stepTape(msg tapeStepMsg) tea.Cmd {
	// Steps of a stopped or replaced player are dropped.
	p := m.tape
	if p == nil || p != msg.player {
		return nil
	}

	cmd := p.NextCommand()
	if cmd == nil {
		m.tape = nil
		m.ShowNotification("Script finished", "success", config.NotificationDuration)
		return nil
	}
	p.Advance()

	delay := tapeStepDelay
	var out tea.Cmd
	if actions, ok := tape.Actions(cmd); ok {
		cmds := make([]tea.Cmd, 0, len(actions))
		for _, a := range actions {
			cmds = append(cmds, m.Dispatch(a))
		}
		out = tea.Batch(cmds...)
	} else if cmd.Type.IsExpectation() {
		if err := tape.Verify(cmd, m.Manager()); err != nil {
			m.tape = nil
			m.LogError("Tape failed: %v", err)
			m.ShowNotification(err.Error(), "error", 2*config.NotificationDuration)
			return nil
		}
	} else {
		switch cmd.Type {
		case tape.CommandType_Back:
			out = m.Back()
		case tape.CommandType_Forward:
			out = m.Forward()
		case tape.CommandType_Visit:
			out = m.Visit(cmd.Args[0])
		case tape.CommandType_Sleep:
			delay = cmd.Delay
		case tape.CommandType_Viewport:
			m.LogInfo("Skipping %s: the terminal decides the size", cmd.String())
		}
	}

	next := tea.Tick(delay, func(time.Time) tea.Msg { return tapeStepMsg{player: p} })
	return tea.Batch(out, next)
}
