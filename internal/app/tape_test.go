package app

import (
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/deskfolio/internal/content"
	"github.com/Gaurav-Gosain/deskfolio/internal/tape"
)

// play starts src and steps it to the end without waiting between commands.
func play(t *testing.T, m *Desktop, src string) {
	t.Helper()
	cmds, err := tape.ValidateScript(src)
	if err != nil {
		t.Fatalf("invalid script: %v", err)
	}
	m.Update(PlayTapeMsg{Commands: cmds})
	for i := 0; m.TapePlaying(); i++ {
		if i > len(cmds)+1 {
			t.Fatal("playback did not finish")
		}
		m.Update(tapeStepMsg{player: m.tape})
	}
}

func lastNotification(m *Desktop) Notification {
	if len(m.Notifications) == 0 {
		return Notification{}
	}
	return m.Notifications[len(m.Notifications)-1]
}

func TestPlayTape(t *testing.T) {
	m := newTestDesktop(t, Options{})

	play(t, m, `
Viewport 80 24
Open about
ExpectOpen about
Visit /portfolio
ExpectOpen about portfolio
`)

	if n := lastNotification(m); n.Message != "Script finished" || n.Type != "success" {
		t.Errorf("notification = %+v", n)
	}
	if m.Width != 120 {
		t.Errorf("Viewport changed the live size to %d", m.Width)
	}
	if m.History.Location() != "/portfolio" {
		t.Errorf("location = %q", m.History.Location())
	}
}

func TestPlayTapeStopsOnFailure(t *testing.T) {
	m := newTestDesktop(t, Options{})

	play(t, m, "Open about\nExpectOpen portfolio\nOpen resume\n")

	if m.Manager().IsOpen(content.ResumeID) {
		t.Error("commands after a failed expectation ran")
	}
	n := lastNotification(m)
	if n.Type != "error" || !strings.Contains(n.Message, "line 2") {
		t.Errorf("notification = %+v", n)
	}
	found := false
	for _, l := range m.LogMessages {
		if strings.Contains(l.Message, "Tape failed") {
			found = true
		}
	}
	if !found {
		t.Error("failure not logged")
	}
}

func TestStopTapeDropsPendingSteps(t *testing.T) {
	m := newTestDesktop(t, Options{})
	cmds, _ := tape.ValidateScript("Open about\n")

	m.Update(PlayTapeMsg{Commands: cmds})
	p := m.tape
	m.StopTape()
	m.Update(tapeStepMsg{player: p})

	if m.Manager().IsOpen(content.AboutID) {
		t.Error("step of a stopped tape ran")
	}
}

func TestTapeProgressInMenuBar(t *testing.T) {
	m := newTestDesktop(t, Options{})
	cmds, _ := tape.ValidateScript("Open about\nOpen resume\n")
	m.Update(PlayTapeMsg{Commands: cmds})

	if out := plain(m); !strings.Contains(out, "Tape 0/2") {
		t.Errorf("menu bar missing progress:\n%s", strings.SplitN(out, "\n", 2)[0])
	}
	m.Update(tapeStepMsg{player: m.tape})
	if out := plain(m); !strings.Contains(out, "Tape 1/2") {
		t.Errorf("menu bar missing progress:\n%s", strings.SplitN(out, "\n", 2)[0])
	}
}
