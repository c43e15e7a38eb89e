package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/sysinfo"
)

// ClockMsg advances the menu bar clock.
type ClockMsg time.Time

// FrameMsg is a scheduled animation frame for one window opening.
type FrameMsg struct {
	ID         string
	Generation uint64
}

// SysinfoMsg carries a fresh system sample.
type SysinfoMsg struct {
	Info sysinfo.Info
	Err  error
}

// sysinfoTickMsg asks for the next sample.
type sysinfoTickMsg struct{}

// LinkOpenedMsg reports the outcome of opening an external link.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// ConfigReloadedMsg carries a configuration read after the file changed.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// ConfigErrorMsg reports a config file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// ClockCmd ticks on the next second boundary.
func ClockCmd() tea.Cmd {
	return tea.Every(config.ClockInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// FrameCmd delivers a frame after the enter animation.
func FrameCmd(e desktop.ScheduleFrameEffect) tea.Cmd {
	msg := FrameMsg{ID: e.ID, Generation: e.Generation}
	d := config.GetFastAnimationDuration()
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func sysinfoTickCmd() tea.Cmd {
	return tea.Tick(config.CPUUpdateInterval, func(time.Time) tea.Msg {
		return sysinfoTickMsg{}
	})
}
