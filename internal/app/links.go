package app

import (
	"fmt"
	"os/exec"
	"runtime"
)

// LinkOpener opens external links on the viewer's machine.
type LinkOpener interface {
	OpenLink(url string) error
}

// LinkOpenerFunc adapts a function to LinkOpener.
type LinkOpenerFunc func(url string) error

// OpenLink implements LinkOpener.
func (f LinkOpenerFunc) OpenLink(url string) error {
	return f(url)
}

// SystemOpener opens links with the platform's default handler. It only
// makes sense when the viewer sits at the machine running deskfolio.
type SystemOpener struct{}

// OpenLink implements LinkOpener.
func (SystemOpener) OpenLink(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// reap the child without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}
