package app

import (
	"os"
	"strings"
)

// HostCapabilities holds what the host terminal can draw.
type HostCapabilities struct {
	TerminalName string
	TrueColor    bool
	// Unicode is false on terminals that cannot draw box drawing and block
	// characters, where the desktop falls back to ASCII.
	Unicode bool
}

// DetectHostCapabilities inspects the environment of the current process.
func DetectHostCapabilities() HostCapabilities {
	return DetectCapabilities(os.Getenv)
}

// DetectCapabilities inspects an environment through getenv.
func DetectCapabilities(getenv func(string) string) HostCapabilities {
	caps := HostCapabilities{Unicode: true}

	term := strings.ToLower(getenv("TERM"))
	termProgram := strings.ToLower(getenv("TERM_PROGRAM"))
	colorterm := strings.ToLower(getenv("COLORTERM"))

	switch {
	case strings.Contains(termProgram, "ghostty"):
		caps.TerminalName = "ghostty"
		caps.TrueColor = true
	case strings.Contains(termProgram, "kitty"), getenv("KITTY_WINDOW_ID") != "":
		caps.TerminalName = "kitty"
		caps.TrueColor = true
	case strings.Contains(termProgram, "wezterm"), getenv("WEZTERM_PANE") != "":
		caps.TerminalName = "wezterm"
		caps.TrueColor = true
	case strings.Contains(termProgram, "iterm"):
		caps.TerminalName = "iterm2"
		caps.TrueColor = true
	case strings.Contains(termProgram, "apple_terminal"):
		caps.TerminalName = "terminal.app"
	case strings.Contains(termProgram, "alacritty"):
		caps.TerminalName = "alacritty"
		caps.TrueColor = true
	case strings.Contains(term, "xterm"):
		caps.TerminalName = "xterm"
	case term == "linux":
		// The Linux console font has no block elements.
		caps.TerminalName = "linux"
		caps.Unicode = false
	case term == "dumb" || term == "vt100" || term == "vt220":
		caps.TerminalName = term
		caps.Unicode = false
	}

	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.TrueColor = true
	}
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		caps.TrueColor = true
	}

	if caps.Unicode && !utf8Locale(getenv) {
		caps.Unicode = false
	}
	return caps
}

// utf8Locale follows the POSIX precedence of LC_ALL, LC_CTYPE and LANG. An
// unset locale is assumed to be UTF-8, as it is on most modern systems.
func utf8Locale(getenv func(string) string) bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(name)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		if v == "c" || v == "posix" {
			return false
		}
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return true
}
