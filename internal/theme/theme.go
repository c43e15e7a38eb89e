// Package theme provides the colors of the desktop. Without a theme the
// classic platinum palette is used; with one, colors come from bubbletint.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup, and again when the config changes.
// If themeName is empty, theming is disabled and the platinum palette is used.
// It reports whether the theme was found.
func Initialize(themeName string) bool {
	if themeName == "" {
		enabled = false
		return true
	}

	enabled = true
	tint.NewDefaultRegistry()

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return false
	}
	return true
}

// IsEnabled returns true if a bubbletint theme is active.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil for the platinum palette.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Platinum palette.
var (
	platinumMenu      = lipgloss.Color("#DDDDDD")
	platinumHighlight = lipgloss.Color("#333399")
	platinumWindow    = lipgloss.Color("#CCCCCC")
	platinumBorder    = lipgloss.Color("#262626")
	platinumShadow    = lipgloss.Color("#808080")
	platinumPaper     = lipgloss.Color("#FFFFFF")
	platinumDesktop   = lipgloss.Color("#5A5A9C")
	platinumPattern   = lipgloss.Color("#6B6BAD")
)

func pick(platinum color.Color, themed func(*tint.Tint) color.Color) color.Color {
	if t := Current(); t != nil {
		return themed(t)
	}
	return platinum
}

// Desktop background
func DesktopBg() color.Color {
	return pick(platinumDesktop, func(t *tint.Tint) color.Color { return t.Bg })
}

func DesktopPattern() color.Color {
	return pick(platinumPattern, func(t *tint.Tint) color.Color { return t.BrightBlack })
}

// Menu bar
func MenuBarBg() color.Color {
	return pick(platinumMenu, func(t *tint.Tint) color.Color { return t.White })
}

func MenuBarFg() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Black })
}

// Highlight is the selection color of menus, icon labels and active rows.
func HighlightBg() color.Color {
	return pick(platinumHighlight, func(t *tint.Tint) color.Color { return t.Blue })
}

func HighlightFg() color.Color {
	return pick(platinumPaper, func(t *tint.Tint) color.Color { return t.BrightWhite })
}

// Window chrome
func WindowBg() color.Color {
	return pick(platinumWindow, func(t *tint.Tint) color.Color { return t.White })
}

func WindowBorder() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Black })
}

func TitleFg() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Black })
}

// TitleStripes colors the striped title bar of the focused window.
func TitleStripes() color.Color {
	return pick(platinumShadow, func(t *tint.Tint) color.Color { return t.BrightBlack })
}

// InactiveTitleFg dims titles of windows that are not on top.
func InactiveTitleFg() color.Color {
	return pick(platinumShadow, func(t *tint.Tint) color.Color { return t.BrightBlack })
}

func ContentBg() color.Color {
	return pick(platinumPaper, func(t *tint.Tint) color.Color { return t.BrightWhite })
}

func ContentFg() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Black })
}

// Desktop icons
func IconFg() color.Color {
	return pick(platinumPaper, func(t *tint.Tint) color.Color { return t.Fg })
}

func IconLabelBg() color.Color {
	return pick(platinumPaper, func(t *tint.Tint) color.Color { return t.BrightWhite })
}

func IconLabelFg() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Black })
}

// Notification colors
func NotificationError() color.Color {
	return pick(lipgloss.Color("#cd0000"), func(t *tint.Tint) color.Color { return t.Red })
}

func NotificationWarning() color.Color {
	return pick(lipgloss.Color("#cdcd00"), func(t *tint.Tint) color.Color { return t.Yellow })
}

func NotificationSuccess() color.Color {
	return pick(lipgloss.Color("#00cd00"), func(t *tint.Tint) color.Color { return t.Green })
}

func NotificationInfo() color.Color {
	return pick(platinumHighlight, func(t *tint.Tint) color.Color { return t.Blue })
}

func NotificationBg() color.Color {
	return pick(platinumMenu, func(t *tint.Tint) color.Color { return t.Bg })
}

func NotificationFg() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Fg })
}

// Log viewer colors
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

func LogViewerDebug() color.Color {
	return lipgloss.Color("12")
}

func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// Help overlay colors
func HelpTitle() color.Color {
	return pick(platinumHighlight, func(t *tint.Tint) color.Color { return t.BrightYellow })
}

func HelpKey() color.Color {
	return pick(platinumHighlight, func(t *tint.Tint) color.Color { return t.BrightCyan })
}

func HelpText() color.Color {
	return pick(platinumBorder, func(t *tint.Tint) color.Color { return t.Fg })
}

func HelpBg() color.Color {
	return pick(platinumMenu, func(t *tint.Tint) color.Color { return t.Bg })
}
