package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
)

// chrome holds the characters windows are drawn with.
type chrome struct {
	TopLeft, TopRight, BottomLeft string
	Horizontal, Vertical          string
	Grip                          string
	CloseBox, ZoomBox             string
	Stripe                        string
	Apple                         string
	Pattern                       string
}

var unicodeChrome = chrome{
	TopLeft:    "┌",
	TopRight:   "┐",
	BottomLeft: "└",
	Horizontal: "─",
	Vertical:   "│",
	Grip:       "◢",
	CloseBox:   "[■]",
	ZoomBox:    "[□]",
	Stripe:     "≡",
	Apple:      "◆",
	Pattern:    "·",
}

var asciiChrome = chrome{
	TopLeft:    "+",
	TopRight:   "+",
	BottomLeft: "+",
	Horizontal: "-",
	Vertical:   "|",
	Grip:       "/",
	CloseBox:   "[x]",
	ZoomBox:    "[o]",
	Stripe:     "=",
	Apple:      "@",
	Pattern:    ".",
}

func getChrome() chrome {
	if config.UseASCIIOnly {
		return asciiChrome
	}
	return unicodeChrome
}

// padRight truncates or pads s to exactly width cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

// center places s in the middle of width cells, filling both sides with fill.
func center(s string, width int, fill string) string {
	s = ansi.Truncate(s, width, "…")
	gap := width - ansi.StringWidth(s)
	left := gap / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, gap-left)
}

// clipLayer cuts a block of text placed at (x, y) to the viewport and returns
// the visible part with its new origin. Lines are assumed equally wide.
func clipLayer(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	height := len(lines)
	width := 0
	if height > 0 {
		width = ansi.StringWidth(lines[0])
	}

	if x+width <= 0 || x >= viewportWidth || y+height <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop, clipLeft := max(-y, 0), max(-x, 0)
	finalX, finalY := max(x, 0), max(y, 0)

	visible := lines[clipTop:]
	if maxLines := viewportHeight - finalY; maxLines < len(visible) {
		visible = visible[:maxLines]
	}

	right := min(width, viewportWidth-x)
	if clipLeft == 0 && right == width {
		return strings.Join(visible, "\n"), finalX, finalY
	}

	out := make([]string, len(visible))
	for i, line := range visible {
		out[i] = ansi.Cut(line, clipLeft, right)
	}
	return strings.Join(out, "\n"), finalX, finalY
}
