package theme

import (
	"image/color"
	"testing"

	"charm.land/lipgloss/v2"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestPlatinumPalette(t *testing.T) {
	if !Initialize("") {
		t.Fatal("empty theme name should always succeed")
	}
	if IsEnabled() || Current() != nil {
		t.Fatal("theming should be disabled")
	}

	tests := []struct {
		name string
		got  color.Color
		want string
	}{
		{"menu bar", MenuBarBg(), "#DDDDDD"},
		{"highlight", HighlightBg(), "#333399"},
		{"window", WindowBg(), "#CCCCCC"},
		{"border", WindowBorder(), "#262626"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !sameColor(tt.got, lipgloss.Color(tt.want)) {
				t.Errorf("%s = %v, want %s", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	defer Initialize("")

	if Initialize("no-such-theme-anywhere") {
		t.Error("unknown theme reported as found")
	}
	if !IsEnabled() {
		t.Error("fallback theme should be active")
	}
}
