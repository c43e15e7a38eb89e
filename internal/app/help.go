package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

// helpSections returns the sections that apply right now. Focused-window
// bindings are hidden while the desktop is empty.
func (m *Desktop) helpSections() []config.KeybindingSection {
	all := config.GetKeybindings(m.KeybindRegistry)
	hasWindow := m.Manager().Top() != ""

	sections := make([]config.KeybindingSection, 0, len(all))
	for _, s := range all {
		if s.Condition == "window" && !hasWindow {
			continue
		}
		sections = append(sections, s)
	}
	return sections
}

// helpLines renders every section as a borderless two column table.
func (m *Desktop) helpLines() []string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey()).PaddingRight(2)
	textStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	var lines []string
	for i, section := range m.helpSections() {
		if i > 0 {
			lines = append(lines, "")
		}
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderColumn(false).
			StyleFunc(func(_, col int) lipgloss.Style {
				if col == 0 {
					return keyStyle
				}
				return textStyle
			}).
			Rows(rows...)

		lines = append(lines, titleStyle.Render(section.Title))
		lines = append(lines, strings.Split(t.String(), "\n")...)
	}
	return lines
}

// helpPageSize is how many lines of bindings fit on screen.
func helpPageSize(height int) int {
	// border, padding, title, blank and footer rows
	return max(height-10, 3)
}

// ScrollHelp moves the help overlay by delta lines.
func (m *Desktop) ScrollHelp(delta int) {
	maxScroll := max(len(m.helpLines())-helpPageSize(m.Height), 0)
	m.HelpScrollOffset = min(max(m.HelpScrollOffset+delta, 0), maxScroll)
}

// RenderHelpMenu renders the keybinding overlay centered in width x height.
func (m *Desktop) RenderHelpMenu(width, height int) string {
	lines := m.helpLines()
	page := helpPageSize(height)
	maxScroll := max(len(lines)-page, 0)
	m.HelpScrollOffset = min(max(m.HelpScrollOffset, 0), maxScroll)

	visible := lines[m.HelpScrollOffset:min(m.HelpScrollOffset+page, len(lines))]

	header := lipgloss.NewStyle().
		Foreground(theme.HelpTitle()).
		Bold(true).
		Render("Keyboard Shortcuts")
	hint := "Press '?' or 'esc' to close"
	if maxScroll > 0 {
		hint = "j/k or ↑/↓ to scroll, '?' or 'esc' to close"
	}
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).Render(hint)

	body := header + "\n\n" + strings.Join(visible, "\n") + "\n\n" + footer
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpTitle()).
		Background(theme.HelpBg()).
		Padding(1, 2).
		MaxWidth(max(width-2, 20)).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
