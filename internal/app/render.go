package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/pool"
	"github.com/Gaurav-Gosain/deskfolio/internal/theme"
)

// clockLayout renders the menu bar clock as "3:04 PM".
const clockLayout = "3:04 PM"

// View returns the rendered view.
func (m *Desktop) View() tea.View {
	view := tea.NewView(m.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// Render composes every layer of the desktop into one frame.
func (m *Desktop) Render() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	layersPtr := pool.GetLayerSlice()
	defer pool.PutLayerSlice(layersPtr)
	layers := (*layersPtr)[:0]

	layers = append(layers, m.renderBackground(), m.renderMenuBar())
	layers = append(layers, m.renderIcons()...)
	layers = append(layers, m.renderWindows()...)
	layers = append(layers, m.renderOverlays()...)

	*layersPtr = layers
	return lipgloss.NewCompositor(layers...).Render()
}

func (m *Desktop) renderBackground() *lipgloss.Layer {
	ch := getChrome()
	style := lipgloss.NewStyle().
		Background(theme.DesktopBg()).
		Foreground(theme.DesktopPattern())

	tile := ch.Pattern + "   "
	row := strings.Repeat(tile, m.Width/4+2)

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)
	for y := range m.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// offset every other row for a woven look
		line := row
		if y%2 == 1 {
			line = ansi.Cut(row, 2, m.Width+2)
		}
		sb.WriteString(style.Render(ansi.Truncate(line, m.Width, "")))
	}
	return lipgloss.NewLayer(sb.String()).X(0).Y(0).Z(config.ZIndexDesktop).ID("desktop")
}

func (m *Desktop) renderMenuBar() *lipgloss.Layer {
	ch := getChrome()
	bar := lipgloss.NewStyle().Background(theme.MenuBarBg()).Foreground(theme.MenuBarFg())

	left := bar.Padding(0, 1).Render(ch.Apple)
	if top := m.Manager().Top(); top != "" {
		if w, ok := m.Manager().Window(top); ok {
			left += bar.Bold(true).Padding(0, 1).Render(w.Title)
		}
	}

	var parts []string
	if m.tape != nil {
		parts = append(parts, fmt.Sprintf("Tape %d/%d", m.tape.CurrentIndex(), m.tape.TotalCommands()))
	}
	parts = append(parts, m.History.Location(), "Finder")
	if !m.Config.Appearance.HideClock {
		parts = append(parts, m.Now.Format(clockLayout))
	}
	right := bar.Padding(0, 1).Render(strings.Join(parts, "  "))

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	line := left + bar.Render(strings.Repeat(" ", gap)) + right
	line = ansi.Truncate(line, m.Width, "")

	return lipgloss.NewLayer(line).X(0).Y(0).Z(config.ZIndexMenuBar).ID("menubar")
}

// renderIcons draws each icon in its hit box: a blank row, the glyph and the
// label. Icon and window positions are relative to the area below the menu
// bar.
func (m *Desktop) renderIcons() []*lipgloss.Layer {
	opts := m.Manager().Options()
	width := opts.Icons.Width
	bg := lipgloss.NewStyle().Background(theme.DesktopBg())
	glyph := bg.Foreground(theme.IconFg())
	label := lipgloss.NewStyle().Background(theme.IconLabelBg()).Foreground(theme.IconLabelFg())
	dragging := lipgloss.NewStyle().Background(theme.HighlightBg()).Foreground(theme.HighlightFg())

	var layers []*lipgloss.Layer
	for _, ic := range m.desk.Icons() {
		g := ic.Glyph
		if config.UseASCIIOnly || g == "" {
			g = "[" + ansi.Truncate(ic.Label, 1, "") + "]"
		}

		lbl := ansi.Truncate(ic.Label, width, "…")
		gap := width - ansi.StringWidth(lbl)
		lblStyle := label
		if ic.Dragging() {
			lblStyle = dragging
		}
		lines := []string{
			bg.Render(strings.Repeat(" ", width)),
			glyph.Render(center(g, width, " ")),
			bg.Render(strings.Repeat(" ", gap/2)) + lblStyle.Render(lbl) + bg.Render(strings.Repeat(" ", gap-gap/2)),
		}

		body, x, y := clipLayer(strings.Join(lines, "\n"), ic.Position.X, ic.Position.Y+opts.MenuBarHeight, m.Width, m.Height)
		if body == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(body).X(x).Y(y).Z(config.ZIndexIcons).ID("icon-"+ic.ID))
	}
	return layers
}

func (m *Desktop) renderWindows() []*lipgloss.Layer {
	mgr := m.Manager()
	top := mgr.Top()
	bar := mgr.Options().MenuBarHeight

	var layers []*lipgloss.Layer
	for _, w := range mgr.Windows() {
		body, x, y := clipLayer(m.renderWindow(w, w.ID == top), w.Position.X, w.Position.Y+bar, m.Width, m.Height)
		if body == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(body).X(x).Y(y).Z(mgr.ZIndex(w.ID)).ID("window-"+w.ID))
	}
	return layers
}

// renderWindow draws a window at its full size: title bar with close and
// zoom boxes, the pane, and a bottom edge ending in the resize grip.
func (m *Desktop) renderWindow(w *desktop.Window, focused bool) string {
	ch := getChrome()
	width, height := w.Size.Width, w.Size.Height
	inner := width - 2

	frame := lipgloss.NewStyle().Foreground(theme.WindowBorder()).Background(theme.WindowBg())
	title := frame.Foreground(theme.TitleFg()).Bold(true)
	stripes := frame.Foreground(theme.TitleStripes())
	contentStyle := lipgloss.NewStyle().Foreground(theme.ContentFg()).Background(theme.ContentBg())
	fill := ch.Stripe
	if !focused {
		title = frame.Foreground(theme.InactiveTitleFg())
		fill = " "
	}
	if w.State == desktop.Dragging || w.State == desktop.Resizing {
		frame = frame.Foreground(theme.HighlightBg())
	}
	if w.State == desktop.Entering {
		frame, title, stripes, contentStyle = frame.Faint(true), title.Faint(true), stripes.Faint(true), contentStyle.Faint(true)
	}

	lines := make([]string, 0, height)

	// title bar
	middle := inner - ansi.StringWidth(ch.CloseBox) - ansi.StringWidth(ch.ZoomBox)
	label := ansi.Truncate(" "+w.Title+" ", max(middle, 0), "…")
	gap := max(middle-ansi.StringWidth(label), 0)
	lines = append(lines, frame.Render(ch.TopLeft+ch.CloseBox)+
		stripes.Render(strings.Repeat(fill, gap/2))+
		title.Render(label)+
		stripes.Render(strings.Repeat(fill, gap-gap/2))+
		frame.Render(ch.ZoomBox+ch.TopRight))

	// pane
	var paneLines []string
	if pane, ok := m.Panes.Pane(w.ID); ok {
		paneLines = strings.Split(pane.Render(inner, height-2), "\n")
	}
	for i := range height - 2 {
		line := ""
		if i < len(paneLines) {
			line = paneLines[i]
		}
		lines = append(lines, frame.Render(ch.Vertical)+contentStyle.Render(padRight(line, inner))+frame.Render(ch.Vertical))
	}

	// bottom edge with grip
	lines = append(lines, frame.Render(ch.BottomLeft+strings.Repeat(ch.Horizontal, inner)+ch.Grip))
	return strings.Join(lines, "\n")
}

func (m *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if m.ShowHelp {
		layers = append(layers, lipgloss.NewLayer(m.RenderHelpMenu(m.Width, m.Height)).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help"))
	}
	if m.ShowLogs {
		layers = append(layers, lipgloss.NewLayer(m.renderLogViewer()).
			X(0).Y(0).Z(config.ZIndexLogs).ID("logs"))
	}
	return append(layers, m.renderNotifications()...)
}

func (m *Desktop) renderLogViewer() string {
	logsPerPage := m.logsPerPage()
	maxScroll := m.maxLogScroll()
	m.LogScrollOffset = min(max(m.LogScrollOffset, 0), maxScroll)

	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render(fmt.Sprintf("System Logs (%d)", len(m.LogMessages)))

	logLines := []string{logTitle, ""}

	start := m.LogScrollOffset
	shown := 0
	for i := start; i < len(m.LogMessages) && shown < logsPerPage; i++ {
		msg := m.LogMessages[i]

		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		logLines = append(logLines, fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, msg.Message))
		shown++
	}

	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if maxScroll > 0 {
		logLines = append(logLines, "", hint.Render(fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			start+1, start+shown, len(m.LogMessages))))
	}
	logLines = append(logLines, "", hint.Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll"))

	width := min(80, max(m.Width-4, 20))
	logBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2).
		Width(width).
		Background(theme.LogViewerBg()).
		Render(strings.Join(logLines, "\n"))

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, logBox)
}

func (m *Desktop) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	maxWidth := min(max(m.Width-8, 20), 60)
	y := config.MenuBarHeight + 1
	for _, notif := range m.Notifications {
		border := theme.NotificationInfo()
		icon := "ℹ"
		switch notif.Type {
		case "error":
			border, icon = theme.NotificationError(), "✕"
		case "warning":
			border, icon = theme.NotificationWarning(), "⚠"
		case "success":
			border, icon = theme.NotificationSuccess(), "✓"
		}
		if config.UseASCIIOnly {
			icon = "!"
		}

		message := ansi.Truncate(notif.Message, maxWidth-8, "...")
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Background(theme.NotificationBg()).
			Foreground(theme.NotificationFg()).
			Padding(0, 1).
			Render(fmt.Sprintf("%s  %s", icon, message))

		x := max(m.Width-lipgloss.Width(box)-2, 0)
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(config.ZIndexNotifications).
			ID("notif-"+notif.ID))
		y += lipgloss.Height(box)
	}
	return layers
}
