package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/sysinfo"
)

// TextPane is a heading followed by wrapped paragraphs.
type TextPane struct {
	id, title  string
	Heading    string
	Paragraphs []string
}

// NewTextPane returns a text pane.
func NewTextPane(id, title, heading string, paragraphs ...string) *TextPane {
	return &TextPane{id: id, title: title, Heading: heading, Paragraphs: paragraphs}
}

// ID implements Pane.
func (p *TextPane) ID() string { return p.id }

// Title implements Pane.
func (p *TextPane) Title() string { return p.title }

// Render implements Pane.
func (p *TextPane) Render(width, height int) string {
	lines := []string{p.Heading, rule(width), ""}
	lines = append(lines, wrap(width, p.Paragraphs...)...)
	return fit(lines, width, height)
}

// PortfolioPane lists projects like a Finder folder in list view.
type PortfolioPane struct {
	Projects []Project
}

const (
	portfolioHeaderRows = 3 // item count, column header, rule
	dateColumn          = 27
	sizeColumn          = 7
	kindColumn          = 6
)

// ID implements Pane.
func (p *PortfolioPane) ID() string { return PortfolioID }

// Title implements Pane.
func (p *PortfolioPane) Title() string { return "Portfolio" }

// Render implements Pane.
func (p *PortfolioPane) Render(width, height int) string {
	showDate := width >= 60
	nameWidth := width - sizeColumn - kindColumn - 2
	if showDate {
		nameWidth -= dateColumn + 1
	}
	nameWidth = max(nameWidth, 4)

	row := func(name, date, size, kind string) string {
		cols := []string{pad(name, nameWidth)}
		if showDate {
			cols = append(cols, pad(date, dateColumn))
		}
		cols = append(cols, pad(size, sizeColumn), pad(kind, kindColumn))
		return strings.Join(cols, " ")
	}

	lines := []string{
		itemCount(len(p.Projects)),
		row("Name", "Date Modified", "Size", "Kind"),
		rule(width),
	}
	for _, pr := range p.Projects {
		lines = append(lines, row(pr.Name, pr.DateModified, pr.Size, pr.Kind))
	}
	return fit(lines, width, height)
}

// Activate implements Activator.
func (p *PortfolioPane) Activate(row int) Activation {
	i := row - portfolioHeaderRows
	if i < 0 || i >= len(p.Projects) {
		return Activation{}
	}
	pr := p.Projects[i]
	switch {
	case pr.Window != "":
		return Activation{Window: pr.Window}
	case pr.Link != "" && pr.Link != "#":
		return Activation{Link: pr.Link}
	}
	return Activation{}
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}

// ResumePane offers the resume document.
type ResumePane struct {
	Owner string
	URL   string
}

// ResumeButton is the label of the row that opens the document.
const ResumeButton = "[ Open in New Tab ↗ ]"

// ID implements Pane.
func (p *ResumePane) ID() string { return ResumeID }

// Title implements Pane.
func (p *ResumePane) Title() string { return "Resume" }

// Render implements Pane.
func (p *ResumePane) Render(width, height int) string {
	button := ResumeButton
	if w := ansi.StringWidth(button); w < width {
		button = strings.Repeat(" ", width-w) + button
	}
	lines := []string{button, rule(width), ""}
	lines = append(lines, wrap(width,
		fmt.Sprintf("Resume of %s.", p.Owner),
		"The document opens in your browser. Click the button above to open it.",
		p.URL,
	)...)
	return fit(lines, width, height)
}

// Activate implements Activator.
func (p *ResumePane) Activate(row int) Activation {
	if row == 0 && p.URL != "" {
		return Activation{Link: p.URL}
	}
	return Activation{}
}

// SystemStatus is what the system pane shows.
type SystemStatus struct {
	Info     sysinfo.Info
	CPUGraph string
	Ready    bool
}

// InfoSource returns the latest system status.
type InfoSource func() SystemStatus

// SystemPane is the About This Computer window.
type SystemPane struct {
	Source InfoSource
}

// ID implements Pane.
func (p *SystemPane) ID() string { return SystemID }

// Title implements Pane.
func (p *SystemPane) Title() string { return "About This Computer" }

// Render implements Pane.
func (p *SystemPane) Render(width, height int) string {
	var st SystemStatus
	if p.Source != nil {
		st = p.Source()
	}
	lines := []string{"deskfolio", rule(width)}
	if !st.Ready {
		return fit(append(lines, "Collecting…"), width, height)
	}

	info := st.Info
	fields := [][2]string{
		{"Computer", orUnknown(info.Hostname)},
		{"System", orUnknown(info.Platform)},
		{"Kernel", orUnknown(info.Kernel)},
		{"Arch", orUnknown(info.Arch)},
		{"Processor", orUnknown(info.CPUModel)},
		{"Cores", coresString(info.Cores)},
		{"Memory", info.Memory()},
		{"CPU", st.CPUGraph},
		{"Uptime", info.UptimeString()},
	}
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%-10s %s", f[0]+":", f[1]))
	}
	return fit(lines, width, height)
}

func orUnknown(s string) string {
	if s == "" {
		return sysinfo.Unknown
	}
	return s
}

func coresString(n int) string {
	if n <= 0 {
		return sysinfo.Unknown
	}
	return fmt.Sprintf("%d", n)
}
