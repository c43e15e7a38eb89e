package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
	"github.com/Gaurav-Gosain/deskfolio/internal/sysinfo"
)

var _ desktop.Registry = (*Registry)(nil)

func TestSiteRegistry(t *testing.T) {
	reg := DefaultSite().Registry(nil)

	want := []string{PortfolioID, AboutID, PersonalWebsiteID, ResumeID, SystemID}
	got := reg.IDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("IDs = %v, want %v", got, want)
	}

	e, ok := reg.Lookup(AboutID)
	if !ok || e.Title != "About" {
		t.Errorf("Lookup(about) = %+v, %v", e, ok)
	}
	if _, ok := reg.Lookup("blog"); ok {
		t.Error("Lookup accepted an unknown id")
	}
}

func TestIconsTargetKnownWindows(t *testing.T) {
	site := DefaultSite()
	reg := site.Registry(nil)

	for _, ic := range site.Icons() {
		if ic.Target.Window == "" && ic.Target.Link == "" {
			t.Errorf("icon %s has no target", ic.ID)
		}
		if ic.Target.Window != "" {
			if _, ok := reg.Lookup(ic.Target.Window); !ok {
				t.Errorf("icon %s opens unknown window %q", ic.ID, ic.Target.Window)
			}
		}
	}
}

func TestRegisterReplaces(t *testing.T) {
	reg := NewRegistry(NewTextPane("about", "About", "A"))
	reg.Register(NewTextPane("about", "About Me", "B"))

	if len(reg.IDs()) != 1 {
		t.Fatalf("IDs = %v", reg.IDs())
	}
	if e, _ := reg.Lookup("about"); e.Title != "About Me" {
		t.Errorf("title = %q", e.Title)
	}
}

func TestPortfolioActivate(t *testing.T) {
	reg := DefaultSite().Registry(nil)

	tests := []struct {
		name string
		row  int
		want Activation
	}{
		{name: "item count row", row: 0},
		{name: "header row", row: 1},
		{name: "rule", row: 2},
		{name: "personal website", row: 3, want: Activation{Window: PersonalWebsiteID}},
		{name: "project linked to a window", row: 4, want: Activation{Window: PersonalWebsiteID}},
		{name: "placeholder link", row: 5},
		{name: "past the end", row: 40},
		{name: "negative", row: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Activate(PortfolioID, tt.row); got != tt.want {
				t.Errorf("Activate(%d) = %+v, want %+v", tt.row, got, tt.want)
			}
		})
	}
}

func TestPortfolioLinkActivation(t *testing.T) {
	p := &PortfolioPane{Projects: []Project{{Name: "x", Link: "https://example.com"}}}
	if got := p.Activate(portfolioHeaderRows); got.Link != "https://example.com" {
		t.Errorf("Activate = %+v", got)
	}
}

func TestResumeActivate(t *testing.T) {
	reg := DefaultSite().Registry(nil)
	if got := reg.Activate(ResumeID, 0); got.Link == "" {
		t.Error("resume button did not activate the link")
	}
	if got := reg.Activate(ResumeID, 3); got != (Activation{}) {
		t.Errorf("body row activated %+v", got)
	}
	if got := reg.Activate(AboutID, 0); got != (Activation{}) {
		t.Errorf("text pane activated %+v", got)
	}
}

func TestRenderFitsBox(t *testing.T) {
	reg := DefaultSite().Registry(func() SystemStatus {
		return SystemStatus{Ready: true, Info: sysinfo.Info{Hostname: "box", MemoryTotal: 1 << 30}}
	})

	sizes := []desktop.Size{{Width: 28, Height: 6}, {Width: 58, Height: 14}, {Width: 90, Height: 30}}
	for _, id := range reg.IDs() {
		pane, _ := reg.Pane(id)
		for _, size := range sizes {
			out := pane.Render(size.Width, size.Height)
			lines := strings.Split(out, "\n")
			if len(lines) > size.Height {
				t.Errorf("%s at %v: %d lines", id, size, len(lines))
			}
			for _, l := range lines {
				if w := ansi.StringWidth(l); w > size.Width {
					t.Errorf("%s at %v: line %q is %d wide", id, size, l, w)
				}
			}
		}
	}
}

func TestRenderEmptyBox(t *testing.T) {
	p := NewTextPane("about", "About", "About Me", "text")
	if got := p.Render(0, 10); got != "" {
		t.Errorf("Render(0, 10) = %q", got)
	}
}

func TestPortfolioColumns(t *testing.T) {
	p := &PortfolioPane{Projects: DefaultSite().Projects}

	wide := p.Render(80, 20)
	if !strings.Contains(wide, "Date Modified") {
		t.Error("wide render dropped the date column")
	}
	narrow := p.Render(40, 20)
	if strings.Contains(narrow, "Date Modified") {
		t.Error("narrow render kept the date column")
	}
	if !strings.Contains(narrow, "6 items") {
		t.Errorf("narrow render missing item count:\n%s", narrow)
	}
}

func TestSystemPaneStates(t *testing.T) {
	p := &SystemPane{}
	if !strings.Contains(p.Render(40, 10), "Collecting") {
		t.Error("system pane without a source should show progress")
	}

	p.Source = func() SystemStatus {
		return SystemStatus{Ready: true, Info: sysinfo.Info{Hostname: "box"}, CPUGraph: "▁▂ 12%"}
	}
	out := p.Render(60, 20)
	for _, want := range []string{"box", "12%", "Memory:    unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
