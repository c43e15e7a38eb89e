package content

import "github.com/Gaurav-Gosain/deskfolio/internal/desktop"

// Window ids.
const (
	AboutID           = "about"
	PortfolioID       = "portfolio"
	PersonalWebsiteID = "personal-website"
	ResumeID          = "resume"
	SystemID          = "system"
)

// Project is one row of the portfolio folder. A project with a Window opens
// that window when clicked; otherwise its Link is followed, and "#" or an
// empty link is inert.
type Project struct {
	Name         string
	DateModified string
	Size         string
	Kind         string
	Link         string
	Window       string
}

// Site is the portfolio owner's content.
type Site struct {
	Owner     string
	Email     string
	About     []string
	Projects  []Project
	ResumeURL string
	GitHub    string
	LinkedIn  string

	PersonalWebsite []string
}

// DefaultSite returns the stock portfolio.
func DefaultSite() Site {
	about := "Hi! My name is Adam, and I am currently studying Computer Science " +
		"and Architecture at Princeton University. I am interested in the future " +
		"of human-computer interaction, design, and the intersection of urban " +
		"design and technology."
	return Site{
		Owner: "Adam",
		Email: "adam@belouad.com",
		About: []string{
			about,
			"Feel free to reach out at adam@belouad.com :)",
		},
		PersonalWebsite: []string{
			about,
			"This site is a desktop you can drag around. Windows remember where " +
				"you left them, and back and forward restore the exact set of " +
				"open windows.",
		},
		Projects: []Project{
			{Name: "Personal Website", DateModified: "Sat, Dec 27, 2025, 2:30 PM", Size: "4.2 MB", Kind: "React", Link: "/portfolio/personal-website/", Window: PersonalWebsiteID},
			{Name: "SporkAI", DateModified: "Fri, Dec 20, 2024, 11:15 AM", Size: "12 MB", Kind: "Swift", Link: "/portfolio/personal-website/", Window: PersonalWebsiteID},
			{Name: "WasteWise", DateModified: "Mon, Nov 18, 2024, 9:00 AM", Size: "68 K", Kind: "Swift", Link: "#"},
			{Name: "Hoagie.IO", DateModified: "Wed, Oct 30, 2024, 4:45 PM", Size: "2.1 MB", Kind: "React", Link: "#"},
			{Name: "Daily Princetonian Projects", DateModified: "Tue, Sep 15, 2024, 1:20 PM", Size: "856 K", Kind: "React", Link: "#"},
			{Name: "Business Today Mobile App", DateModified: "Tue, Sep 15, 2024, 1:20 PM", Size: "856 K", Kind: "Swift", Link: "#"},
		},
		ResumeURL: "https://belouad.com/belouad_adam_resume.pdf",
		GitHub:    "https://github.com/adambelouad",
		LinkedIn:  "https://www.linkedin.com/in/adambelouad",
	}
}

// Icons returns the desktop icons for a site, top to bottom.
func (s Site) Icons() []desktop.IconSpec {
	return []desktop.IconSpec{
		{ID: PortfolioID, Label: "Portfolio", Glyph: "▰▰", Target: desktop.OpenWindow(PortfolioID)},
		{ID: AboutID, Label: "About", Glyph: "▰▰", Target: desktop.OpenWindow(AboutID)},
		{ID: ResumeID, Label: "Resume", Glyph: "▤", Target: desktop.OpenWindow(ResumeID)},
		{ID: "github", Label: "GitHub", Glyph: "◉", Target: desktop.OpenLink(s.GitHub)},
		{ID: "linkedin", Label: "LinkedIn", Glyph: "in", Target: desktop.OpenLink(s.LinkedIn)},
		{ID: SystemID, Label: "This Computer", Glyph: "▣", Target: desktop.OpenWindow(SystemID)},
	}
}

// Registry returns the registry of every pane of the site. info feeds the
// system pane and may be nil.
func (s Site) Registry(info InfoSource) *Registry {
	return NewRegistry(
		&PortfolioPane{Projects: s.Projects},
		NewTextPane(AboutID, "About", "About Me", s.About...),
		NewTextPane(PersonalWebsiteID, "Personal Website", "Personal Website", s.PersonalWebsite...),
		&ResumePane{Owner: s.Owner, URL: s.ResumeURL},
		&SystemPane{Source: info},
	)
}
