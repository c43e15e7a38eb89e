package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
)

func newStateCommand() *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect the saved desktop layout",
		Long: `Inspect or clear the saved desktop layout

Each profile keeps its open windows and window geometry in a JSON file under
$XDG_STATE_HOME/deskfolio.`,
	}

	var asJSON bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved layout",
		Long: `Print the saved layout of a profile

A table is printed on a terminal and JSON otherwise, so the output can be
piped to other tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profileStore()
			if err != nil {
				return err
			}
			view := loadStateView(store)
			if asJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
				return writeStateJSON(os.Stdout, view)
			}
			fmt.Print(renderStateTable(view))
			return nil
		},
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON even on a terminal")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profileStore()
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Printf("Layout of profile %q cleared\n", profileOrDefault())
			return nil
		},
	}

	stateCmd.AddCommand(showCmd, resetCmd)
	return stateCmd
}

// profileOrDefault resolves --profile, then the config file, then "default".
func profileOrDefault() string {
	if profileName != "" {
		return profileName
	}
	if cfg, err := config.LoadUserConfig(); err == nil && cfg.Storage.Profile != "" {
		return cfg.Storage.Profile
	}
	return "default"
}

func profileStore() (*storage.FileStore, error) {
	store, err := storage.OpenProfile(profileOrDefault())
	if err != nil {
		return nil, fmt.Errorf("could not open profile: %w", err)
	}
	return store, nil
}

// stateView is the decoded layout of one profile.
type stateView struct {
	Path        string                       `json:"path,omitempty"`
	OpenWindows []string                     `json:"openWindows"`
	Positions   map[string]storage.Placement `json:"windowPositions"`
}

type pathStore interface {
	storage.Store
	Path() string
}

func loadStateView(store storage.Store) stateView {
	layout := storage.Layout{Store: store}
	view := stateView{
		OpenWindows: layout.OpenWindows(nil),
		Positions:   layout.Placements(),
	}
	if ps, ok := store.(pathStore); ok {
		view.Path = ps.Path()
	}
	if view.OpenWindows == nil {
		view.OpenWindows = []string{}
	}
	return view
}

func writeStateJSON(w io.Writer, view stateView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return nil
}

// renderStateTable lists every window that is open or has saved geometry.
func renderStateTable(view stateView) string {
	ids := slices.Clone(view.OpenWindows)
	for id := range view.Positions {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	// Open windows first in stacking order, then the rest by name.
	rest := ids[len(view.OpenWindows):]
	slices.Sort(rest)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		open := ""
		if slices.Contains(view.OpenWindows, id) {
			open = "yes"
		}
		pos, size := "", ""
		if p, ok := view.Positions[id]; ok {
			pos = fmt.Sprintf("%d,%d", p.X, p.Y)
			if p.HasSize() {
				size = fmt.Sprintf("%dx%d", p.Width, p.Height)
			}
		}
		rows = append(rows, []string{id, open, pos, size})
	}

	var sb strings.Builder
	if view.Path != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(view.Path))
		sb.WriteString("\n")
	}
	if len(rows) == 0 {
		sb.WriteString("No saved layout.\n")
		return sb.String()
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Window", "Open", "Position", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	return sb.String()
}
