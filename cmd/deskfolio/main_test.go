package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/deskfolio/internal/config"
	"github.com/Gaurav-Gosain/deskfolio/internal/storage"
)

// =============================================================================
// state show
// =============================================================================

func savedLayout(t *testing.T) storage.Store {
	t.Helper()
	store := storage.NewMemoryStore()
	layout := storage.Layout{Store: store}
	if err := layout.SaveOpenWindows([]string{"about", "portfolio"}); err != nil {
		t.Fatal(err)
	}
	err := layout.SavePlacements(map[string]storage.Placement{
		"about":  {X: 4, Y: 2},
		"resume": {X: 10, Y: 3, Width: 70, Height: 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestStateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeStateJSON(&buf, loadStateView(savedLayout(t))); err != nil {
		t.Fatal(err)
	}

	var got stateView
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if strings.Join(got.OpenWindows, ",") != "about,portfolio" {
		t.Errorf("openWindows = %v", got.OpenWindows)
	}
	if got.Positions["resume"].Width != 70 {
		t.Errorf("windowPositions = %+v", got.Positions)
	}
}

func TestStateJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeStateJSON(&buf, loadStateView(storage.NewMemoryStore())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"openWindows": []`) {
		t.Errorf("empty layout should list no windows, got:\n%s", buf.String())
	}
}

func TestStateTable(t *testing.T) {
	out := ansi.Strip(renderStateTable(loadStateView(savedLayout(t))))

	for _, want := range []string{"Window", "about", "portfolio", "resume", "4,2", "70x20"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	// Open windows come first, in stacking order.
	if strings.Index(out, "about") > strings.Index(out, "portfolio") ||
		strings.Index(out, "portfolio") > strings.Index(out, "resume") {
		t.Errorf("unexpected row order:\n%s", out)
	}
}

func TestStateTableEmpty(t *testing.T) {
	out := renderStateTable(loadStateView(storage.NewMemoryStore()))
	if !strings.Contains(out, "No saved layout") {
		t.Errorf("got %q", out)
	}
}

func TestStateViewPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	view := loadStateView(storage.NewFileStore(path))
	if view.Path != path {
		t.Errorf("Path = %q, want %q", view.Path, path)
	}
}

// =============================================================================
// keybinds list
// =============================================================================

func TestRenderKeybindings(t *testing.T) {
	out := ansi.Strip(renderKeybindings(config.NewKeybindRegistry(config.DefaultConfig())))
	for _, want := range []string{"WINDOWS", "NAVIGATION", "Close window", "Back", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

// =============================================================================
// tape
// =============================================================================

func TestReadTape(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.tape")
	if err := os.WriteFile(good, []byte("Viewport 120 40\nOpen about\nExpectOpen about\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmds, err := readTape(good)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 3 {
		t.Errorf("got %d commands", len(cmds))
	}

	bad := filepath.Join(dir, "bad.tape")
	if err := os.WriteFile(bad, []byte("Open\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readTape(bad); err == nil || !strings.Contains(err.Error(), "bad.tape") {
		t.Errorf("readTape(bad) error = %v", err)
	}

	if _, err := readTape(filepath.Join(dir, "missing.tape")); err == nil {
		t.Error("missing file accepted")
	}
}
