package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if v, err := s.Get("k"); err != nil || v != "v" {
		t.Errorf("Get(k) = %q, %v", v, err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Error("Delete did not remove the key")
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "default.json")

	s := NewFileStore(path)
	if err := s.Set(OpenWindowsKey, `["about"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened := NewFileStore(path)
	v, err := reopened.Get(OpenWindowsKey)
	if err != nil || v != `["about"]` {
		t.Errorf("Get after reopen = %q, %v", v, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("state directory holds %d files, want only the state file", len(entries))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	if _, err := s.Get(OpenWindowsKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on corrupt file err = %v, want ErrNotFound", err)
	}
	if err := s.Set(OpenWindowsKey, `[]`); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	snap, err := NewFileStore(path).Snapshot()
	if err != nil || snap[OpenWindowsKey] != `[]` {
		t.Errorf("Snapshot = %v, %v", snap, err)
	}
}

func TestFileStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json")
	s := NewFileStore(path)
	s.Set("k", "v")

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Reset left the file behind")
	}
	if err := s.Reset(); err != nil {
		t.Errorf("second Reset: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Error("Reset kept values in memory")
	}
}

func TestLayoutOpenWindows(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		set   bool
		known func(string) bool
		want  []string
	}{
		{name: "absent", want: nil},
		{name: "valid", raw: `["about","portfolio"]`, set: true, want: []string{"about", "portfolio"}},
		{name: "malformed", raw: `["about"`, set: true, want: nil},
		{name: "object", raw: `{"about":1}`, set: true, want: nil},
		{name: "null", raw: `null`, set: true, want: []string{}},
		{name: "duplicates and junk", raw: `["about",1,"about",{},"resume"]`, set: true, want: []string{"about", "resume"}},
		{
			name:  "filtered by registry",
			raw:   `["about","blog"]`,
			set:   true,
			known: func(id string) bool { return id != "blog" },
			want:  []string{"about"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			if tt.set {
				s.Set(OpenWindowsKey, tt.raw)
			}
			got := Layout{Store: s}.OpenWindows(tt.known)
			if len(got) != len(tt.want) {
				t.Fatalf("OpenWindows = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("OpenWindows = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLayoutPlacements(t *testing.T) {
	s := NewMemoryStore()
	s.Set(WindowPositionsKey, `{"about":{"x":1,"y":2},"portfolio":{"x":3,"y":4,"width":50,"height":12},"bad":"x","nil":null,"arr":[1]}`)

	got := Layout{Store: s}.Placements()
	if len(got) != 2 {
		t.Fatalf("Placements = %v, want two entries", got)
	}
	if p := got["about"]; p != (Placement{X: 1, Y: 2}) || p.HasSize() {
		t.Errorf("about = %+v", p)
	}
	if p := got["portfolio"]; !p.HasSize() || p.Width != 50 {
		t.Errorf("portfolio = %+v", p)
	}

	s.Set(WindowPositionsKey, `[1,2,3]`)
	if got := (Layout{Store: s}).Placements(); len(got) != 0 {
		t.Errorf("wrong shape gave %v", got)
	}
}

func TestLayoutNilStore(t *testing.T) {
	var l Layout
	if l.OpenWindows(nil) != nil || len(l.Placements()) != 0 {
		t.Error("nil store returned state")
	}
	if err := l.SaveOpenWindows([]string{"a"}); err != nil {
		t.Error(err)
	}
}

func TestSaveOpenWindowsEmpty(t *testing.T) {
	s := NewMemoryStore()
	l := Layout{Store: s}
	if err := l.SaveOpenWindows(nil); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Get(OpenWindowsKey); v != "[]" {
		t.Errorf("saved %q, want []", v)
	}
}
