package storage

import (
	"encoding/json"
	"fmt"
)

// Keys used for the desktop layout.
const (
	OpenWindowsKey     = "openWindows"
	WindowPositionsKey = "windowPositions"
)

// Placement is the saved geometry of one window. Width and Height are zero
// when the window was never resized.
type Placement struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// HasSize reports whether a size was saved.
func (p Placement) HasSize() bool {
	return p.Width > 0 && p.Height > 0
}

// Layout reads and writes the desktop keys of a Store. Reads fail open:
// unavailable storage or malformed values yield empty state.
type Layout struct {
	Store Store
}

// OpenWindows returns the saved open-window ids, dropping ids for which
// known returns false. known may be nil.
func (l Layout) OpenWindows(known func(id string) bool) []string {
	if l.Store == nil {
		return nil
	}
	raw, err := l.Store.Get(OpenWindowsKey)
	if err != nil {
		return nil
	}

	var decoded []any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}

	ids := make([]string, 0, len(decoded))
	seen := make(map[string]bool, len(decoded))
	for _, v := range decoded {
		id, ok := v.(string)
		if !ok || seen[id] {
			continue
		}
		if known != nil && !known(id) {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// SaveOpenWindows writes the open-window ids.
func (l Layout) SaveOpenWindows(ids []string) error {
	if l.Store == nil {
		return nil
	}
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode open windows: %w", err)
	}
	return l.Store.Set(OpenWindowsKey, string(data))
}

// Placements returns the saved window geometry. Entries that do not decode
// as objects are skipped.
func (l Layout) Placements() map[string]Placement {
	out := make(map[string]Placement)
	if l.Store == nil {
		return out
	}
	raw, err := l.Store.Get(WindowPositionsKey)
	if err != nil {
		return out
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return out
	}
	for id, msg := range decoded {
		if len(msg) == 0 || msg[0] != '{' {
			continue
		}
		var p Placement
		if err := json.Unmarshal(msg, &p); err != nil {
			continue
		}
		out[id] = p
	}
	return out
}

// SavePlacements writes the whole geometry map.
func (l Layout) SavePlacements(placements map[string]Placement) error {
	if l.Store == nil {
		return nil
	}
	if placements == nil {
		placements = map[string]Placement{}
	}
	data, err := json.Marshal(placements)
	if err != nil {
		return fmt.Errorf("failed to encode window positions: %w", err)
	}
	return l.Store.Set(WindowPositionsKey, string(data))
}
