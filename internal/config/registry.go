package config

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// ActionDescriptions documents every bindable action.
var ActionDescriptions = map[string]string{
	"open_portfolio":  "Open the portfolio folder",
	"open_about":      "Open About",
	"open_resume":     "Open the resume",
	"open_system":     "Open About This Computer",
	"close_window":    "Close the focused window",
	"next_window":     "Focus the next window",
	"history_back":    "Go back",
	"history_forward": "Go forward",
	"cancel_gesture":  "Cancel the current drag or resize",
	"toggle_help":     "Toggle help",
	"toggle_logs":     "Toggle log viewer",
	"quit":            "Quit",
}

// OpenActions maps the open_* actions to the window they open.
var OpenActions = map[string]string{
	"open_portfolio": "portfolio",
	"open_about":     "about",
	"open_resume":    "resume",
	"open_system":    "system",
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	keys       map[string][]string
	actions    map[string]string
	normalizer *KeyNormalizer
}

// NewKeybindRegistry indexes the bindings of cfg. When two actions share a
// key the first one in sorted action order wins.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keys:       make(map[string][]string),
		actions:    make(map[string]string),
		normalizer: NewKeyNormalizer(),
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, group := range []map[string][]string{
		cfg.Keybindings.Windows, cfg.Keybindings.Navigation, cfg.Keybindings.System,
	} {
		for action, keys := range group {
			r.keys[action] = append(r.keys[action], keys...)
		}
	}
	for _, action := range slices.Sorted(maps.Keys(r.keys)) {
		for _, k := range r.keys[action] {
			for _, variant := range r.normalizer.NormalizeKey(k) {
				if _, taken := r.actions[variant]; !taken {
					r.actions[variant] = action
				}
			}
		}
	}
	return r
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.keys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	if a, ok := r.actions[key]; ok {
		return a
	}
	for _, variant := range r.normalizer.NormalizeKey(key) {
		if a, ok := r.actions[variant]; ok {
			return a
		}
	}
	return ""
}

// GetKeysForDisplay returns the keys of action formatted for the help
// overlay, e.g. "Alt+←, b".
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.GetKeys(action)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = displayKey(k)
	}
	return strings.Join(out, ", ")
}

var displayNames = map[string]string{
	"left":      "←",
	"right":     "→",
	"up":        "↑",
	"down":      "↓",
	"esc":       "Esc",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"space":     "Space",
	"ctrl":      "Ctrl",
	"alt":       "Alt",
	"shift":     "Shift",
	"super":     "Super",
}

func displayKey(k string) string {
	parts := strings.Split(k, "+")
	for i, p := range parts {
		if name, ok := displayNames[strings.ToLower(p)]; ok {
			parts[i] = name
		} else if i > 0 && utf8.RuneCountInString(p) == 1 {
			parts[i] = strings.ToUpper(p)
		}
	}
	return strings.Join(parts, "+")
}

// KeyNormalizer maps user-written key names to the forms the terminal
// reports.
type KeyNormalizer struct {
	modifiers map[string]bool
	named     map[string]bool
	aliases   map[string]string
}

// NewKeyNormalizer returns a normalizer with the standard key names.
func NewKeyNormalizer() *KeyNormalizer {
	named := []string{
		"enter", "return", "esc", "escape", "tab", "backspace", "delete", "space",
		"up", "down", "left", "right", "home", "end", "pgup", "pgdown", "insert",
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
	}
	n := &KeyNormalizer{
		modifiers: map[string]bool{"ctrl": true, "alt": true, "shift": true, "super": true, "meta": true, "hyper": true},
		named:     make(map[string]bool, len(named)),
		aliases: map[string]string{
			"return": "enter",
			"enter":  "return",
			"escape": "esc",
			"esc":    "escape",
			"space":  " ",
			" ":      "space",
		},
	}
	for _, k := range named {
		n.named[k] = true
	}
	return n
}

// NormalizeKey returns key in canonical form followed by its aliases.
// Modifiers and named keys are lowercased; a bare printable character keeps
// its case, since "G" and "g" are distinct keys.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	if key == "" {
		return nil
	}
	mods, base := splitKey(key)
	for i, m := range mods {
		mods[i] = strings.ToLower(m)
	}
	if len(mods) > 0 || utf8.RuneCountInString(base) > 1 {
		base = strings.ToLower(base)
	}

	join := func(base string) string {
		return strings.Join(append(slices.Clone(mods), base), "+")
	}
	out := []string{join(base)}
	if alias, ok := n.aliases[base]; ok {
		out = append(out, join(alias))
	}
	return out
}

// ValidateKey reports whether key is well formed, and why not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if key == "" {
		return false, "key is empty"
	}
	mods, base := splitKey(key)
	for _, m := range mods {
		if !n.modifiers[strings.ToLower(m)] {
			return false, "unknown modifier " + m
		}
	}
	if base == "" {
		return false, "missing key after modifier"
	}
	if utf8.RuneCountInString(base) > 1 && !n.named[strings.ToLower(base)] {
		return false, "unknown key " + base
	}
	return true, ""
}

// splitKey separates "ctrl+alt+x" into its modifiers and base key. A base
// key of "+" is written as "+" or "ctrl++".
func splitKey(key string) (mods []string, base string) {
	switch {
	case key == "+":
		return nil, "+"
	case strings.HasSuffix(key, "++"):
		return strings.Split(strings.TrimSuffix(key, "++"), "+"), "+"
	}
	parts := strings.Split(key, "+")
	return parts[:len(parts)-1], parts[len(parts)-1]
}
