// Package config loads the deskfolio configuration file and holds the
// process-wide tunables derived from it.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

// UserConfig is the contents of config.toml.
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Desktop     DesktopConfig     `toml:"desktop"`
	Storage     StorageConfig     `toml:"storage"`
	History     HistoryConfig     `toml:"history"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig controls rendering.
type AppearanceConfig struct {
	Theme        string `toml:"theme" comment:"bubbletint theme id; empty uses the platinum palette"`
	ASCIIOnly    bool   `toml:"ascii_only"`
	NoAnimations bool   `toml:"no_animations"`
	HideClock    bool   `toml:"hide_clock"`
}

// DesktopConfig holds the window manager geometry, in cells.
type DesktopConfig struct {
	MinWidth       int `toml:"min_width"`
	MinHeight      int `toml:"min_height"`
	DefaultWidth   int `toml:"default_width"`
	DefaultHeight  int `toml:"default_height"`
	VerticalOffset int `toml:"vertical_offset" comment:"rows above center for new windows"`
	ClickThreshold int `toml:"click_threshold" comment:"pointer travel (|dx|+|dy|) below which a release is a click"`
	ZIndexBase     int `toml:"z_index_base"`
	IconWidth      int `toml:"icon_width"`
	IconMargin     int `toml:"icon_margin"`
	IconTop        int `toml:"icon_top"`
	IconSpacing    int `toml:"icon_spacing"`
}

// StorageConfig selects where the layout is persisted.
type StorageConfig struct {
	Profile   string `toml:"profile"`
	Ephemeral bool   `toml:"ephemeral" comment:"keep the layout in memory only"`
}

// HistoryConfig bounds navigation history.
type HistoryConfig struct {
	Limit int `toml:"limit"`
}

// KeybindingsConfig maps actions to keys, grouped like the help overlay.
type KeybindingsConfig struct {
	Windows    map[string][]string `toml:"windows"`
	Navigation map[string][]string `toml:"navigation"`
	System     map[string][]string `toml:"system"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{},
		Desktop: DesktopConfig{
			MinWidth:       30,
			MinHeight:      8,
			DefaultWidth:   60,
			DefaultHeight:  16,
			VerticalOffset: 4,
			ClickThreshold: desktop.DefaultClickThreshold,
			ZIndexBase:     50,
			IconWidth:      10,
			IconMargin:     2,
			IconTop:        1,
			IconSpacing:    4,
		},
		Storage: StorageConfig{Profile: "default"},
		History: HistoryConfig{Limit: 100},
		Keybindings: KeybindingsConfig{
			Windows: map[string][]string{
				"open_portfolio": {"1"},
				"open_about":     {"2"},
				"open_resume":    {"3"},
				"open_system":    {"4"},
				"close_window":   {"x", "ctrl+w"},
				"next_window":    {"tab"},
			},
			Navigation: map[string][]string{
				"history_back":    {"alt+left", "backspace", "b"},
				"history_forward": {"alt+right", "f"},
				"cancel_gesture":  {"esc"},
			},
			System: map[string][]string{
				"toggle_help": {"?"},
				"toggle_logs": {"ctrl+l"},
				"quit":        {"q", "ctrl+c"},
			},
		},
	}
}

// Options converts the desktop section to window manager options.
func (c DesktopConfig) Options() desktop.Options {
	return desktop.Options{
		Limits:         desktop.Limits{MinWidth: c.MinWidth, MinHeight: c.MinHeight},
		DefaultSize:    desktop.Size{Width: c.DefaultWidth, Height: c.DefaultHeight},
		MenuBarHeight:  MenuBarHeight,
		VerticalOffset: c.VerticalOffset,
		ClickThreshold: c.ClickThreshold,
		ZIndexBase:     c.ZIndexBase,
		Icons: desktop.IconLayout{
			Width:   c.IconWidth,
			Height:  IconHeight,
			Margin:  c.IconMargin,
			Top:     c.IconTop,
			Spacing: c.IconSpacing,
		},
	}
}

// GetConfigPath returns $XDG_CONFIG_HOME/deskfolio/config.toml.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("deskfolio", "config.toml"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the user's config file, creating it with defaults when
// it does not exist.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return LoadConfigFile(path)
}

// LoadConfigFile reads and validates a config file. Fields missing from the
// file take their default values.
func LoadConfigFile(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := &UserConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	fillDefaults(cfg)
	Validate(cfg)
	return cfg, nil
}

// SaveConfig writes cfg to path with a short header.
func SaveConfig(cfg *UserConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# deskfolio configuration\n")
	sb.WriteString("# Keys are listed per action; several keys may share an action.\n")
	sb.WriteString("# Location: " + path + "\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fillDefaults(cfg *UserConfig) {
	def := DefaultConfig()
	d, dd := &cfg.Desktop, def.Desktop
	for _, f := range []struct {
		v   *int
		def int
	}{
		{&d.MinWidth, dd.MinWidth},
		{&d.MinHeight, dd.MinHeight},
		{&d.DefaultWidth, dd.DefaultWidth},
		{&d.DefaultHeight, dd.DefaultHeight},
		{&d.VerticalOffset, dd.VerticalOffset},
		{&d.ClickThreshold, dd.ClickThreshold},
		{&d.ZIndexBase, dd.ZIndexBase},
		{&d.IconWidth, dd.IconWidth},
		{&d.IconMargin, dd.IconMargin},
		{&d.IconTop, dd.IconTop},
		{&d.IconSpacing, dd.IconSpacing},
	} {
		if *f.v == 0 {
			*f.v = f.def
		}
	}
	if cfg.Storage.Profile == "" {
		cfg.Storage.Profile = def.Storage.Profile
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = def.History.Limit
	}

	kb, dk := &cfg.Keybindings, def.Keybindings
	kb.Windows = mergeBindings(kb.Windows, dk.Windows)
	kb.Navigation = mergeBindings(kb.Navigation, dk.Navigation)
	kb.System = mergeBindings(kb.System, dk.System)
}

// mergeBindings adds default actions missing from user. An action the user
// bound to an empty list stays unbound.
func mergeBindings(user, defaults map[string][]string) map[string][]string {
	if user == nil {
		user = make(map[string][]string, len(defaults))
	}
	for action, keys := range defaults {
		if _, ok := user[action]; !ok {
			user[action] = keys
		}
	}
	return user
}

// Validate clamps out-of-range values in place and returns a description of
// every change. Unknown actions and invalid keys are reported and dropped.
func Validate(cfg *UserConfig) []string {
	var warnings []string
	clamp := func(name string, v *int, lo int) {
		if *v < lo {
			warnings = append(warnings, fmt.Sprintf("desktop.%s = %d is below %d; using %d", name, *v, lo, lo))
			*v = lo
		}
	}

	d := &cfg.Desktop
	clamp("min_width", &d.MinWidth, 10)
	clamp("min_height", &d.MinHeight, 4)
	clamp("default_width", &d.DefaultWidth, d.MinWidth)
	clamp("default_height", &d.DefaultHeight, d.MinHeight)
	clamp("vertical_offset", &d.VerticalOffset, 0)
	clamp("click_threshold", &d.ClickThreshold, 1)
	clamp("icon_width", &d.IconWidth, 4)
	clamp("icon_margin", &d.IconMargin, 0)
	clamp("icon_top", &d.IconTop, 0)
	clamp("icon_spacing", &d.IconSpacing, IconHeight)

	if cfg.History.Limit < 2 {
		warnings = append(warnings, fmt.Sprintf("history.limit = %d is below 2; using 2", cfg.History.Limit))
		cfg.History.Limit = 2
	}

	normalizer := NewKeyNormalizer()
	for _, group := range []map[string][]string{
		cfg.Keybindings.Windows, cfg.Keybindings.Navigation, cfg.Keybindings.System,
	} {
		for action, keys := range group {
			if _, ok := ActionDescriptions[action]; !ok {
				warnings = append(warnings, fmt.Sprintf("unknown action %q ignored", action))
				delete(group, action)
				continue
			}
			valid := keys[:0]
			for _, k := range keys {
				if ok, reason := normalizer.ValidateKey(k); !ok {
					warnings = append(warnings, fmt.Sprintf("%s: key %q ignored: %s", action, k, reason))
					continue
				}
				valid = append(valid, k)
			}
			group[action] = valid
		}
	}
	return warnings
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	ASCIIOnly    bool
	NoAnimations bool
	ThemeName    string
	Profile      string
	Ephemeral    bool
}

// ApplyOverrides applies CLI flags to cfg (which may be nil) and to the
// process-wide settings.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	if cfg != nil {
		if o.ASCIIOnly {
			cfg.Appearance.ASCIIOnly = true
		}
		if o.NoAnimations {
			cfg.Appearance.NoAnimations = true
		}
		if o.ThemeName != "" {
			cfg.Appearance.Theme = o.ThemeName
		}
		if o.Profile != "" {
			cfg.Storage.Profile = o.Profile
		}
		if o.Ephemeral {
			cfg.Storage.Ephemeral = true
		}
		UseASCIIOnly = cfg.Appearance.ASCIIOnly
		AnimationsEnabled = !cfg.Appearance.NoAnimations
		return
	}
	if o.ASCIIOnly {
		UseASCIIOnly = true
	}
	if o.NoAnimations {
		AnimationsEnabled = false
	}
}

// Watch calls fn with the reloaded config each time the file at path is
// written, until ctx is done. Files that fail to parse are reported to
// onError and otherwise ignored.
func Watch(ctx context.Context, path string, fn func(*UserConfig), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	if onError == nil {
		onError = func(error) {}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfigFile(path)
				if err != nil {
					onError(err)
					continue
				}
				fn(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				onError(err)
			}
		}
	}()
	return nil
}
