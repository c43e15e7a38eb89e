package config

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title     string
	Condition string // empty for always shown, "window" when a window is open
	Bindings  []Keybinding
}

// GetKeybindings returns all keybinding sections for the help overlay.
// If registry is nil, the default bindings are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	windows := KeybindingSection{Title: "WINDOWS"}
	addBinding(&windows, registry, "open_portfolio", "Open Portfolio")
	addBinding(&windows, registry, "open_about", "Open About")
	addBinding(&windows, registry, "open_resume", "Open Resume")
	addBinding(&windows, registry, "open_system", "Open About This Computer")

	focused := KeybindingSection{Title: "FOCUSED WINDOW", Condition: "window"}
	addBinding(&focused, registry, "close_window", "Close window")
	addBinding(&focused, registry, "next_window", "Next window")

	nav := KeybindingSection{Title: "NAVIGATION"}
	addBinding(&nav, registry, "history_back", "Back")
	addBinding(&nav, registry, "history_forward", "Forward")
	addBinding(&nav, registry, "cancel_gesture", "Cancel drag or resize")

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "toggle_help", "Toggle help")
	addBinding(&system, registry, "toggle_logs", "Toggle log viewer")
	addBinding(&system, registry, "quit", "Quit")

	var sections []KeybindingSection
	for _, s := range []KeybindingSection{windows, focused, nav, system} {
		if len(s.Bindings) > 0 {
			sections = append(sections, s)
		}
	}
	return append(sections, getStaticHelpSections()...)
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getStaticHelpSections returns the mouse gestures, which are not
// configurable.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Click icon", "Open window or link"},
				{"Drag icon", "Move icon"},
				{"Drag title bar", "Move window"},
				{"Drag ◢ corner", "Resize window"},
				{"Click [x]", "Close window"},
				{"Click window", "Bring to front"},
			},
		},
	}
}
