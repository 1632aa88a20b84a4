package config

import (
	"fmt"
	"sort"
	"strings"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves pressed keys to configured actions
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
}

// NewKeybindRegistry builds a registry from the merged keybinding config.
// When the same key is bound to several actions the first binding wins.
func NewKeybindRegistry(cfg *KeybindingsConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		keyToAction: make(map[string]string),
		actionKeys:  make(map[string][]string),
	}
	for _, section := range []map[string][]string{
		cfg.WindowManagement,
		cfg.FrameControl,
		cfg.Navigation,
		cfg.System,
	} {
		// Sort actions for deterministic conflict resolution
		actions := make([]string, 0, len(section))
		for action := range section {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			for _, key := range section[action] {
				if key == "" {
					continue
				}
				if _, taken := r.keyToAction[key]; !taken {
					r.keyToAction[key] = action
				}
				r.actionKeys[action] = append(r.actionKeys[action], key)
			}
		}
	}
	return r
}

// ActionForKey returns the action bound to key, if any
func (r *KeybindRegistry) ActionForKey(key string) (string, bool) {
	action, ok := r.keyToAction[key]
	return action, ok
}

// GetKeysForDisplay returns the keys bound to action, formatted for help text
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.actionKeys[action]
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(keys, ", ")
}

// GetKeybindings returns all keybinding sections for the help menu
// If registry is provided, it generates bindings dynamically from user config
// If registry is nil, it falls back to hard-coded defaults
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	// If no registry provided, use static defaults
	if registry == nil {
		return getDefaultKeybindings()
	}

	sections := []KeybindingSection{}

	// Window Management section
	windowMgmt := KeybindingSection{
		Title:    "WINDOW MANAGEMENT",
		Bindings: []Keybinding{},
	}
	addBinding(&windowMgmt, registry, "new_window", "New window")
	addBinding(&windowMgmt, registry, "close_window", "Close window")
	addBinding(&windowMgmt, registry, "minimize_window", "Minimize window")
	addBinding(&windowMgmt, registry, "toggle_maximize", "Maximize / restore window")
	addBinding(&windowMgmt, registry, "restore_all", "Restore all")
	addBinding(&windowMgmt, registry, "next_window", "Next window")
	addBinding(&windowMgmt, registry, "prev_window", "Previous window")
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("select_window_%d", i)
		desc := fmt.Sprintf("Select window %d", i)
		addBinding(&windowMgmt, registry, action, desc)
	}
	if len(windowMgmt.Bindings) > 0 {
		sections = append(sections, windowMgmt)
	}

	// Frame section
	frameCtl := KeybindingSection{
		Title:    "FRAME",
		Bindings: []Keybinding{},
	}
	addBinding(&frameCtl, registry, "toggle_overlay", "Toggle controls overlay")
	addBinding(&frameCtl, registry, "toggle_mirror", "Toggle mirrored layout")
	addBinding(&frameCtl, registry, "swap_button_order", "Swap caption button edges")
	addBinding(&frameCtl, registry, "toggle_system_bar", "Toggle in-frame titlebar")
	addBinding(&frameCtl, registry, "toggle_fullscreen", "Toggle fullscreen")
	addBinding(&frameCtl, registry, "reset_button_state", "Reset caption button states")
	if len(frameCtl.Bindings) > 0 {
		sections = append(sections, frameCtl)
	}

	// Navigation section
	nav := KeybindingSection{
		Title:    "MOVE / RESIZE",
		Bindings: []Keybinding{},
	}
	addBinding(&nav, registry, "move_up", "Move window up")
	addBinding(&nav, registry, "move_down", "Move window down")
	addBinding(&nav, registry, "move_left", "Move window left")
	addBinding(&nav, registry, "move_right", "Move window right")
	addBinding(&nav, registry, "grow_width", "Grow width")
	addBinding(&nav, registry, "shrink_width", "Shrink width")
	addBinding(&nav, registry, "grow_height", "Grow height")
	addBinding(&nav, registry, "shrink_height", "Shrink height")
	if len(nav.Bindings) > 0 {
		sections = append(sections, nav)
	}

	// System section
	system := KeybindingSection{
		Title:    "SYSTEM",
		Bindings: []Keybinding{},
	}
	addBinding(&system, registry, "toggle_help", "Toggle help")
	addBinding(&system, registry, "toggle_logs", "Toggle log viewer")
	addBinding(&system, registry, "quit", "Quit")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	sections = append(sections, getStaticHelpSections()...)
	return sections
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

// getDefaultKeybindings returns the original hard-coded keybindings (used as fallback)
func getDefaultKeybindings() []KeybindingSection {
	sections := []KeybindingSection{
		{
			Title: "WINDOW MANAGEMENT",
			Bindings: []Keybinding{
				{"n", "New window"},
				{"w, x", "Close window"},
				{"m", "Minimize window"},
				{"f", "Maximize / restore window"},
				{"Shift+M", "Restore all"},
				{"Tab", "Next window"},
				{"Shift+Tab", "Previous window"},
				{"1-9", "Select window"},
			},
		},
		{
			Title: "FRAME",
			Bindings: []Keybinding{
				{"o", "Toggle controls overlay"},
				{"r", "Toggle mirrored layout"},
				{"b", "Swap caption button edges"},
				{"s", "Toggle in-frame titlebar"},
				{"Shift+F", "Toggle fullscreen"},
				{"Shift+R", "Reset caption button states"},
			},
		},
		{
			Title: "SYSTEM",
			Bindings: []Keybinding{
				{"?", "Toggle help"},
				{"`", "Toggle log viewer"},
				{"q", "Quit"},
			},
		},
	}
	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// getStaticHelpSections returns help sections that don't need dynamic binding info
// (mouse actions on the frame itself)
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Click titlebar + drag", "Move window"},
				{"Click edge + drag", "Resize window"},
				{"Click buttons", "Minimize / maximize / close"},
				{"Click client area", "Focus window"},
			},
		},
	}
}
