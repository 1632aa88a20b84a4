package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Frame       FrameConfig       `toml:"frame"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle string `toml:"border_style"` // Border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	HideClock   bool   `toml:"hide_clock"`   // Hide the clock overlay (default: false)
	HideStats   bool   `toml:"hide_stats"`   // Hide the CPU/memory overlay (default: false)
	Theme       string `toml:"theme"`        // Color theme name (e.g., dracula, nord)
}

// FrameConfig holds window frame settings
type FrameConfig struct {
	CustomTitleBar      *bool  `toml:"custom_titlebar"`       // Draw the titlebar and caption buttons in-frame (default: true). Set to false to delegate them to the host.
	ButtonOrderLeading  string `toml:"button_order_leading"`  // Comma-separated caption buttons at the leading titlebar edge (default: empty)
	ButtonOrderTrailing string `toml:"button_order_trailing"` // Comma-separated caption buttons at the trailing titlebar edge (default: minimize,maximize,close)
	ControlsOverlay     bool   `toml:"controls_overlay"`      // Extend window content into the titlebar next to the buttons (default: false)
	OverlayHeight       int    `toml:"overlay_height"`        // Reported controls overlay height; 0 derives it from the button area (default: 0)
	MirrorLayout        bool   `toml:"mirror_layout"`         // Lay frames out right-to-left (default: false)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	LeaderKey        string              `toml:"leader_key"` // Leader key for prefix commands (default: ctrl+b)
	WindowManagement map[string][]string `toml:"window_management"`
	FrameControl     map[string][]string `toml:"frame_control"`
	Navigation       map[string][]string `toml:"navigation"`
	System           map[string][]string `toml:"system"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	cfg := &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
			HideClock:   false,
			HideStats:   false,
		},
		Frame: FrameConfig{
			ButtonOrderLeading:  "",
			ButtonOrderTrailing: "minimize,maximize,close",
			ControlsOverlay:     false,
			OverlayHeight:       0,
			MirrorLayout:        false,
		},
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+b",
			WindowManagement: map[string][]string{
				"new_window":      {"n"},
				"close_window":    {"w", "x"},
				"minimize_window": {"m"},
				"toggle_maximize": {"f"},
				"restore_all":     {"M"},
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
				"select_window_1": {"1"},
				"select_window_2": {"2"},
				"select_window_3": {"3"},
				"select_window_4": {"4"},
				"select_window_5": {"5"},
				"select_window_6": {"6"},
				"select_window_7": {"7"},
				"select_window_8": {"8"},
				"select_window_9": {"9"},
			},
			FrameControl: map[string][]string{
				"toggle_overlay":     {"o"},
				"toggle_mirror":      {"r"},
				"swap_button_order":  {"b"},
				"toggle_system_bar":  {"s"},
				"toggle_fullscreen":  {"F"},
				"reset_button_state": {"R"},
			},
			Navigation: map[string][]string{
				"move_up":       {"up", "k"},
				"move_down":     {"down", "j"},
				"move_left":     {"left", "h"},
				"move_right":    {"right", "l"},
				"grow_width":    {"shift+right", "L"},
				"shrink_width":  {"shift+left", "H"},
				"grow_height":   {"shift+down", "J"},
				"shrink_height": {"shift+up", "K"},
			},
			System: map[string][]string{
				"toggle_help": {"?"},
				"toggle_logs": {"`"},
				"quit":        {"q", "ctrl+c"},
			},
		},
	}
	return cfg
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile("sash/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// Read and parse config file
	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate and fill in missing sections with defaults
	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingFrame(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	// Validate configuration
	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		// Log all errors
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	// Log warnings (non-fatal)
	if validation.HasWarnings() {
		for _, warn := range validation.Warnings {
			tea.Println(fmt.Sprintf("Config warning in [%s]: %s - %s", warn.Field, warn.Key, warn.Message))
		}
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	// Get config file path
	configPath, err := xdg.ConfigFile("sash/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# Sash Configuration File\n")
	sb.WriteString("# This file allows you to customize appearance, frame behavior, and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Documentation: https://github.com/Gaurav-Gosain/sash\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: Window border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii,\n")
	sb.WriteString("#            outer-half-block, inner-half-block\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this.\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# FRAME SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# button_order_leading / button_order_trailing: Caption button placement\n")
	sb.WriteString("#   Comma-separated lists of: minimize, maximize, close\n")
	sb.WriteString("#   A button may appear on one edge only.\n")
	sb.WriteString("#   Default: leading empty, trailing \"minimize,maximize,close\"\n")
	sb.WriteString("#\n")
	sb.WriteString("# controls_overlay: Extend window content into the titlebar\n")
	sb.WriteString("#   The area not covered by caption buttons is reported to the window.\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}

	// HideClock/HideStats only ever turn on here; ApplyOverrides ORs the
	// CLI flags in afterwards
	if !HideClock {
		HideClock = cfg.Appearance.HideClock
	}
	if !HideStats {
		HideStats = cfg.Appearance.HideStats
	}
}

// fillMissingFrame fills in any missing frame settings with defaults
func fillMissingFrame(cfg, defaultCfg *UserConfig) {
	// CustomTitleBar defaults to true (nil means use default)
	if cfg.Frame.CustomTitleBar != nil {
		CustomTitleBar = *cfg.Frame.CustomTitleBar
	}

	// An empty trailing order with an empty leading order means the section
	// was omitted, not that the user wants zero buttons
	if cfg.Frame.ButtonOrderTrailing == "" && cfg.Frame.ButtonOrderLeading == "" {
		cfg.Frame.ButtonOrderTrailing = defaultCfg.Frame.ButtonOrderTrailing
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	// Initialize nil maps
	if cfg.Keybindings.WindowManagement == nil {
		cfg.Keybindings.WindowManagement = make(map[string][]string)
	}
	if cfg.Keybindings.FrameControl == nil {
		cfg.Keybindings.FrameControl = make(map[string][]string)
	}
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}

	// Set default leader key if not specified
	if cfg.Keybindings.LeaderKey == "" {
		cfg.Keybindings.LeaderKey = defaultCfg.Keybindings.LeaderKey
	}

	// Fill in missing keys with defaults
	fillMapDefaults(cfg.Keybindings.WindowManagement, defaultCfg.Keybindings.WindowManagement)
	fillMapDefaults(cfg.Keybindings.FrameControl, defaultCfg.Keybindings.FrameControl)
	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("sash/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("sash/config.toml")
	}
	return path, nil
}
