package config

import (
	"log"

	"github.com/Gaurav-Gosain/sash/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Unicode glyphs
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// HideClock overrides hiding the clock
	HideClock bool

	// HideStats overrides hiding the CPU/memory overlay
	HideStats bool

	// MirrorLayout overrides right-to-left frame layout
	MirrorLayout bool

	// SystemTitleBar disables the in-frame titlebar and caption buttons
	SystemTitleBar bool

	// ControlsOverlay overrides extending window content into the titlebar
	ControlsOverlay bool

	// OverlayHeight overrides the reported controls overlay height (0 means derive it)
	OverlayHeight int

	// ButtonOrderLeading overrides the leading caption button order
	ButtonOrderLeading string

	// ButtonOrderTrailing overrides the trailing caption button order
	ButtonOrderTrailing string

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - simple flag override
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Hide Stats - OR of CLI flag and user config
	if userConfig != nil {
		HideStats = overrides.HideStats || userConfig.Appearance.HideStats
	} else {
		HideStats = overrides.HideStats
	}

	// Mirror Layout - OR of CLI flag and user config
	if userConfig != nil {
		MirrorLayout = overrides.MirrorLayout || userConfig.Frame.MirrorLayout
	} else {
		MirrorLayout = overrides.MirrorLayout
	}

	// System titlebar flag wins over the config file
	if overrides.SystemTitleBar {
		CustomTitleBar = false
	} else if userConfig != nil && userConfig.Frame.CustomTitleBar != nil {
		CustomTitleBar = *userConfig.Frame.CustomTitleBar
	}

	// Controls Overlay - OR of CLI flag and user config
	if userConfig != nil {
		ControlsOverlay = overrides.ControlsOverlay || userConfig.Frame.ControlsOverlay
	} else {
		ControlsOverlay = overrides.ControlsOverlay
	}

	// Overlay Height - CLI flag takes precedence, otherwise use user config
	if overrides.OverlayHeight > 0 {
		OverlayHeight = overrides.OverlayHeight
	} else if userConfig != nil && userConfig.Frame.OverlayHeight > 0 {
		OverlayHeight = userConfig.Frame.OverlayHeight
	}

	// Button Order - CLI flags take precedence, otherwise use user config.
	// Either flag set replaces both edges so a button never lands on two edges.
	if overrides.ButtonOrderLeading != "" || overrides.ButtonOrderTrailing != "" {
		ButtonOrderLeading = overrides.ButtonOrderLeading
		ButtonOrderTrailing = overrides.ButtonOrderTrailing
	} else if userConfig != nil {
		ButtonOrderLeading = userConfig.Frame.ButtonOrderLeading
		ButtonOrderTrailing = userConfig.Frame.ButtonOrderTrailing
	}

	// Leader Key - only from user config
	if userConfig != nil && userConfig.Keybindings.LeaderKey != "" {
		LeaderKey = userConfig.Keybindings.LeaderKey
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
