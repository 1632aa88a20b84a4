// Package theme provides color themes and styling for the sash desktop.
package theme

import (
	"fmt"
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	// If no theme specified, disable theming
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	// Try to set the theme by ID
	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// DesktopBg returns the background color of the desktop surface.
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#101018")
	}
	return t.Bg
}

// OverlayButtonColor returns the background painted behind the caption
// button area. The active window gets the stronger shade.
func OverlayButtonColor(active bool) color.Color {
	t := Current()
	if t == nil {
		if active {
			return lipgloss.Color("#2a2a3e")
		}
		return lipgloss.Color("#1a1a2e")
	}
	if active {
		return t.BrightBlack
	}
	return t.Black
}

// TitlebarFg returns the foreground color for titlebar text.
func TitlebarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// TitlebarInactiveFg returns the foreground color for unfocused titlebar text.
func TitlebarInactiveFg() color.Color {
	return lipgloss.Color("#808090")
}

// BorderFocused returns the color for the focused window border.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// BorderUnfocused returns the color for unfocused window borders.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	// Regular red gives a softer, more muted tone for unfocused windows
	return t.Red
}

// ButtonFg returns the foreground color for caption button glyphs.
func ButtonFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// ButtonHoverBg returns the background color for a hovered caption button.
func ButtonHoverBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#3a3a4e")
	}
	return t.BrightBlack
}

// ButtonPressedBg returns the background color for a pressed caption button.
func ButtonPressedBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#50506a")
	}
	return t.Blue
}

// ButtonDisabledFg returns the foreground color for a disabled caption button.
func ButtonDisabledFg() color.Color {
	return lipgloss.Color("#606070")
}

// CloseButtonHoverBg returns the background color for the hovered close button.
func CloseButtonHoverBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// StatusBarBg returns the background color for the status bar.
func StatusBarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// StatusBarFg returns the foreground color for the status bar.
func StatusBarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// StatusBarAccent returns the accent color for status bar highlights.
func StatusBarAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// ClockOverlayBg returns the background color for the clock overlay.
func ClockOverlayBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// ClockOverlayFg returns the foreground color for the clock overlay.
func ClockOverlayFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// StatsTitle returns the color for stats overlay titles.
func StatsTitle() color.Color {
	return lipgloss.Color("14")
}

// StatsLabel returns the color for stats overlay labels.
func StatsLabel() color.Color {
	return lipgloss.Color("11")
}

// StatsValue returns the color for stats overlay values.
func StatsValue() color.Color {
	return lipgloss.Color("10")
}

// LogViewerTitle returns the color for log viewer titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerDebug returns the color for debug messages in the log viewer.
func LogViewerDebug() color.Color {
	return lipgloss.Color("12")
}

// LogViewerBg returns the background color for the log viewer.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// HelpBorder returns the border color for the help menu.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// HelpKeyBadge returns the color for key badges in the help menu.
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

// HelpKeyBadgeBg returns the background color for key badges in the help menu.
func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0")
}

// HelpGray returns the gray color for help menu elements.
func HelpGray() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	// Format as hex string
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
