// Package config provides frame metric constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Frame Border Metrics (pixel preset)
// =============================================================================

const (
	// FrameBorderThickness is the thickness of the restored window frame border
	FrameBorderThickness = 4

	// NonClientExtraTopThickness is the extra row of pixels added above the
	// top frame border when the window is restored
	NonClientExtraTopThickness = 1

	// ContentEdgeShadowThickness is the shadow drawn where the titlebar meets
	// the client area, part of the top frame edge
	ContentEdgeShadowThickness = 2

	// TopFrameEdgeThickness is the thickness of the frame edge along the top
	TopFrameEdgeThickness = 2

	// SideFrameEdgeThickness is the thickness of the frame edge along the sides
	// and bottom
	SideFrameEdgeThickness = 1

	// FrameShadowThickness is the offset between the top of the frame and the
	// top of the caption buttons
	FrameShadowThickness = 1

	// TitlebarVerticalPadding is the spacing above and below the titlebar icon
	TitlebarVerticalPadding = 2
)

// =============================================================================
// Caption Button Metrics (pixel preset)
// =============================================================================

const (
	// CaptionButtonHeight is the fixed height of a caption button
	CaptionButtonHeight = 18

	// CaptionButtonWidth is the default width of a caption button when the
	// image provider does not supply one
	CaptionButtonWidth = 32

	// CaptionButtonBottomPadding is the spacing below the caption button row
	CaptionButtonBottomPadding = 3

	// CaptionSpacing is the spacing between the title text and the caption
	// button row
	CaptionSpacing = 5

	// IconLeftSpacing is the spacing between the left frame edge and the
	// titlebar icon
	IconLeftSpacing = 1

	// IconTitleSpacing is the spacing between the titlebar icon and the title
	// text
	IconTitleSpacing = 4

	// IconMinimumSize is the smallest size the titlebar icon is drawn at
	IconMinimumSize = 16

	// DefaultFontHeight is the titlebar font height used when no font
	// measurement is available
	DefaultFontHeight = 15
)

// =============================================================================
// Resize Handle Metrics (pixel preset)
// =============================================================================

const (
	// ResizeInsideBoundsSize is how far the resize handles extend inward from
	// the window edge
	ResizeInsideBoundsSize = 5

	// ResizeOutsideBorderSize is how far the resize handles extend past the
	// window edge
	ResizeOutsideBorderSize = 10

	// ResizeCornerSize is the edge length of the corner resize regions
	ResizeCornerSize = 16
)

// =============================================================================
// Frame Metrics (terminal cell preset)
// =============================================================================

// The cell preset maps the pixel geometry onto terminal cells so the demo
// desktop can lay frames out with the same formulas. Edges and shadows
// thinner than one cell collapse to zero.
const (
	// CellFrameBorderThickness is the frame border thickness in cells
	CellFrameBorderThickness = 1

	// CellCaptionButtonHeight is the caption button height in cells
	CellCaptionButtonHeight = 1

	// CellCaptionButtonWidth is the caption button width in cells, sized to
	// fit the three-character button glyphs
	CellCaptionButtonWidth = 3

	// CellIconSize is the titlebar icon size in cells
	CellIconSize = 1

	// CellResizeInsideBoundsSize is the inward resize handle reach in cells
	CellResizeInsideBoundsSize = 1

	// CellResizeCornerSize is the corner resize region size in cells
	CellResizeCornerSize = 2
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the default width for new demo windows
	DefaultWindowWidth = 44

	// DefaultWindowHeight is the default height for new demo windows
	DefaultWindowHeight = 14

	// MinWindowWidth is the minimum width a window can be resized to,
	// wide enough for the three trailing caption buttons
	MinWindowWidth = 16

	// MinWindowHeight is the minimum height a window can be resized to
	MinWindowHeight = 4
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the normal refresh rate during regular operation
	NormalFPS = 60

	// InteractionFPS is the refresh rate during user interactions (drag/resize)
	// Lower FPS during interactions improves mouse responsiveness
	InteractionFPS = 30
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// ClockUpdateInterval is the interval between clock overlay refreshes
	ClockUpdateInterval = time.Second

	// StatsUpdateInterval is the interval between CPU/memory overlay refreshes
	StatsUpdateInterval = 2 * time.Second

	// ServerShutdownTimeout is the timeout for graceful SSH server shutdown
	ServerShutdownTimeout = 30 * time.Second

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond

	// NotificationFadeOutDuration is the fade out duration for notifications
	NotificationFadeOutDuration = 500 * time.Millisecond
)

// =============================================================================
// Notification Icons (ASCII-safe)
// =============================================================================

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconSuccess is the success notification icon
	NotificationIconSuccess = "[OK]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// StatusBarHeight is the height of the status bar at the bottom
	StatusBarHeight = 1

	// StatusBarLeftWidth is the width of the left section of the status bar
	StatusBarLeftWidth = 30

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// LogViewerHeight is the height of the log viewer overlay
	LogViewerHeight = 20

	// LogBufferSize is the number of log lines kept in memory
	LogBufferSize = 200

	// StatsOverlayWidth is the width of the CPU/memory overlay
	StatsOverlayWidth = 24
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBase is the base z-index for regular windows
	ZIndexBase = 0

	// ZIndexHelp is the z-index for the help overlay
	ZIndexHelp = 1000

	// ZIndexStats is the z-index for the CPU/memory overlay
	ZIndexStats = 1000

	// ZIndexTime is the z-index for the clock display
	ZIndexTime = 1001

	// ZIndexLogs is the z-index for the log viewer overlay
	ZIndexLogs = 1001

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 2000
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// These variables hold the effective configuration after CLI flags and the
// user config file have been merged.
var (
	// UseASCIIOnly uses ASCII characters instead of Unicode glyphs.
	// Set via --ascii flag.
	UseASCIIOnly = false

	// BorderStyle is the window border style.
	// Set via --border-style flag or config file.
	BorderStyle = "rounded"

	// HideClock hides the clock overlay.
	// Set via --hide-clock flag or config file.
	HideClock = false

	// HideStats hides the CPU/memory overlay.
	// Set via --hide-stats flag or config file.
	HideStats = false

	// MirrorLayout lays frames out right-to-left.
	// Set via --mirror flag or config file.
	MirrorLayout = false

	// CustomTitleBar draws the titlebar and caption buttons in-frame instead
	// of delegating them to the host.
	// Set via config file; --system-titlebar disables it.
	CustomTitleBar = true

	// ControlsOverlay reserves the caption button area and reports the
	// remaining titlebar space to window content.
	// Set via --controls-overlay flag or config file.
	ControlsOverlay = false

	// OverlayHeight overrides the reported controls overlay height.
	// Zero means derive it from the caption button area.
	// Set via --overlay-height flag or config file.
	OverlayHeight = 0

	// ButtonOrderLeading is the comma-separated caption button order at the
	// leading edge of the titlebar.
	// Set via --button-order-leading flag or config file.
	ButtonOrderLeading = ""

	// ButtonOrderTrailing is the comma-separated caption button order at the
	// trailing edge of the titlebar.
	// Set via --button-order-trailing flag or config file.
	ButtonOrderTrailing = "minimize,maximize,close"

	// LeaderKey is the prefix key for window management commands
	LeaderKey = "ctrl+b"
)

// =============================================================================
// Window Button Characters
// =============================================================================

const (
	// WindowButtonMinimize is the minimize window button glyph.
	WindowButtonMinimize = " ─ " // U+2500
	// WindowButtonMaximize is the maximize window button glyph.
	WindowButtonMaximize = " □ " // U+25A1
	// WindowButtonRestore is the restore window button glyph, shown in place
	// of maximize while the window is maximized.
	WindowButtonRestore = " ❐ " // U+2750
	// WindowButtonClose is the close/kill window button glyph.
	WindowButtonClose = " ⤫ " // U+292B
	// WindowIcon is the titlebar icon glyph.
	WindowIcon = "◈" // U+25C8
)

const (
	// WindowButtonMinimizeASCII is the minimize window button glyph (ASCII fallback).
	WindowButtonMinimizeASCII = " _ "
	// WindowButtonMaximizeASCII is the maximize window button glyph (ASCII fallback).
	WindowButtonMaximizeASCII = " # "
	// WindowButtonRestoreASCII is the restore window button glyph (ASCII fallback).
	WindowButtonRestoreASCII = " ^ "
	// WindowButtonCloseASCII is the close/kill window button glyph (ASCII fallback).
	WindowButtonCloseASCII = " X "
	// WindowIconASCII is the titlebar icon glyph (ASCII fallback).
	WindowIconASCII = "*"
)

// GetWindowButtonMinimize returns the appropriate minimize glyph based on UseASCIIOnly
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return WindowButtonMinimizeASCII
	}
	return WindowButtonMinimize
}

// GetWindowButtonMaximize returns the appropriate maximize glyph based on UseASCIIOnly
func GetWindowButtonMaximize() string {
	if UseASCIIOnly {
		return WindowButtonMaximizeASCII
	}
	return WindowButtonMaximize
}

// GetWindowButtonRestore returns the appropriate restore glyph based on UseASCIIOnly
func GetWindowButtonRestore() string {
	if UseASCIIOnly {
		return WindowButtonRestoreASCII
	}
	return WindowButtonRestore
}

// GetWindowButtonClose returns the appropriate close glyph based on UseASCIIOnly
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetWindowIcon returns the appropriate titlebar icon based on UseASCIIOnly
func GetWindowIcon() string {
	if UseASCIIOnly {
		return WindowIconASCII
	}
	return WindowIcon
}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}
