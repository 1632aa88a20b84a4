// Package sash provides a reusable terminal desktop built around window
// frame chrome: caption buttons, titlebar drags, edge resizes, and the
// controls-overlay readout. It can be embedded in other Bubble Tea
// applications or run as a standalone TUI.
//
// # Basic Usage
//
// Create a new desktop with default options:
//
//	model := sash.New()
//	p := tea.NewProgram(model, sash.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize the desktop:
//
//	model := sash.New(
//		sash.WithTheme("dracula"),
//		sash.WithMirrorLayout(true),
//		sash.WithButtonOrder("close", "minimize,maximize"),
//	)
//
// # Serving over SSH
//
// Desktops can be handed to a wish bubbletea middleware. Size the model to
// the session PTY:
//
//	func handler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
//		pty, _, _ := s.Pty()
//		return sash.New(sash.WithSize(pty.Window.Width, pty.Window.Height)), sash.ProgramOptions()
//	}
package sash

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/input"
)

// Model is the main desktop model that implements tea.Model.
// It wraps the internal Desktop struct and provides a clean public API.
type Model = app.Desktop

// Options configures a sash desktop.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Unicode glyphs.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "ascii"
	BorderStyle string

	// MirrorLayout lays frames out right-to-left.
	MirrorLayout bool

	// SystemTitleBar disables the in-frame titlebar and caption buttons.
	SystemTitleBar bool

	// ControlsOverlay extends window content into the titlebar and reports
	// the remaining caption strip to each window.
	ControlsOverlay bool

	// OverlayHeight overrides the reported controls overlay height.
	// Zero derives the height from the caption geometry.
	OverlayHeight int

	// ButtonOrderLeading is a comma-separated caption button order for the
	// leading frame edge (e.g., "close,minimize,maximize").
	ButtonOrderLeading string

	// ButtonOrderTrailing is the trailing-edge counterpart.
	ButtonOrderTrailing string

	// HideClock hides the clock overlay.
	HideClock bool

	// HideStats hides the CPU/memory overlay.
	HideStats bool

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the config file is
	// loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the desktop.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithMirrorLayout lays frames out right-to-left.
func WithMirrorLayout(enabled bool) Option {
	return func(o *Options) {
		o.MirrorLayout = enabled
	}
}

// WithSystemTitleBar disables the in-frame titlebar and caption buttons.
func WithSystemTitleBar(enabled bool) Option {
	return func(o *Options) {
		o.SystemTitleBar = enabled
	}
}

// WithControlsOverlay extends window content into the titlebar.
func WithControlsOverlay(enabled bool) Option {
	return func(o *Options) {
		o.ControlsOverlay = enabled
	}
}

// WithOverlayHeight overrides the reported controls overlay height.
func WithOverlayHeight(height int) Option {
	return func(o *Options) {
		if height < 0 {
			height = 0
		}
		o.OverlayHeight = height
	}
}

// WithButtonOrder sets the leading and trailing caption button order.
// Each edge is a comma-separated list of "minimize", "maximize", "close".
func WithButtonOrder(leading, trailing string) Option {
	return func(o *Options) {
		o.ButtonOrderLeading = leading
		o.ButtonOrderTrailing = trailing
	}
}

// WithHideClock hides the clock overlay.
func WithHideClock(hide bool) Option {
	return func(o *Options) {
		o.HideClock = hide
	}
}

// WithHideStats hides the CPU/memory overlay.
func WithHideStats(hide bool) Option {
	return func(o *Options) {
		o.HideStats = hide
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{}
}

// New creates a new desktop model with the given options.
// This is the main entry point for using sash as a library.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return newModel(options)
}

// PTY describes a pseudo-terminal size source.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a desktop model sized to a PTY session. This is useful
// when embedding sash in web terminals or SSH servers.
func NewForPTY(pty PTY, opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()

	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	var userConfig *config.UserConfig
	if options.UserConfig != nil {
		userConfig = options.UserConfig
	} else {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:           options.ASCIIOnly,
		BorderStyle:         options.BorderStyle,
		HideClock:           options.HideClock,
		HideStats:           options.HideStats,
		MirrorLayout:        options.MirrorLayout,
		SystemTitleBar:      options.SystemTitleBar,
		ControlsOverlay:     options.ControlsOverlay,
		OverlayHeight:       options.OverlayHeight,
		ButtonOrderLeading:  options.ButtonOrderLeading,
		ButtonOrderTrailing: options.ButtonOrderTrailing,
		ThemeName:           options.Theme,
	}, userConfig)

	return app.NewDesktop(app.DesktopOptions{
		KeybindRegistry: config.NewKeybindRegistry(&userConfig.Keybindings),
		Width:           options.Width,
		Height:          options.Height,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// a sash desktop:
//
//	model := sash.New()
//	p := tea.NewProgram(model, sash.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage by
// filtering out redundant mouse motion events. Motion always passes during
// drags, resizes, and while a caption button is held.
//
// Usage:
//
//	p := tea.NewProgram(model, tea.WithFilter(sash.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}

	m, ok := model.(*Model)
	if !ok {
		return msg
	}

	if m.Dragging || m.Resizing || m.PressedButton != nil {
		return msg
	}

	// Motion inside the cell the pointer is already on cannot change any
	// hover state
	if motion.X == m.LastMouseX && motion.Y == m.LastMouseY {
		return nil
	}

	return msg
}

// Config re-exports the config package helpers so embedders can manage the
// configuration file without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
