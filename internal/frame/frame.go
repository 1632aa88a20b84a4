// Package frame computes the non-client geometry of a window's custom
// titlebar and border: frame insets per window mode, caption button
// placement, hit-test regions, and the controls overlay rectangle reported
// to window content.
//
// Everything in this package runs on the UI event loop. A layout pass runs
// to completion before the next one starts, and hit tests read the last
// completed pass, so no locking is needed.
package frame

import (
	"image/color"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// WindowMode is the window's current display state.
type WindowMode int

const (
	// ModeRestored is a normal floating window.
	ModeRestored WindowMode = iota
	// ModeMaximized fills the work area, frame borders collapse.
	ModeMaximized
	// ModeFullscreen fills the screen, chrome is suppressed entirely.
	ModeFullscreen
)

// String returns the mode name for logs and status display.
func (m WindowMode) String() string {
	switch m {
	case ModeRestored:
		return "restored"
	case ModeMaximized:
		return "maximized"
	case ModeFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// CloseReason records why a window close was requested.
type CloseReason int

const (
	// CloseReasonUnspecified is a close with no recorded cause.
	CloseReasonUnspecified CloseReason = iota
	// CloseReasonCloseButton is a click on the caption close button.
	CloseReasonCloseButton
)

// Host is the window the frame decorates. The frame holds a non-owning
// reference: it reads mode and size, publishes the controls overlay rect,
// and forwards caption button actions. The frame must not outlive its host.
type Host interface {
	// Mode returns the window's current display state.
	Mode() WindowMode
	// Size returns the window's outer size.
	Size() geometry.Size
	// CustomTitleBar reports whether the frame draws the titlebar and
	// caption buttons itself. Evaluated once at construction and expected
	// to be stable for the window's lifetime.
	CustomTitleBar() bool
	// Resizable reports whether the window may be resized by dragging.
	Resizable() bool
	// MirroredLayout reports whether the frame lays out right-to-left.
	MirroredLayout() bool

	// ControlsOverlayEnabled reports whether window content extends into
	// the titlebar next to the caption buttons.
	ControlsOverlayEnabled() bool
	// OverlayHeightOverride returns the content-specified overlay height,
	// or zero to derive it from the caption button area.
	OverlayHeightOverride() int
	// OverlayButtonColor returns the background for the caption button
	// area under the current theme and focus state.
	OverlayButtonColor() color.Color
	// SetControlsOverlayRect publishes the titlebar rectangle available
	// to window content.
	SetControlsOverlayRect(geometry.Rect)
	// NotifyLayoutControlsOverlay signals that the overlay rect changed.
	NotifyLayoutControlsOverlay()

	// Minimize, Maximize and Restore are the caption button actions.
	Minimize()
	Maximize()
	Restore()
	// CloseWithReason closes the window, recording what triggered it.
	CloseWithReason(CloseReason)

	// OnPaintActiveChanged registers an observer for focus-driven repaint
	// changes. The returned cancel releases the registration.
	OnPaintActiveChanged(fn func()) (cancel func())
	// OnThemeChanged registers an observer for theme changes. The returned
	// cancel releases the registration.
	OnThemeChanged(fn func()) (cancel func())
}

// View owns the frame chrome of one window: the four caption buttons, the
// placeholder container behind them, and the cursor state of the current
// layout pass. When the host draws the system titlebar itself no buttons or
// placeholder exist and every operation falls through to the base chrome.
type View struct {
	host    Host
	metrics Metrics
	images  ImageProvider
	order   OrderProvider
	base    BaseChrome

	minimize *Button
	maximize *Button
	restore  *Button
	close    *Button

	leadingKinds  []ButtonKind
	trailingKinds []ButtonKind

	placeholder *Placeholder

	// Layout cursor state, only valid while a layout pass is running.
	placedLeadingButton     bool
	placedTrailingButton    bool
	availableSpaceLeadingX  int
	availableSpaceTrailingX int
	minimumSizeForButtons   int

	cancelOrder  func()
	cancelActive func()
	cancelTheme  func()

	closed bool
}

// Option configures a View.
type Option func(*View)

// WithMetrics sets the frame metric preset.
func WithMetrics(m Metrics) Option {
	return func(v *View) { v.metrics = m }
}

// WithImageProvider sets the caption button image source.
func WithImageProvider(p ImageProvider) Option {
	return func(v *View) { v.images = p }
}

// WithOrderProvider sets the caption button ordering source.
func WithOrderProvider(p OrderProvider) Option {
	return func(v *View) { v.order = p }
}

// WithBase sets the base chrome the frame delegates to.
func WithBase(b BaseChrome) Option {
	return func(v *View) { v.base = b }
}

// New builds the frame chrome for host. When the host custom-draws its
// titlebar the four caption buttons and the placeholder container are
// created and the view subscribes to ordering, focus, and theme changes.
// Otherwise the view stays empty and delegates everything to the base.
func New(host Host, opts ...Option) *View {
	v := &View{
		host:    host,
		metrics: DefaultMetrics(),
		base:    Frameless{},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.images == nil {
		v.images = NewImageProvider()
	}
	if v.order == nil {
		v.order = NewStaticOrderProvider(nil, DefaultTrailingOrder())
	}

	if !host.CustomTitleBar() {
		return v
	}

	v.placeholder = &Placeholder{}
	v.UpdatePlaceholderBackground()

	v.minimize = newButton(ButtonMinimize, "Minimize", host.Minimize, v.images)
	v.maximize = newButton(ButtonMaximize, "Maximize", host.Maximize, v.images)
	v.restore = newButton(ButtonRestore, "Restore", host.Restore, v.images)
	v.close = newButton(ButtonClose, "Close", func() {
		host.CloseWithReason(CloseReasonCloseButton)
	}, v.images)

	v.leadingKinds, v.trailingKinds = v.order.Order()

	v.cancelOrder = v.order.Subscribe(v.reloadButtonOrder)
	v.cancelActive = host.OnPaintActiveChanged(v.UpdatePlaceholderBackground)
	v.cancelTheme = host.OnThemeChanged(v.UpdatePlaceholderBackground)

	return v
}

// Close releases the view's subscriptions. The view must not be used
// afterwards; operations on a closed view panic.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	for _, cancel := range []func(){v.cancelOrder, v.cancelActive, v.cancelTheme} {
		if cancel != nil {
			cancel()
		}
	}
	v.cancelOrder, v.cancelActive, v.cancelTheme = nil, nil, nil
}

func (v *View) ensureOpen() {
	if v.closed {
		panic("frame: view used after Close")
	}
}

// reloadButtonOrder replaces both ordering sets wholesale from the provider.
// The new order takes effect on the next layout pass.
func (v *View) reloadButtonOrder() {
	v.leadingKinds, v.trailingKinds = v.order.Order()
}

// Host returns the window this frame decorates.
func (v *View) Host() Host { return v.host }

// Metrics returns the active frame metric preset.
func (v *View) Metrics() Metrics { return v.metrics }

// Placeholder returns the caption button placeholder container, or nil when
// the host draws the system titlebar.
func (v *View) Placeholder() *Placeholder { return v.placeholder }

// ButtonOrder returns the current leading and trailing ordering sets.
func (v *View) ButtonOrder() (leading, trailing []ButtonKind) {
	return append([]ButtonKind(nil), v.leadingKinds...),
		append([]ButtonKind(nil), v.trailingKinds...)
}

// VisibleButtons returns the buttons that participate in hit-testing and
// rendering, in fixed kind order.
func (v *View) VisibleButtons() []*Button {
	var out []*Button
	for _, b := range []*Button{v.minimize, v.maximize, v.restore, v.close} {
		if b != nil && b.Visible() {
			out = append(out, b)
		}
	}
	return out
}

// ResetWindowControls returns minimize, maximize, and restore to their
// normal visual state after a window-manager interaction. The close
// button keeps whatever state it has.
func (v *View) ResetWindowControls() {
	v.ensureOpen()
	for _, b := range []*Button{v.restore, v.minimize, v.maximize} {
		if b != nil {
			b.SetState(StateNormal)
		}
	}
}

// UpdatePlaceholderBackground repaints the placeholder container with the
// host's current overlay button color. Called on theme and focus changes.
func (v *View) UpdatePlaceholderBackground() {
	if v.placeholder != nil {
		v.placeholder.SetBackground(v.host.OverlayButtonColor())
	}
}

func (v *View) width() int  { return v.host.Size().Width }
func (v *View) height() int { return v.host.Size().Height }

// Bounds returns the view rectangle at the window's current size.
func (v *View) Bounds() geometry.Rect {
	size := v.host.Size()
	return geometry.Rect{Width: size.Width, Height: size.Height}
}

// mirroredRect flips r horizontally when the host lays out right-to-left.
func (v *View) mirroredRect(r geometry.Rect) geometry.Rect {
	if v.host.MirroredLayout() {
		return r.Mirror(v.width())
	}
	return r
}
