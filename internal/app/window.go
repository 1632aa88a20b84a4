package app

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
	"github.com/Gaurav-Gosain/sash/internal/theme"
)

// Window represents a single frame-decorated window on the desktop.
type Window struct {
	Title   string // Window title shown in the titlebar
	Width   int    // Window width in terminal cells
	Height  int    // Window height in terminal cells
	X       int    // X position on screen
	Y       int    // Y position on screen
	Z       int    // Z-index for layering
	ID      string // Unique identifier for the window
	Content string // Static demo content shown in the client area

	LastClick  geometry.Point // Most recent client-relative click cell
	HasClick   bool           // Whether LastClick has been set
	WheelDelta int            // Accumulated wheel steps over the client area

	Mode      frame.WindowMode // Restored, maximized, or fullscreen
	Minimized bool             // Whether the window is hidden in the window list
	CanResize bool             // Whether drag-resize is allowed

	// Restored holds the bounds to return to when leaving the
	// maximized or fullscreen mode.
	Restored geometry.Rect

	// OverlayRect is the titlebar area published to window content while
	// the controls overlay is enabled. Zero when the overlay is off.
	OverlayRect geometry.Rect

	Frame *frame.View // Frame chrome: caption buttons, insets, hit testing

	// Dirty flags for render caching
	Dirty         bool // Window needs full re-render
	ContentDirty  bool // Client area content changed
	PositionDirty bool // Window moved or resized

	CachedLayer *lipgloss.Layer // Cached composed layer to avoid re-rendering

	host *windowHost
}

// NewWindow creates a window wired to the desktop's frame machinery. The
// frame is constructed with the terminal cell metrics and the desktop's
// shared button order provider.
func NewWindow(d *Desktop, id, title string) *Window {
	w := &Window{
		Title:     title,
		ID:        id,
		Mode:      frame.ModeRestored,
		CanResize: true,
	}
	w.host = &windowHost{win: w, desktop: d}
	w.Frame = frame.New(w.host,
		frame.WithMetrics(frame.TerminalMetrics()),
		frame.WithImageProvider(frame.NewCellImageProvider()),
		frame.WithOrderProvider(d.Orders),
	)
	return w
}

// Bounds returns the window's outer rectangle in screen coordinates.
func (w *Window) Bounds() geometry.Rect {
	return geometry.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// ContentBounds returns the client area rectangle in screen coordinates.
func (w *Window) ContentBounds() geometry.Rect {
	client := w.Frame.ClientBounds()
	client.X += w.X
	client.Y += w.Y
	return client
}

// SendMouse delivers a client-area mouse event to the window content. There
// is no live program behind the demo content, so clicks and wheel steps are
// recorded for the client readout and everything else is dropped.
func (w *Window) SendMouse(event uv.MouseEvent) {
	switch ev := event.(type) {
	case uv.MouseClickEvent:
		w.LastClick = geometry.Point{X: ev.X, Y: ev.Y}
		w.HasClick = true
		w.MarkContentDirty()
	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			w.WheelDelta--
		case uv.MouseWheelDown:
			w.WheelDelta++
		default:
			return
		}
		w.MarkContentDirty()
	}
}

// Resize resizes the window and re-runs the frame layout so the caption
// buttons track the new trailing edge.
func (w *Window) Resize(width, height int) {
	if width == w.Width && height == w.Height {
		return
	}
	w.Width = max(width, config.MinWindowWidth)
	w.Height = max(height, config.MinWindowHeight)
	w.Frame.Layout()
	w.MarkContentDirty()
}

// MarkPositionDirty marks the window as moved. The cached content survives,
// only the layer position is recomputed.
func (w *Window) MarkPositionDirty() {
	w.PositionDirty = true
}

// MarkContentDirty marks the window content as changed and drops the cache.
func (w *Window) MarkContentDirty() {
	w.ContentDirty = true
	w.CachedLayer = nil
}

// ClearDirtyFlags resets all dirty flags after a render pass.
func (w *Window) ClearDirtyFlags() {
	w.Dirty = false
	w.ContentDirty = false
	w.PositionDirty = false
}

// InvalidateCache drops the cached layer entirely.
func (w *Window) InvalidateCache() {
	w.CachedLayer = nil
	w.Dirty = true
}

// Close releases the frame's subscriptions. The window must not be used
// afterwards.
func (w *Window) Close() {
	w.Frame.Close()
}

// windowHost adapts a Window to the frame.Host interface. It reads window
// state for the frame and forwards caption button actions to the desktop.
type windowHost struct {
	win     *Window
	desktop *Desktop

	paintObservers map[int]func()
	themeObservers map[int]func()
	nextObserver   int
}

var _ frame.Host = (*windowHost)(nil)

func (h *windowHost) Mode() frame.WindowMode { return h.win.Mode }

func (h *windowHost) Size() geometry.Size {
	return geometry.Size{Width: h.win.Width, Height: h.win.Height}
}

func (h *windowHost) CustomTitleBar() bool { return config.CustomTitleBar }

func (h *windowHost) Resizable() bool { return h.win.CanResize }

func (h *windowHost) MirroredLayout() bool { return config.MirrorLayout }

func (h *windowHost) ControlsOverlayEnabled() bool { return config.ControlsOverlay }

func (h *windowHost) OverlayHeightOverride() int { return config.OverlayHeight }

func (h *windowHost) OverlayButtonColor() color.Color {
	return theme.OverlayButtonColor(h.desktop.IsFocused(h.win))
}

func (h *windowHost) SetControlsOverlayRect(r geometry.Rect) {
	h.win.OverlayRect = r
}

func (h *windowHost) NotifyLayoutControlsOverlay() {
	h.win.MarkContentDirty()
}

func (h *windowHost) Minimize() { h.desktop.MinimizeWindow(h.win) }

func (h *windowHost) Maximize() { h.desktop.MaximizeWindow(h.win) }

func (h *windowHost) Restore() { h.desktop.RestoreWindow(h.win) }

func (h *windowHost) CloseWithReason(reason frame.CloseReason) {
	h.desktop.CloseWindow(h.win, reason)
}

func (h *windowHost) OnPaintActiveChanged(fn func()) (cancel func()) {
	if h.paintObservers == nil {
		h.paintObservers = make(map[int]func())
	}
	id := h.nextObserver
	h.nextObserver++
	h.paintObservers[id] = fn
	return func() { delete(h.paintObservers, id) }
}

func (h *windowHost) OnThemeChanged(fn func()) (cancel func()) {
	if h.themeObservers == nil {
		h.themeObservers = make(map[int]func())
	}
	id := h.nextObserver
	h.nextObserver++
	h.themeObservers[id] = fn
	return func() { delete(h.themeObservers, id) }
}

// firePaintActiveChanged notifies the frame that the window's focus state
// changed so it can refresh the placeholder background.
func (h *windowHost) firePaintActiveChanged() {
	for _, fn := range h.paintObservers {
		fn()
	}
}

// fireThemeChanged notifies the frame that the color theme changed.
func (h *windowHost) fireThemeChanged() {
	for _, fn := range h.themeObservers {
		fn()
	}
}
