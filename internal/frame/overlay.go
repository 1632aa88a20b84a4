package frame

import (
	"image/color"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// Placeholder is the container painted behind the caption buttons. It
// keeps the button area hit-testable and colored while window content
// extends into the titlebar, and exists only when the titlebar is
// custom-drawn.
type Placeholder struct {
	bounds     geometry.Rect
	background color.Color
}

// Bounds returns the rectangle assigned by the last layout pass.
func (p *Placeholder) Bounds() geometry.Rect { return p.bounds }

// SetBounds assigns the container's rectangle.
func (p *Placeholder) SetBounds(r geometry.Rect) { p.bounds = r }

// Background returns the container's fill color.
func (p *Placeholder) Background() color.Color { return p.background }

// SetBackground sets the container's fill color.
func (p *Placeholder) SetBackground(c color.Color) { p.background = c }

// LayoutControlsOverlay publishes the titlebar rectangle left for window
// content. Height comes from the host override when nonzero, otherwise
// from the placeholder height plus the one-unit top margin that maximized
// windows lack. Width is the view width minus the placeholder width. The
// rect is mirrored for right-to-left layouts, pushed to the host, and a
// layout notification follows. Without a placeholder this is a no-op.
func (v *View) LayoutControlsOverlay() {
	v.ensureOpen()
	if v.placeholder == nil {
		return
	}

	overlayHeight := v.host.OverlayHeightOverride()
	if overlayHeight == 0 {
		overlayHeight = v.placeholder.Bounds().Height
		if v.host.Mode() != ModeMaximized {
			overlayHeight++
		}
	}

	overlayWidth := v.placeholder.Bounds().Width
	boundingRect := geometry.Rect{
		Width:  v.width() - overlayWidth,
		Height: overlayHeight,
	}
	boundingRect = v.mirroredRect(boundingRect)

	v.host.SetControlsOverlayRect(boundingRect)
	v.host.NotifyLayoutControlsOverlay()
}
