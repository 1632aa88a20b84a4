package frame

import (
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// Region is a window-manager semantic hit-test verdict.
type Region int

const (
	// RegionNowhere is outside the window.
	RegionNowhere Region = iota
	// RegionClient is the content area.
	RegionClient
	// RegionCaption is the draggable titlebar area.
	RegionCaption
	// RegionClose is the close caption button.
	RegionClose
	// RegionMaxButton covers the maximize/restore twins.
	RegionMaxButton
	// RegionMinButton is the minimize caption button.
	RegionMinButton
	// RegionBorder is a frame border on a window that cannot resize.
	RegionBorder
	// RegionLeft through RegionBottomRight are resize handles.
	RegionLeft
	RegionRight
	RegionTop
	RegionBottom
	RegionTopLeft
	RegionTopRight
	RegionBottomLeft
	RegionBottomRight
)

// String returns the region name for logs and status display.
func (r Region) String() string {
	switch r {
	case RegionNowhere:
		return "nowhere"
	case RegionClient:
		return "client"
	case RegionCaption:
		return "caption"
	case RegionClose:
		return "close"
	case RegionMaxButton:
		return "max-button"
	case RegionMinButton:
		return "min-button"
	case RegionBorder:
		return "border"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	case RegionTop:
		return "top"
	case RegionBottom:
		return "bottom"
	case RegionTopLeft:
		return "top-left"
	case RegionTopRight:
		return "top-right"
	case RegionBottomLeft:
		return "bottom-left"
	case RegionBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// IsResize reports whether the region is a resize handle.
func (r Region) IsResize() bool {
	switch r {
	case RegionLeft, RegionRight, RegionTop, RegionBottom,
		RegionTopLeft, RegionTopRight, RegionBottomLeft, RegionBottomRight:
		return true
	default:
		return false
	}
}

// BaseChrome is the generic frame behavior the view composes with. The
// caption-button pass runs first and delegates whatever it does not claim.
type BaseChrome interface {
	// HitTest resolves points the caption-button pass did not claim.
	HitTest(v *View, p geometry.Point) Region
	// Layout lays out chrome below the caption buttons.
	Layout(v *View)
	// ClientBounds computes the client area when no custom titlebar is
	// drawn.
	ClientBounds(v *View) geometry.Rect
	// WindowBounds computes window bounds for a client area when no
	// custom titlebar is drawn.
	WindowBounds(v *View, client geometry.Rect) geometry.Rect
}

// Frameless is the default base chrome: no OS decorations, resize handles
// along the edges, the titlebar strip as caption, everything else client.
// With the controls overlay enabled the titlebar strip belongs to window
// content instead; only the caption-button pass above claims parts of it.
type Frameless struct{}

// HitTest implements BaseChrome. Fullscreen windows are all client area.
func (Frameless) HitTest(v *View, p geometry.Point) Region {
	if !v.Bounds().Contains(p) {
		return RegionNowhere
	}
	if v.host.Mode() == ModeFullscreen {
		return RegionClient
	}

	border := geometry.UniformInsets(v.metrics.ResizeInsideBoundsSize)
	region := resizeRegionForPoint(p, v.host.Size(), border,
		v.metrics.ResizeCornerSize, v.metrics.ResizeCornerSize,
		v.host.Resizable())
	if region != RegionNowhere {
		return region
	}

	if v.host.CustomTitleBar() && !v.host.ControlsOverlayEnabled() &&
		p.Y < v.NonClientTopHeight(false) {
		return RegionCaption
	}
	return RegionClient
}

// Layout implements BaseChrome. Frameless chrome has nothing of its own to
// place.
func (Frameless) Layout(*View) {}

// ClientBounds implements BaseChrome: the client area is the whole window.
func (Frameless) ClientBounds(v *View) geometry.Rect {
	return v.Bounds()
}

// WindowBounds implements BaseChrome: window bounds equal client bounds.
func (Frameless) WindowBounds(_ *View, client geometry.Rect) geometry.Rect {
	return client
}

// resizeRegionForPoint maps a point near the window edge to a resize
// handle. The corner reach differs from the edge band: cornerHeight rules
// the vertical extent of the top corners, cornerWidth the horizontal
// extent of all four. Windows that cannot resize still report the border
// so callers can distinguish it from content.
func resizeRegionForPoint(p geometry.Point, size geometry.Size, border geometry.Insets, cornerHeight, cornerWidth int, canResize bool) Region {
	var region Region
	switch {
	case p.X < border.Left:
		switch {
		case p.Y < cornerHeight:
			region = RegionTopLeft
		case p.Y >= size.Height-border.Bottom:
			region = RegionBottomLeft
		default:
			region = RegionLeft
		}
	case p.X >= size.Width-border.Right:
		switch {
		case p.Y < cornerHeight:
			region = RegionTopRight
		case p.Y >= size.Height-border.Bottom:
			region = RegionBottomRight
		default:
			region = RegionRight
		}
	case p.Y < border.Top:
		switch {
		case p.X < cornerWidth:
			region = RegionTopLeft
		case p.X >= size.Width-cornerWidth:
			region = RegionTopRight
		default:
			region = RegionTop
		}
	case p.Y >= size.Height-border.Bottom:
		switch {
		case p.X < cornerWidth:
			region = RegionBottomLeft
		case p.X >= size.Width-cornerWidth:
			region = RegionBottomRight
		default:
			region = RegionBottom
		}
	default:
		return RegionNowhere
	}

	if !canResize {
		return RegionBorder
	}
	return region
}

// HitTest resolves a point to a window-manager region. With a custom
// titlebar the caption buttons are checked first, in fixed priority:
// close, then the restore/maximize twins, then minimize, then the
// placeholder container as caption when the controls overlay is enabled.
// Whatever is left falls through to the base chrome. Mirrored layouts
// compare against mirrored rectangles throughout.
func (v *View) HitTest(p geometry.Point) Region {
	v.ensureOpen()

	if v.host.CustomTitleBar() {
		if v.hitTestCaptionButton(v.close, p) {
			return RegionClose
		}
		if v.hitTestCaptionButton(v.restore, p) {
			return RegionMaxButton
		}
		if v.hitTestCaptionButton(v.maximize, p) {
			return RegionMaxButton
		}
		if v.hitTestCaptionButton(v.minimize, p) {
			return RegionMinButton
		}

		if v.host.ControlsOverlayEnabled() && v.placeholder != nil &&
			v.mirroredRect(v.placeholder.Bounds()).Contains(p) {
			return RegionCaption
		}
	}

	return v.base.HitTest(v, p)
}

// hitTestCaptionButton reports whether p lands on a visible caption
// button.
func (v *View) hitTestCaptionButton(b *Button, p geometry.Point) bool {
	return b != nil && b.Visible() && v.mirroredRect(b.Bounds()).Contains(p)
}

// ButtonAt returns the visible caption button under p, if any.
func (v *View) ButtonAt(p geometry.Point) *Button {
	v.ensureOpen()
	if !v.host.CustomTitleBar() {
		return nil
	}
	for _, b := range []*Button{v.close, v.restore, v.maximize, v.minimize} {
		if v.hitTestCaptionButton(b, p) {
			return b
		}
	}
	return nil
}
