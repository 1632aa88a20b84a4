package frame

import (
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// Metrics is the value set the geometry model computes with. All fields are
// fixed per preset; the only mode-dependent input is the condensed predicate.
type Metrics struct {
	// FrameBorderThickness is the restored frame border on all four sides.
	FrameBorderThickness int
	// NonClientExtraTopThickness is added above the top border when the
	// frame is not condensed.
	NonClientExtraTopThickness int
	// ContentEdgeShadowThickness is the shadow between titlebar and client.
	ContentEdgeShadowThickness int
	// TopFrameEdgeThickness is the frame edge along the top.
	TopFrameEdgeThickness int
	// SideFrameEdgeThickness is the frame edge along the sides and bottom.
	SideFrameEdgeThickness int
	// FrameShadowThickness offsets caption buttons from the frame top.
	FrameShadowThickness int
	// TitlebarVerticalPadding pads the titlebar icon above and below.
	TitlebarVerticalPadding int
	// CaptionButtonHeight is the fixed caption button height.
	CaptionButtonHeight int
	// CaptionButtonBottomPadding pads below the caption button row.
	CaptionButtonBottomPadding int
	// CaptionSpacing separates the title text from the caption buttons.
	CaptionSpacing int
	// IconLeftSpacing insets the icon from the left frame border.
	IconLeftSpacing int
	// IconTitleSpacing separates the icon from the title text.
	IconTitleSpacing int
	// IconMinimumSize is the smallest drawn icon size.
	IconMinimumSize int
	// FontHeight is the titlebar font line height.
	FontHeight int
	// ResizeInsideBoundsSize is the inward reach of resize handles.
	ResizeInsideBoundsSize int
	// ResizeOutsideBorderSize is the outward reach of resize handles.
	ResizeOutsideBorderSize int
	// ResizeCornerSize is the edge length of corner resize regions.
	ResizeCornerSize int
}

// DefaultMetrics returns the pixel preset used for desktop windows.
func DefaultMetrics() Metrics {
	return Metrics{
		FrameBorderThickness:       config.FrameBorderThickness,
		NonClientExtraTopThickness: config.NonClientExtraTopThickness,
		ContentEdgeShadowThickness: config.ContentEdgeShadowThickness,
		TopFrameEdgeThickness:      config.TopFrameEdgeThickness,
		SideFrameEdgeThickness:     config.SideFrameEdgeThickness,
		FrameShadowThickness:       config.FrameShadowThickness,
		TitlebarVerticalPadding:    config.TitlebarVerticalPadding,
		CaptionButtonHeight:        config.CaptionButtonHeight,
		CaptionButtonBottomPadding: config.CaptionButtonBottomPadding,
		CaptionSpacing:             config.CaptionSpacing,
		IconLeftSpacing:            config.IconLeftSpacing,
		IconTitleSpacing:           config.IconTitleSpacing,
		IconMinimumSize:            config.IconMinimumSize,
		FontHeight:                 config.DefaultFontHeight,
		ResizeInsideBoundsSize:     config.ResizeInsideBoundsSize,
		ResizeOutsideBorderSize:    config.ResizeOutsideBorderSize,
		ResizeCornerSize:           config.ResizeCornerSize,
	}
}

// TerminalMetrics returns the cell preset used by the demo desktop. Edges
// and shadows thinner than one cell collapse to zero, which keeps the same
// formulas valid: the titlebar comes out one cell tall and the border one
// cell thick.
func TerminalMetrics() Metrics {
	return Metrics{
		FrameBorderThickness:       config.CellFrameBorderThickness,
		NonClientExtraTopThickness: 0,
		ContentEdgeShadowThickness: 0,
		TopFrameEdgeThickness:      0,
		SideFrameEdgeThickness:     0,
		FrameShadowThickness:       0,
		TitlebarVerticalPadding:    0,
		CaptionButtonHeight:        config.CellCaptionButtonHeight,
		CaptionButtonBottomPadding: 0,
		CaptionSpacing:             1,
		IconLeftSpacing:            1,
		IconTitleSpacing:           1,
		IconMinimumSize:            config.CellIconSize,
		FontHeight:                 1,
		ResizeInsideBoundsSize:     config.CellResizeInsideBoundsSize,
		ResizeOutsideBorderSize:    0,
		ResizeCornerSize:           config.CellResizeCornerSize,
	}
}

// IsFrameCondensed reports whether border decorations are suppressed
// because the window is maximized or fullscreen.
func (v *View) IsFrameCondensed() bool {
	mode := v.host.Mode()
	return mode == ModeMaximized || mode == ModeFullscreen
}

// RestoredFrameBorderInsets returns the frame border insets as if the
// window were restored, regardless of its current mode.
func (v *View) RestoredFrameBorderInsets() geometry.Insets {
	return geometry.UniformInsets(v.metrics.FrameBorderThickness)
}

// RestoredFrameEdgeInsets returns the frame edge insets as if the window
// were restored, regardless of its current mode.
func (v *View) RestoredFrameEdgeInsets() geometry.Insets {
	return geometry.TLBR(
		v.metrics.TopFrameEdgeThickness,
		v.metrics.SideFrameEdgeThickness,
		v.metrics.SideFrameEdgeThickness,
		v.metrics.SideFrameEdgeThickness,
	)
}

// FrameBorderInsets returns the insets from the window edge to the client
// view. Zero when the frame is condensed, unless restored forces the
// restored-mode value.
func (v *View) FrameBorderInsets(restored bool) geometry.Insets {
	if !restored && v.IsFrameCondensed() {
		return geometry.Insets{}
	}
	return v.RestoredFrameBorderInsets()
}

// FrameEdgeInsets returns the frame edge insets for the current mode, or
// the restored-mode value when restored is set.
func (v *View) FrameEdgeInsets(restored bool) geometry.Insets {
	if !restored && v.IsFrameCondensed() {
		return geometry.Insets{}
	}
	return v.RestoredFrameEdgeInsets()
}

// NonClientExtraTopThickness returns the extra row of non-client area
// above the restored top border.
func (v *View) NonClientExtraTopThickness() int {
	return v.metrics.NonClientExtraTopThickness
}

// FrameTopBorderThickness returns the border thickness along the top of
// the frame. A nonzero restored-mode thickness gains the extra top row.
func (v *View) FrameTopBorderThickness(restored bool) int {
	thickness := v.FrameBorderInsets(restored).Top
	if (restored || !v.IsFrameCondensed()) && thickness > 0 {
		thickness += v.NonClientExtraTopThickness()
	}
	return thickness
}

// IconSize returns the titlebar icon edge length. The icon never shrinks
// below the preset minimum.
func (v *View) IconSize() int {
	return max(v.metrics.FontHeight, v.metrics.IconMinimumSize)
}

// DefaultCaptionButtonY returns the vertical origin of the caption button
// row. Condensed frames pull the buttons to the window top edge.
func (v *View) DefaultCaptionButtonY(restored bool) int {
	if !restored && v.IsFrameCondensed() {
		return v.FrameBorderInsets(false).Top
	}
	return v.metrics.FrameShadowThickness
}

// NonClientTopHeight returns the total titlebar height: the taller of the
// icon row and the caption button row, plus the content edge shadow.
func (v *View) NonClientTopHeight(restored bool) int {
	iconHeight := v.FrameEdgeInsets(restored).Top + v.IconSize() +
		v.metrics.TitlebarVerticalPadding
	captionButtonHeight := v.DefaultCaptionButtonY(restored) +
		v.metrics.CaptionButtonHeight + v.metrics.CaptionButtonBottomPadding

	return max(iconHeight, captionButtonHeight) + v.metrics.ContentEdgeShadowThickness
}

// ClientBounds returns the client-area rectangle inside the window's
// current bounds. With a custom titlebar the client area starts below the
// top border, not below the full titlebar; negative sizes clamp to zero.
func (v *View) ClientBounds() geometry.Rect {
	v.ensureOpen()
	if !v.host.CustomTitleBar() {
		return v.base.ClientBounds(v)
	}
	border := v.FrameBorderInsets(false)
	topHeight := border.Top
	return geometry.Rect{
		X:      border.Left,
		Y:      topHeight,
		Width:  max(0, v.width()-border.Width()),
		Height: max(0, v.height()-topHeight-border.Bottom),
	}
}

// WindowBounds returns the window rectangle that gives the client area the
// requested bounds, grown by the frame border and the full titlebar height.
func (v *View) WindowBounds(clientBounds geometry.Rect) geometry.Rect {
	v.ensureOpen()
	if !v.host.CustomTitleBar() {
		return v.base.WindowBounds(v, clientBounds)
	}
	topHeight := v.NonClientTopHeight(false)
	border := v.FrameBorderInsets(false)
	return geometry.Rect{
		X:      max(0, clientBounds.X-border.Left),
		Y:      max(0, clientBounds.Y-topHeight),
		Width:  clientBounds.Width + border.Width(),
		Height: clientBounds.Height + topHeight + border.Bottom,
	}
}
