package app

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
	"github.com/Gaurav-Gosain/sash/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// segment is a styled run of cells placed at a fixed column of the
// titlebar row.
type segment struct {
	x     int
	text  string
	width int
	style lipgloss.Style
}

// renderWindow draws the full window: the frame chrome from the current
// frame layout plus the client content. The frame layout runs first so
// button bounds and the overlay rect match what gets painted.
func (m *Desktop) renderWindow(w *Window, focused bool) string {
	w.Frame.Layout()
	if config.ControlsOverlay {
		w.Frame.LayoutControlsOverlay()
	}

	borderColor := theme.BorderUnfocused()
	if focused {
		borderColor = theme.BorderFocused()
	}

	content := m.renderWindowContent(w, focused)

	switch {
	case w.Mode == frame.ModeFullscreen:
		// No chrome at all, the client area covers the window
		return lipgloss.NewStyle().
			Width(w.Width).
			Height(w.Height).
			Render(content)

	case w.Frame.IsFrameCondensed():
		// Maximized: titlebar row without border decorations, client
		// area fills the rest at full width
		body := lipgloss.NewStyle().
			Width(w.Width).
			Height(w.Height - 1).
			Render(content)
		return m.renderTitlebarRow(w, focused) + "\n" + body

	default:
		// Restored: titlebar row doubles as the top border, the body
		// keeps the side and bottom borders
		body := lipgloss.NewStyle().
			Width(w.Width).
			Height(w.Height - 1).
			Border(config.GetBorderForStyle()).
			BorderTop(false).
			BorderForeground(borderColor).
			Render(content)
		return m.renderTitlebarRow(w, focused) + "\n" + body
	}
}

// renderTitlebarRow paints the one-cell titlebar: border line, caption
// buttons at their laid-out bounds, the button container background, and
// the title. With the controls overlay enabled the published overlay rect
// is drawn as a content-owned strip instead of border line.
func (m *Desktop) renderTitlebarRow(w *Window, focused bool) string {
	borderColor := theme.BorderUnfocused()
	titleColor := theme.TitlebarInactiveFg()
	if focused {
		borderColor = theme.BorderFocused()
		titleColor = theme.TitlebarFg()
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	condensed := w.Frame.IsFrameCondensed()
	border := config.GetBorderForStyle()
	fill := border.Top
	if condensed {
		fill = " "
	}

	var strip geometry.Rect
	if config.ControlsOverlay {
		strip = w.OverlayRect
	}

	var segs []segment
	if !condensed {
		// The overlay strip owns the titlebar cells it covers, including
		// a border corner underneath it
		for _, cornerX := range []int{0, w.Width - 1} {
			if strip.Width > 0 && cornerX >= strip.X && cornerX < strip.X+strip.Width {
				continue
			}
			glyph := border.TopLeft
			if cornerX > 0 {
				glyph = border.TopRight
			}
			segs = append(segs, segment{x: cornerX, text: glyph, width: 1, style: borderStyle})
		}
	}

	buttons := w.Frame.VisibleButtons()

	// Button container background behind the caption buttons
	if config.ControlsOverlay && len(buttons) > 0 {
		if ph := w.Frame.Placeholder(); ph != nil {
			container := m.mirrorForDisplay(w, ph.Bounds())
			segs = append(segs, containerGapSegments(container, buttons, w, ph)...)
		}
	}

	for _, b := range buttons {
		bounds := m.mirrorForDisplay(w, b.Bounds())
		segs = append(segs, segment{
			x:     bounds.X,
			text:  b.Image().Glyph,
			width: bounds.Width,
			style: m.captionButtonStyle(b, borderColor),
		})
	}

	if strip.Width > 0 {
		segs = append(segs, m.overlayStripSegments(w, strip, titleColor)...)
	} else if title := m.titleSegment(w, buttons, titleColor); title != nil {
		segs = append(segs, *title)
	}

	return composeRow(w.Width, fill, borderStyle, segs)
}

// titleSegment builds the icon-and-title span for the titlebar. The span
// is computed in logical frame coordinates, after the leading buttons and
// before the trailing ones, then mirrored as a whole for display.
func (m *Desktop) titleSegment(w *Window, buttons []*frame.Button, titleColor color.Color) *segment {
	metrics := w.Frame.Metrics()
	insets := w.Frame.FrameBorderInsets(false)
	leadingKinds, _ := w.Frame.ButtonOrder()

	titleX := insets.Left
	for _, kind := range leadingKinds {
		if b := buttonForToken(buttons, kind); b != nil {
			titleX = max(titleX, b.Bounds().Right())
		}
	}
	titleX += metrics.IconLeftSpacing

	// Trailing buttons bound the available title width
	titleEnd := w.Width - insets.Right
	for _, b := range buttons {
		if b.Bounds().X >= titleX {
			titleEnd = min(titleEnd, b.Bounds().X)
		}
	}
	titleEnd -= metrics.CaptionSpacing

	available := titleEnd - titleX
	if available <= 0 {
		return nil
	}

	text := config.GetWindowIcon() + strings.Repeat(" ", metrics.IconTitleSpacing) + w.Title
	text = ansi.Truncate(text, available, "…")
	span := m.mirrorForDisplay(w, geometry.Rect{X: titleX, Y: 0, Width: ansi.StringWidth(text), Height: 1})
	return &segment{
		x:     span.X,
		text:  text,
		width: span.Width,
		style: lipgloss.NewStyle().Foreground(titleColor),
	}
}

// overlayStripSegments paints the published controls overlay rect as a
// content-owned strip with the title inside it.
func (m *Desktop) overlayStripSegments(w *Window, strip geometry.Rect, titleColor color.Color) []segment {
	stripStyle := lipgloss.NewStyle().
		Background(w.host.OverlayButtonColor()).
		Foreground(titleColor)

	metrics := w.Frame.Metrics()
	text := config.GetWindowIcon() + strings.Repeat(" ", metrics.IconTitleSpacing) + w.Title
	inner := strip.Width - 2*metrics.IconLeftSpacing
	if inner < 0 {
		inner = strip.Width
	}
	text = ansi.Truncate(text, inner, "…")

	pad := metrics.IconLeftSpacing
	left := strings.Repeat(" ", min(pad, strip.Width))
	line := left + text
	if extra := strip.Width - ansi.StringWidth(line); extra > 0 {
		line += strings.Repeat(" ", extra)
	}

	return []segment{{
		x:     strip.X,
		text:  line,
		width: strip.Width,
		style: stripStyle,
	}}
}

// containerGapSegments fills the parts of the button container not covered
// by a button with the container background. The container rect's vertical
// extent is ignored; the paint happens on the titlebar row.
func containerGapSegments(container geometry.Rect, buttons []*frame.Button, w *Window, ph *frame.Placeholder) []segment {
	bg := lipgloss.NewStyle().Background(ph.Background())
	var segs []segment

	covered := make([]geometry.Rect, 0, len(buttons))
	for _, b := range buttons {
		covered = append(covered, b.Bounds())
	}
	if w.host.MirroredLayout() {
		for i := range covered {
			covered[i] = covered[i].Mirror(w.Width)
		}
	}
	slices.SortFunc(covered, func(a, b geometry.Rect) int { return a.X - b.X })

	x := container.X
	end := container.X + container.Width
	for _, r := range covered {
		if r.X > x && x < end {
			gap := min(r.X, end) - x
			segs = append(segs, segment{x: x, text: strings.Repeat(" ", gap), width: gap, style: bg})
		}
		x = max(x, r.X+r.Width)
	}
	if x < end {
		segs = append(segs, segment{x: x, text: strings.Repeat(" ", end-x), width: end - x, style: bg})
	}
	return segs
}

// mirrorForDisplay flips a frame-local rect for right-to-left layouts.
// Layout stores logical coordinates; painting needs screen coordinates.
func (m *Desktop) mirrorForDisplay(w *Window, r geometry.Rect) geometry.Rect {
	if w.host.MirroredLayout() {
		return r.Mirror(w.Width)
	}
	return r
}

// captionButtonStyle styles a caption button glyph for its interaction
// state.
func (m *Desktop) captionButtonStyle(b *frame.Button, borderColor color.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch b.State() {
	case frame.StateHovered:
		if b.Kind() == frame.ButtonClose {
			return style.Foreground(theme.ButtonFg()).Background(theme.CloseButtonHoverBg())
		}
		return style.Foreground(theme.ButtonFg()).Background(theme.ButtonHoverBg())
	case frame.StatePressed:
		return style.Foreground(theme.ButtonFg()).Background(theme.ButtonPressedBg())
	case frame.StateDisabled:
		return style.Foreground(theme.ButtonDisabledFg())
	default:
		return style.Foreground(borderColor)
	}
}

// buttonForToken finds the button for an order token. The maximize token
// matches the restore button when the twins are swapped.
func buttonForToken(buttons []*frame.Button, kind frame.ButtonKind) *frame.Button {
	for _, b := range buttons {
		if b.Kind() == kind {
			return b
		}
		if kind == frame.ButtonMaximize && b.Kind() == frame.ButtonRestore {
			return b
		}
	}
	return nil
}

// composeRow joins sorted non-overlapping segments into one styled row,
// filling gaps with the fill string. Segments outside the row are dropped.
func composeRow(width int, fill string, fillStyle lipgloss.Style, segs []segment) string {
	slices.SortFunc(segs, func(a, b segment) int { return a.x - b.x })

	var sb strings.Builder
	x := 0
	for _, s := range segs {
		if s.x < x || s.x+s.width > width || s.width <= 0 {
			continue
		}
		if gap := s.x - x; gap > 0 {
			sb.WriteString(fillStyle.Render(strings.Repeat(fill, gap)))
		}
		sb.WriteString(s.style.Render(s.text))
		x = s.x + s.width
	}
	if x < width {
		sb.WriteString(fillStyle.Render(strings.Repeat(fill, width-x)))
	}
	return sb.String()
}

// renderWindowContent draws the client-area fact sheet: the window's frame
// geometry as the layout engine computed it, plus the content's mouse
// readout. Only position-independent facts appear so the content cache
// survives window moves.
func (m *Desktop) renderWindowContent(w *Window, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.StatsLabel())
	valueStyle := lipgloss.NewStyle().Foreground(theme.StatsValue())

	client := w.Frame.ClientBounds()

	rows := []struct {
		label string
		value string
	}{
		{"mode", w.Mode.String()},
		{"size", fmt.Sprintf("%dx%d", w.Width, w.Height)},
		{"client", fmt.Sprintf("%d,%d %dx%d", client.X, client.Y, client.Width, client.Height)},
		{"top height", fmt.Sprintf("%d", w.Frame.NonClientTopHeight(false))},
	}
	if config.ControlsOverlay {
		rows = append(rows, struct {
			label string
			value string
		}{"overlay", fmt.Sprintf("%d,%d %dx%d", w.OverlayRect.X, w.OverlayRect.Y, w.OverlayRect.Width, w.OverlayRect.Height)})
	}
	if w.HasClick {
		rows = append(rows, struct {
			label string
			value string
		}{"last click", fmt.Sprintf("%d,%d", w.LastClick.X, w.LastClick.Y)})
	}
	if w.WheelDelta != 0 {
		rows = append(rows, struct {
			label string
			value string
		}{"wheel", fmt.Sprintf("%+d", w.WheelDelta)})
	}

	var lines []string
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(padRight(row.label, 11))+valueStyle.Render(row.value))
	}
	if w.Content != "" {
		lines = append(lines, "", valueStyle.Render(w.Content))
	}
	if focused {
		lines = append(lines, "", labelStyle.Render("drag titlebar to move, edges to resize"))
	}

	return " " + strings.Join(lines, "\n ")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
