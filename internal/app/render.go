package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/theme"
)

// GetCanvas composes all window layers, overlays, and the status bar into a
// canvas. When render is false only the window layers are produced, which is
// what the input hit-testing paths need.
func (m *Desktop) GetCanvas(render bool) *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	layers := make([]*lipgloss.Layer, 0, len(m.Windows)+8)

	viewportWidth := m.Width
	viewportHeight := m.UsableHeight()

	for i := range m.Windows {
		window := m.Windows[i]

		if window.Minimized {
			continue
		}

		// Skip windows fully off screen
		margin := 5
		isVisible := window.X+window.Width >= -margin &&
			window.X <= viewportWidth+margin &&
			window.Y+window.Height >= -margin &&
			window.Y <= viewportHeight+margin
		if !isVisible {
			continue
		}

		isFocused := m.FocusedWindow == i

		if window.CachedLayer != nil && !window.Dirty && !window.ContentDirty && !window.PositionDirty {
			layers = append(layers, window.CachedLayer)
			continue
		}

		content := m.renderWindow(window, isFocused)

		window.CachedLayer = lipgloss.NewLayer(content).
			X(window.X).Y(window.Y).Z(window.Z).ID(window.ID)
		layers = append(layers, window.CachedLayer)

		window.ClearDirtyFlags()
	}

	if render {
		layers = append(layers, m.renderOverlays()...)
		layers = append(layers, m.renderStatusBar())
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// View renders the whole desktop.
func (m *Desktop) View() tea.View {
	var view tea.View

	// Fast path: return cached content when frame-skip determined nothing
	// changed. This avoids the canvas pipeline on idle ticks.
	if m.renderSkipped && m.cachedViewContent != "" {
		view.SetContent(m.cachedViewContent)
	} else {
		content := lipgloss.Sprint(m.GetCanvas(true).Render())
		m.cachedViewContent = content
		view.SetContent(content)
	}

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true

	if theme.IsEnabled() {
		view.BackgroundColor = theme.DesktopBg()
	}

	return view
}

// renderStatusBar draws the bottom status bar: mode indicator, window count,
// focused window facts, and active frame settings.
func (m *Desktop) renderStatusBar() *lipgloss.Layer {
	barStyle := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg())
	accentStyle := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarAccent()).
		Bold(true)

	left := accentStyle.Render(" sash ") +
		barStyle.Render(windowCountLabel(len(m.Windows), m.minimizedCount()))

	var middle string
	if focused := m.GetFocusedWindow(); focused != nil {
		middle = barStyle.Render(focused.Title+" ") +
			accentStyle.Render(focused.Mode.String())
	}

	right := barStyle.Render(m.frameFlagsLabel() + " ")

	leftWidth := lipgloss.Width(left)
	middleWidth := lipgloss.Width(middle)
	rightWidth := lipgloss.Width(right)

	gap := m.Width - leftWidth - middleWidth - rightWidth
	if gap < 0 {
		middle = ""
		gap = max(m.Width-leftWidth-rightWidth, 0)
	}
	leftGap := gap / 2
	rightGap := gap - leftGap

	bar := left +
		barStyle.Render(spaces(leftGap)) +
		middle +
		barStyle.Render(spaces(rightGap)) +
		right

	return lipgloss.NewLayer(bar).
		X(0).
		Y(m.Height - config.StatusBarHeight).
		Z(config.ZIndexTime).
		ID("statusbar")
}

func (m *Desktop) minimizedCount() int {
	count := 0
	for _, w := range m.Windows {
		if w.Minimized {
			count++
		}
	}
	return count
}

func windowCountLabel(total, minimized int) string {
	if minimized == 0 {
		return plural(total, "window")
	}
	return plural(total, "window") + " (" + plural(minimized, "min") + ")"
}

// frameFlagsLabel summarizes non-default frame settings for the status bar.
func (m *Desktop) frameFlagsLabel() string {
	var flags string
	if config.ControlsOverlay {
		flags += " WCO"
	}
	if config.MirrorLayout {
		flags += " RTL"
	}
	if !config.CustomTitleBar {
		flags += " SYS"
	}
	if leading, _ := m.Orders.Order(); len(leading) > 0 {
		flags += " LEAD"
	}
	return flags
}
