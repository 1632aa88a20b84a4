package input

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// Minimum sliver of a window that must stay on screen during a drag so the
// titlebar remains grabbable.
const (
	minVisibleX = 20
	minVisibleY = 3
)

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	m.LastMouseX = mouse.X
	m.LastMouseY = mouse.Y

	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	// Any click dismisses the overlays
	if m.ShowHelp || m.ShowLogs {
		m.ShowHelp = false
		m.ShowLogs = false
		m.LogScrollOffset = 0
		return m, nil
	}

	w := m.WindowAt(mouse.X, mouse.Y)
	if w == nil {
		return m, nil
	}
	idx := m.WindowIndex(w)
	m.FocusWindow(idx)

	local := geometry.Point{X: mouse.X - w.X, Y: mouse.Y - w.Y}
	region := w.Frame.HitTest(local)

	switch region {
	case frame.RegionClose, frame.RegionMaxButton, frame.RegionMinButton:
		// Arm the caption button; it activates on release while still over it
		if b := w.Frame.ButtonAt(local); b != nil && b.State() != frame.StateDisabled {
			b.SetState(frame.StatePressed)
			m.PressedButton = b
			m.PressedWindowIndex = idx
			w.MarkContentDirty()
		}
		return m, nil

	case frame.RegionCaption, frame.RegionTop:
		// In the cell preset the one-row titlebar coincides with the top
		// resize band, so the title row drags and the top corners resize
		beginDrag(m, w, idx, mouse.X, mouse.Y)
		return m, nil

	case frame.RegionClient:
		// Forward the click to the window content with client-relative
		// coordinates
		cb := w.ContentBounds()
		if cb.Contains(geometry.Point{X: mouse.X, Y: mouse.Y}) {
			w.SendMouse(uv.MouseClickEvent{
				X:      mouse.X - cb.X,
				Y:      mouse.Y - cb.Y,
				Button: uv.MouseButton(mouse.Button),
				Mod:    uv.KeyMod(mouse.Mod),
			})
		}
		return m, nil
	}

	if region.IsResize() && w.CanResize && w.Mode == frame.ModeRestored {
		m.Resizing = true
		m.ResizeRegion = region
		m.DraggedWindowIndex = idx
		m.PreResizeBounds = w.Bounds()
		m.ResizeStartX = mouse.X
		m.ResizeStartY = mouse.Y
		m.InteractionMode = true
	}
	return m, nil
}

// beginDrag starts a titlebar drag. Only floating windows move; maximized
// and fullscreen windows are pinned.
func beginDrag(m *app.Desktop, w *app.Window, idx, x, y int) {
	if w.Mode != frame.ModeRestored {
		return
	}
	m.Dragging = true
	m.DraggedWindowIndex = idx
	m.DragOffsetX = x - w.X
	m.DragOffsetY = y - w.Y
	m.InteractionMode = true
}

// handleMouseMotion handles mouse motion events
func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	m.LastMouseX = mouse.X
	m.LastMouseY = mouse.Y

	// A pressed caption button captures the pointer until release
	if m.PressedButton != nil {
		trackPressedButton(m, mouse.X, mouse.Y)
		return m, nil
	}

	if m.Dragging {
		dragWindow(m, mouse.X, mouse.Y)
		return m, nil
	}
	if m.Resizing {
		resizeWindow(m, mouse.X, mouse.Y)
		return m, nil
	}

	syncHoverStates(m, mouse.X, mouse.Y)
	return m, nil
}

// handleMouseRelease handles mouse release events
func handleMouseRelease(msg tea.MouseReleaseMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()

	if m.PressedButton != nil {
		b := m.PressedButton
		idx := m.PressedWindowIndex
		m.PressedButton = nil
		m.PressedWindowIndex = -1
		if idx >= 0 && idx < len(m.Windows) {
			w := m.Windows[idx]
			local := geometry.Point{X: mouse.X - w.X, Y: mouse.Y - w.Y}
			stillOver := w.Frame.ButtonAt(local) == b
			b.SetState(frame.StateNormal)
			w.MarkContentDirty()
			if stillOver {
				// Activate may close the window, so state went back first
				b.Activate()
			}
		}
		return m, nil
	}

	if m.Dragging || m.Resizing {
		if m.DraggedWindowIndex >= 0 && m.DraggedWindowIndex < len(m.Windows) {
			m.Windows[m.DraggedWindowIndex].Frame.ResetWindowControls()
		}
		m.Dragging = false
		m.Resizing = false
		m.ResizeRegion = frame.RegionNowhere
		m.DraggedWindowIndex = -1
		m.InteractionMode = false
	}
	return m, nil
}

// handleMouseWheel handles mouse wheel events
func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()

	if m.ShowLogs {
		_, maxScroll := logScrollBounds(m.Height, len(m.LogMessages))
		switch msg.Button {
		case tea.MouseWheelUp:
			if m.LogScrollOffset > 0 {
				m.LogScrollOffset--
			}
		case tea.MouseWheelDown:
			if m.LogScrollOffset < maxScroll {
				m.LogScrollOffset++
			}
		}
		return m, nil
	}

	// Forward the wheel to the content under the pointer
	if w := m.WindowAt(mouse.X, mouse.Y); w != nil {
		cb := w.ContentBounds()
		if cb.Contains(geometry.Point{X: mouse.X, Y: mouse.Y}) {
			w.SendMouse(uv.MouseWheelEvent{
				X:      mouse.X - cb.X,
				Y:      mouse.Y - cb.Y,
				Button: uv.MouseButton(mouse.Button),
				Mod:    uv.KeyMod(mouse.Mod),
			})
		}
	}
	return m, nil
}

// trackPressedButton keeps the pressed caption button's state in sync with
// whether the pointer is still over it
func trackPressedButton(m *app.Desktop, x, y int) {
	if m.PressedWindowIndex < 0 || m.PressedWindowIndex >= len(m.Windows) {
		m.PressedButton = nil
		m.PressedWindowIndex = -1
		return
	}
	w := m.Windows[m.PressedWindowIndex]
	local := geometry.Point{X: x - w.X, Y: y - w.Y}

	want := frame.StateNormal
	if w.Frame.ButtonAt(local) == m.PressedButton {
		want = frame.StatePressed
	}
	if m.PressedButton.State() != want {
		m.PressedButton.SetState(want)
		w.MarkContentDirty()
	}
}

// dragWindow moves the dragged window to follow the pointer
func dragWindow(m *app.Desktop, x, y int) {
	if m.DraggedWindowIndex < 0 || m.DraggedWindowIndex >= len(m.Windows) {
		return
	}
	w := m.Windows[m.DraggedWindowIndex]
	newX, newY := clampDragPosition(m, w, x-m.DragOffsetX, y-m.DragOffsetY)
	if newX != w.X || newY != w.Y {
		w.X = newX
		w.Y = newY
		w.MarkPositionDirty()
	}
}

// clampDragPosition keeps a grabbable sliver of the window inside the work
// area so a drag can never strand the titlebar off screen
func clampDragPosition(m *app.Desktop, w *app.Window, x, y int) (int, int) {
	vis := min(minVisibleX, w.Width)
	if x < vis-w.Width {
		x = vis - w.Width
	}
	if x > m.Width-vis {
		x = m.Width - vis
	}
	if y < 0 {
		y = 0
	}
	if maxY := max(m.UsableHeight()-minVisibleY, 0); y > maxY {
		y = maxY
	}
	return x, y
}

// resizeWindow applies the pointer delta to the bounds captured when the
// resize started. Left and top handles re-anchor the origin so the opposite
// edge stays put, including when the minimum size kicks in.
func resizeWindow(m *app.Desktop, x, y int) {
	if m.DraggedWindowIndex < 0 || m.DraggedWindowIndex >= len(m.Windows) {
		return
	}
	w := m.Windows[m.DraggedWindowIndex]
	dx := x - m.ResizeStartX
	dy := y - m.ResizeStartY
	pre := m.PreResizeBounds

	newX, newY := pre.X, pre.Y
	newW, newH := pre.Width, pre.Height

	if resizesLeft(m.ResizeRegion) {
		newX = pre.X + dx
		newW = pre.Width - dx
		if newW < config.MinWindowWidth {
			newX = pre.X + pre.Width - config.MinWindowWidth
			newW = config.MinWindowWidth
		}
	}
	if resizesRight(m.ResizeRegion) {
		newW = max(pre.Width+dx, config.MinWindowWidth)
	}
	if resizesTop(m.ResizeRegion) {
		newY = pre.Y + dy
		newH = pre.Height - dy
		if newH < config.MinWindowHeight {
			newY = pre.Y + pre.Height - config.MinWindowHeight
			newH = config.MinWindowHeight
		}
	}
	if resizesBottom(m.ResizeRegion) {
		newH = max(pre.Height+dy, config.MinWindowHeight)
	}

	// Keep the window inside the viewport
	if newX < 0 {
		newW += newX
		newX = 0
	}
	if newY < 0 {
		newH += newY
		newY = 0
	}
	if newX+newW > m.Width {
		newW = m.Width - newX
	}
	if newY+newH > m.UsableHeight() {
		newH = m.UsableHeight() - newY
	}

	w.X = newX
	w.Y = newY
	w.Resize(newW, newH)
	w.MarkPositionDirty()
}

func resizesLeft(r frame.Region) bool {
	return r == frame.RegionLeft || r == frame.RegionTopLeft || r == frame.RegionBottomLeft
}

func resizesRight(r frame.Region) bool {
	return r == frame.RegionRight || r == frame.RegionTopRight || r == frame.RegionBottomRight
}

func resizesTop(r frame.Region) bool {
	return r == frame.RegionTop || r == frame.RegionTopLeft || r == frame.RegionTopRight
}

func resizesBottom(r frame.Region) bool {
	return r == frame.RegionBottom || r == frame.RegionBottomLeft || r == frame.RegionBottomRight
}

// syncHoverStates applies hover feedback to the caption button under the
// pointer and clears it everywhere else. Pressed and disabled buttons are
// left alone.
func syncHoverStates(m *app.Desktop, x, y int) {
	target := m.WindowAt(x, y)
	var hovered *frame.Button
	if target != nil {
		local := geometry.Point{X: x - target.X, Y: y - target.Y}
		hovered = target.Frame.ButtonAt(local)
	}

	for _, w := range m.Windows {
		if w.Minimized {
			continue
		}
		for _, b := range w.Frame.VisibleButtons() {
			if b == hovered {
				if b.State() == frame.StateNormal {
					b.SetState(frame.StateHovered)
					w.MarkContentDirty()
				}
			} else if b.State() == frame.StateHovered {
				b.SetState(frame.StateNormal)
				w.MarkContentDirty()
			}
		}
	}
}
