package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Window management actions
	d.Register("new_window", handleNewWindow)
	d.Register("close_window", handleCloseWindow)
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("toggle_maximize", handleToggleMaximize)
	d.Register("restore_all", handleRestoreAll)
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)

	// Window selection (1-9)
	for i := 1; i <= 9; i++ {
		d.Register("select_window_"+string(rune('0'+i)), makeSelectWindowHandler(i-1))
	}

	// Frame control actions
	d.Register("toggle_overlay", handleToggleOverlay)
	d.Register("toggle_mirror", handleToggleMirror)
	d.Register("swap_button_order", handleSwapButtonOrder)
	d.Register("toggle_system_bar", handleToggleSystemBar)
	d.Register("toggle_fullscreen", handleToggleFullscreen)
	d.Register("reset_button_state", handleResetButtonState)

	// Move and resize actions
	d.Register("move_up", makeMoveHandler(0, -1))
	d.Register("move_down", makeMoveHandler(0, 1))
	d.Register("move_left", makeMoveHandler(-1, 0))
	d.Register("move_right", makeMoveHandler(1, 0))
	d.Register("grow_width", makeResizeHandler(2, 0))
	d.Register("shrink_width", makeResizeHandler(-2, 0))
	d.Register("grow_height", makeResizeHandler(0, 1))
	d.Register("shrink_height", makeResizeHandler(0, -1))

	// System actions
	d.Register("toggle_help", handleToggleHelp)
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, m)
	}
	return m, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Window Management Action Handlers
// ============================================================================

func handleNewWindow(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.AddWindow("")
	return m, nil
}

func handleCloseWindow(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	if len(m.Windows) > 0 && m.FocusedWindow >= 0 {
		m.DeleteWindow(m.FocusedWindow)
	}
	return m, nil
}

func handleMinimizeWindow(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := m.GetFocusedWindow(); w != nil && !w.Minimized {
		m.MinimizeWindow(w)
	}
	return m, nil
}

func handleToggleMaximize(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := m.GetFocusedWindow(); w != nil {
		m.ToggleMaximize(w)
	}
	return m, nil
}

func handleRestoreAll(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.RestoreAllWindows()
	return m, nil
}

func handleNextWindow(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.CycleToNextWindow()
	return m, nil
}

func handlePrevWindow(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.CycleToPreviousWindow()
	return m, nil
}

// makeSelectWindowHandler creates a handler focusing the nth visible window
func makeSelectWindowHandler(n int) ActionHandler {
	return func(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
		focusVisibleWindow(m, n)
		return m, nil
	}
}

// focusVisibleWindow focuses the nth non-minimized window in creation order
func focusVisibleWindow(m *app.Desktop, n int) {
	visible := 0
	for i, w := range m.Windows {
		if w.Minimized {
			continue
		}
		if visible == n {
			m.FocusWindow(i)
			return
		}
		visible++
	}
}

// ============================================================================
// Frame Control Action Handlers
// ============================================================================

func handleToggleOverlay(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	config.ControlsOverlay = !config.ControlsOverlay
	m.RelayoutAllWindows()
	if config.ControlsOverlay {
		m.ShowNotification("Controls Overlay Enabled", "success", config.NotificationDuration)
	} else {
		m.ShowNotification("Controls Overlay Disabled", "info", config.NotificationDuration)
	}
	return m, nil
}

func handleToggleMirror(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	config.MirrorLayout = !config.MirrorLayout
	m.RelayoutAllWindows()
	if config.MirrorLayout {
		m.ShowNotification("Mirrored Layout Enabled", "success", config.NotificationDuration)
	} else {
		m.ShowNotification("Mirrored Layout Disabled", "info", config.NotificationDuration)
	}
	return m, nil
}

func handleSwapButtonOrder(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.SwapButtonOrder()
	m.ShowNotification("Caption Buttons Swapped", "info", config.NotificationDuration)
	return m, nil
}

func handleToggleSystemBar(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	config.CustomTitleBar = !config.CustomTitleBar
	m.RelayoutAllWindows()
	if config.CustomTitleBar {
		m.ShowNotification("In-Frame Titlebar Enabled", "success", config.NotificationDuration)
	} else {
		m.ShowNotification("In-Frame Titlebar Disabled", "info", config.NotificationDuration)
	}
	return m, nil
}

func handleToggleFullscreen(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	if w := m.GetFocusedWindow(); w != nil {
		m.ToggleFullscreen(w)
	}
	return m, nil
}

func handleResetButtonState(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	for _, w := range m.Windows {
		w.Frame.ResetWindowControls()
		w.MarkContentDirty()
	}
	m.ShowNotification("Caption Button States Reset", "info", config.NotificationDuration)
	return m, nil
}

// ============================================================================
// Move and Resize Action Handlers
// ============================================================================

// makeMoveHandler creates a handler nudging the focused window by one cell.
// Only restored windows move; maximized and fullscreen windows are pinned.
func makeMoveHandler(dx, dy int) ActionHandler {
	return func(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
		w := m.GetFocusedWindow()
		if w == nil || w.Minimized || w.Mode != frame.ModeRestored {
			return m, nil
		}
		newX, newY := clampDragPosition(m, w, w.X+dx, w.Y+dy)
		if newX != w.X || newY != w.Y {
			w.X = newX
			w.Y = newY
			w.MarkPositionDirty()
		}
		return m, nil
	}
}

// makeResizeHandler creates a handler growing or shrinking the focused window
func makeResizeHandler(dw, dh int) ActionHandler {
	return func(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
		w := m.GetFocusedWindow()
		if w == nil || w.Minimized || w.Mode != frame.ModeRestored || !w.CanResize {
			return m, nil
		}
		area := m.WorkArea()
		newW := min(w.Width+dw, area.Width)
		newH := min(w.Height+dh, area.Height)
		w.Resize(newW, newH)
		return m, nil
	}
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleHelp(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.ShowHelp = !m.ShowHelp
	return m, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	m.ShowLogs = !m.ShowLogs
	m.LogScrollOffset = 0
	return m, nil
}

func handleQuit(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	return m, tea.Quit
}
