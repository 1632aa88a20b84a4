package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sash/internal/config"
)

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// InputHandler processes input messages for the desktop.
// This allows the input handling to be injected from a separate package,
// breaking the circular dependency between app and input.
type InputHandler func(msg tea.Msg, m *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// TickCmd creates a command that generates tick messages at the normal rate.
// This drives the main update loop for the clock and stats overlays.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at the
// interaction rate. Used during drag and resize to improve mouse
// responsiveness.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init starts the tick timer.
func (m *Desktop) Init() tea.Cmd {
	return TickCmd()
}

// Update handles all incoming messages and updates the desktop state.
// It processes keyboard, mouse, and timer events.
func (m *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any non-tick message invalidates the render cache
	if _, isTick := msg.(TickerMsg); !isTick {
		m.renderSkipped = false
	}

	switch msg := msg.(type) {
	case TickerMsg:
		if !config.HideStats {
			m.UpdateCPUHistory()
			m.UpdateRAMUsage()
		}
		m.CleanupNotifications()

		nextTick := TickCmd()
		if m.InteractionMode {
			nextTick = SlowTickCmd()
		}

		// Skip rendering on idle ticks. The clock overlay forces one
		// render per second so it never goes stale.
		now := time.Time(msg)
		clockTick := !config.HideClock && now.Second() != m.lastClockSecond
		if clockTick {
			m.lastClockSecond = now.Second()
		}
		if !m.hasRenderChanges() && !clockTick && !m.InteractionMode && len(m.Windows) > 0 {
			m.renderSkipped = true
			return m, nextTick
		}
		m.renderSkipped = false
		return m, nextTick

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		// Delegate to the registered input handler
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.MarkAllDirty()

		// Pull floating windows back on screen and track maximized and
		// fullscreen windows to the new size
		m.ClampWindowsToView()
		return m, nil

	case tea.MouseMsg:
		// Catch-all for any other mouse events to prevent them from leaking
		return m, nil

	case tea.FocusMsg:
		return m, nil

	case tea.BlurMsg:
		return m, nil
	}

	return m, nil
}

// hasRenderChanges reports whether any window or overlay needs a redraw.
func (m *Desktop) hasRenderChanges() bool {
	if len(m.Notifications) > 0 {
		return true
	}
	for _, w := range m.Windows {
		if w.CachedLayer == nil || w.Dirty || w.ContentDirty || w.PositionDirty {
			return true
		}
	}
	return false
}
