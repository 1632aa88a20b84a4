package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/sash/internal/app"
)

// HandleWindowManagementKey handles keyboard input outside of prefix mode.
// Overlay keys take priority, then the key resolves through the keybind
// registry to a dispatched action.
func HandleWindowManagementKey(msg tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()

	// Handle help menu interactions before general keybind dispatch
	if m.ShowHelp {
		if key == "esc" || key == "q" || key == "?" {
			m.ShowHelp = false
		}
		// Swallow other keys while the help menu is open
		return m, nil
	}

	// Handle log viewer (takes priority in window management mode)
	if m.ShowLogs {
		return handleLogViewerKey(msg, m)
	}

	// Try config-based dispatch first (if registry is available)
	if m.KeybindRegistry != nil {
		if action, ok := m.KeybindRegistry.ActionForKey(key); ok {
			dispatcher := GetDispatcher()
			if dispatcher.HasAction(action) {
				return dispatcher.Dispatch(action, msg, m)
			}
		}
	}

	// Emergency quit bypasses the config system
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Unbound keys do nothing
	return m, nil
}

// handleLogViewerKey handles keyboard input when the log viewer overlay is active
func handleLogViewerKey(msg tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()

	// Close log viewer with q or esc
	if key == "q" || key == "esc" {
		m.ShowLogs = false
		m.LogScrollOffset = 0
		return m, nil
	}

	logsPerPage, maxScroll := logScrollBounds(m.Height, len(m.LogMessages))

	// Scroll up/down
	if key == "up" || key == "k" {
		if m.LogScrollOffset > 0 {
			m.LogScrollOffset--
		}
		return m, nil
	}
	if key == "down" || key == "j" {
		if m.LogScrollOffset < maxScroll {
			m.LogScrollOffset++
		}
		return m, nil
	}

	// Page up/down (scroll by half page)
	pageSize := max(logsPerPage/2, 1)
	if key == "pgup" || key == "ctrl+u" {
		m.LogScrollOffset -= pageSize
		if m.LogScrollOffset < 0 {
			m.LogScrollOffset = 0
		}
		return m, nil
	}
	if key == "pgdown" || key == "ctrl+d" {
		m.LogScrollOffset += pageSize
		if m.LogScrollOffset > maxScroll {
			m.LogScrollOffset = maxScroll
		}
		return m, nil
	}

	// Go to top/bottom
	if key == "g" || key == "home" {
		m.LogScrollOffset = 0
		return m, nil
	}
	if key == "G" || key == "end" {
		m.LogScrollOffset = maxScroll
		return m, nil
	}

	// Ignore other keys when log viewer is active
	return m, nil
}
