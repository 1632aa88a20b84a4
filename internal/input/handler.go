// Package input routes keyboard and mouse events to desktop actions.
//
// Keys resolve through the configurable keybind registry, with a tmux-style
// leader prefix for window commands. Mouse events drive caption buttons,
// titlebar drags, and edge resizes through the frame hit-test.
package input

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
)

// PrefixKeyTimeout is the duration after which prefix mode times out
const PrefixKeyTimeout = 2 * time.Second

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, m *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, m)
	case tea.PasteStartMsg:
		return m, nil
	case tea.PasteEndMsg:
		return m, nil
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, m)
	default:
		return m, nil
	}
}

// HandleKeyPress handles all keyboard input
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Check for leader key activation
	msgStr := strings.ToLower(msg.String())
	leaderKey := strings.ToLower(config.LeaderKey)
	if msgStr == leaderKey {
		return handlePrefixKey(msg, m)
	}

	// Timeout prefix mode after 2 seconds
	if m.PrefixActive && time.Since(m.LastPrefixTime) > PrefixKeyTimeout {
		m.PrefixActive = false
	}

	// Handle prefix commands (leader key followed by another key)
	if m.PrefixActive {
		return HandlePrefixCommand(msg, m)
	}

	return HandleWindowManagementKey(msg, m)
}

// handlePrefixKey handles leader key activation
func handlePrefixKey(_ tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Double leader key cancels
	if m.PrefixActive {
		m.PrefixActive = false
		return m, nil
	}
	m.PrefixActive = true
	m.LastPrefixTime = time.Now()
	return m, nil
}

// HandlePrefixCommand handles prefix commands (leader key followed by another key)
func HandlePrefixCommand(msg tea.KeyPressMsg, m *app.Desktop) (*app.Desktop, tea.Cmd) {
	// Deactivate prefix after handling command
	m.PrefixActive = false

	switch msg.String() {
	// Window management
	case "c":
		// Create new window (like tmux)
		m.AddWindow("")
		return m, nil
	case "x":
		// Close current window
		if len(m.Windows) > 0 && m.FocusedWindow >= 0 {
			m.DeleteWindow(m.FocusedWindow)
		}
		return m, nil
	case "n", "tab":
		m.CycleToNextWindow()
		return m, nil
	case "p", "shift+tab":
		m.CycleToPreviousWindow()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Jump to window by number
		num := int(msg.String()[0] - '0')
		focusVisibleWindow(m, num-1)
		return m, nil
	case "m":
		if w := m.GetFocusedWindow(); w != nil && !w.Minimized {
			m.MinimizeWindow(w)
		}
		return m, nil
	case "f":
		if w := m.GetFocusedWindow(); w != nil {
			m.ToggleMaximize(w)
		}
		return m, nil
	case "z":
		// Toggle fullscreen for current window
		if w := m.GetFocusedWindow(); w != nil {
			m.ToggleFullscreen(w)
		}
		return m, nil
	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	case "esc":
		// Escape cancels prefix mode
		return m, nil
	default:
		// Unknown prefix command, ignore
		return m, nil
	}
}

// logScrollBounds computes the scrollable range for the log viewer overlay,
// matching the render logic. Returns logsPerPage (visible capacity) and
// maxScroll (maximum scroll offset).
func logScrollBounds(screenHeight, totalLogs int) (logsPerPage, maxScroll int) {
	maxDisplayHeight := max(screenHeight-8, 8)

	// Fixed overhead: title (1) + blank after title (1) + blank before hint (1) + hint (1) = 4
	fixedLines := 4
	// If scrollable, add scroll indicator: blank (1) + indicator (1) = 2
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage = max(maxDisplayHeight-fixedLines, 1)
	maxScroll = max(totalLogs-logsPerPage, 0)
	return logsPerPage, maxScroll
}
