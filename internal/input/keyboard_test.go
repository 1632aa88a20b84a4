package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
)

func newTestDesktop(t *testing.T, width, height int) *app.Desktop {
	t.Helper()
	cfg := config.DefaultConfig()
	return app.NewDesktop(app.DesktopOptions{
		KeybindRegistry: config.NewKeybindRegistry(&cfg.Keybindings),
		Width:           width,
		Height:          height,
	})
}

func TestRegistryDispatch(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyPressMsg
		setup func(m *app.Desktop)
		check func(t *testing.T, m *app.Desktop)
	}{
		{
			name: "new_window creates a window",
			key:  tea.KeyPressMsg{Code: 'n', Text: "n"},
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 1 {
					t.Errorf("windows = %d, want 1", len(m.Windows))
				}
			},
		},
		{
			name:  "close_window deletes the focused window",
			key:   tea.KeyPressMsg{Code: 'w', Text: "w"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 0 {
					t.Errorf("windows = %d, want 0", len(m.Windows))
				}
			},
		},
		{
			name:  "minimize_window hides the focused window",
			key:   tea.KeyPressMsg{Code: 'm', Text: "m"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if !m.Windows[0].Minimized {
					t.Error("focused window was not minimized")
				}
			},
		},
		{
			name:  "toggle_maximize maximizes the focused window",
			key:   tea.KeyPressMsg{Code: 'f', Text: "f"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if m.Windows[0].Mode != frame.ModeMaximized {
					t.Errorf("mode = %v, want %v", m.Windows[0].Mode, frame.ModeMaximized)
				}
			},
		},
		{
			name: "restore_all brings back minimized windows",
			key:  tea.KeyPressMsg{Code: 'M', Text: "M"},
			setup: func(m *app.Desktop) {
				w := m.AddWindow("a")
				m.MinimizeWindow(w)
			},
			check: func(t *testing.T, m *app.Desktop) {
				if m.Windows[0].Minimized {
					t.Error("window is still minimized after restore_all")
				}
			},
		},
		{
			name: "next_window cycles focus",
			key:  tea.KeyPressMsg{Code: tea.KeyTab},
			setup: func(m *app.Desktop) {
				m.AddWindow("a")
				m.AddWindow("b")
			},
			check: func(t *testing.T, m *app.Desktop) {
				if m.FocusedWindow != 0 {
					t.Errorf("FocusedWindow = %d, want 0", m.FocusedWindow)
				}
			},
		},
		{
			name: "select_window_2 focuses the second visible window",
			key:  tea.KeyPressMsg{Code: '2', Text: "2"},
			setup: func(m *app.Desktop) {
				m.AddWindow("a")
				m.AddWindow("b")
				m.AddWindow("c")
				m.FocusWindow(0)
			},
			check: func(t *testing.T, m *app.Desktop) {
				if m.FocusedWindow != 1 {
					t.Errorf("FocusedWindow = %d, want 1", m.FocusedWindow)
				}
			},
		},
		{
			name: "toggle_help opens the help menu",
			key:  tea.KeyPressMsg{Code: '?', Text: "?"},
			check: func(t *testing.T, m *app.Desktop) {
				if !m.ShowHelp {
					t.Error("help menu did not open")
				}
			},
		},
		{
			name: "toggle_logs opens the log viewer",
			key:  tea.KeyPressMsg{Code: '`', Text: "`"},
			check: func(t *testing.T, m *app.Desktop) {
				if !m.ShowLogs {
					t.Error("log viewer did not open")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDesktop(t, 100, 31)
			if tt.setup != nil {
				tt.setup(m)
			}
			HandleKeyPress(tt.key, m)
			tt.check(t, m)
		})
	}
}

func TestQuitActionReturnsQuit(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	_, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'q', Text: "q"}, m)
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce a QuitMsg")
	}
}

func TestEmergencyQuitWithoutRegistry(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.KeybindRegistry = nil
	_, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, m)
	if cmd == nil {
		t.Fatal("ctrl+c should quit even without a keybind registry")
	}
}

func TestUnboundKeyDoesNothing(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.AddWindow("a")
	_, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'e', Text: "e"}, m)
	if cmd != nil {
		t.Error("unbound key produced a command")
	}
	if len(m.Windows) != 1 || m.ShowHelp || m.ShowLogs {
		t.Error("unbound key changed desktop state")
	}
}

func TestLeaderPrefixActivation(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	ctrlB := tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}

	HandleKeyPress(ctrlB, m)
	if !m.PrefixActive {
		t.Fatal("leader key did not activate prefix mode")
	}

	// A second leader press cancels
	HandleKeyPress(ctrlB, m)
	if m.PrefixActive {
		t.Error("double leader key should cancel prefix mode")
	}
}

func TestLeaderPrefixCommands(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyPressMsg
		setup func(m *app.Desktop)
		check func(t *testing.T, m *app.Desktop)
	}{
		{
			name: "c creates a window",
			key:  tea.KeyPressMsg{Code: 'c', Text: "c"},
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 1 {
					t.Errorf("windows = %d, want 1", len(m.Windows))
				}
			},
		},
		{
			name:  "x closes the focused window",
			key:   tea.KeyPressMsg{Code: 'x', Text: "x"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 0 {
					t.Errorf("windows = %d, want 0", len(m.Windows))
				}
			},
		},
		{
			name: "tab cycles to the next window",
			key:  tea.KeyPressMsg{Code: tea.KeyTab},
			setup: func(m *app.Desktop) {
				m.AddWindow("a")
				m.AddWindow("b")
			},
			check: func(t *testing.T, m *app.Desktop) {
				if m.FocusedWindow != 0 {
					t.Errorf("FocusedWindow = %d, want 0", m.FocusedWindow)
				}
			},
		},
		{
			name: "digit jumps to a window",
			key:  tea.KeyPressMsg{Code: '1', Text: "1"},
			setup: func(m *app.Desktop) {
				m.AddWindow("a")
				m.AddWindow("b")
			},
			check: func(t *testing.T, m *app.Desktop) {
				if m.FocusedWindow != 0 {
					t.Errorf("FocusedWindow = %d, want 0", m.FocusedWindow)
				}
			},
		},
		{
			name:  "z toggles fullscreen",
			key:   tea.KeyPressMsg{Code: 'z', Text: "z"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if m.Windows[0].Mode != frame.ModeFullscreen {
					t.Errorf("mode = %v, want %v", m.Windows[0].Mode, frame.ModeFullscreen)
				}
			},
		},
		{
			name:  "esc cancels without touching windows",
			key:   tea.KeyPressMsg{Code: tea.KeyEscape},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 1 || m.Windows[0].Mode != frame.ModeRestored {
					t.Error("esc changed window state")
				}
			},
		},
		{
			name:  "unknown key is ignored",
			key:   tea.KeyPressMsg{Code: 'u', Text: "u"},
			setup: func(m *app.Desktop) { m.AddWindow("a") },
			check: func(t *testing.T, m *app.Desktop) {
				if len(m.Windows) != 1 {
					t.Errorf("windows = %d, want 1", len(m.Windows))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDesktop(t, 100, 31)
			if tt.setup != nil {
				tt.setup(m)
			}
			m.PrefixActive = true
			m.LastPrefixTime = time.Now()
			HandleKeyPress(tt.key, m)
			if m.PrefixActive {
				t.Error("prefix mode should deactivate after a command")
			}
			tt.check(t, m)
		})
	}
}

func TestLeaderPrefixConsumesKey(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.PrefixActive = true
	m.LastPrefixTime = time.Now()

	// Inside prefix mode "n" is next-window, not new_window
	HandleKeyPress(tea.KeyPressMsg{Code: 'n', Text: "n"}, m)
	if len(m.Windows) != 0 {
		t.Errorf("windows = %d, want 0", len(m.Windows))
	}
}

func TestLeaderPrefixTimeout(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.PrefixActive = true
	m.LastPrefixTime = time.Now().Add(-PrefixKeyTimeout - time.Second)

	// The stale prefix drops and the key dispatches normally
	HandleKeyPress(tea.KeyPressMsg{Code: 'n', Text: "n"}, m)
	if m.PrefixActive {
		t.Error("expired prefix mode should deactivate")
	}
	if len(m.Windows) != 1 {
		t.Errorf("windows = %d, want 1", len(m.Windows))
	}
}

func TestHelpOverlaySwallowsKeys(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.ShowHelp = true

	HandleKeyPress(tea.KeyPressMsg{Code: 'n', Text: "n"}, m)
	if len(m.Windows) != 0 {
		t.Error("keys should not dispatch while the help menu is open")
	}
	if !m.ShowHelp {
		t.Error("unrelated key closed the help menu")
	}

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEscape}, m)
	if m.ShowHelp {
		t.Error("esc should close the help menu")
	}
}

func TestLogViewerKeys(t *testing.T) {
	// 40 logs on a 31-row screen: 17 logs per page, max scroll 23
	tests := []struct {
		name   string
		key    tea.KeyPressMsg
		offset int
		want   int
	}{
		{"down scrolls forward", tea.KeyPressMsg{Code: 'j', Text: "j"}, 0, 1},
		{"up scrolls back", tea.KeyPressMsg{Code: 'k', Text: "k"}, 5, 4},
		{"up stops at the top", tea.KeyPressMsg{Code: 'k', Text: "k"}, 0, 0},
		{"half page down", tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}, 0, 8},
		{"half page up clamps to the top", tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}, 3, 0},
		{"G jumps to the bottom", tea.KeyPressMsg{Code: 'G', Text: "G"}, 0, 23},
		{"g jumps to the top", tea.KeyPressMsg{Code: 'g', Text: "g"}, 23, 0},
		{"down stops at the bottom", tea.KeyPressMsg{Code: 'j', Text: "j"}, 23, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDesktop(t, 100, 31)
			for i := range 40 {
				m.LogInfo("line %d", i)
			}
			m.ShowLogs = true
			m.LogScrollOffset = tt.offset

			HandleKeyPress(tt.key, m)
			if m.LogScrollOffset != tt.want {
				t.Errorf("LogScrollOffset = %d, want %d", m.LogScrollOffset, tt.want)
			}
		})
	}
}

func TestLogViewerClose(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.ShowLogs = true
	m.LogScrollOffset = 7

	HandleKeyPress(tea.KeyPressMsg{Code: 'q', Text: "q"}, m)
	if m.ShowLogs {
		t.Error("q should close the log viewer")
	}
	if m.LogScrollOffset != 0 {
		t.Errorf("LogScrollOffset = %d, want 0 after closing", m.LogScrollOffset)
	}
}

func TestToggleOverlayAction(t *testing.T) {
	prev := config.ControlsOverlay
	defer func() { config.ControlsOverlay = prev }()
	config.ControlsOverlay = false

	m := newTestDesktop(t, 100, 31)
	m.AddWindow("a")

	HandleKeyPress(tea.KeyPressMsg{Code: 'o', Text: "o"}, m)
	if !config.ControlsOverlay {
		t.Error("toggle_overlay did not enable the controls overlay")
	}
	if len(m.Notifications) == 0 {
		t.Error("overlay toggle produced no notification")
	}
}

func TestSwapButtonOrderAction(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	m.AddWindow("a")

	HandleKeyPress(tea.KeyPressMsg{Code: 'b', Text: "b"}, m)
	leading, trailing := m.Orders.Order()
	if len(leading) != 3 || len(trailing) != 0 {
		t.Errorf("order = %d leading / %d trailing, want 3 / 0", len(leading), len(trailing))
	}
}

func TestResetButtonStateAction(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	w := m.AddWindow("a")
	b := captionButton(t, w, frame.ButtonMaximize)
	b.SetState(frame.StateHovered)

	HandleKeyPress(tea.KeyPressMsg{Code: 'R', Text: "R"}, m)
	if b.State() != frame.StateNormal {
		t.Errorf("maximize state = %v, want %v", b.State(), frame.StateNormal)
	}
}

func TestMoveActionNudgesWindow(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	w := m.AddWindow("a")

	HandleKeyPress(tea.KeyPressMsg{Code: 'l', Text: "l"}, m)
	if w.X != 26 || w.Y != 7 {
		t.Errorf("window at (%d,%d), want (26,7)", w.X, w.Y)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: 'k', Text: "k"}, m)
	if w.Y != 6 {
		t.Errorf("window Y = %d, want 6", w.Y)
	}
}

func TestResizeActionGrowsWindow(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	w := m.AddWindow("a")

	HandleKeyPress(tea.KeyPressMsg{Code: 'L', Text: "L"}, m)
	if w.Width != 52 {
		t.Errorf("width = %d, want 52", w.Width)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: 'J', Text: "J"}, m)
	if w.Height != 16 {
		t.Errorf("height = %d, want 16", w.Height)
	}
}

func TestMoveActionIgnoresMaximized(t *testing.T) {
	m := newTestDesktop(t, 100, 31)
	w := m.AddWindow("a")
	m.MaximizeWindow(w)

	HandleKeyPress(tea.KeyPressMsg{Code: 'l', Text: "l"}, m)
	if w.X != 0 || w.Y != 0 {
		t.Errorf("maximized window moved to (%d,%d)", w.X, w.Y)
	}
}
