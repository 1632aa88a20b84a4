package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

func TestUpdateWindowSizeClampsWindows(t *testing.T) {
	m := newTestDesktop(100, 31)
	w := m.AddWindow("tracked")
	m.MaximizeWindow(w)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	if model.(*Desktop) != m {
		t.Fatal("Update returned a different model")
	}
	if m.Width != 60 || m.Height != 20 {
		t.Errorf("desktop size = %dx%d, want 60x20", m.Width, m.Height)
	}

	want := geometry.Rect{X: 0, Y: 0, Width: 60, Height: 19}
	if w.Bounds() != want {
		t.Errorf("maximized bounds = %+v, want %+v", w.Bounds(), want)
	}
}

// Idle ticks skip the render pipeline once every window layer is cached.
// Any dirty window turns rendering back on.
func TestUpdateTickSkipsIdleRender(t *testing.T) {
	origHideClock := config.HideClock
	origHideStats := config.HideStats
	defer func() {
		config.HideClock = origHideClock
		config.HideStats = origHideStats
	}()
	config.HideClock = true
	config.HideStats = true

	m := newTestDesktop(100, 31)
	w := m.AddWindow("idle")
	m.GetCanvas(false)

	_, cmd := m.Update(TickerMsg(time.Now()))

	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if !m.renderSkipped {
		t.Error("idle tick did not skip rendering")
	}

	w.MarkContentDirty()
	m.Update(TickerMsg(time.Now()))

	if m.renderSkipped {
		t.Error("tick skipped rendering with a dirty window")
	}
}

func TestUpdateDelegatesInput(t *testing.T) {
	defer SetInputHandler(nil)

	called := false
	SetInputHandler(func(msg tea.Msg, m *Desktop) (tea.Model, tea.Cmd) {
		called = true
		return m, nil
	})

	m := newTestDesktop(100, 31)
	m.Update(tea.KeyPressMsg{})

	if !called {
		t.Error("input handler not called for a key press")
	}
}

func TestUpdateTickCleansNotifications(t *testing.T) {
	m := newTestDesktop(100, 31)
	m.ShowNotification("stale", "info", time.Millisecond)
	m.Notifications[0].StartTime = time.Now().Add(-time.Second)

	m.Update(TickerMsg(time.Now()))

	if len(m.Notifications) != 0 {
		t.Errorf("notification count = %d, want 0 after tick", len(m.Notifications))
	}
}
