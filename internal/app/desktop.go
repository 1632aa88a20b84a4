// Package app provides the sash desktop model and window management.
package app

import (
	"fmt"
	"slices"
	"time"

	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/frame"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Desktop represents the main application state and window manager.
// It owns all windows, routes caption button actions, and drives the
// frame layout of every window.
type Desktop struct {
	Windows       []*Window // All managed windows
	FocusedWindow int       // Index of currently focused window, -1 when none
	Width         int       // Terminal width in cells
	Height        int       // Terminal height in cells

	// Mouse interaction state
	Dragging           bool         // True while a titlebar drag moves a window
	Resizing           bool         // True while an edge drag resizes a window
	ResizeRegion       frame.Region // Edge or corner driving the resize
	PreResizeBounds    geometry.Rect
	ResizeStartX       int
	ResizeStartY       int
	DragOffsetX        int
	DragOffsetY        int
	DraggedWindowIndex int // Index of window being dragged or resized
	PressedButton      *frame.Button
	PressedWindowIndex int  // Window owning the pressed caption button
	LastMouseX         int  // Last known mouse X (spawn position for new windows)
	LastMouseY         int  // Last known mouse Y
	InteractionMode    bool // True when actively dragging/resizing

	// Leader key state (tmux-style prefix)
	PrefixActive   bool
	LastPrefixTime time.Time

	// Overlay state
	ShowHelp        bool
	ShowLogs        bool
	LogScrollOffset int
	LogMessages     []LogMessage
	Notifications   []Notification

	// System stats for the stats overlay
	CPUHistory    []float64 // CPU usage history for the graph
	LastCPUUpdate time.Time
	RAMUsage      float64 // Cached RAM usage percentage
	LastRAMUpdate time.Time

	// Orders drives the caption button order of every window frame.
	Orders *frame.StaticOrderProvider

	// KeybindRegistry resolves pressed keys to configured actions.
	KeybindRegistry *config.KeybindRegistry

	// Render caches
	cachedViewContent string // Cached full View() output for idle ticks
	renderSkipped     bool   // True when frame-skip fired; View() returns cached content
	lastClockSecond   int    // Second shown by the clock overlay at the last render
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// DesktopOptions configures a new Desktop.
type DesktopOptions struct {
	KeybindRegistry *config.KeybindRegistry
	Width           int // Initial width, 0 to wait for the first WindowSizeMsg
	Height          int // Initial height
}

// NewDesktop creates the desktop model. The shared order provider is seeded
// from the configured button order so every window frame starts identical.
func NewDesktop(opts DesktopOptions) *Desktop {
	leading, trailing := configuredButtonOrder()
	d := &Desktop{
		FocusedWindow:      -1,
		DraggedWindowIndex: -1,
		PressedWindowIndex: -1,
		Width:              opts.Width,
		Height:             opts.Height,
		Orders:             frame.NewStaticOrderProvider(leading, trailing),
		KeybindRegistry:    opts.KeybindRegistry,
	}
	return d
}

// configuredButtonOrder parses the configured leading/trailing button order,
// falling back to the default trailing order on bad input.
func configuredButtonOrder() (leading, trailing []frame.ButtonKind) {
	leading = parseOrder(config.ButtonOrderLeading)
	trailing = parseOrder(config.ButtonOrderTrailing)
	if len(leading) == 0 && len(trailing) == 0 {
		trailing = frame.DefaultTrailingOrder()
	}
	return leading, trailing
}

func parseOrder(s string) []frame.ButtonKind {
	names, err := config.ParseButtonOrder(s)
	if err != nil {
		return nil
	}
	kinds := make([]frame.ButtonKind, 0, len(names))
	for _, name := range names {
		kind, err := frame.ParseButtonKind(name)
		if err != nil {
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func createID() string {
	return uuid.New().String()
}

// Log adds a message to the log buffer with the given level.
func (m *Desktop) Log(level, format string, args ...any) {
	logMsg := LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}

	// Check if the viewer is scrolled to the bottom before adding
	wasAtBottom := false
	if m.ShowLogs {
		_, maxScroll := logPageBounds(m.Height, len(m.LogMessages))
		wasAtBottom = m.LogScrollOffset >= maxScroll-2
	}

	m.LogMessages = append(m.LogMessages, logMsg)
	if len(m.LogMessages) > config.LogBufferSize {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.LogBufferSize:]
	}

	// Sticky scroll: follow the tail if we were already at the bottom
	if wasAtBottom && m.ShowLogs {
		_, maxScroll := logPageBounds(m.Height, len(m.LogMessages))
		m.LogScrollOffset = maxScroll
	}
}

// LogInfo logs an informational message.
func (m *Desktop) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Desktop) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Desktop) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// logPageBounds returns how many log lines fit on one viewer page and the
// maximum scroll offset for the given screen height and log count.
func logPageBounds(screenHeight, totalLogs int) (logsPerPage, maxScroll int) {
	maxDisplayHeight := max(screenHeight-8, 8)

	// Fixed overhead: title (1) + blank (1) + blank before hint (1) + hint (1)
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		// Scroll indicator adds a blank line plus the indicator itself
		fixedLines = 6
	}
	logsPerPage = max(maxDisplayHeight-fixedLines, 1)
	maxScroll = max(totalLogs-logsPerPage, 0)
	return logsPerPage, maxScroll
}

// ShowNotification displays a temporary notification message.
func (m *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (m *Desktop) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	m.Notifications = active
}

// UsableHeight returns the screen height available to windows, excluding
// the status bar.
func (m *Desktop) UsableHeight() int {
	return max(m.Height-config.StatusBarHeight, 0)
}

// WorkArea returns the rectangle windows may occupy.
func (m *Desktop) WorkArea() geometry.Rect {
	return geometry.Rect{X: 0, Y: 0, Width: m.Width, Height: m.UsableHeight()}
}

// AddWindow creates a new window, focuses it, and returns it. Windows spawn
// at the cursor when a mouse position is known, otherwise centered.
func (m *Desktop) AddWindow(title string) *Window {
	newID := createID()
	if title == "" {
		title = fmt.Sprintf("Window %s", newID[:8])
	}

	screenWidth := m.Width
	screenHeight := m.UsableHeight()
	if screenWidth == 0 || screenHeight == 0 {
		screenWidth = 80
		screenHeight = 24
		m.LogWarn("Screen dimensions unknown, using defaults (%dx%d)", screenWidth, screenHeight)
	}

	width := max(screenWidth/2, config.MinWindowWidth)
	height := max(screenHeight/2, config.MinWindowHeight)

	var x, y int
	if m.LastMouseX > 0 && m.LastMouseY > 0 {
		x = min(m.LastMouseX, screenWidth-width)
		y = min(m.LastMouseY, screenHeight-height)
		x = max(x, 0)
		y = max(y, 0)
	} else {
		x = screenWidth / 4
		y = screenHeight / 4
	}

	window := NewWindow(m, newID, title)
	window.X = x
	window.Y = y
	window.Width = width
	window.Height = height
	window.Z = len(m.Windows)
	window.Frame.Layout()

	m.Windows = append(m.Windows, window)
	m.LogInfo("Window created: %s (ID: %s, total windows: %d)", title, newID[:8], len(m.Windows))

	m.FocusWindow(len(m.Windows) - 1)
	return window
}

// DeleteWindow removes the window at the specified index and releases its
// frame.
func (m *Desktop) DeleteWindow(i int) {
	if len(m.Windows) == 0 || i < 0 || i >= len(m.Windows) {
		m.LogWarn("Cannot delete window: invalid index %d (total windows: %d)", i, len(m.Windows))
		return
	}

	deleted := m.Windows[i]
	m.LogInfo("Deleting window: %s (ID: %s)", deleted.Title, deleted.ID[:8])

	deleted.Close()

	// Compact Z-indices above the removed window
	movedZ := deleted.Z
	for j := range m.Windows {
		if m.Windows[j].Z > movedZ {
			m.Windows[j].Z--
			m.Windows[j].InvalidateCache()
		}
	}

	m.Windows = slices.Delete(m.Windows, i, i+1)

	if len(m.Windows) == 0 {
		m.FocusedWindow = -1
	} else if i < m.FocusedWindow {
		m.FocusedWindow--
	} else if i == m.FocusedWindow {
		m.FocusedWindow = -1
		m.FocusNextVisibleWindow()
	}
}

// CloseWindow closes the given window, recording what triggered it. This is
// the close path taken by the frame's caption close button.
func (m *Desktop) CloseWindow(w *Window, reason frame.CloseReason) {
	for i, candidate := range m.Windows {
		if candidate == w {
			if reason == frame.CloseReasonCloseButton {
				m.LogInfo("Window %s closed via caption button", w.ID[:8])
			}
			m.DeleteWindow(i)
			return
		}
	}
}

// FocusWindow focuses the window at index i and raises it to the top of the
// stacking order. Both the previously focused frame and the new one repaint
// their caption button area for the focus change.
func (m *Desktop) FocusWindow(i int) {
	if len(m.Windows) == 0 || i < 0 || i >= len(m.Windows) {
		return
	}
	if m.FocusedWindow == i {
		return
	}

	oldFocused := m.FocusedWindow
	m.FocusedWindow = i

	// Focused window gets the highest Z, others keep their relative order
	highestZ := len(m.Windows) - 1
	m.Windows[i].Z = highestZ
	z := 0
	for j := range m.Windows {
		if j != i {
			if m.Windows[j].Z != z {
				m.Windows[j].Z = z
				m.Windows[j].InvalidateCache()
			}
			z++
		}
	}
	m.Windows[i].InvalidateCache()

	if oldFocused >= 0 && oldFocused < len(m.Windows) {
		m.Windows[oldFocused].host.firePaintActiveChanged()
		m.Windows[oldFocused].MarkContentDirty()
	}
	m.Windows[i].host.firePaintActiveChanged()
	m.Windows[i].MarkContentDirty()
}

// GetFocusedWindow returns the currently focused window, or nil.
func (m *Desktop) GetFocusedWindow() *Window {
	if len(m.Windows) > 0 && m.FocusedWindow >= 0 && m.FocusedWindow < len(m.Windows) {
		return m.Windows[m.FocusedWindow]
	}
	return nil
}

// IsFocused reports whether w is the focused window.
func (m *Desktop) IsFocused(w *Window) bool {
	return m.GetFocusedWindow() == w
}

// WindowIndex returns the slice index of w, or -1.
func (m *Desktop) WindowIndex(w *Window) int {
	for i, candidate := range m.Windows {
		if candidate == w {
			return i
		}
	}
	return -1
}

// WindowAt returns the topmost window containing the screen point, or nil.
func (m *Desktop) WindowAt(x, y int) *Window {
	var hit *Window
	for _, w := range m.Windows {
		if w.Minimized {
			continue
		}
		if w.Bounds().Contains(geometry.Point{X: x, Y: y}) {
			if hit == nil || w.Z > hit.Z {
				hit = w
			}
		}
	}
	return hit
}

// CycleToNextWindow cycles focus to the next visible window.
func (m *Desktop) CycleToNextWindow() {
	m.cycleWindow(1)
}

// CycleToPreviousWindow cycles focus to the previous visible window.
func (m *Desktop) CycleToPreviousWindow() {
	m.cycleWindow(-1)
}

func (m *Desktop) cycleWindow(step int) {
	if len(m.Windows) == 0 {
		return
	}

	var visible []int
	for i, w := range m.Windows {
		if !w.Minimized {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return
	}

	current := slices.Index(visible, m.FocusedWindow)
	next := (current + step + len(visible)) % len(visible)
	m.FocusWindow(visible[next])
}

// FocusNextVisibleWindow focuses the first non-minimized window, or clears
// focus when every window is minimized.
func (m *Desktop) FocusNextVisibleWindow() {
	for i, w := range m.Windows {
		if !w.Minimized {
			m.FocusWindow(i)
			return
		}
	}
	m.FocusedWindow = -1
}

// MinimizeWindow hides the window from the desktop. The frame's minimize
// caption button lands here.
func (m *Desktop) MinimizeWindow(w *Window) {
	if w.Minimized {
		return
	}
	w.Minimized = true
	w.InvalidateCache()
	m.LogInfo("Window minimized: %s", w.Title)

	if m.IsFocused(w) {
		m.FocusedWindow = -1
		m.FocusNextVisibleWindow()
	}
}

// MaximizeWindow grows the window to fill the work area. The restored bounds
// are kept so the restore button can return to them. The frame border
// collapses to zero while maximized, so the outer bounds are exactly the
// work area.
func (m *Desktop) MaximizeWindow(w *Window) {
	if w.Mode == frame.ModeMaximized {
		return
	}
	if w.Mode == frame.ModeRestored {
		w.Restored = w.Bounds()
	}
	w.Mode = frame.ModeMaximized

	area := m.WorkArea()
	w.X = area.X
	w.Y = area.Y
	w.Width = area.Width
	w.Height = area.Height
	w.Frame.Layout()
	w.InvalidateCache()
	m.LogInfo("Window maximized: %s", w.Title)

	if i := m.WindowIndex(w); i >= 0 {
		m.FocusWindow(i)
	}
}

// RestoreWindow returns a maximized or fullscreen window to its remembered
// bounds. The frame's restore caption button lands here.
func (m *Desktop) RestoreWindow(w *Window) {
	if w.Mode == frame.ModeRestored {
		return
	}
	w.Mode = frame.ModeRestored

	if !w.Restored.IsEmpty() {
		w.X = w.Restored.X
		w.Y = w.Restored.Y
		w.Width = w.Restored.Width
		w.Height = w.Restored.Height
	}
	w.Frame.Layout()
	w.InvalidateCache()
	m.LogInfo("Window restored: %s", w.Title)
}

// ToggleMaximize flips the focused window between maximized and restored.
func (m *Desktop) ToggleMaximize(w *Window) {
	if w.Mode == frame.ModeMaximized {
		m.RestoreWindow(w)
	} else {
		m.MaximizeWindow(w)
	}
}

// ToggleFullscreen flips the window between fullscreen and restored. In
// fullscreen the frame hides the caption buttons and the window covers the
// whole screen including the status bar row.
func (m *Desktop) ToggleFullscreen(w *Window) {
	if w.Mode == frame.ModeFullscreen {
		m.RestoreWindow(w)
		return
	}
	if w.Mode == frame.ModeRestored {
		w.Restored = w.Bounds()
	}
	w.Mode = frame.ModeFullscreen
	w.X = 0
	w.Y = 0
	w.Width = m.Width
	w.Height = m.Height
	w.Frame.Layout()
	w.InvalidateCache()
	m.LogInfo("Window fullscreen: %s", w.Title)
}

// RestoreMinimized brings back the minimized window at index i and focuses
// it.
func (m *Desktop) RestoreMinimized(i int) {
	if i < 0 || i >= len(m.Windows) || !m.Windows[i].Minimized {
		return
	}
	m.Windows[i].Minimized = false
	m.Windows[i].InvalidateCache()
	m.FocusWindow(i)
	m.LogInfo("Window unminimized: %s", m.Windows[i].Title)
}

// RestoreAllWindows unminimizes every window.
func (m *Desktop) RestoreAllWindows() {
	for i := len(m.Windows) - 1; i >= 0; i-- {
		if m.Windows[i].Minimized {
			m.RestoreMinimized(i)
		}
	}
}

// HasMinimizedWindows reports whether any window is minimized.
func (m *Desktop) HasMinimizedWindows() bool {
	for _, w := range m.Windows {
		if w.Minimized {
			return true
		}
	}
	return false
}

// SetButtonOrder replaces the caption button order on every window frame.
// The frames re-read the full order through their subscription, so a single
// provider update restyles the whole desktop.
func (m *Desktop) SetButtonOrder(leading, trailing []frame.ButtonKind) {
	m.Orders.SetOrder(leading, trailing)
	for _, w := range m.Windows {
		w.Frame.Layout()
		w.MarkContentDirty()
	}
}

// SwapButtonOrder moves the caption buttons to the opposite titlebar edge.
func (m *Desktop) SwapButtonOrder() {
	leading, trailing := m.Orders.Order()
	m.SetButtonOrder(trailing, leading)
}

// NotifyThemeChanged tells every window frame that the color theme changed.
func (m *Desktop) NotifyThemeChanged() {
	for _, w := range m.Windows {
		w.host.fireThemeChanged()
		w.MarkContentDirty()
	}
	m.MarkAllDirty()
}

// RelayoutAllWindows re-runs the frame layout of every window. Used after
// global frame settings change (mirroring, controls overlay).
func (m *Desktop) RelayoutAllWindows() {
	for _, w := range m.Windows {
		w.Frame.Layout()
		w.MarkContentDirty()
	}
}

// MarkAllDirty invalidates all cached window layers.
func (m *Desktop) MarkAllDirty() {
	for _, w := range m.Windows {
		w.InvalidateCache()
	}
	m.renderSkipped = false
}

// ClampWindowsToView pulls windows back inside the work area after the
// terminal shrinks. Maximized and fullscreen windows resize with the screen.
func (m *Desktop) ClampWindowsToView() {
	area := m.WorkArea()
	for _, w := range m.Windows {
		switch w.Mode {
		case frame.ModeMaximized:
			w.X = area.X
			w.Y = area.Y
			w.Resize(area.Width, area.Height)
			continue
		case frame.ModeFullscreen:
			w.X = 0
			w.Y = 0
			w.Resize(m.Width, m.Height)
			continue
		}

		if w.Width > area.Width {
			w.Resize(area.Width, w.Height)
		}
		if w.Height > area.Height {
			w.Resize(w.Width, area.Height)
		}
		if w.X+w.Width > area.Width {
			w.X = max(area.Width-w.Width, 0)
			w.MarkPositionDirty()
		}
		if w.Y+w.Height > area.Height {
			w.Y = max(area.Height-w.Height, 0)
			w.MarkPositionDirty()
		}
	}
}

// UpdateCPUHistory samples CPU usage for the stats overlay graph.
func (m *Desktop) UpdateCPUHistory() {
	if time.Since(m.LastCPUUpdate) < config.StatsUpdateInterval {
		return
	}
	m.LastCPUUpdate = time.Now()

	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return
	}

	m.CPUHistory = append(m.CPUHistory, percents[0])
	maxSamples := config.StatsOverlayWidth - 4
	if len(m.CPUHistory) > maxSamples {
		m.CPUHistory = m.CPUHistory[len(m.CPUHistory)-maxSamples:]
	}
}

// UpdateRAMUsage refreshes the cached RAM usage percentage.
func (m *Desktop) UpdateRAMUsage() {
	if time.Since(m.LastRAMUpdate) < config.StatsUpdateInterval {
		return
	}
	m.LastRAMUpdate = time.Now()

	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	m.RAMUsage = vm.UsedPercent
}
