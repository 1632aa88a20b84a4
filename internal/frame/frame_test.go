package frame

import (
	"image/color"
	"testing"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// fakeHost is a scriptable Host for exercising the frame in isolation.
type fakeHost struct {
	mode           WindowMode
	size           geometry.Size
	customTitleBar bool
	resizable      bool
	mirrored       bool
	overlayEnabled bool
	overlayHeight  int
	overlayColor   color.Color

	overlayRect     geometry.Rect
	overlayRectSets int
	overlayNotifies int
	minimizeCalls   int
	maximizeCalls   int
	restoreCalls    int
	closeReasons    []CloseReason
	paintObservers  []func()
	themeObservers  []func()
	paintCancelled  int
	themeCancelled  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		mode:           ModeRestored,
		size:           geometry.Size{Width: 800, Height: 600},
		customTitleBar: true,
		resizable:      true,
		overlayColor:   color.Gray{Y: 0x80},
	}
}

func (h *fakeHost) Mode() WindowMode             { return h.mode }
func (h *fakeHost) Size() geometry.Size          { return h.size }
func (h *fakeHost) CustomTitleBar() bool         { return h.customTitleBar }
func (h *fakeHost) Resizable() bool              { return h.resizable }
func (h *fakeHost) MirroredLayout() bool         { return h.mirrored }
func (h *fakeHost) ControlsOverlayEnabled() bool { return h.overlayEnabled }
func (h *fakeHost) OverlayHeightOverride() int   { return h.overlayHeight }
func (h *fakeHost) OverlayButtonColor() color.Color {
	return h.overlayColor
}

func (h *fakeHost) SetControlsOverlayRect(r geometry.Rect) {
	h.overlayRect = r
	h.overlayRectSets++
}

func (h *fakeHost) NotifyLayoutControlsOverlay() { h.overlayNotifies++ }

func (h *fakeHost) Minimize() { h.minimizeCalls++ }
func (h *fakeHost) Maximize() { h.maximizeCalls++ }
func (h *fakeHost) Restore()  { h.restoreCalls++ }

func (h *fakeHost) CloseWithReason(reason CloseReason) {
	h.closeReasons = append(h.closeReasons, reason)
}

func (h *fakeHost) OnPaintActiveChanged(fn func()) func() {
	h.paintObservers = append(h.paintObservers, fn)
	return func() { h.paintCancelled++ }
}

func (h *fakeHost) OnThemeChanged(fn func()) func() {
	h.themeObservers = append(h.themeObservers, fn)
	return func() { h.themeCancelled++ }
}

func (h *fakeHost) firePaintActiveChanged() {
	for _, fn := range h.paintObservers {
		fn()
	}
}

// testImages is an ImageProvider with a fixed size and margin so layout
// arithmetic stays readable.
type testImages struct {
	size   geometry.Size
	margin geometry.Insets
}

func (t testImages) Image(kind ButtonKind, _ ButtonVisual) ButtonImage {
	return ButtonImage{Glyph: kind.String(), Width: t.size.Width, Height: t.size.Height}
}

func (t testImages) Margin(ButtonKind) geometry.Insets { return t.margin }

// newTestView builds a view over h with 30x18 margin-free buttons.
func newTestView(h *fakeHost, opts ...Option) *View {
	base := []Option{
		WithImageProvider(testImages{size: geometry.Size{Width: 30, Height: 18}}),
	}
	return New(h, append(base, opts...)...)
}

func TestNewWithSystemTitleBar(t *testing.T) {
	h := newFakeHost()
	h.customTitleBar = false
	v := New(h)

	if v.Placeholder() != nil {
		t.Error("placeholder created for a system-drawn titlebar")
	}
	if got := v.VisibleButtons(); len(got) != 0 {
		t.Errorf("expected no buttons, got %d", len(got))
	}
	if len(h.paintObservers) != 0 || len(h.themeObservers) != 0 {
		t.Error("subscribed to host events without chrome to update")
	}

	// Dependent operations no-op rather than fail.
	v.Layout()
	v.ResetWindowControls()
	if got := v.HitTest(geometry.Point{X: 400, Y: 300}); got != RegionClient {
		t.Errorf("HitTest = %v, want %v", got, RegionClient)
	}
}

func TestNewWithCustomTitleBar(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)

	if v.Placeholder() == nil {
		t.Fatal("placeholder not created for a custom titlebar")
	}
	if v.Placeholder().Background() != h.overlayColor {
		t.Error("placeholder background not initialized from host color")
	}
	leading, trailing := v.ButtonOrder()
	if len(leading) != 0 {
		t.Errorf("default leading order = %v, want empty", leading)
	}
	want := []ButtonKind{ButtonMinimize, ButtonMaximize, ButtonClose}
	if len(trailing) != len(want) {
		t.Fatalf("default trailing order = %v, want %v", trailing, want)
	}
	for i, kind := range want {
		if trailing[i] != kind {
			t.Errorf("trailing[%d] = %v, want %v", i, trailing[i], kind)
		}
	}
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	h := newFakeHost()
	order := NewStaticOrderProvider(nil, DefaultTrailingOrder())
	v := newTestView(h, WithOrderProvider(order))

	v.Close()

	if h.paintCancelled != 1 || h.themeCancelled != 1 {
		t.Errorf("cancelled paint=%d theme=%d, want 1 and 1",
			h.paintCancelled, h.themeCancelled)
	}

	// The ordering subscription is gone too: a provider change must not
	// reach the closed view.
	order.SetOrder([]ButtonKind{ButtonClose}, nil)
	_, trailing := v.ButtonOrder()
	if len(trailing) != 3 {
		t.Errorf("closed view picked up an ordering change: %v", trailing)
	}

	// Close twice is fine.
	v.Close()
}

func TestUseAfterClosePanics(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)
	v.Close()

	defer func() {
		if recover() == nil {
			t.Error("Layout on a closed view did not panic")
		}
	}()
	v.Layout()
}

func TestPaintActiveChangeUpdatesPlaceholder(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)

	h.overlayColor = color.Gray{Y: 0x20}
	h.firePaintActiveChanged()

	if v.Placeholder().Background() != h.overlayColor {
		t.Error("placeholder background not refreshed on paint-active change")
	}
}

func TestOrderingChangeIsWholesale(t *testing.T) {
	h := newFakeHost()
	order := NewStaticOrderProvider(nil, DefaultTrailingOrder())
	v := newTestView(h, WithOrderProvider(order))

	order.SetOrder([]ButtonKind{ButtonClose}, []ButtonKind{ButtonMinimize, ButtonMaximize})

	leading, trailing := v.ButtonOrder()
	if len(leading) != 1 || leading[0] != ButtonClose {
		t.Errorf("leading = %v, want [close]", leading)
	}
	if len(trailing) != 2 || trailing[0] != ButtonMinimize || trailing[1] != ButtonMaximize {
		t.Errorf("trailing = %v, want [minimize maximize]", trailing)
	}
}
