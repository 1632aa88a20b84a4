package frame

import (
	"testing"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

func TestLayoutDefaultTrailingOrder(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)
	v.Layout()

	// 800 wide, 4px border, 30px buttons: minimize, maximize, close pack
	// right-to-left against x=796, on the caption row at y=1.
	tests := []struct {
		name   string
		button *Button
		want   geometry.Rect
	}{
		{"minimize", v.minimize, geometry.Rect{X: 706, Y: 1, Width: 30, Height: 18}},
		{"maximize", v.maximize, geometry.Rect{X: 736, Y: 1, Width: 30, Height: 18}},
		{"close", v.close, geometry.Rect{X: 766, Y: 1, Width: 30, Height: 18}},
	}
	for _, tt := range tests {
		if !tt.button.Visible() {
			t.Errorf("%s not visible", tt.name)
		}
		if got := tt.button.Bounds(); got != tt.want {
			t.Errorf("%s bounds = %+v, want %+v", tt.name, got, tt.want)
		}
	}
	if v.restore.Visible() {
		t.Error("restore visible while restored")
	}

	// Placeholder spans the trailing button block, inset from the border.
	want := geometry.Rect{X: 706, Y: 4, Width: 90, Height: 20}
	if got := v.Placeholder().Bounds(); got != want {
		t.Errorf("placeholder bounds = %+v, want %+v", got, want)
	}
}

func TestLayoutOrderingChange(t *testing.T) {
	h := newFakeHost()
	order := NewStaticOrderProvider(nil, DefaultTrailingOrder())
	v := newTestView(h, WithOrderProvider(order))
	v.Layout()

	order.SetOrder([]ButtonKind{ButtonClose}, []ButtonKind{ButtonMinimize, ButtonMaximize})
	v.Layout()

	tests := []struct {
		name   string
		button *Button
		want   geometry.Rect
	}{
		{"close", v.close, geometry.Rect{X: 4, Y: 1, Width: 30, Height: 18}},
		{"minimize", v.minimize, geometry.Rect{X: 736, Y: 1, Width: 30, Height: 18}},
		{"maximize", v.maximize, geometry.Rect{X: 766, Y: 1, Width: 30, Height: 18}},
	}
	for _, tt := range tests {
		if got := tt.button.Bounds(); got != tt.want {
			t.Errorf("%s bounds = %+v, want %+v", tt.name, got, tt.want)
		}
	}
	if got, want := v.Placeholder().Bounds(), (geometry.Rect{X: 736, Y: 4, Width: 90, Height: 20}); got != want {
		t.Errorf("placeholder bounds = %+v, want %+v", got, want)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	h := newFakeHost()
	order := NewStaticOrderProvider([]ButtonKind{ButtonClose},
		[]ButtonKind{ButtonMinimize, ButtonMaximize})
	v := newTestView(h, WithOrderProvider(order))

	type snapshot struct {
		close, minimize, maximize, placeholder geometry.Rect
	}
	take := func() snapshot {
		return snapshot{
			close:       v.close.Bounds(),
			minimize:    v.minimize.Bounds(),
			maximize:    v.maximize.Bounds(),
			placeholder: v.Placeholder().Bounds(),
		}
	}

	v.Layout()
	first := take()
	v.Layout()
	if second := take(); second != first {
		t.Errorf("second pass moved chrome:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestLayoutMaximizedSwapsRestore(t *testing.T) {
	h := newFakeHost()
	h.mode = ModeMaximized
	v := newTestView(h)
	v.Layout()

	if v.maximize.Visible() {
		t.Error("maximize visible while maximized")
	}
	if !v.restore.Visible() {
		t.Fatal("restore not visible while maximized")
	}
	// No border, caption row at the window top edge.
	if got, want := v.restore.Bounds(), (geometry.Rect{X: 740, Y: 0, Width: 30, Height: 18}); got != want {
		t.Errorf("restore bounds = %+v, want %+v", got, want)
	}
	if got, want := v.close.Bounds(), (geometry.Rect{X: 770, Y: 0, Width: 30, Height: 18}); got != want {
		t.Errorf("close bounds = %+v, want %+v", got, want)
	}

	h.mode = ModeRestored
	v.Layout()
	if v.restore.Visible() {
		t.Error("restore still visible after restoring")
	}
	if !v.maximize.Visible() {
		t.Error("maximize not visible after restoring")
	}
}

func TestLayoutFullscreenHidesButtons(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)
	v.Layout()

	h.mode = ModeFullscreen
	v.Layout()

	if got := v.VisibleButtons(); len(got) != 0 {
		t.Errorf("%d buttons visible in fullscreen", len(got))
	}
	// No trailing button placed this pass, so the placeholder anchors at
	// zero instead of the previous pass's trailing cursor.
	got := v.Placeholder().Bounds()
	if got.X != 0 {
		t.Errorf("placeholder X = %d, want 0", got.X)
	}
	if got.Width != 0 {
		t.Errorf("placeholder width = %d, want 0", got.Width)
	}
}

func TestLayoutMargins(t *testing.T) {
	h := newFakeHost()
	images := testImages{
		size:   geometry.Size{Width: 30, Height: 18},
		margin: geometry.Insets{Left: 2, Right: 3},
	}
	v := New(h, WithImageProvider(images))
	v.Layout()

	// Trailing close packs at 796-3-30; its left margin moves the cursor
	// to 761 for the next button.
	if got, want := v.close.Bounds(), (geometry.Rect{X: 763, Y: 1, Width: 30, Height: 18}); got != want {
		t.Errorf("close bounds = %+v, want %+v", got, want)
	}
	if got, want := v.maximize.Bounds(), (geometry.Rect{X: 728, Y: 1, Width: 30, Height: 18}); got != want {
		t.Errorf("maximize bounds = %+v, want %+v", got, want)
	}
	// Three buttons at 2+30+3 each, plus the side borders.
	if got, want := v.Placeholder().Bounds().Width, 105; got != want {
		t.Errorf("placeholder width = %d, want %d", got, want)
	}
}

func TestLayoutUnlistedButtonHidden(t *testing.T) {
	h := newFakeHost()
	order := NewStaticOrderProvider(nil, []ButtonKind{ButtonMaximize, ButtonClose})
	v := newTestView(h, WithOrderProvider(order))
	v.Layout()

	if v.minimize.Visible() {
		t.Error("minimize visible despite not being in either ordering set")
	}
	if !v.maximize.Visible() || !v.close.Visible() {
		t.Error("listed buttons not visible")
	}
}

func TestLayoutWithSystemTitleBar(t *testing.T) {
	h := newFakeHost()
	h.customTitleBar = false
	h.overlayEnabled = true
	v := New(h)

	v.Layout()

	if h.overlayRectSets != 0 || h.overlayNotifies != 0 {
		t.Error("layout touched the controls overlay without a placeholder")
	}
}
