package frame

import (
	"testing"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// TestHitTestPriority stacks every claimant over one point and peels them
// off in order: close beats the twins, the twins beat minimize, minimize
// beats the placeholder, the placeholder beats the base chrome.
func TestHitTestPriority(t *testing.T) {
	h := newFakeHost()
	h.overlayEnabled = true
	v := newTestView(h)

	overlap := geometry.Rect{X: 100, Y: 100, Width: 50, Height: 50}
	for _, b := range []*Button{v.close, v.restore, v.maximize, v.minimize} {
		b.SetVisible(true)
		b.SetBounds(overlap)
	}
	v.Placeholder().SetBounds(geometry.Rect{X: 50, Y: 50, Width: 200, Height: 200})

	p := geometry.Point{X: 120, Y: 120}
	steps := []struct {
		want Region
		peel func()
	}{
		{RegionClose, func() { v.close.SetVisible(false) }},
		{RegionMaxButton, func() { v.restore.SetVisible(false) }},
		{RegionMaxButton, func() { v.maximize.SetVisible(false) }},
		{RegionMinButton, func() { v.minimize.SetVisible(false) }},
		{RegionCaption, func() { h.overlayEnabled = false }},
		{RegionClient, func() {}},
	}
	for i, step := range steps {
		if got := v.HitTest(p); got != step.want {
			t.Fatalf("step %d: HitTest = %v, want %v", i, got, step.want)
		}
		step.peel()
	}
}

func TestHitTestAfterLayout(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)
	v.Layout()

	tests := []struct {
		name string
		p    geometry.Point
		want Region
	}{
		{"minimize", geometry.Point{X: 710, Y: 10}, RegionMinButton},
		{"maximize", geometry.Point{X: 740, Y: 10}, RegionMaxButton},
		{"close", geometry.Point{X: 770, Y: 10}, RegionClose},
		{"titlebar", geometry.Point{X: 400, Y: 10}, RegionCaption},
		{"content", geometry.Point{X: 400, Y: 300}, RegionClient},
		{"top-left corner", geometry.Point{X: 0, Y: 0}, RegionTopLeft},
		{"top edge", geometry.Point{X: 400, Y: 0}, RegionTop},
		{"top-right corner", geometry.Point{X: 799, Y: 10}, RegionTopRight},
		{"left edge", geometry.Point{X: 0, Y: 300}, RegionLeft},
		{"right edge", geometry.Point{X: 799, Y: 300}, RegionRight},
		{"bottom-left corner", geometry.Point{X: 0, Y: 599}, RegionBottomLeft},
		{"bottom edge", geometry.Point{X: 400, Y: 599}, RegionBottom},
		{"bottom-right corner", geometry.Point{X: 799, Y: 599}, RegionBottomRight},
		{"outside right", geometry.Point{X: 900, Y: 300}, RegionNowhere},
		{"outside left", geometry.Point{X: -1, Y: 10}, RegionNowhere},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.HitTest(tt.p); got != tt.want {
				t.Errorf("HitTest(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestRestoreTakesMaximizeSlot(t *testing.T) {
	h := newFakeHost()
	v := newTestView(h)
	v.Layout()

	p := geometry.Point{X: 740, Y: 10}
	if b := v.ButtonAt(p); b == nil || b.Kind() != ButtonMaximize {
		t.Fatalf("ButtonAt(%+v) = %v, want maximize", p, b)
	}

	h.mode = ModeMaximized
	v.Layout()
	if got := v.HitTest(p); got != RegionMaxButton {
		t.Errorf("HitTest = %v, want %v", got, RegionMaxButton)
	}
	if b := v.ButtonAt(p); b == nil || b.Kind() != ButtonRestore {
		t.Errorf("ButtonAt(%+v) = %v, want restore", p, b)
	}
}

func TestHitTestNonResizable(t *testing.T) {
	h := newFakeHost()
	h.resizable = false
	v := newTestView(h)
	v.Layout()

	for _, p := range []geometry.Point{
		{X: 0, Y: 0},
		{X: 400, Y: 599},
		{X: 799, Y: 300},
	} {
		if got := v.HitTest(p); got != RegionBorder {
			t.Errorf("HitTest(%+v) = %v, want %v", p, got, RegionBorder)
		}
	}
	if got := v.HitTest(geometry.Point{X: 400, Y: 10}); got != RegionCaption {
		t.Error("titlebar lost to the resize border")
	}
}

func TestHitTestFullscreen(t *testing.T) {
	h := newFakeHost()
	h.mode = ModeFullscreen
	v := newTestView(h)
	v.Layout()

	for _, p := range []geometry.Point{
		{X: 0, Y: 0},
		{X: 400, Y: 10},
		{X: 770, Y: 10},
		{X: 400, Y: 300},
	} {
		if got := v.HitTest(p); got != RegionClient {
			t.Errorf("HitTest(%+v) = %v, want %v", p, got, RegionClient)
		}
	}
	if got := v.HitTest(geometry.Point{X: 900, Y: 300}); got != RegionNowhere {
		t.Error("points outside the window still resolve somewhere")
	}
}

func TestHitTestMirrored(t *testing.T) {
	h := newFakeHost()
	h.mirrored = true
	v := newTestView(h)
	v.Layout()

	// Close lays out at logical x=766; mirrored it is hit near the left
	// edge instead.
	p := geometry.Point{X: 20, Y: 10}
	if got := v.HitTest(p); got != RegionClose {
		t.Errorf("HitTest(%+v) = %v, want %v", p, got, RegionClose)
	}
	if b := v.ButtonAt(p); b == nil || b.Kind() != ButtonClose {
		t.Errorf("ButtonAt(%+v) = %v, want close", p, b)
	}
	if got := v.HitTest(geometry.Point{X: 70, Y: 10}); got != RegionMinButton {
		t.Error("minimize not mirrored with the rest of the row")
	}
	// The logical close position holds plain titlebar now.
	if got := v.HitTest(geometry.Point{X: 770, Y: 10}); got != RegionCaption {
		t.Error("logical button positions still claimed after mirroring")
	}
}

func TestHitTestControlsOverlay(t *testing.T) {
	h := newFakeHost()
	h.overlayEnabled = true
	v := newTestView(h)
	v.Layout()

	// With the overlay on, the titlebar strip next to the buttons belongs
	// to window content; only the placeholder area stays caption.
	if got := v.HitTest(geometry.Point{X: 400, Y: 10}); got != RegionClient {
		t.Errorf("overlay strip = %v, want %v", got, RegionClient)
	}
	// Placeholder below the button row, above the titlebar bottom.
	if got := v.HitTest(geometry.Point{X: 710, Y: 20}); got != RegionCaption {
		t.Errorf("placeholder area = %v, want %v", got, RegionCaption)
	}
	// Buttons still win inside the placeholder.
	if got := v.HitTest(geometry.Point{X: 710, Y: 10}); got != RegionMinButton {
		t.Errorf("button inside placeholder = %v, want %v", got, RegionMinButton)
	}

	h.overlayEnabled = false
	if got := v.HitTest(geometry.Point{X: 400, Y: 10}); got != RegionCaption {
		t.Error("titlebar strip not caption with the overlay off")
	}
}

func TestHitTestWithSystemTitleBar(t *testing.T) {
	h := newFakeHost()
	h.customTitleBar = false
	v := New(h)

	if got := v.HitTest(geometry.Point{X: 400, Y: 10}); got != RegionClient {
		t.Errorf("HitTest = %v, want %v with no custom titlebar", got, RegionClient)
	}
	if b := v.ButtonAt(geometry.Point{X: 400, Y: 10}); b != nil {
		t.Errorf("ButtonAt = %v, want nil", b)
	}
	if got := v.HitTest(geometry.Point{X: 0, Y: 0}); got != RegionTopLeft {
		t.Error("resize handles gone without a custom titlebar")
	}
}
