package frame

import (
	"testing"

	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

func TestLayoutControlsOverlay(t *testing.T) {
	tests := []struct {
		name     string
		mode     WindowMode
		override int
		want     geometry.Rect
	}{
		{"restored", ModeRestored, 0, geometry.Rect{X: 0, Y: 0, Width: 662, Height: 31}},
		{"maximized", ModeMaximized, 0, geometry.Rect{X: 0, Y: 0, Width: 662, Height: 30}},
		{"fullscreen", ModeFullscreen, 0, geometry.Rect{X: 0, Y: 0, Width: 662, Height: 31}},
		{"override", ModeRestored, 44, geometry.Rect{X: 0, Y: 0, Width: 662, Height: 44}},
		{"override maximized", ModeMaximized, 44, geometry.Rect{X: 0, Y: 0, Width: 662, Height: 44}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost()
			h.mode = tt.mode
			h.overlayHeight = tt.override
			v := newTestView(h)
			v.Placeholder().SetBounds(geometry.Rect{Width: 138, Height: 30})

			v.LayoutControlsOverlay()

			if h.overlayRect != tt.want {
				t.Errorf("overlay rect = %+v, want %+v", h.overlayRect, tt.want)
			}
			if h.overlayRectSets != 1 || h.overlayNotifies != 1 {
				t.Errorf("sets=%d notifies=%d, want 1 and 1",
					h.overlayRectSets, h.overlayNotifies)
			}
		})
	}
}

func TestLayoutControlsOverlayMirrored(t *testing.T) {
	h := newFakeHost()
	h.mirrored = true
	v := newTestView(h)
	v.Placeholder().SetBounds(geometry.Rect{Width: 138, Height: 30})

	v.LayoutControlsOverlay()

	want := geometry.Rect{X: 138, Y: 0, Width: 662, Height: 31}
	if h.overlayRect != want {
		t.Errorf("overlay rect = %+v, want %+v", h.overlayRect, want)
	}
}

func TestLayoutControlsOverlayWithoutPlaceholder(t *testing.T) {
	h := newFakeHost()
	h.customTitleBar = false
	v := New(h)

	v.LayoutControlsOverlay()

	if h.overlayRectSets != 0 || h.overlayNotifies != 0 {
		t.Error("overlay published without a placeholder")
	}
}

func TestLayoutPublishesOverlayWhenEnabled(t *testing.T) {
	h := newFakeHost()
	h.overlayEnabled = true
	v := newTestView(h)

	v.Layout()

	// The placeholder came out of the same pass: 90 wide, 20 tall, so the
	// overlay is the rest of the titlebar with the restored top margin.
	want := geometry.Rect{X: 0, Y: 0, Width: 710, Height: 21}
	if h.overlayRect != want {
		t.Errorf("overlay rect = %+v, want %+v", h.overlayRect, want)
	}

	h.overlayEnabled = false
	v.Layout()
	if h.overlayRectSets != 1 {
		t.Errorf("overlay published %d times, want untouched after disabling",
			h.overlayRectSets)
	}
}
