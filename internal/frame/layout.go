package frame

import (
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// buttonAlignment selects which titlebar edge a button packs against.
type buttonAlignment int

const (
	alignLeading buttonAlignment = iota
	alignTrailing
)

// Layout runs one full layout pass: caption buttons, placeholder
// container, base chrome, then the controls overlay rect when enabled.
// Cursor state never survives a pass; it is reset up front so a pass after
// an ordering change cannot see stale trailing positions.
func (v *View) Layout() {
	v.ensureOpen()

	v.placedLeadingButton = false
	v.placedTrailingButton = false
	v.availableSpaceLeadingX = 0
	v.availableSpaceTrailingX = 0
	v.minimumSizeForButtons = 0

	if v.host.CustomTitleBar() {
		v.layoutWindowControls()
		v.layoutPlaceholder()
	}

	v.base.Layout(v)

	if v.host.ControlsOverlayEnabled() && v.placeholder != nil {
		v.LayoutControlsOverlay()
	}
}

// layoutWindowControls walks the ordering sets and assigns every caption
// button its rectangle. Leading buttons pack left to right; trailing
// buttons are iterated in reverse so the last token lands at the far
// trailing edge. Buttons in neither set, and all buttons in fullscreen,
// are hidden.
func (v *View) layoutWindowControls() {
	insets := v.FrameBorderInsets(false)
	v.availableSpaceLeadingX = insets.Left
	v.availableSpaceTrailingX = v.width() - insets.Right
	v.minimumSizeForButtons = insets.Left + insets.Right

	notShown := map[ButtonKind]bool{
		ButtonMinimize: true,
		ButtonMaximize: true,
		ButtonClose:    true,
	}

	if v.shouldShowCaptionButtons() {
		for _, kind := range v.leadingKinds {
			v.configureButton(kind, alignLeading)
			delete(notShown, orderToken(kind))
		}
		for i := len(v.trailingKinds) - 1; i >= 0; i-- {
			v.configureButton(v.trailingKinds[i], alignTrailing)
			delete(notShown, orderToken(v.trailingKinds[i]))
		}
	}

	for kind := range notShown {
		v.hideButton(kind)
	}
}

// shouldShowCaptionButtons reports whether any caption button is drawn at
// all. Fullscreen suppresses the whole row.
func (v *View) shouldShowCaptionButtons() bool {
	return v.host.Mode() != ModeFullscreen
}

// orderToken collapses the maximize/restore twins onto the maximize
// ordering token.
func orderToken(kind ButtonKind) ButtonKind {
	if kind == ButtonRestore {
		return ButtonMaximize
	}
	return kind
}

// configureButton shows the button for kind and assigns its bounds. The
// maximize token resolves to whichever twin matches the current mode and
// hides the other.
func (v *View) configureButton(kind ButtonKind, alignment buttonAlignment) {
	switch orderToken(kind) {
	case ButtonMinimize:
		v.minimize.SetVisible(true)
		v.setBoundsForButton(kind, v.minimize, alignment)
	case ButtonMaximize:
		if v.host.Mode() == ModeMaximized {
			v.maximize.SetVisible(false)
			v.restore.SetVisible(true)
			v.setBoundsForButton(kind, v.restore, alignment)
		} else {
			v.restore.SetVisible(false)
			v.maximize.SetVisible(true)
			v.setBoundsForButton(kind, v.maximize, alignment)
		}
	case ButtonClose:
		v.close.SetVisible(true)
		v.setBoundsForButton(kind, v.close, alignment)
	}
}

// hideButton hides the button for an ordering token. The maximize token
// hides both twins.
func (v *View) hideButton(kind ButtonKind) {
	switch kind {
	case ButtonMinimize:
		v.minimize.SetVisible(false)
	case ButtonMaximize, ButtonRestore:
		v.maximize.SetVisible(false)
		v.restore.SetVisible(false)
	case ButtonClose:
		v.close.SetVisible(false)
	}
}

// setBoundsForButton packs one button against the given edge and advances
// that edge's cursor past it, margins included.
func (v *View) setBoundsForButton(kind ButtonKind, b *Button, alignment buttonAlignment) {
	captionY := v.DefaultCaptionButtonY(false)
	size := b.PreferredSize()
	margin := v.images.Margin(kind)

	switch alignment {
	case alignLeading:
		x := v.availableSpaceLeadingX + margin.Left
		b.SetBounds(geometry.Rect{X: x, Y: captionY, Width: size.Width, Height: size.Height})
		v.availableSpaceLeadingX = x + size.Width + margin.Right
		v.placedLeadingButton = true
	case alignTrailing:
		x := v.availableSpaceTrailingX - margin.Right - size.Width
		b.SetBounds(geometry.Rect{X: x, Y: captionY, Width: size.Width, Height: size.Height})
		v.availableSpaceTrailingX = x - margin.Left
		v.placedTrailingButton = true
	}
	v.minimumSizeForButtons += margin.Left + size.Width + margin.Right
}

// layoutPlaceholder positions the placeholder container over the caption
// button area. With no trailing button placed this pass the container
// anchors at zero instead of a stale trailing cursor.
func (v *View) layoutPlaceholder() {
	if v.placeholder == nil {
		return
	}
	height := v.NonClientTopHeight(false)
	containerX := 0
	if v.placedTrailingButton {
		containerX = v.availableSpaceTrailingX
	}
	insets := v.FrameBorderInsets(false)
	v.placeholder.SetBounds(geometry.Rect{
		X:      containerX,
		Y:      insets.Top,
		Width:  v.minimumSizeForButtons - insets.Width(),
		Height: height - insets.Top,
	})
}
