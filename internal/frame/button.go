package frame

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/geometry"
)

// ButtonKind identifies one of the four fixed caption buttons. Maximize and
// restore are twins: exactly one of them is visible at a time, and ordering
// sets refer to the pair through the maximize token.
type ButtonKind int

const (
	// ButtonMinimize minimizes the window.
	ButtonMinimize ButtonKind = iota
	// ButtonMaximize maximizes the window, shown while restored.
	ButtonMaximize
	// ButtonRestore restores the window, shown while maximized.
	ButtonRestore
	// ButtonClose closes the window.
	ButtonClose
)

// String returns the kind name for logs and status display.
func (k ButtonKind) String() string {
	switch k {
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	case ButtonRestore:
		return "restore"
	case ButtonClose:
		return "close"
	default:
		return "unknown"
	}
}

// DefaultTrailingOrder returns the stock trailing ordering set.
func DefaultTrailingOrder() []ButtonKind {
	return []ButtonKind{ButtonMinimize, ButtonMaximize, ButtonClose}
}

// ParseButtonKind maps a config token to a button kind. Restore is not a
// valid ordering token; the maximize token covers both twins.
func ParseButtonKind(name string) (ButtonKind, error) {
	switch name {
	case "minimize":
		return ButtonMinimize, nil
	case "maximize":
		return ButtonMaximize, nil
	case "close":
		return ButtonClose, nil
	default:
		return 0, fmt.Errorf("unknown caption button %q", name)
	}
}

// ButtonState is a caption button's interaction state.
type ButtonState int

const (
	// StateNormal is the idle state.
	StateNormal ButtonState = iota
	// StateHovered has the pointer over the button.
	StateHovered
	// StatePressed has the button held down.
	StatePressed
	// StateDisabled ignores interaction.
	StateDisabled

	buttonStateCount
)

// String returns the state name for logs and status display.
func (s ButtonState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ButtonVisual is the image provider's rendering state for a button.
type ButtonVisual int

const (
	// VisualNormal renders the idle image.
	VisualNormal ButtonVisual = iota
	// VisualHovered renders the hover image.
	VisualHovered
	// VisualPressed renders the pressed image.
	VisualPressed
	// VisualDisabled renders the disabled image.
	VisualDisabled
)

// visualForState maps an interaction state to the provider visual. A value
// outside the closed state enumeration is a precondition violation
// somewhere upstream and panics here.
func visualForState(state ButtonState) ButtonVisual {
	switch state {
	case StateNormal:
		return VisualNormal
	case StateHovered:
		return VisualHovered
	case StatePressed:
		return VisualPressed
	case StateDisabled:
		return VisualDisabled
	default:
		panic(fmt.Sprintf("frame: no button visual for state %d", int(state)))
	}
}

// ButtonImage is one rendered caption button: the glyph drawn in the cell
// grid and the size its hit target occupies.
type ButtonImage struct {
	Glyph  string
	Width  int
	Height int
}

// ImageProvider supplies per-state caption button imagery and the margins
// the layout engine packs around each button.
type ImageProvider interface {
	// Image returns the imagery for kind in the given visual state.
	Image(kind ButtonKind, visual ButtonVisual) ButtonImage
	// Margin returns the spacing packed around kind during layout.
	Margin(kind ButtonKind) geometry.Insets
}

// GlyphImageProvider renders caption buttons from the configured glyph set
// at a fixed size per preset.
type GlyphImageProvider struct {
	width  int
	height int
	margin geometry.Insets
}

// NewImageProvider returns the pixel-preset provider used for desktop
// windows.
func NewImageProvider() *GlyphImageProvider {
	return &GlyphImageProvider{
		width:  config.CaptionButtonWidth,
		height: config.CaptionButtonHeight,
	}
}

// NewCellImageProvider returns the cell-preset provider used by the demo
// desktop. Button sizes follow the glyph width so ASCII and Unicode glyph
// sets stay in step.
func NewCellImageProvider() *GlyphImageProvider {
	return &GlyphImageProvider{
		width:  ansi.StringWidth(config.GetWindowButtonClose()),
		height: config.CellCaptionButtonHeight,
	}
}

// Image implements ImageProvider. The glyph is constant across visuals;
// interaction states restyle the same glyph at render time.
func (p *GlyphImageProvider) Image(kind ButtonKind, _ ButtonVisual) ButtonImage {
	var glyph string
	switch kind {
	case ButtonMinimize:
		glyph = config.GetWindowButtonMinimize()
	case ButtonMaximize:
		glyph = config.GetWindowButtonMaximize()
	case ButtonRestore:
		glyph = config.GetWindowButtonRestore()
	case ButtonClose:
		glyph = config.GetWindowButtonClose()
	}
	return ButtonImage{Glyph: glyph, Width: p.width, Height: p.height}
}

// Margin implements ImageProvider.
func (p *GlyphImageProvider) Margin(ButtonKind) geometry.Insets {
	return p.margin
}

// Button is one caption control. The frame view owns all four for the
// window's lifetime; they are never created or destroyed individually.
type Button struct {
	kind    ButtonKind
	name    string
	action  func()
	images  ImageProvider
	visible bool
	state   ButtonState
	bounds  geometry.Rect
}

func newButton(kind ButtonKind, name string, action func(), images ImageProvider) *Button {
	return &Button{
		kind:   kind,
		name:   name,
		action: action,
		images: images,
	}
}

// Kind returns the button identity.
func (b *Button) Kind() ButtonKind { return b.kind }

// AccessibleName returns the button's screen-reader label.
func (b *Button) AccessibleName() string { return b.name }

// Visible reports whether the button participates in layout and
// hit-testing.
func (b *Button) Visible() bool { return b.visible }

// SetVisible shows or hides the button.
func (b *Button) SetVisible(visible bool) { b.visible = visible }

// State returns the current interaction state.
func (b *Button) State() ButtonState { return b.state }

// SetState sets the interaction state.
func (b *Button) SetState(state ButtonState) { b.state = state }

// Bounds returns the rectangle assigned by the last layout pass.
func (b *Button) Bounds() geometry.Rect { return b.bounds }

// SetBounds assigns the button's rectangle.
func (b *Button) SetBounds(r geometry.Rect) { b.bounds = r }

// PreferredSize returns the size the button wants, taken from its normal
// state imagery.
func (b *Button) PreferredSize() geometry.Size {
	img := b.images.Image(b.kind, VisualNormal)
	return geometry.Size{Width: img.Width, Height: img.Height}
}

// Image returns the imagery for the button's current state.
func (b *Button) Image() ButtonImage {
	return b.images.Image(b.kind, visualForState(b.state))
}

// Activate runs the button's bound action. Hidden and disabled buttons
// ignore activation.
func (b *Button) Activate() {
	if !b.visible || b.state == StateDisabled {
		return
	}
	if b.action != nil {
		b.action()
	}
}
