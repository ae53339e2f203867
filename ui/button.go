package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

var _ Component = (*Button)(nil)

// Default button colors.
var (
	DefaultBaseColor    = render.Color{0.5, 0.5, 0.5, 1}
	DefaultHoveredColor = render.Color{0.8, 0.8, 0.8, 1}
	DefaultPressedColor = render.Color{1.0, 0.6, 0.6, 1}
)

// State is the interaction state of a Button.
type State int

const (
	// Idle: the pointer is outside the button.
	Idle State = iota
	// Hovered: the pointer is over the button, primary button up.
	Hovered
	// Pressed: the primary button went down over the button and has not
	// been released.
	Pressed
	// PressedOutside: a press dragged off the button. Re-entering restores
	// Pressed; any button event clears it without a click.
	PressedOutside
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case PressedOutside:
		return "pressed-outside"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Button is a clickable rectangle with a centred label. A click is a
// press and release of the primary pointer button over the button; the
// pointer may leave and come back while the button is held.
type Button struct {
	baseColor    color.Color
	hoveredColor color.Color
	pressedColor color.Color

	state   State
	origin  shapes.Point
	bounds  shapes.Rect
	label   *Label
	onClick func()
	parent  Container
}

// NewButton returns a zero-sized button at the origin with the default
// colors.
func NewButton(text string) *Button {
	b := &Button{
		baseColor:    DefaultBaseColor,
		hoveredColor: DefaultHoveredColor,
		pressedColor: DefaultPressedColor,
		label:        NewLabel(text).WithFontSize(defaultFontSize),
	}
	b.centerLabel()
	return b
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) GetParent() Container {
	return b.parent
}

// WithSize sets the size. It does not move the button; call SetPosition
// again to re-apply the origin.
func (b *Button) WithSize(s shapes.Size) *Button {
	b.SetSize(s)
	return b
}

// WithOrigin sets the origin fraction used by later SetPosition calls.
func (b *Button) WithOrigin(o shapes.Point) *Button {
	b.SetOrigin(o)
	return b
}

func (b *Button) WithPosition(p shapes.Point) *Button {
	b.SetPosition(p)
	return b
}

// WithColors sets the idle, hovered and pressed colors.
func (b *Button) WithColors(base, hovered, pressed color.Color) *Button {
	b.baseColor = base
	b.hoveredColor = hovered
	b.pressedColor = pressed
	return b
}

// OnClick registers fn to run on every click, in addition to HandleEvent
// returning true.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// SetPosition places the button so that its origin point lands on p.
func (b *Button) SetPosition(p shapes.Point) {
	b.bounds.Pos = p.Sub(b.bounds.Size.Anchor(b.origin))
	b.centerLabel()
}

func (b *Button) SetOrigin(o shapes.Point) {
	b.origin = o
}

func (b *Button) SetSize(s shapes.Size) {
	b.bounds.Size = s
	b.centerLabel()
}

func (b *Button) Place(topLeft shapes.Point) {
	b.bounds.Pos = topLeft
	b.centerLabel()
}

func (b *Button) Label() *Label       { return b.label }
func (b *Button) Bounds() shapes.Rect { return b.bounds }
func (b *Button) State() State        { return b.state }

// centerLabel keeps the label anchored at the centre of the bounds.
func (b *Button) centerLabel() {
	b.label.SetOrigin(shapes.Pt(0.5, 0.5))
	b.label.SetPosition(b.bounds.Center())
}

// Color returns the fill for the current state.
func (b *Button) Color() color.Color {
	switch b.state {
	case Pressed:
		return b.pressedColor
	case Hovered:
		return b.hoveredColor
	}
	return b.baseColor
}

func (b *Button) Update(float64) {}

func (b *Button) Draw(ctx render.Context) {
	ctx.FillRect(b.bounds, b.Color())
	b.label.Draw(ctx)
}

// HandleEvent feeds one input event through the state machine and reports
// whether it completed a click. Key events are ignored.
func (b *Button) HandleEvent(e input.Event) bool {
	switch e.Kind {
	case input.PointerMove:
		b.onMove(e.X, e.Y)
	case input.PointerButton:
		return b.onButton(e.Button, e.Pressed)
	}
	return false
}

func (b *Button) onMove(x, y float64) {
	inside := b.bounds.Contains(x, y)
	switch {
	case inside && b.state == Idle:
		b.state = Hovered
	case inside && b.state == PressedOutside:
		b.state = Pressed
	case !inside && b.state == Hovered:
		b.state = Idle
	case !inside && b.state == Pressed:
		b.state = PressedOutside
	}
}

func (b *Button) onButton(button ebiten.MouseButton, pressed bool) bool {
	wasPressed := b.state == Pressed

	switch {
	case b.state == Idle || b.state == PressedOutside:
		b.state = Idle
		return false
	case button != ebiten.MouseButtonLeft:
		b.state = Hovered
		return false
	case pressed:
		b.state = Pressed
		return false
	}

	b.state = Hovered
	if wasPressed && b.onClick != nil {
		b.onClick()
	}
	return wasPressed
}
