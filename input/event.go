// Package input turns Ebitengine's polled input state into discrete events
// and keeps the held-key and cursor state the game objects query.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies the type of an Event.
type Kind int

const (
	PointerMove Kind = iota
	PointerButton
	Key
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerButton:
		return "pointer-button"
	case Key:
		return "key"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is one discrete input change. Only the fields relevant to Kind are
// set: X/Y for pointer moves, Button/Pressed for pointer buttons and
// Key/Pressed for keys.
type Event struct {
	Kind    Kind
	X, Y    float64
	Button  ebiten.MouseButton
	Key     ebiten.Key
	Pressed bool
}

// MoveEvent returns a pointer-move event to absolute position (x, y).
func MoveEvent(x, y float64) Event {
	return Event{Kind: PointerMove, X: x, Y: y}
}

// ButtonEvent returns a pointer-button press or release.
func ButtonEvent(b ebiten.MouseButton, pressed bool) Event {
	return Event{Kind: PointerButton, Button: b, Pressed: pressed}
}

// KeyEvent returns a key press or release.
func KeyEvent(k ebiten.Key, pressed bool) Event {
	return Event{Kind: Key, Key: k, Pressed: pressed}
}

// IsKeyPress reports whether e is a press of k.
func (e Event) IsKeyPress(k ebiten.Key) bool {
	return e.Kind == Key && e.Key == k && e.Pressed
}

func (e Event) String() string {
	switch e.Kind {
	case PointerMove:
		return fmt.Sprintf("move(%g, %g)", e.X, e.Y)
	case PointerButton:
		return fmt.Sprintf("button(%d, pressed=%t)", e.Button, e.Pressed)
	case Key:
		return fmt.Sprintf("key(%s, pressed=%t)", e.Key, e.Pressed)
	}
	return e.Kind.String()
}
