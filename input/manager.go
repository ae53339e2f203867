package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/skyfall/shapes"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Manager polls Ebitengine once per tick and tracks the resulting state.
type Manager struct {
	cursor  shapes.Point
	keys    map[ebiten.Key]bool
	buttons map[ebiten.MouseButton]bool

	// Primary touch, emulating the left mouse button.
	touchID  ebiten.TouchID
	touching bool

	events   []Event
	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// NewManager returns a manager with nothing held and the cursor at (0, 0).
func NewManager() *Manager {
	return &Manager{
		keys:    make(map[ebiten.Key]bool),
		buttons: make(map[ebiten.MouseButton]bool),
	}
}

// Poll reads this tick's input from Ebitengine and returns the events it
// produced, in the order pointer move, pointer buttons, keys, touch. The
// returned slice is reused by the next call.
func (m *Manager) Poll() []Event {
	m.events = m.events[:0]

	cx, cy := ebiten.CursorPosition()
	if p := shapes.Pt(float64(cx), float64(cy)); p != m.cursor && !m.touching {
		m.emit(MoveEvent(p.X, p.Y))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			m.emit(ButtonEvent(b, true))
		} else if inpututil.IsMouseButtonJustReleased(b) {
			m.emit(ButtonEvent(b, false))
		}
	}

	m.keyBuf = inpututil.AppendJustPressedKeys(m.keyBuf[:0])
	for _, k := range m.keyBuf {
		m.emit(KeyEvent(k, true))
	}
	m.keyBuf = inpututil.AppendJustReleasedKeys(m.keyBuf[:0])
	for _, k := range m.keyBuf {
		m.emit(KeyEvent(k, false))
	}

	m.pollTouch()
	return m.events
}

func (m *Manager) emit(e Event) {
	m.Feed(e)
	m.events = append(m.events, e)
}

// Feed applies an event to the tracked state without polling. Poll uses it
// for every event it emits; tests and replays can call it directly.
func (m *Manager) Feed(e Event) {
	switch e.Kind {
	case PointerMove:
		m.cursor = shapes.Pt(e.X, e.Y)
	case PointerButton:
		m.buttons[e.Button] = e.Pressed
	case Key:
		m.keys[e.Key] = e.Pressed
	}
}

// CursorPos returns the last known pointer position in screen pixels.
func (m *Manager) CursorPos() shapes.Point {
	return m.cursor
}

// IsKeyDown reports whether k is currently held.
func (m *Manager) IsKeyDown(k ebiten.Key) bool {
	return m.keys[k]
}

// IsButtonDown reports whether pointer button b is currently held.
func (m *Manager) IsButtonDown(b ebiten.MouseButton) bool {
	return m.buttons[b]
}
