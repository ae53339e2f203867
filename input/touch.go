package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollTouch maps the first active touch onto the pointer: touching down
// moves the pointer and presses the left button, dragging moves it, and
// lifting the finger releases the button. Further fingers are ignored.
func (m *Manager) pollTouch() {
	if !m.touching {
		m.touchBuf = inpututil.AppendJustPressedTouchIDs(m.touchBuf[:0])
		if len(m.touchBuf) == 0 {
			return
		}
		m.touchID = m.touchBuf[0]
		m.touching = true
		x, y := ebiten.TouchPosition(m.touchID)
		m.emit(MoveEvent(float64(x), float64(y)))
		m.emit(ButtonEvent(ebiten.MouseButtonLeft, true))
		return
	}

	if inpututil.IsTouchJustReleased(m.touchID) {
		m.touching = false
		m.emit(ButtonEvent(ebiten.MouseButtonLeft, false))
		return
	}

	x, y := ebiten.TouchPosition(m.touchID)
	if fx, fy := float64(x), float64(y); fx != m.cursor.X || fy != m.cursor.Y {
		m.emit(MoveEvent(fx, fy))
	}
}
