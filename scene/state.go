package scene

import "fmt"

// GameState selects where input goes and whether the world updates.
type GameState int

const (
	InGame GameState = iota
	Paused
)

func (s GameState) String() string {
	switch s {
	case InGame:
		return "in-game"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
