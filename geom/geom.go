package geom

import "fmt"

// Position is a maze cell addressed by row and column
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by the one-step delta of d
func (p Position) Add(d Direction) Position {
	dr, dc := Delta(d)
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is a movement intent, None means stay
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four movement directions in edge enumeration order
var Directions = [4]Direction{Up, Down, Left, Right}

var directionNames = [...]string{
	None:  "none",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// Delta returns the row and column offset of a single step in d
func Delta(d Direction) (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Between returns the direction of a one-step hop from a to b
// Non-adjacent or identical cells yield None
func Between(a, b Position) Direction {
	for _, d := range Directions {
		if a.Add(d) == b {
			return d
		}
	}
	return None
}

// Edge is a legal one-step transition between two cells
type Edge struct {
	From, To Position
}
