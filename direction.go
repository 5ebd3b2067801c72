package dpad

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// numDirections is the size of a region's neighbor table.
const numDirections = 4

// Directions lists every direction in neighbor-table order.
var Directions = [numDirections]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// ParseDirection parses the lower-case name of a direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Vector is a movement request with exactly one non-zero axis.
// {X: 1} is right, {X: -1} is left, {Y: 1} is up and {Y: -1} is down.
type Vector struct {
	X, Y int
}

// Direction decodes the vector. ok is false for the zero vector and for
// vectors with two non-zero axes; such vectors name no direction.
func (v Vector) Direction() (d Direction, ok bool) {
	switch {
	case v.Y == 0 && v.X > 0:
		return Right, true
	case v.Y == 0 && v.X < 0:
		return Left, true
	case v.X == 0 && v.Y > 0:
		return Up, true
	case v.X == 0 && v.Y < 0:
		return Down, true
	}
	return 0, false
}
