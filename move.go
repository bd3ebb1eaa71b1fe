package rubix

import "fmt"

// MoveDirection is the rotational sense of a quarter turn.
type MoveDirection int

const (
	Clockwise        MoveDirection = 1
	CounterClockwise MoveDirection = -1
)

// Opposite returns the reverse direction.
func (d MoveDirection) Opposite() MoveDirection {
	return -d
}

// Valid reports whether d is Clockwise or CounterClockwise.
func (d MoveDirection) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

func (d MoveDirection) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "?"
	}
}

// AffectedFace names the layer a move turns, relative to the cube's
// current orientation.
//
// Rows turn about the Top axis and their direction is seen from the top.
// Columns turn about the Right axis and their direction is seen from the
// right. FrontFace and BackFace are seen from their own side, as a person
// holding the cube would turn them.
//
// MiddleRow is the horizontal layer between TopRow and BottomRow (the E
// layer), so it shares the Top/Bottom axis, not the Front/Back one.
// MiddleRow and MiddleColumn carry the centers with them: after a slice
// the cube's Front and Top report the centers that moved into those
// positions.
type AffectedFace int

const (
	TopRow AffectedFace = iota
	MiddleRow // about the Top axis; moves the front/back/left/right centers
	BottomRow
	RightColumn
	MiddleColumn // about the Right axis; moves the front/top/back/bottom centers
	LeftColumn
	FrontFace
	BackFace
)

// AffectedFaces lists every layer in declaration order.
var AffectedFaces = []AffectedFace{
	TopRow, MiddleRow, BottomRow,
	RightColumn, MiddleColumn, LeftColumn,
	FrontFace, BackFace,
}

func (a AffectedFace) String() string {
	switch a {
	case TopRow:
		return "top-row"
	case MiddleRow:
		return "middle-row"
	case BottomRow:
		return "bottom-row"
	case RightColumn:
		return "right-column"
	case MiddleColumn:
		return "middle-column"
	case LeftColumn:
		return "left-column"
	case FrontFace:
		return "front"
	case BackFace:
		return "back"
	default:
		return "?"
	}
}

// Valid reports whether a is a defined layer.
func (a AffectedFace) Valid() bool {
	return a >= TopRow && a <= BackFace
}

// IsSlice reports whether a is a middle layer.
func (a AffectedFace) IsSlice() bool {
	return a == MiddleRow || a == MiddleColumn
}

// Move is a single quarter turn of one layer.
type Move struct {
	Direction MoveDirection
	Face      AffectedFace
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Direction: m.Direction.Opposite(), Face: m.Face}
}

// Validate rejects values outside the move vocabulary, for moves that
// arrive from outside the program.
func (m Move) Validate() error {
	if !m.Face.Valid() {
		return fmt.Errorf("%w: layer %d", ErrInvalidMove, int(m.Face))
	}
	if !m.Direction.Valid() {
		return fmt.Errorf("%w: direction %d", ErrInvalidMove, int(m.Direction))
	}
	return nil
}

func (m Move) String() string {
	return m.Face.String() + " " + m.Direction.String()
}

// Inverse returns the sequence that undoes moves.
func Inverse(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
