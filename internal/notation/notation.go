// Package notation converts between standard cube notation and rubix moves.
//
// Letters follow the usual conventions: U, E and D turn rows, R, M and L
// turn columns, F and B turn the front and back faces. D, E, L and M turn
// in the sense of the face they are named after, which is the opposite of
// the rubix direction for that layer (rows are seen from the top, columns
// from the right).
package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/rubix"
)

// letter is the base meaning of one notation letter.
type letter struct {
	face     rubix.AffectedFace
	reversed bool
}

var letters = map[byte]letter{
	'U': {rubix.TopRow, false},
	'E': {rubix.MiddleRow, true},
	'D': {rubix.BottomRow, true},
	'R': {rubix.RightColumn, false},
	'M': {rubix.MiddleColumn, true},
	'L': {rubix.LeftColumn, true},
	'F': {rubix.FrontFace, false},
	'B': {rubix.BackFace, false},
}

// letterFor is the inverse of letters.
var letterFor = func() map[rubix.AffectedFace]byte {
	m := make(map[rubix.AffectedFace]byte, len(letters))
	for ch, l := range letters {
		m[l.face] = ch
	}
	return m
}()

// ParseToken parses a single token such as R, R' or R2. A double turn
// yields two moves.
func ParseToken(s string) ([]rubix.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty token", rubix.ErrInvalidNotation)
	}

	l, ok := letters[s[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", rubix.ErrInvalidNotation, s)
	}

	dir := rubix.Clockwise
	if l.reversed {
		dir = rubix.CounterClockwise
	}
	m := rubix.Move{Direction: dir, Face: l.face}

	switch s[1:] {
	case "":
		return []rubix.Move{m}, nil
	case "'", "`":
		return []rubix.Move{m.Inverse()}, nil
	case "2", "2'":
		return []rubix.Move{m, m}, nil
	default:
		return nil, fmt.Errorf("%w: %q", rubix.ErrInvalidNotation, s)
	}
}

// Parse parses a space-separated sequence like "R U R' U'".
func Parse(s string) ([]rubix.Move, error) {
	var moves []rubix.Move
	for _, tok := range strings.Fields(s) {
		ms, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, ms...)
	}
	return moves, nil
}

// FormatMove returns the notation for a single quarter turn.
func FormatMove(m rubix.Move) string {
	ch, ok := letterFor[m.Face]
	if !ok {
		return "?"
	}
	base := rubix.Clockwise
	if letters[ch].reversed {
		base = rubix.CounterClockwise
	}
	if m.Direction == base {
		return string(ch)
	}
	return string(ch) + "'"
}

// FormatRotation returns the notation for a whole-cube rotation: x, y or
// z, primed when counter-clockwise.
func FormatRotation(r rubix.Rotation) string {
	if r.Direction == rubix.CounterClockwise {
		return r.Axis.String() + "'"
	}
	return r.Axis.String()
}

// Format formats moves as notation, writing two identical consecutive
// quarter turns as a double turn.
func Format(moves []rubix.Move) string {
	parts := make([]string, 0, len(moves))
	for i := 0; i < len(moves); i++ {
		if i+1 < len(moves) && moves[i] == moves[i+1] {
			ch := FormatMove(moves[i])
			parts = append(parts, ch[:1]+"2")
			i++
			continue
		}
		parts = append(parts, FormatMove(moves[i]))
	}
	return strings.Join(parts, " ")
}
