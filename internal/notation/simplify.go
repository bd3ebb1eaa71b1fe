package notation

import "github.com/SeamusWaldron/rubix"

// normalizeTurns reduces a count of clockwise quarter turns to the range
// [-1, 2]: -3 -> 1, -2 -> 2, 3 -> -1, 4 -> 0.
func normalizeTurns(turns int) int {
	turns = ((turns % 4) + 4) % 4
	if turns == 3 {
		turns = -1
	}
	return turns
}

// Simplify merges runs of turns of the same layer and drops runs that
// cancel out. The result has the same effect on any cube.
func Simplify(moves []rubix.Move) []rubix.Move {
	type run struct {
		face  rubix.AffectedFace
		turns int
	}

	var runs []run
	for _, m := range moves {
		if n := len(runs); n > 0 && runs[n-1].face == m.Face {
			runs[n-1].turns = normalizeTurns(runs[n-1].turns + int(m.Direction))
			if runs[n-1].turns == 0 {
				runs = runs[:n-1]
			}
			continue
		}
		runs = append(runs, run{face: m.Face, turns: int(m.Direction)})
	}

	out := make([]rubix.Move, 0, len(moves))
	for _, r := range runs {
		dir := rubix.Clockwise
		if r.turns < 0 {
			dir = rubix.CounterClockwise
		}
		n := r.turns
		if n < 0 {
			n = -n
		}
		for i := 0; i < n; i++ {
			out = append(out, rubix.Move{Direction: dir, Face: r.face})
		}
	}
	return out
}
