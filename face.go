package rubix

import "strings"

// ringSize is the number of non-center stickers on a face.
const ringSize = 8

// Face is one side of the cube: a fixed center and a ring of 8 stickers.
//
// The ring is stored clockwise as seen from outside the cube, starting at
// the bottom-left corner:
//
//	2 3 4
//	1 c 5
//	0 7 6
//
// Even positions are corners, odd positions are edge stickers. Each side's
// window is three consecutive ring positions (corner, edge, corner)
// starting at 2*side, so Left=0..2, Up=2..4, Right=4..6 and Down=6,7,0.
type Face struct {
	center   FaceColor
	vertices [ringSize]FaceColor
}

// NewFace returns a solved face of a single color.
func NewFace(color FaceColor) Face {
	f := Face{center: color}
	for i := range f.vertices {
		f.vertices[i] = color
	}
	return f
}

// FaceFrom builds a face from an explicit ring, in ring order.
func FaceFrom(center FaceColor, vertices [8]FaceColor) Face {
	return Face{center: center, vertices: vertices}
}

// Center returns the fixed center sticker.
func (f Face) Center() FaceColor {
	return f.center
}

// Vertices returns a copy of the ring in ring order.
func (f Face) Vertices() [8]FaceColor {
	return f.vertices
}

// window returns the ring positions covered by side, in clockwise order.
func window(side FaceEdge) [3]int {
	start := 2 * int(side)
	return [3]int{start, start + 1, (start + 2) % ringSize}
}

// Edge returns the three stickers along side in clockwise ring order.
// Corners shared by two sides read the same from either window.
func (f Face) Edge(side FaceEdge) [3]FaceColor {
	w := window(side)
	return [3]FaceColor{f.vertices[w[0]], f.vertices[w[1]], f.vertices[w[2]]}
}

// RotateClockwise turns the face a quarter turn clockwise: every sticker
// moves two places forward around the ring.
func (f *Face) RotateClockwise() {
	var next [ringSize]FaceColor
	for i, c := range f.vertices {
		next[(i+2)%ringSize] = c
	}
	f.vertices = next
}

// RotateCounterClockwise is the inverse of RotateClockwise.
func (f *Face) RotateCounterClockwise() {
	var next [ringSize]FaceColor
	for i := range next {
		next[i] = f.vertices[(i+2)%ringSize]
	}
	f.vertices = next
}

// rotate turns the face one quarter in dir.
func (f *Face) rotate(dir MoveDirection) {
	if dir == Clockwise {
		f.RotateClockwise()
	} else {
		f.RotateCounterClockwise()
	}
}

// ShiftIn replaces the window at side with incoming. The direction names
// the order incoming is listed in: Clockwise follows this face's ring order
// (the order Edge returns), CounterClockwise is the reverse. Stickers
// outside the window never move: the other five ring positions are left
// exactly as they were, and the face's own orientation is untouched.
func (f *Face) ShiftIn(side FaceEdge, incoming [3]FaceColor, dir MoveDirection) {
	w := window(side)
	for k, pos := range w {
		if dir == Clockwise {
			f.vertices[pos] = incoming[k]
		} else {
			f.vertices[pos] = incoming[2-k]
		}
	}
}

// gridIndex maps a 3x3 grid cell (row-major from the top-left) to a ring
// position; -1 marks the center.
var gridIndex = [9]int{
	2, 3, 4,
	1, -1, 5,
	0, 7, 6,
}

// Sticker returns the sticker at row, col of the face as seen from
// outside, with 0,0 at the top-left.
func (f Face) Sticker(row, col int) FaceColor {
	i := gridIndex[row*3+col]
	if i < 0 {
		return f.center
	}
	return f.vertices[i]
}

// Grid returns the nine stickers row by row.
func (f Face) Grid() [9]FaceColor {
	var g [9]FaceColor
	for i := range g {
		g[i] = f.Sticker(i/3, i%3)
	}
	return g
}

// IsSolved reports whether every sticker matches the center.
func (f Face) IsSolved() bool {
	for _, c := range f.vertices {
		if c != f.center {
			return false
		}
	}
	return true
}

// String returns the face as three rows of color letters.
func (f Face) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.Sticker(row, col).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
