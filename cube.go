package rubix

import (
	"fmt"
	"strings"
)

// Cube is a 3x3x3 puzzle.
//
// Faces are stored by the color of their center, which never changes.
// Which face sits where is recorded by two orientation pointers, front and
// top; the remaining four positions follow from the adjacency table.
type Cube struct {
	faces [numColors]Face
	front FaceColor
	top   FaceColor
}

// NewCube creates a solved cube held with White on top and Red in front,
// Green on the left, Blue on the right, Orange at the back and Yellow
// underneath.
func NewCube() *Cube {
	c := &Cube{front: Red, top: White}
	for _, color := range Colors {
		c.faces[color] = NewFace(color)
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes have identical stickers and
// orientation.
func (c *Cube) Equal(other *Cube) bool {
	return *c == *other
}

// Front returns the color of the center currently at the front.
func (c *Cube) Front() FaceColor {
	return c.front
}

// Top returns the color of the center currently on top.
func (c *Cube) Top() FaceColor {
	return c.top
}

// Reorient sets which centers face front and up. The two must be
// adjacent.
func (c *Cube) Reorient(front, top FaceColor) error {
	if !front.Valid() || !top.Valid() {
		return fmt.Errorf("%w: front=%d top=%d", ErrInvalidColor, front, top)
	}
	if front == top {
		return fmt.Errorf("%w: %s", ErrSameOrientation, front.Name())
	}
	if opposite[front] == top {
		return fmt.Errorf("%w: %s and %s", ErrOppositeOrientation, front.Name(), top.Name())
	}
	c.front, c.top = front, top
	return nil
}

// colorAt resolves a physical position to the home color found there.
func (c *Cube) colorAt(o FaceOrientation) FaceColor {
	switch o {
	case OrientTop:
		return c.top
	case OrientFront:
		return c.front
	case OrientBottom:
		return opposite[c.top]
	case OrientBack:
		return opposite[c.front]
	}

	// Seen from the front, top is "up" in the front face's ring, so left
	// and right are its ring neighbors.
	ring := adjacency[c.front]
	k := 0
	for i, n := range ring {
		if n == c.top {
			k = i
		}
	}
	switch o {
	case OrientLeft:
		return ring[(k+3)%4]
	case OrientRight:
		return ring[(k+1)%4]
	}
	panic(fmt.Sprintf("rubix: unknown orientation %d", int(o)))
}

// ColorAt returns the center color at a physical position.
func (c *Cube) ColorAt(o FaceOrientation) FaceColor {
	return c.colorAt(o)
}

// Face returns the face at a physical position. The ring is in that face's
// own frame; use View for a copy turned to match the position.
func (c *Cube) Face(o FaceOrientation) Face {
	return c.faces[c.colorAt(o)]
}

// HomeFace returns the face whose center is color.
func (c *Cube) HomeFace(color FaceColor) Face {
	return c.faces[color]
}

// netUp is the position drawn above each position in an unfolded net.
var netUp = [numColors]FaceOrientation{
	OrientTop:    OrientBack,
	OrientFront:  OrientTop,
	OrientLeft:   OrientTop,
	OrientBack:   OrientTop,
	OrientRight:  OrientTop,
	OrientBottom: OrientFront,
}

// View returns the face at o turned so its rows read as they would in an
// unfolded net of the cube as currently held.
func (c *Cube) View(o FaceOrientation) Face {
	home := c.colorAt(o)
	f := c.faces[home]
	up, ok := edgeToward(home, c.colorAt(netUp[o]))
	if !ok {
		panic(fmt.Sprintf("rubix: %s does not border %s", home.Name(), c.colorAt(netUp[o]).Name()))
	}
	for i := 0; i < (int(EdgeUp)-int(up)+4)%4; i++ {
		f.RotateClockwise()
	}
	return f
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, f := range c.faces {
		if !f.IsSolved() {
			return false
		}
	}
	return true
}

// Apply applies moves in order. It panics on a move that fails Validate.
//
// Outer layer turns never change Front or Top. A MiddleRow or
// MiddleColumn turn moves four centers, so it also moves the orientation
// pointers: MiddleRowCW from a solved cube leaves Blue in front, and
// MiddleColumnCW leaves Yellow in front and Red on top.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.apply(m)
	}
}

func (c *Cube) apply(m Move) {
	if err := m.Validate(); err != nil {
		panic(err)
	}

	d := m.Direction
	switch m.Face {
	case FrontFace:
		c.turnLayer(c.front, d)
	case BackFace:
		c.turnLayer(opposite[c.front], d)
	case TopRow:
		c.turnLayer(c.top, d)
	case BottomRow:
		c.turnLayer(opposite[c.top], d.Opposite())
	case MiddleRow:
		c.turnSlice(c.top, d)
	case RightColumn:
		c.turnLayer(c.colorAt(OrientRight), d)
	case LeftColumn:
		c.turnLayer(c.colorAt(OrientLeft), d.Opposite())
	case MiddleColumn:
		c.turnSlice(c.colorAt(OrientRight), d)
	}
}

// turnSlice turns the middle layer about axis. Centers never leave their
// face, so the two outer layers turn the other way and the whole cube
// follows the slice; the stickers end up where the physical slice puts
// them and the orientation pointers track the moved centers.
func (c *Cube) turnSlice(axis FaceColor, dir MoveDirection) {
	c.turnLayer(axis, dir.Opposite())
	c.turnLayer(opposite[axis], dir)
	c.rotateAbout(axis, dir)
}

// loopSlot is one side face's share of an edge loop.
type loopSlot struct {
	face FaceColor
	side FaceEdge
}

// edgeLoop resolves the four windows that circle axis, in clockwise order
// as seen from axis.
func edgeLoop(axis FaceColor) [4]loopSlot {
	var slots [4]loopSlot
	for i, n := range adjacency[axis] {
		side, ok := edgeToward(n, axis)
		if !ok {
			panic(fmt.Sprintf("rubix: %s does not border %s", n.Name(), axis.Name()))
		}
		slots[i] = loopSlot{face: n, side: side}
	}
	return slots
}

// turnLayer turns the outer layer on axis a quarter turn in dir, as seen
// from that face.
func (c *Cube) turnLayer(axis FaceColor, dir MoveDirection) {
	slots := edgeLoop(axis)

	// A neighbor's clockwise window runs counterclockwise around axis, so
	// each window is reversed on the way in and out of the loop.
	var loop [12]FaceColor
	for i, s := range slots {
		e := c.faces[s.face].Edge(s.side)
		loop[3*i], loop[3*i+1], loop[3*i+2] = e[2], e[1], e[0]
	}

	shift := 3
	if dir == CounterClockwise {
		shift = 9
	}
	var turned [12]FaceColor
	for i, color := range loop {
		turned[(i+shift)%12] = color
	}

	for i, s := range slots {
		c.faces[s.face].ShiftIn(s.side, [3]FaceColor{turned[3*i], turned[3*i+1], turned[3*i+2]}, CounterClockwise)
	}
	c.faces[axis].rotate(dir)
}

// String returns an unfolded net of the cube as currently held.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(f.Sticker(row, col).String())
			b.WriteByte(' ')
		}
	}

	top := c.View(OrientTop)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(top, row)
		b.WriteByte('\n')
	}

	sides := []Face{c.View(OrientLeft), c.View(OrientFront), c.View(OrientRight), c.View(OrientBack)}
	for row := 0; row < 3; row++ {
		for _, f := range sides {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}

	bottom := c.View(OrientBottom)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(bottom, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// netOrder is the order faces appear in Stickers.
var netOrder = []FaceOrientation{OrientTop, OrientLeft, OrientFront, OrientRight, OrientBack, OrientBottom}

// Stickers returns all 54 stickers as color letters: the top, left,
// front, right, back and bottom faces in turn, each row by row as drawn
// in the net.
func (c *Cube) Stickers() string {
	var b strings.Builder
	b.Grow(54)
	for _, o := range netOrder {
		for _, color := range c.View(o).Grid() {
			b.WriteString(color.String())
		}
	}
	return b.String()
}
