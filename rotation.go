package rubix

// Axis is a whole-cube rotation axis, named as in standard notation.
type Axis int

const (
	AxisX Axis = iota // through the right face, seen from the right
	AxisY             // through the top face, seen from the top
	AxisZ             // through the front face, seen from the front
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Rotation turns the whole cube in the hand. No sticker moves relative to
// its center; only the orientation pointers change.
type Rotation struct {
	Axis      Axis
	Direction MoveDirection
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation{Axis: r.Axis, Direction: r.Direction.Opposite()}
}

func (r Rotation) String() string {
	return r.Axis.String() + " " + r.Direction.String()
}

// Rotate turns the whole cube.
func (c *Cube) Rotate(r Rotation) {
	var axis FaceColor
	switch r.Axis {
	case AxisX:
		axis = c.colorAt(OrientRight)
	case AxisY:
		axis = c.top
	case AxisZ:
		axis = c.front
	default:
		panic("rubix: unknown rotation axis " + r.Axis.String())
	}
	if !r.Direction.Valid() {
		panic("rubix: invalid rotation direction")
	}
	c.rotateAbout(axis, r.Direction)
}

// rotateAbout moves the orientation pointers as if the cube turned a
// quarter about axis.
func (c *Cube) rotateAbout(axis FaceColor, dir MoveDirection) {
	c.front = arrivingAt(axis, c.front, dir)
	c.top = arrivingAt(axis, c.top, dir)
}

// arrivingAt returns the color that moves into p's position when the cube
// turns about axis. Positions on the axis stay put.
func arrivingAt(axis, p FaceColor, dir MoveDirection) FaceColor {
	ring := adjacency[axis]
	for i, n := range ring {
		if n != p {
			continue
		}
		if dir == Clockwise {
			return ring[(i+3)%4]
		}
		return ring[(i+1)%4]
	}
	return p
}
