package rubix

import "fmt"

// FaceColor is a sticker color. It doubles as the key of the face that
// color started on.
type FaceColor byte

const (
	White  FaceColor = 0 // Top when solved
	Red    FaceColor = 1 // Front when solved
	Green  FaceColor = 2 // Left when solved
	Orange FaceColor = 3 // Back when solved
	Blue   FaceColor = 4 // Right when solved
	Yellow FaceColor = 5 // Bottom when solved
)

// numColors is the number of faces on the cube.
const numColors = 6

// Colors lists every FaceColor in index order.
var Colors = [numColors]FaceColor{White, Red, Green, Orange, Blue, Yellow}

func (c FaceColor) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c FaceColor) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("color(%d)", byte(c))
	}
}

// Valid reports whether c is one of the six colors.
func (c FaceColor) Valid() bool {
	return c < numColors
}

// ParseColor accepts a color letter (W, R, G, O, B, Y) or name.
func ParseColor(s string) (FaceColor, error) {
	for _, c := range Colors {
		if s == c.String() || s == c.Name() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// FaceEdge names one side of a face as seen from outside the cube.
type FaceEdge int

const (
	EdgeLeft  FaceEdge = 0
	EdgeUp    FaceEdge = 1
	EdgeRight FaceEdge = 2
	EdgeDown  FaceEdge = 3
)

func (e FaceEdge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeUp:
		return "up"
	case EdgeRight:
		return "right"
	case EdgeDown:
		return "down"
	default:
		return "?"
	}
}

// FaceOrientation is a physical position on the cube.
type FaceOrientation int

const (
	OrientTop FaceOrientation = iota
	OrientFront
	OrientLeft
	OrientBack
	OrientRight
	OrientBottom
)

// Orientations lists the six physical positions.
var Orientations = [numColors]FaceOrientation{OrientTop, OrientFront, OrientLeft, OrientBack, OrientRight, OrientBottom}

func (o FaceOrientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientFront:
		return "front"
	case OrientLeft:
		return "left"
	case OrientBack:
		return "back"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	default:
		return "?"
	}
}

// adjacency holds, for each color, its four neighbors in clockwise order
// as seen looking at that face from outside, starting with the neighbor
// on its Left edge. Index i of the ring is the neighbor across FaceEdge(i).
var adjacency = [numColors][4]FaceColor{
	White:  {Green, Orange, Blue, Red},
	Red:    {Green, White, Blue, Yellow},
	Green:  {Orange, White, Red, Yellow},
	Orange: {Blue, White, Green, Yellow},
	Blue:   {Red, White, Orange, Yellow},
	Yellow: {Green, Red, Blue, Orange},
}

// opposite is derived from adjacency at init.
var opposite [numColors]FaceColor

func init() {
	if err := checkTopology(); err != nil {
		panic(err)
	}
}

// AdjacencyRing returns the four neighbors of c in clockwise order.
func AdjacencyRing(c FaceColor) [4]FaceColor {
	return adjacency[c]
}

// Opposite returns the color across the cube from c.
func Opposite(c FaceColor) FaceColor {
	return opposite[c]
}

// Adjacent reports whether a and b share an edge on the cube.
func Adjacent(a, b FaceColor) bool {
	return a != b && opposite[a] != b
}

// edgeToward returns the side of face n that borders face c.
func edgeToward(n, c FaceColor) (FaceEdge, bool) {
	for i, x := range adjacency[n] {
		if x == c {
			return FaceEdge(i), true
		}
	}
	return 0, false
}

// checkTopology verifies the adjacency table describes a real cube and
// fills in the opposite table.
func checkTopology() error {
	for _, c := range Colors {
		var seen [numColors]bool
		seen[c] = true
		for _, n := range adjacency[c] {
			if seen[n] {
				return fmt.Errorf("rubix: %s lists %s twice or itself", c.Name(), n.Name())
			}
			seen[n] = true
			if _, ok := edgeToward(n, c); !ok {
				return fmt.Errorf("rubix: %s neighbors %s but not the reverse", c.Name(), n.Name())
			}
		}
		found := 0
		for _, o := range Colors {
			if !seen[o] {
				opposite[c] = o
				found++
			}
		}
		if found != 1 {
			return fmt.Errorf("rubix: %s has %d opposite faces", c.Name(), found)
		}
	}

	// Going clockwise around c, each neighbor's next neighbor must also
	// border it on the far side of the shared corner.
	for _, c := range Colors {
		ring := adjacency[c]
		for i := range ring {
			a, b := ring[i], ring[(i+1)%4]
			if !Adjacent(a, b) {
				return fmt.Errorf("rubix: consecutive neighbors %s and %s of %s are opposite", a.Name(), b.Name(), c.Name())
			}
			ea, _ := edgeToward(a, c)
			// On a, the corner shared by c and b sits just before c's edge
			// going clockwise.
			if adjacency[a][(int(ea)+3)%4] != b {
				return fmt.Errorf("rubix: ring of %s is not clockwise at %s", c.Name(), a.Name())
			}
		}
	}
	return nil
}
