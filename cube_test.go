package rubix

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var canonical = map[FaceOrientation]FaceColor{
	OrientTop:    White,
	OrientFront:  Red,
	OrientLeft:   Green,
	OrientBack:   Orange,
	OrientRight:  Blue,
	OrientBottom: Yellow,
}

func allMoves() []Move {
	var moves []Move
	for _, face := range AffectedFaces {
		moves = append(moves,
			Move{Direction: Clockwise, Face: face},
			Move{Direction: CounterClockwise, Face: face},
		)
	}
	return moves
}

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if c.Front() != Red || c.Top() != White {
		t.Errorf("orientation = front %s top %s, want front R top W", c.Front(), c.Top())
	}
}

func TestSolvedStateFaces(t *testing.T) {
	c := NewCube()
	for _, o := range Orientations {
		f := c.Face(o)
		want := canonical[o]
		if f.Center() != want {
			t.Errorf("%s center = %s, want %s", o, f.Center(), want)
		}
		for i, got := range f.Vertices() {
			if got != want {
				t.Errorf("%s sticker %d = %s, want %s", o, i, got, want)
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range allMoves() {
		c := NewCube()
		c.Apply(m)
		if c.IsSolved() {
			t.Errorf("cube should not be solved after %s", m)
		}
	}
}

func TestFourQuarterTurnsReturnToStart(t *testing.T) {
	for _, m := range allMoves() {
		c := NewCube()
		c.Apply(m, m, m, m)
		if !c.Equal(NewCube()) {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestFrontFaceFourTimesRestoresRing(t *testing.T) {
	c := NewCube()
	for i := 0; i < 4; i++ {
		c.Apply(FrontCW)
	}
	for _, color := range Colors {
		if diff := cmp.Diff(NewFace(color).Vertices(), c.HomeFace(color).Vertices()); diff != "" {
			t.Errorf("%s ring mismatch (-want +got):\n%s", color.Name(), diff)
		}
	}
}

func TestDirectionInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	moves := allMoves()

	// Start from a scrambled state so every sticker is distinguishable
	// from its neighbors more often than on a solved cube.
	start := NewCube()
	for i := 0; i < 40; i++ {
		start.Apply(moves[rng.Intn(len(moves))])
	}

	for _, m := range moves {
		c := start.Clone()
		c.Apply(m, m.Inverse())
		if !c.Equal(start) {
			t.Errorf("%s then %s should restore the cube", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestScrambleAndReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := allMoves()

	scramble := make([]Move, 60)
	for i := range scramble {
		scramble[i] = moves[rng.Intn(len(moves))]
	}

	c := NewCube()
	c.Apply(scramble...)
	if c.IsSolved() {
		t.Fatal("Cube should be scrambled after moves")
	}

	c.Apply(Inverse(scramble)...)
	if !c.Equal(NewCube()) {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 1; i <= 6; i++ {
		c.Apply(SexyMove...)
		if i < 6 && c.IsSolved() {
			t.Errorf("solved after only %d repetitions", i)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

// The order of a sequence is sensitive to corner and edge orientation,
// so it catches windows read in the wrong direction.
func TestSequenceOrders(t *testing.T) {
	tests := []struct {
		name  string
		seq   []Move
		order int
	}{
		{"R U", []Move{RightColumnCW, TopRowCW}, 105},
		{"R U'", []Move{RightColumnCW, TopRowCCW}, 63},
		{"R F", []Move{RightColumnCW, FrontCW}, 105},
		{"F B'", []Move{FrontCW, BackCCW}, 4},
		{"M' U", []Move{MiddleColumnCW, TopRowCW}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			for i := 1; i <= tt.order; i++ {
				c.Apply(tt.seq...)
				if c.Equal(NewCube()) && i != tt.order {
					t.Fatalf("returned to start after %d repetitions, want %d", i, tt.order)
				}
			}
			if !c.Equal(NewCube()) {
				t.Errorf("not back to start after %d repetitions", tt.order)
				t.Log(c.String())
			}
		})
	}
}

func TestFrontTurnNet(t *testing.T) {
	c := NewCube()
	c.Apply(FrontCW)

	want := "" +
		"      W W W \n" +
		"      W W W \n" +
		"      G G G \n" +
		"G G Y R R R W B B O O O \n" +
		"G G Y R R R W B B O O O \n" +
		"G G Y R R R W B B O O O \n" +
		"      B B B \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n"
	if diff := cmp.Diff(want, c.String()); diff != "" {
		t.Errorf("net mismatch (-want +got):\n%s", diff)
	}
}

func TestRightTurnNet(t *testing.T) {
	c := NewCube()
	c.Apply(RightColumnCW)

	want := "WWRWWRWWR" + "GGGGGGGGG" + "RRYRRYRRY" + "BBBBBBBBB" + "WOOWOOWOO" + "YYOYYOYYO"
	if got := c.Stickers(); got != want {
		t.Errorf("Stickers() = %s, want %s", got, want)
	}
}

func TestTopRowTurnNet(t *testing.T) {
	c := NewCube()
	c.Apply(TopRowCW)

	want := "WWWWWWWWW" + "RRRGGGGGG" + "BBBRRRRRR" + "OOOBBBBBB" + "GGGOOOOOO" + "YYYYYYYYY"
	if got := c.Stickers(); got != want {
		t.Errorf("Stickers() = %s, want %s", got, want)
	}
}

func TestBottomRowMatchesTopRowSense(t *testing.T) {
	// Rows share the top's point of view, so a clockwise bottom row
	// carries the front's bottom stickers to the left, like the top row.
	c := NewCube()
	c.Apply(BottomRowCW)
	left := c.View(OrientLeft)
	for col := 0; col < 3; col++ {
		if got := left.Sticker(2, col); got != Red {
			t.Errorf("left bottom row col %d = %s, want R", col, got)
		}
	}
}

func TestMiddleColumnMovesCenters(t *testing.T) {
	c := NewCube()
	c.Apply(MiddleColumnCW)

	if c.Front() != Yellow || c.Top() != Red {
		t.Errorf("orientation = front %s top %s, want front Y top R", c.Front(), c.Top())
	}

	want := [9]FaceColor{
		Red, Yellow, Red,
		Red, Yellow, Red,
		Red, Yellow, Red,
	}
	if got := c.View(OrientFront).Grid(); got != want {
		t.Errorf("front grid = %v, want %v", got, want)
		t.Log(c.String())
	}

	c.Apply(MiddleColumnCCW)
	if !c.Equal(NewCube()) {
		t.Error("M' then M should restore the cube")
		t.Log(c.String())
	}
}

func TestMiddleRowMovesCenters(t *testing.T) {
	c := NewCube()
	c.Apply(MiddleRowCW)

	if c.Front() != Blue || c.Top() != White {
		t.Errorf("orientation = front %s top %s, want front B top W", c.Front(), c.Top())
	}
	got := c.View(OrientFront).Grid()
	want := [9]FaceColor{
		Red, Red, Red,
		Blue, Blue, Blue,
		Red, Red, Red,
	}
	if got != want {
		t.Errorf("front grid = %v, want %v", got, want)
		t.Log(c.String())
	}
}

func TestOrientationResolution(t *testing.T) {
	c := NewCube()
	if err := c.Reorient(Blue, Yellow); err != nil {
		t.Fatalf("Reorient: %v", err)
	}

	want := map[FaceOrientation]FaceColor{
		OrientTop:    Yellow,
		OrientFront:  Blue,
		OrientBottom: White,
		OrientBack:   Green,
		OrientLeft:   Orange,
		OrientRight:  Red,
	}
	for o, color := range want {
		if got := c.ColorAt(o); got != color {
			t.Errorf("%s = %s, want %s", o, got.Name(), color.Name())
		}
	}
}

func TestReorientRejectsIllegalPairs(t *testing.T) {
	tests := []struct {
		front, top FaceColor
		want       error
	}{
		{Red, Red, ErrSameOrientation},
		{Red, Orange, ErrOppositeOrientation},
		{White, Yellow, ErrOppositeOrientation},
		{FaceColor(9), White, ErrInvalidColor},
	}
	for _, tt := range tests {
		c := NewCube()
		err := c.Reorient(tt.front, tt.top)
		if !errors.Is(err, tt.want) {
			t.Errorf("Reorient(%d, %d) = %v, want %v", tt.front, tt.top, err, tt.want)
		}
		if c.Front() != Red || c.Top() != White {
			t.Error("failed Reorient should leave orientation unchanged")
		}
	}
}

func TestFrontFollowsOrientation(t *testing.T) {
	// Holding the cube turned a quarter about the vertical axis, the front
	// face is the home Blue face, so a front turn is the same as a right
	// turn in the original grip.
	a := NewCube()
	a.Rotate(Rotation{Axis: AxisY, Direction: Clockwise})
	if a.Front() != Blue {
		t.Fatalf("front after y = %s, want B", a.Front())
	}
	a.Apply(FrontCW)

	b := NewCube()
	b.Apply(RightColumnCW)
	b.Rotate(Rotation{Axis: AxisY, Direction: Clockwise})

	if !a.Equal(b) {
		t.Error("y F should equal R y")
		t.Log(a.String())
		t.Log(b.String())
	}
}

func TestRotationsLeaveStickers(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		c := NewCube()
		c.Apply(SexyMove...)
		before := c.Clone()

		r := Rotation{Axis: axis, Direction: Clockwise}
		c.Rotate(r)
		for _, color := range Colors {
			if c.HomeFace(color) != before.HomeFace(color) {
				t.Errorf("%s: rotation changed %s face", axis, color.Name())
			}
		}
		if c.Front() == before.Front() && c.Top() == before.Top() {
			t.Errorf("%s: rotation left orientation unchanged", axis)
		}
		if !Adjacent(c.Front(), c.Top()) {
			t.Errorf("%s: front %s and top %s are not adjacent", axis, c.Front(), c.Top())
		}

		for i := 0; i < 3; i++ {
			c.Rotate(r)
		}
		if !c.Equal(before) {
			t.Errorf("%s x 4 should restore orientation", axis)
		}
	}
}

func TestXRotationBringsFrontUp(t *testing.T) {
	c := NewCube()
	c.Rotate(Rotation{Axis: AxisX, Direction: Clockwise})
	if c.Top() != Red || c.Front() != Yellow {
		t.Errorf("after x: front %s top %s, want front Y top R", c.Front(), c.Top())
	}
}

func TestApplyPanicsOnInvalidMove(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidMove) {
			t.Errorf("recovered %v, want ErrInvalidMove", r)
		}
	}()
	NewCube().Apply(Move{Direction: Clockwise, Face: AffectedFace(99)})
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	clone := c.Clone()
	clone.Apply(FrontCW)
	if !c.IsSolved() {
		t.Error("modifying the clone changed the original")
	}
}

func TestSolvedStickers(t *testing.T) {
	want := "WWWWWWWWW" + "GGGGGGGGG" + "RRRRRRRRR" + "BBBBBBBBB" + "OOOOOOOOO" + "YYYYYYYYY"
	if got := NewCube().Stickers(); got != want {
		t.Errorf("Stickers() = %s, want %s", got, want)
	}
}

func TestOuterTurnsKeepOrientation(t *testing.T) {
	for _, face := range AffectedFaces {
		c := NewCube()
		c.Apply(Move{Direction: Clockwise, Face: face})
		moved := c.Front() != Red || c.Top() != White
		if moved != face.IsSlice() {
			t.Errorf("%s: front=%s top=%s, slice=%v", face, c.Front(), c.Top(), face.IsSlice())
		}
	}
}
