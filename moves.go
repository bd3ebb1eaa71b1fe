package rubix

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(rubix.FrontCW, rubix.TopRowCW, rubix.FrontCCW, rubix.TopRowCCW)
var (
	// Whole-face turns
	FrontCW  = Move{Direction: Clockwise, Face: FrontFace}
	FrontCCW = Move{Direction: CounterClockwise, Face: FrontFace}
	BackCW   = Move{Direction: Clockwise, Face: BackFace}
	BackCCW  = Move{Direction: CounterClockwise, Face: BackFace}

	// Rows, seen from the top
	TopRowCW     = Move{Direction: Clockwise, Face: TopRow}
	TopRowCCW    = Move{Direction: CounterClockwise, Face: TopRow}
	MiddleRowCW  = Move{Direction: Clockwise, Face: MiddleRow}
	MiddleRowCCW = Move{Direction: CounterClockwise, Face: MiddleRow}
	BottomRowCW  = Move{Direction: Clockwise, Face: BottomRow}
	BottomRowCCW = Move{Direction: CounterClockwise, Face: BottomRow}

	// Columns, seen from the right
	RightColumnCW   = Move{Direction: Clockwise, Face: RightColumn}
	RightColumnCCW  = Move{Direction: CounterClockwise, Face: RightColumn}
	MiddleColumnCW  = Move{Direction: Clockwise, Face: MiddleColumn}
	MiddleColumnCCW = Move{Direction: CounterClockwise, Face: MiddleColumn}
	LeftColumnCW    = Move{Direction: Clockwise, Face: LeftColumn}
	LeftColumnCCW   = Move{Direction: CounterClockwise, Face: LeftColumn}
)

// SexyMove is R U R' U', which returns to solved after six repetitions.
var SexyMove = []Move{RightColumnCW, TopRowCW, RightColumnCCW, TopRowCCW}
