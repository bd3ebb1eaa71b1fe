// Package rubix models the stickers of a 3x3x3 twisty cube and the quarter
// turns that permute them.
//
// # Model
//
// A Cube holds six Faces keyed by the color of their center. Each Face
// stores its eight outer stickers as a clockwise ring, so a face turn is a
// rotation of the ring by two places. Turning a layer also moves twelve
// stickers on the four neighboring faces; the cube finds them by walking
// the fixed adjacency ring of the turning face's color.
//
// Which face is in front and which is on top is kept as two orientation
// pointers. Turning the whole cube in the hand only moves the pointers.
//
// # Quick Start
//
//	cube := rubix.NewCube()
//	cube.Apply(rubix.FrontCW, rubix.TopRowCW)
//	fmt.Println(cube)
//
//	// Four quarter turns of the same layer are the identity.
//	cube = rubix.NewCube()
//	for i := 0; i < 4; i++ {
//	    cube.Apply(rubix.MiddleColumnCW)
//	}
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Concurrency
//
// A Cube is a plain value owned by one goroutine. Tracker wraps a Cube for
// shared use: Apply calls are serialised and readers work on snapshots.
package rubix
