package rubix

import "errors"

// Sentinel errors for the rubix package.
var (
	// Value errors
	ErrInvalidColor = errors.New("rubix: invalid color")
	ErrInvalidMove  = errors.New("rubix: invalid move")

	// Orientation errors
	ErrSameOrientation     = errors.New("rubix: front and top are the same face")
	ErrOppositeOrientation = errors.New("rubix: front and top are opposite faces")

	// Parsing errors
	ErrInvalidNotation = errors.New("rubix: invalid move notation")

	// State errors
	ErrCorruptState  = errors.New("rubix: corrupt cube state")
	ErrNothingToUndo = errors.New("rubix: nothing to undo")
)
