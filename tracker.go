package rubix

import "sync"

// Step is one entry of a Tracker's history: a layer turn, or a whole-cube
// rotation when IsRotation is set.
type Step struct {
	Move       Move
	Rotation   Rotation
	IsRotation bool
}

func (s Step) String() string {
	if s.IsRotation {
		return s.Rotation.String()
	}
	return s.Move.String()
}

// undo reverses s on c.
func (s Step) undo(c *Cube) {
	if s.IsRotation {
		c.Rotate(s.Rotation.Inverse())
		return
	}
	c.Apply(s.Move.Inverse())
}

// Tracker owns a Cube and serialises access to it. Writers go through
// Apply one at a time; readers take a Snapshot and work on the copy.
type Tracker struct {
	mu      sync.Mutex
	cube    *Cube
	history []Step
	cfg     *config
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube: NewCube(),
		cfg:  cfg,
	}
}

// Apply applies moves in order. Invalid moves are rejected before any
// move is applied.
func (t *Tracker) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, m := range moves {
		t.cube.Apply(m)
		if t.cfg.history {
			t.history = append(t.history, Step{Move: m})
		}
		t.cfg.logger.Debug().
			Stringer("move", m).
			Bool("solved", t.cube.IsSolved()).
			Msg("applied move")
		if t.cfg.onMove != nil {
			t.cfg.onMove(m, t.cube.Clone())
		}
	}
	return nil
}

// Rotate turns the whole cube in the hand. The rotation is kept in the
// history so that Undo steps back through it: later moves name layers
// relative to the new grip.
func (t *Tracker) Rotate(r Rotation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube.Rotate(r)
	if t.cfg.history {
		t.history = append(t.history, Step{Rotation: r, IsRotation: true})
	}
	t.cfg.logger.Debug().Stringer("rotation", r).Msg("rotated cube")
}

// Undo reverts the most recent move or rotation.
func (t *Tracker) Undo() (Step, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.history) == 0 {
		return Step{}, ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	last.undo(t.cube)
	t.cfg.logger.Debug().Stringer("step", last).Msg("undid step")
	return last, nil
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube = NewCube()
	t.history = nil
}

// Snapshot returns a copy of the current cube.
func (t *Tracker) Snapshot() *Cube {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Clone()
}

// History returns the applied layer moves, oldest first. Rotations are
// left out; use Steps for the full record.
func (t *Tracker) History() []Move {
	t.mu.Lock()
	defer t.mu.Unlock()
	var moves []Move
	for _, s := range t.history {
		if !s.IsRotation {
			moves = append(moves, s.Move)
		}
	}
	return moves
}

// Steps returns a copy of the full history, oldest first.
func (t *Tracker) Steps() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Step(nil), t.history...)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.IsSolved()
}
