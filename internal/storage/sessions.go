package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/rubix"
	"github.com/SeamusWaldron/rubix/internal/notation"
)

// timeLayout keeps fractional seconds at a fixed width so stored timestamps
// sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrSessionNotFound is returned when no session has the requested ID.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is a stored cube and the moves that produced it.
type Session struct {
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
	Notes     *string
	Front     rubix.FaceColor
	Top       rubix.FaceColor
	MoveCount int
	state     []byte
}

// Cube decodes the stored cube.
func (s *Session) Cube() (*rubix.Cube, error) {
	var c rubix.Cube
	if err := c.UnmarshalBinary(s.state); err != nil {
		return nil, fmt.Errorf("session %s: %w", s.SessionID, err)
	}
	return &c, nil
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session holding a solved cube and returns its ID.
func (r *SessionRepository) Create(notes string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(timeLayout)

	c := rubix.NewCube()
	state, err := c.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to encode cube: %w", err)
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err = r.db.Exec(`
		INSERT INTO sessions (session_id, created_at, updated_at, notes, front, top, state)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, now, now, notesPtr, int(c.Front()), int(c.Top()), state)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.db.log.Info().Str("session", id).Msg("created session")
	return id, nil
}

const sessionColumns = `
	s.session_id, s.created_at, s.updated_at, s.notes, s.front, s.top, s.state,
	(SELECT COUNT(*) FROM session_moves m WHERE m.session_id = s.session_id)
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var created, updated string
	var front, top int
	if err := row.Scan(&s.SessionID, &created, &updated, &s.Notes, &front, &top, &s.state, &s.MoveCount); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	s.Front, s.Top = rubix.FaceColor(front), rubix.FaceColor(top)
	return &s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.session_id = ?`, sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recently updated sessions first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions s
		ORDER BY s.updated_at DESC, s.rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// AppendMoves applies moves to the session's cube and records them in a
// single transaction. It returns the updated cube.
func (r *SessionRepository) AppendMoves(sessionID string, moves []rubix.Move) (*rubix.Cube, error) {
	for _, m := range moves {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	s, err := r.Get(sessionID)
	if err != nil {
		return nil, err
	}
	c, err := s.Cube()
	if err != nil {
		return nil, err
	}
	c.Apply(moves...)

	state, err := c.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode cube: %w", err)
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO session_moves (session_id, move_index, face, direction, notation)
				VALUES (?, ?, ?, ?, ?)
			`, sessionID, s.MoveCount+i, int(m.Face), int(m.Direction), notation.FormatMove(m))
			if err != nil {
				return fmt.Errorf("failed to record move %d: %w", s.MoveCount+i, err)
			}
		}

		_, err := tx.Exec(`
			UPDATE sessions SET state = ?, front = ?, top = ?, updated_at = ?
			WHERE session_id = ?
		`, state, int(c.Front()), int(c.Top()), time.Now().UTC().Format(timeLayout), sessionID)
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.db.log.Debug().Str("session", sessionID).Int("moves", len(moves)).Msg("appended moves")
	return c, nil
}

// Moves retrieves a session's moves in order.
func (r *SessionRepository) Moves(sessionID string) ([]rubix.Move, error) {
	rows, err := r.db.Query(`
		SELECT face, direction
		FROM session_moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []rubix.Move
	for rows.Next() {
		var face, dir int
		if err := rows.Scan(&face, &dir); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m := rubix.Move{Direction: rubix.MoveDirection(dir), Face: rubix.AffectedFace(face)}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("session %s move %d: %w", sessionID, len(moves), err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// Load returns the session's cube after checking that replaying its moves
// from a solved cube reproduces the stored state.
func (r *SessionRepository) Load(sessionID string) (*rubix.Cube, error) {
	s, err := r.Get(sessionID)
	if err != nil {
		return nil, err
	}
	stored, err := s.Cube()
	if err != nil {
		return nil, err
	}

	moves, err := r.Moves(sessionID)
	if err != nil {
		return nil, err
	}
	replayed := rubix.NewCube()
	replayed.Apply(moves...)

	if !replayed.Equal(stored) {
		r.db.log.Warn().Str("session", sessionID).Int("moves", len(moves)).Msg("stored state does not match move log")
		return nil, fmt.Errorf("%w: session %s does not match its move log", rubix.ErrCorruptState, sessionID)
	}
	return stored, nil
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	res, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}
