// Package tui is the interactive keyboard front end for turning a cube.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/rubix"
	"github.com/SeamusWaldron/rubix/internal/notation"
	"github.com/SeamusWaldron/rubix/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ErrRotationInSession is shown when a whole-cube rotation is requested
// while moves are being recorded; the move log cannot express it.
var ErrRotationInSession = errors.New("rotations are not recorded in sessions")

// recentMoves is how many moves the status line shows.
const recentMoves = 20

// MoveStore records moves for a session.
type MoveStore interface {
	AppendMoves(sessionID string, moves []rubix.Move) (*rubix.Cube, error)
}

var rotationKeys = map[string]rubix.Rotation{
	"x": {Axis: rubix.AxisX, Direction: rubix.Clockwise},
	"X": {Axis: rubix.AxisX, Direction: rubix.CounterClockwise},
	"y": {Axis: rubix.AxisY, Direction: rubix.Clockwise},
	"Y": {Axis: rubix.AxisY, Direction: rubix.CounterClockwise},
	"z": {Axis: rubix.AxisZ, Direction: rubix.Clockwise},
	"Z": {Axis: rubix.AxisZ, Direction: rubix.CounterClockwise},
}

// Model is the bubbletea model for play mode.
type Model struct {
	tracker  *rubix.Tracker
	renderer *render.Renderer
	log      zerolog.Logger

	// Recording
	store     MoveStore
	sessionID string

	// State
	last     string
	err      error
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithSession records every move to store under sessionID.
func WithSession(store MoveStore, sessionID string) Option {
	return func(m *Model) {
		m.store = store
		m.sessionID = sessionID
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New creates a play model around tracker.
func New(tracker *rubix.Tracker, r *render.Renderer, opts ...Option) *Model {
	m := &Model{
		tracker:  tracker,
		renderer: r,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch k := key.String(); k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "backspace", "ctrl+z":
		m.undo()

	case "ctrl+r":
		m.reset()

	default:
		if r, ok := rotationKeys[k]; ok {
			m.rotate(r)
			break
		}
		if moves, ok := keyMoves(k); ok {
			m.apply(moves)
		}
	}
	return m, nil
}

// keyMoves maps a lowercase letter to its notation move and an uppercase
// letter to the inverse.
func keyMoves(k string) ([]rubix.Move, bool) {
	if len(k) != 1 {
		return nil, false
	}
	tok := strings.ToUpper(k)
	if tok == k {
		tok += "'"
	}
	moves, err := notation.ParseToken(tok)
	if err != nil {
		return nil, false
	}
	return moves, true
}

func (m *Model) record(moves []rubix.Move) error {
	if m.store == nil || len(moves) == 0 {
		return nil
	}
	if _, err := m.store.AppendMoves(m.sessionID, moves); err != nil {
		m.log.Error().Err(err).Str("session", m.sessionID).Msg("failed to record moves")
		return err
	}
	return nil
}

func (m *Model) apply(moves []rubix.Move) {
	if err := m.record(moves); err != nil {
		m.err = err
		return
	}
	if err := m.tracker.Apply(moves...); err != nil {
		m.err = err
		return
	}
	m.last = notation.Format(moves)
}

func (m *Model) undo() {
	steps := m.tracker.Steps()
	if len(steps) == 0 {
		m.err = rubix.ErrNothingToUndo
		return
	}
	if last := steps[len(steps)-1]; !last.IsRotation {
		if err := m.record([]rubix.Move{last.Move.Inverse()}); err != nil {
			m.err = err
			return
		}
	}
	undone, err := m.tracker.Undo()
	if err != nil {
		m.err = err
		return
	}
	m.last = "undo " + formatStep(undone)
}

func formatStep(s rubix.Step) string {
	if s.IsRotation {
		return notation.FormatRotation(s.Rotation)
	}
	return notation.FormatMove(s.Move)
}

func (m *Model) rotate(r rubix.Rotation) {
	if m.store != nil {
		m.err = ErrRotationInSession
		return
	}
	m.tracker.Rotate(r)
	m.last = notation.FormatRotation(r)
}

func (m *Model) reset() {
	if err := m.record(rubix.Inverse(m.tracker.History())); err != nil {
		m.err = err
		return
	}
	m.tracker.Reset()
	m.last = "reset"
}

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("rubix"))
	if m.sessionID != "" {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  session %s", m.sessionID)))
	}
	b.WriteString("\n\n")

	cube := m.tracker.Snapshot()
	b.WriteString(m.renderer.Cube(cube))
	b.WriteString("\n")

	history := m.tracker.History()
	if cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Front: %s  Top: %s", cube.Front().Name(), cube.Top().Name())))
	}
	b.WriteString(fmt.Sprintf("  Moves: %d\n", len(history)))

	// Recent moves
	if len(history) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(history) > recentMoves {
			start = len(history) - recentMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(notation.Format(history[start:])))
		b.WriteString("\n")
	}
	if m.last != "" {
		b.WriteString(statusStyle.Render("Last: " + m.last))
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Turn: u e d r m l f b (shift=inverse) | x y z rotate | backspace=undo ctrl+r=reset q=quit"))
	b.WriteString("\n")

	return b.String()
}
