package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubix"
	"github.com/SeamusWaldron/rubix/internal/storage"
	"github.com/SeamusWaldron/rubix/internal/tui"
)

var playSession string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively",
	Long: `Start an interactive TUI for turning a cube from the keyboard.

Keyboard shortcuts:
  u e d r m l f b  - Turn a layer (shift for the inverse)
  x y z            - Rotate the whole cube (shift for the inverse)
  backspace        - Undo the last move
  ctrl+r           - Reset to solved
  q/Esc            - Quit

With --session, every move is appended to that session.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playSession, "session", "", "Record moves to this session")
}

func runPlay(cmd *cobra.Command, args []string) error {
	tracker := rubix.NewTracker(rubix.WithLogger(logger))
	opts := []tui.Option{tui.WithLogger(logger)}

	if playSession != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSessionRepository(db)
		if _, err := repo.Load(playSession); err != nil {
			return err
		}
		moves, err := repo.Moves(playSession)
		if err != nil {
			return err
		}
		if err := tracker.Apply(moves...); err != nil {
			return err
		}
		opts = append(opts, tui.WithSession(repo, playSession))
	}

	model := tui.New(tracker, newRenderer(), opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
