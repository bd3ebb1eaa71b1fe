package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubix/internal/notation"
	"github.com/SeamusWaldron/rubix/internal/storage"
)

var (
	sessionNotes string
	listLimit    int
	showLast     bool
	exportFormat string
	exportOutput string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored cube sessions",
	Long:  `Commands for creating sessions, adding moves to them and inspecting them.`,
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session with a solved cube",
	Args:  cobra.NoArgs,
	RunE:  runSessionNew,
}

var sessionMoveCmd = &cobra.Command{
	Use:   "move <session-id> <moves>",
	Short: "Append moves to a session",
	Long: `Apply moves in standard notation to a session's cube and record them.

Example:
  rubix session move 3f2a... "R U R' U'"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSessionMove,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session's cube and moves",
	Long: `Display a session's cube after checking it against its move log.

Use --last to show the most recently updated session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionShow,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionExportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session's moves",
	Long: `Export the move sequence of a session in text or JSON format.

Examples:
  rubix session export <session-id>
  rubix session export <session-id> --format json -o moves.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionExport,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.AddCommand(sessionNewCmd)
	sessionNewCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes for this session")

	sessionCmd.AddCommand(sessionMoveCmd)

	sessionCmd.AddCommand(sessionShowCmd)
	sessionShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	sessionCmd.AddCommand(sessionListCmd)
	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionCmd.AddCommand(sessionExportCmd)
	sessionExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	sessionExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	sessionCmd.AddCommand(sessionDeleteCmd)
}

func runSessionNew(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSessionRepository(db).Create(sessionNotes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Started session: %s\n", id)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  rubix session move %s \"R U R' U'\"\n", id)
	fmt.Fprintf(out, "  rubix play --session %s\n", id)
	return nil
}

func runSessionMove(cmd *cobra.Command, args []string) error {
	moves, err := notation.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := storage.NewSessionRepository(db).AppendMoves(args[0], moves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, newRenderer().Cube(c))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Recorded %d moves  Solved: %t\n", len(moves), c.IsSolved())
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !showLast {
		return fmt.Errorf("specify a session ID or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		sessions, err := repo.List(1)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions found")
		}
		id = sessions[0].SessionID
	}

	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	c, err := repo.Load(id)
	if err != nil {
		return err
	}
	moves, err := repo.Moves(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", s.SessionID)
	fmt.Fprintf(out, "Created: %s\n", s.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Updated: %s\n", s.UpdatedAt.Local().Format(time.DateTime))
	if s.Notes != nil {
		fmt.Fprintf(out, "Notes:   %s\n", *s.Notes)
	}
	fmt.Fprintf(out, "Front:   %s  Top: %s\n", c.Front().Name(), c.Top().Name())
	fmt.Fprintf(out, "Moves:   %d  Solved: %t\n", len(moves), c.IsSolved())
	fmt.Fprintln(out)
	fmt.Fprint(out, newRenderer().Cube(c))
	if len(moves) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, notation.Format(moves))
	}
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %5s  %s\n", "ID", "UPDATED", "MOVES", "NOTES")
	for _, s := range sessions {
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		fmt.Fprintf(out, "%-36s  %-16s  %5d  %s\n",
			s.SessionID, s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.MoveCount, notes)
	}
	return nil
}

func runSessionExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	if _, err := repo.Get(args[0]); err != nil {
		return err
	}
	moves, err := repo.Moves(args[0])
	if err != nil {
		return err
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		output = notation.Format(moves)

	case "json":
		type MoveJSON struct {
			MoveIndex int    `json:"move_index"`
			Face      string `json:"face"`
			Direction string `json:"direction"`
			Notation  string `json:"notation"`
		}

		movesJSON := make([]MoveJSON, 0, len(moves))
		for i, m := range moves {
			movesJSON = append(movesJSON, MoveJSON{
				MoveIndex: i,
				Face:      m.Face.String(),
				Direction: m.Direction.String(),
				Notation:  notation.FormatMove(m),
			})
		}

		data, err := json.MarshalIndent(movesJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	// Write output
	out := cmd.OutOrStdout()
	if exportOutput == "" {
		fmt.Fprintln(out, output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(out, "Exported %d moves to %s\n", len(moves), exportOutput)
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
	return nil
}
