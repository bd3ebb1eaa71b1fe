package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubix"
	"github.com/SeamusWaldron/rubix/internal/notation"
)

var (
	applyInverse  bool
	applySimplify bool
	applyFace     string
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a solved cube and print it",
	Long: `Apply a move sequence in standard notation to a solved cube and print
the unfolded net.

Letters: U E D (rows), R M L (columns), F B. A trailing ' inverts a
turn and a trailing 2 doubles it.

Examples:
  rubix apply "R U R' U'"
  rubix apply F2 B2 --inverse
  rubix apply "R R R U U'" --simplify
  rubix apply "R U" --face front`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyInverse, "inverse", false, "Apply the inverse of the sequence")
	applyCmd.Flags().StringVar(&applyFace, "face", "", "Print only the face at this position (top, front, left, back, right, bottom)")
	applyCmd.Flags().BoolVar(&applySimplify, "simplify", false, "Merge and cancel repeated turns before applying")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := notation.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if applyInverse {
		moves = rubix.Inverse(moves)
	}
	if applySimplify {
		moves = notation.Simplify(moves)
	}

	c := rubix.NewCube()
	c.Apply(moves...)
	logger.Debug().Int("moves", len(moves)).Str("sequence", notation.Format(moves)).Msg("applied sequence")

	out := cmd.OutOrStdout()
	if applyFace != "" {
		o, err := parseOrientation(applyFace)
		if err != nil {
			return err
		}
		fmt.Fprint(out, newRenderer().Face(c.View(o)))
		return nil
	}
	fmt.Fprint(out, newRenderer().Cube(c))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves: %d  Solved: %t\n", len(moves), c.IsSolved())
	return nil
}

// parseOrientation accepts a position name such as front or bottom.
func parseOrientation(s string) (rubix.FaceOrientation, error) {
	for _, o := range rubix.Orientations {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown face position %q (use top, front, left, back, right or bottom)", s)
}
