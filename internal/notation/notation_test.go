package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SeamusWaldron/rubix"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input string
		want  []rubix.Move
	}{
		{"U", []rubix.Move{rubix.TopRowCW}},
		{"U'", []rubix.Move{rubix.TopRowCCW}},
		{"D", []rubix.Move{rubix.BottomRowCCW}},
		{"E'", []rubix.Move{rubix.MiddleRowCW}},
		{"R", []rubix.Move{rubix.RightColumnCW}},
		{"L", []rubix.Move{rubix.LeftColumnCCW}},
		{"M'", []rubix.Move{rubix.MiddleColumnCW}},
		{"F2", []rubix.Move{rubix.FrontCW, rubix.FrontCW}},
		{"B`", []rubix.Move{rubix.BackCCW}},
	}

	for _, tt := range tests {
		got, err := ParseToken(tt.input)
		if err != nil {
			t.Errorf("ParseToken(%q) error: %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseToken(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "X", "R3", "Rw", "r"} {
		if _, err := ParseToken(input); !errors.Is(err, rubix.ErrInvalidNotation) {
			t.Errorf("ParseToken(%q) err = %v, want ErrInvalidNotation", input, err)
		}
	}
	if _, err := Parse("R U Q"); !errors.Is(err, rubix.ErrInvalidNotation) {
		t.Errorf("Parse with bad token: err = %v", err)
	}
}

func TestParseSequence(t *testing.T) {
	got, err := Parse("R U R' U'")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(rubix.SexyMove, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"R U R' U'", "F2 B' M E' D L2", "U2 U"} {
		moves, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := Format(moves); got != s {
			t.Errorf("Format(Parse(%q)) = %q", s, got)
		}
	}
}

// Standard identities hold when letters are read through this package.
func TestStandardIdentities(t *testing.T) {
	tests := []struct {
		name, alg string
	}{
		{"sexy x6", "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'"},
		{"M is R L' x'", "M R' L"},
		{"T-perm twice", "R U R' U' R' F R2 U' R' U' R U R' F' R U R' U' R' F R2 U' R' U' R U R' F'"},
		{"D4", "D D D D"},
	}
	for _, tt := range tests {
		moves, err := Parse(tt.alg)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		c := rubix.NewCube()
		c.Apply(moves...)
		if !c.IsSolved() {
			t.Errorf("%s should leave every face solved", tt.name)
			t.Log(c.String())
		}
	}
}

func TestFormatRotation(t *testing.T) {
	tests := []struct {
		r    rubix.Rotation
		want string
	}{
		{rubix.Rotation{Axis: rubix.AxisX, Direction: rubix.Clockwise}, "x"},
		{rubix.Rotation{Axis: rubix.AxisY, Direction: rubix.CounterClockwise}, "y'"},
		{rubix.Rotation{Axis: rubix.AxisZ, Direction: rubix.Clockwise}, "z"},
	}
	for _, tt := range tests {
		if got := FormatRotation(tt.r); got != tt.want {
			t.Errorf("FormatRotation(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
