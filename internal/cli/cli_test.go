package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/rubix"
	"github.com/SeamusWaldron/rubix/internal/config"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "rubix.db"),
		"--no-color",
	}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestApplyPrintsNet(t *testing.T) {
	out, err := run(t, t.TempDir(), "apply", "R", "U'")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	c := rubix.NewCube()
	c.Apply(rubix.RightColumnCW, rubix.TopRowCCW)
	want := c.String() + "\nMoves: 2  Solved: false\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestApplyRejectsBadNotation(t *testing.T) {
	if _, err := run(t, t.TempDir(), "apply", "Q"); err == nil {
		t.Error("expected an error for an unknown letter")
	}
}

func TestSessionCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "session", "new", "--notes", "cli test")
	if err != nil {
		t.Fatalf("session new: %v", err)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	id := strings.TrimPrefix(first, "Started session: ")
	if id == first || id == "" {
		t.Fatalf("could not find session id in %q", out)
	}

	if _, err := run(t, dir, "session", "move", id, "R U R' U'"); err != nil {
		t.Fatalf("session move: %v", err)
	}

	out, err = run(t, dir, "session", "show", id)
	if err != nil {
		t.Fatalf("session show: %v", err)
	}
	if !strings.Contains(out, "Moves:   4  Solved: false") || !strings.Contains(out, "R U R' U'") {
		t.Errorf("unexpected show output:\n%s", out)
	}

	out, err = run(t, dir, "session", "export", id)
	if err != nil {
		t.Fatalf("session export: %v", err)
	}
	if out != "R U R' U'\n" {
		t.Errorf("export = %q", out)
	}

	out, err = run(t, dir, "session", "list")
	if err != nil {
		t.Fatalf("session list: %v", err)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "cli test") {
		t.Errorf("list should include the session:\n%s", out)
	}

	if _, err := run(t, dir, "session", "delete", id); err != nil {
		t.Fatalf("session delete: %v", err)
	}
	if _, err := run(t, dir, "session", "show", id); err == nil {
		t.Error("show after delete should fail")
	}
}

func TestApplySimplify(t *testing.T) {
	defer func() { applySimplify = false }()

	out, err := run(t, t.TempDir(), "apply", "--simplify", "R R R R U U'")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.HasSuffix(out, "Moves: 0  Solved: true\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestApplySingleFace(t *testing.T) {
	defer func() { applyFace = "" }()

	out, err := run(t, t.TempDir(), "apply", "F", "--face", "top")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if want := "W W W \nW W W \nG G G \n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if _, err := run(t, t.TempDir(), "apply", "F", "--face", "middle"); err == nil {
		t.Error("expected an error for an unknown position")
	}
}

func TestConfigInitWritesFile(t *testing.T) {
	defer func() { configForce = false }()
	dir := t.TempDir()

	out, err := run(t, dir, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if !strings.Contains(out, path) {
		t.Errorf("output should name the file: %q", out)
	}

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.DBPath != filepath.Join(dir, "rubix.db") || saved.Color {
		t.Errorf("saved config = %+v, want flag values", saved)
	}

	if _, err := run(t, dir, "config", "init"); err == nil {
		t.Error("config init should refuse to overwrite without --force")
	}
	if _, err := run(t, dir, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}

	out, err = run(t, dir, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "db_path: "+filepath.Join(dir, "rubix.db")) {
		t.Errorf("config show output:\n%s", out)
	}
}
