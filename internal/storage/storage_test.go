package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/rubix"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if v != 1 {
		t.Errorf("version = %d, want 1", v)
	}
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create("practice")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Notes == nil || *s.Notes != "practice" {
		t.Errorf("notes = %v, want practice", s.Notes)
	}
	if s.MoveCount != 0 || s.Front != rubix.Red || s.Top != rubix.White {
		t.Errorf("new session = %+v", s)
	}

	if _, err := repo.AppendMoves(id, rubix.SexyMove); err != nil {
		t.Fatalf("AppendMoves: %v", err)
	}
	c, err := repo.AppendMoves(id, []rubix.Move{rubix.MiddleColumnCW})
	if err != nil {
		t.Fatalf("AppendMoves: %v", err)
	}

	moves, err := repo.Moves(id)
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	want := append(append([]rubix.Move(nil), rubix.SexyMove...), rubix.MiddleColumnCW)
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}

	loaded, err := repo.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(c) {
		t.Error("loaded cube differs from the appended result")
		t.Log(loaded.String())
	}

	s, _ = repo.Get(id)
	if s.MoveCount != 5 || s.Front != rubix.Yellow || s.Top != rubix.Red {
		t.Errorf("session after moves: count=%d front=%s top=%s", s.MoveCount, s.Front, s.Top)
	}
}

func TestLoadDetectsTampering(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, _ := repo.Create("")
	if _, err := repo.AppendMoves(id, []rubix.Move{rubix.FrontCW}); err != nil {
		t.Fatalf("AppendMoves: %v", err)
	}
	if _, err := db.Exec("UPDATE session_moves SET direction = -1 WHERE session_id = ?", id); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Load(id); !errors.Is(err, rubix.ErrCorruptState) {
		t.Errorf("Load err = %v, want ErrCorruptState", err)
	}
}

func TestMovesRejectsOutOfRangeValues(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, _ := repo.Create("")
	_, _ = repo.AppendMoves(id, []rubix.Move{rubix.FrontCW})
	if _, err := db.Exec("UPDATE session_moves SET face = 42 WHERE session_id = ?", id); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Moves(id); !errors.Is(err, rubix.ErrInvalidMove) {
		t.Errorf("Moves err = %v, want ErrInvalidMove", err)
	}
}

func TestGetMissingSession(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	if _, err := repo.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	if err := repo.Delete("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Delete err = %v, want ErrSessionNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	first, _ := repo.Create("first")
	second, _ := repo.Create("second")

	sessions, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].SessionID != second {
		t.Errorf("newest session should be listed first")
	}

	if err := repo.Delete(first); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	sessions, _ = repo.List(10)
	if len(sessions) != 1 || sessions[0].SessionID != second {
		t.Errorf("after delete: %+v", sessions)
	}
}
