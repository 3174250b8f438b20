package session

import (
	"context"
	"testing"

	"github.com/mwsasi/kandy-summer/internal/store"
)

func TestOpenCurrentClose(t *testing.T) {
	db := store.NewMemory()
	m := NewManager(db)
	ctx := context.Background()

	if _, ok := m.Current(); ok {
		t.Fatalf("expected no session before open")
	}

	if err := m.Open(ctx, Session{Email: "o@x.com", Name: "Jane"}); err != nil {
		t.Fatalf("open: %v", err)
	}

	sess, ok := m.Current()
	if !ok || sess.Email != "o@x.com" {
		t.Fatalf("unexpected current session %+v ok=%v", sess, ok)
	}
	if sess.LoggedInAt.IsZero() {
		t.Fatalf("expected login timestamp")
	}

	if err := m.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("expected session gone after close")
	}
	if _, ok, _ := db.Load(ctx, store.SessionKey); ok {
		t.Fatalf("expected persisted session cleared")
	}
}

func TestRestoreSurvivesRestart(t *testing.T) {
	db := store.NewMemory()
	ctx := context.Background()

	first := NewManager(db)
	if err := first.Open(ctx, Session{Email: "o@x.com", Name: "Jane"}); err != nil {
		t.Fatalf("open: %v", err)
	}

	// a fresh manager over the same store stands in for a process restart
	second := NewManager(db)
	sess, ok, err := second.Restore(ctx)
	if err != nil || !ok {
		t.Fatalf("restore: ok=%v err=%v", ok, err)
	}
	if sess.Email != "o@x.com" || sess.Name != "Jane" {
		t.Fatalf("restored wrong session %+v", sess)
	}
	if _, ok := second.Current(); !ok {
		t.Fatalf("restore must set the current session")
	}
}

func TestRestoreCorruptRecordReadsAsAbsent(t *testing.T) {
	db := store.NewMemory()
	ctx := context.Background()
	if err := db.Save(ctx, store.SessionKey, []byte("{broken")); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	m := NewManager(db)
	if _, ok, err := m.Restore(ctx); err != nil || ok {
		t.Fatalf("corrupt session must read as absent, ok=%v err=%v", ok, err)
	}
}
