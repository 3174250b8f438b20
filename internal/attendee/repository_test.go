package attendee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwsasi/kandy-summer/internal/store"
)

func TestRepositoryRoundTrip(t *testing.T) {
	db := store.NewMemory()
	repo := NewRepository(db)
	ctx := context.Background()

	a := Attendee{ID: "a1", FullName: "Jane Doe", Email: "jane@x.com", Phone: "071", TicketCount: 2, IDProof: testProof, RegisteredAt: time.Now().UTC()}
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("append: %v", err)
	}

	stored, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "a1" {
		t.Fatalf("unexpected collection %+v", stored)
	}

	a.IsVerified = true
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ = repo.All(ctx)
	if len(stored) != 1 {
		t.Fatalf("update duplicated record: %d", len(stored))
	}
	if !stored[0].IsVerified {
		t.Fatalf("update lost the verified flag")
	}
}

func TestRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	err := repo.Update(context.Background(), Attendee{ID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(store.NewMemory())
	ctx := context.Background()

	for _, id := range []string{"a1", "a2", "a3"} {
		if err := repo.Append(ctx, Attendee{ID: id}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	if err := repo.Delete(ctx, "a2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stored, _ := repo.All(ctx)
	if len(stored) != 2 || stored[0].ID != "a1" || stored[1].ID != "a3" {
		t.Fatalf("unexpected collection after delete: %+v", stored)
	}

	// deleting an absent id is a no-op
	if err := repo.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	stored, _ = repo.All(ctx)
	if len(stored) != 2 {
		t.Fatalf("no-op delete changed the collection")
	}
}

func TestRepositoryDecodeFailureReadsEmpty(t *testing.T) {
	db := store.NewMemory()
	ctx := context.Background()
	if err := db.Save(ctx, store.AttendeesKey, []byte(`{not json`)); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	repo := NewRepository(db)
	stored, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("corrupt payload must read as empty, got %+v", stored)
	}

	// and the collection is writable again afterwards
	if err := repo.Append(ctx, Attendee{ID: "a1"}); err != nil {
		t.Fatalf("append after corruption: %v", err)
	}
	stored, _ = repo.All(ctx)
	if len(stored) != 1 {
		t.Fatalf("expected recovery with 1 record, got %d", len(stored))
	}
}
