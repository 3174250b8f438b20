package dashboard

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mwsasi/kandy-summer/internal/attendee"
	"github.com/mwsasi/kandy-summer/internal/logging"
	"github.com/mwsasi/kandy-summer/internal/store"
)

func newTestController(t *testing.T) (*Controller, *attendee.Repository) {
	t.Helper()
	repo := attendee.NewRepository(store.NewMemory())
	return NewController(repo, 500, logging.Discard()), repo
}

func seed(t *testing.T, repo *attendee.Repository, list ...attendee.Attendee) {
	t.Helper()
	for _, a := range list {
		if err := repo.Append(context.Background(), a); err != nil {
			t.Fatalf("seed %s: %v", a.ID, err)
		}
	}
}

func TestVerifyFlowPartitionsFilters(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	seed(t, repo, attendee.Attendee{
		ID: "a1", FullName: "Jane Doe", Email: "jane@x.com", Phone: "071",
		TicketCount: 2, IDProof: "data:image/png;base64,x", RegisteredAt: time.Now().UTC(),
	})

	if err := ctrl.SetVerified(ctx, "a1", true); err != nil {
		t.Fatalf("set verified: %v", err)
	}

	verified, err := ctrl.List(ctx, attendee.Filters{Status: attendee.StatusVerified})
	if err != nil {
		t.Fatalf("list verified: %v", err)
	}
	if len(verified) != 1 || verified[0].ID != "a1" {
		t.Fatalf("expected exactly a1 verified, got %+v", verified)
	}

	pending, err := ctrl.List(ctx, attendee.Filters{Status: attendee.StatusPending})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty pending list, got %+v", pending)
	}
}

func TestBulkSetVerifiedIsIdempotentAndSkipsMissing(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	seed(t, repo,
		attendee.Attendee{ID: "a1", RegisteredAt: time.Now().UTC()},
		attendee.Attendee{ID: "a2", RegisteredAt: time.Now().UTC()},
	)

	ids := []string{"a1", "a2", "ghost"}
	if err := ctrl.BulkSetVerified(ctx, ids, true); err != nil {
		t.Fatalf("bulk verify: %v", err)
	}
	first, _ := repo.All(ctx)

	if err := ctrl.BulkSetVerified(ctx, ids, true); err != nil {
		t.Fatalf("second bulk verify: %v", err)
	}
	second, _ := repo.All(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("bulk verify not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
	for _, a := range second {
		if !a.IsVerified {
			t.Fatalf("record %s not verified", a.ID)
		}
	}
}

func TestDeleteTargets(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	seed(t, repo,
		attendee.Attendee{ID: "a1"},
		attendee.Attendee{ID: "a2"},
		attendee.Attendee{ID: "a3"},
	)

	if err := ctrl.Delete(ctx, SingleTarget("a2")); err != nil {
		t.Fatalf("single delete: %v", err)
	}
	if err := ctrl.Delete(ctx, BulkTarget([]string{"a1", "ghost"})); err != nil {
		t.Fatalf("bulk delete with absent id: %v", err)
	}

	remaining, _ := repo.All(ctx)
	if len(remaining) != 1 || remaining[0].ID != "a3" {
		t.Fatalf("expected only a3 left, got %+v", remaining)
	}
}

func TestGetUnknownID(t *testing.T) {
	ctrl, _ := newTestController(t)
	if _, err := ctrl.Get(context.Background(), "ghost"); !errors.Is(err, attendee.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsAggregateUnfilteredCollection(t *testing.T) {
	ctrl, repo := newTestController(t)
	ctx := context.Background()

	seed(t, repo,
		attendee.Attendee{ID: "a1", TicketCount: 4, IsVerified: true},
		attendee.Attendee{ID: "a2", TicketCount: 1},
	)

	stats, err := ctrl.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAttendees != 2 || stats.TotalTickets != 5 || stats.Verified != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.CapacityUsedPct != 1 {
		t.Fatalf("expected 1%% of 500, got %d", stats.CapacityUsedPct)
	}
}
