package attendee

import (
	"testing"
	"time"
)

func fixtureAttendees() []Attendee {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return []Attendee{
		{ID: "a1", FullName: "Jane Doe", Email: "jane@x.com", Phone: "+94771234567", TicketCount: 2, RegisteredAt: base, IsVerified: true},
		{ID: "a2", FullName: "Nimal Perera", Email: "nimal@y.com", Phone: "+94770001111", TicketCount: 1, RegisteredAt: base.Add(time.Hour)},
		{ID: "a3", FullName: "Amara Silva", Email: "amara@z.com", Phone: "+94765554444", TicketCount: 4, RegisteredAt: base.Add(2 * time.Hour), IsVerified: true},
		{ID: "a4", FullName: "jane smith", Email: "js@q.com", Phone: "0112223333", TicketCount: 2, RegisteredAt: base.Add(time.Hour)},
	}
}

func ids(list []Attendee) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestApplySearchMatchesNameEmailOrPhone(t *testing.T) {
	all := fixtureAttendees()

	byName := Apply(all, Filters{Search: "JANE"})
	if len(byName) != 2 {
		t.Fatalf("expected 2 case-insensitive name matches, got %v", ids(byName))
	}

	byEmail := Apply(all, Filters{Search: "nimal@"})
	if len(byEmail) != 1 || byEmail[0].ID != "a2" {
		t.Fatalf("expected email match a2, got %v", ids(byEmail))
	}

	byPhone := Apply(all, Filters{Search: "0112"})
	if len(byPhone) != 1 || byPhone[0].ID != "a4" {
		t.Fatalf("expected phone match a4, got %v", ids(byPhone))
	}
}

func TestApplyFiltersAndTogether(t *testing.T) {
	all := fixtureAttendees()

	got := Apply(all, Filters{Search: "jane", Tickets: "2", Status: StatusVerified})
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("expected only a1, got %v", ids(got))
	}
}

func TestApplyStatusPartitionsCollection(t *testing.T) {
	all := fixtureAttendees()

	verified := Apply(all, Filters{Status: StatusVerified})
	pending := Apply(all, Filters{Status: StatusPending})

	if len(verified)+len(pending) != len(all) {
		t.Fatalf("partition lost records: %d verified + %d pending != %d", len(verified), len(pending), len(all))
	}
	seen := map[string]bool{}
	for _, a := range append(verified, pending...) {
		if seen[a.ID] {
			t.Fatalf("id %s appears in both partitions", a.ID)
		}
		seen[a.ID] = true
	}
	for _, a := range verified {
		if !a.IsVerified {
			t.Fatalf("pending record %s in verified partition", a.ID)
		}
	}
}

func TestApplySortOrders(t *testing.T) {
	all := fixtureAttendees()

	newest := Apply(all, Filters{Sort: SortNewest})
	if newest[0].ID != "a3" || newest[len(newest)-1].ID != "a1" {
		t.Fatalf("newest order wrong: %v", ids(newest))
	}

	oldest := Apply(all, Filters{Sort: SortOldest})
	if oldest[0].ID != "a1" || oldest[len(oldest)-1].ID != "a3" {
		t.Fatalf("oldest order wrong: %v", ids(oldest))
	}
}

func TestApplySortIsStableForEqualTimestamps(t *testing.T) {
	all := fixtureAttendees()

	// a2 and a4 share a timestamp; both orders must keep a2 before a4.
	oldest := Apply(all, Filters{Sort: SortOldest})
	if oldest[1].ID != "a2" || oldest[2].ID != "a4" {
		t.Fatalf("stable tie-break violated ascending: %v", ids(oldest))
	}

	newest := Apply(all, Filters{Sort: SortNewest})
	if newest[1].ID != "a2" || newest[2].ID != "a4" {
		t.Fatalf("stable tie-break violated descending: %v", ids(newest))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	all := fixtureAttendees()
	Apply(all, Filters{Sort: SortNewest})
	if all[0].ID != "a1" {
		t.Fatalf("input slice reordered")
	}
}

func TestSummarize(t *testing.T) {
	all := fixtureAttendees()

	stats := Summarize(all, 500)
	if stats.TotalAttendees != 4 {
		t.Fatalf("expected 4 attendees, got %d", stats.TotalAttendees)
	}
	if stats.TotalTickets != 9 {
		t.Fatalf("expected 9 tickets, got %d", stats.TotalTickets)
	}
	if stats.Verified != 2 {
		t.Fatalf("expected 2 verified, got %d", stats.Verified)
	}
	if stats.CapacityUsedPct != 2 {
		t.Fatalf("expected 2%% capacity, got %d", stats.CapacityUsedPct)
	}
}

func TestSummarizeCapsCapacityAtHundred(t *testing.T) {
	list := []Attendee{{TicketCount: 80}}
	stats := Summarize(list, 50)
	if stats.CapacityUsedPct != 100 {
		t.Fatalf("expected capped 100%%, got %d", stats.CapacityUsedPct)
	}
}
