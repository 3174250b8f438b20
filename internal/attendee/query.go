package attendee

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Filter values accepted by the dashboard list view.
const (
	FilterAll      = "all"
	StatusVerified = "verified"
	StatusPending  = "pending"
	SortNewest     = "newest"
	SortOldest     = "oldest"
)

// Filters describes the active search, filter and sort criteria.
type Filters struct {
	// Search matches fullName and email case-insensitively and phone as a
	// plain substring. Empty matches everyone.
	Search string
	// Tickets is "all" or an exact ticket count ("1".."4").
	Tickets string
	// Status is "all", "verified" or "pending".
	Status string
	// Sort is "newest" (default) or "oldest".
	Sort string
}

// Apply filters and sorts the attendee list without mutating the input. All
// criteria AND together. The sort is stable so equal timestamps keep their
// stored order.
func Apply(attendees []Attendee, f Filters) []Attendee {
	search := strings.ToLower(f.Search)

	matched := make([]Attendee, 0, len(attendees))
	for _, a := range attendees {
		if !matchesSearch(a, search, f.Search) {
			continue
		}
		if f.Tickets != "" && f.Tickets != FilterAll && strconv.Itoa(a.TicketCount) != f.Tickets {
			continue
		}
		switch f.Status {
		case StatusVerified:
			if !a.IsVerified {
				continue
			}
		case StatusPending:
			if a.IsVerified {
				continue
			}
		}
		matched = append(matched, a)
	}

	oldest := f.Sort == SortOldest
	sort.SliceStable(matched, func(i, j int) bool {
		if oldest {
			return matched[i].RegisteredAt.Before(matched[j].RegisteredAt)
		}
		return matched[j].RegisteredAt.Before(matched[i].RegisteredAt)
	})

	return matched
}

func matchesSearch(a Attendee, lowered, raw string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.FullName), lowered) ||
		strings.Contains(strings.ToLower(a.Email), lowered) ||
		strings.Contains(a.Phone, raw)
}

// Stats aggregates the unfiltered collection for the dashboard header.
type Stats struct {
	TotalAttendees int `json:"totalAttendees"`
	TotalTickets   int `json:"totalTickets"`
	Verified       int `json:"verified"`
	// CapacityUsedPct is total tickets against the event capacity, capped at
	// 100.
	CapacityUsedPct int `json:"capacityUsedPct"`
}

// Summarize computes aggregate stats over the full collection.
func Summarize(attendees []Attendee, capacity int) Stats {
	s := Stats{TotalAttendees: len(attendees)}
	for _, a := range attendees {
		s.TotalTickets += a.TicketCount
		if a.IsVerified {
			s.Verified++
		}
	}
	if capacity > 0 {
		pct := int(math.Round(float64(s.TotalTickets) / float64(capacity) * 100))
		if pct > 100 {
			pct = 100
		}
		s.CapacityUsedPct = pct
	}
	return s
}
