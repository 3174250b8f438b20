package store

import "context"

// Collection keys carried over from the original deployment so existing
// exports stay readable.
const (
	AttendeesKey  = "kandy_fest_attendees"
	OrganizersKey = "kandy_fest_organizers"
	SessionKey    = "kandy_fest_session"
)

// Store persists one opaque payload per named collection. Save overwrites the
// whole collection, so interleaved read-modify-write sequences from separate
// processes are a lost-update hazard; a single writer is assumed.
type Store interface {
	// Load returns the collection payload. A collection that has never been
	// written reports ok=false with a nil error.
	Load(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Save replaces the collection payload.
	Save(ctx context.Context, key string, payload []byte) error

	// Clear removes the collection. Clearing an absent collection is a no-op.
	Clear(ctx context.Context, key string) error
}
