package attendee

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mwsasi/kandy-summer/internal/store"
)

// ErrNotFound reports a lookup for an id absent from the collection.
var ErrNotFound = errors.New("attendee not found")

// Repository persists the attendee collection as one JSON array in the store.
// Mutations are read-modify-write over the whole collection; a process-local
// mutex serializes callers, but a second process sharing the same backend can
// still lose updates. Single-writer deployment assumed.
type Repository struct {
	mu sync.Mutex
	db store.Store
}

// NewRepository builds an attendee repository on top of a collection store.
func NewRepository(db store.Store) *Repository {
	return &Repository{db: db}
}

// All returns every stored attendee in insertion order. A payload that fails
// to decode is treated as an empty collection; corruption must not take the
// registration flow down.
func (r *Repository) All(ctx context.Context) ([]Attendee, error) {
	payload, ok, err := r.db.Load(ctx, store.AttendeesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var attendees []Attendee
	if err := json.Unmarshal(payload, &attendees); err != nil {
		return nil, nil
	}
	return attendees, nil
}

// Append adds a new registration to the collection.
func (r *Repository) Append(ctx context.Context, a Attendee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attendees, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.write(ctx, append(attendees, a))
}

// Update replaces the record with a matching id.
func (r *Repository) Update(ctx context.Context, updated Attendee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attendees, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range attendees {
		if attendees[i].ID == updated.ID {
			attendees[i] = updated
			return r.write(ctx, attendees)
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, matching the dashboard contract.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attendees, err := r.All(ctx)
	if err != nil {
		return err
	}
	kept := attendees[:0]
	for _, a := range attendees {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return r.write(ctx, kept)
}

func (r *Repository) write(ctx context.Context, attendees []Attendee) error {
	if attendees == nil {
		attendees = []Attendee{}
	}
	payload, err := json.Marshal(attendees)
	if err != nil {
		return err
	}
	return r.db.Save(ctx, store.AttendeesKey, payload)
}
