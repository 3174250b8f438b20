package organizer

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/mwsasi/kandy-summer/internal/store"
)

// Repository persists the organizer collection as one JSON array in the
// store. Accounts are append-only: nothing updates or deletes them.
type Repository struct {
	mu sync.Mutex
	db store.Store
}

// NewRepository builds an organizer repository on top of a collection store.
func NewRepository(db store.Store) *Repository {
	return &Repository{db: db}
}

// All returns every stored account. An undecodable payload reads as empty.
func (r *Repository) All(ctx context.Context) ([]Organizer, error) {
	payload, ok, err := r.db.Load(ctx, store.OrganizersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var organizers []Organizer
	if err := json.Unmarshal(payload, &organizers); err != nil {
		return nil, nil
	}
	return organizers, nil
}

// FindByEmail returns the account with a matching email, case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (Organizer, bool, error) {
	organizers, err := r.All(ctx)
	if err != nil {
		return Organizer{}, false, err
	}
	for _, o := range organizers {
		if strings.EqualFold(o.Email, email) {
			return o, true, nil
		}
	}
	return Organizer{}, false, nil
}

// Append adds a new account to the collection.
func (r *Repository) Append(ctx context.Context, o Organizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	organizers, err := r.All(ctx)
	if err != nil {
		return err
	}
	organizers = append(organizers, o)
	payload, err := json.Marshal(organizers)
	if err != nil {
		return err
	}
	return r.db.Save(ctx, store.OrganizersKey, payload)
}
