package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mwsasi/kandy-summer/internal/attendee"
)

// Controller orchestrates the organizer dashboard: the filtered list view,
// verify/delete actions over single records or selections, and aggregates.
type Controller struct {
	repo     *attendee.Repository
	capacity int
	logger   *slog.Logger
}

// NewController builds a dashboard controller.
func NewController(repo *attendee.Repository, capacity int, logger *slog.Logger) *Controller {
	return &Controller{repo: repo, capacity: capacity, logger: logger}
}

// List returns the filtered and sorted attendee view.
func (c *Controller) List(ctx context.Context, f attendee.Filters) ([]attendee.Attendee, error) {
	all, err := c.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return attendee.Apply(all, f), nil
}

// Get returns one full record, including the identity document, for review.
func (c *Controller) Get(ctx context.Context, id string) (attendee.Attendee, error) {
	all, err := c.repo.All(ctx)
	if err != nil {
		return attendee.Attendee{}, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return attendee.Attendee{}, attendee.ErrNotFound
}

// Stats aggregates the unfiltered collection.
func (c *Controller) Stats(ctx context.Context) (attendee.Stats, error) {
	all, err := c.repo.All(ctx)
	if err != nil {
		return attendee.Stats{}, err
	}
	return attendee.Summarize(all, c.capacity), nil
}

// SetVerified overwrites the verification flag on one record.
func (c *Controller) SetVerified(ctx context.Context, id string, verified bool) error {
	a, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	a.IsVerified = verified
	return c.repo.Update(ctx, a)
}

// BulkSetVerified overwrites the verification flag for each selected id. Ids
// no longer present are skipped, so re-running the same selection is safe.
func (c *Controller) BulkSetVerified(ctx context.Context, ids []string, verified bool) error {
	for _, id := range ids {
		if err := c.SetVerified(ctx, id, verified); err != nil {
			if errors.Is(err, attendee.ErrNotFound) {
				continue
			}
			return err
		}
	}
	return nil
}

// Delete removes the targeted records. Absent ids are a no-op. The handler
// layer gates this behind an explicit confirmation; there is no undo.
func (c *Controller) Delete(ctx context.Context, target DeleteTarget) error {
	for _, id := range target.IDs() {
		if err := c.repo.Delete(ctx, id); err != nil {
			return err
		}
	}
	c.logger.Info("registrations deleted", "count", len(target.IDs()), "bulk", target.Bulk())
	return nil
}
