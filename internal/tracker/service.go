package tracker

import (
	"context"
	"time"

	"github.com/ADITYA-lab-star/HuntBoard/internal/events"
)

// ─── Service ─────────────────────────────────────────────────────────────────

// Service encapsulates the ownership-scoped CRUD rules for applications.
// It has no dependency on net/http — it can be used by any transport layer.
type Service struct {
	store Store
	pub   *events.Publisher
}

// NewService returns a configured Service. pub may be nil (events disabled).
func NewService(store Store, pub *events.Publisher) *Service {
	return &Service{store: store, pub: pub}
}

// ─── Business logic ───────────────────────────────────────────────────────────

// List returns every application owned by ownerID, in insertion order.
func (s *Service) List(ctx context.Context, ownerID string) ([]Application, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Create validates and persists each payload record for ownerID, in order.
// Owner, id and timestamps are stamped server-side; any client-supplied
// values for them are ignored. Returns the created records with their
// server-assigned ids.
func (s *Service) Create(ctx context.Context, ownerID string, payloads []Application) ([]Application, error) {
	now := time.Now().UTC()

	apps := make([]Application, 0, len(payloads))
	for i := range payloads {
		a := payloads[i]
		a.applyDefaults(ownerID, now)
		if err := a.validate(); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	for i := range apps {
		if err := s.store.Insert(ctx, &apps[i]); err != nil {
			return nil, err
		}
		s.pub.Publish(ctx, events.CardCreated, map[string]string{
			"applicationId": apps[i].ID.Hex(),
			"userId":        ownerID,
			"status":        string(apps[i].Status),
		})
	}
	return apps, nil
}

// Update applies a partial update to the application with the given id.
// Checks run in a fixed order: existence (ErrNotFound), then ownership
// (ErrForbidden), then patch validation — so an invalid payload on a missing
// or foreign record still reports the missing/foreign condition.
func (s *Service) Update(ctx context.Context, ownerID, id string, p Patch) (*Application, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != ownerID {
		return nil, ErrForbidden
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.isEmpty() {
		return current, nil
	}

	updated, err := s.store.Apply(ctx, id, p, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if p.Status != nil && Status(*p.Status) != current.Status {
		s.pub.Publish(ctx, events.CardMoved, map[string]string{
			"applicationId": id,
			"userId":        ownerID,
			"from":          string(current.Status),
			"to":            *p.Status,
		})
	}
	return updated, nil
}

// Delete removes the application with the given id, with the same existence
// and ownership checks as Update.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != ownerID {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.pub.Publish(ctx, events.CardDeleted, map[string]string{
		"applicationId": id,
		"userId":        ownerID,
	})
	return nil
}
