package tracker

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps records in memory. Used by tests and local development;
// it mirrors MongoStore semantics including insertion-order listing.
type MemoryStore struct {
	mu    sync.Mutex
	order []string
	byID  map[string]Application
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Application)}
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := make([]Application, 0)
	for _, id := range s.order {
		if a := s.byID[id]; a.UserID == ownerID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) Insert(_ context.Context, a *Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	id := a.ID.Hex()
	s.byID[id] = *a
	s.order = append(s.order, id)
	return nil
}

func (s *MemoryStore) Apply(_ context.Context, id string, p Patch, now time.Time) (*Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if p.CompanyName != nil {
		a.CompanyName = *p.CompanyName
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.Status != nil {
		a.Status = Status(*p.Status)
	}
	if p.JobLink != nil {
		a.JobLink = *p.JobLink
	}
	if p.DateApplied != nil {
		a.DateApplied = *p.DateApplied
	}
	if p.Salary != nil {
		a.Salary = *p.Salary
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Priority != nil {
		a.Priority = Priority(*p.Priority)
	}
	a.UpdatedAt = now

	s.byID[id] = a
	return &a, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
