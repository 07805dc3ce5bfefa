package board

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SyncState tags how a local record relates to server state.
type SyncState int

const (
	// StateConfirmed: local record matches the last server response.
	StateConfirmed SyncState = iota
	// StatePendingCreate: record exists locally under a temporary id; the
	// create request has not resolved yet.
	StatePendingCreate
	// StatePendingUpdate: a status change was applied locally; the previous
	// value is retained for rollback until the update resolves.
	StatePendingUpdate
)

// entry is one local record plus its synchronization tag.
type entry struct {
	job        Job
	state      SyncState
	prevStatus string // pre-mutation status, valid while StatePendingUpdate
}

// Board is the local mirror of the user's applications. Mutations are
// applied optimistically: local state changes first, the request is issued,
// and the response confirms, replaces the temporary id, or rolls back.
//
// Each method serializes its optimistic write and its reconciliation under
// the board mutex but releases it across the network call, so mutations on
// independent records may overlap. Concurrent mutations to the same record
// are last-write-wins.
type Board struct {
	api API

	mu   sync.Mutex
	jobs []entry
}

// New returns an empty Board synchronizing through api.
func New(api API) *Board {
	return &Board{api: api}
}

// Load replaces local state with the server's records.
func (b *Board) Load(ctx context.Context) error {
	jobs, err := b.api.List(ctx)
	if err != nil {
		return err
	}

	entries := make([]entry, 0, len(jobs))
	for _, j := range jobs {
		entries = append(entries, entry{job: j, state: StateConfirmed})
	}
	b.mu.Lock()
	b.jobs = entries
	b.mu.Unlock()
	return nil
}

// Jobs returns a snapshot of the local records in board order.
func (b *Board) Jobs() []Job {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Job, 0, len(b.jobs))
	for _, e := range b.jobs {
		out = append(out, e.job)
	}
	return out
}

// State returns the sync tag for the record with the given id.
func (b *Board) State(id string) (SyncState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.find(id); i >= 0 {
		return b.jobs[i].state, true
	}
	return 0, false
}

// Add appends j under a temporary id and issues the create request. On
// success the temporary id is replaced in place with the server-assigned one
// (order preserved); on failure the record is removed entirely. The record
// visible while the request is outstanding carries the temporary id.
func (b *Board) Add(ctx context.Context, j Job) (Job, error) {
	tempID := "tmp-" + uuid.NewString()
	j.ID = tempID
	if j.Status == "" {
		j.Status = StatusWishlist
	}

	b.mu.Lock()
	b.jobs = append(b.jobs, entry{job: j, state: StatePendingCreate})
	b.mu.Unlock()

	created, err := b.api.Create(ctx, j)

	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.find(tempID)
	if err != nil {
		if i >= 0 {
			b.jobs = append(b.jobs[:i], b.jobs[i+1:]...)
		}
		return Job{}, fmt.Errorf("create failed: %w", err)
	}
	if i < 0 {
		// Deleted locally while the create was in flight; the server copy
		// will disappear on the next Load.
		return created, nil
	}
	b.jobs[i] = entry{job: created, state: StateConfirmed}
	return created, nil
}

// Delete removes the record locally and issues the delete request. The local
// removal is final regardless of the request outcome: a failure is logged
// and returned, but the record is not re-inserted.
func (b *Board) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	if i := b.find(id); i >= 0 {
		b.jobs = append(b.jobs[:i], b.jobs[i+1:]...)
	}
	b.mu.Unlock()

	if err := b.api.Delete(ctx, id); err != nil {
		log.Printf("[board] delete %s failed: %v", id, err)
		return err
	}
	return nil
}

// MoveStatus sets the record's status locally and issues a single-field
// update. On failure the pre-mutation status is restored — the value
// captured before the optimistic write, not the requested one.
func (b *Board) MoveStatus(ctx context.Context, id, newStatus string) error {
	if !validStatus(newStatus) {
		return fmt.Errorf("unknown status %q", newStatus)
	}

	b.mu.Lock()
	i := b.find(id)
	if i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("no job with id %q", id)
	}
	prev := b.jobs[i].job.Status
	b.jobs[i].job.Status = newStatus
	b.jobs[i].state = StatePendingUpdate
	b.jobs[i].prevStatus = prev
	b.mu.Unlock()

	updated, err := b.api.Update(ctx, id, StatusPatch(newStatus))

	b.mu.Lock()
	defer b.mu.Unlock()

	i = b.find(id)
	if i < 0 {
		// Deleted locally while the update was in flight.
		if err != nil {
			return fmt.Errorf("status update failed: %w", err)
		}
		return nil
	}
	if err != nil {
		b.jobs[i].job.Status = prev
		b.jobs[i].state = StateConfirmed
		b.jobs[i].prevStatus = ""
		return fmt.Errorf("status update failed: %w", err)
	}
	b.jobs[i] = entry{job: updated, state: StateConfirmed}
	return nil
}

// Search returns the records whose company, role or location contains query
// as a case-insensitive substring. A pure derived view: it recomputes from
// the current collection on every call and never mutates it.
func (b *Board) Search(query string) []Job {
	q := strings.ToLower(query)

	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Job, 0)
	for _, e := range b.jobs {
		j := e.job
		if strings.Contains(strings.ToLower(j.Company), q) ||
			strings.Contains(strings.ToLower(j.Role), q) ||
			strings.Contains(strings.ToLower(j.Location), q) {
			out = append(out, j)
		}
	}
	return out
}

// GroupByStatus partitions the current records over the five columns. Every
// column is present in the result; every record appears in exactly one.
func (b *Board) GroupByStatus() map[string][]Job {
	b.mu.Lock()
	defer b.mu.Unlock()

	groups := make(map[string][]Job, len(Statuses))
	for _, s := range Statuses {
		groups[s] = []Job{}
	}
	for _, e := range b.jobs {
		groups[e.job.Status] = append(groups[e.job.Status], e.job)
	}
	return groups
}

// CountByStatus returns the per-column card counts used by the analytics view.
func (b *Board) CountByStatus() map[string]int {
	counts := make(map[string]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, j := range b.Jobs() {
		counts[j.Status]++
	}
	return counts
}

// find returns the index of the record with the given id, or -1.
// Caller must hold b.mu.
func (b *Board) find(id string) int {
	for i := range b.jobs {
		if b.jobs[i].job.ID == id {
			return i
		}
	}
	return -1
}

func validStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
