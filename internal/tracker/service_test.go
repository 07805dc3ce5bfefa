package tracker_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ADITYA-lab-star/HuntBoard/internal/events"
	"github.com/ADITYA-lab-star/HuntBoard/internal/tracker"
)

func newService() *tracker.Service {
	return tracker.NewService(tracker.NewMemoryStore(), events.NewPublisher(nil))
}

func mustCreate(t *testing.T, svc *tracker.Service, ownerID string, a tracker.Application) tracker.Application {
	t.Helper()
	created, err := svc.Create(context.Background(), ownerID, []tracker.Application{a})
	if err != nil {
		t.Fatalf("Create returned unexpected error: %v", err)
	}
	return created[0]
}

// ── Create ─────────────────────────────────────────────────────────────────

func TestCreate_StampsOwner(t *testing.T) {
	svc := newService()

	// Client-supplied owner must be discarded.
	created := mustCreate(t, svc, "alice", tracker.Application{
		UserID:      "mallory",
		CompanyName: "Acme Corp",
	})

	if created.UserID != "alice" {
		t.Errorf("created.UserID = %q, want %q", created.UserID, "alice")
	}
	if created.ID.IsZero() {
		t.Error("created.ID should be assigned by the store")
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	if created.Status != tracker.StatusWishlist {
		t.Errorf("default status = %s, want %s", created.Status, tracker.StatusWishlist)
	}
	if created.Priority != tracker.PriorityMedium {
		t.Errorf("default priority = %s, want %s", created.Priority, tracker.PriorityMedium)
	}
	if created.Salary != "N/A" {
		t.Errorf("default salary = %q, want %q", created.Salary, "N/A")
	}
	if created.Location != "Remote" {
		t.Errorf("default location = %q, want %q", created.Location, "Remote")
	}
	if created.DateApplied.IsZero() {
		t.Error("default dateApplied should be the creation time")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}
}

func TestCreate_InvalidStatus(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), "alice", []tracker.Application{
		{CompanyName: "Acme Corp", Status: "Daydreaming"},
	})

	var verr *tracker.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create with invalid status: got %v, want ValidationError", err)
	}
}

func TestCreate_NotesTooLong(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), "alice", []tracker.Application{
		{CompanyName: "Acme Corp", Notes: strings.Repeat("x", 501)},
	})

	var verr *tracker.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create with 501-char notes: got %v, want ValidationError", err)
	}
}

func TestCreate_BatchPreservesOrder(t *testing.T) {
	svc := newService()
	created, err := svc.Create(context.Background(), "alice", []tracker.Application{
		{CompanyName: "First"},
		{CompanyName: "Second"},
		{CompanyName: "Third"},
	})
	if err != nil {
		t.Fatalf("batch Create: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("batch Create returned %d records, want 3", len(created))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if created[i].CompanyName != want {
			t.Errorf("created[%d].CompanyName = %q, want %q", i, created[i].CompanyName, want)
		}
	}
}

// ── List ───────────────────────────────────────────────────────────────────

func TestList_OnlyOwnRecords(t *testing.T) {
	svc := newService()
	mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})
	mustCreate(t, svc, "bob", tracker.Application{CompanyName: "Globex"})

	apps, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("List returned %d records, want 1", len(apps))
	}
	if apps[0].CompanyName != "Acme Corp" {
		t.Errorf("listed company = %q, want %q", apps[0].CompanyName, "Acme Corp")
	}
}

func TestList_RoundTripFields(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{
		CompanyName: "Acme Corp",
		Role:        "Gopher",
		Status:      tracker.StatusApplied,
		JobLink:     "https://acme.example/jobs/1",
		Salary:      "50k-70k",
		Location:    "Onsite",
		Notes:       "Referred by Dana",
		Priority:    tracker.PriorityHigh,
	})

	apps, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("List returned %d records, want 1", len(apps))
	}
	if apps[0] != created {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", apps[0], created)
	}
}

// ── Update ─────────────────────────────────────────────────────────────────

func TestUpdate_NotFound(t *testing.T) {
	svc := newService()
	status := "Applied"
	_, err := svc.Update(context.Background(), "alice", "deadbeefdeadbeefdeadbeef", tracker.Patch{Status: &status})
	if !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("Update on missing id: got %v, want ErrNotFound", err)
	}
}

func TestUpdate_Forbidden(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	status := "Applied"
	_, err := svc.Update(context.Background(), "bob", created.ID.Hex(), tracker.Patch{Status: &status})
	if !errors.Is(err, tracker.ErrForbidden) {
		t.Errorf("Update by non-owner: got %v, want ErrForbidden", err)
	}

	// The record must be left unchanged.
	apps, _ := svc.List(context.Background(), "alice")
	if apps[0].Status != tracker.StatusWishlist {
		t.Errorf("record status after forbidden update = %s, want %s", apps[0].Status, tracker.StatusWishlist)
	}
}

func TestUpdate_StatusChange(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	status := "Interview"
	updated, err := svc.Update(context.Background(), "alice", created.ID.Hex(), tracker.Patch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != tracker.StatusInterview {
		t.Errorf("updated.Status = %s, want %s", updated.Status, tracker.StatusInterview)
	}
	if updated.CompanyName != "Acme Corp" {
		t.Errorf("partial update clobbered companyName: %q", updated.CompanyName)
	}
}

func TestUpdate_InvalidPatch(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	bad := "Daydreaming"
	_, err := svc.Update(context.Background(), "alice", created.ID.Hex(), tracker.Patch{Status: &bad})
	var verr *tracker.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update with invalid status: got %v, want ValidationError", err)
	}
}

func TestUpdate_CheckOrdering(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	// An invalid patch must not mask a missing record…
	bad := "Daydreaming"
	_, err := svc.Update(context.Background(), "alice", "deadbeefdeadbeefdeadbeef", tracker.Patch{Status: &bad})
	if !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("invalid patch on missing id: got %v, want ErrNotFound", err)
	}

	// …nor a foreign one.
	_, err = svc.Update(context.Background(), "bob", created.ID.Hex(), tracker.Patch{Status: &bad})
	if !errors.Is(err, tracker.ErrForbidden) {
		t.Errorf("invalid patch by non-owner: got %v, want ErrForbidden", err)
	}
}

// ── Delete ─────────────────────────────────────────────────────────────────

func TestDelete_ThenNotFound(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})
	id := created.ID.Hex()

	if err := svc.Delete(context.Background(), "alice", id); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "alice", id); !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
}

func TestDelete_Forbidden(t *testing.T) {
	svc := newService()
	created := mustCreate(t, svc, "alice", tracker.Application{CompanyName: "Acme Corp"})

	err := svc.Delete(context.Background(), "bob", created.ID.Hex())
	if !errors.Is(err, tracker.ErrForbidden) {
		t.Errorf("Delete by non-owner: got %v, want ErrForbidden", err)
	}

	apps, _ := svc.List(context.Background(), "alice")
	if len(apps) != 1 {
		t.Errorf("record count after forbidden delete = %d, want 1", len(apps))
	}
}
