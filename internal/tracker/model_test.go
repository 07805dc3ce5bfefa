package tracker_test

import (
	"testing"

	"github.com/ADITYA-lab-star/HuntBoard/internal/tracker"
)

// ── ParseStatus ────────────────────────────────────────────────────────────

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"Wishlist", "Applied", "Interview", "Offer", "Rejected"}
	for _, s := range valid {
		got, err := tracker.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	for _, s := range []string{"UNKNOWN", "wishlist", "applied", ""} {
		if _, err := tracker.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

// ── ParsePriority ──────────────────────────────────────────────────────────

func TestParsePriority_ValidValues(t *testing.T) {
	valid := []string{"Low", "Medium", "High"}
	for _, s := range valid {
		got, err := tracker.ParsePriority(s)
		if err != nil {
			t.Errorf("ParsePriority(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParsePriority(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParsePriority_InvalidValue(t *testing.T) {
	for _, s := range []string{"Urgent", "low", ""} {
		if _, err := tracker.ParsePriority(s); err == nil {
			t.Errorf("ParsePriority(%q) expected error, got nil", s)
		}
	}
}

// ── AllStatuses ────────────────────────────────────────────────────────────

func TestAllStatuses_BoardOrder(t *testing.T) {
	want := []tracker.Status{
		tracker.StatusWishlist,
		tracker.StatusApplied,
		tracker.StatusInterview,
		tracker.StatusOffer,
		tracker.StatusRejected,
	}
	if len(tracker.AllStatuses) != len(want) {
		t.Fatalf("AllStatuses has %d entries, want %d", len(tracker.AllStatuses), len(want))
	}
	for i, s := range want {
		if tracker.AllStatuses[i] != s {
			t.Errorf("AllStatuses[%d] = %s, want %s", i, tracker.AllStatuses[i], s)
		}
	}
}
