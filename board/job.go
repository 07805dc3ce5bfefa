// Package board is the client-side companion of the HuntBoard API: an
// in-memory mirror of the user's applications that applies mutations
// optimistically, reconciles with the server response and rolls back on
// failure, plus the derived search and column views the kanban UI renders.
package board

import "time"

// Board columns, in display order. These mirror the server's status enum.
const (
	StatusWishlist  = "Wishlist"
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// Statuses lists every column in board order.
var Statuses = []string{
	StatusWishlist,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Job is one application card in client shape. Field names here follow the
// UI vocabulary; the translation to the server's wire names lives in wire.go.
type Job struct {
	ID          string
	Company     string
	Role        string
	Status      string
	Link        string
	Date        time.Time
	Salary      string
	Location    string
	Description string
	Priority    string
}

// Patch carries the fields of a partial update, in client vocabulary.
// Nil pointers mean "leave unchanged".
type Patch struct {
	Company     *string
	Role        *string
	Status      *string
	Link        *string
	Date        *time.Time
	Salary      *string
	Location    *string
	Description *string
	Priority    *string
}

// StatusPatch is the single-field patch a column move sends.
func StatusPatch(status string) Patch {
	return Patch{Status: &status}
}
