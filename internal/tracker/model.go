// Package tracker implements the job-application board: the record model,
// the persistence layer and the ownership-scoped CRUD service behind
// /api/applications.
//
// Board columns:
//
//	Wishlist │ Applied │ Interview │ Offer │ Rejected
//
// Cards move freely between columns (drag-and-drop), so unlike a strict
// pipeline there is no transition graph — a status only has to be a member
// of the enum.
package tracker

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status is the board column a card sits in.
type Status string

const (
	StatusWishlist  Status = "Wishlist"
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

// AllStatuses lists every column in board order.
var AllStatuses = []Status{
	StatusWishlist,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusWishlist, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Priority marks how much the user cares about an application.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts a raw string to a Priority, returning an error for
// unknown values.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// maxNotesLen caps the free-text notes field.
const maxNotesLen = 500

// Application is one tracked job application. Field names in JSON and BSON
// match the wire contract consumed by the board client.
type Application struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string        `bson:"userId" json:"userId"`
	CompanyName string        `bson:"companyName,omitempty" json:"companyName"`
	Role        string        `bson:"role,omitempty" json:"role"`
	Status      Status        `bson:"status" json:"status"`
	JobLink     string        `bson:"jobLink,omitempty" json:"jobLink"`
	DateApplied time.Time     `bson:"dateApplied" json:"dateApplied"`
	Salary      string        `bson:"salary" json:"salary"`
	Location    string        `bson:"location" json:"location"`
	Notes       string        `bson:"notes,omitempty" json:"notes"`
	Priority    Priority      `bson:"priority" json:"priority"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// applyDefaults fills the fields the schema defaults when a create payload
// leaves them empty. Owner and timestamps are always stamped server-side;
// any client-supplied values for them are discarded.
func (a *Application) applyDefaults(ownerID string, now time.Time) {
	a.ID = bson.ObjectID{}
	a.UserID = ownerID
	if a.Status == "" {
		a.Status = StatusWishlist
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	if a.Salary == "" {
		a.Salary = "N/A"
	}
	if a.Location == "" {
		a.Location = "Remote"
	}
	if a.DateApplied.IsZero() {
		a.DateApplied = now
	}
	a.CreatedAt = now
	a.UpdatedAt = now
}

// validate checks the enum and length constraints on a fully-populated record.
func (a *Application) validate() error {
	if _, err := ParseStatus(string(a.Status)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if _, err := ParsePriority(string(a.Priority)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if len(a.Notes) > maxNotesLen {
		return &ValidationError{Msg: fmt.Sprintf("notes cannot be more than %d characters", maxNotesLen)}
	}
	return nil
}

// Patch carries the fields of a partial update. Nil pointers mean "leave
// unchanged". Owner, id and timestamps are not patchable.
type Patch struct {
	CompanyName *string    `json:"companyName"`
	Role        *string    `json:"role"`
	Status      *string    `json:"status"`
	JobLink     *string    `json:"jobLink"`
	DateApplied *time.Time `json:"dateApplied"`
	Salary      *string    `json:"salary"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	Priority    *string    `json:"priority"`
}

// validate re-checks the record invariants on the fields the patch touches.
func (p *Patch) validate() error {
	if p.Status != nil {
		if _, err := ParseStatus(*p.Status); err != nil {
			return &ValidationError{Msg: err.Error()}
		}
	}
	if p.Priority != nil {
		if _, err := ParsePriority(*p.Priority); err != nil {
			return &ValidationError{Msg: err.Error()}
		}
	}
	if p.Notes != nil && len(*p.Notes) > maxNotesLen {
		return &ValidationError{Msg: fmt.Sprintf("notes cannot be more than %d characters", maxNotesLen)}
	}
	return nil
}

// isEmpty reports whether the patch touches nothing.
func (p *Patch) isEmpty() bool {
	return p.CompanyName == nil && p.Role == nil && p.Status == nil &&
		p.JobLink == nil && p.DateApplied == nil && p.Salary == nil &&
		p.Location == nil && p.Notes == nil && p.Priority == nil
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when no application exists with the given id.
var ErrNotFound = fmt.Errorf("application not found")

// ErrForbidden is returned when the application belongs to a different user.
var ErrForbidden = fmt.Errorf("not authorized for this application")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
