package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistrationType classifies what a registrant is looking for.
type RegistrationType string

const (
	TypeWorker   RegistrationType = "worker"
	TypeEmployer RegistrationType = "employer"
	TypeBoth     RegistrationType = "both"
)

// Valid reports whether t is one of the recognized types.
func (t RegistrationType) Valid() bool {
	switch t {
	case TypeWorker, TypeEmployer, TypeBoth:
		return true
	}
	return false
}

// Label returns the human-readable form used in outbound emails.
func (t RegistrationType) Label() string {
	switch t {
	case TypeWorker:
		return "job seeker"
	case TypeEmployer:
		return "employer"
	case TypeBoth:
		return "job seeker and employer"
	}
	return string(t)
}

// RegistrationStatus tracks a registration through the launch lifecycle.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusNotified RegistrationStatus = "notified"
	StatusActive   RegistrationStatus = "active"
)

// rank orders statuses along the pending -> notified -> active progression.
func (s RegistrationStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusNotified:
		return 1
	case StatusActive:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is legal. Statuses
// only move forward; staying put is allowed.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	if s.rank() < 0 || next.rank() < 0 {
		return false
	}
	return next.rank() >= s.rank()
}

// DefaultNeighborhood is substituted in outbound emails when a registrant
// did not provide one.
const DefaultNeighborhood = "Ouagadougou"

// Registration is one waitlist entry, keyed by phone number.
type Registration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Type         RegistrationType   `bson:"type" json:"type"`
	Neighborhood string             `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	RegisteredAt time.Time          `bson:"registered_at" json:"registeredAt"`
	EmailSent    bool               `bson:"email_sent" json:"emailSent"`
	Status       RegistrationStatus `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Normalize trims every text field and lowercases the email. It does not
// validate; see service-level validation.
func (r *Registration) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Neighborhood = strings.TrimSpace(r.Neighborhood)
}

// NeighborhoodOrDefault returns the registrant's neighborhood, falling back
// to DefaultNeighborhood when none was given.
func (r *Registration) NeighborhoodOrDefault() string {
	if r.Neighborhood == "" {
		return DefaultNeighborhood
	}
	return r.Neighborhood
}
