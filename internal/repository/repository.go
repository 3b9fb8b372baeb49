package repository

import (
	"context"
	"time"

	"jobi-backend/internal/domain"
)

// Filter selects registrations by domain-level predicates. Zero value
// matches everything; the storage adapter owns the translation to its own
// query language.
type Filter struct {
	Status           domain.RegistrationStatus // empty = any
	Types            []domain.RegistrationType // empty = any
	HasEmail         bool                      // require a non-empty email
	CreatedOnOrAfter time.Time                 // zero = no lower bound
}

// Sort names a field and direction for List.
type Sort struct {
	Field      string // bson field name, e.g. "created_at"
	Descending bool
}

// GroupCount is one (group key, count) pair from an aggregation.
type GroupCount struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}

// DailyCount is one calendar day's registration count.
type DailyCount struct {
	Day   string `bson:"_id" json:"day"` // YYYY-MM-DD
	Count int64  `bson:"count" json:"count"`
}

// RegistrationRepository is the narrow contract the engine consumes from the
// document store. Insert returns domain.ErrDuplicatePhone when the unique
// phone index is violated; UpdateByID and DeleteByID return domain.ErrNotFound
// when the id is absent.
type RegistrationRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Registration, error)
	Insert(ctx context.Context, reg *domain.Registration) error
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*domain.Registration, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter, sort Sort, limit int64) ([]domain.Registration, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	GroupCount(ctx context.Context, groupKey string, filter Filter, limit int64) ([]GroupCount, error)
	CountByDay(ctx context.Context, since time.Time) ([]DailyCount, error)
}
