package service

import (
	"context"
	"time"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
)

// EmailSender is the delivery port: send one message, success or failure.
// No guarantee beyond "the call returned success" is made; there is no
// queued retry behind it.
type EmailSender interface {
	Send(ctx context.Context, msg domain.OutboundEmail) error
}

// RegisterInput carries the raw signup fields before normalization.
type RegisterInput struct {
	Name         string
	Phone        string
	Email        string
	Type         string
	Neighborhood string
}

// RegisterResult pairs the stored record with the welcome-send outcome.
// Registration success and notification success are independent observables.
type RegisterResult struct {
	Registration     *domain.Registration
	WelcomeEmailSent bool
}

type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

// MessageBuilder produces one personalized message for a cohort member.
type MessageBuilder func(reg domain.Registration) domain.OutboundEmail

// SendFailure is one recipient's delivery failure inside a dispatch run.
type SendFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// DispatchReport is the unit of observability for one dispatch run. The
// error list, not a retry queue, is what an operator follows up on.
type DispatchReport struct {
	RunID        string        `json:"runId"`
	CohortSize   int           `json:"cohortSize"`
	SuccessCount int           `json:"successCount"`
	Errors       []SendFailure `json:"errors"`
}

type NotificationDispatcher interface {
	// NotifyLaunch sends the launch announcement to every pending
	// registration with an email and transitions successes to notified.
	NotifyLaunch(ctx context.Context, message string) (*DispatchReport, error)
	// SendTeaserBroadcast sends the pre-launch teaser to every registration
	// with an email, regardless of status. No status transition.
	SendTeaserBroadcast(ctx context.Context) (*DispatchReport, error)
	// DispatchBulk runs one dispatch over an arbitrary cohort.
	DispatchBulk(ctx context.Context, cohort repository.Filter, build MessageBuilder, markNotified bool) (*DispatchReport, error)
}

// LatestRegistration is the newest signup summary shown on the public stats.
type LatestRegistration struct {
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// PublicStats is the aggregate served on the public dashboard.
type PublicStats struct {
	Total          int64                   `json:"total"`
	ByType         []repository.GroupCount `json:"byType"`
	ByNeighborhood []repository.GroupCount `json:"byNeighborhood"`
	Latest         *LatestRegistration     `json:"latestRegistration,omitempty"`
}

// AdminStats is the detailed aggregate served on the admin dashboard.
type AdminStats struct {
	Total         int64                   `json:"total"`
	Workers       int64                   `json:"workers"`
	Employers     int64                   `json:"employers"`
	Today         int64                   `json:"today"`
	Neighborhoods []repository.GroupCount `json:"neighborhoods"`
	Daily         []repository.DailyCount `json:"daily"`
}

type StatsService interface {
	PublicStats(ctx context.Context) (*PublicStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}
