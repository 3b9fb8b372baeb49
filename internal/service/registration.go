package service

import (
	"context"
	"errors"
	"fmt"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/repository"
)

type registrationService struct {
	repo              repository.RegistrationRepository
	email             EmailSender
	welcomeTemplateID string
}

func NewRegistrationService(repo repository.RegistrationRepository, email EmailSender, welcomeTemplateID string) RegistrationService {
	return &registrationService{
		repo:              repo,
		email:             email,
		welcomeTemplateID: welcomeTemplateID,
	}
}

// Register validates and dedups a signup, persists it as pending, and makes
// one best-effort welcome send when an email address was supplied. A failed
// welcome send never rolls back or fails the registration.
func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	reg := &domain.Registration{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Type:         domain.RegistrationType(input.Type),
		Neighborhood: input.Neighborhood,
		Status:       domain.StatusPending,
	}
	reg.Normalize()

	if reg.Name == "" {
		return nil, domain.ValidationError("name", "is required")
	}
	if reg.Phone == "" {
		return nil, domain.ValidationError("phone", "is required")
	}
	if !reg.Type.Valid() {
		return nil, domain.ValidationError("type", "must be worker, employer or both")
	}

	// Fast-path dedup check. The unique index on phone is the authoritative
	// guard; this lookup only exists to answer with the existing record's
	// summary in the common case.
	existing, err := s.repo.FindByPhone(ctx, reg.Phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing registration: %w", err)
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Name: existing.Name, RegisteredAt: existing.RegisteredAt}
	}

	if err := s.repo.Insert(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			// Two concurrent signups for the same new phone both passed the
			// check above; the index rejected the loser. Answer it the same
			// way as the fast path.
			if existing, ferr := s.repo.FindByPhone(ctx, reg.Phone); ferr == nil {
				return nil, &domain.DuplicateError{Name: existing.Name, RegisteredAt: existing.RegisteredAt}
			}
			return nil, &domain.DuplicateError{}
		}
		return nil, err
	}
	logger.Info("new registration saved", "name", reg.Name, "type", reg.Type)

	result := &RegisterResult{Registration: reg}
	if reg.Email == "" {
		return result, nil
	}

	sendErr := s.email.Send(ctx, buildWelcomeEmail(s.welcomeTemplateID, reg))
	result.WelcomeEmailSent = sendErr == nil
	if sendErr != nil {
		logger.Error("welcome email failed", "email", reg.Email, "error", sendErr)
	} else {
		logger.Info("welcome email sent", "name", reg.Name)
	}

	// Persist the outcome regardless of success. If this write fails the
	// stored flag and the delivered email diverge; that is accepted and not
	// retried.
	updated, err := s.repo.UpdateByID(ctx, reg.ID.Hex(), map[string]any{"email_sent": result.WelcomeEmailSent})
	if err != nil {
		logger.Warn("failed to persist welcome email outcome", "id", reg.ID.Hex(), "error", err)
		return result, nil
	}
	result.Registration = updated
	return result, nil
}

// ListAll returns every registration, newest first.
func (s *registrationService) ListAll(ctx context.Context) ([]domain.Registration, error) {
	return s.repo.List(ctx, repository.Filter{}, repository.Sort{Field: "created_at", Descending: true}, 0)
}

// Delete removes a registration by id. Terminal and unconditional.
func (s *registrationService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
