package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/repository"
)

type notificationDispatcher struct {
	repo     repository.RegistrationRepository
	email    EmailSender
	maxSends int
}

// NewNotificationDispatcher builds a dispatcher that fans out at most
// maxConcurrentSends provider calls at a time.
func NewNotificationDispatcher(repo repository.RegistrationRepository, email EmailSender, maxConcurrentSends int) NotificationDispatcher {
	if maxConcurrentSends <= 0 {
		maxConcurrentSends = 8
	}
	return &notificationDispatcher{
		repo:     repo,
		email:    email,
		maxSends: maxConcurrentSends,
	}
}

func (d *notificationDispatcher) NotifyLaunch(ctx context.Context, message string) (*DispatchReport, error) {
	cohort := repository.Filter{HasEmail: true, Status: domain.StatusPending}
	return d.DispatchBulk(ctx, cohort, LaunchMessageBuilder(message), true)
}

func (d *notificationDispatcher) SendTeaserBroadcast(ctx context.Context) (*DispatchReport, error) {
	cohort := repository.Filter{HasEmail: true}
	return d.DispatchBulk(ctx, cohort, TeaserMessageBuilder(), false)
}

// DispatchBulk selects the cohort, sends one personalized message per member,
// and reduces the per-recipient outcomes into one report. Recipients are
// isolated from each other: a provider failure for one is accumulated in the
// error list and never aborts the rest of the run.
func (d *notificationDispatcher) DispatchBulk(ctx context.Context, cohort repository.Filter, build MessageBuilder, markNotified bool) (*DispatchReport, error) {
	runID := uuid.NewString()
	log := logger.WithComponent("dispatcher").With("run_id", runID)

	regs, err := d.repo.List(ctx, cohort, repository.Sort{Field: "registered_at"}, 0)
	if err != nil {
		return nil, err
	}

	report := &DispatchReport{
		RunID:      runID,
		CohortSize: len(regs),
		Errors:     []SendFailure{},
	}
	log.Info("dispatch run started", "cohort_size", len(regs), "mark_notified", markNotified)

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(d.maxSends)

	for _, reg := range regs {
		reg := reg
		g.Go(func() error {
			msg := build(reg)
			if err := d.email.Send(ctx, msg); err != nil {
				log.Warn("send failed", "email", reg.Email, "error", err)
				mu.Lock()
				report.Errors = append(report.Errors, SendFailure{Email: reg.Email, Reason: err.Error()})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			report.SuccessCount++
			mu.Unlock()

			if markNotified {
				// Best effort. The email is already out; a failed status
				// write (including losing a race with a delete) must not
				// halt the run.
				if _, err := d.repo.UpdateByID(ctx, reg.ID.Hex(), map[string]any{"status": domain.StatusNotified}); err != nil {
					log.Warn("failed to mark registration notified", "id", reg.ID.Hex(), "error", err)
				}
			}
			return nil
		})
	}
	// Send goroutines never return an error; failures are data in the report.
	_ = g.Wait()

	log.Info("dispatch run finished", "success", report.SuccessCount, "failures", len(report.Errors))
	return report, nil
}
