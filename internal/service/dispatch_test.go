package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
	"jobi-backend/internal/service"
)

func pendingCohort() repository.Filter {
	return repository.Filter{HasEmail: true, Status: domain.StatusPending}
}

func makeCohort(n int) []domain.Registration {
	regs := make([]domain.Registration, n)
	for i := range regs {
		regs[i] = domain.Registration{
			ID:     primitive.NewObjectID(),
			Name:   "User",
			Phone:  fmt.Sprintf("7012345%d", i),
			Email:  fmt.Sprintf("user%d@example.com", i),
			Type:   domain.TypeWorker,
			Status: domain.StatusPending,
		}
	}
	return regs
}

func TestDispatcher_NotifyLaunch_PartialFailure(t *testing.T) {
	repo := new(MockRegistrationRepo)
	email := new(MockEmailSender)
	d := service.NewNotificationDispatcher(repo, email, 2)
	ctx := context.Background()

	regs := makeCohort(3)
	failing := regs[1].Email

	repo.On("List", ctx, pendingCohort(), mock.Anything, int64(0)).Return(regs, nil)
	email.On("Send", ctx, mock.MatchedBy(func(msg domain.OutboundEmail) bool {
		return msg.ToEmail == failing
	})).Return(errors.New("rate limited"))
	email.On("Send", ctx, mock.MatchedBy(func(msg domain.OutboundEmail) bool {
		return msg.ToEmail != failing
	})).Return(nil)
	repo.On("UpdateByID", ctx, regs[0].ID.Hex(), map[string]any{"status": domain.StatusNotified}).
		Return(&regs[0], nil)
	repo.On("UpdateByID", ctx, regs[2].ID.Hex(), map[string]any{"status": domain.StatusNotified}).
		Return(&regs[2], nil)

	report, err := d.NotifyLaunch(ctx, "JOBI est disponible !")
	assert.NoError(t, err)
	assert.Equal(t, 3, report.CohortSize)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, failing, report.Errors[0].Email)
	assert.NotEmpty(t, report.RunID)

	// Only the successful recipients transition to notified.
	repo.AssertNotCalled(t, "UpdateByID", ctx, regs[1].ID.Hex(), mock.Anything)
	repo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestDispatcher_NotifyLaunch_EmptyCohort(t *testing.T) {
	repo := new(MockRegistrationRepo)
	email := new(MockEmailSender)
	d := service.NewNotificationDispatcher(repo, email, 4)
	ctx := context.Background()

	repo.On("List", ctx, pendingCohort(), mock.Anything, int64(0)).
		Return([]domain.Registration{}, nil)

	report, err := d.NotifyLaunch(ctx, "message")
	assert.NoError(t, err)
	assert.Equal(t, 0, report.CohortSize)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Empty(t, report.Errors)

	email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyLaunch_StatusWriteRaceIsSoft(t *testing.T) {
	repo := new(MockRegistrationRepo)
	email := new(MockEmailSender)
	d := service.NewNotificationDispatcher(repo, email, 1)
	ctx := context.Background()

	regs := makeCohort(1)
	repo.On("List", ctx, pendingCohort(), mock.Anything, int64(0)).Return(regs, nil)
	email.On("Send", ctx, mock.Anything).Return(nil)
	// Registration deleted between selection and status write.
	repo.On("UpdateByID", ctx, regs[0].ID.Hex(), mock.Anything).Return(nil, domain.ErrNotFound)

	report, err := d.NotifyLaunch(ctx, "message")
	assert.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Empty(t, report.Errors)
}

func TestDispatcher_TeaserBroadcast_NoStatusTransition(t *testing.T) {
	repo := new(MockRegistrationRepo)
	email := new(MockEmailSender)
	d := service.NewNotificationDispatcher(repo, email, 4)
	ctx := context.Background()

	regs := makeCohort(2)
	regs[1].Status = domain.StatusNotified

	repo.On("List", ctx, repository.Filter{HasEmail: true}, mock.Anything, int64(0)).Return(regs, nil)
	email.On("Send", ctx, mock.Anything).Return(nil)

	report, err := d.SendTeaserBroadcast(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.CohortSize)
	assert.Equal(t, 2, report.SuccessCount)

	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_ListFailure(t *testing.T) {
	repo := new(MockRegistrationRepo)
	email := new(MockEmailSender)
	d := service.NewNotificationDispatcher(repo, email, 4)
	ctx := context.Background()

	repo.On("List", ctx, mock.Anything, mock.Anything, int64(0)).
		Return(nil, errors.New("cursor timeout"))

	report, err := d.SendTeaserBroadcast(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestLaunchMessageBuilder(t *testing.T) {
	reg := domain.Registration{
		Name:  "Awa",
		Phone: "70123456",
		Email: "awa@example.com",
		Type:  domain.TypeBoth,
	}

	msg := service.LaunchMessageBuilder("C'est parti !")(reg)
	assert.Equal(t, "awa@example.com", msg.ToEmail)
	assert.Contains(t, msg.HTMLBody, "C'est parti !")
	assert.Contains(t, msg.HTMLBody, "Awa")
	// Missing neighborhood falls back to the default city.
	assert.Contains(t, msg.HTMLBody, domain.DefaultNeighborhood)
}
