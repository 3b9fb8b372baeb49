package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
	"jobi-backend/internal/service"
)

func TestStatsService_PublicStats(t *testing.T) {
	repo := new(MockRegistrationRepo)
	svc := service.NewStatsService(repo)
	ctx := context.Background()

	byType := []repository.GroupCount{{Key: "employer", Count: 2}, {Key: "worker", Count: 1}}
	byHood := []repository.GroupCount{{Key: "Gounghin", Count: 2}}
	latest := domain.Registration{Name: "Awa", RegisteredAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)}

	repo.On("Count", ctx, repository.Filter{}).Return(int64(3), nil)
	repo.On("GroupCount", ctx, "type", repository.Filter{}, int64(0)).Return(byType, nil)
	repo.On("GroupCount", ctx, "neighborhood", repository.Filter{}, int64(10)).Return(byHood, nil)
	repo.On("List", ctx, repository.Filter{}, repository.Sort{Field: "registered_at", Descending: true}, int64(1)).
		Return([]domain.Registration{latest}, nil)

	stats, err := svc.PublicStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, byType, stats.ByType)
	assert.Equal(t, byHood, stats.ByNeighborhood)
	assert.Equal(t, "Awa", stats.Latest.Name)
}

func TestStatsService_PublicStats_EmptyCollection(t *testing.T) {
	repo := new(MockRegistrationRepo)
	svc := service.NewStatsService(repo)
	ctx := context.Background()

	repo.On("Count", ctx, mock.Anything).Return(int64(0), nil)
	repo.On("GroupCount", ctx, mock.Anything, mock.Anything, mock.Anything).Return([]repository.GroupCount{}, nil)
	repo.On("List", ctx, mock.Anything, mock.Anything, int64(1)).Return([]domain.Registration{}, nil)

	stats, err := svc.PublicStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Nil(t, stats.Latest)
}

func TestStatsService_AdminStats(t *testing.T) {
	repo := new(MockRegistrationRepo)
	svc := service.NewStatsService(repo)
	ctx := context.Background()

	repo.On("Count", ctx, repository.Filter{}).Return(int64(5), nil)
	// Workers and employers both include registrations of type "both".
	repo.On("Count", ctx, repository.Filter{Types: []domain.RegistrationType{domain.TypeWorker, domain.TypeBoth}}).
		Return(int64(3), nil)
	repo.On("Count", ctx, repository.Filter{Types: []domain.RegistrationType{domain.TypeEmployer, domain.TypeBoth}}).
		Return(int64(4), nil)
	repo.On("Count", ctx, mock.MatchedBy(func(f repository.Filter) bool {
		// "today" is bounded at local midnight.
		return !f.CreatedOnOrAfter.IsZero() &&
			f.CreatedOnOrAfter.Hour() == 0 && f.CreatedOnOrAfter.Minute() == 0
	})).Return(int64(2), nil)
	repo.On("GroupCount", ctx, "neighborhood", repository.Filter{}, int64(10)).
		Return([]repository.GroupCount{{Key: "Tampouy", Count: 3}}, nil)
	repo.On("CountByDay", ctx, mock.AnythingOfType("time.Time")).
		Return([]repository.DailyCount{{Day: "2026-08-26", Count: 1}, {Day: "2026-08-27", Count: 4}}, nil)

	stats, err := svc.AdminStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.Workers)
	assert.Equal(t, int64(4), stats.Employers)
	assert.Equal(t, int64(2), stats.Today)
	assert.Len(t, stats.Daily, 2)
	assert.Equal(t, "2026-08-26", stats.Daily[0].Day)
}
