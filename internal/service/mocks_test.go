package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
)

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) FindByPhone(ctx context.Context, phone string) (*domain.Registration, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepo) Insert(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepo) UpdateByID(ctx context.Context, id string, fields map[string]any) (*domain.Registration, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRegistrationRepo) List(ctx context.Context, filter repository.Filter, sort repository.Sort, limit int64) ([]domain.Registration, error) {
	args := m.Called(ctx, filter, sort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *MockRegistrationRepo) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationRepo) GroupCount(ctx context.Context, groupKey string, filter repository.Filter, limit int64) ([]repository.GroupCount, error) {
	args := m.Called(ctx, groupKey, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GroupCount), args.Error(1)
}

func (m *MockRegistrationRepo) CountByDay(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailyCount), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg domain.OutboundEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
