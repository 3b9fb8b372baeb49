package service

import (
	"context"
	"time"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
)

const topNeighborhoods = 10

type statsService struct {
	repo repository.RegistrationRepository
	now  func() time.Time
}

func NewStatsService(repo repository.RegistrationRepository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

func (s *statsService) PublicStats(ctx context.Context) (*PublicStats, error) {
	total, err := s.repo.Count(ctx, repository.Filter{})
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.GroupCount(ctx, "type", repository.Filter{}, 0)
	if err != nil {
		return nil, err
	}
	byNeighborhood, err := s.repo.GroupCount(ctx, "neighborhood", repository.Filter{}, topNeighborhoods)
	if err != nil {
		return nil, err
	}

	stats := &PublicStats{
		Total:          total,
		ByType:         byType,
		ByNeighborhood: byNeighborhood,
	}

	latest, err := s.repo.List(ctx, repository.Filter{}, repository.Sort{Field: "registered_at", Descending: true}, 1)
	if err != nil {
		return nil, err
	}
	if len(latest) > 0 {
		stats.Latest = &LatestRegistration{Name: latest[0].Name, RegisteredAt: latest[0].RegisteredAt}
	}
	return stats, nil
}

func (s *statsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	total, err := s.repo.Count(ctx, repository.Filter{})
	if err != nil {
		return nil, err
	}
	workers, err := s.repo.Count(ctx, repository.Filter{Types: []domain.RegistrationType{domain.TypeWorker, domain.TypeBoth}})
	if err != nil {
		return nil, err
	}
	employers, err := s.repo.Count(ctx, repository.Filter{Types: []domain.RegistrationType{domain.TypeEmployer, domain.TypeBoth}})
	if err != nil {
		return nil, err
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.Count(ctx, repository.Filter{CreatedOnOrAfter: midnight})
	if err != nil {
		return nil, err
	}

	neighborhoods, err := s.repo.GroupCount(ctx, "neighborhood", repository.Filter{}, topNeighborhoods)
	if err != nil {
		return nil, err
	}

	daily, err := s.repo.CountByDay(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		Total:         total,
		Workers:       workers,
		Employers:     employers,
		Today:         today,
		Neighborhoods: neighborhoods,
		Daily:         daily,
	}, nil
}
