package service

import (
	"context"

	"equipmentCentral/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SearchStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	total, err := s.repo.CountSearches(ctx, minutes)
	if err != nil {
		return nil, err
	}

	empty, err := s.repo.CountEmptySearches(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.SearchStats{
		Searches:      total,
		EmptySearches: empty,
		Minutes:       minutes,
	}, nil
}
