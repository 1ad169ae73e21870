package service

import (
	"context"
	"log/slog"

	"equipmentCentral/internal/domain"

	"github.com/google/uuid"
)

type OperatorAdmin struct {
	repo         OperatorRepository
	invalidators []CacheInvalidator
	logger       *slog.Logger
}

func NewOperatorAdminService(repo OperatorRepository, logger *slog.Logger, invalidators ...CacheInvalidator) *OperatorAdmin {
	return &OperatorAdmin{repo: repo, logger: logger, invalidators: invalidators}
}

func (s *OperatorAdmin) Create(ctx context.Context, req domain.CreateOperatorRequest) (uuid.UUID, error) {
	op := &domain.Operator{
		ID:            uuid.New(),
		BusinessName:  req.BusinessName,
		ABN:           req.ABN,
		AddressLine:   req.AddressLine,
		Suburb:        req.Suburb,
		State:         req.State,
		Postcode:      req.Postcode,
		ServiceRadius: req.ServiceRadius,
	}
	if req.Lat != nil {
		op.Lat = *req.Lat
	}
	if req.Lng != nil {
		op.Lng = *req.Lng
	}

	if err := s.repo.Create(ctx, op); err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return op.ID, nil
}

func (s *OperatorAdmin) List(ctx context.Context, page, limit int) ([]*domain.Operator, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *OperatorAdmin) Get(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	return s.repo.Get(ctx, id)
}

func (s *OperatorAdmin) Update(ctx context.Context, id uuid.UUID, req domain.UpdateOperatorRequest) error {
	op, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.BusinessName != nil {
		op.BusinessName = *req.BusinessName
	}
	if req.ABN != nil {
		op.ABN = *req.ABN
	}
	if req.AddressLine != nil {
		op.AddressLine = *req.AddressLine
	}
	if req.Suburb != nil {
		op.Suburb = *req.Suburb
	}
	if req.State != nil {
		op.State = *req.State
	}
	if req.Postcode != nil {
		op.Postcode = *req.Postcode
	}
	if req.Lat != nil {
		op.Lat = *req.Lat
	}
	if req.Lng != nil {
		op.Lng = *req.Lng
	}
	if req.ServiceRadius != nil {
		op.ServiceRadius = *req.ServiceRadius
	}

	if err := s.repo.Update(ctx, op); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *OperatorAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate never fails the mutation; stale snapshots expire on their own.
func (s *OperatorAdmin) invalidate(ctx context.Context) {
	for _, inv := range s.invalidators {
		if err := inv.Invalidate(ctx); err != nil {
			s.logger.Warn("operator snapshot invalidation failed", slog.Any("error", err))
		}
	}
}
