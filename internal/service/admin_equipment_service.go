package service

import (
	"context"

	"equipmentCentral/internal/domain"

	"github.com/google/uuid"
)

type EquipmentAdmin struct {
	repo EquipmentRepository
}

func NewEquipmentAdminService(repo EquipmentRepository) *EquipmentAdmin {
	return &EquipmentAdmin{repo: repo}
}

func (s *EquipmentAdmin) Create(ctx context.Context, req domain.CreateEquipmentRequest) (uuid.UUID, error) {
	eq := &domain.Equipment{
		ID:                 uuid.New(),
		OperatorID:         req.OperatorID,
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Description:        req.Description,
		DailyRate:          req.DailyRate,
		WeeklyRate:         req.WeeklyRate,
		MonthlyRate:        req.MonthlyRate,
		AvailabilityStatus: true,
	}
	if req.AvailabilityStatus != nil {
		eq.AvailabilityStatus = *req.AvailabilityStatus
	}

	if err := s.repo.Create(ctx, eq); err != nil {
		return uuid.Nil, err
	}
	return eq.ID, nil
}

func (s *EquipmentAdmin) Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	return s.repo.Get(ctx, id)
}

func (s *EquipmentAdmin) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEquipmentRequest) error {
	eq, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.CategoryID != nil {
		eq.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Description != nil {
		eq.Description = *req.Description
	}
	eq.DailyRate = req.DailyRate.Apply(eq.DailyRate)
	eq.WeeklyRate = req.WeeklyRate.Apply(eq.WeeklyRate)
	eq.MonthlyRate = req.MonthlyRate.Apply(eq.MonthlyRate)
	if req.AvailabilityStatus != nil {
		eq.AvailabilityStatus = *req.AvailabilityStatus
	}
	return s.repo.Update(ctx, eq)
}

func (s *EquipmentAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
