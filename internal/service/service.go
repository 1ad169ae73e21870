package service

import (
	"context"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/geo"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Store collaborators of the proximity search.
type OperatorStore interface {
	ListActive(ctx context.Context) ([]domain.Operator, error)
}

type EquipmentStore interface {
	ListActive(ctx context.Context) ([]domain.Equipment, error)
	ListActiveByOperatorIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Equipment, error)
}

// OperatorLocator finds active operators within radius meters of origin.
type OperatorLocator interface {
	Within(ctx context.Context, origin geo.Point, radiusMeters float64) ([]domain.OperatorHit, error)
}

type SearchEventPublisher interface {
	Publish(ctx context.Context, event domain.SearchEvent) error
}

// Admin persistence.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	List(ctx context.Context, page, limit int) ([]*domain.Operator, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	Update(ctx context.Context, op *domain.Operator) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete, cascades to equipment
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
}

// CacheInvalidator is notified after operator data changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type StatsRepository interface {
	CountSearches(ctx context.Context, minutes int) (int64, error)
	CountEmptySearches(ctx context.Context, minutes int) (int64, error)
}

// Use cases consumed by the HTTP layer.
type EquipmentSearchService interface {
	FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyResult, error)
	ListAll(ctx context.Context) ([]domain.EquipmentSummary, error)
}

type OperatorAdminService interface {
	Create(ctx context.Context, req domain.CreateOperatorRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Operator, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOperatorRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EquipmentAdminService interface {
	Create(ctx context.Context, req domain.CreateEquipmentRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEquipmentRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SearchStats, error)
}

type Service struct {
	SearchService         EquipmentSearchService
	OperatorAdminService  OperatorAdminService
	EquipmentAdminService EquipmentAdminService
	StatsService          StatsService
}

func NewService(
	searchService EquipmentSearchService,
	operatorAdminService OperatorAdminService,
	equipmentAdminService EquipmentAdminService,
	statsService StatsService,
) *Service {
	return &Service{
		SearchService:         searchService,
		OperatorAdminService:  operatorAdminService,
		EquipmentAdminService: equipmentAdminService,
		StatsService:          statsService,
	}
}
