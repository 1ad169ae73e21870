package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/geo"

	"github.com/google/uuid"
)

const DefaultRadiusMeters = 10000.0

type proximityService struct {
	locator       OperatorLocator
	equipment     EquipmentStore
	events        SearchEventPublisher
	logger        *slog.Logger
	defaultRadius float64
}

// NewProximityService wires the equipment search use cases. events may be nil.
func NewProximityService(
	locator OperatorLocator,
	equipment EquipmentStore,
	events SearchEventPublisher,
	logger *slog.Logger,
	defaultRadiusMeters float64,
) EquipmentSearchService {
	if defaultRadiusMeters < 0 {
		defaultRadiusMeters = DefaultRadiusMeters
	}
	return &proximityService{
		locator:       locator,
		equipment:     equipment,
		events:        events,
		logger:        logger,
		defaultRadius: defaultRadiusMeters,
	}
}

func (s *proximityService) FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyResult, error) {
	q := domain.ProximityQuery{
		Origin:       geo.Point{Lat: req.Lat, Lng: req.Lng},
		RadiusMeters: s.defaultRadius,
	}
	if req.RadiusMeters != nil {
		q.RadiusMeters = *req.RadiusMeters
	}

	if err := q.Validate(); err != nil {
		s.logger.Warn("invalid proximity query",
			slog.Float64("lat", q.Origin.Lat),
			slog.Float64("lng", q.Origin.Lng),
			slog.Float64("radius_m", q.RadiusMeters),
			slog.Any("error", err),
		)
		return nil, err
	}

	hits, err := s.locator.Within(ctx, q.Origin, q.RadiusMeters)
	if err != nil {
		s.logger.Error("locator.Within failed", slog.Any("error", err))
		return nil, err
	}
	s.logger.Debug("operators within radius",
		slog.Int("operators", len(hits)),
		slog.Float64("radius_m", q.RadiusMeters),
	)

	results := make([]domain.NearbyResult, 0)
	if len(hits) > 0 {
		byOperator := make(map[uuid.UUID]domain.OperatorHit, len(hits))
		ids := make([]uuid.UUID, 0, len(hits))
		for _, h := range hits {
			byOperator[h.Operator.ID] = h
			ids = append(ids, h.Operator.ID)
		}

		items, err := s.equipment.ListActiveByOperatorIDs(ctx, ids)
		if err != nil {
			s.logger.Error("equipment.ListActiveByOperatorIDs failed", slog.Any("error", err))
			return nil, err
		}

		results = projectNearby(items, byOperator)
	}

	s.publish(ctx, q, len(results))

	s.logger.Info("nearby search done",
		slog.Float64("lat", q.Origin.Lat),
		slog.Float64("lng", q.Origin.Lng),
		slog.Float64("radius_m", q.RadiusMeters),
		slog.Int("operators", len(hits)),
		slog.Int("results", len(results)),
	)
	return results, nil
}

func (s *proximityService) ListAll(ctx context.Context) ([]domain.EquipmentSummary, error) {
	items, err := s.equipment.ListActive(ctx)
	if err != nil {
		s.logger.Error("equipment.ListActive failed", slog.Any("error", err))
		return nil, err
	}

	out := make([]domain.EquipmentSummary, 0, len(items))
	for _, it := range items {
		out = append(out, it.Summary())
	}
	return out, nil
}

func (s *proximityService) publish(ctx context.Context, q domain.ProximityQuery, results int) {
	if s.events == nil {
		return
	}
	event := domain.SearchEvent{
		ID:           uuid.New(),
		Lat:          q.Origin.Lat,
		Lng:          q.Origin.Lng,
		RadiusMeters: q.RadiusMeters,
		ResultCount:  results,
		SearchedAt:   time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("publish search event failed", slog.Any("error", err))
	}
}

// projectNearby drops equipment whose owner is not among the hits and orders the rest
// by distance, operator id, name and id.
func projectNearby(items []domain.Equipment, byOperator map[uuid.UUID]domain.OperatorHit) []domain.NearbyResult {
	results := make([]domain.NearbyResult, 0, len(items))
	for _, it := range items {
		hit, ok := byOperator[it.OperatorID]
		if !ok || it.DeletedAt != nil {
			continue
		}
		results = append(results, domain.NearbyResult{
			EquipmentSummary: it.Summary(),
			DistanceMeters:   hit.DistanceMeters,
			Operator:         hit.Operator.Summary(),
		})
	}

	slices.SortFunc(results, func(a, b domain.NearbyResult) int {
		return cmp.Or(
			cmp.Compare(a.DistanceMeters, b.DistanceMeters),
			strings.Compare(a.Operator.ID.String(), b.Operator.ID.String()),
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return results
}
