package service

import (
	"context"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/geo"
)

type scanLocator struct {
	store OperatorStore
}

// NewScanLocator checks every active operator of store against the query circle.
func NewScanLocator(store OperatorStore) OperatorLocator {
	return &scanLocator{store: store}
}

func (l *scanLocator) Within(ctx context.Context, origin geo.Point, radiusMeters float64) ([]domain.OperatorHit, error) {
	operators, err := l.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FilterWithin(operators, origin, radiusMeters), nil
}

// FilterWithin keeps the operators whose great-circle distance to origin is <= radiusMeters.
func FilterWithin(operators []domain.Operator, origin geo.Point, radiusMeters float64) []domain.OperatorHit {
	hits := make([]domain.OperatorHit, 0)
	for _, op := range operators {
		if op.DeletedAt != nil {
			continue
		}
		if dist, ok := geo.WithinRadius(origin, op.Point(), radiusMeters); ok {
			hits = append(hits, domain.OperatorHit{Operator: op, DistanceMeters: dist})
		}
	}
	return hits
}
