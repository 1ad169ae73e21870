// Package geoindex keeps active operators in an in-memory R-tree so proximity
// lookups touch only the operators near the query circle.
package geoindex

import (
	"context"
	"log/slog"
	"sync"

	"equipmentCentral/internal/domain"
	"equipmentCentral/internal/service"
	"equipmentCentral/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50
	tolerance   = 1e-9
)

type operatorEntry struct {
	op   domain.Operator
	rect *rtreego.Rect
}

func (oe *operatorEntry) Bounds() *rtreego.Rect {
	return oe.rect
}

// Index answers Within from an R-tree snapshot. Until the first Rebuild it
// delegates to fallback.
type Index struct {
	mu       sync.RWMutex
	tree     *rtreego.Rtree
	size     int
	loaded   bool
	fallback service.OperatorLocator
	logger   *slog.Logger
}

func New(fallback service.OperatorLocator, logger *slog.Logger) *Index {
	return &Index{
		tree:     rtreego.NewTree(dimensions, minChildren, maxChildren),
		fallback: fallback,
		logger:   logger,
	}
}

// Rebuild replaces the snapshot with ops. Soft-deleted and out-of-range
// operators are skipped.
func (i *Index) Rebuild(ops []domain.Operator) {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	n := 0
	for _, op := range ops {
		if op.DeletedAt != nil || !op.Point().Valid() {
			continue
		}
		p := rtreego.Point{op.Lat, op.Lng}
		tree.Insert(&operatorEntry{op: op, rect: p.ToRect(tolerance)})
		n++
	}

	i.mu.Lock()
	i.tree = tree
	i.size = n
	i.loaded = true
	i.mu.Unlock()

	i.logger.Debug("geo index rebuilt", slog.Int("operators", n))
}

// Reset drops the snapshot. Within delegates to fallback until the next Rebuild.
func (i *Index) Reset() {
	i.mu.Lock()
	i.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	i.size = 0
	i.loaded = false
	i.mu.Unlock()
}

func (i *Index) Size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.size
}

func (i *Index) Loaded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loaded
}

func (i *Index) Within(ctx context.Context, origin geo.Point, radiusMeters float64) ([]domain.OperatorHit, error) {
	i.mu.RLock()
	tree, loaded := i.tree, i.loaded
	i.mu.RUnlock()

	if !loaded {
		if i.fallback == nil {
			return make([]domain.OperatorHit, 0), nil
		}
		return i.fallback.Within(ctx, origin, radiusMeters)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hits := make([]domain.OperatorHit, 0)
	seen := make(map[*operatorEntry]struct{})
	for _, box := range geo.BoundingBoxes(origin, radiusMeters) {
		rect, err := rtreego.NewRect(
			rtreego.Point{box.MinLat, box.MinLng},
			[]float64{box.MaxLat - box.MinLat, box.MaxLng - box.MinLng},
		)
		if err != nil {
			return nil, err
		}

		for _, s := range tree.SearchIntersect(rect) {
			entry, ok := s.(*operatorEntry)
			if !ok {
				continue
			}
			if _, dup := seen[entry]; dup {
				continue
			}
			seen[entry] = struct{}{}

			if dist, ok := geo.WithinRadius(origin, entry.op.Point(), radiusMeters); ok {
				hits = append(hits, domain.OperatorHit{Operator: entry.op, DistanceMeters: dist})
			}
		}
	}
	return hits, nil
}
