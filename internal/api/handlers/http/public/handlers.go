package public

import (
	"context"
	"log/slog"
	"net/http"

	"equipmentCentral/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type EquipmentSearcher interface {
	FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyResult, error)
	ListAll(ctx context.Context) ([]domain.EquipmentSummary, error)
}

type Handler struct {
	logger   *slog.Logger
	Searcher EquipmentSearcher
}

func NewHandler(logger *slog.Logger, searcher EquipmentSearcher) *Handler {
	return &Handler{
		logger:   logger,
		Searcher: searcher,
	}
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ListEquipment", slog.String("remote", r.RemoteAddr))

	items, err := h.Searcher.ListAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("equipment listed", slog.Int("count", len(items)))
	h.writeJSON(w, http.StatusOK, items)
}

// NearbyEquipment serves GET /equipment/nearby?lat=&lng=&radius=. Missing lat
// and lng mean 0; a missing radius leaves the default to the search service.
func (h *Handler) NearbyEquipment(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("NearbyEquipment", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()

	lat, err := parseFloat(q.Get("lat"), 0)
	if err != nil {
		l.Warn("invalid lat", slog.String("lat", q.Get("lat")))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat must be a number"})
		return
	}
	lng, err := parseFloat(q.Get("lng"), 0)
	if err != nil {
		l.Warn("invalid lng", slog.String("lng", q.Get("lng")))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lng must be a number"})
		return
	}

	req := domain.NearbyRequest{Lat: lat, Lng: lng}
	if raw := q.Get("radius"); raw != "" {
		radius, err := parseFloat(raw, 0)
		if err != nil {
			l.Warn("invalid radius", slog.String("radius", raw))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "radius must be a number"})
			return
		}
		req.RadiusMeters = &radius
	}

	results, err := h.Searcher.FindNearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("nearby equipment found", slog.Int("count", len(results)))
	h.writeJSON(w, http.StatusOK, results)
}
