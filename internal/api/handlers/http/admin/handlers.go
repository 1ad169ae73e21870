package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"equipmentCentral/internal/domain"
	"equipmentCentral/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type OperatorAdmin interface {
	Create(ctx context.Context, req domain.CreateOperatorRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Operator, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOperatorRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EquipmentAdmin interface {
	Create(ctx context.Context, req domain.CreateEquipmentRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEquipmentRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SearchStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Operators OperatorAdmin
	Equipment EquipmentAdmin
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, operators OperatorAdmin, equipment EquipmentAdmin, stats StatsGetter) *Handler {
	return &Handler{
		logger:    logger,
		Operators: operators,
		Equipment: equipment,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) OperatorCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OperatorCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateOperatorRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		l.Warn("invalid body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating operator",
		slog.String("business_name", req.BusinessName),
		slog.Float64("lat", *req.Lat),
		slog.Float64("lng", *req.Lng),
	)

	id, err := h.Operators.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("operator created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) OperatorList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OperatorList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	operators, total, err := h.Operators.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if operators == nil {
		operators = []*domain.Operator{}
	}

	l.Info("operators listed", slog.Int("count", len(operators)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, domain.ListOperatorsResponse{
		Operators: operators,
		Page:      page,
		Limit:     limit,
		Total:     total,
	})
}

func (h *Handler) OperatorGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	op, err := h.Operators.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, op)
}

func (h *Handler) OperatorUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOperatorRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		l.Warn("invalid body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Operators.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("operator updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) OperatorDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Operators.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("operator deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EquipmentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("EquipmentCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateEquipmentRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		l.Warn("invalid body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Equipment.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("equipment created", slog.String("id", id.String()), slog.String("operator_id", req.OperatorID.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) EquipmentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	eq, err := h.Equipment.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, eq)
}

func (h *Handler) EquipmentUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateEquipmentRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		l.Warn("invalid body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Equipment.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EquipmentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Equipment.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SearchStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SearchStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
