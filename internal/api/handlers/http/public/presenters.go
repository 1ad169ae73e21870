package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"equipmentCentral/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	msg := "internal error"
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
		msg = "not found"
	case errors.Is(err, e.ErrDeadline):
		status = http.StatusGatewayTimeout
		msg = "timeout"
	default:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.log(r).Error("handler error", slog.String("path", r.URL.Path), slog.Any("error", err))
	} else {
		h.log(r).Warn("handler error", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func parseFloat(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
