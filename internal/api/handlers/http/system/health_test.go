package system

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	up := pingFunc(func(ctx context.Context) error { return nil })
	down := pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		deps     map[string]Pinger
		wantCode int
		wantBody string
	}{
		{"no deps", nil, http.StatusOK, "ok"},
		{"all up", map[string]Pinger{"postgres": up, "redis": up}, http.StatusOK, "ok"},
		{"one down", map[string]Pinger{"postgres": up, "redis": down}, http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(logger, tt.deps)
			rr := httptest.NewRecorder()
			h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}
