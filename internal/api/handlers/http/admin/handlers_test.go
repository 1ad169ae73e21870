package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"equipmentCentral/internal/api/handlers/http/admin"
	mock_admin "equipmentCentral/internal/api/handlers/http/admin/mocks"
	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type mocks struct {
	operators *mock_admin.MockOperatorAdmin
	equipment *mock_admin.MockEquipmentAdmin
	stats     *mock_admin.MockStatsGetter
}

func newHandler(t *testing.T) (*admin.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		operators: mock_admin.NewMockOperatorAdmin(ctrl),
		equipment: mock_admin.NewMockEquipmentAdmin(ctrl),
		stats:     mock_admin.NewMockStatsGetter(ctrl),
	}
	return admin.NewHandler(newTestLogger(), m.operators, m.equipment, m.stats), m
}

func f64(v float64) *float64 { return &v }

func TestOperatorCreate_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	reqBody := `{"business_name":"Sydney Hire","suburb":"Alexandria","state":"NSW","latitude":-33.9,"longitude":151.19}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/operators", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	m.operators.EXPECT().
		Create(gomock.Any(), domain.CreateOperatorRequest{
			BusinessName: "Sydney Hire",
			Suburb:       "Alexandria",
			State:        "NSW",
			Lat:          f64(-33.9),
			Lng:          f64(151.19),
		}).
		Return(wantID, nil).
		Times(1)

	h.OperatorCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID.String(), got["id"])
	}
}

func TestOperatorCreate_BadBody_400(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"invalid json":     "{bad json",
		"missing coords":   `{"business_name":"x"}`,
		"lat out of range": `{"business_name":"x","latitude":91,"longitude":0}`,
		"unknown field":    `{"business_name":"x","latitude":1,"longitude":1,"foo":1}`,
		"negative radius":  `{"business_name":"x","latitude":1,"longitude":1,"service_radius":-5}`,
	}
	for name, body := range bodies {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h, _ := newHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/operators", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()
			h.OperatorCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestOperatorCreate_ServiceError_500(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	reqBody := `{"business_name":"x","latitude":1,"longitude":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/operators", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, errors.New("boom")).
		Times(1)

	h.OperatorCreate(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestOperatorList_Defaults_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators", nil)
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		List(gomock.Any(), 1, 20).
		Return(nil, int64(0), nil).
		Times(1)

	h.OperatorList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]any](t, rr)
	if ops, ok := got["operators"].([]any); !ok || len(ops) != 0 {
		t.Fatalf("expected empty operators array, got %v", got["operators"])
	}
}

func TestOperatorList_LimitClampedTo100(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators?page=3&limit=500", nil)
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		List(gomock.Any(), 3, 100).
		Return([]*domain.Operator{{ID: uuid.New()}}, int64(201), nil).
		Times(1)

	h.OperatorList(rr, req)

	got := decodeJSON[domain.ListOperatorsResponse](t, rr)
	if got.Limit != 100 || got.Page != 3 || got.Total != 201 || len(got.Operators) != 1 {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestOperatorGet_InvalidID_400(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators/not-a-uuid", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.OperatorGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestOperatorGet_NotFound_404(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.Wrap("postgres.Operator.Get", e.ErrNotFound)).
		Times(1)

	h.OperatorGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestOperatorGet_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/operators/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		Get(gomock.Any(), id).
		Return(&domain.Operator{ID: id, BusinessName: "Melbourne Plant", Lat: -37.81, Lng: 144.96}, nil).
		Times(1)

	h.OperatorGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Operator](t, rr)
	if got.ID != id || got.BusinessName != "Melbourne Plant" {
		t.Fatalf("unexpected operator %+v", got)
	}
}

func TestOperatorUpdate_OK_204(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/operators/"+id.String(), bytes.NewBufferString(`{"latitude":-34.0}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.operators.EXPECT().
		Update(gomock.Any(), id, domain.UpdateOperatorRequest{Lat: f64(-34.0)}).
		Return(nil).
		Times(1)

	h.OperatorUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestOperatorUpdate_InvalidJSON_400(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/operators/"+id.String(), bytes.NewBufferString("{"))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.OperatorUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestOperatorDelete_OK_204(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/operators/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.operators.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	h.OperatorDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestEquipmentCreate_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	opID, catID, wantID := uuid.New(), uuid.New(), uuid.New()
	body := `{"operator_id":"` + opID.String() + `","category_id":"` + catID.String() + `","name":"Excavator","daily_rate":250}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/equipment", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	m.equipment.EXPECT().
		Create(gomock.Any(), domain.CreateEquipmentRequest{
			OperatorID: opID,
			CategoryID: catID,
			Name:       "Excavator",
			DailyRate:  f64(250),
		}).
		Return(wantID, nil).
		Times(1)

	h.EquipmentCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestEquipmentCreate_UnknownOperator_400(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	body := `{"operator_id":"` + uuid.NewString() + `","category_id":"` + uuid.NewString() + `","name":"Crane"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/equipment", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	m.equipment.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.Wrap("postgres.Equipment.Create", e.ErrInvalidInput)).
		Times(1)

	h.EquipmentCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestEquipmentCreate_NegativeRate_400(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	body := `{"operator_id":"` + uuid.NewString() + `","category_id":"` + uuid.NewString() + `","name":"Crane","weekly_rate":-1}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/equipment", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.EquipmentCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestEquipmentGetUpdateDelete(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	avail := false

	gomock.InOrder(
		m.equipment.EXPECT().Get(gomock.Any(), id).Return(&domain.Equipment{ID: id, Name: "Lift"}, nil),
		m.equipment.EXPECT().Update(gomock.Any(), id, domain.UpdateEquipmentRequest{AvailabilityStatus: &avail}).Return(nil),
		m.equipment.EXPECT().Delete(gomock.Any(), id).Return(nil),
	)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/equipment/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()
	h.EquipmentGet(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected %d got %d", http.StatusOK, rr.Code)
	}

	req = addChiURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/equipment/"+id.String(),
		bytes.NewBufferString(`{"availability_status":false}`)), "id", id.String())
	rr = httptest.NewRecorder()
	h.EquipmentUpdate(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("update: expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}

	req = addChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/equipment/"+id.String(), nil), "id", id.String())
	rr = httptest.NewRecorder()
	h.EquipmentDelete(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

func TestEquipmentUpdate_RateNullVersusMissing(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	id := uuid.New()
	m.equipment.EXPECT().
		Update(gomock.Any(), id, domain.UpdateEquipmentRequest{
			DailyRate:  domain.ClearRate(),
			WeeklyRate: domain.SetRate(450),
		}).
		Return(nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/equipment/"+id.String(),
		bytes.NewBufferString(`{"daily_rate":null,"weekly_rate":450}`)), "id", id.String())
	rr := httptest.NewRecorder()
	h.EquipmentUpdate(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestEquipmentUpdate_NegativeRate_400(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	id := uuid.New()
	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/equipment/"+id.String(),
		bytes.NewBufferString(`{"monthly_rate":-5}`)), "id", id.String())
	rr := httptest.NewRecorder()
	h.EquipmentUpdate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSearchStats_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats?minutes=30", nil)
	rr := httptest.NewRecorder()

	want := &domain.SearchStats{Searches: 42, EmptySearches: 7, Minutes: 30}
	m.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(want, nil).
		Times(1)

	h.SearchStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SearchStats](t, rr)
	if got != *want {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestSearchStats_DefaultMinutes_60(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rr := httptest.NewRecorder()

	m.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.SearchStats{Minutes: 60}, nil).
		Times(1)

	h.SearchStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestSearchStats_InvalidMinutes_400(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "-5", "1441", "abc"} {
		v := v
		t.Run(v, func(t *testing.T) {
			t.Parallel()
			h, _ := newHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats?minutes="+v, nil)
			rr := httptest.NewRecorder()
			h.SearchStats(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}
