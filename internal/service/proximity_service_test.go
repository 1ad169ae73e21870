package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipmentCentral/internal/domain"
	"equipmentCentral/internal/service"
	mock_service "equipmentCentral/internal/service/mocks"
	"equipmentCentral/pkg/e"
	"equipmentCentral/pkg/geo"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type memOperators struct {
	ops []domain.Operator
}

func (m *memOperators) ListActive(ctx context.Context) ([]domain.Operator, error) {
	return m.ops, nil
}

type memEquipment struct {
	items []domain.Equipment
}

func (m *memEquipment) ListActive(ctx context.Context) ([]domain.Equipment, error) {
	return m.items, nil
}

func (m *memEquipment) ListActiveByOperatorIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Equipment, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]domain.Equipment, 0)
	for _, it := range m.items {
		if want[it.OperatorID] {
			out = append(out, it)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.SearchEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, ev domain.SearchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

var (
	sydney     = geo.Point{Lat: -33.8688, Lng: 151.2093}
	parramatta = geo.Point{Lat: -33.8150, Lng: 151.0011}
	melbourne  = geo.Point{Lat: -37.8136, Lng: 144.9631}
)

type fixture struct {
	sydOp, parraOp, melOp  domain.Operator
	excavator, lift, crane domain.Equipment
	operators              *memOperators
	equipment              *memEquipment
}

func newFixture() *fixture {
	f := &fixture{
		sydOp:   domain.Operator{ID: uuid.New(), BusinessName: "Sydney Hire", Suburb: "Sydney", State: "NSW", Lat: sydney.Lat, Lng: sydney.Lng},
		parraOp: domain.Operator{ID: uuid.New(), BusinessName: "Parra Plant", Suburb: "Parramatta", State: "NSW", Lat: parramatta.Lat, Lng: parramatta.Lng},
		melOp:   domain.Operator{ID: uuid.New(), BusinessName: "Melbourne Lifts", Suburb: "Melbourne", State: "VIC", Lat: melbourne.Lat, Lng: melbourne.Lng},
	}
	f.excavator = domain.Equipment{ID: uuid.New(), OperatorID: f.sydOp.ID, Name: "Excavator", AvailabilityStatus: true}
	f.lift = domain.Equipment{ID: uuid.New(), OperatorID: f.parraOp.ID, Name: "Scissor lift", AvailabilityStatus: true}
	f.crane = domain.Equipment{ID: uuid.New(), OperatorID: f.melOp.ID, Name: "Crane", AvailabilityStatus: false}

	f.operators = &memOperators{ops: []domain.Operator{f.sydOp, f.parraOp, f.melOp}}
	f.equipment = &memEquipment{items: []domain.Equipment{f.excavator, f.lift, f.crane}}
	return f
}

func (f *fixture) service(pub service.SearchEventPublisher) service.EquipmentSearchService {
	return service.NewProximityService(service.NewScanLocator(f.operators), f.equipment, pub, newTestLogger(), service.DefaultRadiusMeters)
}

func r(v float64) *float64 { return &v }

func names(results []domain.NearbyResult) []string {
	out := make([]string, 0, len(results))
	for _, res := range results {
		out = append(out, res.Name)
	}
	return out
}

func TestFindNearby_DefaultRadiusKeepsOnlyCityCentre(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: sydney.Lat, Lng: sydney.Lng})
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, f.excavator.ID, got.ID)
	assert.Zero(t, got.DistanceMeters)
	assert.Equal(t, domain.OperatorSummary{ID: f.sydOp.ID, BusinessName: "Sydney Hire", Suburb: "Sydney", State: "NSW"}, got.Operator)
}

func TestFindNearby_InterstateRadius(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: sydney.Lat, Lng: sydney.Lng, RadiusMeters: r(800_000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Excavator", "Scissor lift", "Crane"}, names(results))

	assert.InDelta(t, 713_000, results[2].DistanceMeters, 5_000)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].DistanceMeters, results[i].DistanceMeters)
	}
}

func TestFindNearby_NoOperatorsInRange_EmptySlice(t *testing.T) {
	f := newFixture()
	pub := &recordingPublisher{}
	svc := f.service(pub)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: 0, Lng: 0})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	require.Len(t, pub.events, 1)
	assert.Equal(t, 0, pub.events[0].ResultCount)
	assert.Equal(t, service.DefaultRadiusMeters, pub.events[0].RadiusMeters)
}

func TestFindNearby_GrowingRadiusNeverLosesResults(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	prev := map[uuid.UUID]bool{}
	for _, radius := range []float64{0, 1_000, 20_000, 100_000, 1_000_000, 20_100_000} {
		results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: sydney.Lat, Lng: sydney.Lng, RadiusMeters: r(radius)})
		require.NoError(t, err)

		cur := map[uuid.UUID]bool{}
		for _, res := range results {
			cur[res.ID] = true
			assert.LessOrEqual(t, res.DistanceMeters, radius)
		}
		for id := range prev {
			assert.True(t, cur[id], "radius %v dropped %s", radius, id)
		}
		prev = cur
	}
	assert.Len(t, prev, 3)
}

func TestFindNearby_ZeroRadiusExactLocation(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: parramatta.Lat, Lng: parramatta.Lng, RadiusMeters: r(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Scissor lift"}, names(results))
}

func TestFindNearby_SoftDeletedExcluded(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.operators.ops[1].DeletedAt = &now
	f.equipment.items[0].DeletedAt = &now
	svc := f.service(nil)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: sydney.Lat, Lng: sydney.Lng, RadiusMeters: r(1_000_000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Crane"}, names(results))
}

func TestFindNearby_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  domain.NearbyRequest
		want error
	}{
		{"lat above 90", domain.NearbyRequest{Lat: 90.0001}, e.ErrInvalidCoordinates},
		{"lat below -90", domain.NearbyRequest{Lat: -91}, e.ErrInvalidCoordinates},
		{"lng above 180", domain.NearbyRequest{Lng: 181}, e.ErrInvalidCoordinates},
		{"lat NaN", domain.NearbyRequest{Lat: math.NaN()}, e.ErrInvalidCoordinates},
		{"negative radius", domain.NearbyRequest{RadiusMeters: r(-1)}, e.ErrInvalidRadius},
		{"NaN radius", domain.NearbyRequest{RadiusMeters: r(math.NaN())}, e.ErrInvalidRadius},
		{"infinite radius", domain.NearbyRequest{RadiusMeters: r(math.Inf(1))}, e.ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			locator := mock_service.NewMockOperatorLocator(ctrl)
			store := mock_service.NewMockEquipmentStore(ctrl)
			svc := service.NewProximityService(locator, store, nil, newTestLogger(), service.DefaultRadiusMeters)

			_, err := svc.FindNearby(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, e.ErrInvalidInput)
		})
	}
}

func TestFindNearby_BoundaryCoordinatesAccepted(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	for _, p := range []geo.Point{{Lat: 90, Lng: 180}, {Lat: -90, Lng: -180}} {
		_, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: p.Lat, Lng: p.Lng})
		assert.NoError(t, err)
	}
}

func TestFindNearby_DefaultRadiusPassedToLocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mock_service.NewMockOperatorLocator(ctrl)
	store := mock_service.NewMockEquipmentStore(ctrl)

	locator.EXPECT().
		Within(gomock.Any(), geo.Point{Lat: 1, Lng: 2}, 2500.0).
		Return([]domain.OperatorHit{}, nil).
		Times(1)

	svc := service.NewProximityService(locator, store, nil, newTestLogger(), 2500)
	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: 1, Lng: 2})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindNearby_ErrorsPropagate(t *testing.T) {
	boom := errors.New("store unavailable")

	t.Run("locator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locator := mock_service.NewMockOperatorLocator(ctrl)
		locator.EXPECT().Within(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		svc := service.NewProximityService(locator, mock_service.NewMockEquipmentStore(ctrl), nil, newTestLogger(), service.DefaultRadiusMeters)
		_, err := svc.FindNearby(context.Background(), domain.NearbyRequest{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("equipment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locator := mock_service.NewMockOperatorLocator(ctrl)
		store := mock_service.NewMockEquipmentStore(ctrl)
		opID := uuid.New()

		locator.EXPECT().Within(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.OperatorHit{{Operator: domain.Operator{ID: opID}}}, nil)
		store.EXPECT().ListActiveByOperatorIDs(gomock.Any(), []uuid.UUID{opID}).Return(nil, boom)

		svc := service.NewProximityService(locator, store, nil, newTestLogger(), service.DefaultRadiusMeters)
		_, err := svc.FindNearby(context.Background(), domain.NearbyRequest{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestFindNearby_TiesOrderedByOperatorNameAndID(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mock_service.NewMockOperatorLocator(ctrl)
	store := mock_service.NewMockEquipmentStore(ctrl)

	opA := domain.Operator{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a")}
	opB := domain.Operator{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b")}
	idLow := uuid.MustParse("10000000-0000-0000-0000-000000000000")
	idHigh := uuid.MustParse("20000000-0000-0000-0000-000000000000")

	locator.EXPECT().Within(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.OperatorHit{
		{Operator: opB, DistanceMeters: 50},
		{Operator: opA, DistanceMeters: 50},
	}, nil)
	store.EXPECT().ListActiveByOperatorIDs(gomock.Any(), gomock.Any()).Return([]domain.Equipment{
		{ID: idHigh, OperatorID: opB.ID, Name: "Auger"},
		{ID: idHigh, OperatorID: opA.ID, Name: "Trailer"},
		{ID: idLow, OperatorID: opA.ID, Name: "Trailer"},
		{ID: uuid.New(), OperatorID: opA.ID, Name: "Bobcat"},
	}, nil)

	svc := service.NewProximityService(locator, store, nil, newTestLogger(), service.DefaultRadiusMeters)
	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{})
	require.NoError(t, err)

	require.Len(t, results, 4)
	assert.Equal(t, []string{"Bobcat", "Trailer", "Trailer", "Auger"}, names(results))
	assert.Equal(t, idLow, results[1].ID)
	assert.Equal(t, idHigh, results[2].ID)
}

func TestFindNearby_PublishFailureDoesNotFailSearch(t *testing.T) {
	f := newFixture()
	pub := &recordingPublisher{err: errors.New("redis down")}
	svc := f.service(pub)

	results, err := svc.FindNearby(context.Background(), domain.NearbyRequest{Lat: sydney.Lat, Lng: sydney.Lng})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, 1, ev.ResultCount)
	assert.Equal(t, sydney.Lat, ev.Lat)
	assert.NotEqual(t, uuid.Nil, ev.ID)
}

func TestListAll_ProjectsSummaries(t *testing.T) {
	f := newFixture()
	svc := f.service(nil)

	items, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, f.crane.Summary(), items[2])
}
