package domain

import (
	"math"

	"equipmentCentral/pkg/e"
	"equipmentCentral/pkg/geo"
)

// NearbyRequest is the parsed query of GET /api/equipment/nearby.
// A nil RadiusMeters means the configured default.
type NearbyRequest struct {
	Lat          float64
	Lng          float64
	RadiusMeters *float64
}

type ProximityQuery struct {
	Origin       geo.Point
	RadiusMeters float64
}

func (q ProximityQuery) Validate() error {
	if !q.Origin.Valid() {
		return e.ErrInvalidCoordinates
	}
	if math.IsNaN(q.RadiusMeters) || math.IsInf(q.RadiusMeters, 0) || q.RadiusMeters < 0 {
		return e.ErrInvalidRadius
	}
	return nil
}

type NearbyResult struct {
	EquipmentSummary
	DistanceMeters float64         `json:"distance_meters"`
	Operator       OperatorSummary `json:"operator"`
}
