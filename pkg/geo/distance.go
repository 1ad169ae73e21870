// Package geo holds the great-circle math used by proximity search.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius of the spherical model.
const EarthRadiusMeters = 6371000.0

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p is finite and inside [-90,90] x [-180,180].
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Distance returns the haversine distance between p1 and p2 in meters.
// Coordinates are not range checked.
func Distance(p1, p2 Point) float64 {
	lat1 := toRad(p1.Lat)
	lat2 := toRad(p2.Lat)
	dLat := lat2 - lat1
	dLon := toRad(p2.Lng - p1.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a slightly outside [0,1] near identical or antipodal points
	a = math.Max(0, math.Min(1, a))

	c := 2 * math.Asin(math.Sqrt(a))
	return EarthRadiusMeters * c
}

// WithinRadius returns the distance from origin to p and whether it is <= radiusMeters.
func WithinRadius(origin, p Point, radiusMeters float64) (float64, bool) {
	d := Distance(origin, p)
	return d, d <= radiusMeters
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
