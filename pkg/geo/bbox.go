package geo

import "math"

// boxPadDeg widens every box so that float rounding at the cap edge never drops a candidate.
const boxPadDeg = 1e-9

// Box is a latitude/longitude rectangle with MinLng <= MaxLng.
type Box struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// BoundingBoxes returns rectangles that together cover every point within radiusMeters of
// origin. The cap is split in two when it crosses the antimeridian and widened to all
// longitudes when it contains a pole. Boxes are a superset; callers still check Distance.
func BoundingBoxes(origin Point, radiusMeters float64) []Box {
	angular := radiusMeters / EarthRadiusMeters
	if angular >= math.Pi {
		return []Box{worldBox()}
	}

	dLat := toDeg(angular)
	minLat := origin.Lat - dLat - boxPadDeg
	maxLat := origin.Lat + dLat + boxPadDeg

	if minLat <= -90 || maxLat >= 90 {
		return []Box{{
			MinLat: math.Max(minLat, -90-boxPadDeg),
			MinLng: -180 - boxPadDeg,
			MaxLat: math.Min(maxLat, 90+boxPadDeg),
			MaxLng: 180 + boxPadDeg,
		}}
	}

	ratio := math.Sin(angular) / math.Cos(toRad(origin.Lat))
	if ratio >= 1 {
		return []Box{{MinLat: minLat, MinLng: -180 - boxPadDeg, MaxLat: maxLat, MaxLng: 180 + boxPadDeg}}
	}
	dLng := toDeg(math.Asin(ratio)) + boxPadDeg

	minLng := origin.Lng - dLng
	maxLng := origin.Lng + dLng

	switch {
	case minLng < -180:
		return []Box{
			{MinLat: minLat, MinLng: -180 - boxPadDeg, MaxLat: maxLat, MaxLng: maxLng},
			{MinLat: minLat, MinLng: minLng + 360, MaxLat: maxLat, MaxLng: 180 + boxPadDeg},
		}
	case maxLng > 180:
		return []Box{
			{MinLat: minLat, MinLng: minLng, MaxLat: maxLat, MaxLng: 180 + boxPadDeg},
			{MinLat: minLat, MinLng: -180 - boxPadDeg, MaxLat: maxLat, MaxLng: maxLng - 360},
		}
	default:
		return []Box{{MinLat: minLat, MinLng: minLng, MaxLat: maxLat, MaxLng: maxLng}}
	}
}

func worldBox() Box {
	return Box{
		MinLat: -90 - boxPadDeg,
		MinLng: -180 - boxPadDeg,
		MaxLat: 90 + boxPadDeg,
		MaxLng: 180 + boxPadDeg,
	}
}
