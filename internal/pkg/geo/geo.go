package geo

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the Haversine great-circle distance between two
// coordinates in kilometers, rounded to two decimal places to match the
// precision items are listed with.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

// BoundingBox returns a lat/lng window that fully contains the circle of
// radiusKm around the center. Used as a cheap SQL prefilter before the
// exact Haversine pass.
func BoundingBox(lat, lng, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKm / 111.0 // ~111km per degree of latitude
	minLat = lat - latDelta
	maxLat = lat + latDelta

	cos := math.Cos(lat * math.Pi / 180)
	if cos < 0.01 {
		// Near the poles every longitude is inside the circle.
		return minLat, maxLat, -180, 180
	}
	lngDelta := radiusKm / (111.0 * cos)
	minLng = lng - lngDelta
	maxLng = lng + lngDelta
	return minLat, maxLat, minLng, maxLng
}
