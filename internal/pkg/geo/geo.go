package geo

import "math"

// Earth radius in meters, spherical approximation.
const earthRadius = 6371000

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. Accurate enough for geofence radii of tens to
// hundreds of meters; no ellipsoidal correction.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	lat1Rad := toRad(lat1)
	lat2Rad := toRad(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// IsWithinRadius reports whether the current position falls inside the
// circular geofence centered on the target.
func IsWithinRadius(currentLat, currentLng, targetLat, targetLng, radiusMeters float64) bool {
	return DistanceMeters(currentLat, currentLng, targetLat, targetLng) <= radiusMeters
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
