package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Symmetric(t *testing.T) {
	cases := []struct {
		lat1, lng1, lat2, lng2 float64
	}{
		{37.5665, 126.9780, 37.5651, 126.9895},
		{0, 0, 10, 10},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, c := range cases {
		ab := DistanceMeters(c.lat1, c.lng1, c.lat2, c.lng2)
		ba := DistanceMeters(c.lat2, c.lng2, c.lat1, c.lng1)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(37.5665, 126.9780, 37.5665, 126.9780))
}

func TestDistanceMeters_SeoulLandmarks(t *testing.T) {
	// City Hall to Euljiro, roughly 1015m.
	d := DistanceMeters(37.5665, 126.9780, 37.5651, 126.9895)
	assert.InDelta(t, 1015, d, 1015*0.05)
}

func TestIsWithinRadius_Boundary(t *testing.T) {
	lat, lng := 37.5665, 126.9780
	targetLat, targetLng := 37.5651, 126.9895
	d := DistanceMeters(lat, lng, targetLat, targetLng)

	assert.True(t, IsWithinRadius(lat, lng, targetLat, targetLng, d))
	assert.False(t, IsWithinRadius(lat, lng, targetLat, targetLng, d-1))
	assert.True(t, IsWithinRadius(lat, lng, targetLat, targetLng, d+1))
}
