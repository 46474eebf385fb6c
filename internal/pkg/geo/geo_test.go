//go:build unit

package geo_test

import (
	"testing"

	"rentradar/internal/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.DistanceKm(40.7128, -74.0060, 40.7128, -74.0060))
	})

	t.Run("manhattan to brooklyn", func(t *testing.T) {
		// Times Square to Barclays Center, roughly 8km.
		d := geo.DistanceKm(40.7580, -73.9855, 40.6826, -73.9754)
		assert.InDelta(t, 8.4, d, 0.5)
	})

	t.Run("new york to los angeles", func(t *testing.T) {
		d := geo.DistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
		assert.InDelta(t, 3936, d, 20)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.DistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
		b := geo.DistanceKm(34.0522, -118.2437, 40.7128, -74.0060)
		assert.Equal(t, a, b)
	})
}

func TestBoundingBox(t *testing.T) {
	t.Run("box contains the radius circle", func(t *testing.T) {
		lat, lng, radius := 40.7128, -74.0060, 10.0
		minLat, maxLat, minLng, maxLng := geo.BoundingBox(lat, lng, radius)

		assert.Less(t, minLat, lat)
		assert.Greater(t, maxLat, lat)
		assert.Less(t, minLng, lng)
		assert.Greater(t, maxLng, lng)

		// Points on the circle's cardinal extremes stay inside the box.
		assert.GreaterOrEqual(t, lat-minLat, radius/111.0)
		assert.GreaterOrEqual(t, maxLat-lat, radius/111.0)
	})

	t.Run("longitude widens toward the poles", func(t *testing.T) {
		_, _, minLngEq, maxLngEq := geo.BoundingBox(0, 0, 10)
		_, _, minLngHi, maxLngHi := geo.BoundingBox(60, 0, 10)

		assert.Greater(t, maxLngHi-minLngHi, maxLngEq-minLngEq)
	})

	t.Run("near the poles longitude covers everything", func(t *testing.T) {
		_, _, minLng, maxLng := geo.BoundingBox(89.9, 10, 10)
		assert.Equal(t, -180.0, minLng)
		assert.Equal(t, 180.0, maxLng)
	})
}
