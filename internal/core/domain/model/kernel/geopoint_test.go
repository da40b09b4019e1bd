package kernel_test

import (
	"testing"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(12.9716, 77.5946)

		require.NoError(t, err)
		assert.InDelta(t, 12.9716, p.Lat(), 1e-9)
		assert.InDelta(t, 77.5946, p.Lng(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := [][2]float64{
			{-90, 0}, {90, 0}, {0, -180}, {0, 180},
		}

		for _, b := range boundaries {
			_, err := kernel.NewGeoPoint(b[0], b[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		invalid := [][2]float64{
			{-90.01, 0}, {90.01, 0}, {0, -180.01}, {0, 180.01}, {91, 181},
		}

		for _, b := range invalid {
			_, err := kernel.NewGeoPoint(b[0], b[1])
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})

	t.Run("should accept constructed point", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(0, 0)
		require.NoError(t, p.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("should be zero for identical points", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(12.9716, 77.5946)

		d, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		b, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		d1, err := a.DistanceKm(b)
		require.NoError(t, err)
		d2, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("should match known city distance", func(t *testing.T) {
		// Bangalore to Chennai is roughly 290 km great-circle.
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		b, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 290, d, 5)
	})

	t.Run("should fail for unconstructed point", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		var b kernel.GeoPoint

		_, err := a.DistanceKm(b)

		require.Error(t, err)
	})
}

func TestRoundKm(t *testing.T) {
	t.Run("should round to two decimals", func(t *testing.T) {
		assert.InDelta(t, 2.0, kernel.RoundKm(1.9996), 1e-9)
		assert.InDelta(t, 1.99, kernel.RoundKm(1.994), 1e-9)
		assert.InDelta(t, 0.0, kernel.RoundKm(0.0049), 1e-9)
	})
}
