package queries_test

import (
	"context"
	"testing"

	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns a fixed candidate set for any radius at or above the
// one it was armed with.
type stubSource struct {
	fromRadiusKm float64
	candidates   []*tailor.Tailor
}

func (s *stubSource) WithinRadiusKm(_ context.Context, _ kernel.GeoPoint, radiusKm float64) ([]*tailor.Tailor, error) {
	if radiusKm < s.fromRadiusKm {
		return nil, nil
	}
	return s.candidates, nil
}

func newActiveTailor(t *testing.T, name string, lat, lng float64, specializations []string, providesFabric bool) *tailor.Tailor {
	t.Helper()
	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	aggregate, err := tailor.NewTailor(
		kernel.NewUUID(), name, &location,
		tailor.NewCapabilities(specializations, providesFabric),
	)
	require.NoError(t, err)
	return aggregate
}

func TestFindNearbyTailorsQueryHandler_Handle(t *testing.T) {
	origin, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	// Roughly 1.3 km north of the origin.
	near := newActiveTailor(t, "Meena Tailors", 12.9833, 77.5946, []string{"saree blouse"}, true)

	source := &stubSource{fromRadiusKm: 2, candidates: []*tailor.Tailor{near}}
	handler := queries.NewFindNearbyTailorsQueryHandler(source, services.DefaultRadiusPolicy())

	t.Run("should widen the radius until a tailor matches", func(t *testing.T) {
		query, qErr := queries.NewFindNearbyTailorsQuery(origin, "saree blouse", false)
		require.NoError(t, qErr)

		resp, hErr := handler.Handle(t.Context(), query)
		require.NoError(t, hErr)
		assert.InDelta(t, 2.0, resp.RadiusUsedKm, 1e-9)
		require.Len(t, resp.Tailors, 1)
		assert.Equal(t, "Meena Tailors", resp.Tailors[0].Name)
		assert.True(t, resp.Tailors[0].ProvidesFabric)
		assert.Greater(t, resp.Tailors[0].DistanceKm, 0.0)
	})

	t.Run("should return empty result at the maximum radius", func(t *testing.T) {
		query, qErr := queries.NewFindNearbyTailorsQuery(origin, "lehenga", false)
		require.NoError(t, qErr)

		resp, hErr := handler.Handle(t.Context(), query)
		require.NoError(t, hErr)
		assert.Empty(t, resp.Tailors)
		assert.InDelta(t, services.DefaultMaxRadiusKm, resp.RadiusUsedKm, 1e-9)
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		_, hErr := handler.Handle(t.Context(), queries.FindNearbyTailorsQuery{})
		require.ErrorIs(t, hErr, queries.ErrFindNearbyTailorsQueryIsNotConstructed)
	})
}
