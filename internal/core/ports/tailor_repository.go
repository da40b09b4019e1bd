// Package ports defines repository interfaces for the tailoring domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
)

// TailorRepository defines the persistence contract for tailor aggregates.
// Provides methods for storing, retrieving, and querying tailor entities
// with their capabilities and workshop location.
type TailorRepository interface {
	// Add persists a new tailor aggregate to storage.
	// The tailor must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *tailor.Tailor) error

	// Update persists changes to an existing tailor aggregate.
	// The tailor must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *tailor.Tailor) error

	// Get retrieves a tailor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// WithinRadiusKm retrieves active tailors whose workshop lies within
	// radiusKm of origin. Tailors without a workshop location are excluded.
	// The result carries no ordering guarantee; ranking happens in the
	// domain service.
	WithinRadiusKm(ctx context.Context, origin kernel.GeoPoint, radiusKm float64) ([]*tailor.Tailor, error)
}
