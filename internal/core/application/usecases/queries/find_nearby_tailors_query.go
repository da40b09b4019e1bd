package queries

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrFindNearbyTailorsQueryIsNotConstructed = errors.New(
	"FindNearbyTailorsQuery must be created via NewFindNearbyTailorsQuery constructor",
)

// FindNearbyTailorsQuery discovers active tailors around a customer's
// location. The search starts at the smallest radius and widens step by
// step until something matches or the maximum radius is reached.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(12.9716, 77.5946)
//	query, err := NewFindNearbyTailorsQuery(origin, "saree blouse", false)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("discovery failed: %w", err)
//	}
//	fmt.Printf("Found %d tailors within %.1f km\n", len(resp.Tailors), resp.RadiusUsedKm)
type FindNearbyTailorsQuery struct {
	origin         kernel.GeoPoint
	garmentType    string
	requiresFabric bool

	guard guard.ConstructorGuard
}

// NewFindNearbyTailorsQuery creates a discovery query. The garment type is
// optional; when empty no specialization filtering is applied. With
// requiresFabric set, only tailors who supply fabric themselves match.
func NewFindNearbyTailorsQuery(
	origin kernel.GeoPoint,
	garmentType string,
	requiresFabric bool,
) (FindNearbyTailorsQuery, error) {
	if err := origin.Validate(); err != nil {
		return FindNearbyTailorsQuery{}, err
	}

	return FindNearbyTailorsQuery{
		origin:         origin,
		garmentType:    garmentType,
		requiresFabric: requiresFabric,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearbyTailorsQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyTailorsQueryIsNotConstructed)
}

// Origin returns the customer's location the search is centered on.
func (q FindNearbyTailorsQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// GarmentType returns the requested specialization, or empty for none.
func (q FindNearbyTailorsQuery) GarmentType() string {
	return q.garmentType
}

// RequiresFabric reports whether only fabric-providing tailors match.
func (q FindNearbyTailorsQuery) RequiresFabric() bool {
	return q.requiresFabric
}

// TailorMatch represents one discovered tailor in the read model.
type TailorMatch struct {
	ID              kernel.UUID
	Name            string
	DistanceKm      float64
	Rating          float64
	Specializations []string
	ProvidesFabric  bool
}

// FindNearbyTailorsResponse carries the discovery outcome. RadiusUsedKm is
// the radius at which the search stopped; with no matches it equals the
// policy maximum.
type FindNearbyTailorsResponse struct {
	RadiusUsedKm float64
	Tailors      []TailorMatch
}
