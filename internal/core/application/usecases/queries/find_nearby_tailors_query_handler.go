package queries

import (
	"context"

	"tailoring/internal/core/domain/services"
)

// FindNearbyTailorsQueryHandler runs proximity discovery over a candidate
// source, usually the Postgres tailor repository. The radius escalation and
// ranking live in the domain service; this handler only maps the result to
// the read model.
type FindNearbyTailorsQueryHandler struct {
	search services.ProximitySearch
	policy services.RadiusPolicy
}

// NewFindNearbyTailorsQueryHandler creates a handler for tailor discovery.
// The policy determines the starting radius, the widening step and the
// search ceiling.
func NewFindNearbyTailorsQueryHandler(
	source services.CandidateSource,
	policy services.RadiusPolicy,
) FindNearbyTailorsQueryHandler {
	return FindNearbyTailorsQueryHandler{
		search: services.NewProximitySearch(source),
		policy: policy,
	}
}

// Handle executes the discovery query. An exhausted search is not an error:
// the response simply carries no tailors and the maximum radius.
func (h FindNearbyTailorsQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyTailorsQuery,
) (FindNearbyTailorsResponse, error) {
	if err := query.Validate(); err != nil {
		return FindNearbyTailorsResponse{}, err
	}

	filters := services.Filters{
		GarmentType:             query.GarmentType(),
		RequiresFabricProvision: query.RequiresFabric(),
	}

	result, err := h.search.FindNearby(ctx, query.Origin(), filters, h.policy)
	if err != nil {
		return FindNearbyTailorsResponse{}, err
	}

	matches := make([]TailorMatch, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, TailorMatch{
			ID:              m.Tailor.ID(),
			Name:            m.Tailor.Name(),
			DistanceKm:      m.DistanceKm,
			Rating:          m.Tailor.Rating(),
			Specializations: m.Tailor.Capabilities().Specializations(),
			ProvidesFabric:  m.Tailor.Capabilities().ProvidesFabric(),
		})
	}

	return FindNearbyTailorsResponse{
		RadiusUsedKm: result.RadiusUsedKm,
		Tailors:      matches,
	}, nil
}
