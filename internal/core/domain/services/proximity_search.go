package services

import (
	"context"
	"sort"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
)

// CandidateSource supplies discoverable tailors within a radius of an origin.
// Implementations must only return Active tailors with a non-nil location;
// the search re-checks the invariant anyway so a sloppy source cannot leak
// suspended or unlocated tailors into results.
type CandidateSource interface {
	// WithinRadiusKm returns tailors whose spherical-earth distance from
	// origin is at most radiusKm.
	WithinRadiusKm(ctx context.Context, origin kernel.GeoPoint, radiusKm float64) ([]*tailor.Tailor, error)
}

// Filters narrows proximity search results by capability. Zero values impose
// no constraint; supplied filters are applied conjunctively.
type Filters struct {
	// GarmentType, when non-empty, requires the tailor to list it among
	// their specializations.
	GarmentType string

	// RequiresFabricProvision, when true, requires the tailor to provide
	// fabric.
	RequiresFabricProvision bool
}

// Match is one ranked search hit. DistanceKm is rounded via kernel.RoundKm so
// every caller sees the same display value.
type Match struct {
	Tailor     *tailor.Tailor
	DistanceKm float64
}

// SearchResult carries the matches and the radius that produced them.
// An empty Matches slice at the ceiling radius is a valid, successful result.
type SearchResult struct {
	RadiusUsedKm float64
	Matches      []Match
}

// ProximitySearch is the domain service that owns the radius-escalation
// algorithm: query at the starting radius, widen by the step while the
// filtered result set is empty, stop at the ceiling. The loop is bounded by
// RadiusPolicy.MaxRounds and never treats "nobody found" as an error.
//
// The search is read-only and safe to run with arbitrary concurrency.
type ProximitySearch struct {
	source CandidateSource
}

// NewProximitySearch creates a search service over the given source.
func NewProximitySearch(source CandidateSource) ProximitySearch {
	return ProximitySearch{source: source}
}

// FindNearby runs the escalation loop and returns matches ranked by ascending
// distance, with the tailor id as a stable tie-break for equal distances.
//
// The origin must be a constructed GeoPoint and the policy a constructed
// RadiusPolicy; source failures are returned as-is.
func (s ProximitySearch) FindNearby(
	ctx context.Context,
	origin kernel.GeoPoint,
	filters Filters,
	policy RadiusPolicy,
) (SearchResult, error) {
	if err := origin.Validate(); err != nil {
		return SearchResult{}, err
	}
	if err := policy.Validate(); err != nil {
		return SearchResult{}, err
	}

	radius := policy.MinKm()
	for {
		candidates, err := s.source.WithinRadiusKm(ctx, origin, radius)
		if err != nil {
			return SearchResult{}, err
		}

		matches, err := rank(origin, candidates, filters)
		if err != nil {
			return SearchResult{}, err
		}

		if len(matches) > 0 || radius >= policy.MaxKm() {
			return SearchResult{RadiusUsedKm: radius, Matches: matches}, nil
		}

		radius += policy.StepKm()
		if radius > policy.MaxKm() {
			radius = policy.MaxKm()
		}
	}
}

// rank applies the capability filters conjunctively and orders the survivors
// by (distance, id).
func rank(origin kernel.GeoPoint, candidates []*tailor.Tailor, filters Filters) ([]Match, error) {
	matches := make([]Match, 0, len(candidates))

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsDiscoverable() {
			continue
		}
		if filters.GarmentType != "" && !candidate.Capabilities().Specializes(filters.GarmentType) {
			continue
		}
		if filters.RequiresFabricProvision && !candidate.Capabilities().ProvidesFabric() {
			continue
		}

		distance, err := origin.DistanceKm(*candidate.Location())
		if err != nil {
			return nil, err
		}

		matches = append(matches, Match{
			Tailor:     candidate,
			DistanceKm: kernel.RoundKm(distance),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Tailor.ID().String() < matches[j].Tailor.ID().String()
	})

	return matches, nil
}
