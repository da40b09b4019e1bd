// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the tailoring marketplace.
//
// The package includes:
//   - ProximitySearch: the radius-escalation proximity search over the tailor
//     read model, with capability filtering and distance ranking
//   - RadiusPolicy: the value object bounding the escalation loop
//
// Domain services hold logic that does not belong to a single aggregate,
// following Domain-Driven Design principles.
package services
