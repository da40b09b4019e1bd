// Package order provides domain entities and business logic for order
// lifecycle management in the tailoring marketplace. It implements the Order
// aggregate root with its status state machine and payment record.
//
// The package includes:
//   - Order: The aggregate root managing identity, parties, measurements,
//     payment and lifecycle
//   - Status: A state machine enforcing the fixed transition graph
//     Placed -> Accepted -> Cutting -> Stitching -> Finishing -> Ready ->
//     Delivered, with Rejected and Cancelled as terminal exits from Placed
//   - Payment: The immutable money sub-record with the
//     remaining = total - deposit invariant
//
// Key business rules:
//   - Status only ever changes along an edge of the transition graph
//   - Advance derives the next status from the fixed successor table;
//     callers never choose a target status
//   - Deposit confirmation moves the order to Accepted (configurably
//     precondition-checked against Placed)
//   - A delivery verification code is generated exactly once, at creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
