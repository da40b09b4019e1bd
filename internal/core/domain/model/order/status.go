package order

import (
	"errors"
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Sentinel errors for state-machine failures. The concrete error types below
// unwrap to these so callers can classify with errors.Is.
var (
	// ErrInvalidTransition is returned when an operation's status
	// precondition does not hold, including the case of losing a
	// concurrent race on the same order.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoFurtherTransition is returned by Advance when the current status
	// has no successor in the production workflow.
	ErrNoFurtherTransition = errors.New("no further status transition")
)

// Status represents the lifecycle state of a tailoring order. It implements
// a state machine with a fixed, mostly linear transition graph:
//
//	Placed ──> Accepted ──> Cutting ──> Stitching ──> Finishing ──> Ready ──> Delivered
//	   │
//	   ├──> Rejected
//	   └──> Cancelled
//
// Placed is left via accept, reject or cancel. Every later stage is reached
// exclusively through Advance, which derives the next status from the fixed
// successor table; callers never pick a target status directly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer places an order.
	// The tailor has not yet accepted or rejected it.
	Placed

	// Accepted indicates the tailor has taken the order on.
	Accepted

	// Cutting indicates the fabric is being cut.
	Cutting

	// Stitching indicates the garment is being stitched.
	Stitching

	// Finishing indicates final touches are being applied.
	Finishing

	// Ready indicates the garment is ready for pickup or delivery.
	Ready

	// Delivered is a terminal status: the customer has the garment.
	Delivered

	// Rejected is a terminal status: the tailor declined the order while it
	// was still Placed.
	Rejected

	// Cancelled is a terminal status: the customer withdrew the order while
	// it was still Placed.
	Cancelled
)

// InvalidTransitionError reports a transition attempt whose precondition did
// not hold. From is the status actually observed, To the status that the
// operation would have produced.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// observed and attempted statuses.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NoFurtherTransitionError reports an Advance attempt on a status with no
// successor.
type NoFurtherTransitionError struct {
	From Status
}

// NewNoFurtherTransitionError creates a NoFurtherTransitionError for the
// observed status.
func NewNoFurtherTransitionError(from Status) *NoFurtherTransitionError {
	return &NoFurtherTransitionError{From: from}
}

func (e *NoFurtherTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNoFurtherTransition, e.From)
}

func (e *NoFurtherTransitionError) Unwrap() error {
	return ErrNoFurtherTransition
}

// getStatusStrings returns the map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Accepted:  "Accepted",
		Cutting:   "Cutting",
		Stitching: "Stitching",
		Finishing: "Finishing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may legitimately
// hold, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Accepted:  "Accepted",
		Cutting:   "Cutting",
		Stitching: "Stitching",
		Finishing: "Finishing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// getSuccessors returns the fixed successor table used by Advance. This is
// the single place the production workflow is encoded; statuses absent from
// the table (Placed as well as every terminal status) cannot be advanced.
func getSuccessors() map[Status]Status {
	return map[Status]Status{
		Accepted:  Cutting,
		Cutting:   Stitching,
		Stitching: Finishing,
		Finishing: Ready,
		Ready:     Delivered,
	}
}

// StatusFromString parses a status name as produced by String.
// Returns an error for unrecognized names and for "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one an order may hold.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no outgoing transition at all.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// IsOngoing reports whether the status belongs to the synthetic "ongoing"
// group used by tailor order listings: accepted work that has not yet been
// delivered.
func (s Status) IsOngoing() bool {
	switch s {
	case Accepted, Cutting, Stitching, Finishing, Ready:
		return true
	default:
		return false
	}
}

// OngoingStatuses returns the members of the "ongoing" group in workflow
// order.
func OngoingStatuses() []Status {
	return []Status{Accepted, Cutting, Stitching, Finishing, Ready}
}

// Accept transitions Placed to Accepted.
// Any other current status fails with an InvalidTransitionError.
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return Unknown, NewInvalidTransitionError(s, Accepted)
	}
	return Accepted, nil
}

// Reject transitions Placed to Rejected.
// Any other current status fails with an InvalidTransitionError.
func (s Status) Reject() (Status, error) {
	if s != Placed {
		return Unknown, NewInvalidTransitionError(s, Rejected)
	}
	return Rejected, nil
}

// Cancel transitions Placed to Cancelled.
// Any other current status fails with an InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return Unknown, NewInvalidTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}

// Next looks the status up in the successor table and returns the status
// Advance would produce. Statuses without a successor (Placed and all
// terminal statuses) fail with a NoFurtherTransitionError.
func (s Status) Next() (Status, error) {
	next, ok := getSuccessors()[s]
	if !ok {
		return Unknown, NewNoFurtherTransitionError(s)
	}
	return next, nil
}
