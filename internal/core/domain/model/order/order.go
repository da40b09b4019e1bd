package order

import (
	"errors"
	"maps"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root tracking a single garment request from
// placement to delivery or termination.
//
// Order follows these invariants:
//   - identity, party references, garment type and measurements are immutable
//     after creation
//   - payment.RemainingAmount == TotalAmount - DepositAmount, fixed at creation
//   - status changes only along an edge of the transition graph (see Status)
//   - the delivery verification code is generated exactly once, at creation
//   - updatedAt is refreshed on every mutation
//
// The struct uses private fields to ensure encapsulation; transitions happen
// only through the Accept/Reject/Cancel/ConfirmDeposit/Advance methods, which
// delegate their preconditions to the Status state machine.
type Order struct {
	id          kernel.UUID
	requesterID kernel.UUID
	tailorID    kernel.UUID

	garmentType  string
	measurements map[string]float64

	payment Payment
	status  Status

	// verificationCode is the out-of-band delivery confirmation code.
	// Never exposed to the tailor before the Ready status.
	verificationCode string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a freshly placed order. The order starts in Placed status
// with the payment in PendingDeposit, and a delivery verification code is
// generated and stored.
//
// Fails with a validation error if any identifier is missing, the garment
// type is empty, or the payment record was not constructed.
func NewOrder(
	id, requesterID, tailorID kernel.UUID,
	garmentType string,
	measurements map[string]float64,
	payment Payment,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setTailorID(tailorID),
		o.setGarmentType(garmentType),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	code, err := newVerificationCode()
	if err != nil {
		return nil, err
	}
	o.verificationCode = code

	o.measurements = maps.Clone(measurements)
	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and the stored verification code and timestamps.
// Used only by repository mapping code.
func RestoreOrder(
	id, requesterID, tailorID kernel.UUID,
	garmentType string,
	measurements map[string]float64,
	payment Payment,
	status Status,
	verificationCode string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setTailorID(tailorID),
		o.setGarmentType(garmentType),
		o.setPayment(payment),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if verificationCode == "" {
		return nil, errs.NewValueIsRequiredError("verificationCode")
	}

	o.measurements = maps.Clone(measurements)
	o.status = status
	o.verificationCode = verificationCode
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the customer's identifier.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// TailorID returns the tailor's identifier.
func (o *Order) TailorID() kernel.UUID {
	return o.tailorID
}

// GarmentType returns the free-form garment category.
func (o *Order) GarmentType() string {
	return o.garmentType
}

// Measurements returns a copy of the opaque measurement mapping. The copy
// keeps the stored measurements immutable.
func (o *Order) Measurements() map[string]float64 {
	return maps.Clone(o.measurements)
}

// Payment returns the order's money sub-record.
func (o *Order) Payment() Payment {
	return o.payment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// VerificationCode returns the delivery confirmation code.
func (o *Order) VerificationCode() string {
	return o.verificationCode
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Accept moves the order from Placed to Accepted.
// Fails with an InvalidTransitionError from any other status.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Reject moves the order from Placed to the terminal Rejected status.
// Fails with an InvalidTransitionError from any other status.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order from Placed to the terminal Cancelled status.
// Only the customer-facing entry point calls this, and only before the
// tailor has accepted. Fails with an InvalidTransitionError from any other
// status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ConfirmDeposit marks the deposit as paid and moves the order to Accepted.
//
// With requirePlaced false this reproduces the legacy coupling: the status is
// forced to Accepted regardless of its prior value. With requirePlaced true
// the call behaves like Accept and fails with an InvalidTransitionError
// unless the order is still Placed. See the ConfirmDepositCommandHandler for
// how the mode is configured.
func (o *Order) ConfirmDeposit(requirePlaced bool) error {
	if requirePlaced && o.status != Placed {
		return NewInvalidTransitionError(o.status, Accepted)
	}

	o.payment = o.payment.ConfirmDeposit()
	o.status = Accepted
	o.touch()
	return nil
}

// Advance moves the order to the successor of its current status in the
// production workflow. Fails with a NoFurtherTransitionError when the current
// status has no successor (Placed and all terminal statuses). The target is
// always derived from the current status; callers never choose it.
func (o *Order) Advance() error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requesterId", err)
	}
	o.requesterID = id
	return nil
}

func (o *Order) setTailorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tailorId", err)
	}
	o.tailorID = id
	return nil
}

func (o *Order) setGarmentType(garmentType string) error {
	if garmentType == "" {
		return errs.NewValueIsRequiredError("garmentType")
	}
	o.garmentType = garmentType
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
