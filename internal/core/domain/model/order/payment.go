package order

import (
	"errors"
	"fmt"

	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment value was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
	"payment must be created via NewPayment or RestorePayment constructors")

// DepositMode identifies how the customer pays the deposit.
type DepositMode int

const (
	// DepositModeUnknown is the invalid zero value.
	DepositModeUnknown DepositMode = iota
	// DepositCash means the deposit is handed over in cash.
	DepositCash
	// DepositOnline means the deposit is paid through an online channel.
	DepositOnline
)

// Validate checks that the mode is one of the recognized payment channels.
func (m DepositMode) Validate() error {
	if m != DepositCash && m != DepositOnline {
		return errs.NewValueIsInvalidErrorWithCause("depositMode",
			fmt.Errorf("%d is not a valid deposit mode", m))
	}
	return nil
}

// String implements fmt.Stringer.
func (m DepositMode) String() string {
	switch m {
	case DepositCash:
		return "Cash"
	case DepositOnline:
		return "Online"
	default:
		return "Unknown"
	}
}

// DepositModeFromString parses a deposit mode name as produced by String.
// Returns an error for unrecognized names and for "Unknown".
func DepositModeFromString(s string) (DepositMode, error) {
	switch s {
	case "Cash":
		return DepositCash, nil
	case "Online":
		return DepositOnline, nil
	default:
		return DepositModeUnknown, errs.NewValueIsInvalidErrorWithCause("depositMode",
			fmt.Errorf("%q is not a valid deposit mode", s))
	}
}

// DepositStatus tracks whether the deposit has been confirmed.
type DepositStatus int

const (
	// DepositStatusUnknown is the invalid zero value.
	DepositStatusUnknown DepositStatus = iota
	// DepositPending means the deposit has not been confirmed yet.
	DepositPending
	// DepositPaid means the deposit has been confirmed.
	DepositPaid
)

// String implements fmt.Stringer.
func (s DepositStatus) String() string {
	switch s {
	case DepositPending:
		return "Pending"
	case DepositPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// PaymentStatus tracks the order's overall payment progress.
type PaymentStatus int

const (
	// PaymentStatusUnknown is the invalid zero value.
	PaymentStatusUnknown PaymentStatus = iota
	// PaymentPendingDeposit means no money has been received.
	PaymentPendingDeposit
	// PaymentDepositPaid means the deposit is in and the remainder is due.
	PaymentDepositPaid
	// PaymentPaid means the order is fully paid.
	PaymentPaid
)

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPendingDeposit:
		return "PendingDeposit"
	case PaymentDepositPaid:
		return "DepositPaid"
	case PaymentPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Payment is the immutable money sub-record of an order. Amounts are held in
// minor currency units (paise). The invariant
//
//	RemainingAmount == TotalAmount - DepositAmount
//
// is established at construction and never recomputed afterwards.
type Payment struct { //nolint:recvcheck //using for validation
	totalAmount     int64
	depositAmount   int64
	remainingAmount int64
	depositMode     DepositMode
	depositStatus   DepositStatus
	paymentStatus   PaymentStatus

	guard guard.ConstructorGuard
}

// NewPayment creates the payment record for a freshly placed order.
// The total must be positive, the deposit non-negative and no larger than the
// total, and the mode a recognized channel. The deposit starts Pending and
// the payment status starts PendingDeposit.
func NewPayment(totalAmount, depositAmount int64, mode DepositMode) (Payment, error) {
	p := Payment{
		depositStatus: DepositPending,
		paymentStatus: PaymentPendingDeposit,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setAmounts(totalAmount, depositAmount),
		p.setMode(mode),
	); err != nil {
		return Payment{}, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment record from persistence without
// re-deriving the remaining amount. Used only by repository mapping code.
func RestorePayment(
	totalAmount, depositAmount, remainingAmount int64,
	mode DepositMode,
	depositStatus DepositStatus,
	paymentStatus PaymentStatus,
) (Payment, error) {
	if err := mode.Validate(); err != nil {
		return Payment{}, err
	}

	return Payment{
		totalAmount:     totalAmount,
		depositAmount:   depositAmount,
		remainingAmount: remainingAmount,
		depositMode:     mode,
		depositStatus:   depositStatus,
		paymentStatus:   paymentStatus,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Payment was created through a constructor.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// TotalAmount returns the full order price in minor units.
func (p Payment) TotalAmount() int64 {
	return p.totalAmount
}

// DepositAmount returns the up-front portion in minor units.
func (p Payment) DepositAmount() int64 {
	return p.depositAmount
}

// RemainingAmount returns the amount still due after the deposit.
func (p Payment) RemainingAmount() int64 {
	return p.remainingAmount
}

// DepositMode returns the deposit payment channel.
func (p Payment) DepositMode() DepositMode {
	return p.depositMode
}

// DepositStatus returns whether the deposit has been confirmed.
func (p Payment) DepositStatus() DepositStatus {
	return p.depositStatus
}

// PaymentStatus returns the overall payment progress.
func (p Payment) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// ConfirmDeposit returns a copy with the deposit marked Paid and the payment
// status moved to DepositPaid. Amounts are unchanged.
func (p Payment) ConfirmDeposit() Payment {
	p.depositStatus = DepositPaid
	p.paymentStatus = PaymentDepositPaid
	return p
}

func (p *Payment) setAmounts(totalAmount, depositAmount int64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is not greater than 0", totalAmount))
	}
	if depositAmount < 0 || depositAmount > totalAmount {
		return errs.NewValueIsOutOfRangeError("depositAmount", depositAmount, 0, totalAmount)
	}

	p.totalAmount = totalAmount
	p.depositAmount = depositAmount
	p.remainingAmount = totalAmount - depositAmount
	return nil
}

func (p *Payment) setMode(mode DepositMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	p.depositMode = mode
	return nil
}
