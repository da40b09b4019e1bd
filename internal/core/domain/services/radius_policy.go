package services

import (
	"errors"
	"math"

	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

const (
	// DefaultMinRadiusKm is the starting search radius.
	DefaultMinRadiusKm = 1.0
	// DefaultMaxRadiusKm is the default escalation ceiling.
	DefaultMaxRadiusKm = 5.0
	// DefaultStepKm is the default escalation increment.
	DefaultStepKm = 1.0

	// RadiusCeilingKm is the hard ceiling: policies requesting a larger
	// maximum are rejected at construction.
	RadiusCeilingKm = 5.0
)

// ErrRadiusPolicyIsNotConstructed is returned when a RadiusPolicy was not
// created via NewRadiusPolicy or DefaultRadiusPolicy.
var ErrRadiusPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"radius policy must be created via NewRadiusPolicy or DefaultRadiusPolicy constructors")

// RadiusPolicy configures the radius-escalation loop: the starting radius,
// the ceiling and the increment, all in kilometers. It is an immutable value
// object; the zero value is invalid.
type RadiusPolicy struct { //nolint:recvcheck //using for validation
	minKm  float64
	maxKm  float64
	stepKm float64

	guard guard.ConstructorGuard
}

// NewRadiusPolicy creates a policy with the given bounds. The minimum and
// step must be positive, the maximum at least the minimum, and the maximum
// may not exceed RadiusCeilingKm.
func NewRadiusPolicy(minKm, maxKm, stepKm float64) (RadiusPolicy, error) {
	p := RadiusPolicy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setMin(minKm),
		p.setMax(maxKm, minKm),
		p.setStep(stepKm),
	); err != nil {
		return RadiusPolicy{}, err
	}

	return p, nil
}

// DefaultRadiusPolicy returns the 1 km / 5 km / 1 km policy.
func DefaultRadiusPolicy() RadiusPolicy {
	policy, err := NewRadiusPolicy(DefaultMinRadiusKm, DefaultMaxRadiusKm, DefaultStepKm)
	if err != nil {
		// The defaults are constants within bounds; this cannot happen.
		panic(err)
	}
	return policy
}

// Validate checks that the policy was created through a constructor.
func (p RadiusPolicy) Validate() error {
	return p.guard.Validate(ErrRadiusPolicyIsNotConstructed)
}

// MinKm returns the starting radius.
func (p RadiusPolicy) MinKm() float64 {
	return p.minKm
}

// MaxKm returns the escalation ceiling.
func (p RadiusPolicy) MaxKm() float64 {
	return p.maxKm
}

// StepKm returns the escalation increment.
func (p RadiusPolicy) StepKm() float64 {
	return p.stepKm
}

// MaxRounds returns the bound on query rounds the escalation loop can
// perform: ceil((max-min)/step) + 1.
func (p RadiusPolicy) MaxRounds() int {
	return int(math.Ceil((p.maxKm-p.minKm)/p.stepKm)) + 1
}

func (p *RadiusPolicy) setMin(minKm float64) error {
	if minKm <= 0 {
		return errs.NewValueIsInvalidError("minRadiusKm")
	}
	p.minKm = minKm
	return nil
}

func (p *RadiusPolicy) setMax(maxKm, minKm float64) error {
	if maxKm < minKm || maxKm > RadiusCeilingKm {
		return errs.NewValueIsOutOfRangeError("maxRadiusKm", maxKm, minKm, RadiusCeilingKm)
	}
	p.maxKm = maxKm
	return nil
}

func (p *RadiusPolicy) setStep(stepKm float64) error {
	if stepKm <= 0 {
		return errs.NewValueIsInvalidError("stepKm")
	}
	p.stepKm = stepKm
	return nil
}
