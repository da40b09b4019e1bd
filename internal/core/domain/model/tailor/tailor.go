package tailor

import (
	"errors"
	"fmt"
	"slices"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

// Domain errors for tailor construction.
var (
	// ErrNameIsRequired is returned when attempting to create a tailor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTailorIsNotConstructed is returned when using an improperly initialized Tailor.
	ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor or RestoreTailor constructor")
)

// Status represents a tailor's account standing. Only Active tailors are
// discoverable.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota
	// Active means the tailor is taking work and is discoverable.
	Active
	// Inactive means the tailor paused their profile.
	Inactive
	// Suspended means the platform disabled the tailor.
	Suspended
)

// Validate checks that the status is one of the recognized account states.
func (s Status) Validate() error {
	if s != Active && s != Inactive && s != Suspended {
		return errs.NewValueIsInvalidErrorWithCause("tailorStatus",
			fmt.Errorf("%d is not a valid tailor status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	case Suspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}

// Capabilities describes the work a tailor takes on: which garment types they
// specialize in and whether they can supply the fabric themselves.
type Capabilities struct {
	specializations []string
	providesFabric  bool
}

// NewCapabilities creates a capability set. Specializations are copied;
// an empty list is allowed and matches no garment-type filter.
func NewCapabilities(specializations []string, providesFabric bool) Capabilities {
	return Capabilities{
		specializations: slices.Clone(specializations),
		providesFabric:  providesFabric,
	}
}

// Specializations returns a copy of the garment types the tailor lists.
func (c Capabilities) Specializations() []string {
	return slices.Clone(c.specializations)
}

// ProvidesFabric reports whether the tailor can supply fabric.
func (c Capabilities) ProvidesFabric() bool {
	return c.providesFabric
}

// Specializes reports whether the tailor lists the given garment type.
func (c Capabilities) Specializes(garmentType string) bool {
	return slices.Contains(c.specializations, garmentType)
}

// Tailor is the provider read model: a capability-bearing, geolocated actor
// discoverable via proximity search. The account service owns the write side;
// this core reads it and additionally persists a projection for discovery.
//
// Invariants:
//   - must have a valid id and a non-empty display name
//   - location is optional; a tailor without one is never discoverable
//   - only Active tailors are considered by discovery
type Tailor struct {
	id           kernel.UUID
	name         string
	status       Status
	location     *kernel.GeoPoint
	capabilities Capabilities
	rating       float64

	guard guard.ConstructorGuard
}

// NewTailor creates an Active tailor profile. Location may be nil for tailors
// who have not shared coordinates yet; they stay undiscoverable until they
// do. Rating is informational only and defaults to zero for new profiles.
func NewTailor(id kernel.UUID, name string, location *kernel.GeoPoint, capabilities Capabilities) (*Tailor, error) {
	t := &Tailor{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setLocation(location),
	); err != nil {
		return nil, err
	}

	t.capabilities = capabilities
	return t, nil
}

// RestoreTailor reconstructs a tailor from persistence, including status and
// rating. Used only by repository mapping code.
func RestoreTailor(
	id kernel.UUID,
	name string,
	status Status,
	location *kernel.GeoPoint,
	capabilities Capabilities,
	rating float64,
) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.status = status
	t.capabilities = capabilities
	t.rating = rating
	return t, nil
}

// Validate ensures the Tailor was created through a constructor.
func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

// IsEqual compares two tailors by their unique identifiers.
func (t *Tailor) IsEqual(other *Tailor) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tailor's unique identifier.
func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// Name returns the display name.
func (t *Tailor) Name() string {
	return t.name
}

// Status returns the account standing.
func (t *Tailor) Status() Status {
	return t.status
}

// Location returns the tailor's coordinates, or nil if none are shared.
func (t *Tailor) Location() *kernel.GeoPoint {
	return t.location
}

// Capabilities returns the tailor's capability set.
func (t *Tailor) Capabilities() Capabilities {
	return t.capabilities
}

// Rating returns the informational rating.
func (t *Tailor) Rating() float64 {
	return t.rating
}

// IsDiscoverable reports whether proximity search may consider this tailor:
// the account must be Active and a location must be shared.
func (t *Tailor) IsDiscoverable() bool {
	return t.status == Active && t.location != nil
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Tailor) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	loc := *location
	t.location = &loc
	return nil
}
