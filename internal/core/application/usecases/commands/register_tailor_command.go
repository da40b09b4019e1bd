package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var (
	ErrRegisterTailorCommandIsNotConstructed = errors.New(
		"RegisterTailorCommand must be created via NewRegisterTailorCommand constructor",
	)
	ErrTailorNameIsRequired = errors.New("tailor name is required")
)

// RegisterTailorCommand represents a request to register a tailor on the
// marketplace with their workshop location and capabilities.
type RegisterTailorCommand struct { //nolint:recvcheck //using for validation
	tailorID        kernel.UUID
	name            string
	location        *kernel.GeoPoint
	specializations []string
	providesFabric  bool

	guard guard.ConstructorGuard
}

// NewRegisterTailorCommand creates a command to register a new tailor.
// The location is optional; a tailor without one is simply never returned
// by proximity discovery.
func NewRegisterTailorCommand(
	tailorID kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	specializations []string,
	providesFabric bool,
) (RegisterTailorCommand, error) {
	cmd := RegisterTailorCommand{
		specializations: specializations,
		providesFabric:  providesFabric,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTailorID(tailorID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return RegisterTailorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTailorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTailorCommandIsNotConstructed)
}

// TailorID returns the unique identifier for the new tailor.
func (c RegisterTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Name returns the tailor's display name.
func (c RegisterTailorCommand) Name() string {
	return c.name
}

// Location returns the workshop location, or nil when none was provided.
func (c RegisterTailorCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Specializations returns the garment types the tailor works with.
func (c RegisterTailorCommand) Specializations() []string {
	return c.specializations
}

// ProvidesFabric reports whether the tailor supplies fabric themselves.
func (c RegisterTailorCommand) ProvidesFabric() bool {
	return c.providesFabric
}

func (c *RegisterTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}

func (c *RegisterTailorCommand) setName(name string) error {
	if name == "" {
		return ErrTailorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTailorCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
