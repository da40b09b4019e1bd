package commands

import (
	"context"

	"tailoring/internal/core/domain/model/tailor"
)

// RegisterTailorCommandHandler handles the business logic for onboarding
// tailors. New tailors start in Active status and become discoverable as
// soon as a workshop location is on file.
type RegisterTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewRegisterTailorCommandHandler creates a handler for tailor registration.
// Requires a TailorUoWFactory for transactional persistence.
func NewRegisterTailorCommandHandler(uowFactory TailorUoWFactory) RegisterTailorCommandHandler {
	return RegisterTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor registration command.
func (h *RegisterTailorCommandHandler) Handle(ctx context.Context, cmd RegisterTailorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	capabilities := tailor.NewCapabilities(cmd.Specializations(), cmd.ProvidesFabric())

	aggregate, err := tailor.NewTailor(cmd.TailorID(), cmd.Name(), cmd.Location(), capabilities)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TailorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
