package commands

import (
	"context"
)

// DeleteShipmentCommandHandler handles shipment deletion. The aggregate's
// EnsureDeletable guard keeps delivered shipments on record for invoice
// traceability.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Fails with a not-found error for
// an unknown shipment and a precondition error for a delivered one.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	doomed, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = doomed.EnsureDeletable(); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Remove(ctx, doomed.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
