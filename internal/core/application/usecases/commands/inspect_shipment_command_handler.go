package commands

import (
	"context"

	"distribution/internal/core/domain/model/shipment"
)

// InspectShipmentCommandHandler handles quality inspection decisions.
// Repeating a decision restamps the inspector and timestamp; an approved
// shipment may later be rejected again as long as it has not been
// received.
type InspectShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewInspectShipmentCommandHandler creates a handler for inspection decisions.
func NewInspectShipmentCommandHandler(uowFactory ShipmentUoWFactory) InspectShipmentCommandHandler {
	return InspectShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection command and returns the updated shipment.
func (h InspectShipmentCommandHandler) Handle(ctx context.Context,
	cmd InspectShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inspected, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = inspected.Inspect(cmd.Approve(), cmd.Inspector(), cmd.InspectedAt()); err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, inspected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inspected, nil
}
