package commands

import (
	"context"

	"distribution/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler handles partial shipment updates. Relinking
// to another order verifies the target order exists; status changes go
// through the aggregate, which refuses to enter or leave delivered.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment patch and returns the updated aggregate.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context,
	cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
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

	patched, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if cmd.OrderID() != nil && !cmd.OrderID().IsEqual(patched.OrderID()) {
		if _, err = uow.OrderRepository().Get(ctx, *cmd.OrderID()); err != nil {
			return nil, err
		}
		if err = patched.Relink(*cmd.OrderID()); err != nil {
			return nil, err
		}
	}

	if cmd.PickupLocation() != nil {
		if err = patched.ChangePickupLocation(*cmd.PickupLocation()); err != nil {
			return nil, err
		}
	}
	if cmd.DropoffLocation() != nil {
		if err = patched.ChangeDropoffLocation(*cmd.DropoffLocation()); err != nil {
			return nil, err
		}
	}
	if cmd.Vehicle() != nil {
		if err = patched.ChangeVehicle(*cmd.Vehicle()); err != nil {
			return nil, err
		}
	}
	if cmd.Notes() != nil {
		patched.ChangeNotes(*cmd.Notes())
	}
	if cmd.Status() != nil {
		if err = patched.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Update(ctx, patched); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return patched, nil
}
