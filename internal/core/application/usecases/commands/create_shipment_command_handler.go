package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles shipment scheduling. The referenced
// order must exist; the shipment starts in draft status with inspection
// pending.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment scheduling.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment scheduling command and returns the
// persisted aggregate. Fails with a not-found error when the referenced
// order does not exist.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context,
	cmd CreateShipmentCommand) (*shipment.Shipment, error) {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	scheduled, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OrderID(),
		cmd.PickupLocation(), cmd.DropoffLocation(), cmd.Vehicle(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, scheduled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return scheduled, nil
}
