package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/shipment"
)

// CopyShipmentCommandHandler handles shipment duplication. Only the route
// (order link, locations, vehicle, notes) carries over; delivery progress,
// inspection outcome and receipt stamps do not.
type CopyShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCopyShipmentCommandHandler creates a handler for shipment duplication.
func NewCopyShipmentCommandHandler(uowFactory ShipmentUoWFactory) CopyShipmentCommandHandler {
	return CopyShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplication command and returns the fresh draft.
func (h CopyShipmentCommandHandler) Handle(ctx context.Context,
	cmd CopyShipmentCommand) (*shipment.Shipment, error) {
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

	source, err := uow.ShipmentRepository().Get(ctx, cmd.SourceID())
	if err != nil {
		return nil, err
	}

	duplicate, err := shipment.NewShipment(cmd.CopyID(), source.OrderID(),
		source.PickupLocation(), source.DropoffLocation(), source.Vehicle(), source.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, duplicate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return duplicate, nil
}
