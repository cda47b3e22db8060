package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"
	"distribution/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a partial update of a shipment. Nil
// fields are left untouched. The shipment code and inspection outcome
// cannot be patched; inspection and receipt have dedicated commands.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	orderID         *kernel.UUID
	pickupLocation  *string
	dropoffLocation *string
	vehicle         *string
	notes           *string
	status          *shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to patch a shipment. Only
// the shipment ID is required; every other field is optional.
func NewUpdateShipmentCommand(shipmentID kernel.UUID, orderID *kernel.UUID,
	pickupLocation, dropoffLocation, vehicle, notes *string,
	status *shipment.Status) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		orderID:         orderID,
		pickupLocation:  pickupLocation,
		dropoffLocation: dropoffLocation,
		vehicle:         vehicle,
		notes:           notes,
		status:          status,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to patch.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the order to relink the shipment to, or nil.
func (c UpdateShipmentCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// PickupLocation returns the new pickup location, or nil.
func (c UpdateShipmentCommand) PickupLocation() *string {
	return c.pickupLocation
}

// DropoffLocation returns the new dropoff location, or nil.
func (c UpdateShipmentCommand) DropoffLocation() *string {
	return c.dropoffLocation
}

// Vehicle returns the new vehicle, or nil.
func (c UpdateShipmentCommand) Vehicle() *string {
	return c.vehicle
}

// Notes returns the new notes, or nil.
func (c UpdateShipmentCommand) Notes() *string {
	return c.notes
}

// Status returns the new delivery status, or nil.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
