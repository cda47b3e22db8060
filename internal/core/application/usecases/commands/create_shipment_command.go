package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to schedule a shipment for an
// existing order. The shipment code is derived from the shipment ID.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	orderID         kernel.UUID
	pickupLocation  string
	dropoffLocation string
	vehicle         string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to schedule a shipment.
// Route and vehicle validation happens in the shipment aggregate.
func NewCreateShipmentCommand(shipmentID, orderID kernel.UUID,
	pickupLocation, dropoffLocation, vehicle, notes string) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		pickupLocation:  pickupLocation,
		dropoffLocation: dropoffLocation,
		vehicle:         vehicle,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the identifier of the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupLocation returns the shipment's pickup location.
func (c CreateShipmentCommand) PickupLocation() string {
	return c.pickupLocation
}

// DropoffLocation returns the shipment's dropoff location.
func (c CreateShipmentCommand) DropoffLocation() string {
	return c.dropoffLocation
}

// Vehicle returns the assigned vehicle.
func (c CreateShipmentCommand) Vehicle() string {
	return c.vehicle
}

// Notes returns the free-form dispatcher notes.
func (c CreateShipmentCommand) Notes() string {
	return c.notes
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
