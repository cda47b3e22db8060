package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrReceiveShipmentCommandIsNotConstructed = errors.New(
		"ReceiveShipmentCommand must be created via NewReceiveShipmentCommand constructor",
	)
	ErrReceiverIsRequired = errors.New("receiver is required")
)

// ReceiveShipmentCommand represents confirmation of physical delivery.
// Receipt completes the order and issues the invoice in one transaction.
type ReceiveShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	receiver   string
	receivedAt time.Time

	guard guard.ConstructorGuard
}

// NewReceiveShipmentCommand creates a command to confirm delivery.
// Validates that the shipment ID is valid and the receiver is identified.
func NewReceiveShipmentCommand(shipmentID kernel.UUID, receiver string,
	receivedAt time.Time) (ReceiveShipmentCommand, error) {
	cmd := ReceiveShipmentCommand{
		receivedAt: receivedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setReceiver(receiver),
	); err != nil {
		return ReceiveShipmentCommand{}, err
	}

	if cmd.receivedAt.IsZero() {
		cmd.receivedAt = time.Now()
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReceiveShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the received shipment.
func (c ReceiveShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Receiver returns the identity of the receiving staff member.
func (c ReceiveShipmentCommand) Receiver() string {
	return c.receiver
}

// ReceivedAt returns the receipt timestamp.
func (c ReceiveShipmentCommand) ReceivedAt() time.Time {
	return c.receivedAt
}

func (c *ReceiveShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ReceiveShipmentCommand) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}

	c.receiver = receiver
	return nil
}
