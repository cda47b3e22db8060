package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrInspectShipmentCommandIsNotConstructed = errors.New(
		"InspectShipmentCommand must be created via NewInspectShipmentCommand constructor",
	)
	ErrInspectorIsRequired = errors.New("inspector is required")
)

// InspectShipmentCommand represents a quality inspection decision on a
// shipment. Receipt is gated on an approved inspection.
type InspectShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	approve     bool
	inspector   string
	inspectedAt time.Time

	guard guard.ConstructorGuard
}

// NewInspectShipmentCommand creates a command to record an inspection
// decision. Validates that the shipment ID is valid and the inspector is
// identified.
func NewInspectShipmentCommand(shipmentID kernel.UUID, approve bool, inspector string,
	inspectedAt time.Time) (InspectShipmentCommand, error) {
	cmd := InspectShipmentCommand{
		approve:     approve,
		inspectedAt: inspectedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setInspector(inspector),
	); err != nil {
		return InspectShipmentCommand{}, err
	}

	if cmd.inspectedAt.IsZero() {
		cmd.inspectedAt = time.Now()
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InspectShipmentCommand) Validate() error {
	return c.guard.Validate(ErrInspectShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the inspected shipment.
func (c InspectShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Approve reports whether the inspection passed.
func (c InspectShipmentCommand) Approve() bool {
	return c.approve
}

// Inspector returns the identity of the inspecting staff member.
func (c InspectShipmentCommand) Inspector() string {
	return c.inspector
}

// InspectedAt returns the inspection timestamp.
func (c InspectShipmentCommand) InspectedAt() time.Time {
	return c.inspectedAt
}

func (c *InspectShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *InspectShipmentCommand) setInspector(inspector string) error {
	if inspector == "" {
		return ErrInspectorIsRequired
	}

	c.inspector = inspector
	return nil
}
