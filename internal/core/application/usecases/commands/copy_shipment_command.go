package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrCopyShipmentCommandIsNotConstructed = errors.New(
	"CopyShipmentCommand must be created via NewCopyShipmentCommand constructor",
)

// CopyShipmentCommand represents a request to duplicate a shipment's route
// onto a fresh draft. The copy gets its own ID and code, pending
// inspection, and no receipt, regardless of the source's state.
type CopyShipmentCommand struct { //nolint:recvcheck //using for validation
	copyID   kernel.UUID
	sourceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCopyShipmentCommand creates a command to duplicate a shipment.
func NewCopyShipmentCommand(copyID, sourceID kernel.UUID) (CopyShipmentCommand, error) {
	cmd := CopyShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCopyID(copyID),
		cmd.setSourceID(sourceID),
	); err != nil {
		return CopyShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CopyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCopyShipmentCommandIsNotConstructed)
}

// CopyID returns the identifier assigned to the duplicate.
func (c CopyShipmentCommand) CopyID() kernel.UUID {
	return c.copyID
}

// SourceID returns the identifier of the shipment being copied.
func (c CopyShipmentCommand) SourceID() kernel.UUID {
	return c.sourceID
}

func (c *CopyShipmentCommand) setCopyID(copyID kernel.UUID) error {
	if err := copyID.Validate(); err != nil {
		return err
	}

	c.copyID = copyID
	return nil
}

func (c *CopyShipmentCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceID = sourceID
	return nil
}
