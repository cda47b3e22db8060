package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrDecideOrderCommandIsNotConstructed = errors.New(
		"DecideOrderCommand must be created via NewDecideOrderCommand constructor",
	)
	ErrApproverIsRequired = errors.New("approver is required")
)

// DecideOrderCommand represents a manual override of an order's credit
// decision by a staff reviewer. Approval re-reserves the order amount on
// the ledger; rejection releases any existing hold and locks the order.
type DecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	approve   bool
	approver  string
	decidedAt time.Time

	guard guard.ConstructorGuard
}

// NewDecideOrderCommand creates a command to manually approve or reject
// an order. Validates that the order ID is valid and the approver is
// identified.
func NewDecideOrderCommand(orderID kernel.UUID, approve bool, approver string,
	decidedAt time.Time) (DecideOrderCommand, error) {
	cmd := DecideOrderCommand{
		approve:   approve,
		decidedAt: decidedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setApprover(approver),
	); err != nil {
		return DecideOrderCommand{}, err
	}

	if cmd.decidedAt.IsZero() {
		cmd.decidedAt = time.Now()
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecideOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under review.
func (c DecideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approve reports whether the reviewer approved the order.
func (c DecideOrderCommand) Approve() bool {
	return c.approve
}

// Approver returns the identity of the reviewing staff member.
func (c DecideOrderCommand) Approver() string {
	return c.approver
}

// DecidedAt returns the decision timestamp.
func (c DecideOrderCommand) DecidedAt() time.Time {
	return c.decidedAt
}

func (c *DecideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecideOrderCommand) setApprover(approver string) error {
	if approver == "" {
		return ErrApproverIsRequired
	}

	c.approver = approver
	return nil
}
