package commands

import (
	"context"
	"fmt"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/pricing"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// DecideOrderCommandHandler handles manual credit review of an order.
// The ledger is kept consistent with the decision: approving an order that
// holds no credit re-prices it and reserves the amount, and rejecting an
// order releases whatever it held. Both the order and the customer row are
// updated in one transaction.
type DecideOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	priceResolver ports.PriceResolver
}

// NewDecideOrderCommandHandler creates a handler for manual order review.
func NewDecideOrderCommandHandler(uowFactory OrderUoWFactory,
	priceResolver ports.PriceResolver) DecideOrderCommandHandler {
	return DecideOrderCommandHandler{
		uowFactory:    uowFactory,
		priceResolver: priceResolver,
	}
}

// Handle processes the review decision. Approving an already-approved
// order only restamps the reviewer; its existing hold is kept. Approving
// a rejected or pending order reserves the re-priced amount, and fails
// with a precondition error when the customer's remaining credit cannot
// cover it, leaving both aggregates untouched.
func (h DecideOrderCommandHandler) Handle(ctx context.Context,
	cmd DecideOrderCommand) (*order.Order, error) {
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

	reviewed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.Approve() {
		err = h.approve(ctx, uow, reviewed, cmd)
	} else {
		err = h.reject(ctx, uow, reviewed, cmd)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, reviewed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reviewed, nil
}

func (h DecideOrderCommandHandler) approve(ctx context.Context, uow OrderUoW,
	reviewed *order.Order, cmd DecideOrderCommand) error {
	if reviewed.ApprovalStatus() == order.ApprovalApproved {
		// Already holds its credit; only the reviewer stamp changes.
		return reviewed.ApproveManually(cmd.Approver(), reviewed.CreditHold(), cmd.DecidedAt())
	}

	perUnit, _, err := h.priceResolver.ResolveUnitPrice(ctx,
		reviewed.Product(), reviewed.Region(), reviewed.PickupLocation())
	if err != nil {
		return err
	}
	amount := pricing.Amount(reviewed.Quantity(), perUnit)

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.GetForUpdate(ctx, reviewed.CustomerID())
	if err != nil {
		return err
	}

	if !buyer.Reserve(amount) {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"credit limit exceeded: %d remaining, %d required", buyer.CreditRemaining(), amount))
	}

	if err = customerRepo.Update(ctx, buyer); err != nil {
		return err
	}

	return reviewed.ApproveManually(cmd.Approver(), amount, cmd.DecidedAt())
}

func (h DecideOrderCommandHandler) reject(ctx context.Context, uow OrderUoW,
	reviewed *order.Order, cmd DecideOrderCommand) error {
	released, err := reviewed.RejectManually(cmd.Approver(), cmd.DecidedAt())
	if err != nil {
		return err
	}
	if released == 0 {
		return nil
	}

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.GetForUpdate(ctx, reviewed.CustomerID())
	if err != nil {
		return err
	}

	buyer.Release(released)
	return customerRepo.Update(ctx, buyer)
}
