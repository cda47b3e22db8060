package commands

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/pricing"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Prices the order via the three-step fallback, reserves the amount
// against the customer's credit line, and records the resulting decision
// on the order. The customer row is locked for the duration of the
// transaction so concurrent decisions against the same credit line are
// serialized.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, priceResolver)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is confirmed (credit granted) or draft+locked (credit denied)
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	priceResolver ports.PriceResolver
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// PriceResolver for amount calculation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory,
	priceResolver ports.PriceResolver) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		priceResolver: priceResolver,
	}
}

// Handle processes the order placement command. An unresolved price yields
// an amount of 0; the order is still placed. A denied reservation does not
// fail the command: the order is persisted as a locked draft awaiting
// manual review.
func (h CreateOrderCommandHandler) Handle(ctx context.Context,
	cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerID, err := resolveCustomerID(cmd.Actor(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.GetForUpdate(ctx, customerID)
	if err != nil {
		return nil, err
	}

	perUnit, _, err := h.priceResolver.ResolveUnitPrice(ctx, cmd.Product(), cmd.Region(), cmd.PickupLocation())
	if err != nil {
		return nil, err
	}
	amount := pricing.Amount(cmd.Quantity(), perUnit)

	granted := buyer.Reserve(amount)
	if granted {
		if err = customerRepo.Update(ctx, buyer); err != nil {
			return nil, err
		}
	}

	placed, err := order.NewOrder(cmd.OrderID(), buyer.ID(), buyer.Name(), cmd.Product(),
		cmd.Quantity(), cmd.DeliveryDate(), cmd.ExpiresAt(),
		cmd.Region(), cmd.PickupLocation(), cmd.DeliveryMethod(), cmd.Vehicle())
	if err != nil {
		return nil, err
	}

	if err = placed.ApplyCreditDecision(granted, amount); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// resolveCustomerID enforces actor scoping on write operations: a
// customer-scoped actor always acts as its own linked customer, and an
// account without a linked customer is denied (fail closed).
func resolveCustomerID(actor ports.Actor, submitted kernel.UUID) (kernel.UUID, error) {
	if !actor.IsCustomerScoped() {
		return submitted, nil
	}
	if actor.CustomerID == nil {
		return kernel.UUID{}, errs.NewPreconditionFailedError(
			"customer account is not linked to a customer record")
	}
	return *actor.CustomerID, nil
}
