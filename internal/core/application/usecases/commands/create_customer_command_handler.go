package commands

import (
	"context"

	"distribution/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration. New customers start with zero credit used.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command and returns the
// persisted aggregate.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context,
	cmd CreateCustomerCommand) (*customer.Customer, error) {
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

	aggregate, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.TaxCode(),
		cmd.Address(), cmd.Phone(), cmd.Email(), cmd.CreditLimit())
	if err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
