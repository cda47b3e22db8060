package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler handles manual invoice entry.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for manual invoice entry.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual invoice command and returns the persisted
// aggregate. A duplicate invoice number fails on the unique index.
func (h CreateInvoiceCommandHandler) Handle(ctx context.Context,
	cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
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

	entered, err := invoice.NewManualInvoice(cmd.InvoiceID(), cmd.Number(), cmd.Customer(),
		cmd.Amount(), cmd.DueDate(), cmd.Status(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Add(ctx, entered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entered, nil
}
