package commands

import (
	"context"
)

// MarkOverdueInvoicesCommandHandler sweeps unpaid invoices and flips the
// past-due ones to overdue. Paid and already-overdue invoices are never
// touched.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many invoices were flipped.
func (h MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context,
	cmd MarkOverdueInvoicesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unpaid, err := uow.InvoiceRepository().GetAllUnpaid(ctx)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, inv := range unpaid {
		if !inv.MarkOverdue(cmd.Now()) {
			continue
		}
		if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
			return 0, err
		}
		flipped++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flipped, nil
}
