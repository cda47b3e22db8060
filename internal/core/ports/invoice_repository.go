package ports

import (
	"context"

	"distribution/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// Invoices are never deleted.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate. Fails on a duplicate invoice
	// number (unique index).
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// GetAllUnpaid retrieves all invoices still in unpaid status, for the
	// overdue sweep.
	GetAllUnpaid(ctx context.Context) ([]*invoice.Invoice, error)
}
