package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery retrieves invoices with an optional customer-name
// substring filter.
type ListInvoicesQuery struct {
	actor    ports.Actor
	customer string
	status   *invoice.Status

	guard guard.ConstructorGuard
}

// NewListInvoicesQuery creates a query to list invoices.
func NewListInvoicesQuery(actor ports.Actor, customer string, status *invoice.Status) ListInvoicesQuery {
	return ListInvoicesQuery{
		actor:    actor,
		customer: customer,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q ListInvoicesQuery) Actor() ports.Actor {
	return q.actor
}

// Customer returns the customer-name substring filter, possibly empty.
func (q ListInvoicesQuery) Customer() string {
	return q.customer
}

// Status returns the payment status filter, or nil.
func (q ListInvoicesQuery) Status() *invoice.Status {
	return q.status
}

// ListInvoicesQueryResponse represents one invoice in the read model.
type ListInvoicesQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Customer  string
	Amount    int64
	DueDate   time.Time
	Status    invoice.Status
	CreatedAt time.Time
}
