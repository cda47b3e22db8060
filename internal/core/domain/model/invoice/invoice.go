package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// NumberFromID derives the invoice number from the invoice identifier:
// "INV-" plus the first eight hex digits of the UUID. Uniqueness inherits
// from the UUID; the database keeps a unique index as a backstop.
func NumberFromID(id kernel.UUID) string {
	return "INV-" + strings.ToUpper(id.Bytes().String()[:8])
}

// Invoice is the billing invoice aggregate root. The customer is a name
// snapshot rather than a reference, matching how downstream billing
// filters records.
type Invoice struct {
	id        kernel.UUID
	number    string
	customer  string
	amount    int64
	dueDate   time.Time
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewInvoice creates an unpaid invoice with a number derived from its id.
// Used by the system issuance path on shipment receipt.
func NewInvoice(id kernel.UUID, customer string, amount int64, dueDate time.Time,
	createdAt time.Time) (*Invoice, error) {
	return newInvoice(id, NumberFromID(id), customer, amount, dueDate, StatusUnpaid, createdAt)
}

// NewManualInvoice creates an operator-entered invoice. An empty number
// falls back to the derived one and an invalid status to unpaid is the
// caller's responsibility to pre-validate; here both are checked strictly.
func NewManualInvoice(id kernel.UUID, number, customer string, amount int64, dueDate time.Time,
	status Status, createdAt time.Time) (*Invoice, error) {
	if number == "" {
		number = NumberFromID(id)
	}
	return newInvoice(id, number, customer, amount, dueDate, status, createdAt)
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(id kernel.UUID, number, customer string, amount int64, dueDate time.Time,
	status Status, createdAt time.Time) (*Invoice, error) {
	return newInvoice(id, number, customer, amount, dueDate, status, createdAt)
}

func newInvoice(id kernel.UUID, number, customer string, amount int64, dueDate time.Time,
	status Status, createdAt time.Time) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customer == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	if dueDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("dueDate")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		customer:      customer,
		amount:        amount,
		dueDate:       dueDate,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice was created through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID { return i.id }

// Number returns the unique invoice number.
func (i *Invoice) Number() string { return i.number }

// Customer returns the billed customer's name.
func (i *Invoice) Customer() string { return i.customer }

// Amount returns the billed amount in minor currency units.
func (i *Invoice) Amount() int64 { return i.amount }

// DueDate returns the payment due date.
func (i *Invoice) DueDate() time.Time { return i.dueDate }

// Status returns the payment state.
func (i *Invoice) Status() Status { return i.status }

// CreatedAt returns the issuance timestamp.
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }

// MarkOverdue moves an unpaid invoice past its due date to overdue.
// Overdue means the due date lies strictly before the start of now's
// calendar day in now's location, so an invoice due today is never marked.
// Paid and already overdue invoices are left untouched; returns whether
// the status changed.
func (i *Invoice) MarkOverdue(now time.Time) bool {
	if i.status != StatusUnpaid {
		return false
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if !i.dueDate.Before(today) {
		return false
	}
	i.status = StatusOverdue
	return true
}
