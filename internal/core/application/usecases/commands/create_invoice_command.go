package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrInvoiceCustomerIsRequired = errors.New("invoice customer is required")
	ErrInvoiceAmountIsInvalid    = errors.New("invoice amount must not be negative")
	ErrInvoiceDueDateIsRequired  = errors.New("invoice due date is required")
)

// CreateInvoiceCommand represents an operator-entered invoice, outside the
// automatic issuance on shipment receipt. An empty number falls back to
// the one derived from the invoice ID.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	number    string
	customer  string
	amount    int64
	dueDate   time.Time
	status    invoice.Status

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to record a manual invoice.
// Validates that the ID is valid, the customer is named, the amount is not
// negative, the due date is set and the status is a known one.
func NewCreateInvoiceCommand(invoiceID kernel.UUID, number, customer string, amount int64,
	dueDate time.Time, status invoice.Status) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setCustomer(customer),
		cmd.setAmount(amount),
		cmd.setDueDate(dueDate),
		cmd.setStatus(status),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Number returns the operator-supplied invoice number, possibly empty.
func (c CreateInvoiceCommand) Number() string {
	return c.number
}

// Customer returns the billed customer's name.
func (c CreateInvoiceCommand) Customer() string {
	return c.customer
}

// Amount returns the billed amount in minor currency units.
func (c CreateInvoiceCommand) Amount() int64 {
	return c.amount
}

// DueDate returns the payment due date.
func (c CreateInvoiceCommand) DueDate() time.Time {
	return c.dueDate
}

// Status returns the initial payment status.
func (c CreateInvoiceCommand) Status() invoice.Status {
	return c.status
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrInvoiceCustomerIsRequired
	}

	c.customer = customer
	return nil
}

func (c *CreateInvoiceCommand) setAmount(amount int64) error {
	if amount < 0 {
		return ErrInvoiceAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreateInvoiceCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return ErrInvoiceDueDateIsRequired
	}

	c.dueDate = dueDate
	return nil
}

func (c *CreateInvoiceCommand) setStatus(status invoice.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
