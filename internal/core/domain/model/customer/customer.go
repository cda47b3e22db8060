package customer

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the credit-ledger aggregate root. It carries the customer's
// identity and contact details together with the credit pair
// (creditLimit, creditUsed) that every order-approval decision is made
// against.
//
// Invariants:
//   - creditLimit and creditUsed are non-negative
//   - creditUsed <= creditLimit after every committed Reserve
//   - only Reserve and Release mutate the credit pair
type Customer struct {
	id          kernel.UUID
	name        string
	taxCode     string
	address     string
	phone       string
	email       string
	creditLimit int64
	creditUsed  int64

	isConstructed bool
}

// NewCustomer creates a customer with the given credit limit and zero used
// credit. Name is required and the limit must be non-negative.
func NewCustomer(id kernel.UUID, name, taxCode, address, phone, email string, creditLimit int64) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	c.taxCode = taxCode
	c.address = address
	c.phone = phone
	c.email = email
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence, including its
// current used credit.
func RestoreCustomer(id kernel.UUID, name, taxCode, address, phone, email string,
	creditLimit, creditUsed int64) (*Customer, error) {
	c, err := NewCustomer(id, name, taxCode, address, phone, email, creditLimit)
	if err != nil {
		return nil, err
	}

	if creditUsed < 0 || creditUsed > creditLimit {
		return nil, errs.NewValueIsInvalidErrorWithCause("creditUsed",
			fmt.Errorf("%d is outside [0, %d]", creditUsed, creditLimit))
	}
	c.creditUsed = creditUsed
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// TaxCode returns the customer's tax code ("" when unknown).
func (c *Customer) TaxCode() string { return c.taxCode }

// Address returns the customer's address ("" when unknown).
func (c *Customer) Address() string { return c.address }

// Phone returns the customer's phone number ("" when unknown).
func (c *Customer) Phone() string { return c.phone }

// Email returns the customer's notification address ("" when none registered).
func (c *Customer) Email() string { return c.email }

// CreditLimit returns the credit limit in minor currency units.
func (c *Customer) CreditLimit() int64 { return c.creditLimit }

// CreditUsed returns the credit currently in use in minor currency units.
func (c *Customer) CreditUsed() int64 { return c.creditUsed }

// CreditRemaining returns the credit still available for reservation.
func (c *Customer) CreditRemaining() int64 {
	return c.creditLimit - c.creditUsed
}

// Reserve attempts to hold amount against the customer's credit line.
// The reservation is granted iff amount fits into the remaining credit, in
// which case creditUsed is increased by amount. On denial the ledger is
// left untouched. A denial is a valid outcome, not an error.
func (c *Customer) Reserve(amount int64) bool {
	if amount < 0 {
		return false
	}
	if amount > c.CreditRemaining() {
		return false
	}
	c.creditUsed += amount
	return true
}

// Release returns previously held credit to the customer. Releasing more
// than is currently used clamps at zero; the ledger never goes negative.
func (c *Customer) Release(amount int64) {
	if amount <= 0 {
		return
	}
	if amount > c.creditUsed {
		c.creditUsed = 0
		return
	}
	c.creditUsed -= amount
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setCreditLimit(limit int64) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("creditLimit",
			fmt.Errorf("%d is negative", limit))
	}
	c.creditLimit = limit
	return nil
}
