package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrCreditLimitIsInvalid   = errors.New("credit limit must not be negative")
)

// CreateCustomerCommand represents a request to register a new customer
// with an empty credit ledger.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	taxCode     string
	address     string
	phone       string
	email       string
	creditLimit int64

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Validates that the ID is valid, the name is not empty, and the credit
// limit is not negative.
func NewCreateCustomerCommand(customerID kernel.UUID, name, taxCode, address, phone, email string,
	creditLimit int64) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		taxCode: taxCode,
		address: address,
		phone:   phone,
		email:   email,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setCreditLimit(creditLimit),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// TaxCode returns the customer's tax registration code.
func (c CreateCustomerCommand) TaxCode() string {
	return c.taxCode
}

// Address returns the customer's billing address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Phone returns the customer's contact phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Email returns the customer's notification email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// CreditLimit returns the customer's credit ceiling in minor currency units.
func (c CreateCustomerCommand) CreditLimit() int64 {
	return c.creditLimit
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setCreditLimit(creditLimit int64) error {
	if creditLimit < 0 {
		return ErrCreditLimitIsInvalid
	}

	c.creditLimit = creditLimit
	return nil
}
