package ports

import (
	"context"

	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for the credit-ledger
// aggregate.
type CustomerRepository interface {
	// Add persists a new customer aggregate.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForUpdate retrieves a customer with a row-level write lock bound
	// to the current transaction. Every credit reservation or release must
	// load the customer through this method so concurrent decisions against
	// the same credit line are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByName retrieves a customer by its unique display name.
	GetByName(ctx context.Context, name string) (*customer.Customer, error)
}
