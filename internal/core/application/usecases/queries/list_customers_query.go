package queries

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves customers with an optional name substring
// filter. Customer-scoped actors only ever see their own record.
type ListCustomersQuery struct {
	actor ports.Actor
	name  string

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query to list customers.
func NewListCustomersQuery(actor ports.Actor, name string) ListCustomersQuery {
	return ListCustomersQuery{
		actor: actor,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q ListCustomersQuery) Actor() ports.Actor {
	return q.actor
}

// Name returns the name substring filter, possibly empty.
func (q ListCustomersQuery) Name() string {
	return q.name
}

// ListCustomersQueryResponse represents one customer in the read model,
// including the derived remaining credit.
type ListCustomersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	TaxCode         string
	Address         string
	Phone           string
	Email           string
	CreditLimit     int64
	CreditUsed      int64
	CreditRemaining int64
}
