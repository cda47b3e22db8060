package ports

import "distribution/internal/core/domain/model/kernel"

// Role classifies the authenticated caller supplied by the upstream
// identity collaborator.
type Role string

const (
	// RoleStaff may see and act on all customers' records.
	RoleStaff Role = "staff"

	// RoleCustomer is a customer-scoped account: list results are limited
	// to the linked customer, and an account without a linked customer
	// sees nothing (fail closed).
	RoleCustomer Role = "customer"
)

// Actor describes the authenticated caller of an operation. Token
// verification happens upstream; the core only consumes this descriptor
// for scope filtering.
type Actor struct {
	Role         Role
	CustomerID   *kernel.UUID
	CustomerName string
}

// IsCustomerScoped reports whether list results must be filtered to the
// actor's own customer.
func (a Actor) IsCustomerScoped() bool {
	return a.Role == RoleCustomer
}
