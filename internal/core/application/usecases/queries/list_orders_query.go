// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and apply
// actor scoping: customer-scoped actors only see their own records, and an
// account without a linked customer sees nothing.
package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders with optional filters. All filters are
// conjunctive; nil filters are ignored.
type ListOrdersQuery struct {
	actor    ports.Actor
	product  string
	status   *order.Status
	locked   *bool
	expiring bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. The product filter
// matches as a case-insensitive substring. The expiring filter selects
// orders whose expiry (or delivery date when no expiry is set) falls
// within the next 72 hours.
func NewListOrdersQuery(actor ports.Actor, product string, status *order.Status,
	locked *bool, expiring bool) ListOrdersQuery {
	return ListOrdersQuery{
		actor:    actor,
		product:  product,
		status:   status,
		locked:   locked,
		expiring: expiring,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q ListOrdersQuery) Actor() ports.Actor {
	return q.actor
}

// Product returns the product substring filter, possibly empty.
func (q ListOrdersQuery) Product() string {
	return q.product
}

// Status returns the delivery status filter, or nil.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Locked returns the lock flag filter, or nil.
func (q ListOrdersQuery) Locked() *bool {
	return q.locked
}

// Expiring reports whether only soon-expiring orders are wanted.
func (q ListOrdersQuery) Expiring() bool {
	return q.expiring
}

// ListOrdersQueryResponse represents one order in the read model.
type ListOrdersQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	CustomerName       string
	Product            string
	QuantityHundredths int64
	DeliveryDate       time.Time
	ExpiresAt          *time.Time
	Region             string
	PickupLocation     string
	DeliveryMethod     string
	Vehicle            string
	Status             order.Status
	ApprovalStatus     order.ApprovalStatus
	CreditHold         int64
	IsLocked           bool
	ApprovedBy         string
	ApprovedAt         *time.Time
}
