package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves shipments with optional filters. The
// product filter matches the linked order's product as a case-insensitive
// substring.
type ListShipmentsQuery struct {
	actor            ports.Actor
	orderID          *kernel.UUID
	status           *shipment.Status
	inspectionStatus *shipment.InspectionStatus
	received         *bool
	product          string

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query to list shipments. All filters
// are optional and conjunctive.
func NewListShipmentsQuery(actor ports.Actor, orderID *kernel.UUID, status *shipment.Status,
	inspectionStatus *shipment.InspectionStatus, received *bool, product string) ListShipmentsQuery {
	return ListShipmentsQuery{
		actor:            actor,
		orderID:          orderID,
		status:           status,
		inspectionStatus: inspectionStatus,
		received:         received,
		product:          product,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q ListShipmentsQuery) Actor() ports.Actor {
	return q.actor
}

// OrderID returns the order filter, or nil.
func (q ListShipmentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// Status returns the delivery status filter, or nil.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// InspectionStatus returns the inspection filter, or nil.
func (q ListShipmentsQuery) InspectionStatus() *shipment.InspectionStatus {
	return q.inspectionStatus
}

// Received returns the receipt flag filter, or nil.
func (q ListShipmentsQuery) Received() *bool {
	return q.received
}

// Product returns the order product substring filter, possibly empty.
func (q ListShipmentsQuery) Product() string {
	return q.product
}

// ListShipmentsQueryResponse represents one shipment in the read model,
// joined with the product of its order.
type ListShipmentsQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Code             string
	Product          string
	PickupLocation   string
	DropoffLocation  string
	Vehicle          string
	Notes            string
	Status           shipment.Status
	InspectionStatus shipment.InspectionStatus
	InspectedBy      string
	InspectedAt      *time.Time
	ReceivedBy       string
	ReceivedAt       *time.Time
	CreatedAt        time.Time
}
