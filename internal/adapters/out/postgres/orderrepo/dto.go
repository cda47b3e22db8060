// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This package implements the repository pattern for
// the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates, indexed for querying by customer and status.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID `gorm:"type:uuid;index"`
	CustomerName       string
	Product            string `gorm:"index"`
	QuantityHundredths int64
	DeliveryDate       time.Time
	ExpiresAt          *time.Time
	Region             string
	PickupLocation     string
	DeliveryMethod     string
	Vehicle            string
	Status             int `gorm:"index"`
	ApprovalStatus     int
	CreditHold         int64
	IsLocked           bool
	ApprovedBy         string
	ApprovedAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		CustomerName:       aggregate.CustomerName(),
		Product:            aggregate.Product(),
		QuantityHundredths: aggregate.Quantity().Hundredths(),
		DeliveryDate:       aggregate.DeliveryDate(),
		ExpiresAt:          aggregate.ExpiresAt(),
		Region:             aggregate.Region(),
		PickupLocation:     aggregate.PickupLocation(),
		DeliveryMethod:     aggregate.DeliveryMethod(),
		Vehicle:            aggregate.Vehicle(),
		Status:             int(aggregate.Status()),
		ApprovalStatus:     int(aggregate.ApprovalStatus()),
		CreditHold:         aggregate.CreditHold(),
		IsLocked:           aggregate.IsLocked(),
		ApprovedBy:         aggregate.ApprovedBy(),
		ApprovedAt:         aggregate.ApprovedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantityFromHundredths(dto.QuantityHundredths)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.CustomerName, dto.Product, quantity,
		dto.DeliveryDate, dto.ExpiresAt, dto.Region, dto.PickupLocation,
		dto.DeliveryMethod, dto.Vehicle,
		order.Status(dto.Status), order.ApprovalStatus(dto.ApprovalStatus),
		dto.CreditHold, dto.IsLocked, dto.ApprovedBy, dto.ApprovedAt)
}
