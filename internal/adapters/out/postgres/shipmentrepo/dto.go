// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The code carries a unique index for lookup by the
// human-readable identifier.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Code             string    `gorm:"uniqueIndex"`
	PickupLocation   string
	DropoffLocation  string
	Vehicle          string
	Notes            string
	Status           int `gorm:"index"`
	InspectionStatus int
	InspectedBy      string
	InspectedAt      *time.Time
	ReceivedBy       string
	ReceivedAt       *time.Time
	CreatedAt        time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Code:             aggregate.Code(),
		PickupLocation:   aggregate.PickupLocation(),
		DropoffLocation:  aggregate.DropoffLocation(),
		Vehicle:          aggregate.Vehicle(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		InspectionStatus: int(aggregate.InspectionStatus()),
		InspectedBy:      aggregate.InspectedBy(),
		InspectedAt:      aggregate.InspectedAt(),
		ReceivedBy:       aggregate.ReceivedBy(),
		ReceivedAt:       aggregate.ReceivedAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, dto.Code,
		dto.PickupLocation, dto.DropoffLocation, dto.Vehicle, dto.Notes,
		shipment.Status(dto.Status), shipment.InspectionStatus(dto.InspectionStatus),
		dto.InspectedBy, dto.InspectedAt, dto.ReceivedBy, dto.ReceivedAt, dto.CreatedAt)
}
