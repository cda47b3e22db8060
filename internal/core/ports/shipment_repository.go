package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Shipments are the only deletable entity in the system;
// deletion is guarded by the aggregate's EnsureDeletable.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Remove deletes a shipment.
	Remove(ctx context.Context, id kernel.UUID) error
}
