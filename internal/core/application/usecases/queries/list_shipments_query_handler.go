package queries

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment read models joined with
// their order's product.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest
// first. Customer-scoped actors only see shipments of their own orders.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context,
	query ListShipmentsQuery) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, 0)

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerID == nil {
		return shipments, nil
	}

	sql := `
		SELECT
			s.id,
			s.order_id,
			s.code,
			o.product,
			s.pickup_location,
			s.dropoff_location,
			s.vehicle,
			s.notes,
			s.status,
			s.inspection_status,
			s.inspected_by,
			s.inspected_at,
			s.received_by,
			s.received_at,
			s.created_at
		FROM shipments s
		JOIN orders o ON o.id = s.order_id
		WHERE 1=1
	`
	args := make([]any, 0, 5)

	if query.Actor().IsCustomerScoped() {
		sql += " AND o.customer_id = ?"
		args = append(args, query.Actor().CustomerID.Bytes())
	}
	if query.OrderID() != nil {
		sql += " AND s.order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND s.status = ?"
		args = append(args, int(*query.Status()))
	}
	if query.InspectionStatus() != nil {
		sql += " AND s.inspection_status = ?"
		args = append(args, int(*query.InspectionStatus()))
	}
	if query.Received() != nil {
		if *query.Received() {
			sql += " AND s.received_at IS NOT NULL"
		} else {
			sql += " AND s.received_at IS NULL"
		}
	}
	if query.Product() != "" {
		sql += " AND o.product ILIKE ?"
		args = append(args, "%"+query.Product()+"%")
	}
	sql += " ORDER BY s.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s ListShipmentsQueryResponse
		var id, orderID uuid.UUID
		var status, inspectionStatus int

		err = rows.Scan(
			&id,
			&orderID,
			&s.Code,
			&s.Product,
			&s.PickupLocation,
			&s.DropoffLocation,
			&s.Vehicle,
			&s.Notes,
			&status,
			&inspectionStatus,
			&s.InspectedBy,
			&s.InspectedAt,
			&s.ReceivedBy,
			&s.ReceivedAt,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.ID = shipmentID

		linkedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		s.OrderID = linkedOrderID

		s.Status = shipment.Status(status)
		s.InspectionStatus = shipment.InspectionStatus(inspectionStatus)
		shipments = append(shipments, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
