package queries

import (
	"context"
	"database/sql"
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"
	"distribution/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckShipmentCodeQueryHandler resolves a tracking code to its shipment.
type CheckShipmentCodeQueryHandler struct {
	db *gorm.DB
}

// NewCheckShipmentCodeQueryHandler creates a handler for code lookups.
func NewCheckShipmentCodeQueryHandler(db *gorm.DB) CheckShipmentCodeQueryHandler {
	return CheckShipmentCodeQueryHandler{db: db}
}

// Handle executes the lookup. Customer-scoped actors can only resolve
// codes of shipments on their own orders; anything else is NotFound, so a
// code probe reveals nothing about other customers' shipments.
func (h CheckShipmentCodeQueryHandler) Handle(ctx context.Context,
	query CheckShipmentCodeQuery) (ListShipmentsQueryResponse, error) {
	var found ListShipmentsQueryResponse

	if err := query.Validate(); err != nil {
		return found, err
	}

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerID == nil {
		return found, errs.NewObjectNotFoundError("code", query.Code())
	}

	sqlText := `
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
		WHERE s.code = ?
	`
	args := []any{query.Code()}

	if query.Actor().IsCustomerScoped() {
		sqlText += " AND o.customer_id = ?"
		args = append(args, query.Actor().CustomerID.Bytes())
	}

	row := h.db.WithContext(ctx).Raw(sqlText, args...).Row()

	var id, orderID uuid.UUID
	var status, inspectionStatus int

	err := row.Scan(
		&id,
		&orderID,
		&found.Code,
		&found.Product,
		&found.PickupLocation,
		&found.DropoffLocation,
		&found.Vehicle,
		&found.Notes,
		&status,
		&inspectionStatus,
		&found.InspectedBy,
		&found.InspectedAt,
		&found.ReceivedBy,
		&found.ReceivedAt,
		&found.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return found, errs.NewObjectNotFoundError("code", query.Code())
	}
	if err != nil {
		return found, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return found, err
	}
	found.ID = shipmentID

	linkedOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return found, err
	}
	found.OrderID = linkedOrderID

	found.Status = shipment.Status(status)
	found.InspectionStatus = shipment.InspectionStatus(inspectionStatus)

	return found, nil
}
