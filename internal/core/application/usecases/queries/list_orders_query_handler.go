package queries

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// expiryWindow is how far ahead the expiring filter looks.
const expiryWindow = 72 * time.Hour

// ListOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by delivery date. A
// customer-scoped actor without a linked customer gets an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context,
	query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerID == nil {
		return orders, nil
	}

	sql := `
		SELECT
			id,
			customer_id,
			customer_name,
			product,
			quantity_hundredths,
			delivery_date,
			expires_at,
			region,
			pickup_location,
			delivery_method,
			vehicle,
			status,
			approval_status,
			credit_hold,
			is_locked,
			approved_by,
			approved_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Actor().IsCustomerScoped() {
		sql += " AND customer_id = ?"
		args = append(args, query.Actor().CustomerID.Bytes())
	}
	if query.Product() != "" {
		sql += " AND product ILIKE ?"
		args = append(args, "%"+query.Product()+"%")
	}
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, int(*query.Status()))
	}
	if query.Locked() != nil {
		sql += " AND is_locked = ?"
		args = append(args, *query.Locked())
	}
	if query.Expiring() {
		sql += " AND COALESCE(expires_at, delivery_date) < ?"
		args = append(args, time.Now().Add(expiryWindow))
	}
	sql += " ORDER BY delivery_date"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o ListOrdersQueryResponse
		var id, customerID uuid.UUID
		var status, approvalStatus int

		err = rows.Scan(
			&id,
			&customerID,
			&o.CustomerName,
			&o.Product,
			&o.QuantityHundredths,
			&o.DeliveryDate,
			&o.ExpiresAt,
			&o.Region,
			&o.PickupLocation,
			&o.DeliveryMethod,
			&o.Vehicle,
			&status,
			&approvalStatus,
			&o.CreditHold,
			&o.IsLocked,
			&o.ApprovedBy,
			&o.ApprovedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID

		buyerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		o.CustomerID = buyerID

		o.Status = order.Status(status)
		o.ApprovalStatus = order.ApprovalStatus(approvalStatus)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
