package queries

import (
	"context"

	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCustomersQueryHandler retrieves customer read models from the
// database.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer list queries.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h ListCustomersQueryHandler) Handle(ctx context.Context,
	query ListCustomersQuery) ([]ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]ListCustomersQueryResponse, 0)

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerID == nil {
		return customers, nil
	}

	sql := `
		SELECT
			id,
			name,
			tax_code,
			address,
			phone,
			email,
			credit_limit,
			credit_used,
			credit_limit - credit_used AS credit_remaining
		FROM customers
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Actor().IsCustomerScoped() {
		sql += " AND id = ?"
		args = append(args, query.Actor().CustomerID.Bytes())
	}
	if query.Name() != "" {
		sql += " AND name ILIKE ?"
		args = append(args, "%"+query.Name()+"%")
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c ListCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&c.Name,
			&c.TaxCode,
			&c.Address,
			&c.Phone,
			&c.Email,
			&c.CreditLimit,
			&c.CreditUsed,
			&c.CreditRemaining,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		c.ID = customerID
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
