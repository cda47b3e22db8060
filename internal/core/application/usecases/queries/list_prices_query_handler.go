package queries

import (
	"context"

	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPricesQueryHandler retrieves price list read models.
type ListPricesQueryHandler struct {
	db *gorm.DB
}

// NewListPricesQueryHandler creates a handler for price list queries.
func NewListPricesQueryHandler(db *gorm.DB) ListPricesQueryHandler {
	return ListPricesQueryHandler{db: db}
}

// Handle executes the query. Entries are sorted by scope, most general
// first within a product type.
func (h ListPricesQueryHandler) Handle(ctx context.Context,
	query ListPricesQuery) ([]ListPricesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			product_type,
			region,
			location,
			per_unit
		FROM prices
		WHERE 1=1
	`
	args := make([]any, 0, 1)

	if query.ProductType() != "" {
		sql += " AND product_type = ?"
		args = append(args, query.ProductType())
	}
	sql += " ORDER BY product_type, region, location"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]ListPricesQueryResponse, 0)
	for rows.Next() {
		var p ListPricesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&p.ProductType,
			&p.Region,
			&p.Location,
			&p.PerUnit,
		)
		if err != nil {
			return nil, err
		}

		priceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = priceID

		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}
