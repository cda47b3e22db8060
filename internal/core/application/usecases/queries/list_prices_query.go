package queries

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrListPricesQueryIsNotConstructed = errors.New(
	"ListPricesQuery must be created via NewListPricesQuery constructor",
)

// ListPricesQuery retrieves the price list, optionally filtered to one
// product type.
type ListPricesQuery struct {
	productType string

	guard guard.ConstructorGuard
}

// NewListPricesQuery creates a query to list price entries.
func NewListPricesQuery(productType string) ListPricesQuery {
	return ListPricesQuery{
		productType: productType,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPricesQuery) Validate() error {
	return q.guard.Validate(ErrListPricesQueryIsNotConstructed)
}

// ProductType returns the product type filter, possibly empty.
func (q ListPricesQuery) ProductType() string {
	return q.productType
}

// ListPricesQueryResponse represents one price list entry.
type ListPricesQueryResponse struct {
	ID          kernel.UUID
	ProductType string
	Region      string
	Location    string
	PerUnit     int64
}
