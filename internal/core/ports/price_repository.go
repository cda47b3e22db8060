package ports

import (
	"context"

	"distribution/internal/core/domain/model/pricing"
)

// PriceRepository persists price list entries. Resolution lives on the
// separate PriceResolver so callers that only look prices up do not see
// the write surface.
type PriceRepository interface {
	// Add persists a new price list entry. Fails on a duplicate
	// (product type, region, location) scope.
	Add(ctx context.Context, entity *pricing.Price) error
}
