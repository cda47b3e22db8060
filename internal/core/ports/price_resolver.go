package ports

import "context"

// PriceResolver resolves the price per unit for a product under the
// location > region > type-only fallback:
// (type, region, location), then (type, region), then (type).
//
// The boolean reports whether any entry matched; callers treat an
// unresolved price as a unit price of 0 (orders are still created, with
// amount 0). Resolution has no side effects.
type PriceResolver interface {
	ResolveUnitPrice(ctx context.Context, productType, region, location string) (int64, bool, error)
}
