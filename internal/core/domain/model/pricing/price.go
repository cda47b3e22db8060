package pricing

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrPriceIsNotConstructed is returned when a Price was not created through NewPrice.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// Price is a price-list entry: price per unit for a product type, optionally
// narrowed by region and pickup location. Region and location may be empty;
// the most specific matching entry wins during resolution.
type Price struct {
	id          kernel.UUID
	productType string
	region      string
	location    string
	perUnit     int64

	isConstructed bool
}

// NewPrice creates a price-list entry. Product type is required and the
// per-unit price must be non-negative.
func NewPrice(id kernel.UUID, productType, region, location string, perUnit int64) (*Price, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("productType")
	}
	if perUnit < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("pricePerUnit",
			fmt.Errorf("%d is negative", perUnit))
	}

	return &Price{
		id:            id,
		productType:   productType,
		region:        region,
		location:      location,
		perUnit:       perUnit,
		isConstructed: true,
	}, nil
}

// Validate ensures the Price was created through NewPrice.
func (p *Price) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (p *Price) ID() kernel.UUID { return p.id }

// ProductType returns the product type the entry prices.
func (p *Price) ProductType() string { return p.productType }

// Region returns the optional region restriction ("" when unrestricted).
func (p *Price) Region() string { return p.region }

// Location returns the optional pickup-location restriction ("" when unrestricted).
func (p *Price) Location() string { return p.location }

// PerUnit returns the price per whole unit in minor currency units.
func (p *Price) PerUnit() int64 { return p.perUnit }

// Amount computes the order amount for a quantity at the given per-unit
// price, rounding half up to the nearest minor currency unit. A missing
// price resolves to a per-unit price of 0, which yields amount 0 here.
func Amount(quantity kernel.Quantity, perUnit int64) int64 {
	// quantity is in hundredths of a unit, so divide by 100 with
	// half-up rounding in integer arithmetic.
	return (quantity.Hundredths()*perUnit + 50) / 100
}
