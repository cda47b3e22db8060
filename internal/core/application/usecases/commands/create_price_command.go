package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrCreatePriceCommandIsNotConstructed = errors.New(
	"CreatePriceCommand must be created via NewCreatePriceCommand constructor",
)

// CreatePriceCommand adds a price list entry. Region and location may be
// empty; an empty field makes the entry a fallback for the wider scope.
type CreatePriceCommand struct {
	priceID     kernel.UUID
	productType string
	region      string
	location    string
	perUnit     int64

	guard guard.ConstructorGuard
}

// NewCreatePriceCommand creates a command to add a price list entry.
func NewCreatePriceCommand(priceID kernel.UUID, productType, region, location string,
	perUnit int64) (CreatePriceCommand, error) {
	if err := priceID.Validate(); err != nil {
		return CreatePriceCommand{}, errs.NewValueIsRequiredErrorWithCause("priceID", err)
	}
	if productType == "" {
		return CreatePriceCommand{}, errs.NewValueIsRequiredError("productType")
	}
	if perUnit <= 0 {
		return CreatePriceCommand{}, errs.NewValueIsInvalidError("perUnit")
	}
	if region == "" && location != "" {
		return CreatePriceCommand{}, errs.NewValueIsInvalidError("location")
	}

	return CreatePriceCommand{
		priceID:     priceID,
		productType: productType,
		region:      region,
		location:    location,
		perUnit:     perUnit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePriceCommand) Validate() error {
	return c.guard.Validate(ErrCreatePriceCommandIsNotConstructed)
}

// PriceID returns the identifier for the new entry.
func (c CreatePriceCommand) PriceID() kernel.UUID { return c.priceID }

// ProductType returns the product type the entry prices.
func (c CreatePriceCommand) ProductType() string { return c.productType }

// Region returns the region scope, possibly empty.
func (c CreatePriceCommand) Region() string { return c.region }

// Location returns the pickup location scope, possibly empty.
func (c CreatePriceCommand) Location() string { return c.location }

// PerUnit returns the price per unit in minor currency units.
func (c CreatePriceCommand) PerUnit() int64 { return c.perUnit }
