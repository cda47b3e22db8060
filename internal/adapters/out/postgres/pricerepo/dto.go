// Package pricerepo provides persistence and resolution for price list
// entries. An entry applies to a product type, optionally narrowed by
// region and pickup location; empty region or location means the entry is
// a fallback for the wider scope.
package pricerepo

import (
	"distribution/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PriceDTO represents the database structure for persisting price list
// entries. One entry per (product type, region, location) triple.
type PriceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductType string    `gorm:"uniqueIndex:idx_price_scope"`
	Region      string    `gorm:"uniqueIndex:idx_price_scope"`
	Location    string    `gorm:"uniqueIndex:idx_price_scope"`
	PerUnit     int64
}

// TableName specifies the database table name for price entries.
func (PriceDTO) TableName() string {
	return "prices"
}

// fromDomain converts a price domain entity to its database representation.
func fromDomain(entity *pricing.Price) PriceDTO {
	return PriceDTO{
		ID:          entity.ID().Bytes(),
		ProductType: entity.ProductType(),
		Region:      entity.Region(),
		Location:    entity.Location(),
		PerUnit:     entity.PerUnit(),
	}
}
