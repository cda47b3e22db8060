package pricerepo

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormPriceRepository persists price list entries and resolves unit
// prices. Implements ports.PriceRepository and ports.PriceResolver.
// Both run outside the unit of work: entries are standalone records and
// resolution has no side effects.
type GormPriceRepository struct {
	db *gorm.DB
}

// NewGormPriceRepository creates a new GORM price repository.
func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// Add saves a price list entry. Fails on a duplicate
// (product type, region, location) triple.
func (r *GormPriceRepository) Add(ctx context.Context, entity *pricing.Price) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ResolveUnitPrice resolves the price per unit under the most-specific
// match wins rule: (type, region, location), then the (type, region)
// fallback entry, then the type-only entry. The boolean reports whether
// any entry matched.
func (r *GormPriceRepository) ResolveUnitPrice(ctx context.Context, productType, region,
	location string) (int64, bool, error) {
	scopes := [][2]string{
		{region, location},
		{region, ""},
		{"", ""},
	}

	for _, scope := range scopes {
		var dto PriceDTO
		err := r.db.WithContext(ctx).
			First(&dto, "product_type = ? AND region = ? AND location = ?",
				productType, scope[0], scope[1]).Error
		if err == nil {
			return dto.PerUnit, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
	}

	return 0, false, nil
}
