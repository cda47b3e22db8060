package commands

import (
	"context"

	"distribution/internal/core/domain/model/pricing"
	"distribution/internal/core/ports"
)

// CreatePriceCommandHandler adds entries to the price list. Price entries
// are standalone records with no cross-aggregate invariants, so the
// handler writes through the repository directly without a unit of work.
type CreatePriceCommandHandler struct {
	priceRepository ports.PriceRepository
}

// NewCreatePriceCommandHandler creates a handler for price list entries.
func NewCreatePriceCommandHandler(priceRepository ports.PriceRepository) CreatePriceCommandHandler {
	return CreatePriceCommandHandler{
		priceRepository: priceRepository,
	}
}

// Handle creates the price list entry and returns it.
func (h CreatePriceCommandHandler) Handle(ctx context.Context,
	cmd CreatePriceCommand) (*pricing.Price, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entry, err := pricing.NewPrice(cmd.PriceID(), cmd.ProductType(), cmd.Region(),
		cmd.Location(), cmd.PerUnit())
	if err != nil {
		return nil, err
	}

	if err = h.priceRepository.Add(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
