package pricing_test

import (
	"testing"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("creates valid entry", func(t *testing.T) {
		p, err := pricing.NewPrice(kernel.NewUUID(), "PCB40", "North", "Plant A", 1_400_000)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "PCB40", p.ProductType())
		assert.Equal(t, int64(1_400_000), p.PerUnit())
	})

	t.Run("requires product type", func(t *testing.T) {
		_, err := pricing.NewPrice(kernel.NewUUID(), "", "", "", 100)
		require.Error(t, err)
	})

	t.Run("rejects negative per-unit price", func(t *testing.T) {
		_, err := pricing.NewPrice(kernel.NewUUID(), "PCB40", "", "", -1)
		require.Error(t, err)
	})
}

func TestAmount(t *testing.T) {
	t.Run("120 units at 1,400,000 per unit", func(t *testing.T) {
		q, err := kernel.NewQuantityFromHundredths(12000)
		require.NoError(t, err)

		assert.Equal(t, int64(168_000_000), pricing.Amount(q, 1_400_000))
	})

	t.Run("rounds half up on fractional quantities", func(t *testing.T) {
		// 0.05 units at 1010 per unit = 50.5, rounds to 51.
		q, err := kernel.NewQuantityFromHundredths(5)
		require.NoError(t, err)

		assert.Equal(t, int64(51), pricing.Amount(q, 1010))
	})

	t.Run("rounds down below half", func(t *testing.T) {
		// 0.05 units at 1008 per unit = 50.4, rounds to 50.
		q, err := kernel.NewQuantityFromHundredths(5)
		require.NoError(t, err)

		assert.Equal(t, int64(50), pricing.Amount(q, 1008))
	})

	t.Run("unresolved price yields zero amount", func(t *testing.T) {
		q, err := kernel.NewQuantityFromHundredths(12000)
		require.NoError(t, err)

		assert.Equal(t, int64(0), pricing.Amount(q, 0))
	})
}
