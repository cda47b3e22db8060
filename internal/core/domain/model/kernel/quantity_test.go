package kernel_test

import (
	"testing"

	"distribution/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantityFromHundredths(t *testing.T) {
	t.Run("accepts positive multiples of 0.05", func(t *testing.T) {
		for _, hundredths := range []int64{5, 100, 12000, 1005} {
			q, err := kernel.NewQuantityFromHundredths(hundredths)

			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, hundredths, q.Hundredths())
		}
	})

	t.Run("rejects 1.03 units", func(t *testing.T) {
		_, err := kernel.NewQuantityFromHundredths(103)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a multiple of 0.05")
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := kernel.NewQuantityFromHundredths(0)
		require.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := kernel.NewQuantityFromHundredths(-5)
		require.Error(t, err)
	})
}

func TestQuantityValidate(t *testing.T) {
	var zero kernel.Quantity

	err := zero.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quantity must be created")
}
