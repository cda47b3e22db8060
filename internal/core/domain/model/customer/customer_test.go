package customer_test

import (
	"testing"

	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T, limit, used int64) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(),
		"Song Gianh Building Materials", "", "", "", "npp@example.com", limit, used)
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with zero used credit", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(),
			"Song Gianh Building Materials", "0312345678", "Dong Hoi", "0912000111",
			"npp@example.com", 500_000_000)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(500_000_000), c.CreditLimit())
		assert.Equal(t, int64(0), c.CreditUsed())
		assert.Equal(t, int64(500_000_000), c.CreditRemaining())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "", "", "", "", 0)
		require.Error(t, err)
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "NPP", "", "", "", "", -1)
		require.Error(t, err)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("rejects used credit above limit", func(t *testing.T) {
		_, err := customer.RestoreCustomer(kernel.NewUUID(), "NPP", "", "", "", "", 100, 101)
		require.Error(t, err)
	})

	t.Run("accepts used credit at limit", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.NewUUID(), "NPP", "", "", "", "", 100, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), c.CreditRemaining())
	})
}

func TestCustomerReserve(t *testing.T) {
	t.Run("grants reservation within remaining credit", func(t *testing.T) {
		c := newTestCustomer(t, 500_000_000, 0)

		granted := c.Reserve(168_000_000)

		assert.True(t, granted)
		assert.Equal(t, int64(168_000_000), c.CreditUsed())
		assert.LessOrEqual(t, c.CreditUsed(), c.CreditLimit())
	})

	t.Run("denies reservation beyond remaining credit and leaves ledger unchanged", func(t *testing.T) {
		c := newTestCustomer(t, 500_000_000, 450_000_000)

		granted := c.Reserve(100_000_000)

		assert.False(t, granted)
		assert.Equal(t, int64(450_000_000), c.CreditUsed())
	})

	t.Run("grants reservation that exactly exhausts remaining credit", func(t *testing.T) {
		c := newTestCustomer(t, 500_000_000, 450_000_000)

		granted := c.Reserve(50_000_000)

		assert.True(t, granted)
		assert.Equal(t, c.CreditLimit(), c.CreditUsed())
	})

	t.Run("grants zero-amount reservation without mutation", func(t *testing.T) {
		c := newTestCustomer(t, 100, 100)

		granted := c.Reserve(0)

		assert.True(t, granted)
		assert.Equal(t, int64(100), c.CreditUsed())
	})

	t.Run("denies negative amounts", func(t *testing.T) {
		c := newTestCustomer(t, 100, 0)
		assert.False(t, c.Reserve(-1))
	})
}

func TestCustomerRelease(t *testing.T) {
	t.Run("returns held credit", func(t *testing.T) {
		c := newTestCustomer(t, 500, 300)

		c.Release(200)

		assert.Equal(t, int64(100), c.CreditUsed())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		c := newTestCustomer(t, 500, 100)

		c.Release(200)

		assert.Equal(t, int64(0), c.CreditUsed())
	})

	t.Run("ignores non-positive amounts", func(t *testing.T) {
		c := newTestCustomer(t, 500, 100)

		c.Release(0)
		c.Release(-5)

		assert.Equal(t, int64(100), c.CreditUsed())
	})
}
