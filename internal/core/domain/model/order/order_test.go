package order_test

import (
	"testing"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuantity(t *testing.T, hundredths int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantityFromHundredths(hundredths)
	require.NoError(t, err)
	return q
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"Song Gianh Building Materials", "PCB40", testQuantity(t, 12000),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil,
		"North", "Plant A", "road", "51C-123.45")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending draft order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Equal(t, order.ApprovalPending, o.ApprovalStatus())
		assert.Equal(t, int64(0), o.CreditHold())
		assert.False(t, o.IsLocked())
	})

	t.Run("requires product", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "NPP", "",
			testQuantity(t, 100), time.Now(), nil, "", "", "", "")
		require.Error(t, err)
	})

	t.Run("requires customer name", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", "PCB40",
			testQuantity(t, 100), time.Now(), nil, "", "", "", "")
		require.Error(t, err)
	})

	t.Run("requires constructed quantity", func(t *testing.T) {
		var badQuantity kernel.Quantity
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "NPP", "PCB40",
			badQuantity, time.Now(), nil, "", "", "", "")
		require.Error(t, err)
	})

	t.Run("requires delivery date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "NPP", "PCB40",
			testQuantity(t, 100), time.Time{}, nil, "", "", "", "")
		require.Error(t, err)
	})
}

func TestApplyCreditDecision(t *testing.T) {
	t.Run("granted reservation confirms the order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ApplyCreditDecision(true, 168_000_000))

		assert.Equal(t, order.ApprovalApproved, o.ApprovalStatus())
		assert.Equal(t, int64(168_000_000), o.CreditHold())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.False(t, o.IsLocked())
	})

	t.Run("denied reservation rejects and locks the order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ApplyCreditDecision(false, 100_000_000))

		assert.Equal(t, order.ApprovalRejected, o.ApprovalStatus())
		assert.Equal(t, int64(0), o.CreditHold())
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.True(t, o.IsLocked())
	})

	t.Run("decision can only be applied once", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ApplyCreditDecision(true, 100))

		err := o.ApplyCreditDecision(false, 0)

		assert.ErrorIs(t, err, order.ErrApprovalAlreadyDecided)
	})
}

func TestManualOverride(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("manual approve records hold and approver", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ApplyCreditDecision(false, 0))

		require.NoError(t, o.ApproveManually("dvkh.lan", 168_000_000, now))

		assert.Equal(t, order.ApprovalApproved, o.ApprovalStatus())
		assert.Equal(t, int64(168_000_000), o.CreditHold())
		assert.False(t, o.IsLocked())
		assert.Equal(t, "dvkh.lan", o.ApprovedBy())
		require.NotNil(t, o.ApprovedAt())
		assert.Equal(t, now, *o.ApprovedAt())
	})

	t.Run("manual reject releases the hold and locks", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ApplyCreditDecision(true, 168_000_000))

		released, err := o.RejectManually("dvkh.lan", now)

		require.NoError(t, err)
		assert.Equal(t, int64(168_000_000), released)
		assert.Equal(t, order.ApprovalRejected, o.ApprovalStatus())
		assert.Equal(t, int64(0), o.CreditHold())
		assert.True(t, o.IsLocked())
	})

	t.Run("approver is required", func(t *testing.T) {
		o := newPendingOrder(t)

		_, err := o.RejectManually("", now)
		require.Error(t, err)

		require.Error(t, o.ApproveManually("", 0, now))
	})
}

func TestMarkShipped(t *testing.T) {
	t.Run("confirmed order ships", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ApplyCreditDecision(true, 100))

		require.NoError(t, o.MarkShipped())

		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("shipping twice is idempotent", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ApplyCreditDecision(true, 100))
		require.NoError(t, o.MarkShipped())

		require.NoError(t, o.MarkShipped())

		assert.Equal(t, order.StatusShipped, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	deliveryDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("restores approved order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, "NPP", "PCB40", testQuantity(t, 12000),
			deliveryDate, nil, "North", "Plant A", "road", "",
			order.StatusConfirmed, order.ApprovalApproved, 168_000_000, false, "", nil)

		require.NoError(t, err)
		assert.Equal(t, int64(168_000_000), o.CreditHold())
	})

	t.Run("rejects hold without approval", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, "NPP", "PCB40", testQuantity(t, 12000),
			deliveryDate, nil, "", "", "", "",
			order.StatusDraft, order.ApprovalRejected, 500, true, "", nil)

		require.Error(t, err)
	})

	t.Run("rejects approved order without hold", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, "NPP", "PCB40", testQuantity(t, 12000),
			deliveryDate, nil, "", "", "", "",
			order.StatusConfirmed, order.ApprovalApproved, 0, false, "", nil)

		require.Error(t, err)
	})

	t.Run("rejects lock flag inconsistent with approval", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, "NPP", "PCB40", testQuantity(t, 12000),
			deliveryDate, nil, "", "", "", "",
			order.StatusDraft, order.ApprovalRejected, 0, false, "", nil)

		require.Error(t, err)
	})
}
