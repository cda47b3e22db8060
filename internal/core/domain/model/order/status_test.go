package order_test

import (
	"testing"

	"distribution/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	for _, s := range []order.Status{order.StatusDraft, order.StatusConfirmed, order.StatusShipped} {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "draft", order.StatusDraft.String())
	assert.Equal(t, "confirmed", order.StatusConfirmed.String())
	assert.Equal(t, "shipped", order.StatusShipped.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	s, err := order.StatusFromString("confirmed")
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, s)

	_, err = order.StatusFromString("delivered")
	require.Error(t, err)
}

func TestStatusShip(t *testing.T) {
	t.Run("valid transitions", func(t *testing.T) {
		for _, from := range []order.Status{order.StatusDraft, order.StatusConfirmed, order.StatusShipped} {
			next, err := from.Ship()
			require.NoError(t, err)
			assert.Equal(t, order.StatusShipped, next)
		}
	})

	t.Run("unknown cannot ship", func(t *testing.T) {
		_, err := order.StatusUnknown.Ship()
		require.Error(t, err)
	})
}

func TestApprovalStatus(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "pending", order.ApprovalPending.String())
		assert.Equal(t, "approved", order.ApprovalApproved.String())
		assert.Equal(t, "rejected", order.ApprovalRejected.String())
	})

	t.Run("parse", func(t *testing.T) {
		s, err := order.ApprovalStatusFromString("rejected")
		require.NoError(t, err)
		assert.Equal(t, order.ApprovalRejected, s)

		_, err = order.ApprovalStatusFromString("denied")
		require.Error(t, err)
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, order.ApprovalApproved.Validate())
		require.Error(t, order.ApprovalUnknown.Validate())
	})
}
