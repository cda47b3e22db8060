package commands_test

import (
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	deliveryDate := time.Now().AddDate(0, 0, 7)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), staffActor(),
			"PCB40", testQuantity(t, 12000), deliveryDate, nil, "North", "Plant A", "road", "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "PCB40", cmd.Product())
		assert.Equal(t, int64(12000), cmd.Quantity().Hundredths())
	})

	t.Run("requires product", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), staffActor(),
			"", testQuantity(t, 12000), deliveryDate, nil, "", "", "", "")

		require.ErrorIs(t, err, commands.ErrProductIsRequired)
	})

	t.Run("requires delivery date", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), staffActor(),
			"PCB40", testQuantity(t, 12000), time.Time{}, nil, "", "", "", "")

		require.ErrorIs(t, err, commands.ErrDeliveryDateIsRequired)
	})

	t.Run("requires customer for staff actors", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, staffActor(),
			"PCB40", testQuantity(t, 12000), deliveryDate, nil, "", "", "", "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
