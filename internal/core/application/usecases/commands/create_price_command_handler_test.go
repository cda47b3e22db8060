package commands_test

import (
	"testing"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePriceCommandHandler_Handle_AddsEntry(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePriceCommand(kernel.NewUUID(), "PCB40", "North", "Plant A", 1_500_000)
	require.NoError(t, err)

	priceRepo := new(MockPriceRepository)
	priceRepo.On("Add", mock.Anything, mock.AnythingOfType("*pricing.Price")).Return(nil).Once()

	h := commands.NewCreatePriceCommandHandler(priceRepo)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "PCB40", created.ProductType())
	assert.Equal(t, "North", created.Region())
	assert.Equal(t, "Plant A", created.Location())
	assert.Equal(t, int64(1_500_000), created.PerUnit())
	priceRepo.AssertExpectations(t)
}

func TestNewCreatePriceCommand_Validation(t *testing.T) {
	t.Run("missing product type", func(t *testing.T) {
		_, err := commands.NewCreatePriceCommand(kernel.NewUUID(), "", "North", "", 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive per unit", func(t *testing.T) {
		_, err := commands.NewCreatePriceCommand(kernel.NewUUID(), "PCB40", "", "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("location without region", func(t *testing.T) {
		_, err := commands.NewCreatePriceCommand(kernel.NewUUID(), "PCB40", "", "Plant A", 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreatePriceCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreatePriceCommandIsNotConstructed)
	})
}
