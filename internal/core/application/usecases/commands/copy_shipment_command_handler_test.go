package commands_test

import (
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCopyShipmentCommandHandler_Handle_CopiesRouteOnly(t *testing.T) {
	ctx := t.Context()
	sourceID := kernel.NewUUID()
	stamp := time.Now().Add(-time.Hour)
	source, err := shipment.RestoreShipment(sourceID, kernel.NewUUID(), shipment.CodeFromID(sourceID),
		"Plant A", "Dock 12", "10t truck", "fragile",
		shipment.StatusDelivered, shipment.InspectionApproved,
		"qc.vu", &stamp, "gate.3", &stamp, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	copyID := kernel.NewUUID()
	cmd, err := commands.NewCopyShipmentCommand(copyID, sourceID)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, sourceID).Return(source, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCopyShipmentCommandHandler(factory)
	duplicate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, duplicate.ID().IsEqual(copyID))
	assert.True(t, duplicate.OrderID().IsEqual(source.OrderID()))
	assert.Equal(t, source.PickupLocation(), duplicate.PickupLocation())
	assert.Equal(t, source.Notes(), duplicate.Notes())
	assert.NotEqual(t, source.Code(), duplicate.Code())
	assert.Equal(t, shipment.StatusDraft, duplicate.Status())
	assert.Equal(t, shipment.InspectionPending, duplicate.InspectionStatus())
	assert.Empty(t, duplicate.ReceivedBy())
	assert.Nil(t, duplicate.ReceivedAt())
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
