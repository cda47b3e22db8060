package commands_test

import (
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/shipment"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftShipment(t *testing.T, orderID kernel.UUID) *shipment.Shipment {
	t.Helper()
	id := kernel.NewUUID()
	s, err := shipment.RestoreShipment(id, orderID, shipment.CodeFromID(id),
		"Plant A", "Dock 12", "10t truck", "",
		shipment.StatusDraft, shipment.InspectionPending,
		"", nil, "", nil, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return s
}

func TestUpdateShipmentCommandHandler_Handle_RelinksAndPatchesFields(t *testing.T) {
	ctx := t.Context()
	patched := draftShipment(t, kernel.NewUUID())
	targetOrderID := kernel.NewUUID()
	target := restoredOrder(t, kernel.NewUUID(), order.StatusConfirmed, order.ApprovalApproved, 1000, false)

	pickup := "Plant B"
	scheduled := shipment.StatusScheduled
	cmd, err := commands.NewUpdateShipmentCommand(patched.ID(), &targetOrderID,
		&pickup, nil, nil, nil, &scheduled)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, patched.ID()).Return(patched, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, targetOrderID).Return(target, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Update", mock.Anything, patched).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.OrderID().IsEqual(targetOrderID))
	assert.Equal(t, "Plant B", updated.PickupLocation())
	assert.Equal(t, "Dock 12", updated.DropoffLocation())
	assert.Equal(t, shipment.StatusScheduled, updated.Status())
	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_DeliveredCannotBeSetDirectly(t *testing.T) {
	ctx := t.Context()
	patched := draftShipment(t, kernel.NewUUID())

	delivered := shipment.StatusDelivered
	cmd, err := commands.NewUpdateShipmentCommand(patched.ID(), nil,
		nil, nil, nil, nil, &delivered)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, patched.ID()).Return(patched, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
