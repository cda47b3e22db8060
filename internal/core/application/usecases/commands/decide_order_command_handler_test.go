package commands_test

import (
	"errors"
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, customerID kernel.UUID, status order.Status,
	approval order.ApprovalStatus, hold int64, locked bool) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, "NPP", "PCB40",
		testQuantity(t, 12000), time.Now().AddDate(0, 0, 7), nil,
		"North", "Plant A", "road", "",
		status, approval, hold, locked, "", nil)
	require.NoError(t, err)
	return o
}

func restoredBuyer(t *testing.T, creditLimit, creditUsed int64) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), "NPP", "0312345678", "12 Dock Rd",
		"555-0101", "ap@npp.example", creditLimit, creditUsed)
	require.NoError(t, err)
	return c
}

func TestDecideOrderCommandHandler_Handle_RejectReleasesHold(t *testing.T) {
	ctx := t.Context()
	buyer := restoredBuyer(t, 200_000_000, 168_000_000)
	reviewed := restoredOrder(t, buyer.ID(), order.StatusConfirmed, order.ApprovalApproved,
		168_000_000, false)
	cmd, err := commands.NewDecideOrderCommand(reviewed.ID(), false, "dvkh.lan", time.Now())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetForUpdate", mock.Anything, buyer.ID()).Return(buyer, nil).Once(),
		customerRepo.On("Update", mock.Anything, buyer).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, reviewed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	resolver := new(MockPriceResolver)

	h := commands.NewDecideOrderCommandHandler(factory, resolver)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ApprovalRejected, decided.ApprovalStatus())
	assert.True(t, decided.IsLocked())
	assert.Equal(t, int64(0), decided.CreditHold())
	assert.Equal(t, int64(0), buyer.CreditUsed())
	assert.Equal(t, "dvkh.lan", decided.ApprovedBy())
	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideOrderCommandHandler_Handle_ApproveReservesAmount(t *testing.T) {
	ctx := t.Context()
	buyer := restoredBuyer(t, 200_000_000, 0)
	reviewed := restoredOrder(t, buyer.ID(), order.StatusDraft, order.ApprovalRejected, 0, true)
	cmd, err := commands.NewDecideOrderCommand(reviewed.ID(), true, "dvkh.lan", time.Now())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	resolver := new(MockPriceResolver)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		resolver.On("ResolveUnitPrice", mock.Anything, "PCB40", "North", "Plant A").
			Return(int64(1_400_000), true, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetForUpdate", mock.Anything, buyer.ID()).Return(buyer, nil).Once(),
		customerRepo.On("Update", mock.Anything, buyer).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, reviewed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideOrderCommandHandler(factory, resolver)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ApprovalApproved, decided.ApprovalStatus())
	assert.False(t, decided.IsLocked())
	assert.Equal(t, int64(168_000_000), decided.CreditHold())
	assert.Equal(t, int64(168_000_000), buyer.CreditUsed())
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideOrderCommandHandler_Handle_ApproveDeniedByLedger(t *testing.T) {
	ctx := t.Context()
	buyer := restoredBuyer(t, 100_000_000, 0)
	reviewed := restoredOrder(t, buyer.ID(), order.StatusDraft, order.ApprovalRejected, 0, true)
	cmd, err := commands.NewDecideOrderCommand(reviewed.ID(), true, "dvkh.lan", time.Now())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	resolver := new(MockPriceResolver)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		resolver.On("ResolveUnitPrice", mock.Anything, "PCB40", "North", "Plant A").
			Return(int64(1_400_000), true, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetForUpdate", mock.Anything, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideOrderCommandHandler(factory, resolver)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrPreconditionFailed))
	assert.Equal(t, order.ApprovalRejected, reviewed.ApprovalStatus())
	assert.Equal(t, int64(0), buyer.CreditUsed())
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDecideOrderCommandHandler_Handle_ReapproveKeepsExistingHold(t *testing.T) {
	ctx := t.Context()
	buyer := restoredBuyer(t, 200_000_000, 168_000_000)
	reviewed := restoredOrder(t, buyer.ID(), order.StatusConfirmed, order.ApprovalApproved,
		168_000_000, false)
	cmd, err := commands.NewDecideOrderCommand(reviewed.ID(), true, "dvkh.lan", time.Now())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	resolver := new(MockPriceResolver)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, reviewed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideOrderCommandHandler(factory, resolver)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(168_000_000), decided.CreditHold())
	assert.Equal(t, int64(168_000_000), buyer.CreditUsed())
	assert.Equal(t, "dvkh.lan", decided.ApprovedBy())
	resolver.AssertNotCalled(t, "ResolveUnitPrice",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
