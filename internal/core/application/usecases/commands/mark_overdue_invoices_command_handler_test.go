package commands_test

import (
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unpaidInvoice(t *testing.T, dueDate time.Time) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), "NPP", 168_000_000, dueDate,
		dueDate.AddDate(0, 0, -14))
	require.NoError(t, err)
	return inv
}

func TestMarkOverdueInvoicesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	pastDue := unpaidInvoice(t, now.AddDate(0, 0, -3))
	notYetDue := unpaidInvoice(t, now.AddDate(0, 0, 3))
	cmd := commands.NewMarkOverdueInvoicesCommand(now)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllUnpaid", mock.Anything).
			Return([]*invoice.Invoice{pastDue, notYetDue}, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", mock.Anything, pastDue).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueInvoicesCommandHandler(factory)
	flipped, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, flipped)
	assert.Equal(t, invoice.StatusOverdue, pastDue.Status())
	assert.Equal(t, invoice.StatusUnpaid, notYetDue.Status())
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
