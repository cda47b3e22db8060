package commands

import (
	"context"
	"fmt"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/pricing"
	"distribution/internal/core/ports"
)

// ReceiveShipmentCommandHandler handles delivery confirmation. Receipt is
// the pivot of the fulfilment flow: the shipment becomes delivered, the
// order becomes shipped, and an invoice for the re-priced order amount is
// issued with the order's delivery date as its due date. All three writes
// share one transaction; the customer notification goes out only after a
// successful commit and never fails the command.
//
// Example:
//
//	handler := NewReceiveShipmentCommandHandler(uowFactory, priceResolver, notifier)
//	cmd, _ := NewReceiveShipmentCommand(shipmentID, "gate.3", time.Now())
//	issued, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("receipt failed: %w", err)
//	}
//	fmt.Printf("Invoice %s issued for %d", issued.Number(), issued.Amount())
type ReceiveShipmentCommandHandler struct {
	uowFactory    UoWFactory
	priceResolver ports.PriceResolver
	notifier      ports.Notifier
}

// NewReceiveShipmentCommandHandler creates a handler for delivery
// confirmation. Requires the cross-aggregate UoWFactory, a PriceResolver
// for the invoice amount, and a Notifier for the customer message.
func NewReceiveShipmentCommandHandler(uowFactory UoWFactory, priceResolver ports.PriceResolver,
	notifier ports.Notifier) ReceiveShipmentCommandHandler {
	return ReceiveShipmentCommandHandler{
		uowFactory:    uowFactory,
		priceResolver: priceResolver,
		notifier:      notifier,
	}
}

// Handle processes the receipt command and returns the issued invoice.
// Fails with a precondition error when the shipment is not approved for
// receiving or has already been received.
func (h ReceiveShipmentCommandHandler) Handle(ctx context.Context,
	cmd ReceiveShipmentCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	received, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = received.Receive(cmd.Receiver(), cmd.ReceivedAt()); err != nil {
		return nil, err
	}

	shipped, err := uow.OrderRepository().Get(ctx, received.OrderID())
	if err != nil {
		return nil, err
	}

	if err = shipped.MarkShipped(); err != nil {
		return nil, err
	}

	perUnit, _, err := h.priceResolver.ResolveUnitPrice(ctx,
		shipped.Product(), shipped.Region(), shipped.PickupLocation())
	if err != nil {
		return nil, err
	}
	amount := pricing.Amount(shipped.Quantity(), perUnit)

	issued, err := invoice.NewInvoice(kernel.NewUUID(), shipped.CustomerName(), amount,
		shipped.DeliveryDate(), cmd.ReceivedAt())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, received); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, shipped); err != nil {
		return nil, err
	}
	if err = uow.InvoiceRepository().Add(ctx, issued); err != nil {
		return nil, err
	}

	buyer, err := uow.CustomerRepository().Get(ctx, shipped.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if email := buyer.Email(); email != "" {
		subject := fmt.Sprintf("Invoice %s issued", issued.Number())
		body := fmt.Sprintf("Shipment %s was delivered. Invoice %s for %d is due on %s.",
			received.Code(), issued.Number(), issued.Amount(), issued.DueDate().Format("2006-01-02"))
		_ = h.notifier.Send(ctx, email, subject, body)
	}

	return issued, nil
}
