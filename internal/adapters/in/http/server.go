// Package http is the inbound HTTP adapter. It translates REST requests
// into commands and queries and maps domain errors to HTTP statuses.
// Authentication happens upstream; the adapter only reads the identity
// headers set by the gateway.
package http

import (
	"net/http"
	"strconv"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/shipment"
	"distribution/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler  commands.CreateCustomerCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	decideOrderHandler     commands.DecideOrderCommandHandler
	createShipmentHandler  commands.CreateShipmentCommandHandler
	updateShipmentHandler  commands.UpdateShipmentCommandHandler
	copyShipmentHandler    commands.CopyShipmentCommandHandler
	deleteShipmentHandler  commands.DeleteShipmentCommandHandler
	inspectShipmentHandler commands.InspectShipmentCommandHandler
	receiveShipmentHandler commands.ReceiveShipmentCommandHandler
	createInvoiceHandler   commands.CreateInvoiceCommandHandler
	createPriceHandler     commands.CreatePriceCommandHandler

	// Query handlers
	listCustomersHandler     queries.ListCustomersQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	listShipmentsHandler     queries.ListShipmentsQueryHandler
	checkShipmentCodeHandler queries.CheckShipmentCodeQueryHandler
	listInvoicesHandler      queries.ListInvoicesQueryHandler
	listPricesHandler        queries.ListPricesQueryHandler
	getCreditReportHandler   queries.GetCreditReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	decideOrderHandler commands.DecideOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	copyShipmentHandler commands.CopyShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	inspectShipmentHandler commands.InspectShipmentCommandHandler,
	receiveShipmentHandler commands.ReceiveShipmentCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	createPriceHandler commands.CreatePriceCommandHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	checkShipmentCodeHandler queries.CheckShipmentCodeQueryHandler,
	listInvoicesHandler queries.ListInvoicesQueryHandler,
	listPricesHandler queries.ListPricesQueryHandler,
	getCreditReportHandler queries.GetCreditReportQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		createOrderHandler:       createOrderHandler,
		decideOrderHandler:       decideOrderHandler,
		createShipmentHandler:    createShipmentHandler,
		updateShipmentHandler:    updateShipmentHandler,
		copyShipmentHandler:      copyShipmentHandler,
		deleteShipmentHandler:    deleteShipmentHandler,
		inspectShipmentHandler:   inspectShipmentHandler,
		receiveShipmentHandler:   receiveShipmentHandler,
		createInvoiceHandler:     createInvoiceHandler,
		createPriceHandler:       createPriceHandler,
		listCustomersHandler:     listCustomersHandler,
		listOrdersHandler:        listOrdersHandler,
		listShipmentsHandler:     listShipmentsHandler,
		checkShipmentCodeHandler: checkShipmentCodeHandler,
		listInvoicesHandler:      listInvoicesHandler,
		listPricesHandler:        listPricesHandler,
		getCreditReportHandler:   getCreditReportHandler,
	}
}

// RegisterRoutes binds all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/reports/credit", s.GetCreditReport)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:id/review", s.ReviewOrder)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/code/:code", s.CheckShipmentCode)
	api.PATCH("/shipments/:id", s.UpdateShipment)
	api.POST("/shipments/:id/copy", s.CopyShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.POST("/shipments/:id/inspection", s.InspectShipment)
	api.POST("/shipments/:id/receipt", s.ReceiveShipment)

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)

	api.POST("/prices", s.CreatePrice)
	api.GET("/prices", s.ListPrices)
}

// requireStaff rejects customer accounts on back-office endpoints.
func requireStaff(ctx echo.Context) (ports.Actor, bool) {
	actor := actorFromRequest(ctx)
	if actor.Role != ports.RoleStaff {
		_ = ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "staff role required",
		})
		return actor, false
	}
	return actor, true
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), request.Name,
		request.TaxCode, request.Address, request.Phone, request.Email, request.CreditLimit)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerResponse(created))
}

// ListCustomers handles GET /api/v1/customers - lists customers with an
// optional name filter.
func (s *Server) ListCustomers(ctx echo.Context) error {
	query := queries.NewListCustomersQuery(actorFromRequest(ctx), ctx.QueryParam("name"))

	rows, err := s.listCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerListResponse(rows))
}

// GetCreditReport handles GET /api/v1/reports/credit - credit exposure per
// customer including unpaid invoices.
func (s *Server) GetCreditReport(ctx echo.Context) error {
	query := queries.NewGetCreditReportQuery(actorFromRequest(ctx))

	rows, err := s.getCreditReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, creditReportResponse(rows))
}

// CreateOrder handles POST /api/v1/orders - places an order and runs the
// automatic credit check.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor := actorFromRequest(ctx)

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	// Customer accounts order for themselves; an empty customerId is
	// resolved from the actor by the use case.
	var customerID kernel.UUID
	if request.CustomerID != "" {
		parsed, err := kernel.UUIDFromString(request.CustomerID)
		if err != nil {
			return respondBadRequest(ctx, "Invalid customer id")
		}
		customerID = parsed
	}

	quantity, err := kernel.NewQuantityFromHundredths(request.QuantityHundredths)
	if err != nil {
		return respondBadRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, actor,
		request.Product, quantity, request.DeliveryDate, request.ExpiresAt,
		request.Region, request.PickupLocation, request.DeliveryMethod, request.Vehicle)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// ListOrders handles GET /api/v1/orders - lists orders with optional
// product, status, locked and expiring filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status filter")
		}
		status = &parsed
	}

	var locked *bool
	if raw := ctx.QueryParam("locked"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid locked filter")
		}
		locked = &parsed
	}

	expiring, _ := strconv.ParseBool(ctx.QueryParam("expiring"))

	query := queries.NewListOrdersQuery(actorFromRequest(ctx),
		ctx.QueryParam("product"), status, locked, expiring)

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponse(rows))
}

// ReviewOrder handles POST /api/v1/orders/:id/review - manual approval or
// rejection of an order by a staff member.
func (s *Server) ReviewOrder(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	var request ReviewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDecideOrderCommand(orderID, request.Approved,
		request.Approver, time.Now())
	if err != nil {
		return respondBadRequest(ctx, "Invalid review data: "+err.Error())
	}

	decided, err := s.decideOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(decided))
}

// CreateShipment handles POST /api/v1/shipments - schedules a shipment
// for an order.
func (s *Server) CreateShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), orderID,
		request.PickupLocation, request.DropoffLocation, request.Vehicle, request.Notes)
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponse(created))
}

// ListShipments handles GET /api/v1/shipments - lists shipments with
// optional order, status, inspection, received and product filters.
func (s *Server) ListShipments(ctx echo.Context) error {
	var orderID *kernel.UUID
	if raw := ctx.QueryParam("orderId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid orderId filter")
		}
		orderID = &parsed
	}

	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status filter")
		}
		status = &parsed
	}

	var inspectionStatus *shipment.InspectionStatus
	if raw := ctx.QueryParam("inspectionStatus"); raw != "" {
		parsed, err := shipment.InspectionStatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid inspectionStatus filter")
		}
		inspectionStatus = &parsed
	}

	var received *bool
	if raw := ctx.QueryParam("received"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid received filter")
		}
		received = &parsed
	}

	query := queries.NewListShipmentsQuery(actorFromRequest(ctx), orderID, status,
		inspectionStatus, received, ctx.QueryParam("product"))

	rows, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentListResponse(rows))
}

// CheckShipmentCode handles GET /api/v1/shipments/code/:code - resolves a
// tracking code to its shipment.
func (s *Server) CheckShipmentCode(ctx echo.Context) error {
	query, err := queries.NewCheckShipmentCodeQuery(actorFromRequest(ctx), ctx.Param("code"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid code: "+err.Error())
	}

	row, err := s.checkShipmentCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentRowResponse(row))
}

// UpdateShipment handles PATCH /api/v1/shipments/:id - edits a shipment.
// Only fields present in the body are changed.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var request UpdateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	var orderID *kernel.UUID
	if request.OrderID != nil {
		parsed, err := kernel.UUIDFromString(*request.OrderID)
		if err != nil {
			return respondBadRequest(ctx, "Invalid order id")
		}
		orderID = &parsed
	}

	var status *shipment.Status
	if request.Status != nil {
		parsed, err := shipment.StatusFromString(*request.Status)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status")
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, orderID,
		request.PickupLocation, request.DropoffLocation, request.Vehicle,
		request.Notes, status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponse(updated))
}

// CopyShipment handles POST /api/v1/shipments/:id/copy - duplicates a
// shipment's route as a fresh draft with a new tracking code.
func (s *Server) CopyShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	sourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewCopyShipmentCommand(kernel.NewUUID(), sourceID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid copy request: "+err.Error())
	}

	copied, err := s.copyShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponse(copied))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - removes a
// shipment that has not been delivered.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InspectShipment handles POST /api/v1/shipments/:id/inspection - records
// the quality inspection verdict.
func (s *Server) InspectShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var request InspectShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInspectShipmentCommand(shipmentID, request.Approved,
		request.Inspector, time.Now())
	if err != nil {
		return respondBadRequest(ctx, "Invalid inspection data: "+err.Error())
	}

	inspected, err := s.inspectShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponse(inspected))
}

// ReceiveShipment handles POST /api/v1/shipments/:id/receipt - confirms
// receipt of an inspected shipment and issues the invoice.
func (s *Server) ReceiveShipment(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var request ReceiveShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveShipmentCommand(shipmentID, request.Receiver, time.Now())
	if err != nil {
		return respondBadRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	issued, err := s.receiveShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, invoiceResponse(issued))
}

// CreateInvoice handles POST /api/v1/invoices - records an invoice
// entered manually, outside the receipt flow.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	var request CreateInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status := invoice.StatusUnpaid
	if request.Status != "" {
		parsed, err := invoice.StatusFromString(request.Status)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status")
		}
		status = parsed
	}

	cmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), request.Number,
		request.Customer, request.Amount, request.DueDate, status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid invoice data: "+err.Error())
	}

	created, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, invoiceResponse(created))
}

// CreatePrice handles POST /api/v1/prices - adds a price list entry.
func (s *Server) CreatePrice(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	var request CreatePriceRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreatePriceCommand(kernel.NewUUID(), request.ProductType,
		request.Region, request.Location, request.PerUnit)
	if err != nil {
		return respondBadRequest(ctx, "Invalid price data: "+err.Error())
	}

	created, err := s.createPriceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, priceResponse(created))
}

// ListPrices handles GET /api/v1/prices - lists price entries with an
// optional product type filter.
func (s *Server) ListPrices(ctx echo.Context) error {
	if _, ok := requireStaff(ctx); !ok {
		return nil
	}

	query := queries.NewListPricesQuery(ctx.QueryParam("productType"))

	rows, err := s.listPricesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, priceListResponse(rows))
}

// ListInvoices handles GET /api/v1/invoices - lists invoices with
// optional customer and status filters.
func (s *Server) ListInvoices(ctx echo.Context) error {
	var status *invoice.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := invoice.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status filter")
		}
		status = &parsed
	}

	query := queries.NewListInvoicesQuery(actorFromRequest(ctx),
		ctx.QueryParam("customer"), status)

	rows, err := s.listInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceListResponse(rows))
}
