package http

import (
	"time"

	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/pricing"
	"distribution/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// Request bodies. Monetary amounts are minor currency units; quantities
// are hundredths of a unit.
type (
	CreateCustomerRequest struct {
		Name        string `json:"name"`
		TaxCode     string `json:"taxCode"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		CreditLimit int64  `json:"creditLimit"`
	}

	CreateOrderRequest struct {
		CustomerID         string     `json:"customerId"`
		Product            string     `json:"product"`
		QuantityHundredths int64      `json:"quantityHundredths"`
		DeliveryDate       time.Time  `json:"deliveryDate"`
		ExpiresAt          *time.Time `json:"expiresAt"`
		Region             string     `json:"region"`
		PickupLocation     string     `json:"pickupLocation"`
		DeliveryMethod     string     `json:"deliveryMethod"`
		Vehicle            string     `json:"vehicle"`
	}

	ReviewOrderRequest struct {
		Approved bool   `json:"approved"`
		Approver string `json:"approver"`
	}

	CreateShipmentRequest struct {
		OrderID         string `json:"orderId"`
		PickupLocation  string `json:"pickupLocation"`
		DropoffLocation string `json:"dropoffLocation"`
		Vehicle         string `json:"vehicle"`
		Notes           string `json:"notes"`
	}

	UpdateShipmentRequest struct {
		OrderID         *string `json:"orderId"`
		PickupLocation  *string `json:"pickupLocation"`
		DropoffLocation *string `json:"dropoffLocation"`
		Vehicle         *string `json:"vehicle"`
		Notes           *string `json:"notes"`
		Status          *string `json:"status"`
	}

	InspectShipmentRequest struct {
		Approved  bool   `json:"approved"`
		Inspector string `json:"inspector"`
	}

	ReceiveShipmentRequest struct {
		Receiver string `json:"receiver"`
	}

	CreateInvoiceRequest struct {
		Number   string    `json:"number"`
		Customer string    `json:"customer"`
		Amount   int64     `json:"amount"`
		DueDate  time.Time `json:"dueDate"`
		Status   string    `json:"status"`
	}

	CreatePriceRequest struct {
		ProductType string `json:"productType"`
		Region      string `json:"region"`
		Location    string `json:"location"`
		PerUnit     int64  `json:"perUnit"`
	}
)

// Response bodies.
type (
	CustomerResponse struct {
		ID              uuid.UUID `json:"id"`
		Name            string    `json:"name"`
		TaxCode         string    `json:"taxCode"`
		Address         string    `json:"address"`
		Phone           string    `json:"phone"`
		Email           string    `json:"email"`
		CreditLimit     int64     `json:"creditLimit"`
		CreditUsed      int64     `json:"creditUsed"`
		CreditRemaining int64     `json:"creditRemaining"`
	}

	OrderResponse struct {
		ID                 uuid.UUID  `json:"id"`
		CustomerID         uuid.UUID  `json:"customerId"`
		CustomerName       string     `json:"customerName"`
		Product            string     `json:"product"`
		QuantityHundredths int64      `json:"quantityHundredths"`
		DeliveryDate       time.Time  `json:"deliveryDate"`
		ExpiresAt          *time.Time `json:"expiresAt"`
		Region             string     `json:"region"`
		PickupLocation     string     `json:"pickupLocation"`
		DeliveryMethod     string     `json:"deliveryMethod"`
		Vehicle            string     `json:"vehicle"`
		Status             string     `json:"status"`
		ApprovalStatus     string     `json:"approvalStatus"`
		CreditHold         int64      `json:"creditHold"`
		IsLocked           bool       `json:"isLocked"`
		ApprovedBy         string     `json:"approvedBy,omitempty"`
		ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	}

	ShipmentResponse struct {
		ID               uuid.UUID  `json:"id"`
		OrderID          uuid.UUID  `json:"orderId"`
		Code             string     `json:"code"`
		Product          string     `json:"product,omitempty"`
		PickupLocation   string     `json:"pickupLocation"`
		DropoffLocation  string     `json:"dropoffLocation"`
		Vehicle          string     `json:"vehicle"`
		Notes            string     `json:"notes"`
		Status           string     `json:"status"`
		InspectionStatus string     `json:"inspectionStatus"`
		InspectedBy      string     `json:"inspectedBy,omitempty"`
		InspectedAt      *time.Time `json:"inspectedAt,omitempty"`
		ReceivedBy       string     `json:"receivedBy,omitempty"`
		ReceivedAt       *time.Time `json:"receivedAt,omitempty"`
		CreatedAt        time.Time  `json:"createdAt"`
	}

	InvoiceResponse struct {
		ID        uuid.UUID `json:"id"`
		Number    string    `json:"number"`
		Customer  string    `json:"customer"`
		Amount    int64     `json:"amount"`
		DueDate   time.Time `json:"dueDate"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"createdAt"`
	}

	PriceResponse struct {
		ID          uuid.UUID `json:"id"`
		ProductType string    `json:"productType"`
		Region      string    `json:"region,omitempty"`
		Location    string    `json:"location,omitempty"`
		PerUnit     int64     `json:"perUnit"`
	}

	CreditReportRow struct {
		CustomerID      uuid.UUID `json:"customerId"`
		CustomerName    string    `json:"customerName"`
		CreditLimit     int64     `json:"creditLimit"`
		CreditUsed      int64     `json:"creditUsed"`
		CreditRemaining int64     `json:"creditRemaining"`
		OutstandingDebt int64     `json:"outstandingDebt"`
	}
)

func customerResponse(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		TaxCode:         aggregate.TaxCode(),
		Address:         aggregate.Address(),
		Phone:           aggregate.Phone(),
		Email:           aggregate.Email(),
		CreditLimit:     aggregate.CreditLimit(),
		CreditUsed:      aggregate.CreditUsed(),
		CreditRemaining: aggregate.CreditRemaining(),
	}
}

func orderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		CustomerName:       aggregate.CustomerName(),
		Product:            aggregate.Product(),
		QuantityHundredths: aggregate.Quantity().Hundredths(),
		DeliveryDate:       aggregate.DeliveryDate(),
		ExpiresAt:          aggregate.ExpiresAt(),
		Region:             aggregate.Region(),
		PickupLocation:     aggregate.PickupLocation(),
		DeliveryMethod:     aggregate.DeliveryMethod(),
		Vehicle:            aggregate.Vehicle(),
		Status:             aggregate.Status().String(),
		ApprovalStatus:     aggregate.ApprovalStatus().String(),
		CreditHold:         aggregate.CreditHold(),
		IsLocked:           aggregate.IsLocked(),
		ApprovedBy:         aggregate.ApprovedBy(),
		ApprovedAt:         aggregate.ApprovedAt(),
	}
}

func orderListResponse(rows []queries.ListOrdersQueryResponse) []OrderResponse {
	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderResponse{
			ID:                 row.ID.Bytes(),
			CustomerID:         row.CustomerID.Bytes(),
			CustomerName:       row.CustomerName,
			Product:            row.Product,
			QuantityHundredths: row.QuantityHundredths,
			DeliveryDate:       row.DeliveryDate,
			ExpiresAt:          row.ExpiresAt,
			Region:             row.Region,
			PickupLocation:     row.PickupLocation,
			DeliveryMethod:     row.DeliveryMethod,
			Vehicle:            row.Vehicle,
			Status:             row.Status.String(),
			ApprovalStatus:     row.ApprovalStatus.String(),
			CreditHold:         row.CreditHold,
			IsLocked:           row.IsLocked,
			ApprovedBy:         row.ApprovedBy,
			ApprovedAt:         row.ApprovedAt,
		}
	}
	return response
}

func shipmentResponse(aggregate *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Code:             aggregate.Code(),
		PickupLocation:   aggregate.PickupLocation(),
		DropoffLocation:  aggregate.DropoffLocation(),
		Vehicle:          aggregate.Vehicle(),
		Notes:            aggregate.Notes(),
		Status:           aggregate.Status().String(),
		InspectionStatus: aggregate.InspectionStatus().String(),
		InspectedBy:      aggregate.InspectedBy(),
		InspectedAt:      aggregate.InspectedAt(),
		ReceivedBy:       aggregate.ReceivedBy(),
		ReceivedAt:       aggregate.ReceivedAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func shipmentRowResponse(row queries.ListShipmentsQueryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:               row.ID.Bytes(),
		OrderID:          row.OrderID.Bytes(),
		Code:             row.Code,
		Product:          row.Product,
		PickupLocation:   row.PickupLocation,
		DropoffLocation:  row.DropoffLocation,
		Vehicle:          row.Vehicle,
		Notes:            row.Notes,
		Status:           row.Status.String(),
		InspectionStatus: row.InspectionStatus.String(),
		InspectedBy:      row.InspectedBy,
		InspectedAt:      row.InspectedAt,
		ReceivedBy:       row.ReceivedBy,
		ReceivedAt:       row.ReceivedAt,
		CreatedAt:        row.CreatedAt,
	}
}

func shipmentListResponse(rows []queries.ListShipmentsQueryResponse) []ShipmentResponse {
	response := make([]ShipmentResponse, len(rows))
	for i, row := range rows {
		response[i] = shipmentRowResponse(row)
	}
	return response
}

func invoiceResponse(aggregate *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        aggregate.ID().Bytes(),
		Number:    aggregate.Number(),
		Customer:  aggregate.Customer(),
		Amount:    aggregate.Amount(),
		DueDate:   aggregate.DueDate(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func invoiceListResponse(rows []queries.ListInvoicesQueryResponse) []InvoiceResponse {
	response := make([]InvoiceResponse, len(rows))
	for i, row := range rows {
		response[i] = InvoiceResponse{
			ID:        row.ID.Bytes(),
			Number:    row.Number,
			Customer:  row.Customer,
			Amount:    row.Amount,
			DueDate:   row.DueDate,
			Status:    row.Status.String(),
			CreatedAt: row.CreatedAt,
		}
	}
	return response
}

func customerListResponse(rows []queries.ListCustomersQueryResponse) []CustomerResponse {
	response := make([]CustomerResponse, len(rows))
	for i, row := range rows {
		response[i] = CustomerResponse{
			ID:              row.ID.Bytes(),
			Name:            row.Name,
			TaxCode:         row.TaxCode,
			Address:         row.Address,
			Phone:           row.Phone,
			Email:           row.Email,
			CreditLimit:     row.CreditLimit,
			CreditUsed:      row.CreditUsed,
			CreditRemaining: row.CreditRemaining,
		}
	}
	return response
}

func priceResponse(entry *pricing.Price) PriceResponse {
	return PriceResponse{
		ID:          entry.ID().Bytes(),
		ProductType: entry.ProductType(),
		Region:      entry.Region(),
		Location:    entry.Location(),
		PerUnit:     entry.PerUnit(),
	}
}

func priceListResponse(rows []queries.ListPricesQueryResponse) []PriceResponse {
	response := make([]PriceResponse, len(rows))
	for i, row := range rows {
		response[i] = PriceResponse{
			ID:          row.ID.Bytes(),
			ProductType: row.ProductType,
			Region:      row.Region,
			Location:    row.Location,
			PerUnit:     row.PerUnit,
		}
	}
	return response
}

func creditReportResponse(rows []queries.GetCreditReportQueryResponse) []CreditReportRow {
	response := make([]CreditReportRow, len(rows))
	for i, row := range rows {
		response[i] = CreditReportRow{
			CustomerID:      row.CustomerID.Bytes(),
			CustomerName:    row.CustomerName,
			CreditLimit:     row.CreditLimit,
			CreditUsed:      row.CreditUsed,
			CreditRemaining: row.CreditRemaining,
			OutstandingDebt: row.OutstandingDebt,
		}
	}
	return response
}
