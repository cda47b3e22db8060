package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductIsRequired      = errors.New("product is required")
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
)

// CreateOrderCommand represents a request to place a sales order. The
// credit decision is made automatically inside the handler: the order
// amount is priced and reserved against the customer's credit line in the
// same transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, actor,
//	    "PCB40", quantity, deliveryDate, nil, "North", "Plant A", "road", "10t truck")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed with approval status %s", placed.ID(), placed.ApprovalStatus())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	actor          ports.Actor
	product        string
	quantity       kernel.Quantity
	deliveryDate   time.Time
	expiresAt      *time.Time
	region         string
	pickupLocation string
	deliveryMethod string
	vehicle        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a sales order.
// Validates that the IDs are valid, the product is not empty, the
// quantity is constructed, and the delivery date is set. Region, pickup
// location, delivery method and vehicle are optional routing hints.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, actor ports.Actor,
	product string, quantity kernel.Quantity, deliveryDate time.Time, expiresAt *time.Time,
	region, pickupLocation, deliveryMethod, vehicle string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:          actor,
		expiresAt:      expiresAt,
		region:         region,
		pickupLocation: pickupLocation,
		deliveryMethod: deliveryMethod,
		vehicle:        vehicle,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setProduct(product),
		cmd.setQuantity(quantity),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the buyer's identifier as submitted by the caller.
// Customer-scoped actors have this overridden with their own linked
// customer inside the handler.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Actor returns the authenticated caller placing the order.
func (c CreateOrderCommand) Actor() ports.Actor {
	return c.actor
}

// Product returns the ordered product type.
func (c CreateOrderCommand) Product() string {
	return c.product
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() kernel.Quantity {
	return c.quantity
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// ExpiresAt returns the optional quote expiry timestamp.
func (c CreateOrderCommand) ExpiresAt() *time.Time {
	return c.expiresAt
}

// Region returns the delivery region used for price resolution.
func (c CreateOrderCommand) Region() string {
	return c.region
}

// PickupLocation returns the pickup location used for price resolution.
func (c CreateOrderCommand) PickupLocation() string {
	return c.pickupLocation
}

// DeliveryMethod returns the requested delivery method.
func (c CreateOrderCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// Vehicle returns the requested vehicle type.
func (c CreateOrderCommand) Vehicle() string {
	return c.vehicle
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	// Customer-scoped actors never submit a customer ID; the handler
	// substitutes their linked customer.
	if c.actor.IsCustomerScoped() {
		c.customerID = customerID
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProduct(product string) error {
	if product == "" {
		return ErrProductIsRequired
	}

	c.product = product
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = deliveryDate
	return nil
}
