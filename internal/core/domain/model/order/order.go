package order

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrApprovalAlreadyDecided is returned when ApplyCreditDecision is called
// on an order whose approval status is no longer pending.
var ErrApprovalAlreadyDecided = errors.New("credit decision has already been applied")

// Order is the sales-order aggregate root. It carries the product and
// delivery details, the denormalized customer name used by downstream
// filtering, and the two state axes (Status, ApprovalStatus) together
// with the credit hold taken against the customer's credit line.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string

	product  string
	quantity kernel.Quantity

	deliveryDate   time.Time
	expiresAt      *time.Time
	region         string
	pickupLocation string
	deliveryMethod string
	vehicle        string

	status         Status
	approvalStatus ApprovalStatus
	creditHold     int64
	isLocked       bool
	approvedBy     string
	approvedAt     *time.Time

	isConstructed bool
}

// NewOrder creates an order awaiting its credit decision: status draft,
// approval pending, no credit held. ApplyCreditDecision must be called
// with the ledger outcome before the order is persisted.
func NewOrder(id, customerID kernel.UUID, customerName, product string, quantity kernel.Quantity,
	deliveryDate time.Time, expiresAt *time.Time,
	region, pickupLocation, deliveryMethod, vehicle string) (*Order, error) {
	o := &Order{
		status:         StatusDraft,
		approvalStatus: ApprovalPending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setProduct(product),
		o.setQuantity(quantity),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	o.expiresAt = expiresAt
	o.region = region
	o.pickupLocation = pickupLocation
	o.deliveryMethod = deliveryMethod
	o.vehicle = vehicle
	return o, nil
}

// RestoreOrder reconstructs an order from persistence and re-checks the
// cross-field invariants: a positive creditHold only on approved orders,
// isLocked exactly when rejected.
func RestoreOrder(id, customerID kernel.UUID, customerName, product string, quantity kernel.Quantity,
	deliveryDate time.Time, expiresAt *time.Time,
	region, pickupLocation, deliveryMethod, vehicle string,
	status Status, approvalStatus ApprovalStatus, creditHold int64, isLocked bool,
	approvedBy string, approvedAt *time.Time) (*Order, error) {
	o, err := NewOrder(id, customerID, customerName, product, quantity,
		deliveryDate, expiresAt, region, pickupLocation, deliveryMethod, vehicle)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = approvalStatus.Validate(); err != nil {
		return nil, err
	}
	if creditHold < 0 || (creditHold > 0 && approvalStatus != ApprovalApproved) {
		return nil, errs.NewValueIsInvalidErrorWithCause("creditHold",
			fmt.Errorf("hold of %d is inconsistent with approval status %s", creditHold, approvalStatus))
	}
	if isLocked != (approvalStatus == ApprovalRejected) {
		return nil, errs.NewValueIsInvalidErrorWithCause("isLocked",
			fmt.Errorf("lock flag %t is inconsistent with approval status %s", isLocked, approvalStatus))
	}

	o.status = status
	o.approvalStatus = approvalStatus
	o.creditHold = creditHold
	o.isLocked = isLocked
	o.approvedBy = approvedBy
	o.approvedAt = approvedAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// CustomerName returns the denormalized customer name snapshot.
func (o *Order) CustomerName() string { return o.customerName }

// Product returns the ordered product type.
func (o *Order) Product() string { return o.product }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() kernel.Quantity { return o.quantity }

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time { return o.deliveryDate }

// ExpiresAt returns the optional expiry date (nil when absent).
func (o *Order) ExpiresAt() *time.Time { return o.expiresAt }

// Region returns the delivery region ("" when unspecified).
func (o *Order) Region() string { return o.region }

// PickupLocation returns the pickup location ("" when unspecified).
func (o *Order) PickupLocation() string { return o.pickupLocation }

// DeliveryMethod returns the delivery method ("" when unspecified).
func (o *Order) DeliveryMethod() string { return o.deliveryMethod }

// Vehicle returns the assigned vehicle ("" when unspecified).
func (o *Order) Vehicle() string { return o.vehicle }

// Status returns the delivery lifecycle state.
func (o *Order) Status() Status { return o.status }

// ApprovalStatus returns the credit decision state.
func (o *Order) ApprovalStatus() ApprovalStatus { return o.approvalStatus }

// CreditHold returns the amount held against the customer's credit line.
func (o *Order) CreditHold() int64 { return o.creditHold }

// IsLocked reports whether the order is locked (true exactly when rejected).
func (o *Order) IsLocked() bool { return o.isLocked }

// ApprovedBy returns the approver of the last manual override ("" when none).
func (o *Order) ApprovedBy() string { return o.approvedBy }

// ApprovedAt returns the timestamp of the last manual override (nil when none).
func (o *Order) ApprovedAt() *time.Time { return o.approvedAt }

// ApplyCreditDecision records the ledger's reservation outcome. Granted
// reservations confirm the order and hold the amount; denials reject and
// lock it with no hold. The decision is all-or-nothing and can be applied
// only once, while the approval status is still pending.
func (o *Order) ApplyCreditDecision(granted bool, amount int64) error {
	if o.approvalStatus != ApprovalPending {
		return ErrApprovalAlreadyDecided
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	if granted {
		o.approvalStatus = ApprovalApproved
		o.creditHold = amount
		o.status = StatusConfirmed
		o.isLocked = false
		return nil
	}

	o.approvalStatus = ApprovalRejected
	o.creditHold = 0
	o.status = StatusDraft
	o.isLocked = true
	return nil
}

// ApproveManually overrides the credit decision to approved, recording the
// hold the caller reserved on the ledger. The delivery status is left
// untouched.
func (o *Order) ApproveManually(approver string, holdAmount int64, at time.Time) error {
	if approver == "" {
		return errs.NewValueIsRequiredError("approver")
	}
	if holdAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("holdAmount",
			fmt.Errorf("%d is negative", holdAmount))
	}

	o.approvalStatus = ApprovalApproved
	o.creditHold = holdAmount
	o.isLocked = false
	o.approvedBy = approver
	o.approvedAt = &at
	return nil
}

// RejectManually overrides the credit decision to rejected and locks the
// order. It returns the credit hold that the caller must release back to
// the ledger.
func (o *Order) RejectManually(approver string, at time.Time) (released int64, err error) {
	if approver == "" {
		return 0, errs.NewValueIsRequiredError("approver")
	}

	released = o.creditHold
	o.approvalStatus = ApprovalRejected
	o.creditHold = 0
	o.isLocked = true
	o.approvedBy = approver
	o.approvedAt = &at
	return released, nil
}

// MarkShipped moves the order to shipped. Called by shipment receipt only.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerID = customerID
	o.customerName = customerName
	return nil
}

func (o *Order) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	o.product = product
	return nil
}

func (o *Order) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = deliveryDate
	return nil
}
