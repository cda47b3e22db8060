package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// CodeFromID derives the human-readable shipment code from the shipment's
// identifier: "SHP-" plus the first eight hex digits of the UUID. Unlike
// the random ranges it replaces, the code inherits the UUID's uniqueness.
func CodeFromID(id kernel.UUID) string {
	return "SHP-" + strings.ToUpper(id.Bytes().String()[:8])
}

// Shipment is the shipment aggregate root: the route of one load against
// one order, with its delivery progress and inspection sign-off.
type Shipment struct {
	id      kernel.UUID
	orderID kernel.UUID
	code    string

	pickupLocation  string
	dropoffLocation string
	vehicle         string
	notes           string

	status           Status
	inspectionStatus InspectionStatus
	inspectedBy      string
	inspectedAt      *time.Time
	receivedBy       string
	receivedAt       *time.Time

	createdAt time.Time

	isConstructed bool
}

// NewShipment creates a draft shipment against an order with a pending
// inspection and a code derived from the shipment id.
func NewShipment(id, orderID kernel.UUID, pickupLocation, dropoffLocation, vehicle, notes string,
	createdAt time.Time) (*Shipment, error) {
	s := &Shipment{
		status:           StatusDraft,
		inspectionStatus: InspectionPending,
		isConstructed:    true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setPickupLocation(pickupLocation),
		s.setDropoffLocation(dropoffLocation),
		s.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	s.code = CodeFromID(id)
	s.notes = notes
	s.createdAt = createdAt
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence and re-checks
// the delivered-implies-approved invariant.
func RestoreShipment(id, orderID kernel.UUID, code, pickupLocation, dropoffLocation, vehicle, notes string,
	status Status, inspectionStatus InspectionStatus,
	inspectedBy string, inspectedAt *time.Time,
	receivedBy string, receivedAt *time.Time,
	createdAt time.Time) (*Shipment, error) {
	s, err := NewShipment(id, orderID, pickupLocation, dropoffLocation, vehicle, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = inspectionStatus.Validate(); err != nil {
		return nil, err
	}
	if status == StatusDelivered && inspectionStatus != InspectionApproved {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("delivered shipment has inspection status %s", inspectionStatus))
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	s.code = code
	s.status = status
	s.inspectionStatus = inspectionStatus
	s.inspectedBy = inspectedBy
	s.inspectedAt = inspectedAt
	s.receivedBy = receivedBy
	s.receivedAt = receivedAt
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the identifier of the linked order.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// Code returns the human-readable shipment code.
func (s *Shipment) Code() string { return s.code }

// PickupLocation returns the pickup location.
func (s *Shipment) PickupLocation() string { return s.pickupLocation }

// DropoffLocation returns the dropoff location.
func (s *Shipment) DropoffLocation() string { return s.dropoffLocation }

// Vehicle returns the assigned vehicle.
func (s *Shipment) Vehicle() string { return s.vehicle }

// Notes returns the free-form notes ("" when none).
func (s *Shipment) Notes() string { return s.notes }

// Status returns the delivery progress state.
func (s *Shipment) Status() Status { return s.status }

// InspectionStatus returns the inspection sign-off state.
func (s *Shipment) InspectionStatus() InspectionStatus { return s.inspectionStatus }

// InspectedBy returns the last inspector ("" when never inspected).
func (s *Shipment) InspectedBy() string { return s.inspectedBy }

// InspectedAt returns the last inspection time (nil when never inspected).
func (s *Shipment) InspectedAt() *time.Time { return s.inspectedAt }

// ReceivedBy returns who confirmed receipt ("" when not received).
func (s *Shipment) ReceivedBy() string { return s.receivedBy }

// ReceivedAt returns when receipt was confirmed (nil when not received).
func (s *Shipment) ReceivedAt() *time.Time { return s.receivedAt }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// Relink moves the shipment to a different order.
func (s *Shipment) Relink(orderID kernel.UUID) error {
	return s.setOrderID(orderID)
}

// ChangePickupLocation updates the pickup location.
func (s *Shipment) ChangePickupLocation(pickupLocation string) error {
	return s.setPickupLocation(pickupLocation)
}

// ChangeDropoffLocation updates the dropoff location.
func (s *Shipment) ChangeDropoffLocation(dropoffLocation string) error {
	return s.setDropoffLocation(dropoffLocation)
}

// ChangeVehicle updates the assigned vehicle.
func (s *Shipment) ChangeVehicle(vehicle string) error {
	return s.setVehicle(vehicle)
}

// ChangeNotes replaces the free-form notes.
func (s *Shipment) ChangeNotes(notes string) {
	s.notes = notes
}

// ChangeStatus moves the delivery progress between draft and scheduled.
// delivered cannot be set directly; it is reached only through Receive so
// the inspection gate cannot be bypassed by a field patch.
func (s *Shipment) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusDelivered {
		return errs.NewPreconditionFailedError("delivered can only be reached by receiving the shipment")
	}
	if s.status == StatusDelivered {
		return errs.NewPreconditionFailedError("delivered shipments cannot change status")
	}
	s.status = status
	return nil
}

// Inspect records the inspection decision. Repeating the same decision is
// idempotent apart from the advancing timestamp. Receipt requires an
// approved inspection, so once the shipment has been received the approval
// cannot be withdrawn; a delivered shipment always carries it.
func (s *Shipment) Inspect(approve bool, inspector string, at time.Time) error {
	if inspector == "" {
		return errs.NewValueIsRequiredError("inspector")
	}
	if s.status == StatusDelivered && !approve {
		return errs.NewPreconditionFailedError("received shipments cannot have their inspection rejected")
	}

	if approve {
		s.inspectionStatus = InspectionApproved
	} else {
		s.inspectionStatus = InspectionRejected
	}
	s.inspectedBy = inspector
	s.inspectedAt = &at
	return nil
}

// Receive confirms physical delivery. It requires an approved inspection
// and fails on an already delivered shipment, so the receipt side effects
// (order completion, invoicing) happen exactly once.
func (s *Shipment) Receive(receiver string, at time.Time) error {
	if receiver == "" {
		return errs.NewValueIsRequiredError("receiver")
	}
	if s.status == StatusDelivered {
		return errs.NewPreconditionFailedError("shipment has already been received")
	}
	if s.inspectionStatus != InspectionApproved {
		return errs.NewPreconditionFailedError("shipment is not approved for receiving")
	}

	s.status = StatusDelivered
	s.receivedBy = receiver
	s.receivedAt = &at
	return nil
}

// EnsureDeletable guards deletion: delivered shipments must stay for
// invoice traceability.
func (s *Shipment) EnsureDeletable() error {
	if s.status == StatusDelivered {
		return errs.NewPreconditionFailedError("delivered shipments cannot be deleted")
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	s.pickupLocation = pickupLocation
	return nil
}

func (s *Shipment) setDropoffLocation(dropoffLocation string) error {
	if dropoffLocation == "" {
		return errs.NewValueIsRequiredError("dropoffLocation")
	}
	s.dropoffLocation = dropoffLocation
	return nil
}

func (s *Shipment) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	s.vehicle = vehicle
	return nil
}
