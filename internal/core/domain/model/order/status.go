package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the delivery lifecycle of an order. The progression
// draft -> confirmed -> shipped is one-way; shipped is reached only via
// shipment receipt.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the state of an order whose credit reservation was
	// denied (or whose approval was manually revoked).
	StatusDraft

	// StatusConfirmed is the state of an order whose credit reservation
	// was granted.
	StatusConfirmed

	// StatusShipped is the terminal state, set when a shipment against
	// the order is received.
	StatusShipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusConfirmed: "confirmed",
		StatusShipped:   "shipped",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusConfirmed: "confirmed",
		StatusShipped:   "shipped",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of draft, confirmed, shipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lower-case wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Ship transitions the status to shipped. Valid from draft and confirmed;
// shipping an already shipped order is idempotent.
func (s Status) Ship() (Status, error) {
	switch s {
	case StatusDraft, StatusConfirmed, StatusShipped:
		return StatusShipped, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to ship", s.String()))
	}
}
