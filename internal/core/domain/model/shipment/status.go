package shipment

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the delivery progress of a shipment.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial state of a newly created shipment.
	StatusDraft

	// StatusScheduled means the shipment has been planned for transport.
	StatusScheduled

	// StatusDelivered is the terminal state, reached only through Receive.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusScheduled: "scheduled",
		StatusDelivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusScheduled: "scheduled",
		StatusDelivered: "delivered",
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
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status is draft, scheduled, or delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
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
