package invoice

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the payment state of an invoice.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusUnpaid is the initial state of every issued invoice.
	StatusUnpaid

	// StatusPaid means payment has been recorded.
	StatusPaid

	// StatusOverdue means the invoice is unpaid past its due date.
	StatusOverdue
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusUnpaid:  "unpaid",
		StatusPaid:    "paid",
		StatusOverdue: "overdue",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusUnpaid:  "unpaid",
		StatusPaid:    "paid",
		StatusOverdue: "overdue",
	}
}

// StatusFromString parses the wire representation of an invoice status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid invoice status", s))
}

// Validate checks that the Status is unpaid, paid, or overdue.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid invoice status", s))
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
