package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// ApprovalStatus represents the credit decision on an order, independent
// of its delivery lifecycle.
type ApprovalStatus int

const (
	// ApprovalUnknown catches uninitialized ApprovalStatus values.
	ApprovalUnknown ApprovalStatus = iota

	// ApprovalPending is the state before the credit decision is applied.
	// Persisted orders never carry it: the decision is made within the
	// same transaction that creates the order.
	ApprovalPending

	// ApprovalApproved means the order's amount is held against the
	// customer's credit line.
	ApprovalApproved

	// ApprovalRejected means the reservation was denied (or manually
	// revoked); no credit is held and the order is locked.
	ApprovalRejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown:  "unknown",
		ApprovalPending:  "pending",
		ApprovalApproved: "approved",
		ApprovalRejected: "rejected",
	}
}

func getValidApprovalStatusStrings() map[ApprovalStatus]string {
	//nolint:exhaustive // ApprovalUnknown is intentionally excluded as it's invalid
	return map[ApprovalStatus]string{
		ApprovalPending:  "pending",
		ApprovalApproved: "approved",
		ApprovalRejected: "rejected",
	}
}

// ApprovalStatusFromString parses the wire representation of an approval status.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getValidApprovalStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid approval status", s))
}

// Validate checks that the ApprovalStatus is pending, approved, or rejected.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the lower-case wire name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
