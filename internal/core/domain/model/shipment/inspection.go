package shipment

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// InspectionStatus represents the quality sign-off on a shipment,
// independent of its delivery progress. An approved inspection is the
// prerequisite for receiving.
type InspectionStatus int

const (
	// InspectionUnknown catches uninitialized InspectionStatus values.
	InspectionUnknown InspectionStatus = iota

	// InspectionPending is the initial state before any inspection.
	InspectionPending

	// InspectionApproved means the shipment passed inspection.
	InspectionApproved

	// InspectionRejected means the shipment failed inspection.
	InspectionRejected
)

func getInspectionStatusStrings() map[InspectionStatus]string {
	return map[InspectionStatus]string{
		InspectionUnknown:  "unknown",
		InspectionPending:  "pending",
		InspectionApproved: "approved",
		InspectionRejected: "rejected",
	}
}

func getValidInspectionStatusStrings() map[InspectionStatus]string {
	//nolint:exhaustive // InspectionUnknown is intentionally excluded as it's invalid
	return map[InspectionStatus]string{
		InspectionPending:  "pending",
		InspectionApproved: "approved",
		InspectionRejected: "rejected",
	}
}

// InspectionStatusFromString parses the wire representation of an inspection status.
func InspectionStatusFromString(s string) (InspectionStatus, error) {
	for status, str := range getValidInspectionStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return InspectionUnknown, errs.NewValueIsInvalidErrorWithCause("inspectionStatus",
		fmt.Errorf("%q is not a valid inspection status", s))
}

// Validate checks that the InspectionStatus is pending, approved, or rejected.
func (s InspectionStatus) Validate() error {
	if _, ok := getValidInspectionStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("inspectionStatus",
			fmt.Errorf("%d is not a valid inspection status", s))
	}
	return nil
}

// String returns the lower-case wire name of the inspection status.
func (s InspectionStatus) String() string {
	if str, ok := getInspectionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
