package kernel

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// quantityStepHundredths is the order quantity granularity: 0.05 units,
// stored as hundredths of a unit.
const quantityStepHundredths = 5

// ErrQuantityIsNotConstructed indicates a zero-value Quantity that was not
// created through NewQuantityFromHundredths.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"Quantity must be created via NewQuantityFromHundredths")

// Quantity is the fixed-point order quantity value object. It stores an
// integer count of hundredths of a unit and is valid only when positive
// and aligned to 0.05-unit steps.
//
// Example:
//
//	q, err := kernel.NewQuantityFromHundredths(12000) // 120 units
//	if err != nil {
//	    // not a positive multiple of 0.05
//	}
type Quantity struct {
	hundredths    int64
	isConstructed bool
}

// NewQuantityFromHundredths creates a Quantity from an integer count of
// hundredths of a unit. The count must be positive and divisible by 5.
func NewQuantityFromHundredths(hundredths int64) (Quantity, error) {
	if hundredths <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", hundredths))
	}
	if hundredths%quantityStepHundredths != 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d hundredths is not a multiple of 0.05 units", hundredths))
	}
	return Quantity{hundredths: hundredths, isConstructed: true}, nil
}

// Hundredths returns the quantity as an integer count of hundredths of a unit.
func (q Quantity) Hundredths() int64 {
	return q.hundredths
}

// IsEqual reports whether two quantities carry the same value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.hundredths == other.hundredths
}

// Validate returns ErrQuantityIsNotConstructed for a zero-value Quantity.
func (q Quantity) Validate() error {
	if !q.isConstructed {
		return ErrQuantityIsNotConstructed
	}
	return nil
}
