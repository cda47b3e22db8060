// Package order provides the sales-order aggregate and its two state
// axes: the delivery lifecycle (draft -> confirmed -> shipped) and the
// approval decision (pending -> approved | rejected).
//
// Key business rules:
//   - The approval decision is made once at creation from the credit
//     ledger's reserve outcome; a denied reservation is a valid rejected
//     order, not a failure.
//   - creditHold > 0 exactly when the order is approved.
//   - isLocked is true exactly when the order is rejected.
//   - A manual override by an authorized approver may flip the decision
//     later; the caller is responsible for adjusting the credit ledger
//     so the creditHold invariant keeps holding.
//   - shipped is reached only through shipment receipt, never directly.
package order
