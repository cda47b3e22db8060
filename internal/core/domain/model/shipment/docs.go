// Package shipment provides the shipment aggregate. A shipment carries
// goods for exactly one order and tracks two independent state axes:
// delivery progress (draft -> scheduled -> delivered) and the inspection
// sign-off (pending -> approved | rejected).
//
// Key business rules:
//   - delivered is reached only through Receive, which requires an
//     approved inspection; the two axes are separate enumerations so a
//     partial update can never produce an invalid combination.
//   - Receiving is not repeatable: a delivered shipment cannot be
//     received again (receipt triggers invoicing exactly once).
//   - Delivered shipments cannot be deleted, preserving invoice
//     traceability.
//   - The human-readable code is derived deterministically from the
//     shipment's UUID instead of a random range, so codes cannot collide.
package shipment
