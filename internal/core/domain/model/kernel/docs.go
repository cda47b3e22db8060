// Package kernel contains the shared value objects of the domain model:
// UUID identities and the fixed-point Quantity used on orders.
//
// Value objects in this package are immutable and must be created through
// their factory functions; the zero value is invalid and fails Validate().
package kernel
