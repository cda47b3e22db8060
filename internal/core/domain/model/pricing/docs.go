// Package pricing holds the read-only price list entry and the single
// monetary computation of the system: order amount = quantity × unit price,
// rounded half up to whole minor currency units.
//
// Price records are maintained by an external catalog-management
// collaborator; this system only resolves them with a
// location > region > type-only fallback (see ports.PriceResolver).
package pricing
