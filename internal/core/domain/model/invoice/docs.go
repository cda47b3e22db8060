// Package invoice provides the billing invoice aggregate. Invoices are
// issued exactly once per shipment receipt (amount derived from the order
// quantity and the price resolved at receipt time) or entered manually by
// an operator; they are never deleted automatically.
package invoice
