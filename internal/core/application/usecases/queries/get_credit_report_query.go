package queries

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/guard"
)

var ErrGetCreditReportQueryIsNotConstructed = errors.New(
	"GetCreditReportQuery must be created via NewGetCreditReportQuery constructor",
)

// GetCreditReportQuery retrieves the credit exposure per customer: the
// ledger position plus the total of invoices not yet paid.
type GetCreditReportQuery struct {
	actor ports.Actor

	guard guard.ConstructorGuard
}

// NewGetCreditReportQuery creates a query for the credit report.
func NewGetCreditReportQuery(actor ports.Actor) GetCreditReportQuery {
	return GetCreditReportQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCreditReportQuery) Validate() error {
	return q.guard.Validate(ErrGetCreditReportQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetCreditReportQuery) Actor() ports.Actor {
	return q.actor
}

// GetCreditReportQueryResponse represents one customer's credit exposure.
type GetCreditReportQueryResponse struct {
	CustomerID      kernel.UUID
	CustomerName    string
	CreditLimit     int64
	CreditUsed      int64
	CreditRemaining int64
	OutstandingDebt int64
}
