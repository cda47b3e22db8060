package queries

import (
	"context"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCreditReportQueryHandler aggregates the credit exposure per customer.
// Outstanding debt sums unpaid and overdue invoices, matched to customers
// by name since invoices carry the billed name.
type GetCreditReportQueryHandler struct {
	db *gorm.DB
}

// NewGetCreditReportQueryHandler creates a handler for the credit report.
func NewGetCreditReportQueryHandler(db *gorm.DB) GetCreditReportQueryHandler {
	return GetCreditReportQueryHandler{db: db}
}

// Handle executes the report query. Results are sorted by name; a
// customer-scoped actor sees only its own row.
func (h GetCreditReportQueryHandler) Handle(ctx context.Context,
	query GetCreditReportQuery) ([]GetCreditReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetCreditReportQueryResponse, 0)

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerID == nil {
		return report, nil
	}

	sql := `
		SELECT
			c.id,
			c.name,
			c.credit_limit,
			c.credit_used,
			c.credit_limit - c.credit_used AS credit_remaining,
			COALESCE(SUM(i.amount), 0) AS outstanding_debt
		FROM customers c
		LEFT JOIN invoices i ON i.customer = c.name AND i.status IN (?, ?)
	`
	args := []any{int(invoice.StatusUnpaid), int(invoice.StatusOverdue)}

	if query.Actor().IsCustomerScoped() {
		sql += " WHERE c.id = ?"
		args = append(args, query.Actor().CustomerID.Bytes())
	}
	sql += `
		GROUP BY c.id, c.name, c.credit_limit, c.credit_used
		ORDER BY c.name
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetCreditReportQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&r.CustomerName,
			&r.CreditLimit,
			&r.CreditUsed,
			&r.CreditRemaining,
			&r.OutstandingDebt,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.CustomerID = customerID
		report = append(report, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
