package queries

import (
	"context"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListInvoicesQueryHandler retrieves invoice read models from the
// database. Invoices reference their customer by name, so customer
// scoping filters on the actor's customer name.
type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewListInvoicesQueryHandler creates a handler for invoice list queries.
func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by due date. A
// customer-scoped actor without a linked customer name gets an empty
// slice.
func (h ListInvoicesQueryHandler) Handle(ctx context.Context,
	query ListInvoicesQuery) ([]ListInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]ListInvoicesQueryResponse, 0)

	if query.Actor().IsCustomerScoped() && query.Actor().CustomerName == "" {
		return invoices, nil
	}

	sql := `
		SELECT
			id,
			number,
			customer,
			amount,
			due_date,
			status,
			created_at
		FROM invoices
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Actor().IsCustomerScoped() {
		sql += " AND customer = ?"
		args = append(args, query.Actor().CustomerName)
	}
	if query.Customer() != "" {
		sql += " AND customer ILIKE ?"
		args = append(args, "%"+query.Customer()+"%")
	}
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, int(*query.Status()))
	}
	sql += " ORDER BY due_date"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var i ListInvoicesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&i.Number,
			&i.Customer,
			&i.Amount,
			&i.DueDate,
			&status,
			&i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		i.ID = invoiceID

		i.Status = invoice.Status(status)
		invoices = append(invoices, i)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
