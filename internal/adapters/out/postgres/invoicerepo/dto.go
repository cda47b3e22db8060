// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"distribution/internal/core/domain/model/invoice"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. The number carries a unique index; a duplicate manual entry
// fails on insert.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"uniqueIndex"`
	Customer  string    `gorm:"index"`
	Amount    int64
	DueDate   time.Time
	Status    int `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:        aggregate.ID().Bytes(),
		Number:    aggregate.Number(),
		Customer:  aggregate.Customer(),
		Amount:    aggregate.Amount(),
		DueDate:   aggregate.DueDate(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(id, dto.Number, dto.Customer, dto.Amount, dto.DueDate,
		invoice.Status(dto.Status), dto.CreatedAt)
}
