// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. This package implements the repository pattern
// for the customer credit-ledger aggregate, handling the conversion between
// domain entities and database representations.
package customerrepo

import (
	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The name carries a unique index because invoices reference
// customers by name.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	TaxCode     string
	Address     string
	Phone       string
	Email       string
	CreditLimit int64
	CreditUsed  int64
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		TaxCode:     aggregate.TaxCode(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		Email:       aggregate.Email(),
		CreditLimit: aggregate.CreditLimit(),
		CreditUsed:  aggregate.CreditUsed(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.TaxCode, dto.Address, dto.Phone,
		dto.Email, dto.CreditLimit, dto.CreditUsed)
}
