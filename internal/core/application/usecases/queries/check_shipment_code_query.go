package queries

import (
	"errors"

	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrCheckShipmentCodeQueryIsNotConstructed = errors.New(
	"CheckShipmentCodeQuery must be created via NewCheckShipmentCodeQuery constructor",
)

// CheckShipmentCodeQuery looks a shipment up by its tracking code.
type CheckShipmentCodeQuery struct {
	actor ports.Actor
	code  string

	guard guard.ConstructorGuard
}

// NewCheckShipmentCodeQuery creates a query to look up a shipment by code.
func NewCheckShipmentCodeQuery(actor ports.Actor, code string) (CheckShipmentCodeQuery, error) {
	if code == "" {
		return CheckShipmentCodeQuery{}, errs.NewValueIsRequiredError("code")
	}

	return CheckShipmentCodeQuery{
		actor: actor,
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckShipmentCodeQuery) Validate() error {
	return q.guard.Validate(ErrCheckShipmentCodeQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q CheckShipmentCodeQuery) Actor() ports.Actor {
	return q.actor
}

// Code returns the tracking code to look up.
func (q CheckShipmentCodeQuery) Code() string {
	return q.code
}
