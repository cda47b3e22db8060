package http

import (
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream gateway after token verification.
// The core never sees tokens, only this descriptor.
const (
	headerActorRole         = "X-Actor-Role"
	headerActorCustomerID   = "X-Actor-Customer-Id"
	headerActorCustomerName = "X-Actor-Customer-Name"
)

// actorFromRequest builds the actor descriptor from the identity headers.
// A missing or unknown role is treated as a customer account with no
// linked customer, which sees nothing (fail closed).
func actorFromRequest(ctx echo.Context) ports.Actor {
	actor := ports.Actor{
		Role:         ports.RoleCustomer,
		CustomerName: ctx.Request().Header.Get(headerActorCustomerName),
	}

	if ports.Role(ctx.Request().Header.Get(headerActorRole)) == ports.RoleStaff {
		actor.Role = ports.RoleStaff
	}

	if raw := ctx.Request().Header.Get(headerActorCustomerID); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			actor.CustomerID = &id
		}
	}

	return actor
}
