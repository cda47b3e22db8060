package commands

import (
	"errors"
	"time"

	"distribution/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand represents a sweep of unpaid invoices whose
// due date has passed. Triggered by the scheduler, not by callers.
type MarkOverdueInvoicesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command to sweep unpaid
// invoices against the given reference time.
func NewMarkOverdueInvoicesCommand(now time.Time) MarkOverdueInvoicesCommand {
	if now.IsZero() {
		now = time.Now()
	}
	return MarkOverdueInvoicesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}

// Now returns the reference time for the overdue comparison.
func (c MarkOverdueInvoicesCommand) Now() time.Time {
	return c.now
}
