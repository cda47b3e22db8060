package ports

import "context"

// Notifier is the fire-and-forget notification sender. Send reports
// whether the message was handed off but never returns an error: a failed
// notification must not abort or roll back the operation that triggered
// it. Implementations log their own failures.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) bool
}
