package jobs

import (
	"context"
	"log/slog"
	"time"

	"distribution/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob periodically marks unpaid invoices past their due
// date as overdue.
type InvoiceOverdueJob struct {
	handler  commands.MarkOverdueInvoicesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInvoiceOverdueJob creates the overdue sweep job with the given cron
// schedule (six-field, with seconds).
func NewInvoiceOverdueJob(handler commands.MarkOverdueInvoicesCommandHandler,
	schedule string, logger *slog.Logger) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "invoice_overdue_job"),
	}
}

// Start begins the overdue sweep on its schedule.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueInvoicesCommand(time.Now())

		flipped, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invoice overdue sweep failed", "error", err)
			return
		}

		if flipped > 0 {
			j.logger.InfoContext(ctx, "Invoices marked overdue", "count", flipped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice overdue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice overdue job stopped")
}
