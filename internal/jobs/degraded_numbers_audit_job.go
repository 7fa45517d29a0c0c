package jobs

import (
	"context"
	"log/slog"

	"jewelry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DegradedNumbersAuditJob periodically scans for order numbers minted by the
// timestamp fallback. Such numbers do not follow the sequential format and
// need manual reconciliation; the job surfaces them in the log so operators
// notice without polling the database.
type DegradedNumbersAuditJob struct {
	handler queries.GetDegradedOrderNumbersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDegradedNumbersAuditJob creates the audit job. Uses
// GetDegradedOrderNumbersQueryHandler to list suspect order numbers once an
// hour.
func NewDegradedNumbersAuditJob(handler queries.GetDegradedOrderNumbersQueryHandler, logger *slog.Logger) *DegradedNumbersAuditJob {
	return &DegradedNumbersAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "degraded_numbers_audit_job"),
	}
}

// Start begins the audit job to run at the top of every hour.
func (j *DegradedNumbersAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		views, err := j.handler.Handle(ctx, queries.NewGetDegradedOrderNumbersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Degraded order number audit failed", "error", err)
			return
		}

		for _, view := range views {
			j.logger.WarnContext(ctx, "Order number needs manual reconciliation",
				"estimate_id", view.EstimateID,
				"estimate_number", view.EstimateNumber,
				"order_number", view.OrderNumber,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Degraded order number audit job started (running hourly)")
	return nil
}

// Stop stops the audit job.
func (j *DegradedNumbersAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Degraded order number audit job stopped")
}
