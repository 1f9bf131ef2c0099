package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/abs-steel/abs-inventory/internal/dashboard"
)

// DashboardWarmupJob recomputes the dashboard summary so the first
// console visit of the day hits a warm cache.
type DashboardWarmupJob struct {
	Dashboard *dashboard.Service
	Logger    *slog.Logger
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(svc *dashboard.Service, logger *slog.Logger) *DashboardWarmupJob {
	return &DashboardWarmupJob{Dashboard: svc, Logger: logger}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Dashboard == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if payload.Bump {
		j.Dashboard.Invalidate(ctx)
	}

	started := time.Now()
	summary, err := j.Dashboard.Refresh(ctx)
	if err != nil {
		logger.Error("dashboard warmup failed", "error", err)
		return err
	}
	logger.Info("dashboard warmup complete",
		"orders", summary.Stats.TotalOrders,
		"duration", time.Since(started).String(),
	)
	return nil
}
