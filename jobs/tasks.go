package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup pre-populates the dashboard summary cache.
	TaskDashboardWarmup = "dashboard:warmup"
)

// DashboardWarmupPayload configures a warmup run.
type DashboardWarmupPayload struct {
	// Bump forces a cache version bump before recomputing, retiring
	// every previously cached summary.
	Bump bool `json:"bump"`
}

// NewDashboardWarmupTask constructs an Asynq task.
func NewDashboardWarmupTask(payload DashboardWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}
