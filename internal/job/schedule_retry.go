package job

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultRetrySpec = "@every 10m"

// Retrier re-runs schedule syncs that previously failed and reports how many
// contracts were reconciled.
type Retrier interface {
	RetryFailed(ctx context.Context) (int, error)
}

// ScheduleRetryJob periodically retries failed schedule syncs.
type ScheduleRetryJob struct {
	retrier Retrier
	spec    string
	timeout time.Duration
}

// NewScheduleRetryJob reads SCHEDULE_RETRY_SPEC (cron spec or @every descriptor).
func NewScheduleRetryJob(retrier Retrier) *ScheduleRetryJob {
	return &ScheduleRetryJob{retrier: retrier, spec: specFromEnv("SCHEDULE_RETRY_SPEC", defaultRetrySpec), timeout: 2 * time.Minute}
}

// Start registers the job and starts the scheduler. Stop the returned cron
// on shutdown.
func (j *ScheduleRetryJob) Start() (*cron.Cron, error) {
	c, err := startCron(j.spec, j.timeout, func(ctx context.Context) { j.Run(ctx) })
	if err != nil {
		return nil, err
	}
	log.Printf("[schedule][job] retry job started spec=%q", j.spec)
	return c, nil
}

// Run performs one retry pass.
func (j *ScheduleRetryJob) Run(ctx context.Context) int {
	n, err := j.retrier.RetryFailed(ctx)
	if err != nil {
		log.Printf("[schedule][job] retry failed err=%v", err)
		return n
	}
	if n > 0 {
		log.Printf("[schedule][job] retry success reconciled=%d", n)
	}
	return n
}
