package job

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultSweepSpec = "@every 30m"

// Purger drops workflow sessions that have been idle past their TTL.
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// SessionSweepJob periodically removes abandoned contract-creation sessions.
type SessionSweepJob struct {
	purger  Purger
	spec    string
	timeout time.Duration
}

// NewSessionSweepJob reads WORKFLOW_SWEEP_SPEC.
func NewSessionSweepJob(purger Purger) *SessionSweepJob {
	return &SessionSweepJob{purger: purger, spec: specFromEnv("WORKFLOW_SWEEP_SPEC", defaultSweepSpec), timeout: 30 * time.Second}
}

func (j *SessionSweepJob) Start() (*cron.Cron, error) {
	c, err := startCron(j.spec, j.timeout, func(ctx context.Context) { j.Run(ctx) })
	if err != nil {
		return nil, err
	}
	log.Printf("[workflow][job] session sweep started spec=%q", j.spec)
	return c, nil
}

func (j *SessionSweepJob) Run(ctx context.Context) int {
	n, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		log.Printf("[workflow][job] session sweep failed err=%v", err)
	}
	return n
}
