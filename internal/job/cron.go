package job

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

func specFromEnv(key, fallback string) string {
	if spec := strings.TrimSpace(os.Getenv(key)); spec != "" {
		return spec
	}
	return fallback
}

// startCron runs fn on spec with a per-run timeout. Overlapping runs are skipped.
func startCron(spec string, timeout time.Duration, fn func(ctx context.Context)) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		fn(ctx)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
