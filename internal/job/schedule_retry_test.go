package job

import (
	"context"
	"errors"
	"testing"
)

type fakeRetrier struct {
	calls int
	n     int
	err   error
}

func (f *fakeRetrier) RetryFailed(context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func TestScheduleRetryJob_Run(t *testing.T) {
	t.Run("reports reconciled count", func(t *testing.T) {
		r := &fakeRetrier{n: 3}
		if got := NewScheduleRetryJob(r).Run(context.Background()); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("error is logged not raised", func(t *testing.T) {
		r := &fakeRetrier{n: 1, err: errors.New("scan failed")}
		if got := NewScheduleRetryJob(r).Run(context.Background()); got != 1 || r.calls != 1 {
			t.Fatalf("expected 1 after one call, got %d calls=%d", got, r.calls)
		}
	})
}

func TestScheduleRetryJob_Start(t *testing.T) {
	t.Run("default spec", func(t *testing.T) {
		t.Setenv("SCHEDULE_RETRY_SPEC", "")
		j := NewScheduleRetryJob(&fakeRetrier{})
		if j.spec != defaultRetrySpec {
			t.Fatalf("expected %q, got %q", defaultRetrySpec, j.spec)
		}
		c, err := j.Start()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer c.Stop()
		if len(c.Entries()) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(c.Entries()))
		}
	})

	t.Run("invalid spec", func(t *testing.T) {
		t.Setenv("SCHEDULE_RETRY_SPEC", "every now and then")
		if _, err := NewScheduleRetryJob(&fakeRetrier{}).Start(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
