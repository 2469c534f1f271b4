package playstore

import (
	"context"
	"time"

	"github.com/apex/log"
)

// defaultRetrySchedule is the delay between consecutive attempts of a
// retryable operation. Only the login call retries automatically.
var defaultRetrySchedule = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

// retry runs fn and, when it fails with a designated error, waits the next
// delay from the schedule and tries again. A schedule of N delays allows N+1
// attempts; the final failure is returned as-is. Errors outside the designated
// class propagate immediately.
func retry(ctx context.Context, schedule []time.Duration, designated func(error) bool, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !designated(err) {
			return err
		}
		if attempt >= len(schedule) {
			log.WithError(err).Error("no more retries")
			return err
		}
		delay := schedule[attempt]
		log.WithError(err).Warnf("retrying in %s", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
