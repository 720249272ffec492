// Package retry decorates an htmlcheck.Fetcher with a bounded retry policy.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// DefaultDelay is the pause before retrying a failed fetch.
const DefaultDelay = 5 * time.Second

// Policy bounds how often a fetch is retried. Each entry in Delays is one
// retry, waited for before the attempt it precedes.
type Policy struct {
	Delays []time.Duration
}

// DefaultPolicy returns a single retry after DefaultDelay.
func DefaultPolicy() Policy {
	return NewPolicy(1, DefaultDelay)
}

// NewPolicy returns a policy that retries up to retries times with a fixed
// delay. A negative retries value is treated as zero.
func NewPolicy(retries int, delay time.Duration) Policy {
	retries = max(retries, 0)
	delays := make([]time.Duration, retries)
	for i := range delays {
		delays[i] = delay
	}
	return Policy{Delays: delays}
}

// MaxAttempts returns the total number of attempts: 1 initial + N retries.
func (p Policy) MaxAttempts() int {
	return len(p.Delays) + 1
}

// Ensure Fetcher implements htmlcheck.Fetcher at compile time.
var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retries failed fetches of the wrapped fetcher according to a Policy.
type Fetcher struct {
	next   htmlcheck.Fetcher
	policy Policy
	logger *slog.Logger
}

// NewFetcher creates a new Fetcher. The logger, if not nil, receives one
// record per retry.
func NewFetcher(next htmlcheck.Fetcher, policy Policy, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, policy: policy, logger: logger}
}

// Fetch calls the wrapped fetcher until it succeeds or the policy is
// exhausted. Exhaustion returns EFETCH carrying the last error's message.
// Errors marked htmlcheck.Permanent and context cancellation are returned
// immediately without retrying.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := f.policy.MaxAttempts()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if htmlcheck.IsPermanent(err) {
			return "", err
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		delay := f.policy.Delays[attempt]
		if f.logger != nil {
			f.logger.Warn("retrying fetch",
				"url", url,
				"attempt", attempt+2,
				"delay", delay,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", htmlcheck.Errorf(htmlcheck.EFETCH, "%s (gave up after %d attempts)", errorText(lastErr), maxAttempts)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

// errorText prefers the application message so codes are not repeated.
func errorText(err error) string {
	if htmlcheck.ErrorCode(err) == htmlcheck.EINTERNAL {
		return err.Error()
	}
	return htmlcheck.ErrorMessage(err)
}
