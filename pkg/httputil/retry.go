package httputil

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// Repository failure classes. A repository that answered "not found" or
// "unauthorized" will answer the same way on the next attempt, so [Retry]
// never repeats a request that failed with either of them.
var (
	ErrNotFound     = stderrors.New("not found")
	ErrNetwork      = stderrors.New("network error")
	ErrUnauthorized = stderrors.New("unauthorized")
)

// maxRetryAfter caps a server-requested Retry-After delay.
const maxRetryAfter = 30 * time.Second

// RetryableError marks a transient repository failure (connection reset,
// 5xx or 429 response) that [Retry] may attempt again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// CheckResponse classifies a repository response by status code.
// It returns nil for 200, [ErrNotFound] for 404 and 410, [ErrUnauthorized]
// for 401 and 403, and [ErrNetwork] otherwise. 5xx and 429 responses are
// wrapped in [RetryableError]; a 429, or any of them carrying Retry-After,
// also wraps an [errors.RateLimitedError].
func CheckResponse(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound, code == http.StatusGone:
		return ErrNotFound
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	case code >= 500, code == http.StatusTooManyRequests:
		secs := parseRetryAfter(resp.Header.Get("Retry-After"))
		if secs == 0 && code != http.StatusTooManyRequests {
			return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
		}
		return &RetryableError{Err: fmt.Errorf("%w: status %d: %w", ErrNetwork, code, &errors.RateLimitedError{RetryAfter: secs})}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// parseRetryAfter reads the delay-seconds form of Retry-After.
// HTTP-date values are ignored and fall back to the backoff delay.
func parseRetryAfter(v string) int {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return secs
}

// Retry executes fn up to attempts times with exponential backoff.
// Only [RetryableError] failures are retried, and never when they wrap
// [ErrNotFound] or [ErrUnauthorized]. The delay doubles after each failed
// attempt and is stretched to the server's Retry-After when that is longer.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(max(delay, retryAfter(lastErr))):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff runs [Retry] with the repository client defaults:
// 3 attempts with 1 second initial delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	if stderrors.Is(err, ErrNotFound) || stderrors.Is(err, ErrUnauthorized) {
		return false
	}
	return stderrors.As(err, new(*RetryableError))
}

// retryAfter returns the server-requested delay, capped at maxRetryAfter.
func retryAfter(err error) time.Duration {
	var rl *errors.RateLimitedError
	if stderrors.As(err, &rl) {
		return min(time.Duration(rl.RetryAfter)*time.Second, maxRetryAfter)
	}
	return 0
}
