package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	fderrors "github.com/matzehuels/freshdeps/pkg/errors"
)

var errTransient = errors.New("transient")

func TestRetry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		failures  int
		err       func() error
		attempts  int
		wantCalls int
		wantErr   error
	}{
		{"success first try", 0, nil, 3, 1, nil},
		{"success after reset", 1, transient, 3, 2, nil},
		{"exhausted", 5, transient, 3, 3, errTransient},
		{"plain error stops", 5, func() error { return errTransient }, 3, 1, errTransient},
		{"zero attempts runs once", 0, nil, 0, 1, nil},
		{"missing module not retried", 5, func() error {
			return &RetryableError{Err: fmt.Errorf("%w: maven module junit:junit", ErrNotFound)}
		}, 3, 1, ErrNotFound},
		{"bad credentials not retried", 5, func() error {
			return &RetryableError{Err: fmt.Errorf("%w: status 401", ErrUnauthorized)}
		}, 3, 1, ErrUnauthorized},
		{"server error retried", 2, func() error {
			return &RetryableError{Err: fmt.Errorf("%w: status 503", ErrNetwork)}
		}, 3, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(ctx, tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err()
				}
				return nil
			})
			if tt.wantErr == nil && err != nil {
				t.Errorf("Retry() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Retry() error = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func transient() error { return &RetryableError{Err: errTransient} }

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, transient)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: fmt.Errorf("%w: %w", errTransient, &fderrors.RateLimitedError{RetryAfter: 1})}
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Retry() error = %v, want context.DeadlineExceeded", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (second attempt waits for Retry-After)", calls)
	}
}

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		retryAfter     string
		want           error
		wantRetryable  bool
		wantRetryAfter time.Duration
	}{
		{"200 OK", 200, "", nil, false, 0},
		{"404 Not Found", 404, "", ErrNotFound, false, 0},
		{"410 Gone", 410, "", ErrNotFound, false, 0},
		{"401 Unauthorized", 401, "", ErrUnauthorized, false, 0},
		{"403 Forbidden", 403, "", ErrUnauthorized, false, 0},
		{"400 Bad Request", 400, "", ErrNetwork, false, 0},
		{"500 Internal Server Error", 500, "", ErrNetwork, true, 0},
		{"502 Bad Gateway", 502, "", ErrNetwork, true, 0},
		{"503 with Retry-After", 503, "2", ErrNetwork, true, 2 * time.Second},
		{"429 with Retry-After", 429, "7", ErrNetwork, true, 7 * time.Second},
		{"429 capped Retry-After", 429, "3600", ErrNetwork, true, maxRetryAfter},
		{"429 with HTTP-date", 429, "Wed, 21 Oct 2015 07:28:00 GMT", ErrNetwork, true, 0},
		{"503 with HTTP-date", 503, "Wed, 21 Oct 2015 07:28:00 GMT", ErrNetwork, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.code, Header: http.Header{}}
			if tt.retryAfter != "" {
				resp.Header.Set("Retry-After", tt.retryAfter)
			}

			err := CheckResponse(resp)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("CheckResponse() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckResponse() error = %v, want %v", err, tt.want)
			}
			if got := isRetryable(err); got != tt.wantRetryable {
				t.Errorf("isRetryable(%v) = %v, want %v", err, got, tt.wantRetryable)
			}
			if got := retryAfter(err); got != tt.wantRetryAfter {
				t.Errorf("retryAfter() = %v, want %v", got, tt.wantRetryAfter)
			}
			var rl *fderrors.RateLimitedError
			if wantRL := tt.code == 429 || tt.wantRetryAfter > 0; errors.As(err, &rl) != wantRL {
				t.Errorf("RateLimitedError in chain = %v, want %v", rl != nil, wantRL)
			}
		})
	}
}
