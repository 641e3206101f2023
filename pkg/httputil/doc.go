// Package httputil provides HTTP utilities for repository clients.
//
// # Overview
//
// This package provides infrastructure used by the repository clients in
// [integrations]:
//
//   - [Retry]: Automatic retry with exponential backoff
//   - [Transport]: an http.RoundTripper that reports every request to the
//     observability hooks
//
// Response caching lives in package cache.
//
// # Retry
//
// [Retry] wraps operations with automatic retry for transient failures.
// [CheckResponse] sorts a repository response into [ErrNotFound],
// [ErrUnauthorized] or [ErrNetwork]; only 5xx and 429 responses come back
// as [RetryableError]. A missing module or rejected credential is final
// and is never requested twice:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if err := httputil.CheckResponse(resp); err != nil {
//	        return err
//	    }
//	    ...
//	})
//
// # Defaults
//
//   - Max attempts: 3
//   - Base backoff: 1 second, doubling
//   - Retry-After: honored in seconds form, capped at 30 seconds
//
// [integrations]: github.com/matzehuels/freshdeps/pkg/integrations
package httputil
