package integrations

import (
	"net/http"
	"time"

	"github.com/matzehuels/freshdeps/pkg/httputil"
)

const httpTimeout = 10 * time.Second

// The sentinels live in httputil so that its retry loop can tell a final
// answer from a transient one.
var (
	// ErrNotFound is returned when a module or file doesn't exist in the repository.
	ErrNotFound = httputil.ErrNotFound

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = httputil.ErrNetwork

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = httputil.ErrUnauthorized
)

// NewHTTPClient creates an HTTP client with a standard timeout for repository
// requests. Requests are reported to the observability HTTP hooks.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   httpTimeout,
		Transport: httputil.NewTransport(nil),
	}
}
