package httputil

import (
	"net/http"
	"time"

	"github.com/matzehuels/freshdeps/pkg/observability"
)

// Transport wraps an http.RoundTripper and reports requests, responses and
// transport errors to [observability.HTTP].
type Transport struct {
	Base http.RoundTripper // nil means http.DefaultTransport
}

// NewTransport returns a Transport on top of base.
func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{Base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	ctx := req.Context()
	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path

	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, err
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))
	return resp, nil
}
