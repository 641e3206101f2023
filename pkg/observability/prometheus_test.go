package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)
	ctx := context.Background()

	h.OnResolveStart(ctx, "compile", "release")
	h.OnResolveComplete(ctx, "compile", "release", 3, 50*time.Millisecond, nil)
	h.OnResolveComplete(ctx, "compile", "release", 0, time.Millisecond, errors.New("boom"))
	h.OnDependencyStatus(ctx, "compile", "outdated")
	h.OnCacheHit(ctx, "maven")
	h.OnCacheMiss(ctx, "maven")
	h.OnCacheSet(ctx, "maven", 512)
	h.OnResponse(ctx, "GET", "repo.example.com", "/x", 200, time.Millisecond)
	h.OnError(ctx, "GET", "repo.example.com", "/x", errors.New("reset"))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				values[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	want := map[string]float64{
		"freshdeps_resolve_total":                 2,
		"freshdeps_resolve_error_total":           1,
		"freshdeps_resolve_duration_seconds":      2,
		"freshdeps_dependency_status_total":       1,
		"freshdeps_cache_hits_total":              1,
		"freshdeps_cache_misses_total":            1,
		"freshdeps_cache_written_bytes_total":     512,
		"freshdeps_http_requests_total":           1,
		"freshdeps_http_errors_total":             1,
		"freshdeps_http_request_duration_seconds": 1,
	}
	for name, v := range want {
		if values[name] != v {
			t.Errorf("%s = %v, want %v", name, values[name], v)
		}
	}
}

func TestPrometheusHooksTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)
	h.OnCacheHit(context.Background(), "maven")

	path := filepath.Join(t.TempDir(), "freshdeps.prom")
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		t.Fatalf("WriteToTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `freshdeps_cache_hits_total{namespace="maven"} 1`) {
		t.Errorf("textfile missing cache hit counter:\n%s", data)
	}
}
