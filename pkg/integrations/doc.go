// Package integrations provides HTTP clients for artifact repositories.
//
// # Overview
//
// Each repository layout has its own subpackage:
//
//   - [maven]: Maven-layout repositories (Maven Central, Nexus, Artifactory)
//
// # Client Pattern
//
// Repository clients embed the shared [Client] and follow one pattern:
//
//	backend, _ := cache.NewFileCache("")
//	client := maven.NewClient(backend, 24*time.Hour)
//	meta, err := client.FetchMetadata(ctx, repoURL, "junit", "junit", false) // false = use cache
//
// The shared [Client] handles:
//   - HTTP requests with retry for transient failures
//   - Response caching through [cache.Cache], namespaced per client
//   - Default headers and basic authentication for private repositories
//
// # Errors
//
// Status codes map to sentinel errors: 404 to [ErrNotFound], 401/403 to
// [ErrUnauthorized], everything else to [ErrNetwork]. 5xx and 429 responses
// are additionally wrapped in [httputil.RetryableError] and retried; a
// missing module or a rejected credential is returned after one request.
//
// [maven]: github.com/matzehuels/freshdeps/pkg/integrations/maven
// [cache.Cache]: github.com/matzehuels/freshdeps/pkg/cache.Cache
// [httputil.RetryableError]: github.com/matzehuels/freshdeps/pkg/httputil.RetryableError
package integrations
