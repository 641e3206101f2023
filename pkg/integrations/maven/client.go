package maven

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/freshdeps/pkg/cache"
	"github.com/matzehuels/freshdeps/pkg/integrations"
)

// CentralURL is the Maven Central repository root.
const CentralURL = "https://repo1.maven.org/maven2"

// Metadata is the artifact-level maven-metadata.xml of one module.
//
// Versions are listed in repository order (usually oldest first).
// This struct is safe for concurrent reads after construction.
type Metadata struct {
	GroupID     string   `json:"group_id"`
	ArtifactID  string   `json:"artifact_id"`
	Latest      string   `json:"latest,omitempty"`       // Newest deployed version, snapshots included
	Release     string   `json:"release,omitempty"`      // Newest non-snapshot version
	Versions    []string `json:"versions"`               // All deployed versions
	LastUpdated string   `json:"last_updated,omitempty"` // yyyyMMddHHmmss
}

// Coordinate returns the Maven coordinate string "groupId:artifactId".
func (m *Metadata) Coordinate() string {
	return m.GroupID + ":" + m.ArtifactID
}

// Client reads Maven-layout repositories.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
}

// NewClient creates a Maven repository client on top of a cache backend.
//
// The cacheTTL parameter sets how long responses are cached.
// Typical values: 1-24 hours for production, 0 for no expiration.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{Client: integrations.NewClient(backend, "maven:", cacheTTL, nil)}
}

// WithBasicAuth returns a client that authenticates with HTTP basic
// credentials, for private repositories.
func (c *Client) WithBasicAuth(username, password string) *Client {
	return &Client{Client: c.Client.WithBasicAuth(username, password)}
}

// FetchMetadata retrieves maven-metadata.xml for group:artifact from the
// repository rooted at repoURL.
//
// If refresh is true, the cache is bypassed and a fresh request is made.
//
// Returns:
//   - Metadata on success
//   - [integrations.ErrNotFound] (wrapped) if the repository does not know
//     the module
//   - [integrations.ErrNetwork] or [integrations.ErrUnauthorized] (wrapped)
//     for HTTP failures
func (c *Client) FetchMetadata(ctx context.Context, repoURL, group, artifact string, refresh bool) (*Metadata, error) {
	url := MetadataURL(repoURL, group, artifact)

	var meta Metadata
	err := c.Cached(ctx, url, refresh, &meta, func() error {
		return c.fetchMetadata(ctx, url, group, artifact, &meta)
	})
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *Client) fetchMetadata(ctx context.Context, url, group, artifact string, meta *Metadata) error {
	data, err := c.GetBytes(ctx, url)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: maven module %s:%s", integrations.ErrNotFound, group, artifact)
		}
		return err
	}

	var doc metadataDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", url, err)
	}

	*meta = Metadata{
		GroupID:     group,
		ArtifactID:  artifact,
		Latest:      strings.TrimSpace(doc.Versioning.Latest),
		Release:     strings.TrimSpace(doc.Versioning.Release),
		LastUpdated: strings.TrimSpace(doc.Versioning.LastUpdated),
	}
	for _, v := range doc.Versioning.Versions {
		if v = strings.TrimSpace(v); v != "" {
			meta.Versions = append(meta.Versions, v)
		}
	}
	return nil
}

// FetchPOM retrieves and parses the POM of group:artifact:version.
// Property references are interpolated; see [ParsePOM].
func (c *Client) FetchPOM(ctx context.Context, repoURL, group, artifact, version string, refresh bool) (*POM, error) {
	url := POMURL(repoURL, group, artifact, version)

	var pom POM
	err := c.Cached(ctx, url, refresh, &pom, func() error {
		data, err := c.GetBytes(ctx, url)
		if err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: pom %s:%s:%s", integrations.ErrNotFound, group, artifact, version)
			}
			return err
		}
		parsed, err := ParsePOM(data)
		if err != nil {
			return err
		}
		pom = *parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pom, nil
}

// MetadataURL returns the location of maven-metadata.xml for a module.
func MetadataURL(repoURL, group, artifact string) string {
	return modulePath(repoURL, group, artifact) + "/maven-metadata.xml"
}

// POMURL returns the location of a module's POM.
func POMURL(repoURL, group, artifact, version string) string {
	return fmt.Sprintf("%s/%s/%s-%s.pom", modulePath(repoURL, group, artifact), version, artifact, version)
}

func modulePath(repoURL, group, artifact string) string {
	return strings.TrimSuffix(repoURL, "/") + "/" + strings.ReplaceAll(group, ".", "/") + "/" + artifact
}

type metadataDoc struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Versioning struct {
		Latest      string   `xml:"latest"`
		Release     string   `xml:"release"`
		Versions    []string `xml:"versions>version"`
		LastUpdated string   `xml:"lastUpdated"`
	} `xml:"versioning"`
}
