// Package repository describes where artifacts are looked up.
//
// A [Repository] is one of a closed set of kinds:
//
//   - [Maven]: a remote repository using the Maven layout
//   - [FlatDir]: local directories holding <artifact>-<version>.jar files
//
// [Describe] renders a repository for human-readable listings. Repository
// names label search results and must be unique, see [ValidateAll].
package repository

import (
	"fmt"
	"strings"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// Repository is implemented by [Maven] and [FlatDir] only.
type Repository interface {
	// RepositoryName returns the configured name.
	RepositoryName() string

	isRepository()
}

// Maven is a remote repository using the Maven layout.
type Maven struct {
	Name     string
	URL      string
	Username string // optional, for private repositories
	Password string
}

func (m Maven) RepositoryName() string { return m.Name }
func (Maven) isRepository()            {}

// FlatDir is a set of local directories searched for artifact files.
type FlatDir struct {
	Name string
	Dirs []string
}

func (f FlatDir) RepositoryName() string { return f.Name }
func (FlatDir) isRepository()            {}

// Describe returns a one-line description of r:
//
//	"<name> <url>" for Maven repositories
//	"<name> <dir1>,<dir2>" for flat directories
//
// Describe panics on a nil repository.
func Describe(r Repository) string {
	switch r := r.(type) {
	case Maven:
		return r.Name + " " + r.URL
	case FlatDir:
		return r.Name + " " + strings.Join(r.Dirs, ",")
	default:
		panic(fmt.Sprintf("repository: unknown kind %T", r))
	}
}

// Validate checks that r is usable.
func Validate(r Repository) error {
	switch r := r.(type) {
	case Maven:
		if r.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "maven repository without a name")
		}
		if err := errors.ValidateURL(r.URL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %s", r.Name)
		}
	case FlatDir:
		if r.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "flat directory repository without a name")
		}
		if len(r.Dirs) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "repository %s has no directories", r.Name)
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown repository kind %T", r)
	}
	return nil
}

// ValidateAll validates each repository and requires names to be unique.
func ValidateAll(repos []Repository) error {
	seen := make(map[string]bool, len(repos))
	for _, r := range repos {
		if err := Validate(r); err != nil {
			return err
		}
		name := r.RepositoryName()
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate repository name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// MavenCentral returns the default remote repository.
func MavenCentral() Maven {
	return Maven{Name: "MavenRepo", URL: "https://repo1.maven.org/maven2"}
}

// ParseMaven parses "name=url" or a bare URL (named after its host).
func ParseMaven(s string) (Maven, error) {
	name, url, ok := strings.Cut(s, "=")
	if !ok {
		url = s
		name = hostOf(s)
	}
	m := Maven{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)}
	if err := Validate(m); err != nil {
		return Maven{}, err
	}
	return m, nil
}

func hostOf(url string) string {
	rest := url
	if _, after, ok := strings.Cut(url, "://"); ok {
		rest = after
	}
	host, _, _ := strings.Cut(rest, "/")
	return host
}
