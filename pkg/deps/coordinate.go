package deps

import (
	"strings"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// NoVersion is the version of a dependency that declares none, e.g. one whose
// version is supplied by a platform or that uses an open range with no floor.
// There is nothing to compare against, so revision filters always accept it.
const NoVersion = "none"

// Key identifies a dependency independent of its version. It is used to match
// "the same dependency, different version" across resolutions.
type Key struct {
	Group    string
	Artifact string
}

// String returns "group:artifact".
func (k Key) String() string { return k.Group + ":" + k.Artifact }

// Coordinate identifies a dependency by group, artifact and version.
//
// Coordinates are values: they are comparable and safe to use as map keys.
// Zero value: all fields empty.
type Coordinate struct {
	Group    string // e.g. "com.google.guava"
	Artifact string // e.g. "guava"
	Version  string // e.g. "33.0.0-jre"; NoVersion when undeclared
}

// NewCoordinate builds a coordinate, mapping an empty version to [NoVersion].
func NewCoordinate(group, artifact, version string) Coordinate {
	if version == "" {
		version = NoVersion
	}
	return Coordinate{Group: group, Artifact: artifact, Version: version}
}

// CoordinateOf builds the coordinate of a declared dependency specification.
func CoordinateOf(s DependencySpec) Coordinate {
	return NewCoordinate(s.Group, s.Artifact, s.Version)
}

// Key returns the version-independent identity of c.
func (c Coordinate) Key() Key { return Key{Group: c.Group, Artifact: c.Artifact} }

// Unversioned reports whether c carries no declared version.
func (c Coordinate) Unversioned() bool {
	return c.Version == "" || c.Version == NoVersion
}

// String returns "group:artifact:version".
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// ParseCoordinate parses "group:artifact[:version]". A missing version yields
// [NoVersion].
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected group:artifact[:version])", s)
	}
	for _, p := range parts[:2] {
		if err := errors.ValidateCoordinatePart(p); err != nil {
			return Coordinate{}, errors.Wrap(errors.ErrCodeInvalidCoordinate, err, "invalid coordinate %q", s)
		}
	}
	version := ""
	if len(parts) == 3 {
		version = parts[2]
	}
	return NewCoordinate(parts[0], parts[1], version), nil
}
