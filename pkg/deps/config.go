package deps

import (
	"slices"
	"strings"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// DependencySpec is a single dependency as written in a build file.
type DependencySpec struct {
	Group      string // Group id; may be empty for file dependencies
	Artifact   string // Artifact id
	Version    string // Version or selector ("1.2", "1.+", "[1,2)"); empty if none
	Transitive bool   // Whether the dependency's own dependencies are pulled in
	Project    bool   // True for project (module-to-module) dependencies
}

// External reports whether s refers to an artifact from a repository rather
// than another project of the same build.
func (s DependencySpec) External() bool { return !s.Project }

// ParseSpec is the dependency specification factory: it parses
// "group:artifact:version" (version optional) into a spec.
func ParseSpec(notation string, transitive bool) (DependencySpec, error) {
	parts := strings.Split(strings.TrimSpace(notation), ":")
	if len(parts) < 2 || len(parts) > 3 || parts[1] == "" {
		return DependencySpec{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid dependency notation %q (expected group:artifact[:version])", notation)
	}
	spec := DependencySpec{Group: parts[0], Artifact: parts[1], Transitive: transitive}
	if len(parts) == 3 {
		spec.Version = parts[2]
	}
	return spec, nil
}

// MustParseSpec is like [ParseSpec] but panics on error.
func MustParseSpec(notation string, transitive bool) DependencySpec {
	s, err := ParseSpec(notation, transitive)
	if err != nil {
		panic(err)
	}
	return s
}

// Configuration is an immutable snapshot of a named dependency set.
//
// Dependencies holds what the user declared in this configuration. Inherited
// holds specs that come from configurations this one extends; they take part
// in resolution but were never declared here, so they are the usual source of
// hidden dependencies.
//
// Configurations are passed by value. Methods never modify the receiver's
// slices; they return copies.
type Configuration struct {
	Name         string
	Dependencies []DependencySpec
	Inherited    []DependencySpec
	Transitive   bool
}

// External returns the declared first-level external dependencies.
func (c Configuration) External() []DependencySpec {
	var out []DependencySpec
	for _, d := range c.Dependencies {
		if d.External() {
			out = append(out, d)
		}
	}
	return out
}

// All returns declared and inherited specs, in that order.
func (c Configuration) All() []DependencySpec {
	return append(slices.Clone(c.Dependencies), c.Inherited...)
}

// Copy returns a deep copy of c.
func (c Configuration) Copy() Configuration {
	c.Dependencies = slices.Clone(c.Dependencies)
	c.Inherited = slices.Clone(c.Inherited)
	return c
}

// NonTransitive returns a copy of c that does not follow transitive edges.
func (c Configuration) NonTransitive() Configuration {
	cp := c.Copy()
	cp.Transitive = false
	return cp
}

// WithDependencies returns a copy of c whose dependency set is replaced by
// specs. Inherited specs are cleared.
func (c Configuration) WithDependencies(specs []DependencySpec) Configuration {
	cp := c.Copy()
	cp.Dependencies = slices.Clone(specs)
	cp.Inherited = nil
	return cp
}
