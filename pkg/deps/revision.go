package deps

import (
	"slices"
	"strings"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// Revision is a stability tier. It is used both for the class a caller asks
// for and for the metadata status of a candidate version.
type Revision string

const (
	Release     Revision = "release"     // Final releases only
	Milestone   Revision = "milestone"   // Releases and pre-releases (alpha, beta, rc, ...)
	Integration Revision = "integration" // Anything, including snapshots
)

// Revisions lists all revision classes from most to least stable.
var Revisions = []Revision{Release, Milestone, Integration}

// ParseRevision parses a revision class name, case-insensitively.
func ParseRevision(s string) (Revision, error) {
	r := Revision(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Revisions, r) {
		return r, nil
	}
	return "", errors.New(errors.ErrCodeInvalidRevision,
		"unknown revision %q (expected one of %s)", s, revisionNames())
}

func revisionNames() string {
	names := make([]string, len(Revisions))
	for i, r := range Revisions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// Stability returns 0 for release, 1 for milestone and 2 for integration.
// Unknown statuses are treated as integration.
func (r Revision) Stability() int {
	switch r {
	case Release:
		return 0
	case Milestone:
		return 1
	}
	return 2
}

// String returns the revision name.
func (r Revision) String() string { return string(r) }
