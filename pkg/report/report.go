package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/version"
)

// Category is the outcome class of a single dependency.
type Category string

const (
	Current    Category = "current"
	Outdated   Category = "outdated"
	Exceeded   Category = "exceeded"
	Undeclared Category = "undeclared"
	Unresolved Category = "unresolved"
)

// Categories lists every category in report order.
var Categories = []Category{Current, Outdated, Exceeded, Undeclared, Unresolved}

// Entry is one dependency in a report.
type Entry struct {
	Group     string   `json:"group" xml:"group,attr"`
	Artifact  string   `json:"name" xml:"name,attr"`
	Version   string   `json:"version" xml:"version,attr"`
	Available string   `json:"available,omitempty" xml:"available,attr,omitempty"`
	Resolved  string   `json:"resolved,omitempty" xml:"resolved,attr,omitempty"` // Version selected by conflict resolution, if it differs
	Reason    string   `json:"reason,omitempty" xml:"reason,omitempty"`
	Category  Category `json:"-" xml:"-"`
}

// Coordinate returns the entry's current coordinate.
func (e Entry) Coordinate() deps.Coordinate {
	return deps.Coordinate{Group: e.Group, Artifact: e.Artifact, Version: e.Version}
}

// Report is the classified result of one resolution.
type Report struct {
	ID            string        // Random identifier, unique per report
	Project       string        // Project the manifest belongs to
	Configuration string        // Configuration name; optional
	Revision      deps.Revision // Revision class the statuses were resolved for
	Generated     time.Time     // Creation time (UTC)
	Entries       []Entry       // In status order
}

// Build classifies statuses into a new report.
func Build(project string, revision deps.Revision, statuses []deps.DependencyStatus) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Project:   project,
		Revision:  revision,
		Generated: time.Now().UTC(),
		Entries:   make([]Entry, 0, len(statuses)),
	}
	for _, s := range statuses {
		r.Entries = append(r.Entries, classify(s))
	}
	return r
}

func classify(s deps.DependencyStatus) Entry {
	e := Entry{
		Group:     s.Coordinate.Group,
		Artifact:  s.Coordinate.Artifact,
		Version:   s.Coordinate.Version,
		Available: s.Available,
	}
	switch {
	case !s.Resolved():
		e.Category = Unresolved
		e.Reason = s.Failure.Reason
	case s.Coordinate.Unversioned():
		e.Category = Undeclared
	default:
		switch c := version.CompareQualified(s.Available, s.Coordinate.Version); {
		case c > 0:
			e.Category = Outdated
		case c < 0:
			e.Category = Exceeded
		default:
			e.Category = Current
		}
	}
	return e
}

// Category returns the entries in category c.
func (r *Report) Category(c Category) []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of entries in category c.
func (r *Report) Count(c Category) int {
	n := 0
	for _, e := range r.Entries {
		if e.Category == c {
			n++
		}
	}
	return n
}

// SetResolved records the versions conflict resolution selected in place of
// the declared ones, as returned by [deps.Resolver.ConflictResolved].
// Categories still compare the declared version. Undeclared and unresolved
// entries are left alone.
func (r *Report) SetResolved(resolved map[deps.Key]deps.Coordinate) {
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Category == Undeclared || e.Category == Unresolved {
			continue
		}
		if c, ok := resolved[e.Coordinate().Key()]; ok {
			e.Resolved = c.Version
		}
	}
}

// HasUpdates reports whether any dependency is outdated.
func (r *Report) HasUpdates() bool {
	return r.Count(Outdated) > 0
}
