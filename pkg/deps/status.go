package deps

import (
	"cmp"
	"slices"
)

// Failure describes why a query dependency could not be resolved.
// The zero value means "no failure".
type Failure struct {
	Selector string // The selector that failed, e.g. "com.example:lib:+"
	Reason   string // The underlying resolution failure
}

// IsZero reports whether f carries no failure.
func (f Failure) IsZero() bool { return f == Failure{} }

// DependencyStatus pairs a dependency with the newest acceptable version found
// for it, or with the reason none could be found.
//
// Exactly one of Available and Failure is set. DependencyStatus is comparable;
// equal statuses collapse when collected into a set.
type DependencyStatus struct {
	Coordinate Coordinate // Declared (or current) coordinate when known, else resolved
	Available  string     // Newest acceptable version; empty if unresolved
	Failure    Failure    // Set only if the query could not be resolved
}

// NewResolvedStatus builds the status of a resolved query dependency.
func NewResolvedStatus(c Coordinate, available string) DependencyStatus {
	return DependencyStatus{Coordinate: c, Available: available}
}

// NewUnresolvedStatus builds the status of an unresolved query dependency.
func NewUnresolvedStatus(c Coordinate, f Failure) DependencyStatus {
	return DependencyStatus{Coordinate: c, Failure: f}
}

// Resolved reports whether a newer-version query succeeded.
func (s DependencyStatus) Resolved() bool { return s.Failure.IsZero() }

// statusSet collects statuses, dropping exact duplicates.
type statusSet map[DependencyStatus]struct{}

func (s statusSet) add(st DependencyStatus) { s[st] = struct{}{} }

// sorted returns the set ordered by key, then version, then availability.
func (s statusSet) sorted() []DependencyStatus {
	out := make([]DependencyStatus, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	slices.SortFunc(out, func(a, b DependencyStatus) int {
		return cmp.Or(
			cmp.Compare(a.Coordinate.Group, b.Coordinate.Group),
			cmp.Compare(a.Coordinate.Artifact, b.Coordinate.Artifact),
			cmp.Compare(a.Coordinate.Version, b.Coordinate.Version),
			cmp.Compare(a.Available, b.Available),
			cmp.Compare(a.Failure.Reason, b.Failure.Reason),
		)
	})
	return out
}
