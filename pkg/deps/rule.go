package deps

import "fmt"

// Candidate is a version offered by a repository during resolution.
type Candidate struct {
	Coordinate Coordinate
	Status     Revision // Metadata status of the candidate version
}

// SelectionRule decides whether a candidate may be selected. A rejection
// carries a human-readable reason.
type SelectionRule func(c Candidate) (accept bool, reason string)

// RevisionFilter returns the selection rule that keeps only candidates whose
// status matches the requested revision class. The first matching rule wins:
//
//  1. release accepts only status "release"
//  2. milestone accepts any status except "integration"
//  3. integration accepts everything
//  4. a candidate whose version is [NoVersion] is always accepted
func RevisionFilter(revision Revision) SelectionRule {
	return func(c Candidate) (bool, string) {
		switch {
		case revision == Release && c.Status == Release:
			return true, ""
		case revision == Milestone && c.Status != Integration:
			return true, ""
		case revision == Integration:
			return true, ""
		case c.Coordinate.Version == NoVersion:
			return true, ""
		}
		return false, fmt.Sprintf("status %s rejected for revision %s", c.Status, revision)
	}
}
