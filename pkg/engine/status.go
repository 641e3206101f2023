package engine

import (
	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/version"
)

// milestoneQualifiers mark pre-release versions.
var milestoneQualifiers = map[string]bool{
	"dev":       true,
	"a":         true,
	"alpha":     true,
	"b":         true,
	"beta":      true,
	"m":         true,
	"milestone": true,
	"ea":        true,
	"eap":       true,
	"pre":       true,
	"preview":   true,
	"cr":        true,
	"rc":        true,
}

// Classify derives the metadata status of a version string:
// snapshots are integration builds, versions with a pre-release qualifier are
// milestones, everything else is a release.
func Classify(v string) deps.Revision {
	quals := version.Qualifiers(v)
	for _, q := range quals {
		if q == "snapshot" {
			return deps.Integration
		}
	}
	for _, q := range quals {
		if milestoneQualifiers[q] {
			return deps.Milestone
		}
	}
	return deps.Release
}
