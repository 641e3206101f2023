package deps_test

import (
	"fmt"

	"github.com/matzehuels/freshdeps/pkg/deps"
)

func ExampleRevisionFilter() {
	rule := deps.RevisionFilter(deps.Milestone)

	for _, c := range []deps.Candidate{
		{Coordinate: deps.Coordinate{Group: "g", Artifact: "a", Version: "2.0-rc1"}, Status: deps.Milestone},
		{Coordinate: deps.Coordinate{Group: "g", Artifact: "a", Version: "2.1-SNAPSHOT"}, Status: deps.Integration},
	} {
		if ok, reason := rule(c); ok {
			fmt.Println(c.Coordinate.Version, "accepted")
		} else {
			fmt.Println(c.Coordinate.Version, "rejected:", reason)
		}
	}
	// Output:
	// 2.0-rc1 accepted
	// 2.1-SNAPSHOT rejected: status integration rejected for revision milestone
}
