package version_test

import (
	"fmt"

	"github.com/matzehuels/freshdeps/pkg/version"
)

func ExampleCompare() {
	fmt.Println(version.Compare("2.2", "2.10"))
	fmt.Println(version.Compare("2.2.0", "2.2"))
	fmt.Println(version.Compare("2.3", "2.2.99"))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleSortDescending() {
	versions := []string{"1.0", "1.0-rc1", "1.1", "1.0-SNAPSHOT"}
	version.SortDescending(versions)
	fmt.Println(versions)
	// Output: [1.1 1.0 1.0-SNAPSHOT 1.0-rc1]
}
