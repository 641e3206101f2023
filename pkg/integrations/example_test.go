package integrations_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/freshdeps/pkg/integrations"
)

func Example_errors() {
	// Standard errors for repository operations
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)

	err := fmt.Errorf("maven-metadata.xml for junit:junit: %w", integrations.ErrNotFound)
	fmt.Println(errors.Is(err, integrations.ErrNotFound))
	// Output:
	// ErrNotFound: not found
	// ErrNetwork: network error
	// true
}
