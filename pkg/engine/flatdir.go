package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/freshdeps/pkg/integrations"
	"github.com/matzehuels/freshdeps/pkg/repository"
)

// flatDirVersions lists <artifact>-<version>.jar files in every directory of
// r. Groups are ignored, as flat directories have no group layout. Missing
// directories are skipped.
func flatDirVersions(r repository.FlatDir, artifact string) ([]string, error) {
	prefix := artifact + "-"
	seen := make(map[string]bool)
	var versions []string

	for _, dir := range r.Dirs {
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".jar") {
				continue
			}
			v := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".jar")
			if v == "" || v[0] < '0' || v[0] > '9' {
				// "guava-testlib-1.0.jar" is not a version of "guava".
				continue
			}
			if !seen[v] {
				seen[v] = true
				versions = append(versions, v)
			}
		}
	}

	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", integrations.ErrNotFound, artifact, repository.Describe(r))
	}
	return versions, nil
}
