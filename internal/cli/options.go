package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/freshdeps/pkg/config"
	"github.com/matzehuels/freshdeps/pkg/repository"
)

// repoFlags holds the repository and config-file flags shared by check and
// repos.
type repoFlags struct {
	configPath string   // explicit freshdeps.toml
	repos      []string // --repo name=url
	flatDirs   []string // --flatdir dir
}

func (f *repoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default: freshdeps.toml next to the manifest)")
	cmd.Flags().StringArrayVar(&f.repos, "repo", nil, "maven repository as name=url or url (repeatable, replaces configured repositories)")
	cmd.Flags().StringArrayVar(&f.flatDirs, "flatdir", nil, "directory of <artifact>-<version>.jar files (repeatable)")
}

// load reads the configuration file, either the explicit one or one found in
// dir. A missing implicit file yields empty options.
func (f *repoFlags) load(dir string) (config.Options, error) {
	path := f.configPath
	if path == "" {
		found, ok := config.Find(dir)
		if !ok {
			return config.Options{}, nil
		}
		path = found
	}
	return config.Load(path)
}

// repositories returns the repositories from the command line, falling back
// to the configured ones when neither --repo nor --flatdir is given.
func (f *repoFlags) repositories(o config.Options) ([]repository.Repository, error) {
	if len(f.repos) == 0 && len(f.flatDirs) == 0 {
		return o.Repositories()
	}
	repos := make([]repository.Repository, 0, len(f.repos)+1)
	for _, s := range f.repos {
		m, err := repository.ParseMaven(s)
		if err != nil {
			return nil, err
		}
		repos = append(repos, m)
	}
	if len(f.flatDirs) > 0 {
		dirs := make([]string, len(f.flatDirs))
		for i, d := range f.flatDirs {
			abs, err := filepath.Abs(d)
			if err != nil {
				return nil, fmt.Errorf("flatdir %s: %w", d, err)
			}
			dirs[i] = abs
		}
		repos = append(repos, repository.FlatDir{Name: "flatDir", Dirs: dirs})
	}
	if err := repository.ValidateAll(repos); err != nil {
		return nil, err
	}
	return repos, nil
}
