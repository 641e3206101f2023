// Package cli implements the freshdeps command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/freshdeps/pkg/buildinfo"
	"github.com/matzehuels/freshdeps/pkg/cache"
	"github.com/matzehuels/freshdeps/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "freshdeps"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "freshdeps reports newer versions of declared dependencies",
		Long:         `freshdeps checks the dependencies declared in Maven POMs and Gradle version catalogs against Maven repositories and reports which of them have newer release, milestone or integration versions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.reposCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache opens the HTTP cache backend described by o.
// A file cache whose directory cannot be determined degrades to no caching.
func (c *CLI) newCache(ctx context.Context, o config.CacheOptions) (cache.Cache, error) {
	switch o.Backend {
	case config.BackendNone:
		return cache.NewNullCache("cache backend none"), nil
	case config.BackendRedis:
		c.Logger.Debug("using redis cache", "addr", o.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     o.RedisAddr,
			Password: o.RedisPassword,
			DB:       o.RedisDB,
		})
	}
	fc, err := cache.NewFileCache(o.Dir)
	if err != nil {
		c.Logger.Warn("file cache disabled", "err", err)
		return cache.NewNullCache("file cache unavailable: " + err.Error()), nil
	}
	c.Logger.Debug("using file cache", "dir", fc.Dir())
	return fc, nil
}
