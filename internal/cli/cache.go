package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/freshdeps/pkg/cache"
	"github.com/matzehuels/freshdeps/pkg/config"
)

// clearer is implemented by cache backends that can drop all their entries.
type clearer interface {
	Clear(ctx context.Context) error
}

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the HTTP response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var opts config.CacheOptions

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached HTTP responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Backend == "" {
				opts.Backend = config.DefaultCacheBackend
			}
			if err := (config.Options{Cache: opts}).Validate(); err != nil {
				return err
			}
			backend, err := c.newCache(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer backend.Close()

			if nc, ok := backend.(*cache.NullCache); ok {
				printInfo("Nothing to clear: %s", nc.Reason())
				return nil
			}
			cl, ok := backend.(clearer)
			if !ok {
				return fmt.Errorf("cache backend %s cannot be cleared", opts.Backend)
			}
			if err := cl.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared %s cache", opts.Backend)
			if fc, ok := backend.(*cache.FileCache); ok {
				printDetail("Directory: %s", fc.Dir())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Backend, "cache-backend", "", "HTTP cache backend: file or redis (default: file)")
	cmd.Flags().StringVar(&opts.Dir, "cache-dir", "", "file cache directory")
	cmd.Flags().StringVar(&opts.RedisAddr, "redis-addr", "", "redis address")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
