package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/freshdeps/pkg/config"
	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/engine"
	"github.com/matzehuels/freshdeps/pkg/integrations/maven"
	"github.com/matzehuels/freshdeps/pkg/manifest"
	"github.com/matzehuels/freshdeps/pkg/observability"
	"github.com/matzehuels/freshdeps/pkg/report"
)

// ErrUpdatesAvailable is returned by check with --fail-on-updates when any
// dependency is outdated.
var ErrUpdatesAvailable = errors.New("dependency updates available")

// defaultManifests are looked up in the working directory when check is run
// without arguments.
var defaultManifests = []string{"pom.xml", "gradle/libs.versions.toml", "libs.versions.toml"}

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	repoFlags
	revision       string   // release, milestone or integration
	formats        string   // comma-separated report formats
	outputDir      string   // report directory (stdout if empty)
	configurations []string // configurations to check (all if empty)
	noCache        bool     // disable the HTTP cache
	refresh        bool     // bypass cached responses
	cacheBackend   string   // file, redis or none
	redisAddr      string   // redis host:port
	concurrency    int      // parallel repository lookups
	metricsFile    string   // prometheus textfile output
	failOnUpdates  bool     // exit non-zero when updates exist
	transitive     bool     // report versions changed by conflict resolution
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	opts := &checkOpts{}

	cmd := &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Report newer versions of declared dependencies",
		Long: `Check the dependencies declared in one or more manifests for newer versions.

Supported manifests are Maven pom.xml files and Gradle version catalogs
(*.versions.toml). Without arguments, pom.xml, gradle/libs.versions.toml and
libs.versions.toml in the working directory are checked.

The revision selects which versions count as newer:
  release      final releases only (default)
  milestone    releases and pre-releases (alpha, beta, rc, ...)
  integration  anything, including snapshots

Examples:
  freshdeps check
  freshdeps check pom.xml --revision milestone
  freshdeps check gradle/libs.versions.toml --format json,xml --output-dir build/dependencyUpdates
  freshdeps check --repo internal=https://maven.example.com/releases --fail-on-updates
  freshdeps check pom.xml --transitive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, opts, args)
		},
	}

	opts.repoFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.revision, "revision", "r", "", "revision class: release, milestone or integration (default: release)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "report formats: text, json, xml (comma-separated, default: text)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "write reports to this directory instead of stdout")
	cmd.Flags().StringSliceVarP(&opts.configurations, "configuration", "c", nil, "only check these configurations (e.g. compile,runtime)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached responses")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache-backend", "", "HTTP cache backend: file, redis or none (default: file)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for --cache-backend redis")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "parallel repository lookups (default: 8)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file")
	cmd.Flags().BoolVar(&opts.failOnUpdates, "fail-on-updates", false, "exit with an error when updates are available")
	cmd.Flags().BoolVar(&opts.transitive, "transitive", false, "also report the version conflict resolution selects when a dependency's POM asks for a newer one")

	_ = cmd.RegisterFlagCompletionFunc("revision", completeRevisions)

	return cmd
}

// settings merges the config file with the flags; flags win.
func (o *checkOpts) settings(file config.Options) (config.Options, error) {
	s := file
	if o.revision != "" {
		s.Revision = o.revision
	}
	if o.formats != "" {
		s.Formats = []string{o.formats}
	}
	if o.outputDir != "" {
		s.OutputDir = o.outputDir
	}
	if o.cacheBackend != "" {
		s.Cache.Backend = o.cacheBackend
	}
	if o.redisAddr != "" {
		s.Cache.RedisAddr = o.redisAddr
		if o.cacheBackend == "" {
			s.Cache.Backend = config.BackendRedis
		}
	}
	if o.noCache {
		s.Cache.Backend = config.BackendNone
	}
	if o.concurrency > 0 {
		s.Concurrency = o.concurrency
	}
	s = s.WithDefaults()
	return s, s.Validate()
}

func (c *CLI) runCheck(cmd *cobra.Command, opts *checkOpts, args []string) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	manifests, err := findManifests(args)
	if err != nil {
		return err
	}
	file, err := opts.load(filepath.Dir(manifests[0]))
	if err != nil {
		return err
	}
	settings, err := opts.settings(file)
	if err != nil {
		return err
	}
	revision, err := deps.ParseRevision(settings.Revision)
	if err != nil {
		return err
	}
	formats, err := report.ParseFormats(strings.Join(settings.Formats, ","))
	if err != nil {
		return err
	}
	repos, err := opts.repositories(settings)
	if err != nil {
		return err
	}

	if opts.metricsFile != "" {
		reg := prometheus.NewRegistry()
		hooks := observability.NewPrometheusHooks(reg)
		observability.SetResolveHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
		defer func() {
			observability.Reset()
			if werr := prometheus.WriteToTextfile(opts.metricsFile, reg); werr != nil && err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}()
	}

	backend, err := c.newCache(ctx, settings.Cache)
	if err != nil {
		return err
	}
	defer backend.Close()

	eng := engine.New(maven.NewClient(backend, settings.CacheTTL), repos, engine.Options{
		Refresh:     opts.refresh,
		Concurrency: settings.Concurrency,
		Logger:      logger,
	})
	resolver := deps.NewResolver(eng, logger)
	logger.Debug("engine ready", "version", eng.Version(), "selection_rules", resolver.SelectionRules())

	chk := &checker{
		resolver:       resolver,
		revision:       revision,
		formats:        formats,
		outputDir:      settings.OutputDir,
		configurations: opts.configurations,
		transitive:     opts.transitive,
		multi:          len(manifests) > 1,
		out:            cmd.OutOrStdout(),
		progress:       cmd.ErrOrStderr(),
	}

	prog := newProgress(logger)
	var jobs []job
	for _, path := range manifests {
		found, err := chk.jobs(ctx, path)
		if err != nil {
			return err
		}
		jobs = append(jobs, found...)
	}
	reports, err := chk.run(ctx, jobs)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err := chk.emit(r); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Checked %d dependencies in %d configurations", chk.checked, len(reports)))

	if opts.failOnUpdates && chk.updates {
		return ErrUpdatesAvailable
	}
	return nil
}

// checker runs the resolver over every configuration of the given manifests
// and writes one report per configuration.
type checker struct {
	resolver       *deps.Resolver
	revision       deps.Revision
	formats        []string
	outputDir      string
	configurations []string
	transitive     bool
	multi          bool // more than one manifest; reports go into per-project directories
	out            io.Writer
	progress       io.Writer // spinner output

	checked int
	updates bool
}

// job is one configuration of one manifest.
type job struct {
	project string
	cfg     deps.Configuration
}

// jobs parses the manifest at path and returns the configurations to check.
func (k *checker) jobs(ctx context.Context, path string) ([]job, error) {
	logger := loggerFromContext(ctx)

	res, err := manifest.Parse(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed manifest", "path", path, "type", res.Type, "configurations", len(res.Configurations))

	for _, name := range k.configurations {
		if _, ok := res.Configuration(name); !ok {
			return nil, fmt.Errorf("%s: no configuration %q", path, name)
		}
	}

	var out []job
	for _, cfg := range res.Configurations {
		if len(k.configurations) > 0 && !slices.Contains(k.configurations, cfg.Name) {
			continue
		}
		if len(cfg.External()) == 0 {
			logger.Debug("skipping empty configuration", "configuration", cfg.Name)
			continue
		}
		out = append(out, job{project: res.Project, cfg: cfg})
	}
	return out, nil
}

// run checks every job behind one spinner and returns the reports in job
// order. Nothing is written to the output until the spinner has stopped.
func (k *checker) run(ctx context.Context, jobs []job) ([]*report.Report, error) {
	spinner := newSpinner(ctx, k.progress, len(jobs))
	spinner.Start()
	defer spinner.Stop()

	reports := make([]*report.Report, 0, len(jobs))
	for _, j := range jobs {
		spinner.Step(fmt.Sprintf("%s (%s)", j.project, j.cfg.Name))
		r, err := k.checkConfiguration(ctx, j.project, j.cfg)
		if err != nil {
			if spinner.Cancelled() {
				return nil, ctx.Err()
			}
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (k *checker) checkConfiguration(ctx context.Context, project string, cfg deps.Configuration) (*report.Report, error) {
	statuses, err := k.resolver.Resolve(ctx, cfg, k.revision)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", project, cfg.Name, err)
	}

	r := report.Build(project, k.revision, statuses)
	r.Configuration = cfg.Name
	if k.transitive {
		resolved, err := k.resolver.ConflictResolved(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", project, cfg.Name, err)
		}
		r.SetResolved(resolved)
	}
	for _, e := range r.Entries {
		observability.Resolve().OnDependencyStatus(ctx, cfg.Name, string(e.Category))
	}
	k.checked += len(r.Entries)
	k.updates = k.updates || r.HasUpdates()
	return r, nil
}

// emit prints r, or exports it when an output directory is set.
func (k *checker) emit(r *report.Report) error {
	if k.outputDir == "" {
		return k.print(r)
	}

	dir := filepath.Join(k.outputDir, r.Configuration)
	if k.multi {
		dir = filepath.Join(k.outputDir, sanitizePath(r.Project), r.Configuration)
	}
	paths, err := report.Export(r, dir, k.formats)
	if err != nil {
		return err
	}
	printSuccess("%s (%s): %s", r.Project, r.Configuration, summary(r))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// print writes r to stdout: a table for text, the encoded report otherwise.
func (k *checker) print(r *report.Report) error {
	for _, format := range k.formats {
		if format == report.FormatText {
			if err := renderReport(k.out, r); err != nil {
				return err
			}
			continue
		}
		if err := report.Write(format, k.out, r); err != nil {
			return err
		}
	}
	return nil
}

// findManifests returns args, or the default manifests present in the
// working directory.
func findManifests(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var found []string
	for _, name := range defaultManifests {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			found = append(found, name)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no manifest found (looked for %s)", strings.Join(defaultManifests, ", "))
	}
	return found, nil
}

// completeRevisions completes --revision with the known revision classes.
func completeRevisions(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(deps.Revisions))
	for i, r := range deps.Revisions {
		names[i] = r.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// sanitizePath turns a project identity such as "com.example:app" into a
// directory name.
func sanitizePath(s string) string {
	return strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(s)
}
