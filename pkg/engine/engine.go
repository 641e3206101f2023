package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/errors"
	"github.com/matzehuels/freshdeps/pkg/integrations"
	"github.com/matzehuels/freshdeps/pkg/integrations/maven"
	"github.com/matzehuels/freshdeps/pkg/repository"
	"github.com/matzehuels/freshdeps/pkg/version"
)

// HostVersion is the engine version reported by [Engine.Version].
const HostVersion = "8.5"

// DefaultConcurrency bounds parallel repository lookups.
const DefaultConcurrency = 8

// Options configures an Engine.
type Options struct {
	// HostVersion overrides the reported engine version.
	HostVersion string

	// Refresh bypasses cached repository responses.
	Refresh bool

	// Concurrency bounds parallel lookups. Zero means DefaultConcurrency.
	Concurrency int

	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
}

// WithDefaults returns a copy of o with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.HostVersion == "" {
		o.HostVersion = HostVersion
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Engine resolves configurations against Maven repositories and flat
// directories. It implements [deps.Engine].
//
// Engine is safe for concurrent use.
type Engine struct {
	repos   []repository.Repository
	sources []*mavenSource // parallel to repos, nil for flat directories
	opts    Options
	logger  *log.Logger
}

// mavenSource is a Maven repository paired with the client holding its
// credentials. Names are labels only, so clients are never looked up by name.
type mavenSource struct {
	url    string
	client *maven.Client
}

// New creates an Engine searching repos in order. client serves every Maven
// repository; repositories with credentials get an authenticated copy.
func New(client *maven.Client, repos []repository.Repository, opts Options) *Engine {
	opts = opts.WithDefaults()
	e := &Engine{
		repos:   repos,
		sources: make([]*mavenSource, len(repos)),
		opts:    opts,
		logger:  opts.Logger,
	}
	for i, r := range repos {
		if m, ok := r.(repository.Maven); ok {
			c := client
			if m.Username != "" {
				c = client.WithBasicAuth(m.Username, m.Password)
			}
			e.sources[i] = &mavenSource{url: m.URL, client: c}
		}
	}
	return e
}

// Version returns the host engine version.
func (e *Engine) Version() string { return e.opts.HostVersion }

// Repositories returns the repositories in search order.
func (e *Engine) Repositories() []repository.Repository { return e.repos }

// result is one first-level resolution in progress.
type result struct {
	outcome deps.Outcome
	source  *mavenSource // Maven repository the module was resolved from
}

// ResolveLenient resolves every external first-level dependency of cfg,
// declared and inherited, in order.
//
// A module that no repository knows, or whose selector matches no acceptable
// version, becomes a [deps.Unresolved] outcome. Any other repository failure
// aborts the resolution with an error coded [errors.ErrCodeRepository].
//
// When cfg is transitive, the compile dependencies of each resolved module
// take part in conflict resolution: a first-level result is upgraded when a
// resolved module depends on a newer version of it.
func (e *Engine) ResolveLenient(ctx context.Context, cfg deps.Configuration, opts deps.ResolveOptions) ([]deps.Outcome, error) {
	var specs []deps.DependencySpec
	for _, s := range cfg.All() {
		if s.External() {
			specs = append(specs, s)
		}
	}

	results := make([]result, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, spec := range specs {
		g.Go(func() error {
			r, err := e.resolve(gctx, spec, opts.Rule)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.Transitive {
		if err := e.applyTransitive(ctx, results); err != nil {
			return nil, err
		}
	}

	outcomes := make([]deps.Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.outcome
	}
	return outcomes, nil
}

func (e *Engine) resolve(ctx context.Context, spec deps.DependencySpec, rule deps.SelectionRule) (result, error) {
	requested := deps.CoordinateOf(spec)
	unresolved := func(format string, args ...any) result {
		return result{outcome: deps.Unresolved{Requested: requested, Reason: fmt.Sprintf(format, args...)}}
	}

	sel, err := ParseSelector(spec.Version)
	if err != nil {
		return unresolved("%s", errors.UserMessage(err)), nil
	}
	if sel.kind == selectNone {
		return result{outcome: deps.Resolved{Requested: requested, Module: requested}}, nil
	}

	known := false
	for i, repo := range e.repos {
		versions, err := e.versions(ctx, i, spec.Group, spec.Artifact)
		if stderrors.Is(err, integrations.ErrNotFound) {
			continue
		}
		if err != nil {
			return result{}, errors.Wrap(errors.ErrCodeRepository, err,
				"could not resolve %s from repository %s", requested, repo.RepositoryName())
		}
		known = true

		if !sel.Dynamic() {
			for _, v := range versions {
				if v == sel.raw {
					return e.resolved(requested, v, i), nil
				}
			}
			continue
		}

		// The first repository that knows a module provides all candidates.
		version.SortDescending(versions)
		var rejections []string
		for _, v := range versions {
			if !sel.Matches(v) {
				continue
			}
			if rule != nil {
				c := deps.Candidate{
					Coordinate: deps.NewCoordinate(spec.Group, spec.Artifact, v),
					Status:     Classify(v),
				}
				if ok, reason := rule(c); !ok {
					e.logger.Debug("candidate rejected", "candidate", c.Coordinate, "reason", reason)
					rejections = append(rejections, v+": "+reason)
					continue
				}
			}
			return e.resolved(requested, v, i), nil
		}
		if len(rejections) > 0 {
			return unresolved("could not find any version that matches %s; rejected %s",
				requested, strings.Join(rejections, ", ")), nil
		}
		return unresolved("could not find any version that matches %s in %s",
			requested, repository.Describe(repo)), nil
	}

	if known {
		return unresolved("could not find %s", requested), nil
	}
	return unresolved("could not find %s:%s in any repository (searched %s)",
		spec.Group, spec.Artifact, e.searched()), nil
}

func (e *Engine) resolved(requested deps.Coordinate, v string, repo int) result {
	return result{
		outcome: deps.Resolved{
			Requested: requested,
			Module:    deps.NewCoordinate(requested.Group, requested.Artifact, v),
		},
		source: e.sources[repo],
	}
}

func (e *Engine) searched() string {
	names := make([]string, len(e.repos))
	for i, r := range e.repos {
		names[i] = r.RepositoryName()
	}
	return strings.Join(names, ", ")
}

// versions lists the versions the i-th repository offers for a module.
// It returns integrations.ErrNotFound if the repository does not know it.
func (e *Engine) versions(ctx context.Context, i int, group, artifact string) ([]string, error) {
	switch r := e.repos[i].(type) {
	case repository.Maven:
		src := e.sources[i]
		meta, err := src.client.FetchMetadata(ctx, src.url, group, artifact, e.opts.Refresh)
		if err != nil {
			return nil, err
		}
		if len(meta.Versions) == 0 {
			return nil, fmt.Errorf("%w: no versions for %s:%s", integrations.ErrNotFound, group, artifact)
		}
		return meta.Versions, nil
	case repository.FlatDir:
		return flatDirVersions(r, artifact)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported repository %T", r)
	}
}

// applyTransitive upgrades first-level results whose module a resolved
// module depends on in a newer version.
func (e *Engine) applyTransitive(ctx context.Context, results []result) error {
	index := make(map[deps.Key]int)
	for i, r := range results {
		if res, ok := r.outcome.(deps.Resolved); ok {
			index[res.Module.Key()] = i
		}
	}

	poms := make([]*maven.POM, len(results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, r := range results {
		res, ok := r.outcome.(deps.Resolved)
		if !ok || r.source == nil || res.Module.Unversioned() {
			continue
		}
		g.Go(func() error {
			m := res.Module
			pom, err := r.source.client.FetchPOM(gctx, r.source.url, m.Group, m.Artifact, m.Version, e.opts.Refresh)
			if stderrors.Is(err, integrations.ErrNotFound) {
				e.logger.Debug("no pom", "module", m)
				return nil
			}
			if err != nil {
				return errors.Wrap(errors.ErrCodeRepository, err, "could not read pom of %s", m)
			}
			poms[i] = pom
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, pom := range poms {
		if pom == nil {
			continue
		}
		from := results[i].outcome.(deps.Resolved).Module
		for _, d := range pom.CompileDependencies() {
			j, ok := index[deps.Key{Group: d.GroupID, Artifact: d.ArtifactID}]
			if !ok || d.Version == "" || maven.Unresolved(d.Version) {
				continue
			}
			target := results[j].outcome.(deps.Resolved)
			if version.CompareQualified(d.Version, target.Module.Version) > 0 {
				e.logger.Debug("conflict resolved to newer version",
					"module", target.Module, "version", d.Version, "requested_by", from)
				target.Module.Version = d.Version
				results[j].outcome = target
			}
		}
	}
	return nil
}
