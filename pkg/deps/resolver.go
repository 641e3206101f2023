package deps

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/freshdeps/pkg/observability"
	"github.com/matzehuels/freshdeps/pkg/version"
)

// SelectionRuleBaseline is the first engine version that honours selection
// rules. Older engines fall back to "latest.<revision>" selectors.
const SelectionRuleBaseline = "2.2"

// DynamicSelector asks for the newest version a repository offers.
const DynamicSelector = "+"

// Resolver determines, per declared dependency, the newest version that
// satisfies a revision class.
//
// A Resolver holds no state between calls. It is safe for concurrent use if
// its Engine is.
type Resolver struct {
	engine         Engine
	logger         *log.Logger
	selectionRules bool
}

// NewResolver creates a Resolver on top of engine. The engine version is
// checked once here to decide whether selection rules can be used.
// If logger is nil, log.Default() is used.
func NewResolver(engine Engine, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		engine:         engine,
		logger:         logger,
		selectionRules: version.AtLeast(engine.Version(), SelectionRuleBaseline),
	}
}

// SelectionRules reports whether the engine supports selection rules.
func (r *Resolver) SelectionRules() bool { return r.selectionRules }

// Resolve returns the status of every declared external dependency of cfg
// for the given revision class.
//
// Dependencies that cannot be resolved are reported as statuses carrying a
// [Failure]; only engine errors abort the call. The result is duplicate-free
// and ordered by group, artifact and version.
func (r *Resolver) Resolve(ctx context.Context, cfg Configuration, revision Revision) (statuses []DependencyStatus, err error) {
	start := time.Now()
	observability.Resolve().OnResolveStart(ctx, cfg.Name, string(revision))
	defer func() {
		observability.Resolve().OnResolveComplete(ctx, cfg.Name, string(revision), len(statuses), time.Since(start), err)
	}()

	current, err := r.CurrentCoordinates(ctx, cfg)
	if err != nil {
		return nil, err
	}

	query, opts := r.QueryConfiguration(cfg, revision)
	outcomes, err := r.engine.ResolveLenient(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	set := make(statusSet)
	for _, o := range outcomes {
		switch o := o.(type) {
		case Resolved:
			coord, ok := current[o.Module.Key()]
			if !ok {
				if !o.Requested.Unversioned() {
					r.logger.Info("skipping hidden dependency", "dependency", o.Module)
					continue
				}
				coord = o.Module
			}
			set.add(NewResolvedStatus(coord, o.Module.Version))
		case Unresolved:
			coord, ok := current[o.Requested.Key()]
			if !ok {
				coord = o.Requested
			}
			set.add(NewUnresolvedStatus(coord, Failure{Selector: o.Requested.String(), Reason: o.Reason}))
		}
	}
	return set.sorted(), nil
}

// CurrentCoordinates maps each declared external dependency of cfg to its
// current coordinate: the resolved one when resolution succeeds, the declared
// one otherwise.
//
// Entries whose key was not declared in cfg are discarded, even if the engine
// reports them.
func (r *Resolver) CurrentCoordinates(ctx context.Context, cfg Configuration) (map[Key]Coordinate, error) {
	declared := make(map[Key]Coordinate)
	for _, d := range cfg.External() {
		c := CoordinateOf(d)
		declared[c.Key()] = c
	}
	if len(declared) == 0 {
		return map[Key]Coordinate{}, nil
	}

	outcomes, err := r.engine.ResolveLenient(ctx, cfg.NonTransitive(), ResolveOptions{})
	if err != nil {
		return nil, err
	}

	current := make(map[Key]Coordinate, len(outcomes))
	for _, o := range outcomes {
		switch o := o.(type) {
		case Resolved:
			current[o.Module.Key()] = o.Module
		case Unresolved:
			key := o.Requested.Key()
			if d, ok := declared[key]; ok {
				current[key] = d
			} else {
				current[key] = o.Requested
			}
		}
	}

	for key := range current {
		if _, ok := declared[key]; !ok {
			r.logger.Debug("dropping undeclared dependency", "key", key)
			delete(current, key)
		}
	}
	return current, nil
}

// ConflictResolved returns the declared dependencies of cfg whose version
// changes when cfg is resolved together with its transitive dependencies,
// mapped to the coordinate conflict resolution selected. This happens when a
// resolved module depends on a newer version of a declared one.
//
// A non-transitive cfg yields an empty map without consulting the engine.
func (r *Resolver) ConflictResolved(ctx context.Context, cfg Configuration) (map[Key]Coordinate, error) {
	conflicts := make(map[Key]Coordinate)
	if !cfg.Transitive || len(cfg.External()) == 0 {
		return conflicts, nil
	}

	current, err := r.CurrentCoordinates(ctx, cfg)
	if err != nil {
		return nil, err
	}
	outcomes, err := r.engine.ResolveLenient(ctx, cfg, ResolveOptions{})
	if err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		res, ok := o.(Resolved)
		if !ok {
			continue
		}
		key := res.Module.Key()
		c, declared := current[key]
		if !declared || c.Version == res.Module.Version {
			continue
		}
		r.logger.Debug("conflict resolution changed version", "dependency", c, "resolved", res.Module.Version)
		conflicts[key] = res.Module
	}
	return conflicts, nil
}

// QueryConfiguration builds the configuration whose resolution reveals the
// newest acceptable version of each external dependency of cfg, together with
// the resolve options that apply the revision filter.
func (r *Resolver) QueryConfiguration(cfg Configuration, revision Revision) (Configuration, ResolveOptions) {
	selector := "latest." + string(revision)
	if r.selectionRules {
		selector = DynamicSelector
	}

	external := cfg.External()
	specs := make([]DependencySpec, 0, len(external))
	for _, d := range external {
		v := selector
		if d.Version == "" || d.Version == NoVersion {
			v = NoVersion
		}
		specs = append(specs, DependencySpec{
			Group:      d.Group,
			Artifact:   d.Artifact,
			Version:    v,
			Transitive: false,
		})
	}

	query := cfg.NonTransitive().WithDependencies(specs)
	var opts ResolveOptions
	if r.selectionRules {
		opts.Rule = RevisionFilter(revision)
	}
	return query, opts
}
