package deps

import "context"

// Engine is the repository engine of the host build system. It resolves a
// configuration against its repositories.
//
// ResolveLenient reports per-dependency failures as [Unresolved] outcomes.
// It returns an error only when resolution as a whole cannot proceed
// (unreachable repository, broken repository configuration).
type Engine interface {
	// Version returns the engine version, used for capability detection.
	Version() string
	// ResolveLenient resolves the first-level dependencies of cfg.
	ResolveLenient(ctx context.Context, cfg Configuration, opts ResolveOptions) ([]Outcome, error)
}

// ResolveOptions tunes a single lenient resolution.
type ResolveOptions struct {
	// Rule, if set, is consulted for every candidate version of a dynamic
	// selector. Engines that do not support selection rules ignore it.
	Rule SelectionRule
}

// Outcome is the result of resolving one first-level dependency.
// It is either [Resolved] or [Unresolved].
type Outcome interface {
	// Query returns the coordinate of the dependency that was resolved.
	Query() Coordinate
	isOutcome()
}

// Resolved is a successfully resolved dependency.
type Resolved struct {
	Requested Coordinate // The declared or query selector
	Module    Coordinate // The selected module identity
}

// Unresolved is a dependency that could not be resolved.
type Unresolved struct {
	Requested Coordinate // The failed selector
	Reason    string     // Why resolution failed
}

func (r Resolved) Query() Coordinate   { return r.Requested }
func (u Unresolved) Query() Coordinate { return u.Requested }

func (Resolved) isOutcome()   {}
func (Unresolved) isOutcome() {}
