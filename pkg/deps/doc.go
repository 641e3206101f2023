// Package deps determines whether newer versions of declared dependencies
// exist.
//
// # Overview
//
// A [Resolver] takes a [Configuration] (the dependencies declared in one
// build configuration) and a [Revision] class, and reports one
// [DependencyStatus] per declared external dependency:
//
//	r := deps.NewResolver(engine, logger)
//	statuses, err := r.Resolve(ctx, cfg, deps.Release)
//
// The actual repository lookups are delegated to an [Engine], the contract
// with the host build system's repository layer.
//
// # Resolution
//
// Resolve performs two lenient resolutions:
//
//  1. The current coordinates: a non-transitive copy of the configuration is
//     resolved as declared. Dynamic versions ("1.+") resolve to a concrete
//     version; failures fall back to the declared coordinate.
//  2. The query: every external dependency is replaced by the same
//     group:artifact with a dynamic selector ("+" or "latest.release"), and
//     resolved with the [RevisionFilter] selection rule attached.
//
// Query results are matched back to current coordinates by [Key].
//
// # Hidden Dependencies
//
// Engines may report dependencies that were never declared in the
// configuration, typically entries inherited from configurations it extends.
// These are dropped from the current coordinates, and query results for them
// are skipped. Only dependencies without a version ([NoVersion]) are kept
// without a current coordinate.
//
// # Failures
//
// A dependency that cannot be resolved is data, not an error: its status
// carries a [Failure]. Resolve returns an error only when the engine itself
// fails (for example an unreachable repository).
//
// # Selection Rules
//
// Engines at or above [SelectionRuleBaseline] are queried with "+" and the
// revision filter. Older engines are queried with "latest.<revision>" and no
// rule; see [Resolver.SelectionRules].
package deps
