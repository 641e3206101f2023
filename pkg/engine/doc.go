// Package engine resolves dependency configurations against artifact
// repositories.
//
// # Overview
//
// [Engine] implements [deps.Engine] on top of Maven-layout repositories
// (through package maven) and flat directories of jar files:
//
//	e := engine.New(client, []repository.Repository{repository.MavenCentral()}, engine.Options{})
//	outcomes, err := e.ResolveLenient(ctx, cfg, deps.ResolveOptions{})
//
// # Selectors
//
// Every dependency version is parsed as a [Selector]: a fixed version,
// "none", "+", a prefix such as "1.2.+", "latest.<status>" or a Maven range
// such as "[1.0,2.0)". Dynamic selectors are matched against the versions
// offered by the first repository that knows the module, newest first.
//
// # Candidate Status
//
// Repositories carry no status metadata, so [Classify] derives it from the
// version string: snapshots are integration builds, versions with a
// pre-release qualifier (alpha, beta, rc, M1, ...) are milestones and all
// others are releases. A selection rule passed in [deps.ResolveOptions] sees
// every matching candidate with its status and may reject it.
//
// # Errors
//
// Modules no repository knows, and selectors nothing satisfies, become
// [deps.Unresolved] outcomes. Other repository failures (authentication,
// server errors after retries, malformed metadata) abort the resolution.
package engine
