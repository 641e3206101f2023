// Package pkg provides the libraries behind freshdeps, a checker for newer
// versions of declared JVM dependencies.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [deps] - The resolver: current coordinates, the "latest" query and the
//     reconciliation into dependency statuses
//  2. [engine] - A repository engine for Maven layouts and flat directories
//  3. [manifest] - Parsers for pom.xml and Gradle version catalogs
//  4. [report] - Classification and text/JSON/XML output
//  5. [integrations], [cache], [httputil] - HTTP clients, caching and retries
//  6. [config], [repository], [version], [errors], [observability] - Support
//
// # Architecture
//
// The data flow of a check:
//
//	pom.xml / libs.versions.toml
//	         ↓
//	    [manifest] package (declared configurations)
//	         ↓
//	    [deps] package (Resolver over an Engine)
//	         ↓
//	    [engine] package (maven-metadata.xml, POMs, flat dirs)
//	         ↓
//	    [report] package (current / outdated / exceeded / undeclared / unresolved)
//
// # Quick Start
//
//	res, err := manifest.Parse("pom.xml")
//	if err != nil {
//	    return err
//	}
//	backend, _ := cache.NewFileCache("")
//	eng := engine.New(maven.NewClient(backend, 24*time.Hour),
//	    []repository.Repository{repository.MavenCentral()}, engine.Options{})
//	resolver := deps.NewResolver(eng, nil)
//
//	cfg, _ := res.Configuration("compile")
//	statuses, err := resolver.Resolve(ctx, cfg, deps.Release)
//	if err != nil {
//	    return err
//	}
//	report.WriteText(report.Build(res.Project, deps.Release, statuses), os.Stdout)
package pkg
