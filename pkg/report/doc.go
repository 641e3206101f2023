// Package report classifies dependency statuses and writes them out.
//
// # Overview
//
// [Build] turns the statuses produced by [deps.Resolver.Resolve] into a
// [Report] where every dependency falls into exactly one [Category]:
//
//   - Current: the newest acceptable version is the one in use
//   - Outdated: a newer acceptable version exists
//   - Exceeded: the version in use is newer than anything acceptable at the
//     requested revision (e.g. a release candidate when asking for releases)
//   - Undeclared: the dependency declares no version
//   - Unresolved: the newer-version query failed
//
// Versions are ordered with [version.CompareQualified].
//
// # Formats
//
// Reports can be written as plain text ([WriteText]), JSON ([WriteJSON]) or
// XML ([WriteXML]). [Write] dispatches on a format name and [Export] writes
// one file per format into a directory:
//
//	r := report.Build("com.example:app", deps.Release, statuses)
//	if err := report.Export(r, "build/dependencyUpdates", []string{"json", "text"}); err != nil {
//	    return err
//	}
//
// # JSON Format
//
//	{
//	  "id": "5b0c...",
//	  "project": "com.example:app",
//	  "revision": "release",
//	  "generated": "2026-01-02T15:04:05Z",
//	  "count": 2,
//	  "current": {"count": 1, "dependencies": [{"group": "junit", "name": "junit", "version": "4.13.2"}]},
//	  "outdated": {"count": 1, "dependencies": [{"group": "com.google.guava", "name": "guava", "version": "31.0-jre", "available": "33.0.0-jre"}]},
//	  "exceeded": {"count": 0, "dependencies": []},
//	  "undeclared": {"count": 0, "dependencies": []},
//	  "unresolved": {"count": 0, "dependencies": []}
//	}
package report
