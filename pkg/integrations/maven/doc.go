// Package maven provides an HTTP client for Maven-layout repositories.
//
// # Overview
//
// This package reads the two documents a Maven repository publishes per
// module: the artifact-level maven-metadata.xml listing every deployed
// version, and the POM of a single version listing its dependencies. Any
// repository using the Maven layout works, including Maven Central
// ([CentralURL]), Nexus and Artifactory.
//
// # Usage
//
//	client := maven.NewClient(backend, 24*time.Hour)
//
//	meta, err := client.FetchMetadata(ctx, maven.CentralURL, "com.google.guava", "guava", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(meta.Release, len(meta.Versions))
//
// # Caching
//
// Responses are cached to reduce load on repositories. The cache TTL is set
// when creating the client. Pass refresh=true to bypass the cache.
//
// # POM Interpolation
//
// [ParsePOM] expands ${...} references from <properties>, project and parent
// coordinates, and fills missing dependency versions from
// <dependencyManagement>. [POM.CompileDependencies] keeps compile and runtime
// scoped, non-optional dependencies; those with unresolved references are
// skipped.
package maven
