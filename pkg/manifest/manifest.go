// Package manifest reads declared dependencies from build files.
//
// Each supported format has a [Parser]:
//
//   - [POMParser]: Maven pom.xml, one configuration per scope
//   - [CatalogParser]: Gradle version catalogs (libs.versions.toml)
//
// [Detect] picks the parser for a path:
//
//	p, err := manifest.Detect(path, manifest.Parsers()...)
//	res, err := p.Parse(path)
//	for _, cfg := range res.Configurations { ... }
package manifest

import (
	"path/filepath"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/errors"
)

// Parser reads dependency configurations from local manifest files.
type Parser interface {
	// Parse reads the manifest at path.
	Parse(path string) (*Result, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "pom.xml").
	Type() string
}

// Result holds the configurations declared in one manifest.
type Result struct {
	Path           string               // Manifest path as given
	Type           string               // Parser type that produced this result
	Project        string               // Project identity, if determinable
	Configurations []deps.Configuration // In declaration order
}

// Configuration returns the configuration called name.
func (r *Result) Configuration(name string) (deps.Configuration, bool) {
	for _, c := range r.Configurations {
		if c.Name == name {
			return c, true
		}
	}
	return deps.Configuration{}, false
}

// Parsers returns every built-in parser.
func Parsers() []Parser {
	return []Parser{&POMParser{}, &CatalogParser{}}
}

// Detect finds a parser that supports the given file path.
// Returns an error if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	if err := errors.ValidateManifestFilename(name); err != nil {
		return nil, err
	}
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", name)
}

// Parse detects the parser for path among the built-in parsers and runs it.
func Parse(path string) (*Result, error) {
	p, err := Detect(path, Parsers()...)
	if err != nil {
		return nil, err
	}
	res, err := p.Parse(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return res, nil
}
