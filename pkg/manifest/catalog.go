package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/freshdeps/pkg/deps"
)

// CatalogConfiguration is the name of the single configuration a version
// catalog produces.
const CatalogConfiguration = "libs"

// CatalogParser reads Gradle version catalogs (libs.versions.toml).
//
// Libraries may be declared as "group:artifact:version" strings or as tables
// with module or group/name keys. Versions may be literal, a reference into
// [versions] (version.ref) or a rich version; for rich versions the preferred
// version wins, then required, then strict.
type CatalogParser struct{}

func (p *CatalogParser) Type() string { return "libs.versions.toml" }
func (p *CatalogParser) Supports(name string) bool {
	return strings.HasSuffix(name, ".versions.toml")
}

type catalogFile struct {
	Versions  map[string]any `toml:"versions"`
	Libraries map[string]any `toml:"libraries"`
}

func (p *CatalogParser) Parse(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog catalogFile
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}

	aliases := make([]string, 0, len(catalog.Libraries))
	for alias := range catalog.Libraries {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	cfg := deps.Configuration{Name: CatalogConfiguration, Transitive: true}
	for _, alias := range aliases {
		spec, err := catalog.library(alias, catalog.Libraries[alias])
		if err != nil {
			return nil, err
		}
		cfg.Dependencies = append(cfg.Dependencies, spec)
	}

	return &Result{
		Path:           path,
		Type:           p.Type(),
		Project:        strings.TrimSuffix(filepath.Base(path), ".versions.toml"),
		Configurations: []deps.Configuration{cfg},
	}, nil
}

func (c catalogFile) library(alias string, raw any) (deps.DependencySpec, error) {
	switch v := raw.(type) {
	case string:
		spec, err := deps.ParseSpec(v, true)
		if err != nil {
			return deps.DependencySpec{}, fmt.Errorf("library %s: %w", alias, err)
		}
		return spec, nil
	case map[string]any:
		spec := deps.DependencySpec{Transitive: true}
		if module, ok := v["module"].(string); ok {
			c, err := deps.ParseCoordinate(module)
			if err != nil {
				return deps.DependencySpec{}, fmt.Errorf("library %s: %w", alias, err)
			}
			if !c.Unversioned() {
				return deps.DependencySpec{}, fmt.Errorf("library %s: module %q carries a version, use version or version.ref", alias, module)
			}
			spec.Group, spec.Artifact = c.Group, c.Artifact
		} else {
			spec.Group, _ = v["group"].(string)
			spec.Artifact, _ = v["name"].(string)
		}
		if spec.Artifact == "" {
			return deps.DependencySpec{}, fmt.Errorf("library %s: missing module or name", alias)
		}
		version, err := c.version(alias, v["version"])
		if err != nil {
			return deps.DependencySpec{}, err
		}
		spec.Version = version
		return spec, nil
	}
	return deps.DependencySpec{}, fmt.Errorf("library %s: unexpected value %T", alias, raw)
}

// version resolves a library's version declaration.
func (c catalogFile) version(alias string, raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any:
		if ref, ok := v["ref"].(string); ok {
			declared, ok := c.Versions[ref]
			if !ok {
				return "", fmt.Errorf("library %s: unknown version reference %q", alias, ref)
			}
			return c.version(alias, declared)
		}
		for _, key := range []string{"prefer", "require", "strictly"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, nil
			}
		}
		return "", nil
	}
	return "", fmt.Errorf("library %s: unexpected version %T", alias, raw)
}
