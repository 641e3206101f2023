package manifest

import (
	"os"
	"slices"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/integrations/maven"
)

// Maven scopes in declaration order.
const (
	ScopeCompile  = "compile"
	ScopeRuntime  = "runtime"
	ScopeProvided = "provided"
	ScopeTest     = "test"
)

// scopeParents lists the scopes each scope's classpath includes.
var scopeParents = map[string][]string{
	ScopeRuntime: {ScopeCompile},
	ScopeTest:    {ScopeCompile, ScopeRuntime},
}

// POMParser reads pom.xml files.
//
// Every scope becomes a configuration. Runtime inherits compile and test
// inherits compile and runtime; inherited dependencies take part in
// resolution without being reported for the inheriting scope.
//
// Dependencies on modules listed in <modules> with the project's groupId are
// project dependencies and are not checked.
type POMParser struct{}

func (p *POMParser) Type() string              { return "pom.xml" }
func (p *POMParser) Supports(name string) bool { return name == "pom.xml" }

func (p *POMParser) Parse(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pom, err := maven.ParsePOM(data)
	if err != nil {
		return nil, err
	}

	declared := make(map[string][]deps.DependencySpec)
	for _, d := range pom.Dependencies {
		// Skip dependencies with unresolved Maven properties
		if d.ArtifactID == "" || maven.Unresolved(d.GroupID) || maven.Unresolved(d.ArtifactID) {
			continue
		}
		spec := deps.DependencySpec{
			Group:      d.GroupID,
			Artifact:   d.ArtifactID,
			Version:    d.Version,
			Transitive: true,
			Project:    d.GroupID == pom.GroupID && slices.Contains(pom.Modules, d.ArtifactID),
		}
		scope := d.EffectiveScope()
		declared[scope] = append(declared[scope], spec)
	}

	res := &Result{
		Path:    path,
		Type:    p.Type(),
		Project: pom.GroupID + ":" + pom.ArtifactID,
	}
	for _, scope := range []string{ScopeCompile, ScopeRuntime, ScopeProvided, ScopeTest} {
		cfg := deps.Configuration{
			Name:         scope,
			Dependencies: declared[scope],
			Transitive:   true,
		}
		for _, parent := range scopeParents[scope] {
			cfg.Inherited = append(cfg.Inherited, declared[parent]...)
		}
		res.Configurations = append(res.Configurations, cfg)
	}
	return res, nil
}
