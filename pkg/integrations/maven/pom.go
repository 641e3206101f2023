package maven

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

// POM is the subset of a Maven project object model needed to read declared
// dependencies.
type POM struct {
	GroupID      string       `xml:"groupId"`
	ArtifactID   string       `xml:"artifactId"`
	Version      string       `xml:"version"`
	Packaging    string       `xml:"packaging"`
	Name         string       `xml:"name"`
	Description  string       `xml:"description"`
	Parent       *Parent      `xml:"parent"`
	Properties   Properties   `xml:"properties"`
	Modules      []string     `xml:"modules>module"`
	Managed      []Dependency `xml:"dependencyManagement>dependencies>dependency"`
	Dependencies []Dependency `xml:"dependencies>dependency"`
}

// Parent identifies a parent POM.
type Parent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// Dependency is one <dependency> element.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Type       string `xml:"type"`
	Optional   bool   `xml:"optional"`
}

// Coordinate returns "groupId:artifactId".
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID
}

// EffectiveScope returns the declared scope, defaulting to "compile".
func (d Dependency) EffectiveScope() string {
	if d.Scope == "" {
		return "compile"
	}
	return d.Scope
}

// Properties holds the free-form <properties> block.
type Properties map[string]string

type property struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// UnmarshalXML decodes arbitrary child elements into the map.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Entries []property `xml:",any"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	m := make(Properties, len(raw.Entries))
	for _, e := range raw.Entries {
		m[e.XMLName.Local] = strings.TrimSpace(e.Value)
	}
	*p = m
	return nil
}

// ParsePOM decodes a POM document and interpolates ${...} references.
func ParsePOM(data []byte) (*POM, error) {
	var pom POM
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}
	pom.interpolate()
	return &pom, nil
}

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// maxInterpolationDepth bounds nested property references.
const maxInterpolationDepth = 8

// Resolve expands ${...} references in s using the POM's properties and
// project coordinates. Unknown references are left in place.
func (p *POM) Resolve(s string) string {
	for range maxInterpolationDepth {
		if !strings.Contains(s, "${") {
			return s
		}
		next := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
			name := ref[2 : len(ref)-1]
			if v, ok := p.lookup(name); ok {
				return v
			}
			return ref
		})
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func (p *POM) lookup(name string) (string, bool) {
	switch name {
	case "project.version", "pom.version", "version":
		return p.effectiveVersion(), p.effectiveVersion() != ""
	case "project.groupId", "pom.groupId", "groupId":
		return p.effectiveGroupID(), p.effectiveGroupID() != ""
	case "project.artifactId", "pom.artifactId", "artifactId":
		return p.ArtifactID, p.ArtifactID != ""
	case "project.parent.version", "parent.version":
		if p.Parent != nil {
			return p.Parent.Version, p.Parent.Version != ""
		}
		return "", false
	case "project.parent.groupId", "parent.groupId":
		if p.Parent != nil {
			return p.Parent.GroupID, p.Parent.GroupID != ""
		}
		return "", false
	}
	v, ok := p.Properties[name]
	return v, ok
}

func (p *POM) effectiveVersion() string {
	if p.Version == "" && p.Parent != nil {
		return p.Parent.Version
	}
	return p.Version
}

func (p *POM) effectiveGroupID() string {
	if p.GroupID == "" && p.Parent != nil {
		return p.Parent.GroupID
	}
	return p.GroupID
}

func (p *POM) interpolate() {
	if p.Version == "" && p.Parent != nil {
		p.Version = p.Parent.Version
	}
	if p.GroupID == "" && p.Parent != nil {
		p.GroupID = p.Parent.GroupID
	}

	managed := make(map[string]string, len(p.Managed))
	for i := range p.Managed {
		p.resolveDependency(&p.Managed[i])
		managed[p.Managed[i].Coordinate()] = p.Managed[i].Version
	}
	for i := range p.Dependencies {
		d := &p.Dependencies[i]
		p.resolveDependency(d)
		if d.Version == "" {
			d.Version = managed[d.Coordinate()]
		}
	}
}

func (p *POM) resolveDependency(d *Dependency) {
	d.GroupID = p.Resolve(strings.TrimSpace(d.GroupID))
	d.ArtifactID = p.Resolve(strings.TrimSpace(d.ArtifactID))
	d.Version = p.Resolve(strings.TrimSpace(d.Version))
	d.Scope = strings.TrimSpace(d.Scope)
}

// Unresolved reports whether s still contains a ${...} reference.
func Unresolved(s string) bool {
	return strings.Contains(s, "${")
}

// CompileDependencies returns the compile and runtime scoped, non-optional
// dependencies whose coordinates are fully resolved, in declaration order
// without duplicates.
func (p *POM) CompileDependencies() []Dependency {
	var deps []Dependency
	seen := make(map[string]bool)

	for _, dep := range p.Dependencies {
		switch dep.EffectiveScope() {
		case "compile", "runtime":
		default:
			continue
		}
		if dep.Optional {
			continue
		}
		// Skip dependencies with unresolved properties
		if Unresolved(dep.GroupID) || Unresolved(dep.ArtifactID) {
			continue
		}
		if !seen[dep.Coordinate()] {
			seen[dep.Coordinate()] = true
			deps = append(deps, dep)
		}
	}
	return deps
}
