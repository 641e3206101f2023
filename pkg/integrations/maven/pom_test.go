package maven

import (
	"testing"
)

func TestParsePOM(t *testing.T) {
	data := []byte(`<project>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0.0</version>
  <properties>
    <slf4j.version>2.0.9</slf4j.version>
    <logback.version>${slf4j.version}-compat</logback.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.slf4j</groupId>
        <artifactId>slf4j-api</artifactId>
        <version>${slf4j.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
    </dependency>
    <dependency>
      <groupId>ch.qos.logback</groupId>
      <artifactId>logback-classic</artifactId>
      <version>${logback.version}</version>
      <scope>runtime</scope>
    </dependency>
    <dependency>
      <groupId>org.unknown</groupId>
      <artifactId>lib</artifactId>
      <version>${missing.version}</version>
    </dependency>
  </dependencies>
</project>`)

	pom, err := ParsePOM(data)
	if err != nil {
		t.Fatalf("ParsePOM() error: %v", err)
	}

	tests := []struct {
		idx         int
		wantVersion string
		wantScope   string
	}{
		{0, "2.0.9", "compile"},
		{1, "2.0.9-compat", "runtime"},
		{2, "${missing.version}", "compile"},
	}
	for _, tt := range tests {
		d := pom.Dependencies[tt.idx]
		if d.Version != tt.wantVersion {
			t.Errorf("%s version = %q, want %q", d.Coordinate(), d.Version, tt.wantVersion)
		}
		if d.EffectiveScope() != tt.wantScope {
			t.Errorf("%s scope = %q, want %q", d.Coordinate(), d.EffectiveScope(), tt.wantScope)
		}
	}
}

func TestParsePOMInvalid(t *testing.T) {
	if _, err := ParsePOM([]byte("<project><dependencies>")); err == nil {
		t.Error("ParsePOM() should fail on truncated XML")
	}
}

func TestResolveCycle(t *testing.T) {
	pom := &POM{Properties: Properties{"a": "${b}", "b": "${a}"}}
	got := pom.Resolve("${a}")
	if !Unresolved(got) {
		t.Errorf("Resolve() of a cycle = %q, want an unresolved reference", got)
	}
}

func TestCompileDependencies(t *testing.T) {
	pom := &POM{
		Dependencies: []Dependency{
			{GroupID: "org.apache", ArtifactID: "commons-lang", Scope: "compile"},
			{GroupID: "junit", ArtifactID: "junit", Scope: "test"},
			{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Scope: "provided"},
			{GroupID: "org.optional", ArtifactID: "opt", Optional: true},
			{GroupID: "${project.groupId}", ArtifactID: "internal"}, // property reference
			{GroupID: "org.apache", ArtifactID: "commons-lang"},     // duplicate
			{GroupID: "org.postgresql", ArtifactID: "postgresql", Scope: "runtime"},
		},
	}

	deps := pom.CompileDependencies()
	if len(deps) != 2 {
		t.Fatalf("expected 2 deps, got %d: %v", len(deps), deps)
	}
	if deps[0].Coordinate() != "org.apache:commons-lang" {
		t.Errorf("expected org.apache:commons-lang, got %s", deps[0].Coordinate())
	}
	if deps[1].Coordinate() != "org.postgresql:postgresql" {
		t.Errorf("expected org.postgresql:postgresql, got %s", deps[1].Coordinate())
	}
}
