package manifest

import (
	"testing"

	"github.com/matzehuels/freshdeps/pkg/deps"
)

const testCatalog = `
[versions]
guava = "32.1.3-jre"
kotlin = { strictly = "[1.8,2.0)", prefer = "1.9.22" }

[libraries]
guava = { module = "com.google.guava:guava", version.ref = "guava" }
junit = { group = "junit", name = "junit", version = "4.13.2" }
commons = "org.apache.commons:commons-lang3:3.14.0"
kotlin-stdlib = { module = "org.jetbrains.kotlin:kotlin-stdlib", version.ref = "kotlin" }
slf4j = { module = "org.slf4j:slf4j-api", version = { require = "2.0.9" } }
bom-managed = { module = "io.netty:netty-handler" }

[bundles]
testing = ["junit"]
`

func TestCatalogParser_Parse(t *testing.T) {
	res, err := (&CatalogParser{}).Parse(writeFile(t, "libs.versions.toml", testCatalog))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if res.Project != "libs" {
		t.Errorf("Project = %q, want libs", res.Project)
	}

	cfg, ok := res.Configuration(CatalogConfiguration)
	if !ok {
		t.Fatal("libs configuration missing")
	}

	// Aliases are sorted.
	want := []string{
		"io.netty:netty-handler:none",
		"org.apache.commons:commons-lang3:3.14.0",
		"com.google.guava:guava:32.1.3-jre",
		"junit:junit:4.13.2",
		"org.jetbrains.kotlin:kotlin-stdlib:1.9.22",
		"org.slf4j:slf4j-api:2.0.9",
	}
	if len(cfg.Dependencies) != len(want) {
		t.Fatalf("got %d dependencies, want %d", len(cfg.Dependencies), len(want))
	}
	for i, w := range want {
		if got := deps.CoordinateOf(cfg.Dependencies[i]).String(); got != w {
			t.Errorf("dependency %d = %s, want %s", i, got, w)
		}
	}
}

func TestCatalogParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown ref", `[libraries]
x = { module = "a:b", version.ref = "missing" }`},
		{"bad module", `[libraries]
x = { module = "ab" }`},
		{"module with version", `[libraries]
x = { module = "a:b:1.0" }`},
		{"module with empty group", `[libraries]
x = { module = ":b" }`},
		{"bad notation", `[libraries]
x = "just-a-name"`},
		{"no name", `[libraries]
x = { group = "a" }`},
		{"invalid toml", `[libraries`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (&CatalogParser{}).Parse(writeFile(t, "libs.versions.toml", tt.content)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}
