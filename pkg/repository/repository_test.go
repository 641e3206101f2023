package repository

import (
	"testing"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		repo Repository
		want string
	}{
		{"maven", Maven{Name: "MavenRepo", URL: "https://repo1.maven.org/maven2"}, "MavenRepo https://repo1.maven.org/maven2"},
		{"flatdir single", FlatDir{Name: "libs", Dirs: []string{"lib"}}, "libs lib"},
		{"flatdir multiple", FlatDir{Name: "flatDir", Dirs: []string{"lib", "vendor/jars"}}, "flatDir lib,vendor/jars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.repo); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Describe(nil) should panic")
		}
	}()
	Describe(nil)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		repo    Repository
		wantErr bool
	}{
		{"valid maven", MavenCentral(), false},
		{"maven no name", Maven{URL: "https://x"}, true},
		{"maven bad scheme", Maven{Name: "x", URL: "ftp://x"}, true},
		{"valid flatdir", FlatDir{Name: "libs", Dirs: []string{"lib"}}, false},
		{"flatdir no dirs", FlatDir{Name: "libs"}, true},
		{"nil", nil, true},
		{"maven pointer", &Maven{Name: "x", URL: "https://x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	public := Maven{Name: "repo", URL: "https://repo.example.com/public"}
	private := Maven{Name: "repo", URL: "https://repo.example.com/private", Username: "alice", Password: "s3cret"}
	libs := FlatDir{Name: "libs", Dirs: []string{"lib"}}

	tests := []struct {
		name    string
		repos   []Repository
		wantErr bool
	}{
		{"empty", nil, false},
		{"distinct", []Repository{MavenCentral(), public, libs}, false},
		{"duplicate maven", []Repository{private, public}, true},
		{"duplicate across kinds", []Repository{libs, FlatDir{Name: "libs", Dirs: []string{"vendor"}}}, true},
		{"invalid entry", []Repository{Maven{Name: "x", URL: "ftp://x"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAll(tt.repos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("ValidateAll() error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestParseMaven(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantURL  string
		wantErr  bool
	}{
		{"internal=https://nexus.example.com/repo", "internal", "https://nexus.example.com/repo", false},
		{"https://maven.google.com", "maven.google.com", "https://maven.google.com", false},
		{"https://repo.example.com:8443/releases", "repo.example.com:8443", "https://repo.example.com:8443/releases", false},
		{"bad=ftp://x", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMaven(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMaven() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("ParseMaven() error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
				}
				return
			}
			if got.Name != tt.wantName || got.URL != tt.wantURL {
				t.Errorf("ParseMaven() = %+v, want %s %s", got, tt.wantName, tt.wantURL)
			}
		})
	}
}
