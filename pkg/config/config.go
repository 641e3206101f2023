// Package config loads freshdeps settings from a TOML file.
//
// A freshdeps.toml next to the manifest (or passed with --config) sets
// defaults for the check command; command-line flags override it:
//
//	revision   = "milestone"
//	cache_ttl  = "12h"
//	formats    = ["text", "json"]
//	output_dir = "build/dependencyUpdates"
//
//	[cache]
//	backend    = "redis"
//	redis_addr = "localhost:6379"
//
//	[[repository]]
//	kind     = "maven"
//	name     = "internal"
//	url      = "https://maven.example.com/releases"
//	username = "ci"
//	password = "${MAVEN_PASSWORD}"
//
//	[[repository]]
//	kind = "flatdir"
//	name = "libs"
//	dirs = ["libs"]
//
// Without [[repository]] entries, Maven Central is used. Usernames and
// passwords are expanded from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/errors"
	"github.com/matzehuels/freshdeps/pkg/repository"
)

// FileName is the configuration file looked up next to a manifest.
const FileName = "freshdeps.toml"

const (
	DefaultCacheTTL     = 24 * time.Hour // Default HTTP cache duration
	DefaultConcurrency  = 8              // Default parallel metadata fetches
	DefaultCacheBackend = BackendFile
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Repository kinds.
const (
	KindMaven   = "maven"
	KindFlatDir = "flatdir"
)

// Options holds file-level settings.
type Options struct {
	Revision    string              `toml:"revision"`    // release, milestone or integration (default: release)
	CacheTTL    time.Duration       `toml:"cache_ttl"`   // HTTP cache duration (default: 24h)
	Formats     []string            `toml:"formats"`     // Report formats (default: text)
	OutputDir   string              `toml:"output_dir"`  // Report directory; empty prints to stdout
	Concurrency int                 `toml:"concurrency"` // Parallel metadata fetches (default: 8)
	Cache       CacheOptions        `toml:"cache"`
	Repository  []RepositoryOptions `toml:"repository"`
}

// CacheOptions selects the HTTP cache backend.
type CacheOptions struct {
	Backend       string `toml:"backend"` // file, redis or none (default: file)
	Dir           string `toml:"dir"`     // File cache directory (default: ~/.cache/freshdeps)
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// RepositoryOptions declares one repository.
type RepositoryOptions struct {
	Kind     string   `toml:"kind"` // maven (default) or flatdir
	Name     string   `toml:"name"`
	URL      string   `toml:"url"`
	Dirs     []string `toml:"dirs"`
	Username string   `toml:"username"`
	Password string   `toml:"password"`
}

// Load decodes the file at path. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func Load(path string) (Options, error) {
	var o Options
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	// Relative flat directories are relative to the file.
	base := filepath.Dir(path)
	for i := range o.Repository {
		for j, dir := range o.Repository[i].Dirs {
			if !filepath.IsAbs(dir) {
				o.Repository[i].Dirs[j] = filepath.Join(base, dir)
			}
		}
	}
	return o, o.Validate()
}

// Find returns the path of the configuration file in dir, if there is one.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Revision == "" {
		opts.Revision = string(deps.Release)
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{"text"}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Cache.Backend == "" {
		opts.Cache.Backend = DefaultCacheBackend
	}
	return opts
}

// Validate checks values that can be checked without network access.
func (o Options) Validate() error {
	if o.Revision != "" {
		if _, err := deps.ParseRevision(o.Revision); err != nil {
			return err
		}
	}
	switch o.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if o.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis cache backend requires redis_addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (expected file, redis or none)", o.Cache.Backend)
	}
	_, err := o.Repositories()
	return err
}

// Repositories converts the [[repository]] entries, in file order. Names must
// be unique. Without entries it returns Maven Central.
func (o Options) Repositories() ([]repository.Repository, error) {
	if len(o.Repository) == 0 {
		return []repository.Repository{repository.MavenCentral()}, nil
	}
	repos := make([]repository.Repository, 0, len(o.Repository))
	for _, r := range o.Repository {
		repo, err := r.repository()
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	if err := repository.ValidateAll(repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (r RepositoryOptions) repository() (repository.Repository, error) {
	var repo repository.Repository
	switch strings.ToLower(r.Kind) {
	case "", KindMaven:
		repo = repository.Maven{
			Name:     r.Name,
			URL:      r.URL,
			Username: os.ExpandEnv(r.Username),
			Password: os.ExpandEnv(r.Password),
		}
	case KindFlatDir:
		repo = repository.FlatDir{Name: r.Name, Dirs: r.Dirs}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"repository %s: unknown kind %q (expected maven or flatdir)", r.Name, r.Kind)
	}
	if err := repository.Validate(repo); err != nil {
		return nil, err
	}
	return repo, nil
}
