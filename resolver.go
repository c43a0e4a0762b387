package buildinput

import (
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"os"
)

// LookupFunc looks up a single named value. It reports whether the name was
// set at all; callers treat a set-but-empty value the same as an unset one.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// Sources holds the string sources consulted for every key.
// Build it once at startup and hand it to New.
type Sources struct {
	// CIInput looks up CI platform inputs (see package actions).
	CIInput LookupFunc

	// CIInputEnabled gates CIInput. When false CIInput is never called.
	CIInputEnabled bool

	// Options is the explicit option map assembled from command-line flags
	// and option files (see package config). May be nil.
	Options map[string]string

	// Env looks up process environment variables.
	// Defaults to os.LookupEnv if nil.
	Env LookupFunc
}

// RepoReader reads state from the repository being built.
// Errors are treated as "no value".
type RepoReader interface {
	// Branch returns the checked-out branch name.
	Branch(ctx context.Context) (string, error)

	// Remote returns the "owner/repo" slug of the origin remote.
	Remote(ctx context.Context) (string, error)

	// Sha returns the HEAD commit hash.
	Sha() (string, error)
}

// TokenReader reads an authentication token from a locally installed CLI.
type TokenReader interface {
	Token(ctx context.Context) (string, error)
}

// PlatformDefaults supplies the build target used when targetPlatform is unset.
type PlatformDefaults interface {
	DefaultTarget() string
}

// Input resolves named build inputs from its Sources and readers.
// It is immutable after New and safe for concurrent use.
type Input struct {
	sources  Sources
	repo     RepoReader
	tokens   TokenReader
	platform PlatformDefaults
	fsys     fs.StatFS
	logger   *slog.Logger
}

// Option configures an Input.
type Option func(*Input)

// WithRepoReader sets the repository-state reader used by Branch,
// GithubRepo and GitSha.
func WithRepoReader(r RepoReader) Option {
	return func(in *Input) {
		in.repo = r
	}
}

// WithTokenReader sets the CLI-authentication reader used by GithubToken.
func WithTokenReader(r TokenReader) Option {
	return func(in *Input) {
		in.tokens = r
	}
}

// WithPlatformDefaults sets the provider of the default build target.
func WithPlatformDefaults(p PlatformDefaults) Option {
	return func(in *Input) {
		in.platform = p
	}
}

// WithFS sets the filesystem ProjectPath searches for Unity project markers.
// Defaults to os.DirFS(".").
func WithFS(fsys fs.StatFS) Option {
	return func(in *Input) {
		in.fsys = fsys
	}
}

// WithLogger sets the logger for reader failures.
// If nil, uses the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Input) {
		in.logger = logger
	}
}

// New creates an Input over the given sources.
// The option map is copied, so later changes by the caller are not observed.
func New(sources Sources, opts ...Option) *Input {
	in := &Input{
		sources: sources,
	}
	in.sources.Options = maps.Clone(sources.Options)
	if in.sources.Env == nil {
		in.sources.Env = os.LookupEnv
	}

	for _, opt := range opts {
		opt(in)
	}

	if in.logger == nil {
		in.logger = slog.Default()
	}
	if in.fsys == nil {
		in.fsys = os.DirFS(".").(fs.StatFS)
	}

	return in
}

// Get returns the value for key from the first source that has a non-empty
// one, or "" if none does.
func (in *Input) Get(key string) string {
	v, _ := in.Lookup(key)
	return v
}

// Lookup is like Get but also reports which source supplied the value.
//
// Sources are consulted in order: CI input (if enabled), option map, the
// environment variable named key, then the environment variable named
// ToEnvVarFormat(key). Empty values never stop the search.
func (in *Input) Lookup(key string) (string, Source) {
	if in.sources.CIInputEnabled && in.sources.CIInput != nil {
		if v, ok := in.sources.CIInput(key); ok && v != "" {
			return v, SourceCIInput
		}
	}

	if v := in.sources.Options[key]; v != "" {
		return v, SourceOption
	}

	if v, ok := in.sources.Env(key); ok && v != "" {
		return v, SourceEnv
	}

	if v, ok := in.sources.Env(ToEnvVarFormat(key)); ok && v != "" {
		return v, SourceEnvFormatted
	}

	return "", SourceDefault
}

// getOr returns Get(key), or def when that is empty.
func (in *Input) getOr(key, def string) string {
	if v := in.Get(key); v != "" {
		return v
	}
	return def
}

// first returns the first non-empty Get result over keys.
func (in *Input) first(keys ...string) string {
	for _, key := range keys {
		if v := in.Get(key); v != "" {
			return v
		}
	}
	return ""
}
