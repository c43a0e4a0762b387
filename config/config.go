package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default file locations.
const (
	DefaultGlobalConfigDir  = "unity-builder"
	DefaultGlobalConfigFile = "options.yaml"
	DefaultLocalConfigName  = ".unity-builder.yaml"
)

// ResolverConfig configures the option map resolver.
type ResolverConfig struct {
	// GlobalConfigDir is the name of the directory under ~/.config/
	// holding the global options file. Defaults to "unity-builder".
	GlobalConfigDir string

	// GlobalConfigFile is the filename of the global options file.
	// Defaults to "options.yaml".
	GlobalConfigFile string

	// LocalConfigName is the options filename looked up in the git root.
	// Defaults to ".unity-builder.yaml".
	LocalConfigName string

	// Files are options files named explicitly by the user, lowest priority first.
	// A missing file here is an error.
	Files []string

	// Flags are key=value assignments from the command line, applied last.
	Flags []string

	// GitRootFinder finds the git root directory.
	// If nil, walks up from the working directory looking for .git.
	GitRootFinder func(startDir string) (string, error)

	// Logger receives warnings.
	// If nil, uses the default slog logger.
	Logger *slog.Logger
}

func (c ResolverConfig) globalConfigDir() string {
	if c.GlobalConfigDir != "" {
		return c.GlobalConfigDir
	}
	return DefaultGlobalConfigDir
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return DefaultGlobalConfigFile
}

func (c ResolverConfig) localConfigName() string {
	if c.LocalConfigName != "" {
		return c.LocalConfigName
	}
	return DefaultLocalConfigName
}

// Resolver assembles the explicit option map from files and flags.
type Resolver struct {
	config     ResolverConfig
	logger     *slog.Logger
	globalPath string
	localPath  string
	gitRoot    string

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a resolver that finds the global and local files itself.
func NewResolver(cfg ResolverConfig) *Resolver {
	r := newResolver(cfg)

	finder := cfg.GitRootFinder
	if finder == nil {
		finder = findGitRoot
	}
	if root, err := finder("."); err == nil && root != "" {
		r.gitRoot = root
		r.localPath = filepath.Join(root, cfg.localConfigName())
	}

	if home, err := os.UserHomeDir(); err == nil {
		r.globalPath = filepath.Join(home, ".config", cfg.globalConfigDir(), cfg.globalConfigFile())
	}

	return r
}

// NewResolverWithPaths creates a resolver with explicit global and local paths.
// An empty path disables that layer.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	r := newResolver(cfg)
	r.globalPath = globalPath
	r.localPath = localPath
	return r
}

func newResolver(cfg ResolverConfig) *Resolver {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{config: cfg, logger: logger}
}

// warn records a warning and logs it.
func (r *Resolver) warn(msg string, args ...any) {
	r.Warnings = append(r.Warnings, msg)
	r.logger.Warn(msg, args...)
}

// Resolved holds the merged option map.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns the source of a key's value, or "" if not set.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// All returns a copy of all key-value pairs.
func (c *Resolved) All() map[string]string {
	return maps.Clone(c.values)
}

// Keys returns all option keys in sorted order.
func (c *Resolved) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Resolve merges every layer.
// Priority (highest to lowest): flags > explicit files > local > global.
func (r *Resolver) Resolve() (*Resolved, error) {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.applyOptional(cfg, r.globalPath, SourceGlobal)
	r.applyOptional(cfg, r.localPath, SourceLocal)

	for _, path := range r.config.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read options file: %w", err)
		}
		r.applyYAML(cfg, path, data, SourceFile)
	}

	flags, err := ParseAssignments(r.config.Flags)
	if err != nil {
		return nil, err
	}
	for key, value := range flags {
		if value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceFlag
		}
	}

	return cfg, nil
}

// applyOptional applies a file that may legitimately not exist.
func (r *Resolver) applyOptional(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.warn("could not read options file", "path", path, "error", err)
		}
		return
	}

	r.applyYAML(cfg, path, data, source)
}

func (r *Resolver) applyYAML(cfg *Resolved, path string, data []byte, source Source) {
	var parsed map[string]yaml.Node
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn("could not parse options file", "path", path, "error", err)
		return
	}

	for key, node := range parsed {
		value, ok := scalarValue(&node)
		if !ok {
			r.warn("ignoring non-scalar option", "path", path, "key", key)
			continue
		}
		if value != "" {
			cfg.values[key] = value
			cfg.sources[key] = source
		}
	}
}

// ParseAssignments parses key=value pairs. The value may contain '='.
// Later assignments of the same key win.
func ParseAssignments(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAssignment, pair)
		}
		result[key] = value
	}
	return result, nil
}

// GitRoot returns the detected git root directory.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path to the global options file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local options file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// scalarValue returns a scalar exactly as written in the file, so 1.0 stays
// "1.0" and 0x1F stays "0x1F". Null is the empty string.
func scalarValue(node *yaml.Node) (string, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return "", false
	}
	if node.ShortTag() == "!!null" {
		return "", true
	}
	return node.Value, true
}

// findGitRoot finds the git root by looking for a .git entry.
func findGitRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		// .git is a file in worktrees and submodules.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
