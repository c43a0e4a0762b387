package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolver_Empty(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{}, "", "")

	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(cfg.All()) != 0 {
		t.Errorf("All() = %v, want empty", cfg.All())
	}
	if got := cfg.Source("region"); got != "" {
		t.Errorf("Source(region) = %q, want empty", got)
	}
}

func TestResolver_Layers(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, filepath.Join(dir, "global.yaml"),
		"region: us-east-1\ntargetPlatform: WebGL\nbuildName: global\nbuildsPath: out\n")
	local := writeFile(t, filepath.Join(dir, "local.yaml"),
		"targetPlatform: Android\nbuildName: local\nbuildMethod: Builder.Build\n")
	first := writeFile(t, filepath.Join(dir, "first.yaml"), "buildName: first\nversion: 1.0.0\n")
	second := writeFile(t, filepath.Join(dir, "second.yaml"), "version: 2.0.0\n")

	resolver := NewResolverWithPaths(ResolverConfig{
		Files: []string{first, second},
		Flags: []string{"buildsPath=artifacts"},
	}, global, local)

	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	tests := []struct {
		key        string
		wantValue  string
		wantSource Source
	}{
		{"region", "us-east-1", SourceGlobal},
		{"targetPlatform", "Android", SourceLocal},
		{"buildMethod", "Builder.Build", SourceLocal},
		{"buildName", "first", SourceFile},
		{"version", "2.0.0", SourceFile},
		{"buildsPath", "artifacts", SourceFlag},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, source := cfg.GetWithSource(tt.key)
			if value != tt.wantValue {
				t.Errorf("value = %q, want %q", value, tt.wantValue)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestResolver_ScalarsKeepWrittenText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "opts.yaml"), `androidAppBundle: true
allowDirtyBuild: false
cloudRunnerCpu: 1.0
unityVersion: 2020.10
androidVersionCode: 1e3
buildName: 0x1F
customParameters: '-quit'
kubeVolumeSize: 5Gi
kubeVolume: ~
kubeConfig:
`)

	cfg, err := NewResolverWithPaths(ResolverConfig{Files: []string{path}}, "", "").Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"androidAppBundle", "true"},
		{"allowDirtyBuild", "false"},
		{"cloudRunnerCpu", "1.0"},
		{"unityVersion", "2020.10"},
		{"androidVersionCode", "1e3"},
		{"buildName", "0x1F"},
		{"customParameters", "-quit"},
		{"kubeVolumeSize", "5Gi"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.Get(tt.key); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	for _, key := range []string{"kubeVolume", "kubeConfig"} {
		if _, ok := cfg.All()[key]; ok {
			t.Errorf("null %s should not be set", key)
		}
	}
}

func TestResolver_AliasedScalar(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "opts.yaml"), "buildName: &name Nightly\nbuildMethod: *name\n")

	cfg, err := NewResolverWithPaths(ResolverConfig{Files: []string{path}}, "", "").Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got := cfg.Get("buildMethod"); got != "Nightly" {
		t.Errorf("buildMethod = %q, want Nightly", got)
	}
}

func TestResolver_EmptyValuesSkipped(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, filepath.Join(dir, "global.yaml"), "region: us-east-1\n")
	local := writeFile(t, filepath.Join(dir, "local.yaml"), "region: \"\"\n")

	cfg, err := NewResolverWithPaths(ResolverConfig{
		Flags: []string{"region="},
	}, global, local).Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if value, source := cfg.GetWithSource("region"); value != "us-east-1" || source != SourceGlobal {
		t.Errorf("region = (%q, %q), want (us-east-1, global)", value, source)
	}
}

func TestResolver_InvalidYAMLWarns(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, filepath.Join(dir, "global.yaml"), "region: [unclosed\n")
	local := writeFile(t, filepath.Join(dir, "local.yaml"), "customJob:\n  nested: map\nregion: eu-west-1\n")

	resolver := NewResolverWithPaths(ResolverConfig{}, global, local)
	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(resolver.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 entries", resolver.Warnings)
	}
	if got := cfg.Get("region"); got != "eu-west-1" {
		t.Errorf("region = %q, want %q", got, "eu-west-1")
	}
	if got := cfg.Get("customJob"); got != "" {
		t.Errorf("customJob = %q, want empty", got)
	}
}

func TestResolver_MissingOptionalFiles(t *testing.T) {
	dir := t.TempDir()
	resolver := NewResolverWithPaths(ResolverConfig{},
		filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "also-nope.yaml"))

	if _, err := resolver.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolver.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", resolver.Warnings)
	}
}

func TestResolver_MissingExplicitFile(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{
		Files: []string{filepath.Join(t.TempDir(), "missing.yaml")},
	}, "", "")

	_, err := resolver.Resolve()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Resolve() error = %v, want ErrNotExist", err)
	}
}

func TestResolver_InvalidFlag(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{Flags: []string{"noequals"}}, "", "")

	_, err := resolver.Resolve()
	if !errors.Is(err, ErrInvalidAssignment) {
		t.Errorf("Resolve() error = %v, want ErrInvalidAssignment", err)
	}
}

func TestNewResolver_FindsFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "unity-builder", "options.yaml"), "region: ap-south-1\n")

	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(repo, ".unity-builder.yaml"), "targetPlatform: iOS\n")

	resolver := NewResolver(ResolverConfig{
		GitRootFinder: func(string) (string, error) { return repo, nil },
	})

	if got := resolver.GitRoot(); got != repo {
		t.Errorf("GitRoot() = %q, want %q", got, repo)
	}
	if got := resolver.LocalPath(); got != filepath.Join(repo, ".unity-builder.yaml") {
		t.Errorf("LocalPath() = %q", got)
	}
	if got := resolver.GlobalPath(); got != filepath.Join(home, ".config", "unity-builder", "options.yaml") {
		t.Errorf("GlobalPath() = %q", got)
	}

	cfg, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got := cfg.Get("region"); got != "ap-south-1" {
		t.Errorf("region = %q", got)
	}
	if got := cfg.Get("targetPlatform"); got != "iOS" {
		t.Errorf("targetPlatform = %q", got)
	}
}

func TestFindGitRoot(t *testing.T) {
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(repo, "Assets", "Scripts")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := findGitRoot(nested)
	if err != nil {
		t.Fatalf("findGitRoot() error = %v", err)
	}
	if root != repo {
		t.Errorf("findGitRoot() = %q, want %q", root, repo)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{
		"targetPlatform=Android",
		"customParameters=-define=A -quit",
		"buildName=first",
		"buildName=second",
		"region=",
	})
	if err != nil {
		t.Fatalf("ParseAssignments() error = %v", err)
	}

	want := map[string]string{
		"targetPlatform":   "Android",
		"customParameters": "-define=A -quit",
		"buildName":        "second",
		"region":           "",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}

	for _, bad := range []string{"", "=value", "novalue"} {
		if _, err := ParseAssignments([]string{bad}); !errors.Is(err, ErrInvalidAssignment) {
			t.Errorf("ParseAssignments(%q) error = %v, want ErrInvalidAssignment", bad, err)
		}
	}
}

func TestResolved_Keys(t *testing.T) {
	cfg, err := NewResolverWithPaths(ResolverConfig{
		Flags: []string{"region=x", "buildName=y", "targetPlatform=z"},
	}, "", "").Resolve()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"buildName", "region", "targetPlatform"}
	if got := cfg.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
