package git

import (
	"context"
	"fmt"
	"path/filepath"
)

// Context runs read-only git queries against a repository.
type Context struct {
	repoPath string        // Path to the repository
	runner   CommandRunner // Command runner (defaults to ExecRunner)
}

// Option configures Context.
type Option func(*Context)

// WithRunner sets a custom command runner for git operations.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner CommandRunner) Option {
	return func(g *Context) {
		g.runner = runner
	}
}

// NewContext creates a git context for the repository at repoPath.
// It returns ErrNotGitRepo if the path is not inside a git work tree.
func NewContext(ctx context.Context, repoPath string, opts ...Option) (*Context, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	g := &Context{
		repoPath: absPath,
		runner:   NewExecRunner(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if _, err := g.runGit(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotGitRepo, absPath)
	}

	return g, nil
}

// CurrentBranch returns the current branch name.
// It returns ErrDetachedHead when HEAD is not on a branch.
func (g *Context) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := g.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", &Error{Op: "get current branch", Err: err}
	}
	if branch == "HEAD" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// HeadCommit returns the current HEAD commit SHA.
func (g *Context) HeadCommit(ctx context.Context) (string, error) {
	sha, err := g.runGit(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", &Error{Op: "get HEAD commit", Err: err}
	}
	return sha, nil
}

// GetRemoteURL returns the URL of the specified remote.
func (g *Context) GetRemoteURL(ctx context.Context, remote string) (string, error) {
	url, err := g.runGit(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", &Error{Op: "get remote URL", Err: err}
	}
	return url, nil
}

// status returns the working tree status in short format.
func (g *Context) status(ctx context.Context) (string, error) {
	status, err := g.runGit(ctx, "status", "--short")
	if err != nil {
		return "", &Error{Op: "status", Err: err}
	}
	return status, nil
}

// IsClean returns true if the working tree has no uncommitted changes.
func (g *Context) IsClean(ctx context.Context) (bool, error) {
	status, err := g.status(ctx)
	if err != nil {
		return false, err
	}
	return status == "", nil
}

// runGit executes a git command and returns stdout.
func (g *Context) runGit(ctx context.Context, args ...string) (string, error) {
	return g.runner.Run(ctx, g.repoPath, "git", args...)
}
