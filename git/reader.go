package git

import (
	"context"
	"errors"
)

// RepoReader answers the repository questions build inputs fall back on:
// current branch, origin slug and HEAD commit. Each call opens the
// repository afresh, so a reader can be built before the checkout exists.
type RepoReader struct {
	dir    string
	remote string
	runner CommandRunner
}

// ReaderOption configures a RepoReader.
type ReaderOption func(*RepoReader)

// WithRemote sets the remote whose URL Remote parses. Default is "origin".
func WithRemote(name string) ReaderOption {
	return func(r *RepoReader) {
		r.remote = name
	}
}

// WithReaderRunner sets the command runner used for git commands.
func WithReaderRunner(runner CommandRunner) ReaderOption {
	return func(r *RepoReader) {
		r.runner = runner
	}
}

// NewRepoReader creates a reader for the repository containing dir.
func NewRepoReader(dir string, opts ...ReaderOption) *RepoReader {
	r := &RepoReader{
		dir:    dir,
		remote: "origin",
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RepoReader) open(ctx context.Context) (*Context, error) {
	return NewContext(ctx, r.dir, WithRunner(r.runner))
}

// Branch returns the checked-out branch, or "" when HEAD is detached.
func (r *RepoReader) Branch(ctx context.Context) (string, error) {
	g, err := r.open(ctx)
	if err != nil {
		return "", err
	}
	branch, err := g.CurrentBranch(ctx)
	if errors.Is(err, ErrDetachedHead) {
		return "", nil
	}
	return branch, err
}

// Remote returns the "owner/repo" slug of the configured remote.
func (r *RepoReader) Remote(ctx context.Context) (string, error) {
	g, err := r.open(ctx)
	if err != nil {
		return "", err
	}
	url, err := g.GetRemoteURL(ctx, r.remote)
	if err != nil {
		return "", err
	}
	return RepoSlug(url)
}

// Sha returns the HEAD commit hash.
func (r *RepoReader) Sha() (string, error) {
	ctx := context.Background()
	g, err := r.open(ctx)
	if err != nil {
		return "", err
	}
	return g.HeadCommit(ctx)
}

// IsClean reports whether the working tree has no uncommitted changes.
func (r *RepoReader) IsClean(ctx context.Context) (bool, error) {
	g, err := r.open(ctx)
	if err != nil {
		return false, err
	}
	return g.IsClean(ctx)
}
