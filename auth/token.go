package auth

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/randalmurphal/buildinput/git"
)

// CLITokenReader reads the token of the GitHub CLI's stored login
// with "gh auth token".
type CLITokenReader struct {
	runner   git.CommandRunner
	hostname string
}

// TokenReaderOption configures a CLITokenReader.
type TokenReaderOption func(*CLITokenReader)

// WithTokenRunner sets the command runner used to invoke gh.
func WithTokenRunner(runner git.CommandRunner) TokenReaderOption {
	return func(r *CLITokenReader) {
		r.runner = runner
	}
}

// WithHostname selects the GitHub host whose login is read.
// Defaults to gh's own default host.
func WithHostname(hostname string) TokenReaderOption {
	return func(r *CLITokenReader) {
		r.hostname = hostname
	}
}

// NewCLITokenReader creates a token reader that runs gh.
func NewCLITokenReader(opts ...TokenReaderOption) *CLITokenReader {
	r := &CLITokenReader{runner: git.NewExecRunner()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Token returns the stored token, trimmed.
// Returns ErrCLINotFound if gh is not installed, ErrNotAuthenticated if it
// has no login for the host.
func (r *CLITokenReader) Token(ctx context.Context) (string, error) {
	args := []string{"auth", "token"}
	if r.hostname != "" {
		args = append(args, "--hostname", r.hostname)
	}

	out, err := r.runner.Run(ctx, "", "gh", args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrCLINotFound
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	token := strings.TrimSpace(out)
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}
