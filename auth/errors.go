package auth

import (
	"errors"
	"fmt"
)

// Authentication errors.
var (
	// ErrCLINotFound indicates the GitHub CLI is not installed.
	ErrCLINotFound = errors.New("gh CLI not found")

	// ErrNotAuthenticated indicates the GitHub CLI has no stored login.
	ErrNotAuthenticated = errors.New("gh CLI not authenticated")

	// ErrNoToken indicates no token was supplied for verification.
	ErrNoToken = errors.New("no token")

	// ErrInvalidToken indicates GitHub rejected the token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRepoNotFound indicates the repository does not exist or the token cannot see it.
	ErrRepoNotFound = errors.New("repository not found or not accessible")

	// ErrInvalidRepo indicates a repository name that is not "owner/repo".
	ErrInvalidRepo = errors.New("invalid repository, want owner/repo")
)

// Error wraps a failed GitHub operation with context.
type Error struct {
	Op     string // Operation that failed (e.g., "get user", "get repository")
	Status int    // HTTP status, 0 if no response
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("github %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("github %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
