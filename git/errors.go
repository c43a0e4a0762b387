package git

import "errors"

// Git reader errors.
var (
	// ErrNotGitRepo indicates the path is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrDetachedHead indicates HEAD does not point at a branch.
	ErrDetachedHead = errors.New("HEAD is detached")

	// ErrInvalidRemoteURL indicates a remote URL has no owner/repo path.
	ErrInvalidRemoteURL = errors.New("invalid remote URL")
)

// Error wraps a git command error with context.
type Error struct {
	Op     string // Operation that failed (e.g., "get current branch")
	Output string // Command output, if any
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
