package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/randalmurphal/buildinput/config"
)

// cliError wraps an error with user-friendly context and a suggestion.
type cliError struct {
	Err        error
	Message    string
	Suggestion string
}

func (e *cliError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

func (e *cliError) Unwrap() error {
	return e.Err
}

// explain adds guidance to errors a user can fix from the command line.
// Other errors are returned unchanged.
func explain(err error) error {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, config.ErrInvalidAssignment):
		return &cliError{
			Err:        err,
			Message:    err.Error(),
			Suggestion: "Pass options as --set key=value, e.g. --set targetPlatform=Android.",
		}
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		return &cliError{
			Err:        err,
			Message:    "options file not found: " + pathErr.Path,
			Suggestion: "Check the --options-file path. It is resolved from the current directory.",
		}
	case errors.Is(err, errCheckFailed):
		return &cliError{
			Err:     err,
			Message: "one or more checks failed",
		}
	}
	return err
}
