// Package actions reads GitHub Actions step inputs.
//
// The runner exposes each "with:" input as an environment variable named
// INPUT_<NAME>, where NAME is the input name uppercased with spaces replaced
// by underscores. Input names are otherwise passed through unchanged, so
// the key "unityVersion" becomes INPUT_UNITYVERSION.
package actions

import (
	"os"
	"strings"
)

// Getenv looks up an environment variable. Tests replace it.
type Getenv func(key string) (string, bool)

// Reader reads step inputs and runner state from an environment.
type Reader struct {
	getenv Getenv
}

// NewReader creates a Reader over getenv. If getenv is nil, os.LookupEnv is used.
func NewReader(getenv Getenv) *Reader {
	if getenv == nil {
		getenv = os.LookupEnv
	}
	return &Reader{getenv: getenv}
}

// EnvName returns the environment variable the runner uses for input name.
func EnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Lookup returns the trimmed value of input name and whether it was set.
func (r *Reader) Lookup(name string) (string, bool) {
	v, ok := r.getenv(EnvName(name))
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// IsGitHubActions reports whether the process runs inside a GitHub Actions job.
func (r *Reader) IsGitHubActions() bool {
	v, _ := r.getenv("GITHUB_ACTIONS")
	return v == "true"
}

var std = NewReader(nil)

// Lookup reads input name from the process environment.
// It satisfies buildinput.LookupFunc.
func Lookup(name string) (string, bool) {
	return std.Lookup(name)
}

// IsGitHubActions reports whether the process runs inside a GitHub Actions job.
func IsGitHubActions() bool {
	return std.IsGitHubActions()
}
