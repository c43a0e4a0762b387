// Package git reads repository state for build inputs: the checked-out
// branch, the origin remote and the HEAD commit.
//
// Core types:
//   - Context: read-only git queries against one repository
//   - RepoReader: the branch/remote/sha reader used by buildinput
//   - CommandRunner: interface for executing commands (with MockRunner for testing)
//
// Example usage:
//
//	reader := git.NewRepoReader(".")
//	branch, err := reader.Branch(ctx)   // "" when HEAD is detached
//	slug, err := reader.Remote(ctx)     // "owner/repo" of origin
//	sha, err := reader.Sha()
package git
