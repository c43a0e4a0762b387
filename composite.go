package buildinput

import (
	"context"
	"strings"
)

// GithubRepo returns the "owner/repo" slug of the repository being built.
//
// Tried in order: GITHUB_REPOSITORY, GITHUB_REPO, the origin remote of the
// local repository, then "game-ci/unity-builder".
func (in *Input) GithubRepo(ctx context.Context) string {
	if v := in.first(KeyGithubRepository, KeyGithubRepo); v != "" {
		return v
	}
	if v := in.repoRemote(ctx); v != "" {
		return v
	}
	return DefaultGithubRepo
}

// Branch returns the branch being built.
//
// The local repository is asked first. Then GITHUB_REF is used with the first
// "refs/" and then the first "head/" removed, then the branch input, then "main".
func (in *Input) Branch(ctx context.Context) string {
	if v := in.repoBranch(ctx); v != "" {
		return v
	}
	if ref := in.Get(KeyGithubRef); ref != "" {
		ref = strings.Replace(ref, "refs/", "", 1)
		return strings.Replace(ref, "head/", "", 1)
	}
	return in.getOr(KeyBranch, DefaultBranch)
}

// GitSha returns the commit being built. ok is false when neither the
// inputs nor the local repository know it; there is no default.
func (in *Input) GitSha() (sha string, ok bool) {
	if v := in.first(KeyGithubSha, KeyGitSHA); v != "" {
		return v, true
	}
	if v := in.repoSha(); v != "" {
		return v, true
	}
	return "", false
}

// GitPrivateToken returns the token used to fetch private dependencies,
// falling back to GithubToken.
func (in *Input) GitPrivateToken(ctx context.Context) string {
	if v := in.Get(KeyGitPrivateToken); v != "" {
		return v
	}
	return in.GithubToken(ctx)
}

// GithubToken returns the GitHub token from the inputs, else from the local
// GitHub CLI login, else "".
func (in *Input) GithubToken(ctx context.Context) string {
	if v := in.Get(KeyGithubToken); v != "" {
		return v
	}
	if in.tokens == nil {
		return ""
	}
	token, err := in.tokens.Token(ctx)
	if err != nil {
		in.logger.Debug("github cli token lookup failed", "error", err)
		return ""
	}
	return strings.TrimSpace(token)
}

// CloudRunnerTests reports whether cloud runner test mode (and its debug
// logging) is on. Either spelling of the key is accepted; like every other
// boolean input only the literal "true" turns it on.
func (in *Input) CloudRunnerTests() bool {
	return isTrue(in.first(KeyCloudRunnerTests, KeyCloudRunnerTestsAlt))
}

func (in *Input) repoBranch(ctx context.Context) string {
	if in.repo == nil {
		return ""
	}
	branch, err := in.repo.Branch(ctx)
	if err != nil {
		in.logger.Debug("repository branch lookup failed", "error", err)
		return ""
	}
	return branch
}

func (in *Input) repoRemote(ctx context.Context) string {
	if in.repo == nil {
		return ""
	}
	remote, err := in.repo.Remote(ctx)
	if err != nil {
		in.logger.Debug("repository remote lookup failed", "error", err)
		return ""
	}
	return remote
}

func (in *Input) repoSha() string {
	if in.repo == nil {
		return ""
	}
	sha, err := in.repo.Sha()
	if err != nil {
		in.logger.Debug("repository sha lookup failed", "error", err)
		return ""
	}
	return sha
}
