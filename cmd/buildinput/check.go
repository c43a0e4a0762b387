package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/buildinput"
	"github.com/randalmurphal/buildinput/auth/ssh"
	"github.com/randalmurphal/buildinput/platform"
)

var errCheckFailed = errors.New("check failed")

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check credentials and repository state before a build",
		Long: `Check that the resolved inputs can drive a build:

  targetPlatform  is a known build target, with a keystore when one is named
  githubToken     is accepted by GitHub and can read the repository
  sshAgent        is reachable and holds keys (skipped when no agent is configured)
  working tree    is clean, unless allowDirtyBuild is "true"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.input()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c := &checker{out: cmd.OutOrStdout()}
			a.checkTarget(c, in)
			a.checkToken(ctx, c, in)
			a.checkSSHAgent(c, in)
			a.checkWorkingTree(ctx, c, in)

			if c.failed {
				return errCheckFailed
			}
			return nil
		},
	}
}

// checker prints one status line per check.
type checker struct {
	out    io.Writer
	failed bool
}

func (c *checker) ok(name, format string, args ...any) {
	fmt.Fprintf(c.out, "ok    %-14s %s\n", name, fmt.Sprintf(format, args...))
}

func (c *checker) skip(name, format string, args ...any) {
	fmt.Fprintf(c.out, "skip  %-14s %s\n", name, fmt.Sprintf(format, args...))
}

func (c *checker) fail(name, format string, args ...any) {
	c.failed = true
	fmt.Fprintf(c.out, "FAIL  %-14s %s\n", name, fmt.Sprintf(format, args...))
}

func (a *app) checkTarget(c *checker, in *buildinput.Input) {
	target := in.TargetPlatform()
	if !platform.Valid(target) {
		c.fail("targetPlatform", "unknown build target %q, want one of %s", target, strings.Join(platform.All(), ", "))
		return
	}
	if platform.IsAndroid(target) && in.AndroidKeystoreName() != "" && in.AndroidKeystoreBase64() == "" {
		c.fail("targetPlatform", "%s: androidKeystoreName is set but androidKeystoreBase64 is empty", target)
		return
	}
	c.ok("targetPlatform", "%s", target)
}

func (a *app) checkToken(ctx context.Context, c *checker, in *buildinput.Input) {
	token := in.GithubToken(ctx)
	if token == "" {
		c.skip("githubToken", "not set and no gh login found")
		return
	}

	id, err := a.verifier.Verify(ctx, token)
	if err != nil {
		c.fail("githubToken", "%v", err)
		return
	}
	scopes := "fine-grained"
	if len(id.Scopes) > 0 {
		scopes = strings.Join(id.Scopes, ",")
	}
	c.ok("githubToken", "authenticated as %s (scopes: %s)", id.Login, scopes)

	slug := in.GithubRepo(ctx)
	repo, err := a.verifier.RepoAccess(ctx, token, slug)
	if err != nil {
		c.fail("githubRepo", "%s: %v", slug, err)
		return
	}
	visibility := "public"
	if repo.Private {
		visibility = "private"
	}
	c.ok("githubRepo", "%s (%s, default branch %s)", repo.FullName, visibility, repo.DefaultBranch)
}

func (a *app) checkSSHAgent(c *checker, in *buildinput.Input) {
	socket := in.SSHAgent()

	conn, err := ssh.DialAgent(socket)
	if errors.Is(err, ssh.ErrNoSSHAgent) {
		c.skip("sshAgent", "no agent configured")
		return
	}
	if err != nil {
		c.fail("sshAgent", "%v", err)
		return
	}
	defer conn.Close()

	keys, err := ssh.ListAgentKeys(conn)
	if err != nil {
		c.fail("sshAgent", "%v", err)
		return
	}
	if len(keys) == 0 {
		c.fail("sshAgent", "%v", ssh.ErrNoSSHKeys)
		return
	}
	for _, key := range keys {
		c.ok("sshAgent", "%s %s %s", key.KeyType, key.Fingerprint, key.Comment)
	}
}

func (a *app) checkWorkingTree(ctx context.Context, c *checker, in *buildinput.Input) {
	clean, err := a.repo.IsClean(ctx)
	if err != nil {
		c.skip("working tree", "%v", err)
		return
	}

	switch {
	case clean:
		c.ok("working tree", "clean")
	case in.AllowDirtyBuild():
		c.ok("working tree", "dirty, allowed by allowDirtyBuild")
	default:
		c.fail("working tree", "uncommitted changes; set allowDirtyBuild to \"true\" to build anyway")
	}
}
