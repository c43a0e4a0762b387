// Package auth reads and checks the GitHub credentials a build uses.
//
// # CLI Login
//
// CLITokenReader supplies the token of a local "gh" login. It is the last
// fallback for the githubToken input:
//
//	in := buildinput.New(sources,
//	    buildinput.WithTokenReader(auth.NewCLITokenReader()),
//	)
//
// # Verification
//
// Verifier asks the GitHub API who a token belongs to and whether it can
// see a repository:
//
//	v := auth.NewVerifier()
//	id, err := v.Verify(ctx, token)
//	if errors.Is(err, auth.ErrInvalidToken) {
//	    // token revoked or mistyped
//	}
//	repo, err := v.RepoAccess(ctx, token, "acme/game")
package auth
