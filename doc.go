// Package buildinput resolves the named inputs of a Unity build from the
// places a CI job can supply them.
//
// Every key is looked up in a fixed order and the first non-empty value wins:
//  1. CI platform inputs (GitHub Actions "with:"), when enabled
//  2. The explicit option map (command-line flags and option files)
//  3. The environment variable named exactly like the key
//  4. The environment variable named ToEnvVarFormat(key)
//
// An empty value is never a value: it is skipped like an unset one.
//
// # Basic Usage
//
//	in := buildinput.New(buildinput.Sources{
//	    CIInput:        actions.Lookup,
//	    CIInputEnabled: actions.IsGitHubActions(),
//	    Options:        opts.All(),
//	},
//	    buildinput.WithRepoReader(git.NewRepoReader(".")),
//	    buildinput.WithTokenReader(auth.NewCLITokenReader()),
//	    buildinput.WithPlatformDefaults(platform.Defaults{}),
//	)
//
//	fmt.Println(in.TargetPlatform())      // "StandaloneWindows64" unless set
//	fmt.Println(in.Branch(ctx))           // local branch, GITHUB_REF, branch, "main"
//	sha, ok := in.GitSha()                // ok is false when nothing knows the commit
//
// # Fields
//
// Most fields are a single key with a literal default. A few layer extra
// sources on top: GithubRepo and Branch consult the local repository,
// GithubToken consults the GitHub CLI login, and ProjectPath looks for a
// Unity project on disk. Reader failures are logged at debug level and
// treated as "no value".
package buildinput
