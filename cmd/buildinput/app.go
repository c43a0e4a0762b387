package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/buildinput"
	"github.com/randalmurphal/buildinput/actions"
	"github.com/randalmurphal/buildinput/auth"
	"github.com/randalmurphal/buildinput/config"
	"github.com/randalmurphal/buildinput/git"
	"github.com/randalmurphal/buildinput/platform"
)

// app holds the flags and collaborators shared by every command.
type app struct {
	set         []string
	optionFiles []string
	ciInput     bool
	logLevel    levelFlag
	logFormat   choiceFlag

	repo     *git.RepoReader
	tokens   buildinput.TokenReader
	verifier *auth.Verifier
	logger   *slog.Logger
}

func newApp() *app {
	return &app{
		logLevel:  levelFlag(slog.LevelWarn),
		logFormat: newChoiceFlag("text", "text", "json"),
		repo:      git.NewRepoReader("."),
		tokens:    auth.NewCLITokenReader(),
		verifier:  auth.NewVerifier(),
		logger:    slog.Default(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Version: version,
		Use:     "buildinput",
		Short:   "Resolve Unity build inputs",
		Long: `buildinput resolves the inputs of a Unity build the way the build action
sees them: GitHub Actions inputs, then options, then environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = setupLogging(cmd.ErrOrStderr(), a.logLevel.Level(), a.logFormat.String())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVar(&a.set, "set", nil, "set an option as key=value (repeatable)")
	flags.StringArrayVar(&a.optionFiles, "options-file", nil, "read options from a YAML file (repeatable, later files win)")
	flags.BoolVar(&a.ciInput, "ci-input", actions.IsGitHubActions(), "read GitHub Actions inputs (default: true inside GitHub Actions)")
	flags.Var(&a.logLevel, "log-level", "log level: debug, info, warn, error")
	flags.Var(&a.logFormat, "log-format", "log format: "+a.logFormat.Choices())

	cmd.AddCommand(a.resolveCmd(), a.getCmd(), a.checkCmd())
	return cmd
}

// input builds the resolver from the current flags.
func (a *app) input() (*buildinput.Input, error) {
	resolver := config.NewResolver(config.ResolverConfig{
		Files:  a.optionFiles,
		Flags:  a.set,
		Logger: a.logger,
	})

	opts, err := resolver.Resolve()
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	a.logger.Debug("options loaded",
		"global", resolver.GlobalPath(),
		"local", resolver.LocalPath(),
		"keys", opts.Keys(),
	)

	return buildinput.New(buildinput.Sources{
		CIInput:        actions.Lookup,
		CIInputEnabled: a.ciInput,
		Options:        opts.All(),
	},
		buildinput.WithRepoReader(a.repo),
		buildinput.WithTokenReader(a.tokens),
		buildinput.WithPlatformDefaults(platform.Defaults{}),
		buildinput.WithLogger(a.logger),
	), nil
}
