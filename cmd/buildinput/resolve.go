package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/buildinput"
)

func (a *app) resolveCmd() *cobra.Command {
	format := newChoiceFlag("yaml", "yaml", "json", "env")
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print every resolved build input",
		Long: `Resolve every build input and print the result.

Secrets (tokens, keystore contents and passwords) are masked unless
--show-secrets is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.input()
			if err != nil {
				return err
			}

			snap := in.Snapshot(cmd.Context())
			if !showSecrets {
				snap = snap.Redacted()
			}
			return writeSnapshot(cmd.OutOrStdout(), snap, format.String())
		},
	}

	cmd.Flags().Var(&format, "format", "output format: "+format.Choices())
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print secrets in clear text")
	return cmd
}

func writeSnapshot(w io.Writer, snap buildinput.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "env":
		return writeEnv(w, snap)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}
}

// writeEnv prints KEY=value lines, one per field, keyed by the environment
// variable name each input key maps to. Absent values print as KEY=.
func writeEnv(w io.Writer, snap buildinput.Snapshot) error {
	var doc yaml.Node
	if err := doc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		v := value.Value
		if value.Tag == "!!null" {
			v = ""
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", buildinput.ToEnvVarFormat(key.Value), shellQuote(v)); err != nil {
			return err
		}
	}
	return nil
}

// shellQuote single-quotes s when a POSIX shell would otherwise split or expand it.
func shellQuote(s string) string {
	if s == "" || !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
