package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) getCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "get <key>...",
		Short: "Print the raw value of input keys",
		Long: `Look up input keys through the resolution chain and print one value per line.

Keys are raw input names such as "unityVersion" or "GITHUB_REF". No field
defaults apply. With --explain, each line also names the source that
supplied the value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !explain {
				for _, key := range args {
					if _, err := fmt.Fprintln(out, in.Get(key)); err != nil {
						return err
					}
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, r := range in.Explain(args...) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Value, r.Source)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "show which source supplied each value")
	return cmd
}
