package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfx/sfx/mutate"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/preset"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List preset categories and waveforms",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			if fields {
				fmt.Fprintln(w, "FIELD\tDEFAULT\tMIN\tMAX\tSTEP")
				for _, f := range mutate.Fields() {
					fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", f.Name, f.Default, f.Min, f.Max, f.Step)
				}

				return w.Flush()
			}

			fmt.Fprintln(w, "CATEGORY\tKIND")
			for _, c := range preset.Categories() {
				fmt.Fprintf(w, "%s\tpreset\n", c)
			}

			for _, wf := range params.AllWaveforms.Waveforms() {
				kind := "tonal"
				if wf.IsNoise() {
					kind = "noise"
				}

				fmt.Fprintf(w, "%s\twaveform (%s)\n", wf, kind)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&fields, "fields", false, "List the mutable spec fields instead")

	return cmd
}
