package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sfx/audio/wavfile"
	"github.com/cwbudde/algo-sfx/measure/profile"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/synth"
	"github.com/spf13/cobra"
)

func newInspectCmd(o *rootOptions) *cobra.Command {
	var dump string

	cmd := &cobra.Command{
		Use:   "inspect <spec|wav>",
		Short: "Describe a spec or WAV file and measure its audio",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w := cmd.OutOrStdout()

			if strings.EqualFold(filepath.Ext(path), ".wav") {
				buf, err := wavfile.ReadFile(path)
				if err != nil {
					return err
				}

				return printProfile(w, buf)
			}

			spec, err := params.Load(path)
			if err != nil {
				return err
			}

			if dump != "" {
				format, err := params.ParseFormat(dump)
				if err != nil {
					return err
				}

				return params.Encode(w, spec, format)
			}

			cfg := synth.DefaultConfig()
			cfg.SampleRate = o.sampleRate

			p, err := synth.Build(spec, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(w, spec.String())
			fmt.Fprintf(w, "duration:     %.3f s (%d samples at %.0f Hz)\n", p.Duration(), p.Len(), o.sampleRate)
			fmt.Fprint(w, "stages:      ")

			for _, st := range p.Stages() {
				fmt.Fprintf(w, " %s", st)
			}

			fmt.Fprintln(w)

			ren, err := o.renderer(0)
			if err != nil {
				return err
			}

			buf := ren.Render(spec)
			if buf.Len() == 0 {
				fmt.Fprintln(w, "renders no samples")
				return nil
			}

			return printProfile(w, buf)
		},
	}

	cmd.Flags().StringVar(&dump, "dump", "", "Print the spec re-encoded as json or yaml instead")

	return cmd
}

func printProfile(w io.Writer, buf synth.Buffer) error {
	r, err := profile.Analyze(buf.Samples, buf.SampleRate)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, r.String())

	return err
}
