package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/spf13/cobra"
)

func newRenderCmd(o *rootOptions) *cobra.Command {
	var (
		out       string
		bitDepth  int
		normalize float64
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "render <spec> [<spec> ...]",
		Short: "Render spec files to WAV files next to them",
		Args:  cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" && len(args) > 1 {
				return fmt.Errorf("--out needs exactly one spec, got %d", len(args))
			}

			specs := make([]params.SoundSpec, len(args))
			for i, path := range args {
				s, err := params.Load(path)
				if err != nil {
					return err
				}

				specs[i] = s
			}

			ren, err := o.renderer(normalize)
			if err != nil {
				return err
			}

			bufs, err := ren.RenderAll(cmd.Context(), specs, jobs)
			if err != nil {
				return err
			}

			for i, path := range args {
				dst := out
				if dst == "" {
					dst = replaceExt(path, ".wav")
				}

				if bufs[i].Len() == 0 {
					slog.Warn("spec renders no samples", "spec", path)
				}

				if err := writeWAV(cmd, dst, bufs[i], bitDepth); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output WAV path for a single spec, - for stdout")
	addBitDepthFlag(cmd, &bitDepth)
	addNormalizeFlag(cmd, &normalize)
	addJobsFlag(cmd, &jobs)

	return cmd
}
