package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx/mutate"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
	"github.com/spf13/cobra"
)

func newMutateCmd(o *rootOptions) *cobra.Command {
	var (
		seed      uint64
		count     int
		outDir    string
		bitDepth  int
		normalize float64
		jobs      int
		noWAV     bool
	)

	cmd := &cobra.Command{
		Use:   "mutate <spec>",
		Short: "Write randomly perturbed variations of a spec",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be >= 1: %d", count)
			}

			src := args[0]

			base, err := params.Load(src)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			variants := mutate.MutateN(base, rng.New(seedFlag(cmd, seed)), count)

			stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			paths := make([]string, len(variants))

			for i, v := range variants {
				paths[i] = filepath.Join(outDir, fmt.Sprintf("%s-%02d%s", stem, i+1, filepath.Ext(src)))
				if err := params.Save(paths[i], v); err != nil {
					return err
				}

				slog.Debug("mutated", "path", paths[i], "spec", v.String())
			}

			slog.Info("wrote variations", "count", len(variants), "dir", outDir)

			if noWAV {
				return nil
			}

			ren, err := o.renderer(normalize)
			if err != nil {
				return err
			}

			bufs, err := ren.RenderAll(cmd.Context(), variants, jobs)
			if err != nil {
				return err
			}

			for i, buf := range bufs {
				if err := writeWAV(cmd, replaceExt(paths[i], ".wav"), buf, bitDepth); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Mutation RNG seed (default: derived from the clock)")
	cmd.Flags().IntVarP(&count, "count", "n", 8, "Number of variations")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for the variations")
	cmd.Flags().BoolVar(&noWAV, "no-wav", false, "Only write specs, skip rendering")
	addBitDepthFlag(cmd, &bitDepth)
	addNormalizeFlag(cmd, &normalize)
	addJobsFlag(cmd, &jobs)

	return cmd
}
