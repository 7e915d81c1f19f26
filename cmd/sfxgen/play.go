package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/cwbudde/algo-sfx/audio/playback"
	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx/rng"
	"github.com/spf13/cobra"
)

func newPlayCmd(o *rootOptions) *cobra.Command {
	var (
		seed      uint64
		repeat    int
		normalize float64
	)

	cmd := &cobra.Command{
		Use:   "play <spec|category>",
		Short: "Play a spec file or a freshly sampled preset",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be >= 1: %d", repeat)
			}

			ren, err := o.renderer(normalize)
			if err != nil {
				return err
			}

			next, err := specSource(cmd, args[0], seed)
			if err != nil {
				return err
			}

			player, err := playback.NewPlayer(int(math.Round(o.sampleRate)))
			if err != nil {
				return err
			}
			defer player.Close()

			for i := 0; i < repeat; i++ {
				spec, err := next()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), spec.String())

				if err := player.Play(cmd.Context(), ren.Render(spec)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Preset RNG seed (default: derived from the clock)")
	cmd.Flags().IntVarP(&repeat, "repeat", "r", 1, "Play this many sounds; categories draw a new spec each time")
	addNormalizeFlag(cmd, &normalize)

	return cmd
}

// specSource returns a generator for arg: an existing spec file always
// yields the same spec, a category name samples a new one per call.
func specSource(cmd *cobra.Command, arg string, seed uint64) (func() (params.SoundSpec, error), error) {
	if _, err := os.Stat(arg); err == nil {
		spec, err := params.Load(arg)
		if err != nil {
			return nil, err
		}

		return func() (params.SoundSpec, error) { return spec, nil }, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cat, err := preset.ParseCategory(arg)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a spec file nor a category: %w", arg, err)
	}

	r := rng.New(seedFlag(cmd, seed))
	slog.Debug("playing preset", "category", cat)

	return func() (params.SoundSpec, error) { return preset.Generate(cat, r) }, nil
}
