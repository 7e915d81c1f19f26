package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx/preset/luapreset"
	"github.com/cwbudde/algo-sfx/sfx/rng"
	"github.com/spf13/cobra"
)

func newGenerateCmd(o *rootOptions) *cobra.Command {
	var (
		seed      uint64
		out       string
		specOut   string
		script    string
		bitDepth  int
		normalize float64
	)

	cmd := &cobra.Command{
		Use:   "generate [category]",
		Short: "Sample a preset and render it to a WAV file",
		Long: "Sample a sound spec from a preset category (" + categoryNames() + ")\n" +
			"or from a Lua script, then render it.",
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if (script == "") == (len(args) == 0) {
				return fmt.Errorf("give either a category or --script")
			}

			r := rng.New(seedFlag(cmd, seed))

			var (
				spec params.SoundSpec
				name string
			)

			if script != "" {
				s, err := luapreset.LoadFile(script)
				if err != nil {
					return err
				}

				if spec, err = s.GenerateContext(cmd.Context(), r); err != nil {
					return err
				}

				name = strings.TrimSuffix(filepath.Base(script), filepath.Ext(script))
			} else {
				cat, err := preset.ParseCategory(args[0])
				if err != nil {
					return err
				}

				if spec, err = preset.Generate(cat, r); err != nil {
					return err
				}

				name = cat.String()
			}

			slog.Debug("generated", "spec", spec.String())

			if specOut != "" {
				if err := params.Save(specOut, spec); err != nil {
					return err
				}

				slog.Info("wrote spec", "path", specOut)
			}

			ren, err := o.renderer(normalize)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("%s-%016x.wav", name, spec.Seed)
			}

			return writeWAV(cmd, out, ren.Render(spec), bitDepth)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Preset RNG seed (default: derived from the clock)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output WAV path, - for stdout (default: <name>-<seed>.wav)")
	cmd.Flags().StringVar(&specOut, "spec-out", "", "Also save the spec (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&script, "script", "", "Lua preset script defining generate(rng)")
	addBitDepthFlag(cmd, &bitDepth)
	addNormalizeFlag(cmd, &normalize)

	return cmd
}
