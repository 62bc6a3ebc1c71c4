package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuhin92/Image-Enhancement/internal/imgio"
	"github.com/tuhin92/Image-Enhancement/internal/lime"
)

type enhanceFlags struct {
	method     string
	gamma      float64
	sigma      float64
	radius     int
	eps        float64
	maxGain    float64
	denoise    int
	saturation float64
}

func (f *enhanceFlags) config() lime.Config {
	cfg := lime.DefaultConfig()
	cfg.Method = lime.Method(f.method)
	cfg.Gamma = f.gamma
	cfg.Sigma = f.sigma
	cfg.Radius = f.radius
	cfg.Eps = f.eps
	cfg.MaxGain = f.maxGain
	cfg.DenoiseStrength = f.denoise
	cfg.SaturationScale = f.saturation
	return cfg
}

func newRootCmd() *cobra.Command {
	flags := &enhanceFlags{}
	defaults := lime.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "lime <input> <output>",
		Short:         "Enhance a low-light image",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(cmd, args[0], args[1], flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.method, "method", string(defaults.Method),
		"illumination estimation method: max_rgb, luminosity or gray")
	fs.Float64Var(&flags.gamma, "gamma", defaults.Gamma, "gamma correction exponent")
	fs.Float64Var(&flags.sigma, "sigma", defaults.Sigma, "Gaussian blur sigma for illumination estimation, 0 disables")
	fs.IntVar(&flags.radius, "radius", defaults.Radius, "guided filter radius")
	fs.Float64Var(&flags.eps, "eps", defaults.Eps, "guided filter epsilon")
	fs.Float64Var(&flags.maxGain, "max-gain", defaults.MaxGain, "maximum brightening factor for any pixel")
	fs.IntVar(&flags.denoise, "denoise", defaults.DenoiseStrength, "denoising strength, 0 disables")
	fs.Float64Var(&flags.saturation, "saturation", defaults.SaturationScale, "saturation scale, 1.0 keeps chroma unchanged")

	cmd.AddCommand(newServeCmd())
	return cmd
}

func runEnhance(cmd *cobra.Command, inPath, outPath string, flags *enhanceFlags) error {
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input file %q does not exist", inPath)
	}

	log.Printf("reading image from %q", inPath)
	img, err := imgio.Open(inPath)
	if err != nil {
		return err
	}

	out, err := lime.Enhance(cmd.Context(), img, flags.config())
	if err != nil {
		return fmt.Errorf("enhance %q: %w", inPath, err)
	}

	if err := imgio.Save(out, outPath); err != nil {
		return err
	}
	log.Printf("enhanced image saved to %q", outPath)
	return nil
}
