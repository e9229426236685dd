package main

import (
	"context"
	"fmt"
	"image/gif"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/willbeason/folding/pkg/orbit"
	"github.com/willbeason/folding/pkg/render"
)

const (
	// MaxFrames bounds how many frames a single animation renders.
	MaxFrames = 10_000
	// MaxOrbitIterations bounds the backdrop orbit.
	MaxOrbitIterations = 1_000_000

	flagMu              = "mu"
	flagNu              = "nu"
	flagIterations      = "iterations"
	flagDuration        = "duration"
	flagPlotSize        = "plot-size"
	flagPointSize       = "point-size"
	flagSize            = "size"
	flagOrbit           = "orbit"
	flagOrbitIterations = "orbit-iterations"
	flagOrbitAlpha      = "orbit-alpha"
	flagOut             = "out"
	flagHTML            = "html"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the folding map one quadrilateral per frame",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	defaults := render.AnimationOptions()

	cmd.Flags().Float64(flagMu, 0.3, "μ parameter of the seed quadrilateral")
	cmd.Flags().Float64(flagNu, 0.4, "ν parameter of the seed quadrilateral")
	cmd.Flags().Int(flagIterations, 20, "number of folds to animate")
	cmd.Flags().Int(flagDuration, int(defaults.Interval/time.Millisecond), "frame duration in milliseconds")
	cmd.Flags().Float64(flagPlotSize, defaults.PlotSize, "half-width of the square view")
	cmd.Flags().Float64(flagPointSize, defaults.PointSize, "backdrop marker area in square points")
	cmd.Flags().Float64(flagSize, float64(defaults.Size/vg.Inch), "frame side length in inches")
	cmd.Flags().Bool(flagOrbit, false, "draw the orbit behind the animation")
	cmd.Flags().Int(flagOrbitIterations, 2000, "folds in the backdrop orbit")
	cmd.Flags().Float64(flagOrbitAlpha, defaults.Alpha, "opacity of the backdrop orbit")
	cmd.Flags().String(flagOut, "folding.gif", "output GIF")
	cmd.Flags().String(flagHTML, "", "also write a page embedding the animation")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	mu, err := flags.GetFloat64(flagMu)
	if err != nil {
		return err
	}
	nu, err := flags.GetFloat64(flagNu)
	if err != nil {
		return err
	}
	iterations, err := flags.GetInt(flagIterations)
	if err != nil {
		return err
	}
	if iterations >= MaxFrames {
		return fmt.Errorf("--%s must be less than %d, got %d", flagIterations, MaxFrames, iterations)
	}

	opts := render.AnimationOptions()
	duration, err := flags.GetInt(flagDuration)
	if err != nil {
		return err
	}
	opts.Interval = time.Duration(duration) * time.Millisecond
	opts.PlotSize, err = flags.GetFloat64(flagPlotSize)
	if err != nil {
		return err
	}
	opts.PointSize, err = flags.GetFloat64(flagPointSize)
	if err != nil {
		return err
	}
	size, err := flags.GetFloat64(flagSize)
	if err != nil {
		return err
	}
	opts.Size = vg.Length(size) * vg.Inch
	opts.Alpha, err = flags.GetFloat64(flagOrbitAlpha)
	if err != nil {
		return err
	}
	err = opts.Validate()
	if err != nil {
		return err
	}

	var backdrop []complex128
	showOrbit, err := flags.GetBool(flagOrbit)
	if err != nil {
		return err
	}
	if showOrbit {
		orbitIterations, err := flags.GetInt(flagOrbitIterations)
		if err != nil {
			return err
		}
		if orbitIterations > MaxOrbitIterations {
			return fmt.Errorf("--%s must be at most %d, got %d", flagOrbitIterations, MaxOrbitIterations, orbitIterations)
		}

		backdrop, err = orbit.CollectOrbit(mu, nu, orbitIterations)
		if err != nil {
			return err
		}
		log.Printf("collected backdrop orbit of %d points", len(backdrop))
	}

	frames, err := orbit.CollectFrames(mu, nu, iterations)
	if err != nil {
		return err
	}

	log.Printf("rendering %d frames (μ=%v, ν=%v)", len(frames), mu, nu)
	start := time.Now()
	anim, err := render.Animate(cmd.Context(), frames, backdrop, opts)
	if err != nil {
		return err
	}
	log.Printf("rendered in %v", time.Since(start))

	out, err := flags.GetString(flagOut)
	if err != nil {
		return err
	}
	err = writeGIF(out, anim)
	if err != nil {
		return err
	}
	log.Printf("saved animation to %q", out)

	htmlOut, err := flags.GetString(flagHTML)
	if err != nil {
		return err
	}
	if htmlOut == "" {
		return nil
	}

	f, err := os.Create(htmlOut)
	if err != nil {
		return err
	}
	defer f.Close()

	err = render.WriteHTML(f, fmt.Sprintf("Folding (μ=%v, ν=%v)", mu, nu), anim)
	if err != nil {
		return err
	}
	log.Printf("saved page to %q", htmlOut)

	return f.Close()
}

func writeGIF(name string, anim *gif.GIF) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	err = gif.EncodeAll(f, anim)
	if err != nil {
		return err
	}

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
