package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/willbeason/folding/pkg/orbit"
	"github.com/willbeason/folding/pkg/render"
)

const (
	// MaxIterations bounds the memory an orbit may use.
	MaxIterations = 1_000_000

	flagMu         = "mu"
	flagNu         = "nu"
	flagIterations = "iterations"
	flagPlotSize   = "plot-size"
	flagPointSize  = "point-size"
	flagAlpha      = "alpha"
	flagSize       = "size"
	flagOut        = "out"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Plot every vertex visited by the folding map",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	defaults := render.OrbitOptions()

	cmd.Flags().Float64(flagMu, 0.3, "μ parameter of the seed quadrilateral")
	cmd.Flags().Float64(flagNu, 0.4, "ν parameter of the seed quadrilateral")
	cmd.Flags().Int(flagIterations, 2000, "number of folds to apply")
	cmd.Flags().Float64(flagPlotSize, defaults.PlotSize, "half-width of the square view")
	cmd.Flags().Float64(flagPointSize, defaults.PointSize, "marker area in square points")
	cmd.Flags().Float64(flagAlpha, defaults.Alpha, "opacity of orbit points")
	cmd.Flags().Float64(flagSize, float64(defaults.Size/vg.Inch), "image side length in inches")
	cmd.Flags().String(flagOut, "orbit.png", "output image; the extension picks the format")

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
	if iterations > MaxIterations {
		return fmt.Errorf("--%s must be at most %d, got %d", flagIterations, MaxIterations, iterations)
	}

	opts := render.OrbitOptions()
	opts.PlotSize, err = flags.GetFloat64(flagPlotSize)
	if err != nil {
		return err
	}
	opts.PointSize, err = flags.GetFloat64(flagPointSize)
	if err != nil {
		return err
	}
	opts.Alpha, err = flags.GetFloat64(flagAlpha)
	if err != nil {
		return err
	}
	size, err := flags.GetFloat64(flagSize)
	if err != nil {
		return err
	}
	opts.Size = vg.Length(size) * vg.Inch

	out, err := flags.GetString(flagOut)
	if err != nil {
		return err
	}

	log.Printf("collecting orbit over %d iterations (μ=%v, ν=%v)", iterations, mu, nu)
	points, err := orbit.CollectOrbit(mu, nu, iterations)
	if err != nil {
		return err
	}

	p, err := render.OrbitPlot(points, mu, nu, iterations, opts)
	if err != nil {
		return err
	}

	err = p.Save(opts.Size, opts.Size, out)
	if err != nil {
		return err
	}
	log.Printf("saved %d points to %q", len(points), out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
