// Package render draws orbits and folding animations with gonum/plot.
//
// Points with NaN or infinite coordinates are dropped before plotting, so
// trajectories that pass through a degenerate fold still render.
package render

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/plot/vg"
)

var (
	ErrPlotSize  = errors.New("plot size must be positive")
	ErrPointSize = errors.New("point size must be positive")
	ErrAlpha     = errors.New("alpha must be between 0 and 1")
	ErrInterval  = errors.New("frame interval must be positive")
)

// Options controls the appearance of rendered plots.
type Options struct {
	// PlotSize is the half-width of the square view centered on the origin.
	PlotSize float64

	// PointSize is the marker area in square points, as in a scatter plot.
	PointSize float64

	// Size is the side length of the square output image.
	Size vg.Length

	// Alpha is the opacity of orbit points, drawn alone or behind frames.
	Alpha float64

	// Interval is how long each animation frame is shown.
	Interval time.Duration
}

// OrbitOptions are the defaults for a static orbit plot.
func OrbitOptions() Options {
	return Options{
		PlotSize:  3,
		PointSize: 5,
		Size:      7 * vg.Inch,
		Alpha:     0.6,
		Interval:  200 * time.Millisecond,
	}
}

// AnimationOptions are the defaults for a folding animation.
func AnimationOptions() Options {
	return Options{
		PlotSize:  3,
		PointSize: 2,
		Size:      6.5 * vg.Inch,
		Alpha:     0.3,
		Interval:  200 * time.Millisecond,
	}
}

// Validate reports the first option outside its allowed range.
func (o Options) Validate() error {
	switch {
	case !(o.PlotSize > 0):
		return fmt.Errorf("%w: got %v", ErrPlotSize, o.PlotSize)
	case !(o.PointSize > 0):
		return fmt.Errorf("%w: got %v", ErrPointSize, o.PointSize)
	case !(o.Alpha >= 0 && o.Alpha <= 1):
		return fmt.Errorf("%w: got %v", ErrAlpha, o.Alpha)
	case o.Interval <= 0:
		return fmt.Errorf("%w: got %v", ErrInterval, o.Interval)
	case o.Size <= 0:
		return fmt.Errorf("image size must be positive: got %v", o.Size)
	}
	return nil
}
