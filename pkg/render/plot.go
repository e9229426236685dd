package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/willbeason/folding/pkg/geometry"
)

var (
	black        = color.Black
	gray         = color.Gray{Y: 0x80}
	lightGray    = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0x80}
	vertexRadius = markerRadius(20)
)

// finiteXYs converts points to plot coordinates, dropping any that are not
// finite.
func finiteXYs(points []complex128) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, z := range points {
		xy := geometry.ToXY(z)
		if !xy.Finite() {
			continue
		}
		xys = append(xys, plotter.XY{X: xy.X, Y: xy.Y})
	}
	return xys
}

// markerRadius converts a marker area in square points to a glyph radius.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(alpha * 0xff)),
	}
}

// newPlot returns a plot with only a faint grid.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title

	grid := plotter.NewGrid()
	grid.Vertical.Color = withAlpha(black, 0.3)
	grid.Horizontal.Color = withAlpha(black, 0.3)
	p.Add(grid)

	return p
}

// finish adds the axes and fixes the view, which Add would otherwise widen
// to fit the data.
func finish(p *plot.Plot, opts Options) error {
	s := opts.PlotSize

	for _, axis := range []plotter.XYs{
		{{X: -s, Y: 0}, {X: s, Y: 0}},
		{{X: 0, Y: -s}, {X: 0, Y: s}},
	} {
		l, err := plotter.NewLine(axis)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = black
		p.Add(l)
	}

	p.X.Min, p.X.Max = -s, s
	p.Y.Min, p.Y.Max = -s, s

	return nil
}

func addScatter(p *plot.Plot, xys plotter.XYs, c color.Color, radius vg.Length) error {
	if len(xys) == 0 {
		return nil
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	return nil
}

// OrbitPlot plots every finite point of an orbit as a black scatter.
func OrbitPlot(points []complex128, mu, nu float64, iterations int, opts Options) (*plot.Plot, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	p := newPlot(fmt.Sprintf("Orbit over %d iterations (μ=%v, ν=%v)", iterations, mu, nu))
	p.X.Label.Text = "Real"
	p.Y.Label.Text = "Imaginary"

	err = addScatter(p, finiteXYs(points), withAlpha(black, opts.Alpha), markerRadius(opts.PointSize))
	if err != nil {
		return nil, err
	}

	err = finish(p, opts)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// FramePlot draws one animation frame: the quadrilateral filled and
// outlined, its vertices marked, and the backdrop orbit behind it if any.
//
// A frame with a non-finite vertex draws only the backdrop.
func FramePlot(frame geometry.Quad, k int, backdrop []complex128, opts Options) (*plot.Plot, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	p := newPlot(fmt.Sprintf("Iteration %d", k))

	err = addScatter(p, finiteXYs(backdrop), withAlpha(gray, opts.Alpha), markerRadius(opts.PointSize))
	if err != nil {
		return nil, err
	}

	if frame.Finite() {
		xys := finiteXYs(frame.Vertices())

		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, err
		}
		poly.Color = lightGray
		poly.LineStyle.Color = black
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)

		err = addScatter(p, xys, black, vertexRadius)
		if err != nil {
			return nil, err
		}
	}

	err = finish(p, opts)
	if err != nil {
		return nil, err
	}

	return p, nil
}
