package Elliptic2D

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gofd/utils"
)

// meshField adapts a solved field to plotter.GridXYZ, column c is x and row r is y.
type meshField struct {
	x, y []float64
	U    utils.Matrix
}

func (f meshField) Dims() (c, r int)   { return len(f.x), len(f.y) }
func (f meshField) Z(c, r int) float64 { return f.U.At(r, c) }
func (f meshField) X(c int) float64    { return f.x[c] }
func (f meshField) Y(r int) float64    { return f.y[r] }
func (f meshField) Min() float64       { return f.U.Min() }
func (f meshField) Max() float64       { return f.U.Max() }

// PlotContour writes a filled heat map of the final field with nLevels contour
// lines drawn over it. The image format follows the file extension.
func (g *Grid) PlotContour(file string, nLevels int) (err error) {
	var (
		field = meshField{x: g.XMesh(), y: g.YMesh(), U: g.final}
	)
	if g.final.IsEmpty() {
		err = fmt.Errorf("no solution to plot, Solve has not been run")
		return
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, omega = %4.2f", g.problem.Name, g.Omega())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.X.Padding = 0
	p.Y.Padding = 0

	heat := plotter.NewHeatMap(field, moreland.SmoothBlueRed().Palette(255))
	p.Add(heat)
	if levels := offNodeLevels(contourLevels(field.Min(), field.Max(), nLevels), g.final.Data()); len(levels) != 0 {
		p.Add(plotter.NewContour(field, levels, nil))
	}
	p.Add(plotter.NewGrid())

	defer func() {
		// The contour tracer panics on degenerate paths
		if r := recover(); r != nil {
			err = fmt.Errorf("unable to draw contour plot %s: %v", file, r)
		}
	}()
	side := 6 * vg.Inch
	if err = p.Save(side, side*vg.Length(g.Height()/g.Width()), file); err != nil {
		err = fmt.Errorf("unable to save contour plot %s: %w", file, err)
	}
	return
}

// offNodeLevels shifts any level that coincides with a node value by a small
// fraction of the level spacing, a level lying exactly on nodes leaves the
// contour tracer with paths it cannot follow.
func offNodeLevels(levels, nodes []float64) []float64 {
	if len(levels) == 0 {
		return levels
	}
	onNode := make(map[float64]bool, len(nodes))
	for _, val := range nodes {
		onNode[val] = true
	}
	eps := 1.e-6 * math.Max(math.Abs(levels[0]), 1)
	if len(levels) > 1 {
		eps = 1.e-6 * (levels[1] - levels[0])
	}
	for i, lev := range levels {
		for onNode[lev] {
			if next := lev + eps; next != lev {
				lev = next
			} else {
				lev = math.Nextafter(lev, math.Inf(1))
			}
		}
		levels[i] = lev
	}
	return levels
}

// contourLevels returns n levels strictly inside (fmin, fmax).
func contourLevels(fmin, fmax float64, n int) (levels []float64) {
	if n < 1 || math.IsNaN(fmin) || math.IsNaN(fmax) || fmax <= fmin {
		return
	}
	dl := (fmax - fmin) / float64(n+1)
	for i := 1; i <= n; i++ {
		levels = append(levels, fmin+float64(i)*dl)
	}
	return
}

// ConvergenceChart renders log10 of the per iteration max delta as a terminal chart.
func ConvergenceChart(accuracy []float64, width, height int) string {
	if len(accuracy) == 0 {
		return ""
	}
	logAcc := make([]float64, len(accuracy))
	for i, acc := range accuracy {
		// Exact zero would map to -Inf
		logAcc[i] = math.Log10(math.Max(acc, math.SmallestNonzeroFloat64))
	}
	return asciigraph.Plot(logAcc,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("log10(max delta) over %d iterations", len(accuracy))))
}
