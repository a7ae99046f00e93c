package Advection1D

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gofd/utils"
)

// PlotProfiles writes one frame, each named series drawn as a line over x.
// The image format follows the file extension.
func PlotProfiles(file, title string, x []float64, series map[string][]float64) (err error) {
	var (
		names = make([]string, 0, len(series))
		lines []any
	)
	for name, f := range series {
		if len(f) != len(x) {
			err = fmt.Errorf("series %s has %d points, mesh has %d", name, len(f), len(x))
			return
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		xy := make(plotter.XYs, len(x))
		for i := range x {
			xy[i].X, xy[i].Y = x[i], series[name][i]
		}
		lines = append(lines, name, xy)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "U"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	if err = plotutil.AddLines(p, lines...); err != nil {
		return
	}
	if err = p.Save(8*vg.Inch, 4*vg.Inch, file); err != nil {
		err = fmt.Errorf("unable to save profile plot %s: %w", file, err)
	}
	return
}

// Animator replays the rows of one or more grids in a live chart window. The
// window is opened on the first frame.
type Animator struct {
	X          []float64
	FMin, FMax float64
	Delay      time.Duration
	once       sync.Once
	chart      *utils.LineChart
}

func NewAnimator(x []float64, fmin, fmax float64, delay time.Duration) *Animator {
	return &Animator{X: x, FMin: fmin, FMax: fmax, Delay: delay}
}

// Frame draws row t of every named grid and waits for the frame delay.
func (an *Animator) Frame(t int, names []string, fields []utils.Matrix) {
	an.once.Do(func() {
		an.chart = utils.NewLineChart(1280, 1024, an.X[0], an.X[len(an.X)-1], an.FMin, an.FMax)
	})
	for i, name := range names {
		an.chart.Plot(an.X, fields[i].RawRow(t), utils.SeriesColor(i, len(names)), name)
	}
	utils.SleepFor(an.Delay)
}

// Run replays every row in order.
func (an *Animator) Run(names []string, fields []utils.Matrix) {
	if len(fields) == 0 {
		return
	}
	nr, _ := fields[0].Dims()
	for t := 0; t < nr; t++ {
		an.Frame(t, names, fields)
	}
}
