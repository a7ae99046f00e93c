/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/Elliptic2D"
)

type Model2D struct {
	ICFile   string
	Stride   int
	Decimals int
	Levels   int
	PlotFile string
	Graph    bool
	IP       InputParameters.Elliptic2DParameters
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Successive over-relaxation of an elliptic problem on a rectangle",
	Long: `
Relaxes the five point Laplace / Poisson problem on a width x height rectangle
with n x m intervals until the largest change in a sweep drops below the
precision, then prints the field and optionally plots it.

gofd 2D --problem cosine --omega 1.5 -n 20 -m 20 --plotFile field.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m2d *Model2D
		)
		if m2d, err = processInput2D(); err != nil {
			return
		}
		_, err = Run2D(m2d)
		return
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the run parameters, overrides flags and config")
	TwoDCmd.Flags().Float64("width", 1, "domain width")
	TwoDCmd.Flags().Float64("height", 1, "domain height")
	TwoDCmd.Flags().IntP("n", "n", 20, "number of intervals in x")
	TwoDCmd.Flags().IntP("m", "m", 20, "number of intervals in y")
	TwoDCmd.Flags().Float64P("omega", "w", 1.5, "relaxation factor, 0 < omega < 2")
	TwoDCmd.Flags().Float64P("precision", "p", 1.e-6, "stop when the largest change in a sweep is at most this")
	TwoDCmd.Flags().Int("maxIterations", 10000, "maximum number of sweeps")
	TwoDCmd.Flags().String("problem", "cosine", "problem to solve: cosine, harmonic or poisson")
	TwoDCmd.Flags().Float64("frequency", 1, "k in the cos(pi k x)cos(pi k y) boundary")
	TwoDCmd.Flags().IntP("stride", "s", 4, "print every stride-th node, 0 disables the table")
	TwoDCmd.Flags().Int("decimals", 4, "decimals printed in the table")
	TwoDCmd.Flags().Int("levels", 10, "number of contour lines")
	TwoDCmd.Flags().String("plotFile", "", "write a contour plot, format from the extension (.png, .svg, .pdf)")
	TwoDCmd.Flags().BoolP("graph", "g", false, "chart the convergence history in the terminal")
	bindFlags("2D", TwoDCmd)
}

func processInput2D() (m2d *Model2D, err error) {
	m2d = &Model2D{
		ICFile:   viper.GetString("2D.inputConditionsFile"),
		Stride:   viper.GetInt("2D.stride"),
		Decimals: viper.GetInt("2D.decimals"),
		Levels:   viper.GetInt("2D.levels"),
		PlotFile: viper.GetString("2D.plotFile"),
		Graph:    viper.GetBool("2D.graph"),
		IP: InputParameters.Elliptic2DParameters{
			Title:         "gofd 2D",
			Width:         viper.GetFloat64("2D.width"),
			Height:        viper.GetFloat64("2D.height"),
			N:             viper.GetInt("2D.n"),
			M:             viper.GetInt("2D.m"),
			Omega:         viper.GetFloat64("2D.omega"),
			Precision:     viper.GetFloat64("2D.precision"),
			MaxIterations: viper.GetInt("2D.maxIterations"),
			Problem:       viper.GetString("2D.problem"),
			Frequency:     viper.GetFloat64("2D.frequency"),
		},
	}
	if len(m2d.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m2d.ICFile); err != nil {
			return
		}
		if err = m2d.IP.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse %s: %w", m2d.ICFile, err)
			return
		}
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		m2d.IP.Print()
	}
	err = m2d.IP.Validate()
	return
}

func Run2D(m2d *Model2D) (g *Elliptic2D.Grid, err error) {
	var (
		ip = m2d.IP
		pt = Elliptic2D.NewProblemType(ip.Problem)
	)
	if g, err = Elliptic2D.NewGrid(ip.Width, ip.Height, ip.N, ip.M, ip.Omega,
		Elliptic2D.NewProblem(pt, ip.Frequency)); err != nil {
		return
	}
	log := logger.WithFields(logrus.Fields{
		"problem": ip.Problem,
		"n":       ip.N,
		"m":       ip.M,
		"omega":   ip.Omega,
	})
	log.WithField("precision", ip.Precision).Info("relaxing")
	r := g.Solve(ip.Precision, ip.MaxIterations)
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		for iter, acc := range g.Accuracy() {
			if iter%100 == 0 {
				log.Debugf("Iteration = %6d, max_delta = %10.4e", iter, acc)
			}
		}
	}
	fields := logrus.Fields{"iterations": r.Iterations, "max_delta": r.MaxDelta}
	if r.HasReference {
		fields["error"] = r.Error
	}
	if r.Converged {
		log.WithFields(fields).Info("converged")
	} else {
		log.WithFields(fields).Warn("iteration cap reached before the precision")
	}
	fmt.Println(Elliptic2D.SummaryTable(r))
	if m2d.Stride > 0 {
		var txt string
		if txt, err = g.Table(m2d.Decimals, m2d.Stride); err != nil {
			return
		}
		fmt.Println(txt)
	}
	if m2d.Graph {
		fmt.Println(Elliptic2D.ConvergenceChart(g.Accuracy(), 70, 15))
	}
	if len(m2d.PlotFile) != 0 {
		if err = g.PlotContour(m2d.PlotFile, m2d.Levels); err != nil {
			return
		}
		log.WithField("file", m2d.PlotFile).Info("contour plot written")
	}
	return
}
