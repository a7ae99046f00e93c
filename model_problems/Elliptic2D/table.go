package Elliptic2D

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)
)

/*
Table renders the final field as a grid, one row per y and one column per x,
keeping every stride-th node in each direction. Values are printed with the
given number of decimals and the axis labels are the node coordinates.
*/
func (g *Grid) Table(decimals, stride int) (txt string, err error) {
	var (
		headers = []string{"Y\\X"}
		rows    [][]string
	)
	if g.final.IsEmpty() {
		err = fmt.Errorf("no solution to tabulate, Solve has not been run")
		return
	}
	if stride < 1 {
		err = fmt.Errorf("table stride must be positive, have %d", stride)
		return
	}
	if decimals < 0 {
		decimals = 0
	}
	for i := 0; i <= g.n; i += stride {
		headers = append(headers, fmt.Sprintf("%.2f", float64(i)*g.h))
	}
	for j := 0; j <= g.m; j += stride {
		row := []string{fmt.Sprintf("%.2f", float64(j)*g.k)}
		for i := 0; i <= g.n; i += stride {
			row = append(row, strconv.FormatFloat(g.final.At(j, i), 'f', decimals, 64))
		}
		rows = append(rows, row)
	}
	txt = table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Render()
	return
}

// SummaryTable reports the iteration count against its cap, the last max
// delta and, when a reference was supplied, the error.
func SummaryTable(r Result) string {
	errTxt := "n/a"
	if r.HasReference {
		errTxt = fmt.Sprintf("%g", r.Error)
	}
	status := "converged"
	if !r.Converged {
		status = "iteration cap reached"
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Rows(
			[]string{"Iterations", fmt.Sprintf("%d/%d", r.Iterations, r.MaxIterations)},
			[]string{"Precision", fmt.Sprintf("%g", r.MaxDelta)},
			[]string{"Error", errTxt},
			[]string{"Status", status},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}
			return cellStyle
		}).
		Render()
}
