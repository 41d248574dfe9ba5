// SPDX-License-Identifier: MIT

// Package render - PNG pictures of a two-cycle solution and of a run's cost
// trace, drawn with gonum/plot.
//
// Cycle A is drawn in blue, cycle B in orange, both closed. The trace chart
// shows every evaluated candidate cost and the running best beneath it.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/twocycle/solution"
)

var (
	// ErrPoints is returned when the coordinates do not match the solution.
	ErrPoints = errors.New("render: one point per vertex required")

	// ErrEmptyTrace is returned for a trace without entries.
	ErrEmptyTrace = errors.New("render: empty trace")
)

var (
	colorA    = color.RGBA{R: 0, G: 102, B: 204, A: 255}
	colorB    = color.RGBA{R: 255, G: 127, B: 0, A: 255}
	colorBest = color.RGBA{R: 200, A: 255}
)

// Size of the produced images.
var (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

// Solution draws both cycles of s over pts (one point per vertex) as PNG.
func Solution(w io.Writer, title string, pts [][2]float64, s *solution.Solution) error {
	if s == nil || len(pts) != s.N() {
		return ErrPoints
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, c := range []solution.Cycle{solution.A, solution.B} {
		line, err := cycleLine(pts, s.Cycle(c))
		if err != nil {
			return fmt.Errorf("render: cycle %s: %w", c, err)
		}
		line.Color = colorA
		if c == solution.B {
			line.Color = colorB
		}
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(c.String(), line)
	}

	all := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		all[i].X, all[i].Y = pt[0], pt[1]
	}
	dots, err := plotter.NewScatter(all)
	if err != nil {
		return fmt.Errorf("render: vertices: %w", err)
	}
	dots.GlyphStyle.Radius = vg.Points(2)
	p.Add(dots)

	return writePNG(p, w)
}

// cycleLine returns the closed polyline through the points of cycle t.
func cycleLine(pts [][2]float64, t []int) (*plotter.Line, error) {
	xys := make(plotter.XYs, 0, len(t)+1)
	for _, v := range t {
		xys = append(xys, plotter.XY{X: pts[v][0], Y: pts[v][1]})
	}
	if len(t) > 0 {
		xys = append(xys, xys[0])
	}

	return plotter.NewLine(xys)
}

// Trace draws the candidate costs of a run and their running minimum as PNG.
func Trace(w io.Writer, title string, trace []int) error {
	if len(trace) == 0 {
		return ErrEmptyTrace
	}

	var (
		costs  = make(plotter.XYs, len(trace))
		best   = make(plotter.XYs, len(trace))
		lowest = trace[0]
	)
	for i, c := range trace {
		if c < lowest {
			lowest = c
		}
		costs[i] = plotter.XY{X: float64(i), Y: float64(c)}
		best[i] = plotter.XY{X: float64(i), Y: float64(lowest)}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "candidate"
	p.Y.Label.Text = "cost"

	all, err := plotter.NewLine(costs)
	if err != nil {
		return fmt.Errorf("render: trace: %w", err)
	}
	all.Color = colorA
	all.Width = vg.Points(0.5)

	low, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("render: trace: %w", err)
	}
	low.Color = colorBest
	low.Width = vg.Points(2)

	p.Add(all, low)
	p.Legend.Add("candidate", all)
	p.Legend.Add("best", low)

	return writePNG(p, w)
}

func writePNG(p *plot.Plot, w io.Writer) error {
	canvas := vgimg.New(Width, Height)
	p.Draw(draw.New(canvas))
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render: writing PNG: %w", err)
	}

	return nil
}
