package chart

import (
	"math"

	ggchart "github.com/gogpu/ggchart"
)

// XYPoint is one sample in value space.
type XYPoint struct {
	X, Y float64
}

// XYSeries is a named point cloud with a CSS color.
type XYSeries struct {
	Name   string
	Color  string
	Points []XYPoint
}

// ScatterChart renders point clouds as disks, with both axes mapped
// through the viewport's value ranges.
type ScatterChart struct {
	Series []XYSeries

	// MarkerRadius is the disk radius in pixels. The default is 4.
	MarkerRadius float64
}

func (c *ScatterChart) markerRadius() float64 {
	if c.MarkerRadius <= 0 {
		return 4
	}
	return c.MarkerRadius
}

// ValueRange returns the point cloud bounds, padded so edge markers do
// not sit on the plot border. Empty input returns the unit square.
func (c *ScatterChart) ValueRange() (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for i := range c.Series {
		for _, p := range c.Series[i].Points {
			xMin = math.Min(xMin, p.X)
			xMax = math.Max(xMax, p.X)
			yMin = math.Min(yMin, p.Y)
			yMax = math.Max(yMax, p.Y)
		}
	}
	if math.IsInf(xMin, 1) {
		return 0, 1, 0, 1
	}
	xMin, xMax = padRange(xMin, xMax)
	yMin, yMax = padRange(yMin, yMax)
	return xMin, xMax, yMin, yMax
}

func padRange(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// AppendTo expands the point clouds into frame disks. Markers grow from
// zero radius with the entrance progress; series fade with their
// visibility factors.
func (c *ScatterChart) AppendTo(frame *ggchart.Frame, vp *ggchart.Viewport, entrance float64, vis []float64) {
	if len(c.Series) == 0 {
		return
	}

	plot := vp.PlotRect()
	xMin, xMax, yMin, yMax := c.ValueRange()
	xLo, xHi := vp.ApplyToRange(xMin, xMax, ggchart.AxisX)
	yLo, yHi := vp.ApplyToRange(yMin, yMax, ggchart.AxisY)

	radius := c.markerRadius() * entrance
	if radius <= 0 {
		return
	}

	for i := range c.Series {
		s := &c.Series[i]
		alpha := seriesVisibility(vis, i)
		if alpha <= 0 {
			continue
		}
		color := ggchart.ParseColor(s.Color)
		color.A *= alpha

		for _, p := range s.Points {
			frame.Disks = append(frame.Disks, ggchart.Disk{
				CX:    valueToX(p.X, xLo, xHi, plot),
				CY:    valueToY(p.Y, yLo, yHi, plot),
				R:     radius,
				Color: color,
			})
		}
	}

	maybeClip(frame, vp)
}
