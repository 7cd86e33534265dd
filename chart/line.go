package chart

import (
	ggchart "github.com/gogpu/ggchart"
)

// LineChart renders one polyline per series across the category axis,
// with disk markers on the data points.
type LineChart struct {
	Data Dataset

	// LineWidth is the stroke thickness in pixels. The default is 2.
	LineWidth float64

	// MarkerRadius is the data point marker radius in pixels. Zero
	// disables markers; the default is 3.
	MarkerRadius float64

	// Range overrides the automatic value range when several components
	// share one Y axis.
	Range *Range
}

func (c *LineChart) lineWidth() float64 {
	if c.LineWidth <= 0 {
		return 2
	}
	return c.LineWidth
}

func (c *LineChart) markerRadius() float64 {
	if c.MarkerRadius < 0 {
		return 0
	}
	if c.MarkerRadius == 0 {
		return 3
	}
	return c.MarkerRadius
}

// AppendTo expands the dataset into frame segments and marker disks.
// Values rise from the baseline with the entrance progress; series fade
// with their visibility factors.
func (c *LineChart) AppendTo(frame *ggchart.Frame, vp *ggchart.Viewport, entrance float64, vis []float64) {
	n := len(c.Data.Labels)
	if n == 0 || len(c.Data.Series) == 0 {
		return
	}

	plot := vp.PlotRect()
	start, size := vp.EffectiveExtent(ggchart.AxisX)
	slotW := size / float64(n)

	min, max := c.Data.ValueRange()
	if c.Range != nil {
		min, max = c.Range.Min, c.Range.Max
	}
	lo, hi := vp.ApplyToRange(min, max, ggchart.AxisY)
	baseY := valueToY(clampValue(0, lo, hi), lo, hi, plot)

	width := c.lineWidth()
	radius := c.markerRadius()

	for i := range c.Data.Series {
		s := &c.Data.Series[i]
		alpha := seriesVisibility(vis, i)
		if alpha <= 0 {
			continue
		}
		color := ggchart.ParseColor(s.Color)
		color.A *= alpha

		count := n
		if len(s.Values) < count {
			count = len(s.Values)
		}

		var prevX, prevY float64
		for cat := 0; cat < count; cat++ {
			x := start + (float64(cat)+0.5)*slotW
			y := valueToY(s.Values[cat], lo, hi, plot)
			y = baseY - (baseY-y)*entrance

			if cat > 0 {
				frame.Segments = append(frame.Segments, ggchart.Segment{
					X1: prevX, Y1: prevY, X2: x, Y2: y,
					Width: width, Color: color,
				})
			}
			if radius > 0 {
				frame.Disks = append(frame.Disks, ggchart.Disk{
					CX: x, CY: y, R: radius, Color: color,
				})
			}
			prevX, prevY = x, y
		}
	}

	maybeClip(frame, vp)
}
