package chart

import (
	ggchart "github.com/gogpu/ggchart"
)

// StackedBarChart renders one bar per category with series segments
// stacked from the zero baseline. Positive values stack upward and
// negative values downward.
type StackedBarChart struct {
	Data Dataset

	// GroupGap is the fraction of each category slot left empty around
	// the bar. The default is 0.3.
	GroupGap float64
}

func (c *StackedBarChart) groupGap() float64 {
	if c.GroupGap <= 0 || c.GroupGap >= 1 {
		return 0.3
	}
	return c.GroupGap
}

// AppendTo expands the dataset into stacked frame rectangles. A fading
// series shrinks its contribution to the stack, so the segments above it
// slide down as it disappears. The whole stack grows with the entrance
// progress.
func (c *StackedBarChart) AppendTo(frame *ggchart.Frame, vp *ggchart.Viewport, entrance float64, vis []float64) {
	n := len(c.Data.Labels)
	if n == 0 || len(c.Data.Series) == 0 {
		return
	}

	plot := vp.PlotRect()
	start, size := vp.EffectiveExtent(ggchart.AxisX)
	slotW := size / float64(n)
	barW := slotW * (1 - c.groupGap())

	min, max := c.Data.StackedRange()
	lo, hi := vp.ApplyToRange(min, max, ggchart.AxisY)

	for cat := 0; cat < n; cat++ {
		x := start + float64(cat)*slotW + slotW*c.groupGap()/2
		var up, down float64

		for i := range c.Data.Series {
			s := &c.Data.Series[i]
			if cat >= len(s.Values) {
				continue
			}
			alpha := seriesVisibility(vis, i)
			if alpha <= 0 {
				continue
			}

			// Visibility scales the stacked contribution, not just the
			// alpha, so the stack reflows as series fade.
			v := s.Values[cat] * alpha * entrance
			if v == 0 {
				continue
			}

			var from, to float64
			if v >= 0 {
				from, to = up, up+v
				up = to
			} else {
				from, to = down, down+v
				down = to
			}

			y1 := valueToY(from, lo, hi, plot)
			y2 := valueToY(to, lo, hi, plot)
			y, h := y2, y1-y2
			if h < 0 {
				y, h = y1, y2-y1
			}
			if h <= 0 {
				continue
			}

			color := ggchart.ParseColor(s.Color)
			frame.Rects = append(frame.Rects, ggchart.Rect{
				X: x, Y: y, W: barW, H: h, Color: color,
			})
		}
	}

	maybeClip(frame, vp)
}
