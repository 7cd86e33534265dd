package chart

import (
	ggchart "github.com/gogpu/ggchart"
)

// BarChart renders grouped vertical bars, one group per category label
// and one bar per series within the group.
type BarChart struct {
	Data Dataset

	// GroupGap is the fraction of each category slot left empty around
	// the group. Zero means groups touch; the default is 0.2.
	GroupGap float64

	// BarGap is the fraction of each bar's slot left empty between bars
	// of the same group. The default is 0.1.
	BarGap float64

	// Range overrides the automatic value range when several components
	// share one Y axis.
	Range *Range
}

func (c *BarChart) groupGap() float64 {
	if c.GroupGap <= 0 || c.GroupGap >= 1 {
		return 0.2
	}
	return c.GroupGap
}

func (c *BarChart) barGap() float64 {
	if c.BarGap <= 0 || c.BarGap >= 1 {
		return 0.1
	}
	return c.BarGap
}

// AppendTo expands the dataset into frame rectangles. Bar heights grow
// with the entrance progress; each series fades with its visibility
// factor. The viewport supplies the category extent (X) and the visible
// value range (Y); when zoomed the frame is clipped to the plot.
func (c *BarChart) AppendTo(frame *ggchart.Frame, vp *ggchart.Viewport, entrance float64, vis []float64) {
	n := len(c.Data.Labels)
	m := len(c.Data.Series)
	if n == 0 || m == 0 {
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
	baseline := clampValue(0, lo, hi)
	baseY := valueToY(baseline, lo, hi, plot)

	groupW := slotW * (1 - c.groupGap())
	barSlotW := groupW / float64(m)
	barW := barSlotW * (1 - c.barGap())

	for i := range c.Data.Series {
		s := &c.Data.Series[i]
		alpha := seriesVisibility(vis, i)
		if alpha <= 0 {
			continue
		}
		color := ggchart.ParseColor(s.Color)
		color.A *= alpha

		for cat := 0; cat < n && cat < len(s.Values); cat++ {
			topY := valueToY(s.Values[cat], lo, hi, plot)
			// Grow from the baseline with the entrance progress.
			topY = baseY - (baseY-topY)*entrance

			x := start + float64(cat)*slotW + slotW*c.groupGap()/2 +
				float64(i)*barSlotW + barSlotW*c.barGap()/2

			y, h := baseY, topY-baseY
			if topY < baseY {
				y, h = topY, baseY-topY
			}
			if h <= 0 {
				continue
			}
			frame.Rects = append(frame.Rects, ggchart.Rect{
				X: x, Y: y, W: barW, H: h, Color: color,
			})
		}
	}

	maybeClip(frame, vp)
}

// seriesVisibility reads the visibility factor for series i, defaulting
// to fully visible when the animator tracks fewer series.
func seriesVisibility(vis []float64, i int) float64 {
	if i >= len(vis) {
		return 1
	}
	if vis[i] < 0 {
		return 0
	}
	if vis[i] > 1 {
		return 1
	}
	return vis[i]
}

func clampValue(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
