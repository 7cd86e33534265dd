package chart

import (
	"math"

	ggchart "github.com/gogpu/ggchart"
)

// Span is one colored interval on a timeline row.
type Span struct {
	Start, End float64
	Color      string
}

// TimelineRow is a labeled horizontal track of spans.
type TimelineRow struct {
	Label string
	Spans []Span
}

// TimelineChart renders rows of horizontal span bars against a shared
// time axis, top row first.
type TimelineChart struct {
	Rows []TimelineRow

	// RowGap is the fraction of each row slot left empty between bars.
	// The default is 0.35.
	RowGap float64
}

func (c *TimelineChart) rowGap() float64 {
	if c.RowGap <= 0 || c.RowGap >= 1 {
		return 0.35
	}
	return c.RowGap
}

// TimeRange returns the span extent across all rows, or (0, 1) when
// there are no spans.
func (c *TimelineChart) TimeRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := range c.Rows {
		for _, sp := range c.Rows[i].Spans {
			min = math.Min(min, math.Min(sp.Start, sp.End))
			max = math.Max(max, math.Max(sp.Start, sp.End))
		}
	}
	if math.IsInf(min, 1) {
		return 0, 1
	}
	if min == max {
		max = min + 1
	}
	return min, max
}

// AppendTo expands the rows into frame rectangles. Spans sweep open
// left to right with the entrance progress. Rows have no per-series
// visibility; the vis slice is ignored.
func (c *TimelineChart) AppendTo(frame *ggchart.Frame, vp *ggchart.Viewport, entrance float64, _ []float64) {
	n := len(c.Rows)
	if n == 0 {
		return
	}

	plot := vp.PlotRect()
	tMin, tMax := c.TimeRange()
	lo, hi := vp.ApplyToRange(tMin, tMax, ggchart.AxisX)

	startY, sizeY := vp.EffectiveExtent(ggchart.AxisY)
	rowH := sizeY / float64(n)
	barH := rowH * (1 - c.rowGap())

	for r := range c.Rows {
		y := startY + float64(r)*rowH + rowH*c.rowGap()/2
		for _, sp := range c.Rows[r].Spans {
			x1 := valueToX(sp.Start, lo, hi, plot)
			x2 := valueToX(sp.End, lo, hi, plot)
			if x2 < x1 {
				x1, x2 = x2, x1
			}
			x2 = x1 + (x2-x1)*entrance
			if x2-x1 <= 0 {
				continue
			}
			frame.Rects = append(frame.Rects, ggchart.Rect{
				X: x1, Y: y, W: x2 - x1, H: barH,
				Color: ggchart.ParseColor(sp.Color),
			})
		}
	}

	maybeClip(frame, vp)
}
