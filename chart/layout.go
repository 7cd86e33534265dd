package chart

import ggchart "github.com/gogpu/ggchart"

// Margins reserve canvas space around the plot area for axis labels,
// titles, and legends.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins fits one legend row on top, a tick-label gutter on the
// left, and category labels below.
func DefaultMargins() Margins {
	return Margins{Top: 40, Right: 20, Bottom: 30, Left: 56}
}

// PlotArea computes the plot rectangle for a canvas of the given size.
// Degenerate results collapse to an empty rectangle instead of going
// negative.
func PlotArea(width, height float64, m Margins) ggchart.PlotRect {
	w := width - m.Left - m.Right
	h := height - m.Top - m.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return ggchart.PlotRect{X: m.Left, Y: m.Top, W: w, H: h}
}

// valueToY maps a data value to a pixel Y inside the plot, given the
// visible value range on the Y axis.
func valueToY(v, lo, hi float64, plot ggchart.PlotRect) float64 {
	if hi == lo {
		return plot.Y + plot.H
	}
	return plot.Y + plot.H*(1-(v-lo)/(hi-lo))
}

// valueToX maps a data value to a pixel X inside the plot, given the
// visible value range on the X axis.
func valueToX(v, lo, hi float64, plot ggchart.PlotRect) float64 {
	if hi == lo {
		return plot.X
	}
	return plot.X + plot.W*(v-lo)/(hi-lo)
}

// Range is an explicit value range for components that share one Y axis
// (for example a trend line over bars). When set on a component it
// replaces the range derived from the component's own data.
type Range struct {
	Min, Max float64
}

// maybeClip sets the frame's clip to the plot rectangle when the
// viewport is zoomed, so panned-out geometry cannot bleed into the
// margins.
func maybeClip(frame *ggchart.Frame, vp *ggchart.Viewport) {
	if vp.IsZoomed() && frame.Clip == nil {
		plot := vp.PlotRect()
		frame.Clip = &ggchart.ClipRect{X: plot.X, Y: plot.Y, W: plot.W, H: plot.H}
	}
}
