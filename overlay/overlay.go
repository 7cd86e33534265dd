package overlay

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	ggchart "github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
)

const (
	axisColor      = "#444444"
	labelColor     = "#333333"
	gridColor      = "#e0e0e0"
	mutedColor     = "#9e9e9e"
	tickLabelGap   = 8.0
	legendSwatch   = 12.0
	legendGap      = 18.0
	legendTextGap  = 6.0
	legendRowY     = 12.0
	legendHitSlack = 4.0
)

// Decorations describes what to draw around a plot. Tick values are in
// data space; XLabels are category labels spread across the plot's
// effective extent instead.
type Decorations struct {
	Plot    ggchart.PlotRect
	Title   string
	XLabels []string
	XTicks  []chart.Tick
	YTicks  []chart.Tick

	// YLabels are row labels for category Y axes (timeline rows), listed
	// top to bottom. Mutually exclusive with YTicks in practice.
	YLabels []string

	// XMin/XMax and YMin/YMax are the visible data ranges the tick
	// values map into, typically from Viewport.ApplyToRange.
	XMin, XMax float64
	YMin, YMax float64

	Legend []chart.LegendEntry
	Hidden map[int]bool

	// Grid draws horizontal gridlines behind the Y tick labels.
	Grid bool
}

type legendBox struct {
	x, y, w, h float64
	series     int
}

// Overlay renders decorations and tracks legend hit boxes from the last
// Draw call. Not safe for concurrent use.
type Overlay struct {
	face   text.Face
	points float64
	boxes  []legendBox
}

// New creates an overlay renderer with the bundled Go Regular face at
// the given point size.
func New(points float64) (*Overlay, error) {
	if points <= 0 {
		points = 12
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Overlay{face: source.Face(points), points: points}, nil
}

// Draw renders the decorations onto dc and records legend hit boxes.
// The viewport contributes the selection rectangle and the category
// label extent; pass nil to skip both.
func (o *Overlay) Draw(dc *gg.Context, d Decorations, vp *ggchart.Viewport) {
	o.boxes = o.boxes[:0]
	dc.SetFont(o.face)

	if d.Grid {
		o.drawGrid(dc, d)
	}
	o.drawAxes(dc, d.Plot)
	o.drawYTicks(dc, d)
	o.drawXTicks(dc, d)
	o.drawXLabels(dc, d, vp)
	o.drawYLabels(dc, d, vp)
	o.drawLegend(dc, d)
	o.drawTitle(dc, d)
	if vp != nil {
		o.drawSelection(dc, vp)
	}
}

// LegendHit returns the series index of the legend entry under the
// given canvas point, from the most recent Draw.
func (o *Overlay) LegendHit(x, y float64) (series int, ok bool) {
	for _, b := range o.boxes {
		if x >= b.x-legendHitSlack && x <= b.x+b.w+legendHitSlack &&
			y >= b.y-legendHitSlack && y <= b.y+b.h+legendHitSlack {
			return b.series, true
		}
	}
	return 0, false
}

func (o *Overlay) drawAxes(dc *gg.Context, plot ggchart.PlotRect) {
	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(plot.X, plot.Y, plot.X, plot.Y+plot.H)
	dc.DrawLine(plot.X, plot.Y+plot.H, plot.X+plot.W, plot.Y+plot.H)
	dc.Stroke()
}

func (o *Overlay) drawGrid(dc *gg.Context, d Decorations) {
	dc.SetHexColor(gridColor)
	dc.SetLineWidth(1)
	for _, t := range d.YTicks {
		y := o.tickY(t.Value, d)
		dc.DrawLine(d.Plot.X, y, d.Plot.X+d.Plot.W, y)
	}
	dc.Stroke()
}

func (o *Overlay) drawYTicks(dc *gg.Context, d Decorations) {
	dc.SetHexColor(labelColor)
	for _, t := range d.YTicks {
		y := o.tickY(t.Value, d)
		dc.DrawStringAnchored(t.Label, d.Plot.X-tickLabelGap, y, 1, 0.4)
	}
}

func (o *Overlay) drawXTicks(dc *gg.Context, d Decorations) {
	dc.SetHexColor(labelColor)
	for _, t := range d.XTicks {
		x := o.tickX(t.Value, d)
		dc.DrawStringAnchored(t.Label, x, d.Plot.Y+d.Plot.H+tickLabelGap, 0.5, 1)
	}
}

// drawXLabels spreads category labels across the viewport's effective
// extent so they pan and zoom with the data. Labels that land outside
// the plot are skipped.
func (o *Overlay) drawXLabels(dc *gg.Context, d Decorations, vp *ggchart.Viewport) {
	n := len(d.XLabels)
	if n == 0 {
		return
	}
	start, size := d.Plot.X, d.Plot.W
	if vp != nil {
		start, size = vp.EffectiveExtent(ggchart.AxisX)
	}
	slotW := size / float64(n)

	dc.SetHexColor(labelColor)
	for i, label := range d.XLabels {
		x := start + (float64(i)+0.5)*slotW
		if x < d.Plot.X || x > d.Plot.X+d.Plot.W {
			continue
		}
		dc.DrawStringAnchored(label, x, d.Plot.Y+d.Plot.H+tickLabelGap, 0.5, 1)
	}
}

// drawYLabels spreads row labels down the viewport's effective Y extent,
// matching the timeline component's row placement. Labels outside the
// plot are skipped.
func (o *Overlay) drawYLabels(dc *gg.Context, d Decorations, vp *ggchart.Viewport) {
	n := len(d.YLabels)
	if n == 0 {
		return
	}
	start, size := d.Plot.Y, d.Plot.H
	if vp != nil {
		start, size = vp.EffectiveExtent(ggchart.AxisY)
	}
	rowH := size / float64(n)

	dc.SetHexColor(labelColor)
	for i, label := range d.YLabels {
		y := start + (float64(i)+0.5)*rowH
		if y < d.Plot.Y || y > d.Plot.Y+d.Plot.H {
			continue
		}
		dc.DrawStringAnchored(label, d.Plot.X-tickLabelGap, y, 1, 0.4)
	}
}

func (o *Overlay) drawLegend(dc *gg.Context, d Decorations) {
	x := d.Plot.X
	y := legendRowY
	for _, entry := range d.Legend {
		hidden := d.Hidden[entry.Series]

		col := ggchart.ParseColor(entry.Color)
		if hidden {
			dc.SetHexColor(mutedColor)
		} else {
			dc.SetRGBA(col.R, col.G, col.B, col.A)
		}
		dc.DrawRectangle(x, y, legendSwatch, legendSwatch)
		dc.Fill()

		if hidden {
			dc.SetHexColor(mutedColor)
		} else {
			dc.SetHexColor(labelColor)
		}
		textX := x + legendSwatch + legendTextGap
		dc.DrawStringAnchored(entry.Name, textX, y+legendSwatch/2, 0, 0.4)

		w, _ := dc.MeasureString(entry.Name)
		o.boxes = append(o.boxes, legendBox{
			x: x, y: y, w: legendSwatch + legendTextGap + w, h: legendSwatch,
			series: entry.Series,
		})
		x = textX + w + legendGap
	}
}

func (o *Overlay) drawTitle(dc *gg.Context, d Decorations) {
	if d.Title == "" {
		return
	}
	dc.SetHexColor(labelColor)
	dc.DrawStringAnchored(d.Title, d.Plot.X+d.Plot.W/2, legendRowY+legendSwatch/2, 0.5, 0.4)
}

// drawSelection paints the active drag-select rectangle with the
// viewport's fill and border style.
func (o *Overlay) drawSelection(dc *gg.Context, vp *ggchart.Viewport) {
	rect, ok := vp.Selection()
	if !ok {
		return
	}
	style := vp.SelectionStyle()

	dc.SetRGBA(style.Fill.R, style.Fill.G, style.Fill.B, style.Fill.A)
	dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	dc.Fill()

	dc.SetRGBA(style.Border.R, style.Border.G, style.Border.B, style.Border.A)
	dc.SetLineWidth(1)
	dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	dc.Stroke()
}

func (o *Overlay) tickY(v float64, d Decorations) float64 {
	if d.YMax == d.YMin {
		return d.Plot.Y + d.Plot.H
	}
	return d.Plot.Y + d.Plot.H*(1-(v-d.YMin)/(d.YMax-d.YMin))
}

func (o *Overlay) tickX(v float64, d Decorations) float64 {
	if d.XMax == d.XMin {
		return d.Plot.X
	}
	return d.Plot.X + d.Plot.W*(v-d.XMin)/(d.XMax-d.XMin)
}
