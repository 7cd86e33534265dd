package chart

import (
	"math"
	"testing"

	ggchart "github.com/gogpu/ggchart"
)

const eps = 1e-9

func testViewport() *ggchart.Viewport {
	vp := ggchart.NewViewport()
	vp.SetPlotRect(ggchart.PlotRect{X: 50, Y: 20, W: 400, H: 300})
	return vp
}

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBarChartGeometry(t *testing.T) {
	c := &BarChart{Data: Dataset{
		Labels: []string{"a", "b"},
		Series: []Series{{Name: "s", Color: "#ff0000", Values: []float64{10, 5}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{1})

	if len(frame.Rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(frame.Rects))
	}
	// Range widens to (0, 10); a full-value bar spans the plot height.
	r := frame.Rects[0]
	if !approx(r.Y, 20) || !approx(r.H, 300) {
		t.Errorf("bar 0 vertical = (%v, %v), want (20, 300)", r.Y, r.H)
	}
	// slotW=200, groupGap 0.2, one series: x = 50 + 20 + 8 = 78, w = 144.
	if !approx(r.X, 78) || !approx(r.W, 144) {
		t.Errorf("bar 0 horizontal = (%v, %v), want (78, 144)", r.X, r.W)
	}
	if r.Color.R != 1 || r.Color.A != 1 {
		t.Errorf("bar 0 color = %+v, want opaque red", r.Color)
	}

	half := frame.Rects[1]
	if !approx(half.H, 150) || !approx(half.Y, 170) {
		t.Errorf("bar 1 vertical = (%v, %v), want (170, 150)", half.Y, half.H)
	}
}

func TestBarChartEntranceScalesHeight(t *testing.T) {
	c := &BarChart{Data: Dataset{
		Labels: []string{"a"},
		Series: []Series{{Color: "red", Values: []float64{10}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 0.5, []float64{1})
	if len(frame.Rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(frame.Rects))
	}
	r := frame.Rects[0]
	if !approx(r.H, 150) || !approx(r.Y, 170) {
		t.Errorf("half-entrance bar = (%v, %v), want (170, 150)", r.Y, r.H)
	}
	if !approx(r.Y+r.H, 320) {
		t.Errorf("bar bottom = %v, want baseline 320", r.Y+r.H)
	}
}

func TestBarChartHiddenSeriesSkipped(t *testing.T) {
	c := &BarChart{Data: Dataset{
		Labels: []string{"a"},
		Series: []Series{
			{Color: "red", Values: []float64{5}},
			{Color: "blue", Values: []float64{7}},
		},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{0, 1})
	if len(frame.Rects) != 1 {
		t.Fatalf("got %d rects, want 1 (hidden series skipped)", len(frame.Rects))
	}
	if frame.Rects[0].Color.B != 1 {
		t.Errorf("surviving bar color = %+v, want blue", frame.Rects[0].Color)
	}
}

func TestBarChartNegativeValues(t *testing.T) {
	c := &BarChart{Data: Dataset{
		Labels: []string{"a"},
		Series: []Series{{Color: "red", Values: []float64{-5}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{1})
	if len(frame.Rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(frame.Rects))
	}
	// Range (-5, 0): baseline at the top of the plot, bar hangs below it.
	r := frame.Rects[0]
	if !approx(r.Y, 20) || !approx(r.H, 300) {
		t.Errorf("negative bar = (%v, %v), want (20, 300)", r.Y, r.H)
	}
}

func TestBarChartClipsWhenZoomed(t *testing.T) {
	c := &BarChart{Data: Dataset{
		Labels: []string{"a"},
		Series: []Series{{Color: "red", Values: []float64{5}}},
	}}
	vp := testViewport()
	vp.SetZoom(ggchart.ZoomRange{XMin: 0.25, XMax: 0.75, YMin: 0, YMax: 1})

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{1})
	if frame.Clip == nil {
		t.Fatal("zoomed frame has no clip")
	}
	if !approx(frame.Clip.X, 50) || !approx(frame.Clip.W, 400) {
		t.Errorf("clip = %+v, want plot rect", *frame.Clip)
	}
}

func TestLineChartSegmentsAndMarkers(t *testing.T) {
	c := &LineChart{Data: Dataset{
		Labels: []string{"a", "b", "c"},
		Series: []Series{{Color: "#00ff00", Values: []float64{1, 2, 3}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{1})

	if len(frame.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(frame.Segments))
	}
	if len(frame.Disks) != 3 {
		t.Fatalf("got %d disks, want 3", len(frame.Disks))
	}
	// Points sit at category centers: slotW=400/3.
	slotW := 400.0 / 3
	for i, d := range frame.Disks {
		wantX := 50 + (float64(i)+0.5)*slotW
		if !approx(d.CX, wantX) {
			t.Errorf("marker %d x = %v, want %v", i, d.CX, wantX)
		}
		if !approx(d.R, 3) {
			t.Errorf("marker %d radius = %v, want default 3", i, d.R)
		}
	}
	// Segments connect consecutive markers.
	if !approx(frame.Segments[0].X2, frame.Segments[1].X1) {
		t.Error("segments not contiguous")
	}
	if !approx(frame.Segments[0].Width, 2) {
		t.Errorf("segment width = %v, want default 2", frame.Segments[0].Width)
	}
}

func TestLineChartRangeOverride(t *testing.T) {
	c := &LineChart{
		Data: Dataset{
			Labels: []string{"a"},
			Series: []Series{{Color: "red", Values: []float64{5}}},
		},
		MarkerRadius: 1,
		Range:        &Range{Min: 0, Max: 10},
	}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 1, []float64{1})
	if len(frame.Disks) != 1 {
		t.Fatalf("got %d disks, want 1", len(frame.Disks))
	}
	// With the shared (0, 10) range, value 5 sits at the plot midline
	// instead of filling the auto range (0, 5).
	if !approx(frame.Disks[0].CY, 170) {
		t.Errorf("marker y = %v, want 170", frame.Disks[0].CY)
	}
}

func TestScatterChartEntranceScalesRadius(t *testing.T) {
	c := &ScatterChart{Series: []XYSeries{
		{Color: "purple", Points: []XYPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 0, []float64{1})
	if len(frame.Disks) != 0 {
		t.Fatalf("zero entrance produced %d disks", len(frame.Disks))
	}

	c.AppendTo(&frame, vp, 0.5, []float64{1})
	if len(frame.Disks) != 2 {
		t.Fatalf("got %d disks, want 2", len(frame.Disks))
	}
	if !approx(frame.Disks[0].R, 2) {
		t.Errorf("half-entrance radius = %v, want 2", frame.Disks[0].R)
	}
}

func TestScatterChartValueRange(t *testing.T) {
	c := &ScatterChart{Series: []XYSeries{
		{Points: []XYPoint{{X: 0, Y: 10}, {X: 100, Y: 20}}},
	}}
	xMin, xMax, yMin, yMax := c.ValueRange()
	if !approx(xMin, -5) || !approx(xMax, 105) {
		t.Errorf("x range = (%v, %v), want padded (-5, 105)", xMin, xMax)
	}
	if !approx(yMin, 9.5) || !approx(yMax, 20.5) {
		t.Errorf("y range = (%v, %v), want padded (9.5, 20.5)", yMin, yMax)
	}

	empty := &ScatterChart{}
	xMin, xMax, yMin, yMax = empty.ValueRange()
	if xMin != 0 || xMax != 1 || yMin != 0 || yMax != 1 {
		t.Errorf("empty range = (%v, %v, %v, %v), want unit square", xMin, xMax, yMin, yMax)
	}
}

func TestStackedBarChartReflow(t *testing.T) {
	data := Dataset{
		Labels: []string{"a"},
		Series: []Series{
			{Color: "red", Values: []float64{4}},
			{Color: "blue", Values: []float64{6}},
		},
	}
	vp := testViewport()

	// Fully visible: segments fill the stack range (0, 10) over 300px.
	var full ggchart.Frame
	(&StackedBarChart{Data: data}).AppendTo(&full, vp, 1, []float64{1, 1})
	if len(full.Rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(full.Rects))
	}
	if !approx(full.Rects[0].H, 120) || !approx(full.Rects[1].H, 180) {
		t.Errorf("segment heights = (%v, %v), want (120, 180)",
			full.Rects[0].H, full.Rects[1].H)
	}
	// Second segment sits directly on the first.
	if !approx(full.Rects[1].Y+full.Rects[1].H, full.Rects[0].Y) {
		t.Error("stacked segments not adjacent")
	}

	// Half-faded first series shrinks its contribution; the second
	// slides down to rest on the smaller base.
	var faded ggchart.Frame
	(&StackedBarChart{Data: data}).AppendTo(&faded, vp, 1, []float64{0.5, 1})
	if !approx(faded.Rects[0].H, 60) {
		t.Errorf("faded segment height = %v, want 60", faded.Rects[0].H)
	}
	if !approx(faded.Rects[1].Y+faded.Rects[1].H, faded.Rects[0].Y) {
		t.Error("reflowed segments not adjacent")
	}
}

func TestTimelineChartSweep(t *testing.T) {
	c := &TimelineChart{Rows: []TimelineRow{
		{Label: "build", Spans: []Span{{Start: 0, End: 10, Color: "teal"}}},
	}}
	vp := testViewport()

	var frame ggchart.Frame
	c.AppendTo(&frame, vp, 0.5, nil)
	if len(frame.Rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(frame.Rects))
	}
	r := frame.Rects[0]
	// Full span covers the plot width; half entrance sweeps half of it
	// open from the left edge.
	if !approx(r.X, 50) || !approx(r.W, 200) {
		t.Errorf("span = (%v, %v), want (50, 200)", r.X, r.W)
	}
	// Single row, default gap 0.35: bar height 195 centered in 300.
	if !approx(r.H, 195) || !approx(r.Y, 72.5) {
		t.Errorf("row = (%v, %v), want (72.5, 195)", r.Y, r.H)
	}
}

func TestTimelineChartTimeRange(t *testing.T) {
	c := &TimelineChart{Rows: []TimelineRow{
		{Spans: []Span{{Start: 3, End: 8}}},
		{Spans: []Span{{Start: 1, End: 5}}},
	}}
	min, max := c.TimeRange()
	if min != 1 || max != 8 {
		t.Errorf("TimeRange() = (%v, %v), want (1, 8)", min, max)
	}

	empty := &TimelineChart{}
	min, max = empty.TimeRange()
	if min != 0 || max != 1 {
		t.Errorf("empty TimeRange() = (%v, %v), want (0, 1)", min, max)
	}
}

func TestPlotArea(t *testing.T) {
	plot := PlotArea(800, 600, DefaultMargins())
	want := ggchart.PlotRect{X: 56, Y: 40, W: 724, H: 530}
	if plot != want {
		t.Errorf("PlotArea = %+v, want %+v", plot, want)
	}

	tiny := PlotArea(10, 10, DefaultMargins())
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("undersized canvas = %+v, want empty plot", tiny)
	}
}

func TestValueMappers(t *testing.T) {
	plot := ggchart.PlotRect{X: 50, Y: 20, W: 400, H: 300}
	if y := valueToY(0, 0, 10, plot); !approx(y, 320) {
		t.Errorf("valueToY(0) = %v, want 320", y)
	}
	if y := valueToY(10, 0, 10, plot); !approx(y, 20) {
		t.Errorf("valueToY(10) = %v, want 20", y)
	}
	if x := valueToX(5, 0, 10, plot); !approx(x, 250) {
		t.Errorf("valueToX(5) = %v, want 250", x)
	}
	// Degenerate range collapses instead of dividing by zero.
	if y := valueToY(3, 7, 7, plot); !approx(y, 320) {
		t.Errorf("degenerate valueToY = %v, want 320", y)
	}
}
