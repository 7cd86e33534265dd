package overlay

import (
	"testing"

	"github.com/gogpu/gg"

	ggchart "github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
)

func testDecorations() Decorations {
	return Decorations{
		Plot: ggchart.PlotRect{X: 56, Y: 40, W: 724, H: 530},
		YTicks: []chart.Tick{
			{Value: 0, Label: "0"},
			{Value: 5, Label: "5"},
			{Value: 10, Label: "10"},
		},
		YMin: 0, YMax: 10,
		XLabels: []string{"jan", "feb", "mar"},
		Legend: []chart.LegendEntry{
			{Name: "alpha", Color: "#ff0000", Series: 0},
			{Name: "beta", Color: "#0000ff", Series: 1},
		},
	}
}

func TestNew(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if o.face == nil {
		t.Fatal("overlay has no font face")
	}

	// Non-positive sizes fall back to a usable default.
	o, err = New(0)
	if err != nil {
		t.Fatalf("New(0) failed: %v", err)
	}
	if o.points != 12 {
		t.Errorf("points = %v, want default 12", o.points)
	}
}

func TestDrawRecordsLegendHits(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dc := gg.NewContext(800, 600)
	defer dc.Close()

	d := testDecorations()
	o.Draw(dc, d, nil)

	if len(o.boxes) != 2 {
		t.Fatalf("got %d legend boxes, want 2", len(o.boxes))
	}

	// The first swatch starts at the plot's left edge.
	series, ok := o.LegendHit(d.Plot.X+2, legendRowY+2)
	if !ok || series != 0 {
		t.Errorf("LegendHit on first swatch = (%d, %v), want (0, true)", series, ok)
	}

	// The second entry sits to the right of the first one's text.
	second := o.boxes[1]
	series, ok = o.LegendHit(second.x+2, second.y+2)
	if !ok || series != 1 {
		t.Errorf("LegendHit on second swatch = (%d, %v), want (1, true)", series, ok)
	}

	// Far outside everything.
	if _, ok := o.LegendHit(790, 590); ok {
		t.Error("LegendHit outside legend reported a hit")
	}
}

func TestLegendHitBeforeDraw(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := o.LegendHit(10, 10); ok {
		t.Error("LegendHit before any Draw reported a hit")
	}
}

func TestDrawWithViewportSelection(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dc := gg.NewContext(800, 600)
	defer dc.Close()

	vp := ggchart.NewViewport()
	vp.SetPlotRect(ggchart.PlotRect{X: 56, Y: 40, W: 724, H: 530})
	vp.PointerDown(ggchart.PointerEvent{X: 100, Y: 200, Button: ggchart.ButtonPrimary})
	vp.PointerMove(ggchart.PointerEvent{X: 300, Y: 210})

	// Draw must not panic with an active selection; the rectangle is
	// painted from the viewport's style.
	o.Draw(dc, testDecorations(), vp)

	if rect, ok := vp.Selection(); !ok || rect.W == 0 {
		t.Fatalf("expected an active selection, got %+v ok=%v", rect, ok)
	}
}

func TestDrawTimelineRowLabels(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dc := gg.NewContext(800, 600)
	defer dc.Close()

	d := Decorations{
		Plot:    ggchart.PlotRect{X: 120, Y: 40, W: 660, H: 530},
		YLabels: []string{"build", "test", "deploy"},
		XTicks: []chart.Tick{
			{Value: 0, Label: "0"},
			{Value: 10, Label: "10"},
		},
		XMin: 0, XMax: 10,
	}
	// Row labels draw without ticks or a viewport; must not panic.
	o.Draw(dc, d, nil)
}

func TestDrawSkipsOffPlotLabels(t *testing.T) {
	o, err := New(12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dc := gg.NewContext(800, 600)
	defer dc.Close()

	vp := ggchart.NewViewport()
	vp.SetPlotRect(ggchart.PlotRect{X: 56, Y: 40, W: 724, H: 530})
	// Zoom into the right half: left categories land outside the plot.
	vp.SetZoom(ggchart.ZoomRange{XMin: 0.5, XMax: 1, YMin: 0, YMax: 1})

	// Must not panic; skipped labels are not drawn and hit boxes still
	// come only from the legend.
	o.Draw(dc, testDecorations(), vp)
	if len(o.boxes) != 2 {
		t.Fatalf("got %d legend boxes, want 2", len(o.boxes))
	}
}
