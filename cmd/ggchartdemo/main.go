// Command ggchartdemo renders an animated bar chart to a PNG sequence.
// It exercises the GPU renderer (falling back to decorations-only when
// no adapter is available), the zoom viewport, and the dual-track
// animator, stepping the clock deterministically at 16ms per frame.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	ggchart "github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/overlay"
)

// Config holds demo settings. Environment variables with the CHARTDEMO_
// prefix set the defaults; flags override them.
type Config struct {
	Width      int    `envconfig:"WIDTH" default:"800"`
	Height     int    `envconfig:"HEIGHT" default:"600"`
	Frames     int    `envconfig:"FRAMES" default:"90"`
	OutDir     string `envconfig:"OUT_DIR" default:"out"`
	DurationMS int    `envconfig:"DURATION_MS" default:"600"`
	Grid       bool   `envconfig:"GRID" default:"true"`
	Verbose    bool   `envconfig:"VERBOSE" default:"false"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("chartdemo", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "ggchartdemo",
		Short: "Render an animated GPU bar chart to a PNG sequence",
		Long: `ggchartdemo renders a grouped bar chart frame by frame: the bars grow
in, one series fades out mid-sequence, and a drag-select zoom is applied
near the end. Frames are written as PNG files to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	rootCmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in pixels")
	rootCmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "Canvas height in pixels")
	rootCmd.Flags().IntVar(&cfg.Frames, "frames", cfg.Frames, "Number of frames to render")
	rootCmd.Flags().StringVarP(&cfg.OutDir, "out", "o", cfg.OutDir, "Output directory for PNG frames")
	rootCmd.Flags().IntVar(&cfg.DurationMS, "duration", cfg.DurationMS, "Animation duration in milliseconds")
	rootCmd.Flags().BoolVar(&cfg.Grid, "grid", cfg.Grid, "Draw horizontal gridlines")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// stepClock drives the animator from the render loop instead of a
// timer, so every run produces the same frames.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Request(func(time.Time)) {}
func (c *stepClock) Cancel()                 {}
func (c *stepClock) Now() time.Time          { return c.now }

func run(cfg Config) error {
	if cfg.Verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data := demoDataset()
	bar := &chart.BarChart{Data: data}
	barMin, barMax := data.ValueRange()
	trend := &chart.LineChart{
		Data:         trendDataset(data),
		MarkerRadius: 3,
		Range:        &chart.Range{Min: barMin, Max: barMax},
	}

	renderer := ggchart.NewRenderer()
	if err := renderer.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, "GPU unavailable, rendering decorations only:", err)
	}
	defer renderer.Destroy()

	vp := ggchart.NewViewport()
	plot := chart.PlotArea(float64(cfg.Width), float64(cfg.Height), chart.DefaultMargins())
	vp.SetPlotRect(plot)

	clock := &stepClock{now: time.Now()}
	anim := ggchart.NewAnimator(
		ggchart.WithFrameClock(clock),
		ggchart.WithDuration(time.Duration(cfg.DurationMS)*time.Millisecond),
	)
	defer anim.Close()
	anim.SetSeriesCount(len(data.Series))
	anim.StartEntrance()

	ov, err := overlay.New(12)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	min, max := barMin, barMax
	hidden := map[int]bool{}
	buf := make([]byte, cfg.Width*cfg.Height*4)
	target := gg.GPURenderTarget{
		Data:   buf,
		Width:  cfg.Width,
		Height: cfg.Height,
		Stride: cfg.Width * 4,
	}

	for i := 0; i < cfg.Frames; i++ {
		clock.now = clock.now.Add(16 * time.Millisecond)
		anim.Advance(clock.now)

		// One third in: fade out the middle series.
		if i == cfg.Frames/3 {
			hidden = map[int]bool{1: true}
			anim.SetHiddenSeries(hidden)
		}
		// Two thirds in: zoom into the left half with a drag selection.
		if i == cfg.Frames*2/3 {
			vp.PointerDown(ggchart.PointerEvent{
				X: plot.X + 2, Y: plot.Y + 10, Button: ggchart.ButtonPrimary,
			})
			vp.PointerMove(ggchart.PointerEvent{X: plot.X + plot.W/2, Y: plot.Y + 10})
			vp.PointerUp(ggchart.PointerEvent{})
		}

		frame := ggchart.Frame{Background: gg.White}
		bar.AppendTo(&frame, vp, anim.Entrance(), anim.Visibility())
		// Overall trend line on top of the bars; not legend-toggleable,
		// so it bypasses the visibility track.
		trend.AppendTo(&frame, vp, anim.Entrance(), nil)

		if renderer.Ready() {
			if err := renderer.Draw(target, frame); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		} else {
			fillWhite(buf)
		}

		if err := writeFrame(cfg, i, buf, ov, vp, data, min, max, hidden); err != nil {
			return err
		}
	}

	fmt.Printf("wrote %d frames to %s\n", cfg.Frames, cfg.OutDir)
	return nil
}

// writeFrame composites the decorations over the rendered pixels and
// saves the result as a PNG.
func writeFrame(cfg Config, idx int, buf []byte, ov *overlay.Overlay,
	vp *ggchart.Viewport, data chart.Dataset, min, max float64, hidden map[int]bool) error {

	img := &image.RGBA{
		Pix:    buf,
		Stride: cfg.Width * 4,
		Rect:   image.Rect(0, 0, cfg.Width, cfg.Height),
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()

	lo, hi := vp.ApplyToRange(min, max, ggchart.AxisY)
	ov.Draw(dc, overlay.Decorations{
		Plot:    vp.PlotRect(),
		Title:   "Monthly revenue",
		XLabels: data.Labels,
		YTicks:  chart.Ticks(lo, hi, 6),
		YMin:    lo,
		YMax:    hi,
		Legend:  data.Legend(),
		Hidden:  hidden,
		Grid:    cfg.Grid,
	}, vp)

	name := filepath.Join(cfg.OutDir, fmt.Sprintf("frame_%03d.png", idx))
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func fillWhite(buf []byte) {
	for i := range buf {
		buf[i] = 0xFF
	}
}

// trendDataset reduces the demo dataset to one per-category mean series
// for the overlaid line.
func trendDataset(data chart.Dataset) chart.Dataset {
	means := make([]float64, len(data.Labels))
	for c := range data.Labels {
		var sum float64
		var n int
		for i := range data.Series {
			if c < len(data.Series[i].Values) {
				sum += data.Series[i].Values[c]
				n++
			}
		}
		if n > 0 {
			means[c] = sum / float64(n)
		}
	}
	return chart.Dataset{
		Labels: data.Labels,
		Series: []chart.Series{{Name: "trend", Color: "#5f6368", Values: means}},
	}
}

func demoDataset() chart.Dataset {
	return chart.Dataset{
		Labels: []string{"jan", "feb", "mar", "apr", "may", "jun"},
		Series: []chart.Series{
			{Name: "north", Color: "#4285f4", Values: []float64{120, 180, 150, 210, 260, 240}},
			{Name: "south", Color: "#ea4335", Values: []float64{90, 110, 140, 130, 170, 190}},
			{Name: "west", Color: "#34a853", Values: []float64{60, 95, 120, 160, 140, 200}},
		},
	}
}
