package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// Axis identifies a zoomable chart axis.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ZoomRange is the visible window over the full data range, expressed as
// fractions in [0, 1] per axis. XMin < XMax and YMin < YMax always hold;
// the full range is {0, 1, 0, 1}. Y fractions follow the data direction:
// YMin is the bottom of the visible window, YMax the top.
type ZoomRange struct {
	XMin, XMax float64
	YMin, YMax float64
}

// FullZoom returns the unzoomed range covering all data.
func FullZoom() ZoomRange {
	return ZoomRange{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
}

// SpanX returns the visible fraction of the X axis.
func (z ZoomRange) SpanX() float64 { return z.XMax - z.XMin }

// SpanY returns the visible fraction of the Y axis.
func (z ZoomRange) SpanY() float64 { return z.YMax - z.YMin }

// zoomedEpsilon guards against float drift when deciding whether a range
// still counts as fully zoomed out.
const zoomedEpsilon = 1e-9

// IsZoomed reports whether the range differs from the full range.
func (z ZoomRange) IsZoomed() bool {
	return z.XMin > zoomedEpsilon || z.XMax < 1-zoomedEpsilon ||
		z.YMin > zoomedEpsilon || z.YMax < 1-zoomedEpsilon
}

// PointerButton identifies the pressed pointer button.
type PointerButton int

const (
	// ButtonPrimary is the left / primary button (drag selection).
	ButtonPrimary PointerButton = iota
	// ButtonSecondary is the right / secondary button (panning).
	ButtonSecondary
)

// PointerEvent is a container-relative pointer event in canvas pixels.
// The core takes plain structs so hosts (window systems, tests) map their
// native events without a dependency from this package.
type PointerEvent struct {
	X, Y   float64
	Button PointerButton
}

// PlotRect is the pixel rectangle of the plot area inside the canvas,
// excluding axis margins.
type PlotRect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (p PlotRect) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.W && y >= p.Y && y <= p.Y+p.H
}

// SelectionStyle describes how the host should paint the drag-selection
// overlay rectangle.
type SelectionStyle struct {
	Fill   gg.RGBA
	Border gg.RGBA
}

// Gesture thresholds in pixels.
const (
	// axisLockThreshold is the drag distance after which a selection
	// locks to its dominant axis.
	axisLockThreshold = 5.0

	// commitThreshold is the minimum locked-axis span for a selection to
	// commit as a zoom; shorter drags are treated as accidental clicks.
	commitThreshold = 8.0
)

// dragKind is the active drag session type.
type dragKind int

const (
	dragNone dragKind = iota
	dragSelect
	dragPan
)

// Viewport owns the zoom window and the pointer-gesture state machine
// that mutates it: axis-locked drag selection with the primary button,
// span-preserving panning with the secondary button while zoomed,
// double-click reset, and context-menu suppression inside the plot.
//
// Every pointer handler returns whether it consumed the event so the host
// can decide whether to run its own hit handling (tooltips, legend
// clicks) for unconsumed events.
//
// A Viewport is not safe for concurrent use; it is driven from the host's
// event dispatch.
type Viewport struct {
	zoom ZoomRange
	plot PlotRect

	kind           dragKind
	startX, startY float64
	curX, curY     float64
	locked         bool
	lockedAxis     Axis

	panStartX, panStartY float64
	panZoom              ZoomRange

	style SelectionStyle
}

// NewViewport creates a viewport at full zoom.
func NewViewport() *Viewport {
	return &Viewport{
		zoom: FullZoom(),
		style: SelectionStyle{
			Fill:   gg.RGBA{R: 0.26, G: 0.52, B: 0.96, A: 0.15},
			Border: gg.RGBA{R: 0.26, G: 0.52, B: 0.96, A: 0.8},
		},
	}
}

// SetPlotRect updates the plot rectangle gestures are measured against.
// Call whenever layout changes.
func (v *Viewport) SetPlotRect(p PlotRect) { v.plot = p }

// PlotRect returns the current plot rectangle.
func (v *Viewport) PlotRect() PlotRect { return v.plot }

// Zoom returns the current zoom window.
func (v *Viewport) Zoom() ZoomRange { return v.zoom }

// SetZoom replaces the zoom window, clamping it into [0, 1] per axis.
// Inverted or empty pairs reset that axis to full range.
func (v *Viewport) SetZoom(z ZoomRange) {
	v.zoom.XMin, v.zoom.XMax = sanitizePair(z.XMin, z.XMax)
	v.zoom.YMin, v.zoom.YMax = sanitizePair(z.YMin, z.YMax)
}

// sanitizePair clamps a fraction pair into [0, 1], resetting degenerate
// input to the full axis.
func sanitizePair(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || hi <= lo {
		return 0, 1
	}
	lo = math.Max(0, lo)
	hi = math.Min(1, hi)
	if hi <= lo {
		return 0, 1
	}
	return lo, hi
}

// IsZoomed reports whether any axis is narrower than the full range.
func (v *Viewport) IsZoomed() bool { return v.zoom.IsZoomed() }

// Reset restores the full range and clears any drag session.
func (v *Viewport) Reset() {
	v.zoom = FullZoom()
	v.clearDrag()
}

// Dragging reports whether a drag session (selection or pan) is active.
func (v *Viewport) Dragging() bool { return v.kind != dragNone }

// SelectionStyle returns the overlay paint style for the drag rectangle.
func (v *Viewport) SelectionStyle() SelectionStyle { return v.style }

// SetSelectionStyle overrides the overlay paint style.
func (v *Viewport) SetSelectionStyle(s SelectionStyle) { v.style = s }

// PointerDown starts a drag session. Primary button inside the plot
// begins a selection; secondary button inside the plot begins a pan when
// zoomed. Returns whether the event was consumed.
func (v *Viewport) PointerDown(ev PointerEvent) bool {
	if !v.plot.Contains(ev.X, ev.Y) {
		return false
	}
	switch ev.Button {
	case ButtonPrimary:
		v.kind = dragSelect
		v.startX, v.startY = ev.X, ev.Y
		v.curX, v.curY = ev.X, ev.Y
		v.locked = false
		return true
	case ButtonSecondary:
		if !v.IsZoomed() {
			return false
		}
		v.kind = dragPan
		v.panStartX, v.panStartY = ev.X, ev.Y
		v.panZoom = v.zoom
		return true
	}
	return false
}

// PointerMove advances the active drag session. Selection moves lock to
// the dominant axis once the drag exceeds the lock threshold; pan moves
// translate the zoom window with span-preserving clamping. Returns
// whether the event was consumed.
func (v *Viewport) PointerMove(ev PointerEvent) bool {
	switch v.kind {
	case dragSelect:
		v.curX, v.curY = ev.X, ev.Y
		if !v.locked {
			dx := math.Abs(v.curX - v.startX)
			dy := math.Abs(v.curY - v.startY)
			if dx >= axisLockThreshold || dy >= axisLockThreshold {
				v.locked = true
				if dx >= dy {
					v.lockedAxis = AxisX
				} else {
					v.lockedAxis = AxisY
				}
			}
		}
		return true

	case dragPan:
		v.panBy(ev.X-v.panStartX, ev.Y-v.panStartY)
		return true
	}
	return false
}

// panBy translates the gesture-start zoom window by the total pixel
// delta since the pan began, then clamps. Recomputing from the start
// window keeps the cursor and the window in lockstep: after dragging
// past an edge, reversing retraces the same path instead of unwinding
// the clamped position early. X pans opposite the pointer (dragging
// right moves the window left); Y is inverted once more because pixel
// Y grows downward while data Y grows upward.
func (v *Viewport) panBy(dx, dy float64) {
	z := v.panZoom
	if v.plot.W > 0 {
		fx := -dx / v.plot.W * z.SpanX()
		z.XMin, z.XMax = clampPan(z.XMin+fx, z.XMax+fx)
	}
	if v.plot.H > 0 {
		fy := dy / v.plot.H * z.SpanY()
		z.YMin, z.YMax = clampPan(z.YMin+fy, z.YMax+fy)
	}
	v.zoom = z
}

// clampPan pushes a fraction pair back inside [0, 1] jointly, preserving
// the span.
func clampPan(lo, hi float64) (float64, float64) {
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi > 1 {
		lo -= hi - 1
		hi = 1
	}
	return lo, hi
}

// PointerUp finishes the active drag session. A locked selection whose
// span reaches the commit threshold composes a new zoom window on its
// axis; anything shorter is discarded as an accidental click. Returns
// whether the event was consumed.
func (v *Viewport) PointerUp(_ PointerEvent) bool {
	switch v.kind {
	case dragSelect:
		v.commitSelection()
		v.clearDrag()
		return true
	case dragPan:
		v.clearDrag()
		return true
	}
	return false
}

// WindowPointerUp is the failsafe for pointer releases outside the
// canvas: it abandons any drag session without committing, so a missed
// PointerUp cannot leave a stuck selection overlay.
func (v *Viewport) WindowPointerUp() {
	v.clearDrag()
}

// DoubleClick resets the zoom when the double-click lands inside the
// plot while zoomed; unzoomed double-clicks are left to the host.
// Returns whether the event was consumed.
func (v *Viewport) DoubleClick(ev PointerEvent) bool {
	if !v.IsZoomed() || !v.plot.Contains(ev.X, ev.Y) {
		return false
	}
	v.Reset()
	return true
}

// ContextMenu reports whether the host should suppress the native context
// menu. Inside the plot the secondary button is the pan gesture, so the
// menu is always suppressed there.
func (v *Viewport) ContextMenu(ev PointerEvent) bool {
	return v.plot.Contains(ev.X, ev.Y)
}

// clearDrag ends any drag session.
func (v *Viewport) clearDrag() {
	v.kind = dragNone
	v.locked = false
}

// commitSelection composes the locked selection into the zoom window.
func (v *Viewport) commitSelection() {
	if !v.locked {
		return
	}

	var lo, hi float64
	if v.lockedAxis == AxisX {
		lo, hi = math.Min(v.startX, v.curX), math.Max(v.startX, v.curX)
	} else {
		lo, hi = math.Min(v.startY, v.curY), math.Max(v.startY, v.curY)
	}
	if hi-lo < commitThreshold {
		return
	}

	if v.lockedAxis == AxisX {
		if v.plot.W <= 0 {
			return
		}
		lo = math.Max(lo, v.plot.X)
		hi = math.Min(hi, v.plot.X+v.plot.W)
		f1 := (lo - v.plot.X) / v.plot.W
		f2 := (hi - v.plot.X) / v.plot.W
		span := v.zoom.SpanX()
		v.zoom.XMin, v.zoom.XMax = v.zoom.XMin+f1*span, v.zoom.XMin+f2*span
		return
	}

	if v.plot.H <= 0 {
		return
	}
	lo = math.Max(lo, v.plot.Y)
	hi = math.Min(hi, v.plot.Y+v.plot.H)
	// Pixel Y grows downward, data Y upward: the bottom pixel edge maps
	// to the lower data fraction.
	f1 := (v.plot.Y + v.plot.H - hi) / v.plot.H
	f2 := (v.plot.Y + v.plot.H - lo) / v.plot.H
	span := v.zoom.SpanY()
	v.zoom.YMin, v.zoom.YMax = v.zoom.YMin+f1*span, v.zoom.YMin+f2*span
}

// Selection returns the overlay rectangle of an axis-locked selection in
// canvas pixels. The rectangle spans the full plot on the unlocked axis.
// ok is false when no locked selection is in progress.
func (v *Viewport) Selection() (rect PlotRect, ok bool) {
	if v.kind != dragSelect || !v.locked {
		return PlotRect{}, false
	}
	if v.lockedAxis == AxisX {
		lo := math.Max(math.Min(v.startX, v.curX), v.plot.X)
		hi := math.Min(math.Max(v.startX, v.curX), v.plot.X+v.plot.W)
		if hi < lo {
			return PlotRect{}, false
		}
		return PlotRect{X: lo, Y: v.plot.Y, W: hi - lo, H: v.plot.H}, true
	}
	lo := math.Max(math.Min(v.startY, v.curY), v.plot.Y)
	hi := math.Min(math.Max(v.startY, v.curY), v.plot.Y+v.plot.H)
	if hi < lo {
		return PlotRect{}, false
	}
	return PlotRect{X: v.plot.X, Y: lo, W: v.plot.W, H: hi - lo}, true
}

// ApplyToRange narrows a data range to the visible zoom window on the
// given axis: value charts pass their axis min/max and plot the returned
// sub-range.
func (v *Viewport) ApplyToRange(min, max float64, axis Axis) (float64, float64) {
	var lo, hi float64
	if axis == AxisX {
		lo, hi = v.zoom.XMin, v.zoom.XMax
	} else {
		lo, hi = v.zoom.YMin, v.zoom.YMax
	}
	span := max - min
	return min + lo*span, min + hi*span
}

// EffectiveExtent returns the virtual pixel extent a category axis should
// lay out against: size is the plot extent divided by the visible span,
// and start is offset so the visible window aligns with the plot edge.
// For X a category at data fraction f sits at start + f*size; for Y (with
// pixel Y growing downward) it sits at start + (1-f)*size.
func (v *Viewport) EffectiveExtent(axis Axis) (start, size float64) {
	if axis == AxisX {
		span := v.zoom.SpanX()
		if span <= 0 || v.plot.W <= 0 {
			return v.plot.X, v.plot.W
		}
		size = v.plot.W / span
		start = v.plot.X - v.zoom.XMin*size
		return start, size
	}
	span := v.zoom.SpanY()
	if span <= 0 || v.plot.H <= 0 {
		return v.plot.Y, v.plot.H
	}
	size = v.plot.H / span
	start = v.plot.Y - (1-v.zoom.YMax)*size
	return start, size
}
