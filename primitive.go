package ggchart

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gg"
)

// Chart primitives. All coordinates are canvas pixels with the origin at
// the top-left corner, X growing right and Y growing down. Colors are
// straight-alpha RGBA in [0, 1].

// Rect is an axis-aligned filled rectangle (bars, stacked segments,
// timeline bars, selection fills).
type Rect struct {
	X, Y, W, H float64
	Color      gg.RGBA
}

// Segment is a line segment with a pixel thickness, expanded to an
// oriented quad around its centerline.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          gg.RGBA
}

// Disk is a filled circle (point markers), approximated by a triangle fan.
type Disk struct {
	CX, CY, R float64
	Color     gg.RGBA
}

// ClipRect is a pixel-space scissor rectangle applied to primitive
// rasterization. Used for zoomed views so geometry outside the plot
// area is discarded.
type ClipRect struct {
	X, Y, W, H float64
}

// Frame is one frame's worth of primitives plus the clear color and an
// optional clip. It is the unit of work for Renderer.Draw.
type Frame struct {
	Rects    []Rect
	Segments []Segment
	Disks    []Disk

	// Background is the render pass clear color. The zero value clears
	// to transparent black.
	Background gg.RGBA

	// Clip, when non-nil, restricts rasterization to the given pixel
	// rectangle (clamped to the canvas). Nil disables clipping.
	Clip *ClipRect
}

// DefaultDiskSegments is the triangle count used to approximate one disk.
const DefaultDiskSegments = 24

// vertexFloats is the number of float32 values per vertex:
// position (x, y) + color (r, g, b, a).
const vertexFloats = 6

// vertexStride is the byte stride per vertex.
const vertexStride = vertexFloats * 4

// VertexCount returns the number of triangle-list vertices the frame
// expands to: 6 per rect, 6 per segment, 3*diskSegments per disk.
func (f *Frame) VertexCount(diskSegments int) int {
	if diskSegments <= 0 {
		diskSegments = DefaultDiskSegments
	}
	return 6*len(f.Rects) + 6*len(f.Segments) + 3*diskSegments*len(f.Disks)
}

// ndcX converts a pixel X coordinate to normalized device coordinates.
// Pixel 0 maps to -1, pixel w maps to +1.
func ndcX(px float64, w uint32) float32 {
	return float32(px/float64(w)*2 - 1)
}

// ndcY converts a pixel Y coordinate to normalized device coordinates.
// Pixel 0 (top) maps to +1, pixel h (bottom) maps to -1.
func ndcY(py float64, h uint32) float32 {
	return float32(1 - py/float64(h)*2)
}

// buildVertices expands the frame's primitives into a single interleaved
// triangle-list vertex slice (pos float32x2 + color float32x4) in NDC.
// Primitive order is rects, then segments, then disks; later vertices
// paint over earlier ones under alpha blending.
func buildVertices(f *Frame, w, h uint32, diskSegments int) []float32 {
	if diskSegments <= 0 {
		diskSegments = DefaultDiskSegments
	}
	verts := make([]float32, 0, f.VertexCount(diskSegments)*vertexFloats)

	push := func(x, y float64, c gg.RGBA) {
		verts = append(verts,
			ndcX(x, w), ndcY(y, h),
			float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	}

	// Rects: two triangles per rectangle.
	for i := range f.Rects {
		r := &f.Rects[i]
		x0, y0 := r.X, r.Y
		x1, y1 := r.X+r.W, r.Y+r.H
		push(x0, y0, r.Color)
		push(x1, y0, r.Color)
		push(x1, y1, r.Color)
		push(x0, y0, r.Color)
		push(x1, y1, r.Color)
		push(x0, y1, r.Color)
	}

	// Segments: one quad per segment, offset along the perpendicular of
	// the direction vector by half the stroke width.
	for i := range f.Segments {
		s := &f.Segments[i]
		dx := s.X2 - s.X1
		dy := s.Y2 - s.Y1
		length := math.Hypot(dx, dy)
		if length == 0 {
			// Degenerate segment: pick an arbitrary direction so the
			// quad still has the requested thickness.
			length = 1
		}
		// Perpendicular unit normal scaled to half width.
		nx := -dy / length * s.Width / 2
		ny := dx / length * s.Width / 2

		ax0, ay0 := s.X1+nx, s.Y1+ny
		ax1, ay1 := s.X1-nx, s.Y1-ny
		bx0, by0 := s.X2+nx, s.Y2+ny
		bx1, by1 := s.X2-nx, s.Y2-ny

		push(ax0, ay0, s.Color)
		push(bx0, by0, s.Color)
		push(bx1, by1, s.Color)
		push(ax0, ay0, s.Color)
		push(bx1, by1, s.Color)
		push(ax1, ay1, s.Color)
	}

	// Disks: triangle fan around the center, unrolled into a list.
	for i := range f.Disks {
		d := &f.Disks[i]
		step := 2 * math.Pi / float64(diskSegments)
		for k := 0; k < diskSegments; k++ {
			a0 := float64(k) * step
			a1 := float64(k+1) * step
			push(d.CX, d.CY, d.Color)
			push(d.CX+d.R*math.Cos(a0), d.CY+d.R*math.Sin(a0), d.Color)
			push(d.CX+d.R*math.Cos(a1), d.CY+d.R*math.Sin(a1), d.Color)
		}
	}

	return verts
}

// vertexBytes serializes the vertex slice to the little-endian byte layout
// the GPU vertex buffer expects.
func vertexBytes(verts []float32) []byte {
	out := make([]byte, len(verts)*4)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// clampClip clamps a clip rectangle to the canvas and converts it to
// integer scissor coordinates. ok is false when the clamped rectangle is
// empty, in which case the scissor must be skipped.
func clampClip(c *ClipRect, w, h uint32) (x, y, cw, ch uint32, ok bool) {
	if c == nil {
		return 0, 0, 0, 0, false
	}
	x0 := math.Max(0, c.X)
	y0 := math.Max(0, c.Y)
	x1 := math.Min(float64(w), c.X+c.W)
	y1 := math.Min(float64(h), c.Y+c.H)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return uint32(x0), uint32(y0), uint32(x1 - x0), uint32(y1 - y0), true
}
