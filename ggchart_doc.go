// Package ggchart provides a GPU-accelerated chart rendering engine for Go.
//
// # Overview
//
// ggchart draws geometric chart primitives (bars, line segments, point
// markers, timeline bars) through a single batched GPU draw call per frame,
// while text (axes, tick labels, legends) is composed on a separate raster
// overlay. It is built on the GoGPU ecosystem: the renderer speaks WebGPU
// via gogpu/wgpu, and the overlay layer uses gogpu/gg for immediate-mode
// 2D drawing and text.
//
// The engine has three cooperating parts:
//
//   - Renderer: converts a frame's rectangles, segments, and disks into one
//     triangle list, renders it through a 4x-MSAA pipeline, and resolves to
//     either a CPU pixel target or a caller-provided surface view. Supports
//     scissor clipping for zoomed views.
//   - Viewport: a pointer-gesture state machine producing a fractional
//     zoom window over the data range, with axis-locked drag selection,
//     clamped panning, and double-click reset.
//   - Animator: two independent interpolation tracks (one-shot entrance,
//     per-series visibility fades) driving a render callback through a
//     self-stopping redraw loop.
//
// # Quick Start
//
//	r := ggchart.NewRenderer()
//	if err := r.Initialize(); err != nil {
//	    // r.Fallback() is now true; show a textual notice instead.
//	}
//	defer r.Destroy()
//
//	target := gg.GPURenderTarget{Data: make([]uint8, 800*600*4), Width: 800, Height: 600, Stride: 800 * 4}
//	frame := ggchart.Frame{
//	    Rects:      []ggchart.Rect{{X: 10, Y: 10, W: 40, H: 200, Color: ggchart.ParseColor("#4285f4")}},
//	    Background: gg.White,
//	}
//	r.Draw(target, frame)
//
// Chart components that assemble primitive lists from datasets live in the
// chart subpackage; the raster text overlay lives in the overlay subpackage.
//
// # Coordinate System
//
// All primitive coordinates are in canvas pixel space: origin at top-left,
// X right, Y down. The renderer converts to normalized device coordinates
// internally.
//
// # Threading
//
// A chart instance (Renderer + Viewport + Animator) is owned by one
// goroutine; mutation is serialized by the host's event dispatch. The
// Animator is internally synchronized because the default frame clock
// delivers ticks from a timer goroutine.
package ggchart
