// Package chart assembles renderable primitive frames from typed datasets.
//
// Each chart component (Bar, Line, Scatter, StackedBar, Timeline) takes a
// dataset, the current viewport, and the animator's entrance/visibility
// state, and appends rectangles, segments, and disks to a ggchart.Frame.
// The GPU renderer draws the frame; axis text and legends are composed
// separately by the overlay package.
//
// Components never talk to the GPU and are fully deterministic, so chart
// geometry is unit-testable without a device.
package chart
