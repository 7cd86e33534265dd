// Package overlay draws the CPU-rendered chart decorations: axis lines,
// tick labels, category labels, the legend, and the zoom selection
// rectangle. It composites on top of the GPU-rendered data layer using
// a gg drawing context, so hosts without a GPU still get complete
// decorations around a software-rendered plot.
package overlay
