package ggchart

import "time"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := ggchart.NewRenderer(ggchart.WithDiskSegments(48))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	diskSegments int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		diskSegments: DefaultDiskSegments,
	}
}

// WithDiskSegments sets the triangle count used to approximate one disk.
// Higher values give rounder point markers at the cost of more vertices.
// Values below 3 are ignored.
func WithDiskSegments(n int) RendererOption {
	return func(o *rendererOptions) {
		if n >= 3 {
			o.diskSegments = n
		}
	}
}

// DefaultAnimationDuration is the duration of the entrance and visibility
// tracks when no option overrides it.
const DefaultAnimationDuration = 600 * time.Millisecond

// AnimOption configures an Animator during creation.
type AnimOption func(*animOptions)

// animOptions holds optional configuration for Animator creation.
type animOptions struct {
	duration time.Duration
	enabled  bool
	clock    FrameClock
}

func defaultAnimOptions() animOptions {
	return animOptions{
		duration: DefaultAnimationDuration,
		enabled:  true,
	}
}

// WithDuration sets the duration of both animation tracks. Non-positive
// values are clamped to one millisecond so tracks always terminate.
func WithDuration(d time.Duration) AnimOption {
	return func(o *animOptions) {
		if d <= 0 {
			d = time.Millisecond
		}
		o.duration = d
	}
}

// WithAnimations enables or disables animated transitions. When disabled,
// the entrance track reports full progress immediately and visibility
// changes snap to their targets with a single callback.
func WithAnimations(enabled bool) AnimOption {
	return func(o *animOptions) {
		o.enabled = enabled
	}
}

// WithFrameClock replaces the default ticker-based frame clock. Hosts with
// their own frame loop (or tests with synthetic timestamps) provide a
// custom clock and drive Advance themselves.
func WithFrameClock(c FrameClock) AnimOption {
	return func(o *animOptions) {
		if c != nil {
			o.clock = c
		}
	}
}
