package ggchart

import (
	"testing"
	"time"
)

func TestDefaultRendererOptions(t *testing.T) {
	o := defaultRendererOptions()
	if o.diskSegments != DefaultDiskSegments {
		t.Errorf("diskSegments = %d, want %d", o.diskSegments, DefaultDiskSegments)
	}
}

func TestWithDiskSegments(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "valid", n: 48, want: 48},
		{name: "minimum", n: 3, want: 3},
		{name: "too small ignored", n: 2, want: DefaultDiskSegments},
		{name: "negative ignored", n: -1, want: DefaultDiskSegments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultRendererOptions()
			WithDiskSegments(tt.n)(&o)
			if o.diskSegments != tt.want {
				t.Errorf("diskSegments = %d, want %d", o.diskSegments, tt.want)
			}
		})
	}
}

func TestDefaultAnimOptions(t *testing.T) {
	o := defaultAnimOptions()
	if o.duration != DefaultAnimationDuration {
		t.Errorf("duration = %v, want %v", o.duration, DefaultAnimationDuration)
	}
	if !o.enabled {
		t.Error("animations disabled by default")
	}
	if o.clock != nil {
		t.Error("default options should not carry a clock")
	}
}

func TestWithDuration(t *testing.T) {
	o := defaultAnimOptions()
	WithDuration(250 * time.Millisecond)(&o)
	if o.duration != 250*time.Millisecond {
		t.Errorf("duration = %v, want 250ms", o.duration)
	}

	// Non-positive durations clamp so tracks still terminate.
	WithDuration(0)(&o)
	if o.duration != time.Millisecond {
		t.Errorf("duration = %v, want clamped 1ms", o.duration)
	}
	WithDuration(-time.Second)(&o)
	if o.duration != time.Millisecond {
		t.Errorf("duration = %v, want clamped 1ms", o.duration)
	}
}

func TestWithFrameClockNilIgnored(t *testing.T) {
	o := defaultAnimOptions()
	WithFrameClock(nil)(&o)
	if o.clock != nil {
		t.Error("nil clock should be ignored")
	}
}
