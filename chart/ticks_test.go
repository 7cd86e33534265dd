package chart

import (
	"math"
	"testing"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		maxTicks int
		values   []float64
		labels   []string
	}{
		{
			name: "zero to ten", min: 0, max: 10, maxTicks: 5,
			values: []float64{0, 2, 4, 6, 8, 10},
			labels: []string{"0", "2", "4", "6", "8", "10"},
		},
		{
			name: "unit range", min: 0, max: 1, maxTicks: 5,
			values: []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
			labels: []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0"},
		},
		{
			name: "thousands grouped", min: 0, max: 1500, maxTicks: 5,
			values: []float64{0, 500, 1000, 1500},
			labels: []string{"0", "500", "1,000", "1,500"},
		},
		{
			name: "negative range", min: -10, max: 10, maxTicks: 5,
			values: []float64{-10, -5, 0, 5, 10},
			labels: []string{"-10", "-5", "0", "5", "10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := Ticks(tt.min, tt.max, tt.maxTicks)
			if len(ticks) != len(tt.values) {
				t.Fatalf("got %d ticks, want %d: %+v", len(ticks), len(tt.values), ticks)
			}
			for i, tick := range ticks {
				if math.Abs(tick.Value-tt.values[i]) > 1e-9 {
					t.Errorf("tick %d value = %v, want %v", i, tick.Value, tt.values[i])
				}
				if tick.Label != tt.labels[i] {
					t.Errorf("tick %d label = %q, want %q", i, tick.Label, tt.labels[i])
				}
			}
		})
	}
}

func TestTicksDegenerate(t *testing.T) {
	ticks := Ticks(5, 5, 5)
	if len(ticks) != 1 || ticks[0].Value != 5 {
		t.Fatalf("equal bounds: got %+v, want single tick at 5", ticks)
	}

	ticks = Ticks(10, 0, 5)
	if len(ticks) == 0 {
		t.Fatal("inverted bounds produced no ticks")
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not ascending: %+v", ticks)
		}
	}
}

func TestTicksStayInRange(t *testing.T) {
	ticks := Ticks(3.2, 97.8, 6)
	if len(ticks) < 2 {
		t.Fatalf("got %d ticks, want at least 2", len(ticks))
	}
	step := ticks[1].Value - ticks[0].Value
	for _, tick := range ticks {
		if tick.Value < 3.2-step/2 || tick.Value > 97.8+step/2 {
			t.Errorf("tick %v outside padded range", tick.Value)
		}
	}
}
