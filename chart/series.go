package chart

import "math"

// Series is one named value sequence with a CSS color. Values align with
// the dataset's category labels by index.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// Dataset is a category-labeled collection of series, the input to bar,
// line, and stacked components.
type Dataset struct {
	Labels []string
	Series []Series
}

// ValueRange returns the min and max across all series, widened to
// include zero so bar baselines stay on the axis. An empty dataset
// returns (0, 1).
func (d *Dataset) ValueRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := range d.Series {
		for _, v := range d.Series[i].Values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0, 1
	}
	if min > 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min == max {
		max = min + 1
	}
	return min, max
}

// StackedRange returns the value range of cumulative per-category sums,
// used by stacked bars. Negative values stack downward.
func (d *Dataset) StackedRange() (min, max float64) {
	min, max = 0, 0
	for c := range d.Labels {
		var up, down float64
		for i := range d.Series {
			if c >= len(d.Series[i].Values) {
				continue
			}
			v := d.Series[i].Values[c]
			if v >= 0 {
				up += v
			} else {
				down += v
			}
		}
		if up > max {
			max = up
		}
		if down < min {
			min = down
		}
	}
	if min == max {
		max = min + 1
	}
	return min, max
}
