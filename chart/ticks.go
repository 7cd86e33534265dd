package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tick is one labeled position on a value axis.
type Tick struct {
	Value float64
	Label string
}

// tickPrinter renders tick labels with locale-aware digit grouping
// (1,500 rather than 1500).
var tickPrinter = message.NewPrinter(language.English)

// Ticks computes at most maxTicks nice round tick values covering
// [min, max]. The classic nice-number loose labeling: the step is a
// power of ten times 1, 2, or 5, and ticks snap onto multiples of it.
func Ticks(min, max float64, maxTicks int) []Tick {
	if maxTicks < 2 {
		maxTicks = 2
	}
	if math.IsNaN(min) || math.IsNaN(max) || min == max {
		return []Tick{{Value: min, Label: formatTick(min, 0)}}
	}
	if min > max {
		min, max = max, min
	}

	rng := niceNum(max-min, false)
	step := niceNum(rng/float64(maxTicks-1), true)
	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step

	decimals := 0
	if f := -math.Floor(math.Log10(step)); f > 0 {
		decimals = int(f)
	}

	var ticks []Tick
	for v := lo; v <= hi+step/2; v += step {
		if v < min-step/2 || v > max+step/2 {
			continue
		}
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v, decimals)})
	}
	return ticks
}

// niceNum rounds x to a nice value: 1, 2, or 5 times a power of ten.
func niceNum(x float64, round bool) float64 {
	if x <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)

	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// formatTick renders a tick value with the given number of decimals.
func formatTick(v float64, decimals int) string {
	// Avoid "-0" labels from float drift.
	if v == 0 {
		v = 0
	}
	return tickPrinter.Sprintf("%.*f", decimals, v)
}
