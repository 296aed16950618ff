/*
Copyright 2023 The termchart Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ticks

import (
	"math"

	"github.com/zoomplot/termchart/plot"
)

// Numeric returns human-friendly tick positions covering r, at most
// maxTicks of them, spaced on the usual 1-2-5 ladder.  The positions are
// multiples of the chosen step, so they land on round values rather than on
// the exact range endpoints.
func Numeric(r plot.Range, maxTicks int) []float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	width := r.Width()
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		// degenerate window: a single tick at its position
		return []float64{r.Min}
	}

	step := niceStep(width / float64(maxTicks))
	first := math.Ceil(r.Min/step) * step

	var out []float64
	for v := first; v <= r.Max+step/1e6; v += step {
		out = append(out, v)
		if len(out) >= maxTicks {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, r.Min)
	}
	return out
}

// niceStep rounds raw up to the nearest 1, 2, or 5 times a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
