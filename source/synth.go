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

package source

import (
	"math"
	"math/rand"
	"time"

	"github.com/zoomplot/termchart/plot"
	"github.com/zoomplot/termchart/ticks"
)

// Sine returns a sine-wave series of n samples ending at end, one sample
// per step, oscillating around mid with the given amplitude.
func Sine(title string, id plot.SeriesID, n int, end time.Time, step time.Duration, mid, amplitude float64) *MemSeries {
	pts := make([]plot.Point, n)
	start := end.Add(-time.Duration(n-1) * step)
	for i := range pts {
		t := start.Add(time.Duration(i) * step)
		pts[i] = XY{
			XV: ticks.UnixMillis(t),
			YV: mid + amplitude*math.Sin(float64(i)/8),
		}
	}
	return NewMemSeries(title, id, pts)
}

// RandomWalk returns a random-walk series of n samples ending at end,
// seeded deterministically so demo runs are reproducible.
func RandomWalk(title string, id plot.SeriesID, n int, end time.Time, step time.Duration, start, drift float64) *MemSeries {
	rng := rand.New(rand.NewSource(int64(id)))
	pts := make([]plot.Point, n)
	first := end.Add(-time.Duration(n-1) * step)
	v := start
	for i := range pts {
		t := first.Add(time.Duration(i) * step)
		v += (rng.Float64() - 0.5) * drift
		pts[i] = XY{XV: ticks.UnixMillis(t), YV: v}
	}
	return NewMemSeries(title, id, pts)
}
