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

package plot

// Range is a closed interval on one axis, in data coordinates.
type Range struct {
	Min, Max float64
}

// Width returns the span of the range.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v falls inside the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Union returns the smallest range covering both r and other.
func (r Range) Union(other Range) Range {
	if other.Min < r.Min {
		r.Min = other.Min
	}
	if other.Max > r.Max {
		r.Max = other.Max
	}
	return r
}

// ZoomWindow is the zoom state of a single axis: either unzoomed (the
// renderer should fit the data extent) or pinned to an explicit range.
// The zero value is unzoomed.
type ZoomWindow struct {
	zoomed bool
	rng    Range
}

// Unzoomed returns the unpinned window.
func Unzoomed() ZoomWindow {
	return ZoomWindow{}
}

// Zoomed pins the window to [min, max].  The bounds are swapped if given in
// reverse order.  min == max is a legal degenerate window -- renderers must
// display it (as a flat view), not reject it.
func Zoomed(min, max float64) ZoomWindow {
	if min > max {
		min, max = max, min
	}
	return ZoomWindow{zoomed: true, rng: Range{Min: min, Max: max}}
}

// IsZoomed reports whether the window is pinned to an explicit range.
func (w ZoomWindow) IsZoomed() bool {
	return w.zoomed
}

// Bounds returns the pinned range.  The second return is false for an
// unzoomed window, in which case the range is meaningless.
func (w ZoomWindow) Bounds() (Range, bool) {
	return w.rng, w.zoomed
}

// AxisRange is what a renderer should display on one axis: either the exact
// pinned range, or (AutoFit) an instruction to take the tight data extent
// and pad it by a fixed pixel-equivalent amount on each side.
type AxisRange struct {
	Range
	AutoFit bool
}

// Resolve turns an AxisRange into a concrete range given the tight data
// extent, the number of screen cells the axis spans, and the number of cells
// of padding to apply on each side when auto-fitting.  Zoomed ranges come
// back exactly as pinned, with no padding.
func (a AxisRange) Resolve(extent Range, axisCells, padCells int) Range {
	if !a.AutoFit {
		return a.Range
	}
	span := axisCells - 2*padCells
	if span < 1 {
		span = 1
	}
	pad := extent.Width() / float64(span) * float64(padCells)
	if pad == 0 {
		// flat extent still gets breathing room
		pad = 1
	}
	return Range{Min: extent.Min - pad, Max: extent.Max + pad}
}
