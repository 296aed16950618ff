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

import (
	"math"
)

// SeriesID identifies some series.  The zero value is reserved for unset.
type SeriesID uint16

const NoSeries = SeriesID(0)

type SeriesSet []Series

// Point is a single plotted sample.  X is the domain position (for time
// axes, milliseconds since the unix epoch so that sub-second positions
// survive the conversion to float), Y is the value.
type Point interface {
	X() float64
	Y() float64
}

type Series interface {
	Title() string

	// ID should be unique in a given SeriesSet, and should be consistent
	// across refreshes to ensure things like coloring and ordering stay
	// consistent.  It must not be NoSeries.
	ID() SeriesID

	// Points *must* have a domain that is monotonically increasing
	Points() []Point
}

// DataExtent returns the tight bounding ranges of every point in the set.
// ok is false when the set contains no points at all.
func DataExtent(set SeriesSet) (x, y Range, ok bool) {
	x = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	y = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, series := range set {
		for _, pt := range series.Points() {
			px, py := pt.X(), pt.Y()
			if px < x.Min {
				x.Min = px
			}
			if px > x.Max {
				x.Max = px
			}
			if py < y.Min {
				y.Min = py
			}
			if py > y.Max {
				y.Max = py
			}
			ok = true
		}
	}
	if !ok {
		return Range{}, Range{}, false
	}
	return x, y, true
}

// Graph binds a series set to the axis ranges actually on display.  Unlike
// the data extent, X and Y may be pinned by zoom windows, so points can fall
// outside them; rendering clips those away.
type Graph struct {
	X, Y Range

	Series SeriesSet
}

type Row int
type Column int

type ScreenSize struct {
	Rows Row
	Cols Column
}

// Projectors returns the data-to-screen mapping functions for this graph on
// a screen of the given size.  Values outside the graph ranges map outside
// [0, size); callers are expected to clip.
func (g Graph) Projectors(size ScreenSize) (func(float64) Column, func(float64) Row) {
	// subtract one so that g.X.Max --> Cols-1 < Cols, and likewise for rows

	// degenerate (single-point or pinned-flat) ranges still need a finite
	// scale factor
	domainDiff := g.X.Width()
	rangeDiff := g.Y.Width()
	if domainDiff == 0 {
		domainDiff = 1
	}
	if rangeDiff == 0 {
		rangeDiff = 1
	}
	domainScale := float64(size.Cols-1) / domainDiff
	rangeScale := float64(size.Rows-1) / rangeDiff

	domain := func(x float64) Column {
		return Column(math.Round((x - g.X.Min) * domainScale))
	}
	rng := func(y float64) Row {
		return Row(math.Round((y - g.Y.Min) * rangeScale))
	}
	return domain, rng
}

// Unproject is the inverse of Projectors: it maps a screen cell back to the
// exact data coordinate at its position.  Rows count down from the top of
// the inner plot area, as drawn.
func (g Graph) Unproject(size ScreenSize, row Row, col Column) (x, y float64) {
	cols, rows := float64(size.Cols-1), float64(size.Rows-1)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	x = g.X.Min + float64(col)/cols*g.X.Width()
	// rows are drawn top-down but values grow bottom-up
	y = g.Y.Min + float64(Row(size.Rows)-1-row)/rows*g.Y.Width()
	return x, y
}
