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
	"github.com/mattn/go-runewidth"
)

// AxisTick is a labeled position on one axis, in data coordinates.  Label
// generation is the caller's business (see the ticks and ticklabel
// packages); this package only lays ticks out on the screen.
type AxisTick struct {
	Value float64
	Label string
}

type DomainTick struct {
	Col   Column
	Value float64
	Label string
}

type RangeTick struct {
	Row   Row
	Value float64
	Label string
}

type ScreenTicks struct {
	DomainTicks []DomainTick
	RangeTicks  []RangeTick

	InnerGraphSize ScreenSize
	MarginRows     Row
	MarginCols     Column
	LineSize       int
}

// LayOutTicks computes the screen positions of the given ticks for a graph
// drawn inside outerSize, reserving margins wide enough for the longest
// labels plus the axis lines themselves (lineSize cells).
//
// NB: labels of ticks that later collapse into the same cell still affect
// the margin width; such is life when multiple ticks share a cell.
func LayOutTicks(g Graph, outerSize ScreenSize, domTicks, rngTicks []AxisTick, lineSize int) *ScreenTicks {
	var marginRows Row
	var marginCols Column
	for _, tick := range domTicks {
		// domain labels are drawn vertically, one rune per row
		if h := Row(len([]rune(tick.Label))); h > marginRows {
			marginRows = h
		}
	}
	for _, tick := range rngTicks {
		if w := Column(runewidth.StringWidth(tick.Label)); w > marginCols {
			marginCols = w
		}
	}
	marginRows += Row(lineSize)
	marginCols += Column(lineSize)

	innerSize := outerSize
	innerSize.Rows -= marginRows
	innerSize.Cols -= marginCols

	// fix to zero so that other code can bail
	if innerSize.Rows < 0 || innerSize.Cols < 0 {
		innerSize.Rows = 0
		innerSize.Cols = 0
	}

	domain, rng := g.Projectors(innerSize)

	ticks := &ScreenTicks{
		InnerGraphSize: innerSize,
		MarginRows:     marginRows,
		MarginCols:     marginCols,
		LineSize:       lineSize,
	}

	var lastDom *DomainTick
	for _, tick := range domTicks {
		col := domain(tick.Value)
		if col < 0 || col >= innerSize.Cols {
			continue
		}
		// discard duplicate ticks
		if lastDom != nil && lastDom.Col == col {
			continue
		}
		ticks.DomainTicks = append(ticks.DomainTicks, DomainTick{
			Col: col, Value: tick.Value, Label: tick.Label,
		})
		lastDom = &ticks.DomainTicks[len(ticks.DomainTicks)-1]
	}

	var lastRng *RangeTick
	for _, tick := range rngTicks {
		row := rng(tick.Value)
		if row < 0 || row >= innerSize.Rows {
			continue
		}
		if lastRng != nil && lastRng.Row == innerSize.Rows-row-1 {
			continue
		}
		ticks.RangeTicks = append(ticks.RangeTicks, RangeTick{
			Row:   innerSize.Rows - row - 1, // invert the row
			Value: tick.Value, Label: tick.Label,
		})
		lastRng = &ticks.RangeTicks[len(ticks.RangeTicks)-1]
	}

	return ticks
}

type AxisCellKind int

const (
	DomainTickKind AxisCellKind = iota
	RangeTickKind
	YAxisKind
	XAxisKind
	AxisCornerKind
	LabelKind
)

// DrawAxes emits the axis lines, ticks, and labels cell-by-cell through the
// output callback.  Domain labels are written vertically below their tick;
// range labels right-justified against the y axis.
func DrawAxes(ticks *ScreenTicks, output func(row Row, col Column, cell rune, kind AxisCellKind)) {
	// axis lines first
	{
		col := ticks.MarginCols - 1
		for row := Row(0); row < ticks.InnerGraphSize.Rows; row++ {
			output(row, col, ' ', YAxisKind)
		}
	}
	{
		row := ticks.InnerGraphSize.Rows
		for graphCol := Column(0); graphCol < ticks.InnerGraphSize.Cols; graphCol++ {
			// start at the first non-margin column -- the last margin column
			// (the axis itself) is the corner piece, handled below
			output(row, graphCol+ticks.MarginCols, ' ', XAxisKind)
		}
	}

	// then ticks & labels
	{
		col := ticks.MarginCols - 1 // the line position; users can offset if they want
		for _, tick := range ticks.RangeTicks {
			output(tick.Row, col, ' ', RangeTickKind)

			lblPos := col - Column(runewidth.StringWidth(tick.Label))
			for _, rn := range tick.Label {
				output(tick.Row, lblPos, rn, LabelKind)
				lblPos += Column(runewidth.RuneWidth(rn))
			}
		}
	}
	{
		row := ticks.InnerGraphSize.Rows
		for _, tick := range ticks.DomainTicks {
			output(row, tick.Col+ticks.MarginCols-1, ' ', DomainTickKind)

			lblPos := row + Row(ticks.LineSize)
			for _, rn := range tick.Label {
				output(lblPos, tick.Col+ticks.MarginCols-1, rn, LabelKind)
				lblPos++
			}
		}
	}

	// finally the 0, 0 corner (after ticks so if we do something special to
	// overwrite the axis lines for ticks, the corner character has the final
	// say)
	output(ticks.InnerGraphSize.Rows, ticks.MarginCols-1, ' ', AxisCornerKind)
}
