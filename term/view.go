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

package term

import (
	"github.com/gdamore/tcell"
)

// Flushable contains content that can be flushed to a screen.
type Flushable interface {
	// FlushTo flushes content to the screen.  It should only write to the
	// areas of the screen that it has been assigned (generally via being
	// Resizable).
	FlushTo(screen tcell.Screen)
}

// Resizable widgets know how to receive a section of the screen that
// they're supposed to write to, and resize their content to fit it.
type Resizable interface {
	// SetBox sets the region this widget should fill.  It is *not* an
	// instruction to draw (that's what Flushable is for).
	SetBox(PositionBox)
}

// View represents a widget -- it can display (Flushable) and be given a
// size (Resizable).
type View interface {
	Flushable
	Resizable
}

// PositionBox describes a region of the screen.
type PositionBox struct {
	// StartCol and StartRow indicate the starting column and row
	// (zero-indexed) of this region.
	StartCol, StartRow int
	// Cols and Rows indicate the extent of this region.
	Cols, Rows int
}

// Contains reports whether the screen cell (col, row) lies in the region.
func (b PositionBox) Contains(col, row int) bool {
	return col >= b.StartCol && col < b.StartCol+b.Cols &&
		row >= b.StartRow && row < b.StartRow+b.Rows
}

// DockPos indicates which side of a split the fixed-size pane is anchored
// to.
type DockPos int

const (
	// PosBelow anchors to the bottom
	PosBelow DockPos = iota
	// PosAbove anchors to the top
	PosAbove
	// PosLeft anchors to the left
	PosLeft
	// PosRight anchors to the right
	PosRight
)

// SplitView divides its region between a fixed-size "docked" pane and the
// flexed remainder.  It's used to keep a status bar under the chart.
type SplitView struct {
	// Dock indicates the position of the fixed-size pane.
	Dock DockPos
	// DockSize is the desired size of the fixed-size pane, in rows or
	// columns depending on where the dock is.
	DockSize int

	// Docked and Flexed hold the two panes' content.  Either that is also
	// Flushable receives FlushTo calls as well.
	Docked Resizable
	Flexed Resizable
}

// boxes splits the given region into the docked and flexed boxes.
func (v *SplitView) boxes(box PositionBox) (docked, flexed PositionBox) {
	size := v.DockSize
	vertical := v.Dock == PosBelow || v.Dock == PosAbove

	limit := box.Cols
	if vertical {
		limit = box.Rows
	}
	if size >= limit {
		size = limit - 1
	}
	if size < 0 {
		size = 0
	}

	docked, flexed = box, box
	switch v.Dock {
	case PosBelow:
		docked.Rows = size
		docked.StartRow = box.StartRow + box.Rows - size
		flexed.Rows = box.Rows - size
	case PosAbove:
		docked.Rows = size
		flexed.Rows = box.Rows - size
		flexed.StartRow = box.StartRow + size
	case PosLeft:
		docked.Cols = size
		flexed.Cols = box.Cols - size
		flexed.StartCol = box.StartCol + size
	case PosRight:
		docked.Cols = size
		docked.StartCol = box.StartCol + box.Cols - size
		flexed.Cols = box.Cols - size
	default:
		panic("invalid dock position")
	}
	return docked, flexed
}

func (v *SplitView) SetBox(box PositionBox) {
	docked, flexed := v.boxes(box)
	v.Docked.SetBox(docked)
	v.Flexed.SetBox(flexed)
}

func (v *SplitView) FlushTo(screen tcell.Screen) {
	if flushable, canFlush := v.Docked.(Flushable); canFlush {
		flushable.FlushTo(screen)
	}
	if flushable, canFlush := v.Flexed.(Flushable); canFlush {
		flushable.FlushTo(screen)
	}
}

// StaticResizable just records the size it was given, without doing
// anything else.
type StaticResizable struct {
	PositionBox
}

func (r *StaticResizable) SetBox(box PositionBox) {
	r.PositionBox = box
}

// TextLine is a one-row widget that writes a line of styled text, clipped
// to its box.  Handy for status bars.
type TextLine struct {
	StaticResizable

	Text  string
	Style tcell.Style
}

func (l *TextLine) FlushTo(screen tcell.Screen) {
	col := l.StartCol
	for _, rn := range l.Text {
		if col >= l.StartCol+l.Cols {
			break
		}
		screen.SetContent(col, l.StartRow, rn, nil, l.Style)
		col++
	}
	// blank the rest of the line so stale text doesn't linger
	for col < l.StartCol+l.Cols {
		screen.SetContent(col, l.StartRow, ' ', nil, l.Style)
		col++
	}
}
