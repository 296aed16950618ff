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

package interact

import (
	"github.com/zoomplot/termchart/plot"
)

// Accessors project a caller-supplied data record onto the two axes.  They
// are fixed per chart instance and must not change between Apply calls.
type Accessors[D any] struct {
	X func(D) float64
	Y func(D) float64
}

// clickMoveLimit is the largest number of pointer-move events that still
// counts as a click: a drag with at most this many moves reverts both axes
// to unzoomed instead of committing a selection.
const clickMoveLimit = 2

// State is the pointer-derived state of one chart instance: the in-progress
// drag (anchor, live cursor, move count), the hover target, and the per-axis
// zoom windows.  The zero value is the fresh, unzoomed state.
//
// State is a value; Apply returns a new one rather than mutating.  It must
// only be written from one event source at a time -- the transition function
// assumes it is the sole writer between calls.
type State[D any] struct {
	dragAnchor *D
	hovered    *D
	dragCursor *D
	dragMoves  int

	xWindow plot.ZoomWindow
	yWindow plot.ZoomWindow

	// retained for inspection/debugging; rendering never reads these
	lastCommittedX *plot.Range
	lastCommittedY *plot.Range
}

// Apply runs one event through the state machine.  It is pure and never
// fails: events that are out of protocol (an up with no prior down, a move
// with no drag) are defined no-ops.
func Apply[D any](s State[D], ev Event, acc Accessors[D]) State[D] {
	switch ev := ev.(type) {
	case PointerDown[D]:
		if s.dragAnchor != nil {
			// a second down with no intervening up (terminals can swallow the
			// release on focus loss): finalize the stale drag as if this were
			// the up
			return commit(s, ev.Point, acc)
		}
		point := ev.Point
		s.dragAnchor = &point
		s.hovered = nil
		s.dragCursor = nil
		return s
	case PointerMove[D]:
		if s.dragAnchor == nil {
			return s
		}
		point := ev.Point
		s.dragCursor = &point
		s.dragMoves++
		return s
	case Hover[D]:
		s.hovered = ev.Point
		return s
	case PointerUp[D]:
		if s.dragAnchor == nil {
			return s
		}
		return commit(s, ev.Point, acc)
	case PointerLeave:
		s.hovered = nil
		return s
	case ResetZoom:
		s.xWindow = plot.Unzoomed()
		s.yWindow = plot.Unzoomed()
		return s
	default:
		// an event for some other point type; nothing we can do with it
		return s
	}
}

// commit finalizes a drag: with enough observed movement it pins each axis
// to the anchor/release span, otherwise (a click) it reverts both axes to
// unzoomed.  Run once per axis so the axes stay independent.
func commit[D any](s State[D], release D, acc Accessors[D]) State[D] {
	anchor := *s.dragAnchor
	moved := s.dragMoves > clickMoveLimit

	s.xWindow, s.lastCommittedX = commitAxis(acc.X(anchor), acc.X(release), moved, s.lastCommittedX)
	s.yWindow, s.lastCommittedY = commitAxis(acc.Y(anchor), acc.Y(release), moved, s.lastCommittedY)

	s.dragAnchor = nil
	s.dragCursor = nil
	s.dragMoves = 0
	return s
}

func commitAxis(a, b float64, moved bool, prev *plot.Range) (plot.ZoomWindow, *plot.Range) {
	if !moved {
		// a click, not a drag: zoom all the way back out and keep the
		// previously committed range untouched
		return plot.Unzoomed(), prev
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return plot.Zoomed(lo, hi), &plot.Range{Min: lo, Max: hi}
}

// Dragging reports whether a pointer button is currently held.  Hosts use
// this to route passive movement as Hover and active movement as
// PointerMove.
func (s State[D]) Dragging() bool {
	return s.dragAnchor != nil
}

// VisibleRangeX returns what the renderer should display on the x axis:
// the exact pinned range when zoomed, or an auto-fit instruction otherwise.
func (s State[D]) VisibleRangeX() plot.AxisRange {
	return axisRange(s.xWindow)
}

// VisibleRangeY is VisibleRangeX for the y axis.
func (s State[D]) VisibleRangeY() plot.AxisRange {
	return axisRange(s.yWindow)
}

func axisRange(w plot.ZoomWindow) plot.AxisRange {
	if rng, zoomed := w.Bounds(); zoomed {
		return plot.AxisRange{Range: rng}
	}
	return plot.AxisRange{AutoFit: true}
}

// DragRect returns the axis-aligned selection rectangle between the drag
// anchor and the live drag cursor, min/max per axis regardless of drag
// direction.  ok is false unless a drag is in progress and the pointer has
// moved at least once.
func (s State[D]) DragRect(acc Accessors[D]) (x, y plot.Range, ok bool) {
	if s.dragAnchor == nil || s.dragCursor == nil {
		return plot.Range{}, plot.Range{}, false
	}
	x = orderedRange(acc.X(*s.dragAnchor), acc.X(*s.dragCursor))
	y = orderedRange(acc.Y(*s.dragAnchor), acc.Y(*s.dragCursor))
	return x, y, true
}

func orderedRange(a, b float64) plot.Range {
	if a > b {
		a, b = b, a
	}
	return plot.Range{Min: a, Max: b}
}

// HoverTarget returns the data point under the passive pointer, if any.
func (s State[D]) HoverTarget() (D, bool) {
	if s.hovered == nil {
		var zero D
		return zero, false
	}
	return *s.hovered, true
}

// LastCommittedX returns the most recent non-click selection on the x axis.
// Informational only; ResetZoom does not clear it.
func (s State[D]) LastCommittedX() (plot.Range, bool) {
	if s.lastCommittedX == nil {
		return plot.Range{}, false
	}
	return *s.lastCommittedX, true
}

// LastCommittedY is LastCommittedX for the y axis.
func (s State[D]) LastCommittedY() (plot.Range, bool) {
	if s.lastCommittedY == nil {
		return plot.Range{}, false
	}
	return *s.lastCommittedY, true
}
