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

// Event is a single pointer-derived input.  The host decodes raw pointer
// callbacks into these and feeds them to Apply in delivery order; the
// concrete types below are the whole sum.
//
// The host is responsible for choosing the decoding strategy per event:
// while a drag is active, moves should arrive as PointerMove carrying the
// exact inverse-mapped coordinate; passive movement should be resolved to
// the nearest known data point externally and arrive as Hover.
type Event interface {
	isPointerEvent()
}

// PointerDown begins a drag at the given point.  If a drag is somehow
// already active (a second down with no intervening up), it instead
// finalizes the previous drag exactly as PointerUp at this point would.
type PointerDown[D any] struct {
	Point D
}

// PointerMove is an exact (non-snapped) pointer position observed while a
// drag is in progress.  Deliveries while no drag is active are no-ops --
// passive movement belongs in Hover.
type PointerMove[D any] struct {
	Point D
}

// PointerUp finalizes a drag at the given point, committing either a zoom
// (the pointer visibly moved) or a revert to unzoomed (it was a click).
type PointerUp[D any] struct {
	Point D
}

// Hover sets the current hover target; a nil Point clears it.  Only
// meaningful while no drag is active.
type Hover[D any] struct {
	Point *D
}

// PointerLeave clears the hover target.  It deliberately does not cancel an
// in-progress drag; a drag is only ever resolved by an up (or a reentrant
// down).
type PointerLeave struct{}

// ResetZoom returns both axes to the unzoomed, auto-fit state.
type ResetZoom struct{}

func (PointerDown[D]) isPointerEvent() {}
func (PointerMove[D]) isPointerEvent() {}
func (PointerUp[D]) isPointerEvent()   {}
func (Hover[D]) isPointerEvent()       {}
func (PointerLeave) isPointerEvent()   {}
func (ResetZoom) isPointerEvent()      {}
