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

package interact_test

import (
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/zoomplot/termchart/interact"
	"github.com/zoomplot/termchart/plot"
)

type sample struct {
	x, y float64
	name string
}

var acc = interact.Accessors[sample]{
	X: func(s sample) float64 { return s.x },
	Y: func(s sample) float64 { return s.y },
}

func apply(s interact.State[sample], evs ...interact.Event) interact.State[sample] {
	for _, ev := range evs {
		s = interact.Apply(s, ev, acc)
	}
	return s
}

// dragSequence is down at a, n moves toward b, then up at b.
func dragSequence(a, b sample, moves int) []interact.Event {
	evs := []interact.Event{interact.PointerDown[sample]{Point: a}}
	for i := 0; i < moves; i++ {
		evs = append(evs, interact.PointerMove[sample]{Point: b})
	}
	return append(evs, interact.PointerUp[sample]{Point: b})
}

var _ = Describe("The interaction state machine", func() {
	var state interact.State[sample]
	a := sample{x: 10, y: 100, name: "a"}
	b := sample{x: 30, y: 40, name: "b"}

	BeforeEach(func() {
		state = interact.State[sample]{}
	})

	Context("when disambiguating clicks from drags", func() {
		for _, moves := range []int{0, 1, 2} {
			moves := moves
			It(fmt.Sprintf("should treat a release after %d move(s) as a click and zoom out", moves), func() {
				state = apply(state, dragSequence(a, b, moves)...)
				Expect(state.VisibleRangeX().AutoFit).To(BeTrue())
				Expect(state.VisibleRangeY().AutoFit).To(BeTrue())

				_, committed := state.LastCommittedX()
				Expect(committed).To(BeFalse(), "clicks shouldn't record a committed range")
			})
		}

		It("should commit a zoom once the pointer visibly moved (3+ moves)", func() {
			state = apply(state, dragSequence(a, b, 3)...)

			Expect(state.VisibleRangeX()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 10, Max: 30}}))
			Expect(state.VisibleRangeY()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 40, Max: 100}}))
		})

		It("should order the window min/max regardless of drag direction", func() {
			// drag up-left: release is below/left of the anchor on both axes
			state = apply(state, dragSequence(b, a, 5)...)

			Expect(state.VisibleRangeX()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 10, Max: 30}}))
			Expect(state.VisibleRangeY()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 40, Max: 100}}))
		})

		It("should record the committed ranges for drags", func() {
			state = apply(state, dragSequence(a, b, 4)...)

			x, ok := state.LastCommittedX()
			Expect(ok).To(BeTrue())
			Expect(x).To(Equal(plot.Range{Min: 10, Max: 30}))
			y, ok := state.LastCommittedY()
			Expect(ok).To(BeTrue())
			Expect(y).To(Equal(plot.Range{Min: 40, Max: 100}))
		})
	})

	Context("when resetting zoom", func() {
		It("should unzoom both axes", func() {
			state = apply(state, dragSequence(a, b, 5)...)
			state = apply(state, interact.ResetZoom{})

			Expect(state.VisibleRangeX().AutoFit).To(BeTrue())
			Expect(state.VisibleRangeY().AutoFit).To(BeTrue())
		})

		It("should be idempotent", func() {
			state = apply(state, dragSequence(a, b, 5)...)
			once := apply(state, interact.ResetZoom{})
			twice := apply(once, interact.ResetZoom{})

			Expect(twice.VisibleRangeX()).To(Equal(once.VisibleRangeX()))
			Expect(twice.VisibleRangeY()).To(Equal(once.VisibleRangeY()))
		})

		It("should not clear the last committed range", func() {
			state = apply(state, dragSequence(a, b, 5)...)
			state = apply(state, interact.ResetZoom{})

			_, ok := state.LastCommittedX()
			Expect(ok).To(BeTrue())
		})
	})

	Context("when hover events interleave with a drag", func() {
		It("should not let hovers count toward the click-vs-drag threshold", func() {
			hover := interact.Hover[sample]{Point: &a}
			state = apply(state,
				interact.PointerDown[sample]{Point: a},
				hover, hover, hover, hover,
				interact.PointerUp[sample]{Point: b},
			)

			// only moves count; four hovers and no moves is still a click
			Expect(state.VisibleRangeX().AutoFit).To(BeTrue())
		})

		It("should not change the zoom outcome", func() {
			state = apply(state,
				interact.PointerDown[sample]{Point: a},
				interact.PointerMove[sample]{Point: b},
				interact.Hover[sample]{Point: &a},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerUp[sample]{Point: b},
			)

			Expect(state.VisibleRangeX()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 10, Max: 30}}))
		})
	})

	Context("when the pointer leaves mid-drag", func() {
		It("should clear the hover target but keep the drag alive", func() {
			state = apply(state,
				interact.PointerDown[sample]{Point: a},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerLeave{},
				interact.PointerUp[sample]{Point: b},
			)

			Expect(state.VisibleRangeX()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 10, Max: 30}}))
			_, hovering := state.HoverTarget()
			Expect(hovering).To(BeFalse())
		})
	})

	Context("when a second down arrives with no intervening up", func() {
		It("should finalize the first drag as if the down were an up", func() {
			viaUp := apply(interact.State[sample]{}, dragSequence(a, b, 3)...)

			state = apply(state,
				interact.PointerDown[sample]{Point: a},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerDown[sample]{Point: b},
			)

			Expect(state.VisibleRangeX()).To(Equal(viaUp.VisibleRangeX()))
			Expect(state.VisibleRangeY()).To(Equal(viaUp.VisibleRangeY()))
			Expect(state.Dragging()).To(BeFalse())
		})
	})

	Context("when events arrive out of protocol", func() {
		It("should ignore an up with no prior down", func() {
			state = apply(state, interact.PointerUp[sample]{Point: b})
			Expect(state).To(Equal(interact.State[sample]{}))
		})

		It("should ignore moves while no drag is active", func() {
			state = apply(state,
				interact.PointerMove[sample]{Point: a},
				interact.PointerMove[sample]{Point: b},
				interact.PointerMove[sample]{Point: b},
				interact.PointerDown[sample]{Point: a},
				interact.PointerUp[sample]{Point: b},
			)

			// the three stray moves must not have pushed this over the
			// click threshold
			Expect(state.VisibleRangeX().AutoFit).To(BeTrue())
		})
	})

	Context("when reading derived state", func() {
		It("should round-trip a committed window exactly, without padding", func() {
			state = apply(state, dragSequence(a, b, 3)...)

			xr := state.VisibleRangeX()
			Expect(xr.AutoFit).To(BeFalse())
			Expect(xr.Range).To(Equal(plot.Range{Min: 10, Max: 30}))
		})

		It("should expose the drag rectangle only while both corners exist", func() {
			state = apply(state, interact.PointerDown[sample]{Point: a})
			_, _, ok := state.DragRect(acc)
			Expect(ok).To(BeFalse(), "no cursor yet")

			state = apply(state, interact.PointerMove[sample]{Point: b})
			x, y, ok := state.DragRect(acc)
			Expect(ok).To(BeTrue())
			Expect(x).To(Equal(plot.Range{Min: 10, Max: 30}))
			Expect(y).To(Equal(plot.Range{Min: 40, Max: 100}))

			state = apply(state, interact.PointerUp[sample]{Point: b})
			_, _, ok = state.DragRect(acc)
			Expect(ok).To(BeFalse(), "commit clears the rectangle")
		})

		It("should expose and clear the hover target", func() {
			state = apply(state, interact.Hover[sample]{Point: &a})
			target, ok := state.HoverTarget()
			Expect(ok).To(BeTrue())
			Expect(target.name).To(Equal("a"))

			state = apply(state, interact.PointerLeave{})
			_, ok = state.HoverTarget()
			Expect(ok).To(BeFalse())
		})

		It("should clear the hover target when a drag starts", func() {
			state = apply(state,
				interact.Hover[sample]{Point: &a},
				interact.PointerDown[sample]{Point: b},
			)
			_, ok := state.HoverTarget()
			Expect(ok).To(BeFalse())
		})
	})

	Context("with a degenerate selection", func() {
		It("should commit an empty-span window rather than reject it", func() {
			// enough moves to count as a drag, but release exactly on the
			// anchor
			state = apply(state, dragSequence(a, a, 5)...)

			Expect(state.VisibleRangeX()).To(Equal(plot.AxisRange{Range: plot.Range{Min: 10, Max: 10}}))
		})
	})
})
