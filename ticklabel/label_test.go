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

package ticklabel_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/zoomplot/termchart/ticklabel"
)

var _ = Describe("The adaptive tick labeler", func() {
	// 2023-05-14 09:26:53.217 UTC
	at := time.Date(2023, time.May, 14, 9, 26, 53, 217*int(time.Millisecond), time.UTC)

	ctx := func(unit ticklabel.Unit, first, changed bool) ticklabel.TickContext {
		return ticklabel.TickContext{Time: at, Unit: unit, FirstVisible: first, UnitChanged: changed}
	}

	Context("for the first visible tick", func() {
		It("should render a full time for sub-minute units", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Millisecond, true, false))).To(Equal("09:26:53.217"))
			Expect(ticklabel.Label(ctx(ticklabel.Second, true, false))).To(Equal("09:26:53"))
			Expect(ticklabel.Label(ctx(ticklabel.Minute, true, false))).To(Equal("09:26"))
		})

		It("should render a date plus time for hour units", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Hour, true, false))).To(Equal("May 14 09:26"))
		})

		It("should render a short date for day units", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Day, true, false))).To(Equal("May 14"))
		})

		It("should render month and year for month units", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Month, true, false))).To(Equal("May 2023"))
		})

		It("should render just the year for year units", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Year, true, false))).To(Equal("2023"))
		})

		It("should win over the unit-changed flag", func() {
			// a first tick that also happens to sit on a boundary still
			// anchors the axis the same way
			Expect(ticklabel.Label(ctx(ticklabel.Year, true, true))).To(Equal("2023"))
		})
	})

	Context("for a tick crossing a coarser calendar boundary", func() {
		It("should re-establish full context", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Second, false, true))).To(Equal("09:26:53"))
			Expect(ticklabel.Label(ctx(ticklabel.Day, false, true))).To(Equal("May 14"))
			Expect(ticklabel.Label(ctx(ticklabel.Month, false, true))).To(Equal("May 2023"))
		})

		It("should render the placeholder for the undefined year rollover", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Year, false, true))).To(Equal(ticklabel.YearRolloverPlaceholder))
		})
	})

	Context("for a routine tick", func() {
		It("should render only the incremental part", func() {
			Expect(ticklabel.Label(ctx(ticklabel.Millisecond, false, false))).To(Equal(".217"))
			Expect(ticklabel.Label(ctx(ticklabel.Second, false, false))).To(Equal(":53"))
			Expect(ticklabel.Label(ctx(ticklabel.Minute, false, false))).To(Equal(":26"))
			Expect(ticklabel.Label(ctx(ticklabel.Hour, false, false))).To(Equal("09:26"))
			Expect(ticklabel.Label(ctx(ticklabel.Day, false, false))).To(Equal("14"))
			Expect(ticklabel.Label(ctx(ticklabel.Month, false, false))).To(Equal("May"))
		})
	})

	Context("across a run of second-granularity ticks in one minute", func() {
		It("should give a full label first, then seconds only", func() {
			t0 := time.Date(2023, time.May, 14, 9, 26, 10, 0, time.UTC)
			labels := make([]string, 3)
			for i := range labels {
				labels[i] = ticklabel.Label(ticklabel.TickContext{
					Time:         t0.Add(time.Duration(i) * time.Second),
					Unit:         ticklabel.Second,
					FirstVisible: i == 0,
				})
			}
			Expect(labels).To(Equal([]string{"09:26:10", ":11", ":12"}))
		})
	})

	Context("across a day-granularity month boundary", func() {
		It("should give the full date label on the tick after the boundary", func() {
			// May 31 then June 1
			labels := []string{
				ticklabel.Label(ticklabel.TickContext{
					Time: time.Date(2023, time.May, 31, 0, 0, 0, 0, time.UTC),
					Unit: ticklabel.Day,
				}),
				ticklabel.Label(ticklabel.TickContext{
					Time:        time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
					Unit:        ticklabel.Day,
					UnitChanged: true,
				}),
			}
			Expect(labels).To(Equal([]string{"31", "Jun 1"}))
		})
	})

	Describe("numeric labeling", func() {
		It("should format with SI suffixes and no adaptivity", func() {
			label := ticklabel.SI(3)
			Expect(label(1500)).To(Equal("1.5 k"))
			Expect(label(0.25)).To(Equal("250 m"))
			Expect(label(42)).To(Equal("42"))
		})
	})
})
