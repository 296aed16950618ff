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

package source_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/prometheus/common/model"

	"github.com/zoomplot/termchart/plot"
	"github.com/zoomplot/termchart/source"
	"github.com/zoomplot/termchart/ticks"
)

var _ = Describe("Prometheus results", func() {
	It("should convert a range matrix to one series per stream", func() {
		matrix := model.Matrix{
			&model.SampleStream{
				Metric: model.Metric{"__name__": "up", "job": "node"},
				Values: []model.SamplePair{
					{Timestamp: 1000, Value: 1},
					{Timestamp: 2000, Value: 0},
				},
			},
		}

		set, err := source.ToSeriesSet(matrix)
		Expect(err).NotTo(HaveOccurred())
		Expect(set).To(HaveLen(1))

		series := set[0]
		Expect(series.Title()).To(Equal(`up{job="node"}`))
		Expect(series.ID()).To(Equal(plot.SeriesID(1)))

		pts := series.Points()
		Expect(pts).To(HaveLen(2))
		// sample timestamps are already unix milliseconds
		Expect(pts[0].X()).To(Equal(1000.0))
		Expect(pts[0].Y()).To(Equal(1.0))
		Expect(pts[1].X()).To(Equal(2000.0))
		Expect(pts[1].Y()).To(Equal(0.0))
	})

	It("should reject non-matrix results", func() {
		_, err := source.ToSeriesSet(model.Vector{})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Synthetic series", func() {
	end := time.Date(2023, time.May, 14, 9, 26, 0, 0, time.UTC)

	It("should produce sine samples ending at the requested time", func() {
		series := source.Sine("sine", 1, 5, end, time.Second, 50, 30)

		pts := series.Points()
		Expect(pts).To(HaveLen(5))
		Expect(pts[4].X()).To(Equal(ticks.UnixMillis(end)))
		for i, pt := range pts {
			if i > 0 {
				Expect(pt.X()).To(BeNumerically(">", pts[i-1].X()))
			}
			Expect(pt.Y()).To(And(
				BeNumerically(">=", 20.0),
				BeNumerically("<=", 80.0),
			))
		}
	})

	It("should generate the same walk for the same series id", func() {
		a := source.RandomWalk("walk", 2, 10, end, time.Second, 40, 4)
		b := source.RandomWalk("walk", 2, 10, end, time.Second, 40, 4)

		Expect(a.Points()).To(Equal(b.Points()))
	})
})
