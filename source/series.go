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

// Package source provides chart data: in-memory series builders, synthetic
// demo generators, and a Prometheus range-query client.
package source

import (
	"github.com/zoomplot/termchart/plot"
)

// XY is the simplest plot.Point: a bare coordinate pair.
type XY struct {
	XV, YV float64
}

func (p XY) X() float64 { return p.XV }
func (p XY) Y() float64 { return p.YV }

// MemSeries is an immutable in-memory plot.Series.
type MemSeries struct {
	title string
	id    plot.SeriesID
	pts   []plot.Point
}

func NewMemSeries(title string, id plot.SeriesID, pts []plot.Point) *MemSeries {
	return &MemSeries{title: title, id: id, pts: pts}
}

func (s *MemSeries) Title() string        { return s.title }
func (s *MemSeries) ID() plot.SeriesID    { return s.id }
func (s *MemSeries) Points() []plot.Point { return s.pts }
