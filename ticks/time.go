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

package ticks

import (
	"math"
	"time"

	"github.com/zoomplot/termchart/plot"
	"github.com/zoomplot/termchart/ticklabel"
)

// TimeTick is a time-axis tick: its position in the chart's domain
// coordinates (unix milliseconds) plus the neighborhood context the label
// formatter dispatches on.
type TimeTick struct {
	Value   float64
	Context ticklabel.TickContext
}

// UnixMillis converts a time to the chart domain coordinate.
func UnixMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// FromUnixMillis converts a chart domain coordinate back to a time in loc.
func FromUnixMillis(ms float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(int64(math.Round(ms))).In(loc)
}

// stepLadder holds the calendar-friendly sub-month subdivisions, finest
// first.  Months and years don't have a fixed duration so they're stepped
// separately below.
var stepLadder = []struct {
	d    time.Duration
	unit ticklabel.Unit
}{
	{time.Millisecond, ticklabel.Millisecond},
	{5 * time.Millisecond, ticklabel.Millisecond},
	{10 * time.Millisecond, ticklabel.Millisecond},
	{25 * time.Millisecond, ticklabel.Millisecond},
	{50 * time.Millisecond, ticklabel.Millisecond},
	{100 * time.Millisecond, ticklabel.Millisecond},
	{250 * time.Millisecond, ticklabel.Millisecond},
	{500 * time.Millisecond, ticklabel.Millisecond},
	{time.Second, ticklabel.Second},
	{5 * time.Second, ticklabel.Second},
	{15 * time.Second, ticklabel.Second},
	{30 * time.Second, ticklabel.Second},
	{time.Minute, ticklabel.Minute},
	{5 * time.Minute, ticklabel.Minute},
	{15 * time.Minute, ticklabel.Minute},
	{30 * time.Minute, ticklabel.Minute},
	{time.Hour, ticklabel.Hour},
	{3 * time.Hour, ticklabel.Hour},
	{6 * time.Hour, ticklabel.Hour},
	{12 * time.Hour, ticklabel.Hour},
	{24 * time.Hour, ticklabel.Day},
	{2 * 24 * time.Hour, ticklabel.Day},
	{7 * 24 * time.Hour, ticklabel.Day},
	{14 * 24 * time.Hour, ticklabel.Day},
}

// Time returns calendar-aligned ticks covering r (in unix milliseconds), at
// most maxTicks of them.  The subdivision step is the finest ladder entry
// that fits the budget; positions snap to step boundaries in loc, and each
// tick carries the first-visible / unit-changed flags the adaptive label
// formatter dispatches on.
func Time(r plot.Range, maxTicks int, loc *time.Location) []TimeTick {
	if loc == nil {
		loc = time.Local
	}
	if maxTicks < 1 {
		maxTicks = 1
	}
	width := time.Duration(r.Width()) * time.Millisecond
	if width <= 0 {
		t := FromUnixMillis(r.Min, loc)
		return contexts([]time.Time{t}, ticklabel.Second)
	}
	target := width / time.Duration(maxTicks)

	for _, step := range stepLadder {
		if step.d >= target {
			return contexts(durationSteps(r, step.d, maxTicks, loc), step.unit)
		}
	}

	// coarser than two weeks: step whole months, then whole years
	const avgMonth = 30 * 24 * time.Hour
	for _, months := range []int{1, 2, 3, 6} {
		if time.Duration(months)*avgMonth >= target {
			return contexts(monthSteps(r, months, maxTicks, loc), ticklabel.Month)
		}
	}
	years := int(niceStep(float64(target) / float64(365*24*time.Hour)))
	if years < 1 {
		years = 1
	}
	return contexts(yearSteps(r, years, maxTicks, loc), ticklabel.Year)
}

func durationSteps(r plot.Range, step time.Duration, maxTicks int, loc *time.Location) []time.Time {
	start := FromUnixMillis(r.Min, loc)
	aligned := start.Truncate(step)
	if aligned.Before(start) {
		aligned = aligned.Add(step)
	}

	var out []time.Time
	for t := aligned; UnixMillis(t) <= r.Max && len(out) < maxTicks; t = t.Add(step) {
		out = append(out, t.In(loc))
	}
	return out
}

func monthSteps(r plot.Range, months, maxTicks int, loc *time.Location) []time.Time {
	start := FromUnixMillis(r.Min, loc)
	aligned := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc)
	if aligned.Before(start) {
		aligned = aligned.AddDate(0, months, 0)
	}

	var out []time.Time
	for t := aligned; UnixMillis(t) <= r.Max && len(out) < maxTicks; t = t.AddDate(0, months, 0) {
		out = append(out, t)
	}
	return out
}

func yearSteps(r plot.Range, years, maxTicks int, loc *time.Location) []time.Time {
	start := FromUnixMillis(r.Min, loc)
	aligned := time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, loc)
	if aligned.Before(start) {
		aligned = aligned.AddDate(years, 0, 0)
	}

	var out []time.Time
	for t := aligned; UnixMillis(t) <= r.Max && len(out) < maxTicks; t = t.AddDate(years, 0, 0) {
		out = append(out, t)
	}
	return out
}

// contexts derives the per-tick neighborhood flags: the first tick is the
// axis anchor, and a later tick "changes unit" when the next coarser
// calendar component differs from its predecessor's.  Year ticks never set
// the changed flag -- there's no coarser unit left to roll over.
func contexts(times []time.Time, unit ticklabel.Unit) []TimeTick {
	out := make([]TimeTick, len(times))
	coarser := unit.Coarser()
	for i, t := range times {
		ctx := ticklabel.TickContext{
			Time:         t,
			Unit:         unit,
			FirstVisible: i == 0,
		}
		if i > 0 && unit != ticklabel.Year {
			ctx.UnitChanged = coarser.Component(t) != coarser.Component(times[i-1])
		}
		out[i] = TimeTick{Value: UnixMillis(t), Context: ctx}
	}
	return out
}
