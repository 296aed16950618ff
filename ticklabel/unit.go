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

package ticklabel

import (
	"time"
)

// Unit is the calendar granularity of a time-axis tick.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Month
	Year

	numUnits = iota
)

func (u Unit) String() string {
	switch u {
	case Millisecond:
		return "millisecond"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// Coarser returns the next coarser calendar unit; a tick "changes unit" when
// this component differs from the previous tick's (e.g. a second tick
// crossing into a new minute).  Year has no coarser unit and returns itself.
func (u Unit) Coarser() Unit {
	if u >= Year {
		return Year
	}
	return u + 1
}

// Component extracts this unit's calendar component of t, suitable for
// equality comparison between neighboring ticks.
func (u Unit) Component(t time.Time) int {
	switch u {
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	case Second:
		return t.Second()
	case Minute:
		return t.Minute()
	case Hour:
		return t.Hour()
	case Day:
		return t.YearDay()
	case Month:
		return int(t.Month())
	case Year:
		return t.Year()
	default:
		return 0
	}
}

// TickContext is everything the label formatter needs to know about one
// tick: where it sits, at which granularity, and how it relates to its
// neighborhood.  The flags are derived externally (see the ticks package);
// the formatter itself keeps no state between calls.
type TickContext struct {
	// Time is the tick's position.
	Time time.Time

	// Unit is the calendar granularity the axis is being subdivided at.
	Unit Unit

	// FirstVisible marks the first on-screen tick, which must stand alone
	// with enough context to anchor the rest of the axis.
	FirstVisible bool

	// UnitChanged marks a tick whose coarser calendar component differs
	// from the previous tick's (crossing into a new minute/hour/day/...).
	UnitChanged bool
}
