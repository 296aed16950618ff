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
	"strings"

	"github.com/dustin/go-humanize"
)

// A tick's label verbosity depends on where it sits relative to its
// neighbors, not on the tick itself: the first visible tick and ticks that
// cross a coarser calendar boundary re-establish full context, while
// routine ticks render only the part that changed since their predecessor.
// The same position can therefore label differently from one repaint to the
// next as the visible window shifts.

// labelRule selects one of the three label shapes for a tick.
type labelRule int

const (
	ruleFirst labelRule = iota
	ruleBoundary
	ruleRoutine

	numRules = iota
)

// YearRolloverPlaceholder is rendered for a year-granularity tick that
// crosses a year boundary.  What that label should actually show is an
// unresolved product question; the placeholder is deliberately loud so the
// gap is visible on screen instead of silently papered over.
//
// TODO(axis-labels): pick a real label for year-unit rollover ticks (bare
// year? decade?) once there's an axis dense enough to exercise it.
const YearRolloverPlaceholder = "{year}"

// layouts maps (unit, rule) to a time.Format layout.  The table is total:
// every unit has all three rules, and the one combination with no defined
// rendering holds the empty layout, handled explicitly in Label.
var layouts = [numUnits][numRules]string{
	Millisecond: {ruleFirst: "15:04:05.000", ruleBoundary: "15:04:05.000", ruleRoutine: ".000"},
	Second:      {ruleFirst: "15:04:05", ruleBoundary: "15:04:05", ruleRoutine: ":05"},
	Minute:      {ruleFirst: "15:04", ruleBoundary: "15:04", ruleRoutine: ":04"},
	Hour:        {ruleFirst: "Jan 2 15:04", ruleBoundary: "Jan 2 15:04", ruleRoutine: "15:04"},
	Day:         {ruleFirst: "Jan 2", ruleBoundary: "Jan 2", ruleRoutine: "2"},
	Month:       {ruleFirst: "Jan 2006", ruleBoundary: "Jan 2006", ruleRoutine: "Jan"},
	Year:        {ruleFirst: "2006", ruleBoundary: "", ruleRoutine: "2006"},
}

// Label renders a time-axis tick.  Dispatch order matters: the first
// visible tick always gets the full-context label, then boundary-crossing
// ticks, then routine ones.  It never fails; the single undefined
// combination renders YearRolloverPlaceholder.
func Label(ctx TickContext) string {
	rule := ruleRoutine
	switch {
	case ctx.FirstVisible:
		rule = ruleFirst
	case ctx.UnitChanged:
		rule = ruleBoundary
	}

	unit := ctx.Unit
	if unit < 0 || unit >= numUnits {
		unit = Second
	}
	layout := layouts[unit][rule]
	if layout == "" {
		return YearRolloverPlaceholder
	}
	return ctx.Time.Format(layout)
}

// SI returns a numeric-axis labeler rendering values with metric suffixes
// ("1.5 k", "20 M", ...) to the given number of significant digits.  Numeric
// axes get no neighborhood adaptivity; every tick formats the same way.
func SI(digits int) func(float64) string {
	return func(v float64) string {
		return strings.TrimSpace(humanize.SIWithDigits(v, digits, ""))
	}
}
