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
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"github.com/zoomplot/termchart/debug"
	"github.com/zoomplot/termchart/interact"
	"github.com/zoomplot/termchart/plot"
	"github.com/zoomplot/termchart/ticklabel"
	"github.com/zoomplot/termchart/ticks"
)

var chartLog = debug.NewLogger("chart.log")

// chartPoint is the data record flowing through the chart's interaction
// state.  Drag events carry exact inverse-mapped coordinates (src nil);
// hover events carry the nearest real data point so the readout can show
// it.
type chartPoint struct {
	x, y float64
	src  plot.Point
}

var chartAccessors = interact.Accessors[chartPoint]{
	X: func(p chartPoint) float64 { return p.x },
	Y: func(p chartPoint) float64 { return p.y },
}

// ChartView is an interactive line-chart widget: braille-rendered series,
// tick-labeled axes, and pointer-driven rectangular zoom.  Drag a rectangle
// to zoom both axes to it, click (or drag barely) to zoom back out, hover
// to inspect the nearest sample, right-click or ResetZoom to reset.
//
// HandleMouse and FlushTo must be called from the same goroutine (the
// Runner's event loop does this naturally).
type ChartView struct {
	pos PositionBox

	Series plot.SeriesSet

	// TimeDomain selects adaptive calendar labels for the x axis; the
	// domain is then unix milliseconds.  Off, both axes get SI labels.
	TimeDomain bool
	// Location is the timezone for time labels.  Nil means local time.
	Location *time.Location

	// DomainTickSpacing and RangeTickSpacing are the rough cell distance
	// between ticks; zero means a sensible default.
	DomainTickSpacing int
	RangeTickSpacing  int
	// PadCells is the slack, in cells per side, applied when an axis is
	// unzoomed and auto-fits the data extent.
	PadCells int
	// SIDigits is the significant digits for numeric labels.
	SIDigits int

	state       interact.State[chartPoint]
	prevButtons tcell.ButtonMask
	wasInside   bool

	// the last flushed layout, kept to decode later mouse positions back
	// into data space
	lastGraph plot.Graph
	lastTicks *plot.ScreenTicks
	hasLayout bool
}

func (c *ChartView) SetBox(box PositionBox) {
	c.pos = box
}

func (c *ChartView) apply(ev interact.Event) {
	c.state = interact.Apply(c.state, ev, chartAccessors)
}

// ResetZoom returns both axes to the auto-fit state.
func (c *ChartView) ResetZoom() {
	c.apply(interact.ResetZoom{})
}

// Zoomed reports whether either axis is currently pinned.
func (c *ChartView) Zoomed() bool {
	return !c.state.VisibleRangeX().AutoFit || !c.state.VisibleRangeY().AutoFit
}

func (c *ChartView) domainSpacing() int {
	if c.DomainTickSpacing > 0 {
		return c.DomainTickSpacing
	}
	return 10
}

func (c *ChartView) rangeSpacing() int {
	if c.RangeTickSpacing > 0 {
		return c.RangeTickSpacing
	}
	return 3
}

func (c *ChartView) padCells() int {
	if c.PadCells > 0 {
		return c.PadCells
	}
	return 2
}

func (c *ChartView) siDigits() int {
	if c.SIDigits > 0 {
		return c.SIDigits
	}
	return 3
}

// HandleMouse decodes a raw mouse event into interaction-state events.
// Routing depends on the current drag state: movement while the primary
// button is held becomes an exact-position PointerMove, passive movement
// resolves to the nearest data point and becomes a Hover, and crossing out
// of the plot area becomes a PointerLeave (which, deliberately, does not
// cancel a drag in progress).
func (c *ChartView) HandleMouse(ev *tcell.EventMouse) {
	if !c.hasLayout {
		return
	}

	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := c.prevButtons&tcell.Button1 != 0
	rightClicked := ev.Buttons()&tcell.Button3 != 0 && c.prevButtons&tcell.Button3 == 0
	c.prevButtons = ev.Buttons()

	if rightClicked {
		c.ResetZoom()
		return
	}

	inside := c.innerBox().Contains(col, row)
	pt := c.decode(col, row)

	switch {
	case pressed && !wasPressed:
		if !inside {
			return
		}
		chartLog.Printf("down at (%g, %g)", pt.x, pt.y)
		c.apply(interact.PointerDown[chartPoint]{Point: pt})
	case pressed && wasPressed:
		// drag in progress: exact position, even if the pointer slips
		// outside the plot box (decode clamps to the edge)
		c.apply(interact.PointerMove[chartPoint]{Point: pt})
	case !pressed && wasPressed:
		chartLog.Printf("up at (%g, %g)", pt.x, pt.y)
		c.apply(interact.PointerUp[chartPoint]{Point: pt})
	case inside:
		if nearest, ok := c.nearest(pt.x, pt.y); ok {
			c.apply(interact.Hover[chartPoint]{Point: &nearest})
		} else {
			c.apply(interact.Hover[chartPoint]{Point: nil})
		}
	default:
		if c.wasInside {
			c.apply(interact.PointerLeave{})
		}
	}
	c.wasInside = inside
}

// innerBox returns the plot area (between the axes), in screen coordinates.
func (c *ChartView) innerBox() PositionBox {
	return PositionBox{
		StartCol: c.pos.StartCol + int(c.lastTicks.MarginCols),
		StartRow: c.pos.StartRow,
		Cols:     int(c.lastTicks.InnerGraphSize.Cols),
		Rows:     int(c.lastTicks.InnerGraphSize.Rows),
	}
}

// decode inverse-maps a screen cell to the exact data coordinate under it,
// clamping to the plot area first so drags past the edge stay well-defined.
func (c *ChartView) decode(col, row int) chartPoint {
	box := c.innerBox()
	if col < box.StartCol {
		col = box.StartCol
	}
	if col >= box.StartCol+box.Cols {
		col = box.StartCol + box.Cols - 1
	}
	if row < box.StartRow {
		row = box.StartRow
	}
	if row >= box.StartRow+box.Rows {
		row = box.StartRow + box.Rows - 1
	}
	x, y := c.lastGraph.Unproject(c.lastTicks.InnerGraphSize,
		plot.Row(row-box.StartRow), plot.Column(col-box.StartCol))
	return chartPoint{x: x, y: y}
}

// nearest finds the visible data point closest to (x, y) in screen cells.
func (c *ChartView) nearest(x, y float64) (chartPoint, bool) {
	domain, rng := c.lastGraph.Projectors(c.lastTicks.InnerGraphSize)
	atCol, atRow := domain(x), rng(y)

	best := chartPoint{}
	bestDist := -1
	for _, series := range c.Series {
		for _, pt := range series.Points() {
			if !c.lastGraph.X.Contains(pt.X()) {
				continue
			}
			dc, dr := int(domain(pt.X())-atCol), int(rng(pt.Y())-atRow)
			dist := dc*dc + dr*dr
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = chartPoint{x: pt.X(), y: pt.Y(), src: pt}
			}
		}
	}
	return best, bestDist >= 0
}

func (c *ChartView) domainTicks(xr plot.Range) []plot.AxisTick {
	n := c.pos.Cols / c.domainSpacing()
	if n < 1 {
		n = 1
	}
	if c.TimeDomain {
		tt := ticks.Time(xr, n, c.Location)
		out := make([]plot.AxisTick, len(tt))
		for i, tick := range tt {
			out[i] = plot.AxisTick{Value: tick.Value, Label: ticklabel.Label(tick.Context)}
		}
		return out
	}
	label := ticklabel.SI(c.siDigits())
	vals := ticks.Numeric(xr, n)
	out := make([]plot.AxisTick, len(vals))
	for i, v := range vals {
		out[i] = plot.AxisTick{Value: v, Label: label(v)}
	}
	return out
}

func (c *ChartView) rangeTicks(yr plot.Range) []plot.AxisTick {
	n := c.pos.Rows / c.rangeSpacing()
	if n < 1 {
		n = 1
	}
	label := ticklabel.SI(c.siDigits())
	vals := ticks.Numeric(yr, n)
	out := make([]plot.AxisTick, len(vals))
	for i, v := range vals {
		out[i] = plot.AxisTick{Value: v, Label: label(v)}
	}
	return out
}

func (c *ChartView) FlushTo(screen tcell.Screen) {
	if len(c.Series) == 0 || c.pos.Cols <= 0 || c.pos.Rows <= 0 {
		return
	}
	extentX, extentY, ok := plot.DataExtent(c.Series)
	if !ok {
		return
	}

	xr := c.state.VisibleRangeX().Resolve(extentX, c.pos.Cols, c.padCells())
	yr := c.state.VisibleRangeY().Resolve(extentY, c.pos.Rows, c.padCells())
	graph := plot.Graph{X: xr, Y: yr, Series: c.Series}

	outerSize := plot.ScreenSize{Rows: plot.Row(c.pos.Rows), Cols: plot.Column(c.pos.Cols)}
	layout := plot.LayOutTicks(graph, outerSize, c.domainTicks(xr), c.rangeTicks(yr), 1)
	if layout.InnerGraphSize.Cols == 0 || layout.InnerGraphSize.Rows == 0 {
		// too small to render, just bail
		return
	}
	c.lastGraph, c.lastTicks, c.hasLayout = graph, layout, true

	plot.DrawAxes(layout, func(row plot.Row, col plot.Column, contents rune, kind plot.AxisCellKind) {
		var sty tcell.Style
		rn := contents
		switch kind {
		case plot.DomainTickKind:
			rn = '┯'
		case plot.RangeTickKind:
			rn = '┨'
		case plot.YAxisKind:
			rn = '┃'
		case plot.XAxisKind:
			rn = '━'
		case plot.AxisCornerKind:
			rn = '┗'
		}
		screen.SetContent(int(col)+c.pos.StartCol, int(row)+c.pos.StartRow, rn, nil, sty)
	})

	screenGraph := graph.ToScreen(plot.BrailleCellScreenSize(layout.InnerGraphSize))
	rendered := screenGraph.Render(plot.BrailleCellMapper)

	inner := c.innerBox()
	plot.DrawBraille(rendered, func(row plot.Row, col plot.Column, contents rune, id plot.SeriesID) {
		var sty tcell.Style
		if id != plot.NoSeries {
			sty = sty.Foreground(tcell.Color(id % 256))
		}
		screen.SetContent(int(col)+inner.StartCol, int(row)+inner.StartRow, contents, nil, sty)
	})

	if dragX, dragY, ok := c.state.DragRect(chartAccessors); ok {
		c.overlaySelection(screen, dragX, dragY)
	}
	if target, ok := c.state.HoverTarget(); ok {
		c.drawHover(screen, target)
	}
}

// overlaySelection repaints the cells covered by the live drag rectangle in
// reverse video, preserving whatever was drawn there.
func (c *ChartView) overlaySelection(screen tcell.Screen, dragX, dragY plot.Range) {
	size := c.lastTicks.InnerGraphSize
	domain, rng := c.lastGraph.Projectors(size)
	inner := c.innerBox()

	colLo, colHi := clampCol(domain(dragX.Min), size.Cols), clampCol(domain(dragX.Max), size.Cols)
	// value rows grow bottom-up, drawn rows top-down
	rowLo := clampRow(size.Rows-1-rng(dragY.Max), size.Rows)
	rowHi := clampRow(size.Rows-1-rng(dragY.Min), size.Rows)

	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			sc, sr := inner.StartCol+int(col), inner.StartRow+int(row)
			mainc, combc, style, _ := screen.GetContent(sc, sr)
			if mainc == 0 {
				mainc = ' '
			}
			screen.SetContent(sc, sr, mainc, combc, style.Reverse(true))
		}
	}
}

func clampCol(col plot.Column, cols plot.Column) plot.Column {
	if col < 0 {
		return 0
	}
	if col >= cols {
		return cols - 1
	}
	return col
}

func clampRow(row plot.Row, rows plot.Row) plot.Row {
	if row < 0 {
		return 0
	}
	if row >= rows {
		return rows - 1
	}
	return row
}

// drawHover marks the hovered sample and writes a readout in the top-left
// corner of the plot area.
func (c *ChartView) drawHover(screen tcell.Screen, target chartPoint) {
	size := c.lastTicks.InnerGraphSize
	domain, rng := c.lastGraph.Projectors(size)
	inner := c.innerBox()

	col := clampCol(domain(target.x), size.Cols)
	row := clampRow(size.Rows-1-rng(target.y), size.Rows)
	marker := tcell.StyleDefault.Bold(true)
	screen.SetContent(inner.StartCol+int(col), inner.StartRow+int(row), '●', nil, marker)

	var xTxt string
	if c.TimeDomain {
		xTxt = ticks.FromUnixMillis(target.x, c.Location).Format("15:04:05")
	} else {
		xTxt = ticklabel.SI(c.siDigits())(target.x)
	}
	readout := fmt.Sprintf(" %s → %s ", xTxt, ticklabel.SI(c.siDigits())(target.y))
	colPos := inner.StartCol
	for _, rn := range readout {
		if colPos >= inner.StartCol+inner.Cols {
			break
		}
		screen.SetContent(colPos, inner.StartRow, rn, nil, tcell.StyleDefault.Reverse(true))
		colPos++
	}
}
