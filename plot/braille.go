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

package plot

import (
	"math"
)

const (
	brailleCellWidth     = 2
	brailleCellHeight    = 4
	brailleCellPositions = brailleCellWidth * brailleCellHeight
)

type PixelPoint struct {
	Row Row
	Col Column

	// OriginalPoints carries the data points collapsed into this pixel, so
	// hit-testing can recover the record(s) behind a drawn position.
	OriginalPoints []Point
}

type ScreenSeries struct {
	Points []PixelPoint
	ID     SeriesID
}

type ScreenGraph struct {
	ScreenSize

	Series []ScreenSeries
}

// ToScreen maps the graph's visible points onto a pixel grid of the given
// size.  Points outside the graph's X range are dropped (they're scrolled or
// zoomed out of view); points sharing a pixel column are averaged.  Y values
// outside the range are clamped to the edge rows so that a line dipping out
// of a zoomed window still points the right way.
func (g *Graph) ToScreen(size ScreenSize) *ScreenGraph {
	domain, rng := g.Projectors(size)

	outSeries := make([]ScreenSeries, 0, len(g.Series))
	for _, inSeries := range g.Series {
		var pts []PixelPoint
		var lastPt *PixelPoint

		for _, inPoint := range inSeries.Points() {
			inX, inY := inPoint.X(), inPoint.Y()
			if inX < g.X.Min || inX > g.X.Max {
				continue
			}

			col := domain(inX)
			row := clampRow(rng(inY), size.Rows)
			if lastPt != nil {
				if lastPt.Col == col {
					// same pixel column: accumulate for averaging
					lastPt.Row += row
					lastPt.OriginalPoints = append(lastPt.OriginalPoints, inPoint)
					continue
				}
				if len(lastPt.OriginalPoints) > 1 {
					lastPt.Row /= Row(len(lastPt.OriginalPoints))
				}
			}

			pts = append(pts, PixelPoint{Row: row, Col: col, OriginalPoints: []Point{inPoint}})
			lastPt = &pts[len(pts)-1]
		}
		if lastPt != nil && len(lastPt.OriginalPoints) > 1 {
			lastPt.Row /= Row(len(lastPt.OriginalPoints))
		}

		outSeries = append(outSeries, ScreenSeries{
			ID:     inSeries.ID(),
			Points: pts,
		})
	}

	return &ScreenGraph{
		Series:     outSeries,
		ScreenSize: size,
	}
}

func clampRow(row Row, rows Row) Row {
	if row < 0 {
		return 0
	}
	if row >= rows {
		return rows - 1
	}
	return row
}

type Cell struct {
	// common path doesn't need to allocate a slice
	IsPoint bool
	Series  SeriesID

	MoreSeries []SeriesID
}

type SubCellMapper func(row Row, col Column, size ScreenSize) int

type RenderedGraph struct {
	Cells []Cell
	ScreenSize
	SubCellMapper SubCellMapper
}

func (g *RenderedGraph) setCell(row Row, col Column, isPoint bool, series SeriesID) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return
	}
	ind := g.SubCellMapper(row, col, g.ScreenSize)

	cell := &g.Cells[ind]
	if cell.Series == NoSeries {
		cell.Series = series
		cell.IsPoint = isPoint // points are written first, so this is fine
		return
	}
	cell.MoreSeries = append(cell.MoreSeries, series)
}

// Render rasterizes the screen graph into sub-cell pixels, interpolating
// straight segments between consecutive points (Bresenham, more-or-less).
func (s *ScreenGraph) Render(subCellMapper SubCellMapper) *RenderedGraph {
	res := &RenderedGraph{
		ScreenSize:    s.ScreenSize,
		Cells:         make([]Cell, int(s.Rows)*int(s.Cols)),
		SubCellMapper: subCellMapper,
	}

	// write out points first so that points are always the "first" series
	// listed.
	for _, series := range s.Series {
		for _, pt := range series.Points {
			res.setCell(pt.Row, pt.Col, true, series.ID)
		}
	}

	// then the interpolated lines
	for _, series := range s.Series {
		if len(series.Points) < 2 {
			continue
		}
		lastPt := series.Points[0]
		for i := 1; i < len(series.Points); i++ {
			pt := series.Points[i]

			rise := float64(pt.Row - lastPt.Row)
			run := float64(pt.Col - lastPt.Col)

			row, col := lastPt.Row, lastPt.Col
			if math.Abs(run) > math.Abs(rise) {
				slope := rise / run
				slopeErr := 0.0
				var riseInc Row
				if slope > 0 {
					riseInc = 1
				} else {
					riseInc = -1
				}
				for col <= pt.Col {
					res.setCell(row, col, false, series.ID)
					col++
					slopeErr += slope
					if slopeErr >= 0.5 {
						row += riseInc
						slopeErr -= 1.0
					}
				}
			} else {
				slope := run / rise
				slopeErr := 0.0
				var runInc Column
				if slope > 0 {
					runInc = 1
				} else {
					runInc = -1
				}
				for row <= pt.Row {
					res.setCell(row, col, false, series.ID)
					row++
					slopeErr += slope
					if slopeErr >= 0.5 {
						col += runInc
						slopeErr -= 1.0
					}
				}
			}

			lastPt = pt
		}
	}

	return res
}

// conveniently, according to the braille patterns docs (e.g.
// https://en.wikipedia.org/wiki/Braille_Patterns), each position in the
// braille cell is mapped to a bit in the byte, like so:
// 0 3
// 1 4
// 2 5
// 6 7

const brailleBlockStart = '⠀'

// brailleMap maps a column-wise layout to the above braille block layout.
var brailleMap = [8]rune{1 << 0, 1 << 1, 1 << 2, 1 << 6, 1 << 3, 1 << 4, 1 << 5, 1 << 7}

// DrawBraille walks the rendered sub-cell grid and emits one braille rune
// per character cell via the output callback.
func DrawBraille(graph *RenderedGraph, output func(row Row, col Column, cell rune, id SeriesID)) {
	currRow := Row(-1)
	currCol := Column(0)
	screenCols := int(graph.Cols) / brailleCellWidth
	if screenCols == 0 {
		return
	}
	for chunkStart := 0; chunkStart < len(graph.Cells); chunkStart += brailleCellPositions {
		if (chunkStart/brailleCellPositions)%screenCols == 0 {
			currRow++
			currCol = 0
		} else {
			currCol++
		}
		targetBits := rune(0)
		var targetID SeriesID
		for cellInd := 0; cellInd < brailleCellPositions; cellInd++ {
			cell := graph.Cells[chunkStart+cellInd]
			if cell.Series == NoSeries {
				continue
			}
			targetBits |= brailleMap[cellInd]

			// we can only have one color, just choose the last one set since
			// it's convenient
			targetID = cell.Series
		}

		if targetBits == 0 {
			output(currRow, currCol, ' ', NoSeries)
			continue
		}
		output(currRow, currCol, targetBits+brailleBlockStart, targetID)
	}
}

func BrailleCellMapper(row Row, col Column, size ScreenSize) int {
	// since a screen character is 4 high by 2 wide (ratio/via braille
	// characters), cells are laid out in 2x4 chunks.  Chunks are arranged
	// row-wise (one whole row, then the next) in order to facilitate printing
	// characters, but cells in a chunk are arranged column-wise to match with
	// how the braille patterns unicode characters do it.

	// flip the graph during rendering
	row = size.Rows - 1 - row

	chunkRow := int(row / brailleCellHeight)
	chunkCol := int(col / brailleCellWidth)
	chunkStart := (chunkRow*(int(size.Cols)/brailleCellWidth) + chunkCol) * brailleCellPositions

	intraChunkRow := int(row % brailleCellHeight)
	intraChunkCol := int(col % brailleCellWidth)
	intraChunkPos := intraChunkCol*brailleCellHeight + intraChunkRow

	return chunkStart + intraChunkPos
}

func BrailleCellScreenSize(termSize ScreenSize) ScreenSize {
	termSize.Rows *= brailleCellHeight
	termSize.Cols *= brailleCellWidth
	return termSize
}
