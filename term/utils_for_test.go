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

package term_test

import (
	"fmt"
	"reflect"

	"github.com/gdamore/tcell"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/zoomplot/termchart/term"
)

// cellsMatcher matches expected screen contents against an actual
// tcell.SimulationScreen (or a Flushable, rendered to a fresh one),
// comparing runes only and ignoring style.
type cellsMatcher struct {
	expected tcell.SimulationScreen
}

// onScreen renders a flushable to a fake screen the same size as the
// expected one.
func (m *cellsMatcher) onScreen(contents term.Flushable) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("")
	screen.Init()
	screen.SetSize(m.expected.Size())
	contents.FlushTo(screen)
	screen.Show()

	return screen
}

func (m *cellsMatcher) matchWithContents(actualCells []tcell.SimCell) (bool, error) {
	expectedCells, _, _ := m.expected.GetContents()

	expectedRunes := make([]rune, 0, len(expectedCells))
	for _, cell := range expectedCells {
		expectedRunes = append(expectedRunes, cell.Runes...)
	}
	actualRunes := make([]rune, 0, len(actualCells))
	for _, cell := range actualCells {
		actualRunes = append(actualRunes, cell.Runes...)
	}

	return reflect.DeepEqual(expectedRunes, actualRunes), nil
}

func (m *cellsMatcher) Match(actual interface{}) (bool, error) {
	switch actual := actual.(type) {
	case term.Flushable:
		actualCells, _, _ := m.onScreen(actual).GetContents()
		return m.matchWithContents(actualCells)
	case tcell.SimulationScreen:
		actualCells, _, _ := actual.GetContents()
		return m.matchWithContents(actualCells)
	default:
		return false, fmt.Errorf("can only match a Flushable or a SimulationScreen, not %T", actual)
	}
}

func (m *cellsMatcher) actualScreen(actual interface{}) tcell.SimulationScreen {
	switch actual := actual.(type) {
	case term.Flushable:
		return m.onScreen(actual)
	case tcell.SimulationScreen:
		return actual
	default:
		return nil
	}
}

func (m *cellsMatcher) FailureMessage(actual interface{}) string {
	screen := m.actualScreen(actual)
	if screen == nil {
		return format.Message(actual, "to display like", displayCells(m.expected))
	}
	return format.Message("\n"+displayCells(screen), "to equal (ignoring style)", "\n"+displayCells(m.expected))
}

func (m *cellsMatcher) NegatedFailureMessage(actual interface{}) string {
	screen := m.actualScreen(actual)
	if screen == nil {
		return format.Message(actual, "not to display like", displayCells(m.expected))
	}
	return format.Message("\n"+displayCells(screen), "not to equal (ignoring style)", "\n"+displayCells(m.expected))
}

// displayCells renders the screen contents as they'd look on the terminal,
// wrapped to the screen width.  It ignores wide characters.
func displayCells(screen tcell.SimulationScreen) string {
	cells, _, _ := screen.GetContents()
	screenCols, _ := screen.Size()

	var res []rune
	for i, cell := range cells {
		if i%screenCols == 0 && i != 0 {
			res = append(res, '\n')
		}
		if len(cell.Runes) != 0 {
			res = append(res, cell.Runes[0])
		}
	}

	return string(res)
}

// DisplayLike matches the given string against the actual screen's contents,
// ignoring styling.  "actual" can be a tcell.SimulationScreen, or a
// Flushable (which gets rendered to a fake screen first).
func DisplayLike(width, height int, text string) types.GomegaMatcher {
	expected := tcell.NewSimulationScreen("")
	expected.Init()
	expected.SetSize(width, height)

	row := -1
	col := -1
	for _, rn := range text {
		col++
		if col%width == 0 {
			row++
			col = 0
		}
		expected.SetContent(col, row, rn, nil, tcell.StyleDefault)
	}

	expected.Show()

	return &cellsMatcher{expected: expected}
}

// screenRow extracts one row of the screen as a plain string.
func screenRow(screen tcell.SimulationScreen, row int) string {
	cells, width, _ := screen.GetContents()

	var res []rune
	for col := 0; col < width; col++ {
		cell := cells[row*width+col]
		if len(cell.Runes) != 0 {
			res = append(res, cell.Runes[0])
		}
	}
	return string(res)
}

// screenHasRune reports whether the given rune appears anywhere on screen.
func screenHasRune(screen tcell.SimulationScreen, rn rune) bool {
	cells, _, _ := screen.GetContents()
	for _, cell := range cells {
		for _, r := range cell.Runes {
			if r == rn {
				return true
			}
		}
	}
	return false
}

// screenHasReverse reports whether any on-screen cell is in reverse video.
func screenHasReverse(screen tcell.SimulationScreen) bool {
	cells, _, _ := screen.GetContents()
	for _, cell := range cells {
		_, _, attrs := cell.Style.Decompose()
		if attrs&tcell.AttrReverse != 0 {
			return true
		}
	}
	return false
}
