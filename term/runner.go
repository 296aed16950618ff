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
	"context"
	"sync"

	"github.com/gdamore/tcell"

	"github.com/zoomplot/termchart/debug"
)

var runnerLog = debug.NewLogger("runner.log")

// Runner is in charge of the main event loop.  It sets up the screen and
// handles events (input, mouse, resizes), delegating out to the views and
// the key/mouse handlers.
//
// At any given point in time, the runner has a given View.  When Run starts
// the main loop, it sets up the screen and listens for events, dispatching
// them as such:
//
// - "Resize" events trigger a resize & redraw of the current view
// - "Update" events populate a new view and redraw
// - "Repaint" events repaint the current view
// - "Key" events get sent to the KeyHandler
// - "Mouse" events get sent to the MouseHandler, then trigger a repaint
//
// Handlers run on the event-loop goroutine, so a mouse handler may mutate
// widget state (e.g. the chart's interaction state) without extra locking
// -- events arrive strictly in delivery order, which the interaction state
// machine depends on.
type Runner struct {
	screen   tcell.Screen
	screenMu sync.Mutex

	// KeyHandler receives key events produced during Run.  It must be
	// specified.
	KeyHandler func(*tcell.EventKey)

	// MouseHandler receives mouse events produced during Run.  Optional;
	// when set, mouse reporting is enabled on the screen and every mouse
	// event is followed by a repaint of the current view.
	MouseHandler func(*tcell.EventMouse)

	// MakeScreen allows custom screens to be used.  Mainly useful for
	// testing.  Most cases can use the default value.
	MakeScreen func() (tcell.Screen, error)

	// OnStart is run once the main screen is initialized and the event loop
	// is *about* to start.  Useful for avoiding race conditions regarding
	// the screen being initialized.
	OnStart func()
}

// Run initializes the screen, starts the event loop (potentially with an
// optional initial view), and runs it until the given context is closed.
// When the context is closed, the screen is shut down, and Run returns.
func (r *Runner) Run(ctx context.Context, initialView View) error {
	makeScreen := r.MakeScreen
	if makeScreen == nil {
		makeScreen = tcell.NewScreen
	}
	screen, err := makeScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	if r.MouseHandler != nil {
		screen.EnableMouse()
	}

	r.screenMu.Lock()
	r.screen = screen
	r.screenMu.Unlock()

	mainView := initialView

	// paint one initial time in case we don't get the immediate resize
	// event
	if mainView != nil {
		mainView.FlushTo(screen)
		screen.Show()
	}

	evtLoopDone := make(chan struct{})
	go func() {
		defer close(evtLoopDone)
		if r.OnStart != nil {
			r.OnStart()
		}
		for evt := screen.PollEvent(); evt != nil; evt = screen.PollEvent() {
			screenCols, screenRows := screen.Size()
			switch evt := evt.(type) {
			case *tcell.EventKey:
				r.KeyHandler(evt)
				continue
			case *tcell.EventMouse:
				if r.MouseHandler == nil {
					continue
				}
				col, row := evt.Position()
				runnerLog.Printf("mouse col=%d row=%d buttons=%x", col, row, evt.Buttons())
				r.MouseHandler(evt)
				// mouse handlers mutate widget state, repaint below
			case *tcell.EventInterrupt:
				newView, hasNewView := evt.Data().(View)
				if hasNewView {
					// clearing is less efficient, but means we don't get
					// weird artifacts from panes resizing, etc
					screen.Clear()
					mainView = newView
					mainView.SetBox(PositionBox{Cols: screenCols, Rows: screenRows})
				}
				// continue below
			case *tcell.EventResize:
				screenCols, screenRows = evt.Size()
				if mainView != nil {
					mainView.SetBox(PositionBox{Cols: screenCols, Rows: screenRows})
				}
				screen.Clear()
				// continue below
			default:
				return
			}

			if mainView == nil {
				continue
			}
			mainView.FlushTo(screen)
			screen.Show()
		}
	}()

	<-ctx.Done()
	screen.Fini()

	// wait till the event loop finishes to actually return; this avoids
	// leaking goroutines or accidentally mutating shared state, and lets a
	// program start and stop event loops repeatedly
	<-evtLoopDone

	return nil
}

// RequestRepaint requests a repaint of the current view, if any.  It will
// not block.
func (r *Runner) RequestRepaint() {
	r.screenMu.Lock()
	defer r.screenMu.Unlock()

	r.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// RequestUpdate replaces the current view & requests a paint of it.  It
// will not block.
func (r *Runner) RequestUpdate(newView View) {
	r.screenMu.Lock()
	defer r.screenMu.Unlock()

	r.screen.PostEvent(tcell.NewEventInterrupt(newView))
}
