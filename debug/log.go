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

// Package debug provides env-gated file loggers.  The TUI owns the
// terminal, so diagnostics (pointer-event traces, mostly) go to files --
// writing to stdout would scribble over the chart.
package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// if this directory is defined, the loggers will be instantiated; otherwise
// they discard everything
const logDirEnv = "TERMCHART_DEBUG_LOG_DIRECTORY"

var (
	lock         sync.Mutex
	cleanupFuncs []func()
)

func registerCleanupFunc(cleanup func()) {
	lock.Lock()
	defer lock.Unlock()
	cleanupFuncs = append(cleanupFuncs, cleanup)
}

// Teardown closes every log file opened so far.  Call it once on the way
// out of the program (or a test).
func Teardown() {
	lock.Lock()
	defer lock.Unlock()
	for _, f := range cleanupFuncs {
		f()
	}
	cleanupFuncs = nil
}

// NewLogger returns a logger writing to fileName under the directory named
// by TERMCHART_DEBUG_LOG_DIRECTORY, or a no-op logger when the variable is
// unset or the file can't be opened.
func NewLogger(fileName string) *log.Logger {
	dir := os.Getenv(logDirEnv)
	if dir == "" {
		return log.New(io.Discard, "", log.LstdFlags)
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return log.New(io.Discard, "", log.LstdFlags)
	}
	lgr := log.New(f, "", log.LstdFlags)
	lgr.Printf("%v enabled\n", fileName)
	registerCleanupFunc(func() {
		f.Close()
	})
	return lgr
}
