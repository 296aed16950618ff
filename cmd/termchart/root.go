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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/zoomplot/termchart/term"
)

// Config holds chart appearance defaults, optionally loaded from a YAML
// file so they don't have to be repeated on every invocation.
type Config struct {
	DomainTickSpacing int    `yaml:"domainTickSpacing"`
	RangeTickSpacing  int    `yaml:"rangeTickSpacing"`
	PadCells          int    `yaml:"padCells"`
	SIDigits          int    `yaml:"siDigits"`
	Timezone          string `yaml:"timezone"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) apply(chart *term.ChartView) error {
	chart.DomainTickSpacing = c.DomainTickSpacing
	chart.RangeTickSpacing = c.RangeTickSpacing
	chart.PadCells = c.PadCells
	chart.SIDigits = c.SIDigits
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
		}
		chart.Location = loc
	}
	return nil
}

// timezoneValue is a pflag.Value that rejects unknown IANA zone names at
// parse time instead of deep inside chart setup.
type timezoneValue struct {
	name *string
}

var _ pflag.Value = timezoneValue{}

func (v timezoneValue) Set(raw string) error {
	if _, err := time.LoadLocation(raw); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", raw, err)
	}
	*v.name = raw
	return nil
}

func (v timezoneValue) String() string { return *v.name }
func (v timezoneValue) Type() string   { return "timezone" }

func newRootCmd() *cobra.Command {
	var configPath string
	var timezone string
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:          "termchart",
		Short:        "interactive zoomable line charts in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = loaded
			// the flag wins over the config file
			if timezone != "" {
				cfg.Timezone = timezone
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file with chart defaults")
	cmd.PersistentFlags().Var(timezoneValue{name: &timezone}, "timezone", "IANA timezone for time axis labels")

	cmd.AddCommand(newDemoCmd(cfg))
	cmd.AddCommand(newPromCmd(cfg))

	return cmd
}

const statusHelp = " drag: zoom in │ click or [r]: zoom out │ right-click: reset │ [q]: quit "

// runChart runs the interactive event loop around the chart until the user
// quits.
func runChart(chart *term.ChartView) error {
	bar := &term.TextLine{Text: statusHelp, Style: tcell.StyleDefault.Reverse(true)}
	view := &term.SplitView{
		Dock:     term.PosBelow,
		DockSize: 1,
		Docked:   bar,
		Flexed:   chart,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runner *term.Runner
	runner = &term.Runner{
		KeyHandler: func(key *tcell.EventKey) {
			switch {
			case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC,
				key.Key() == tcell.KeyRune && key.Rune() == 'q':
				cancel()
			case key.Key() == tcell.KeyRune && key.Rune() == 'r':
				chart.ResetZoom()
				runner.RequestRepaint()
			}
		},
		MouseHandler: chart.HandleMouse,
	}
	return runner.Run(ctx, view)
}
