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
	"time"

	"github.com/spf13/cobra"

	"github.com/zoomplot/termchart/plot"
	"github.com/zoomplot/termchart/source"
	"github.com/zoomplot/termchart/term"
)

type demoOptions struct {
	samples int
	step    time.Duration

	cfg *Config
}

func newDemoCmd(cfg *Config) *cobra.Command {
	o := &demoOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "chart synthetic series, for kicking the tires",
		RunE: func(c *cobra.Command, args []string) error {
			return o.run()
		},
	}
	cmd.Flags().IntVarP(&o.samples, "samples", "n", 600, "number of samples per series")
	cmd.Flags().DurationVar(&o.step, "step", time.Second, "time between samples")

	return cmd
}

func (o *demoOptions) run() error {
	end := time.Now()
	chart := &term.ChartView{
		Series: plot.SeriesSet{
			source.Sine("sine", 1, o.samples, end, o.step, 50, 30),
			source.RandomWalk("walk", 2, o.samples, end, o.step, 40, 4),
		},
		TimeDomain: true,
	}
	if err := o.cfg.apply(chart); err != nil {
		return err
	}
	return runChart(chart)
}
