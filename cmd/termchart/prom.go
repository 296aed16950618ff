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
	"time"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/zoomplot/termchart/source"
	"github.com/zoomplot/termchart/term"
)

type promOptions struct {
	endpoint string
	query    string
	window   time.Duration
	step     time.Duration
	dump     bool

	cfg *Config
}

func newPromCmd(cfg *Config) *cobra.Command {
	o := &promOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "prom",
		Short: "chart the result of a Prometheus range query",
		Example: `
termchart prom -q 'rate(http_requests_total[5m])'                # against localhost
termchart prom -e http://prom:9090 -q up --window 6h --step 1m   # a remote endpoint
termchart prom -q up --dump                                      # print samples, skip the TUI
`,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}
			return o.run(c.Context())
		},
	}
	cmd.Flags().StringVarP(&o.endpoint, "endpoint", "e", "http://localhost:9090", "prometheus endpoint to query")
	cmd.Flags().StringVarP(&o.query, "query", "q", "", "promql expression to chart")
	cmd.Flags().DurationVar(&o.window, "window", time.Hour, "how far back to fetch")
	cmd.Flags().DurationVar(&o.step, "step", 15*time.Second, "query resolution step")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "pretty-print the fetched samples instead of charting them")

	return cmd
}

func (o *promOptions) validate() error {
	if o.query == "" {
		return fmt.Errorf("a query is required (-q)")
	}
	if o.step <= 0 || o.window <= 0 {
		return fmt.Errorf("window and step must be positive")
	}
	return nil
}

func (o *promOptions) run(ctx context.Context) error {
	client, err := source.NewPromClient(o.endpoint)
	if err != nil {
		return err
	}

	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	val, err := client.QueryRange(queryCtx, o.query, o.window, o.step)
	if err != nil {
		return err
	}

	if o.dump {
		out, err := prettyjson.Marshal(val)
		if err != nil {
			return fmt.Errorf("formatting samples: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	set, err := source.ToSeriesSet(val)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return fmt.Errorf("query %q returned no series", o.query)
	}

	chart := &term.ChartView{
		Series:     set,
		TimeDomain: true,
	}
	if err := o.cfg.apply(chart); err != nil {
		return err
	}
	return runChart(chart)
}
