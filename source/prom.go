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

package source

import (
	"context"
	"fmt"
	"time"

	promapi "github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/zoomplot/termchart/plot"
)

// PromClient fetches time series from a Prometheus HTTP API endpoint.
type PromClient struct {
	api promv1.API
}

func NewPromClient(endpoint string) (*PromClient, error) {
	client, err := promapi.NewClient(promapi.Config{Address: endpoint})
	if err != nil {
		return nil, fmt.Errorf("setting up prometheus client for %q: %w", endpoint, err)
	}
	return &PromClient{api: promv1.NewAPI(client)}, nil
}

// QueryRange evaluates query over the trailing window at the given step and
// returns the raw matrix.  Warnings are ignored; charts of partial data are
// better than no chart.
func (c *PromClient) QueryRange(ctx context.Context, query string, window, step time.Duration) (model.Value, error) {
	now := time.Now()
	val, _, err := c.api.QueryRange(ctx, query, promv1.Range{
		Start: now.Add(-window),
		End:   now,
		Step:  step,
	})
	if err != nil {
		return nil, fmt.Errorf("range query %q: %w", query, err)
	}
	return val, nil
}

// ToSeriesSet converts a range-query result to chart series.  Sample
// timestamps are already unix milliseconds, which is exactly the chart's
// time-domain coordinate.
func ToSeriesSet(val model.Value) (plot.SeriesSet, error) {
	matrix, ok := val.(model.Matrix)
	if !ok {
		return nil, fmt.Errorf("expected a range vector result, got %v", val.Type())
	}

	set := make(plot.SeriesSet, 0, len(matrix))
	for i, stream := range matrix {
		pts := make([]plot.Point, len(stream.Values))
		for j, sample := range stream.Values {
			pts[j] = XY{XV: float64(sample.Timestamp), YV: float64(sample.Value)}
		}
		set = append(set, NewMemSeries(stream.Metric.String(), plot.SeriesID(i+1), pts))
	}
	return set, nil
}
