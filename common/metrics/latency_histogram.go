// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// In-memory operations complete in well under a millisecond.
var latencyBucketsMicros = []float64{
	0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1_000, 10_000,
}

type Timer struct {
	histo *latencyHistogram
	start time.Time
}

func (tm Timer) Done() {
	tm.histo.Record(time.Since(tm.start))
}

type LatencyHistogram interface {
	Timer() Timer
	Record(d time.Duration)
}

type latencyHistogram struct {
	h     metric.Float64Histogram
	attrs metric.MeasurementOption
}

func (t *latencyHistogram) Timer() Timer {
	return Timer{t, time.Now()}
}

func (t *latencyHistogram) Record(d time.Duration) {
	t.h.Record(context.Background(), float64(d.Nanoseconds())/1000.0, t.attrs)
}

func NewLatencyHistogram(name string, description string, labels map[string]any) LatencyHistogram {
	h, err := meter.Float64Histogram(
		name,
		metric.WithUnit(string(Microseconds)),
		metric.WithDescription(description),
	)
	fatalOnErr(err, name)

	return &latencyHistogram{h: h, attrs: getAttrs(labels)}
}
