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

	"go.opentelemetry.io/otel/metric"
)

type Gauge interface {
	Unregister()
}

type gauge struct {
	registration metric.Registration
	name         string
}

func (g *gauge) Unregister() {
	fatalOnErr(g.registration.Unregister(), g.name)
}

// NewGauge registers an asynchronous gauge. The callback is invoked from the
// collection goroutine, so it must only read state that is safe to share.
func NewGauge(name string, description string, unit Unit, labels map[string]any, callback func() int64) Gauge {
	g, err := meter.Int64ObservableGauge(name,
		metric.WithUnit(string(unit)),
		metric.WithDescription(description),
	)
	fatalOnErr(err, name)

	attrs := getAttrs(labels)
	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(g, callback(), attrs)
		return nil
	}, g)
	fatalOnErr(err, name)

	return &gauge{registration: registration, name: name}
}

func NewFloatGauge(name string, description string, unit Unit, labels map[string]any, callback func() float64) Gauge {
	g, err := meter.Float64ObservableGauge(name,
		metric.WithUnit(string(unit)),
		metric.WithDescription(description),
	)
	fatalOnErr(err, name)

	attrs := getAttrs(labels)
	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveFloat64(g, callback(), attrs)
		return nil
	}, g)
	fatalOnErr(err, name)

	return &gauge{registration: registration, name: name}
}
