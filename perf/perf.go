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

package perf

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/streamnative/hashkit/collection"
	"github.com/streamnative/hashkit/common/metrics"
)

// Quantiles are expressed in microseconds.
type Quantiles struct {
	P50  float64 `json:"p50" yaml:"p50"`
	P95  float64 `json:"p95" yaml:"p95"`
	P99  float64 `json:"p99" yaml:"p99"`
	P999 float64 `json:"p999" yaml:"p999"`
	Max  float64 `json:"max" yaml:"max"`
}

type Report struct {
	Structure    string           `json:"structure" yaml:"structure"`
	Ops          int64            `json:"ops" yaml:"ops"`
	Reads        int64            `json:"reads" yaml:"reads"`
	Writes       int64            `json:"writes" yaml:"writes"`
	Hits         int64            `json:"hits" yaml:"hits"`
	Resizes      int64            `json:"resizes" yaml:"resizes"`
	Elapsed      time.Duration    `json:"elapsed" yaml:"elapsed"`
	ReadLatency  Quantiles        `json:"read-latency" yaml:"read-latency"`
	WriteLatency Quantiles        `json:"write-latency" yaml:"write-latency"`
	Final        collection.Stats `json:"final" yaml:"final"`
}

type Perf interface {
	Run(ctx context.Context) (Report, error)
}

func New(config Config) Perf {
	return &perf{
		config: config,
	}
}

type perf struct {
	config Config
	keys   []string
	value  []byte

	resizes    atomic.Int64
	count      atomic.Int64
	loadFactor atomic.Uint64

	resizeCounter metrics.Counter
	chainLength   metrics.Histogram
	readLatency   metrics.LatencyHistogram
	writeLatency  metrics.LatencyHistogram
}

func newQuantileStream() *quantile.Stream {
	return quantile.NewTargeted(0.50, 0.95, 0.99, 0.999, 1.0)
}

func query(q *quantile.Stream) Quantiles {
	return Quantiles{
		P50:  q.Query(0.5),
		P95:  q.Query(0.95),
		P99:  q.Query(0.99),
		P999: q.Query(0.999),
		Max:  q.Query(1.0),
	}
}

func (p *perf) generateKeys() {
	p.keys = make([]string, p.config.KeysCardinality)
	for i := range p.keys {
		if p.config.KeyKind == KeyKindUUID {
			p.keys[i] = uuid.NewString()
		} else {
			p.keys[i] = fmt.Sprintf("key-%d", i)
		}
	}
	p.value = make([]byte, p.config.ValueSize)
}

func (p *perf) setupMetrics(kind string) []metrics.Gauge {
	labels := metrics.LabelsForStructure(kind)
	p.resizeCounter = metrics.NewCounter("hashkit_collection_resizes",
		"The number of bucket array resizes", metrics.Dimensionless, labels)
	p.chainLength = metrics.NewCountHistogram("hashkit_collection_longest_chain",
		"The longest bucket chain observed at each report", labels)

	readLabels := metrics.LabelsForStructure(kind)
	readLabels["op"] = "read"
	p.readLatency = metrics.NewLatencyHistogram("hashkit_perf_op_latency",
		"Latency of a single operation", readLabels)
	writeLabels := metrics.LabelsForStructure(kind)
	writeLabels["op"] = "write"
	p.writeLatency = metrics.NewLatencyHistogram("hashkit_perf_op_latency",
		"Latency of a single operation", writeLabels)

	return []metrics.Gauge{
		metrics.NewGauge("hashkit_collection_count",
			"The number of elements stored", metrics.Dimensionless, labels,
			func() int64 { return p.count.Load() }),
		metrics.NewFloatGauge("hashkit_collection_load_factor",
			"The ratio of stored elements to buckets", metrics.Dimensionless, labels,
			func() float64 { return math.Float64frombits(p.loadFactor.Load()) }),
	}
}

func (p *perf) publish(t target) {
	p.count.Store(int64(t.count()))
	p.loadFactor.Store(math.Float64bits(t.loadFactor()))
}

func (p *perf) Run(ctx context.Context) (Report, error) {
	if err := p.config.Validate(); err != nil {
		return Report{}, err
	}

	slog.Info(
		"Starting hashkit perf",
		slog.Any("config", p.config),
	)

	p.generateKeys()

	t, err := newTarget(p.config, collection.WithResizeListener(func(collection.ResizeEvent) {
		p.resizes.Add(1)
		p.resizeCounter.Inc()
	}))
	if err != nil {
		return Report{}, err
	}

	gauges := p.setupMetrics(t.kind())
	p.publish(t)
	defer func() {
		for _, g := range gauges {
			g.Unregister()
		}
	}()

	if p.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Duration)
		defer cancel()
	}

	limiter := rate.NewLimiter(rate.Limit(p.config.RequestRate), max(1, int(p.config.RequestRate)))
	ticker := time.NewTicker(p.config.ReportInterval)
	defer ticker.Stop()

	report := Report{Structure: p.config.Structure}
	rq, wq := newQuantileStream(), newQuantileStream()
	totalRq, totalWq := newQuantileStream(), newQuantileStream()
	var readOps, writeOps int64
	start := time.Now()
	lastReport := start

	for {
		select {
		case <-ticker.C:
			elapsed := time.Since(lastReport)
			lastReport = time.Now()
			p.logInterval(elapsed, readOps, writeOps, rq, wq)
			p.chainLength.Record(t.stats().LongestChain)

			rq.Reset()
			wq.Reset()
			readOps = 0
			writeOps = 0
			continue
		default:
		}

		if err := limiter.Wait(ctx); err != nil {
			// The context is done, or the next token falls past its deadline.
			break
		}

		key := p.keys[rand.IntN(len(p.keys))]
		opStart := time.Now()
		if rand.Float64()*100 < p.config.ReadPercentage {
			if t.read(key) {
				report.Hits++
			}
			latency := time.Since(opStart)
			micros := float64(latency.Nanoseconds()) / 1000.0
			rq.Insert(micros)
			totalRq.Insert(micros)
			p.readLatency.Record(latency)
			report.Reads++
			readOps++
		} else {
			t.write(key, p.value)
			latency := time.Since(opStart)
			micros := float64(latency.Nanoseconds()) / 1000.0
			wq.Insert(micros)
			totalWq.Insert(micros)
			p.writeLatency.Record(latency)
			p.publish(t)
			report.Writes++
			writeOps++
		}
	}

	report.Ops = report.Reads + report.Writes
	report.Resizes = p.resizes.Load()
	report.Elapsed = time.Since(start)
	report.ReadLatency = query(totalRq)
	report.WriteLatency = query(totalWq)
	report.Final = t.stats()

	slog.Info(
		"Finished hashkit perf",
		slog.String("structure", report.Structure),
		slog.String("ops", humanize.Comma(report.Ops)),
		slog.String("elapsed", report.Elapsed.Round(time.Millisecond).String()),
		slog.Int64("resizes", report.Resizes),
		slog.Int("count", report.Final.Count),
		slog.Int("capacity", report.Final.Capacity),
	)
	return report, nil
}

func (p *perf) logInterval(elapsed time.Duration, readOps, writeOps int64, rq, wq *quantile.Stream) {
	seconds := elapsed.Seconds()
	readRate := float64(readOps) / seconds
	writeRate := float64(writeOps) / seconds
	r, w := query(rq), query(wq)

	slog.Info(fmt.Sprintf(`Stats - Total ops: %s ops/s
			Write ops %s w/s  Latency us: 50%% %5.2f - 95%% %5.2f - 99%% %5.2f - 99.9%% %5.2f - max %6.2f
			Read  ops %s r/s  Latency us: 50%% %5.2f - 95%% %5.2f - 99%% %5.2f - 99.9%% %5.2f - max %6.2f`,
		humanize.FormatFloat("#,###.#", readRate+writeRate),
		humanize.FormatFloat("#,###.#", writeRate),
		w.P50, w.P95, w.P99, w.P999, w.Max,
		humanize.FormatFloat("#,###.#", readRate),
		r.P50, r.P95, r.P99, r.P999, r.Max,
	),
		slog.Int64("count", p.count.Load()),
		slog.Int64("resizes", p.resizes.Load()),
	)
}
