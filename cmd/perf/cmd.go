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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/hashkit/cmd/flag"
	"github.com/streamnative/hashkit/common/metrics"
	"github.com/streamnative/hashkit/perf"
)

var (
	Cmd = &cobra.Command{
		Use:   "perf",
		Short: "hashkit perf workload",
		Long: `Drive a rate limited mix of reads and writes against a hash map or a
hash set and report throughput, latency quantiles and resize activity`,
		RunE: exec,
	}

	config      = perf.NewConfig()
	configFile  string
	metricsAddr string
)

func init() {
	Cmd.Flags().StringVar(&config.Structure, "structure", config.Structure, "Structure under load: map or set")
	Cmd.Flags().Float64VarP(&config.RequestRate, "rate", "r", config.RequestRate, "Request rate, ops/s")
	Cmd.Flags().Float64VarP(&config.ReadPercentage, "read-write-percent", "p", config.ReadPercentage, "Percentage of read requests, compared to total requests")
	Cmd.Flags().Uint32Var(&config.KeysCardinality, "keys-cardinality", config.KeysCardinality, "Number of distinct keys")
	Cmd.Flags().StringVar(&config.KeyKind, "key-kind", config.KeyKind, "Key generator: seq or uuid")
	Cmd.Flags().Uint32VarP(&config.ValueSize, "value-size", "s", config.ValueSize, "Size of the values to write")
	Cmd.Flags().DurationVar(&config.Duration, "duration", config.Duration, "How long to run, 0 runs until interrupted")
	Cmd.Flags().DurationVar(&config.ReportInterval, "report-interval", config.ReportInterval, "Interval between stats reports")

	flag.MetricsAddr(Cmd, &metricsAddr)
	flag.ConfigFile(Cmd, &configFile)
	flag.Collection(Cmd, &config.Collection)
}

func exec(cmd *cobra.Command, _ []string) error {
	collectionConfig, err := flag.LoadCollectionConfig(cmd, configFile)
	if err != nil {
		return err
	}
	config.Collection = collectionConfig

	if err := config.Validate(); err != nil {
		return err
	}

	if metricsAddr != "" {
		m, err := metrics.Start(metricsAddr)
		if err != nil {
			return err
		}
		defer m.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := perf.New(config).Run(ctx)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
