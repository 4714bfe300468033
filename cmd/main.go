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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/streamnative/hashkit/cmd/inspect"
	"github.com/streamnative/hashkit/cmd/perf"
	"github.com/streamnative/hashkit/common"
	"github.com/streamnative/hashkit/common/logging"
)

type LogLevelError string

func (l LogLevelError) Error() string {
	return fmt.Sprintf("unknown log level (%s)", string(l))
}

var (
	logLevelStr string
	profiler    io.Closer

	rootCmd = &cobra.Command{
		Use:               "hashkit",
		Short:             "Hash map and hash set toolkit",
		Long:              `Tools to inspect and load-test the hashkit map and set containers`,
		PersistentPreRunE: configure,
		PersistentPostRun: func(*cobra.Command, []string) {
			if profiler != nil {
				_ = profiler.Close()
			}
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")
	rootCmd.PersistentFlags().BoolVar(&common.PprofEnable, "profile", false, "Enable pprof profiler")
	rootCmd.PersistentFlags().StringVar(&common.PprofBindAddress, "profile-bind-address", "127.0.0.1:6060", "Bind address for pprof")

	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(perf.Cmd)
}

func configure(*cobra.Command, []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return LogLevelError(logLevelStr)
	}
	logging.LogLevel = level
	logging.ConfigureLogger()

	profiler = common.RunProfiling()
	return nil
}

func main() {
	common.DoWithLabels(context.Background(), map[string]string{
		"hashkit": "main",
	}, func() {
		if _, err := maxprocs.Set(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
	})
}
