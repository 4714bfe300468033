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

package flag

import (
	"github.com/spf13/cobra"

	"github.com/streamnative/hashkit/collection"
)

func ConfigFile(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "conf", "f", "", "Collection config file (yaml)")
}

func MetricsAddr(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "metrics-addr", "m", "", "Serve Prometheus metrics on this address, disabled when empty")
}

// Collection registers the flags of a collection.Config. The values are read
// back through LoadCollectionConfig, which layers them over the file and the
// environment.
func Collection(cmd *cobra.Command, conf *collection.Config) {
	cmd.Flags().IntVar(&conf.InitialCapacity, "initial-capacity", conf.InitialCapacity, "Initial number of buckets")
	cmd.Flags().Float64Var(&conf.MaxLoadFactor, "max-load-factor", conf.MaxLoadFactor, "Grow when count/capacity exceeds this ratio, within (0, 1)")
	cmd.Flags().Var(&conf.Placement, "placement", "Hash set placement policy: first-free or linear-probe")
}
