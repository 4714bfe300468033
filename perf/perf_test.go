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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamnative/hashkit/collection"
)

func testConfig(structure string) Config {
	c := NewConfig()
	c.Structure = structure
	c.RequestRate = 20_000
	c.ReadPercentage = 50
	c.KeysCardinality = 64
	c.ValueSize = 8
	c.Duration = 200 * time.Millisecond
	c.ReportInterval = 50 * time.Millisecond
	c.Collection.InitialCapacity = 1
	return c
}

func TestPerfMap(t *testing.T) {
	report, err := New(testConfig(StructureMap)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StructureMap, report.Structure)
	assert.Positive(t, report.Ops)
	assert.Equal(t, report.Ops, report.Reads+report.Writes)
	assert.LessOrEqual(t, report.Hits, report.Reads)
	assert.LessOrEqual(t, report.Final.Count, 64)
	assert.Positive(t, report.Resizes)
	assert.Equal(t, report.Final.Resizes, int(report.Resizes))
	assert.LessOrEqual(t, report.Final.LoadFactor, collection.DefaultMaxLoadFactor)
}

func TestPerfSet(t *testing.T) {
	config := testConfig(StructureSet)
	config.KeyKind = KeyKindUUID
	config.ReadPercentage = 0
	config.Collection.Placement = collection.PlacementLinearProbe

	report, err := New(config).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StructureSet, report.Structure)
	assert.Zero(t, report.Reads)
	assert.Zero(t, report.Hits)
	assert.Equal(t, report.Ops, report.Writes)
	assert.Positive(t, report.Final.Count)
	assert.LessOrEqual(t, report.Final.Count, 64)
	assert.Zero(t, report.ReadLatency.Max)
}

func TestPerfCanceled(t *testing.T) {
	config := testConfig(StructureMap)
	config.Duration = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(config).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Ops)
	assert.Zero(t, report.Final.Count)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewConfig().Validate())

	for _, test := range []struct {
		name   string
		mutate func(c *Config)
	}{
		{"structure", func(c *Config) { c.Structure = "tree" }},
		{"rate", func(c *Config) { c.RequestRate = 0 }},
		{"read-percentage-low", func(c *Config) { c.ReadPercentage = -1 }},
		{"read-percentage-high", func(c *Config) { c.ReadPercentage = 101 }},
		{"cardinality", func(c *Config) { c.KeysCardinality = 0 }},
		{"key-kind", func(c *Config) { c.KeyKind = "random" }},
		{"duration", func(c *Config) { c.Duration = -time.Second }},
		{"report-interval", func(c *Config) { c.ReportInterval = 0 }},
		{"collection", func(c *Config) { c.Collection.InitialCapacity = 0 }},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := NewConfig()
			test.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	config := NewConfig()
	config.Structure = "tree"

	_, err := New(config).Run(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
