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
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/streamnative/hashkit/collection"
)

const (
	StructureMap = "map"
	StructureSet = "set"

	KeyKindSeq  = "seq"
	KeyKindUUID = "uuid"
)

var ErrInvalidConfig = errors.New("invalid perf config")

type Config struct {
	Structure       string            `json:"structure" yaml:"structure"`
	RequestRate     float64           `json:"rate" yaml:"rate"`
	ReadPercentage  float64           `json:"read-write-percent" yaml:"read-write-percent"`
	KeysCardinality uint32            `json:"keys-cardinality" yaml:"keys-cardinality"`
	KeyKind         string            `json:"key-kind" yaml:"key-kind"`
	ValueSize       uint32            `json:"value-size" yaml:"value-size"`
	Duration        time.Duration     `json:"duration" yaml:"duration"`
	ReportInterval  time.Duration     `json:"report-interval" yaml:"report-interval"`
	Collection      collection.Config `json:"collection" yaml:"collection"`
}

func NewConfig() Config {
	return Config{
		Structure:       StructureMap,
		RequestRate:     100_000,
		ReadPercentage:  80,
		KeysCardinality: 1000,
		KeyKind:         KeyKindSeq,
		ValueSize:       128,
		ReportInterval:  10 * time.Second,
		Collection:      collection.NewConfig(),
	}
}

func (c Config) Validate() error {
	var errs error
	if c.Structure != StructureMap && c.Structure != StructureSet {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig, "structure must be %q or %q, got %q",
			StructureMap, StructureSet, c.Structure))
	}
	if c.RequestRate <= 0 {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig, "rate must be greater than 0, got %v", c.RequestRate))
	}
	if c.ReadPercentage < 0 || c.ReadPercentage > 100 {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig,
			"read-write-percent must be within [0, 100], got %v", c.ReadPercentage))
	}
	if c.KeysCardinality == 0 {
		errs = multierr.Append(errs, errors.Wrap(ErrInvalidConfig, "keys-cardinality must be greater than 0"))
	}
	if c.KeyKind != KeyKindSeq && c.KeyKind != KeyKindUUID {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig, "key-kind must be %q or %q, got %q",
			KeyKindSeq, KeyKindUUID, c.KeyKind))
	}
	if c.Duration < 0 {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig, "duration must not be negative, got %v", c.Duration))
	}
	if c.ReportInterval <= 0 {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidConfig,
			"report-interval must be greater than 0, got %v", c.ReportInterval))
	}
	return multierr.Append(errs, c.Collection.Validate())
}
