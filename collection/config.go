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

package collection

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config holds the container settings that can be loaded from a
// configuration file, the environment or command line flags.
type Config struct {
	InitialCapacity int       `mapstructure:"initial-capacity" json:"initial-capacity" yaml:"initial-capacity"`
	MaxLoadFactor   float64   `mapstructure:"max-load-factor" json:"max-load-factor" yaml:"max-load-factor"`
	Placement       Placement `mapstructure:"placement" json:"placement" yaml:"placement"`
}

func NewConfig() Config {
	return Config{
		InitialCapacity: DefaultSetCapacity,
		MaxLoadFactor:   DefaultMaxLoadFactor,
		Placement:       PlacementFirstFree,
	}
}

// Validate returns all the invalid settings at once.
func (c Config) Validate() error {
	var err error
	if c.InitialCapacity <= 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidCapacity, "initial-capacity %d", c.InitialCapacity))
	}
	if !(c.MaxLoadFactor > 0 && c.MaxLoadFactor < 1) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidMaxLoadFactor, "max-load-factor %v", c.MaxLoadFactor))
	}
	if !c.Placement.valid() {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidPlacement, "placement %d", int(c.Placement)))
	}
	return err
}

// Options converts the settings into container options. The config should
// be validated first.
func (c Config) Options(extra ...Option) []Option {
	return append([]Option{
		WithMaxLoadFactor(c.MaxLoadFactor),
		WithPlacement(c.Placement),
	}, extra...)
}

func NewHashMapFromConfig[K comparable, V any](c Config, opts ...Option) (*HashMap[K, V], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewHashMap[K, V](c.InitialCapacity, c.Options(opts...)...), nil
}

func NewHashSetFromConfig[T comparable](c Config, opts ...Option) (*HashSet[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewHashSet[T](c.InitialCapacity, c.Options(opts...)...), nil
}
