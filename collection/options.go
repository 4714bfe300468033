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
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	DefaultMaxLoadFactor = 0.6
	DefaultSetCapacity   = 32

	growthFactor = 2
)

const (
	KindHashMap = "hash-map"
	KindHashSet = "hash-set"
)

// ResizeEvent describes a completed growth of a container's bucket array.
type ResizeEvent struct {
	Kind        string
	OldCapacity int
	NewCapacity int
	Count       int
}

type options struct {
	maxLoadFactor  float64
	placement      Placement
	logger         *slog.Logger
	resizeListener func(ResizeEvent)
}

// Option is an interface for applying container options.
type Option interface {
	// apply is used to set an Option value of an options.
	apply(options options) (options, error)
}

type optionFunc func(options) (options, error)

func (f optionFunc) apply(o options) (options, error) {
	return f(o)
}

func newOptions(kind string, opts ...Option) (options, error) {
	o := options{
		maxLoadFactor: DefaultMaxLoadFactor,
		placement:     PlacementFirstFree,
	}
	var errs error
	var err error
	for _, opt := range opts {
		o, err = opt.apply(o)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.logger = o.logger.With(slog.String("component", kind))
	return o, errs
}

// mustOptions panics on invalid options: they are fixed by the caller's code,
// not by user input. Use [Config.Validate] for values coming from outside.
func mustOptions(kind string, opts ...Option) options {
	o, err := newOptions(kind, opts...)
	if err != nil {
		panic(errors.Wrapf(err, "invalid %s options", kind))
	}
	return o
}

// WithMaxLoadFactor sets the count / capacity ratio above which the container
// doubles its capacity. It must be in the (0, 1) range. Default is 0.6.
func WithMaxLoadFactor(maxLoadFactor float64) Option {
	return optionFunc(func(o options) (options, error) {
		if !(maxLoadFactor > 0 && maxLoadFactor < 1) {
			return o, errors.Wrapf(ErrInvalidMaxLoadFactor, "%v", maxLoadFactor)
		}
		o.maxLoadFactor = maxLoadFactor
		return o, nil
	})
}

// WithPlacement selects the slot placement policy of a [HashSet].
// It has no effect on a [HashMap].
func WithPlacement(placement Placement) Option {
	return optionFunc(func(o options) (options, error) {
		if !placement.valid() {
			return o, errors.Wrapf(ErrInvalidPlacement, "%d", int(placement))
		}
		o.placement = placement
		return o, nil
	})
}

// WithLogger sets the logger used for debug traces. A nil logger selects
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o options) (options, error) {
		o.logger = logger
		return o, nil
	})
}

// WithResizeListener registers a callback invoked synchronously after each
// resize, once the new bucket array is in place.
func WithResizeListener(listener func(ResizeEvent)) Option {
	return optionFunc(func(o options) (options, error) {
		o.resizeListener = listener
		return o, nil
	})
}

func (o *options) exceedsLoadFactor(count, capacity int) bool {
	return loadFactor(count, capacity) > o.maxLoadFactor
}

// grownCapacity doubles capacity until count fits under the max load factor.
func (o *options) grownCapacity(count, capacity int) int {
	for o.exceedsLoadFactor(count, capacity) {
		capacity *= growthFactor
	}
	return capacity
}

func (o *options) resized(kind string, oldCapacity, newCapacity, count int) {
	o.logger.Debug(
		"Resized bucket array",
		slog.Int("old-capacity", oldCapacity),
		slog.Int("new-capacity", newCapacity),
		slog.Int("count", count),
	)
	if o.resizeListener != nil {
		o.resizeListener(ResizeEvent{
			Kind:        kind,
			OldCapacity: oldCapacity,
			NewCapacity: newCapacity,
			Count:       count,
		})
	}
}

func loadFactor(count, capacity int) float64 {
	return float64(count) / float64(capacity)
}
