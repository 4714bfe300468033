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
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type slot[T comparable] struct {
	value T
	used  bool
}

// HashSet is a set where every bucket is a single slot holding at most one
// value. Where a value lands is decided by the set's [Placement].
//
// The set doubles its capacity once an insertion pushes the load factor
// above the configured maximum. There is no removal.
//
// To create a new HashSet, use [NewHashSet], [NewDefaultHashSet] or
// [NewHashSetFunc].
type HashSet[T comparable] struct {
	buckets []slot[T]
	count   int
	resizes int
	hasher  Hasher[T]
	options options
}

// NewHashSet creates a set with the given number of slots, hashing values
// with [DefaultHasher].
//
// It panics if capacity is not positive or if an option is invalid.
func NewHashSet[T comparable](capacity int, opts ...Option) *HashSet[T] {
	return NewHashSetFunc[T](capacity, DefaultHasher[T](), opts...)
}

// NewDefaultHashSet creates a set with [DefaultSetCapacity] slots.
func NewDefaultHashSet[T comparable](opts ...Option) *HashSet[T] {
	return NewHashSet[T](DefaultSetCapacity, opts...)
}

// NewHashSetFunc is like [NewHashSet] with a custom hasher.
func NewHashSetFunc[T comparable](capacity int, hasher Hasher[T], opts ...Option) *HashSet[T] {
	if capacity <= 0 {
		panic(errors.Wrapf(ErrInvalidCapacity, "hash set capacity %d", capacity))
	}
	if hasher == nil {
		panic(ErrInvalidHasher)
	}
	return &HashSet[T]{
		buckets: make([]slot[T], capacity),
		hasher:  hasher,
		options: mustOptions(KindHashSet, opts...),
	}
}

// Contains reports whether value is in the set.
func (s *HashSet[T]) Contains(value T) bool {
	if s.options.placement == PlacementLinearProbe {
		_, found := s.probe(value)
		return found
	}
	for _, sl := range s.buckets {
		if sl.used && sl.value == value {
			return true
		}
	}
	return false
}

// probe walks the probe sequence of value and returns either the slot
// holding it or the first free slot met.
func (s *HashSet[T]) probe(value T) (index int, found bool) {
	capacity := len(s.buckets)
	start := bucketIndex(s.hasher(value), capacity)
	for i := 0; i < capacity; i++ {
		index = (start + i) % capacity
		sl := s.buckets[index]
		if !sl.used {
			return index, false
		}
		if sl.value == value {
			return index, true
		}
	}
	// Unreachable while the max load factor is lower than 1
	return -1, false
}

func (s *HashSet[T]) firstFree() int {
	for i, sl := range s.buckets {
		if !sl.used {
			return i
		}
	}
	return -1
}

// Add inserts value and returns true, or returns false if the value was
// already present.
func (s *HashSet[T]) Add(value T) bool {
	var index int
	if s.options.placement == PlacementLinearProbe {
		i, found := s.probe(value)
		if found {
			return false
		}
		index = i
	} else {
		if s.Contains(value) {
			return false
		}
		index = s.firstFree()
	}

	s.buckets[index] = slot[T]{value: value, used: true}
	s.count++
	s.maybeGrow()
	return true
}

// AddAll inserts every value and returns how many were not already present.
func (s *HashSet[T]) AddAll(values ...T) int {
	added := 0
	for _, v := range values {
		if s.Add(v) {
			added++
		}
	}
	return added
}

func (s *HashSet[T]) maybeGrow() {
	capacity := s.options.grownCapacity(s.count, len(s.buckets))
	if capacity == len(s.buckets) {
		return
	}

	old := s.buckets
	s.buckets = make([]slot[T], capacity)
	if s.options.placement == PlacementLinearProbe {
		for _, sl := range old {
			if sl.used {
				i, _ := s.probe(sl.value)
				s.buckets[i] = sl
			}
		}
	} else {
		// Values keep their index, the new array is strictly larger
		copy(s.buckets, old)
	}
	s.resizes++
	s.options.resized(KindHashSet, len(old), capacity, s.count)
}

// Values returns a copy of the values, in slot order.
func (s *HashSet[T]) Values() []T {
	values := make([]T, 0, s.count)
	for _, sl := range s.buckets {
		if sl.used {
			values = append(values, sl.value)
		}
	}
	return values
}

// All iterates over a snapshot of the values, in slot order.
func (s *HashSet[T]) All() iter.Seq[T] {
	values := s.Values()
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns the number of values in the set.
func (s *HashSet[T]) Count() int {
	return s.count
}

// IsEmpty reports whether the set has no values.
func (s *HashSet[T]) IsEmpty() bool {
	return s.count == 0
}

// Capacity returns the number of slots.
func (s *HashSet[T]) Capacity() int {
	return len(s.buckets)
}

// LoadFactor returns Count() / Capacity().
func (s *HashSet[T]) LoadFactor() float64 {
	return loadFactor(s.count, len(s.buckets))
}

// Placement returns the slot placement policy chosen at construction.
func (s *HashSet[T]) Placement() Placement {
	return s.options.placement
}

// Stats returns a snapshot of the slot usage. LongestChain is the longest
// run of consecutive used slots.
func (s *HashSet[T]) Stats() Stats {
	st := Stats{
		Count:       s.count,
		Capacity:    len(s.buckets),
		LoadFactor:  s.LoadFactor(),
		UsedBuckets: s.count,
		Resizes:     s.resizes,
	}
	run := 0
	for _, sl := range s.buckets {
		if !sl.used {
			run = 0
			continue
		}
		run++
		st.LongestChain = max(st.LongestChain, run)
	}
	return st
}

// String renders the values as {a, b}.
func (s *HashSet[T]) String() string {
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
