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
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Entry is a key/value pair stored in a [HashMap].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// HashMap is a hash table with separate chaining.
//
// Each bucket is an ordered slice of entries. A key is stored in bucket
// hash(key) mod capacity and keys are unique across the whole map. Once an
// insertion pushes the load factor above the configured maximum, the bucket
// array is replaced by one twice as large and every entry is rehashed.
//
// To create a new HashMap, use [NewHashMap] or [NewHashMapFunc].
type HashMap[K comparable, V any] struct {
	buckets [][]Entry[K, V]
	count   int
	resizes int
	hasher  Hasher[K]
	options options
}

// NewHashMap creates a map with the given initial number of buckets, hashing
// keys with [DefaultHasher].
//
// It panics if capacity is not positive or if an option is invalid.
func NewHashMap[K comparable, V any](capacity int, opts ...Option) *HashMap[K, V] {
	return NewHashMapFunc[K, V](capacity, DefaultHasher[K](), opts...)
}

// NewHashMapFunc is like [NewHashMap] with a custom key hasher.
func NewHashMapFunc[K comparable, V any](capacity int, hasher Hasher[K], opts ...Option) *HashMap[K, V] {
	if capacity <= 0 {
		panic(errors.Wrapf(ErrInvalidCapacity, "hash map capacity %d", capacity))
	}
	if hasher == nil {
		panic(ErrInvalidHasher)
	}
	return &HashMap[K, V]{
		buckets: make([][]Entry[K, V], capacity),
		hasher:  hasher,
		options: mustOptions(KindHashMap, opts...),
	}
}

func (m *HashMap[K, V]) bucketOf(key K) int {
	return bucketIndex(m.hasher(key), len(m.buckets))
}

func lookup[K comparable, V any](bucket []Entry[K, V], key K) int {
	for i := range bucket {
		if bucket[i].Key == key {
			return i
		}
	}
	return -1
}

// Put inserts the key or updates the value of an existing one.
// It returns true if a new entry was created.
func (m *HashMap[K, V]) Put(key K, value V) bool {
	b := m.bucketOf(key)
	bucket := m.buckets[b]
	if i := lookup(bucket, key); i >= 0 {
		bucket[i].Value = value
		return false
	}

	m.buckets[b] = append(bucket, Entry[K, V]{Key: key, Value: value})
	m.count++
	m.maybeGrow()
	return true
}

// Get returns the value stored for key, or false if the key is absent.
func (m *HashMap[K, V]) Get(key K) (value V, found bool) {
	bucket := m.buckets[m.bucketOf(key)]
	if i := lookup(bucket, key); i >= 0 {
		return bucket[i].Value, true
	}
	return value, false
}

// Contains reports whether the key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, found := m.Get(key)
	return found
}

// Remove deletes the key and returns its value, or false if the key is absent.
// The remaining entries of the bucket keep their relative order.
func (m *HashMap[K, V]) Remove(key K) (value V, found bool) {
	b := m.bucketOf(key)
	bucket := m.buckets[b]
	i := lookup(bucket, key)
	if i < 0 {
		return value, false
	}

	value = bucket[i].Value
	m.buckets[b] = slices.Delete(bucket, i, i+1)
	m.count--
	return value, true
}

// Entries returns a copy of all the entries, ordered by bucket index and then
// by insertion order within each bucket.
func (m *HashMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.count)
	for _, bucket := range m.buckets {
		entries = append(entries, bucket...)
	}
	return entries
}

// Keys returns a copy of the keys, in the order of [HashMap.Entries].
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Values returns a copy of the values, in the order of [HashMap.Entries].
func (m *HashMap[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			values = append(values, e.Value)
		}
	}
	return values
}

// All iterates over a snapshot of the entries, in the order of [HashMap.Entries].
// The map can be modified while iterating.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	entries := m.Entries()
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clear removes every entry. The capacity is unchanged.
func (m *HashMap[K, V]) Clear() {
	m.buckets = make([][]Entry[K, V], len(m.buckets))
	m.count = 0
}

// Size returns the number of entries.
func (m *HashMap[K, V]) Size() int {
	return m.count
}

// IsEmpty reports whether the map has no entries.
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Capacity returns the number of buckets.
func (m *HashMap[K, V]) Capacity() int {
	return len(m.buckets)
}

// LoadFactor returns Size() / Capacity().
func (m *HashMap[K, V]) LoadFactor() float64 {
	return loadFactor(m.count, len(m.buckets))
}

func (m *HashMap[K, V]) maybeGrow() {
	capacity := m.options.grownCapacity(m.count, len(m.buckets))
	if capacity == len(m.buckets) {
		return
	}

	old := m.buckets
	buckets := make([][]Entry[K, V], capacity)
	for _, bucket := range old {
		for _, e := range bucket {
			// Keys are already unique, no need to look for an existing entry
			b := bucketIndex(m.hasher(e.Key), capacity)
			buckets[b] = append(buckets[b], e)
		}
	}
	m.buckets = buckets
	m.resizes++
	m.options.resized(KindHashMap, len(old), capacity, m.count)
}

// BucketSizes returns the length of every bucket chain.
func (m *HashMap[K, V]) BucketSizes() []int {
	sizes := make([]int, len(m.buckets))
	for i, bucket := range m.buckets {
		sizes[i] = len(bucket)
	}
	return sizes
}

// Stats returns a snapshot of the bucket usage.
func (m *HashMap[K, V]) Stats() Stats {
	s := Stats{
		Count:      m.count,
		Capacity:   len(m.buckets),
		LoadFactor: m.LoadFactor(),
		Resizes:    m.resizes,
	}
	for _, bucket := range m.buckets {
		if len(bucket) > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = max(s.LongestChain, len(bucket))
	}
	return s
}

// String renders the entries as [k1: v1, k2: v2].
func (m *HashMap[K, V]) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	first := true
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(e.String())
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// DebugString renders one line per bucket, including the empty ones:
//
//	bucket 0: k1 = v1, k2 = v2
//	bucket 1:
func (m *HashMap[K, V]) DebugString() string {
	sb := strings.Builder{}
	for i, bucket := range m.buckets {
		pairs := make([]string, len(bucket))
		for j, e := range bucket {
			pairs[j] = fmt.Sprintf("%v = %v", e.Key, e.Value)
		}
		sb.WriteString(fmt.Sprintf("bucket %d: %s\n", i, strings.Join(pairs, ", ")))
	}
	return sb.String()
}
