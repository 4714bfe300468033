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

// Map is the key/value container interface implemented by [HashMap].
type Map[K comparable, V any] interface {
	Put(key K, value V) bool
	Get(key K) (value V, found bool)
	Remove(key K) (value V, found bool)
	Contains(key K) bool
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
	Size() int
	IsEmpty() bool
	Clear()
	String() string
}

// Set is the container interface implemented by [HashSet].
type Set[T comparable] interface {
	Add(value T) bool
	AddAll(values ...T) int
	Contains(value T) bool
	Values() []T
	Count() int
	IsEmpty() bool
	String() string
}

var (
	_ Map[string, any] = (*HashMap[string, any])(nil)
	_ Set[string]      = (*HashSet[string])(nil)
)

// Stats is a snapshot of the occupancy of a container.
//
// For a [HashSet] a bucket holds at most one value, LongestChain is then the
// longest run of consecutive occupied slots.
type Stats struct {
	Count        int     `json:"count" yaml:"count"`
	Capacity     int     `json:"capacity" yaml:"capacity"`
	LoadFactor   float64 `json:"load-factor" yaml:"load-factor"`
	UsedBuckets  int     `json:"used-buckets" yaml:"used-buckets"`
	LongestChain int     `json:"longest-chain" yaml:"longest-chain"`
	Resizes      int     `json:"resizes" yaml:"resizes"`
}
