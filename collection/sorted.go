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
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// SortedEntries returns the entries of m ordered by key.
func SortedEntries[K constraints.Ordered, V any](m Map[K, V]) []Entry[K, V] {
	entries := m.Entries()
	slices.SortFunc(entries, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

// SortedValues returns the values of s in ascending order.
func SortedValues[T constraints.Ordered](s Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
