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

// Package collection provides hash based containers that manage their own
// bucket arrays instead of relying on the built-in map.
//
// [HashMap] resolves collisions with separate chaining: each bucket is an
// ordered slice of entries. [HashSet] stores at most one value per slot and
// places values according to its [Placement] policy.
//
// Both containers grow by doubling their capacity whenever the load factor
// (count / capacity) exceeds the configured maximum, 0.6 by default.
//
// None of the types in this package are safe for concurrent use.
package collection
