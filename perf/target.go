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
	"github.com/streamnative/hashkit/collection"
)

// target is the structure under load. Implementations are not safe for
// concurrent use; the driver calls them from a single goroutine.
type target interface {
	kind() string
	read(key string) bool
	write(key string, value []byte)
	count() int
	loadFactor() float64
	stats() collection.Stats
}

func newTarget(config Config, opts ...collection.Option) (target, error) {
	if config.Structure == StructureSet {
		s, err := collection.NewHashSetFromConfig[string](config.Collection, opts...)
		if err != nil {
			return nil, err
		}
		return &setTarget{s}, nil
	}

	m, err := collection.NewHashMapFromConfig[string, []byte](config.Collection, opts...)
	if err != nil {
		return nil, err
	}
	return &mapTarget{m}, nil
}

type mapTarget struct {
	m *collection.HashMap[string, []byte]
}

func (t *mapTarget) kind() string {
	return collection.KindHashMap
}

func (t *mapTarget) read(key string) bool {
	_, ok := t.m.Get(key)
	return ok
}

func (t *mapTarget) write(key string, value []byte) {
	t.m.Put(key, value)
}

func (t *mapTarget) count() int {
	return t.m.Size()
}

func (t *mapTarget) loadFactor() float64 {
	return t.m.LoadFactor()
}

func (t *mapTarget) stats() collection.Stats {
	return t.m.Stats()
}

type setTarget struct {
	s *collection.HashSet[string]
}

func (t *setTarget) kind() string {
	return collection.KindHashSet
}

func (t *setTarget) read(key string) bool {
	return t.s.Contains(key)
}

func (t *setTarget) write(key string, _ []byte) {
	t.s.Add(key)
}

func (t *setTarget) count() int {
	return t.s.Count()
}

func (t *setTarget) loadFactor() float64 {
	return t.s.LoadFactor()
}

func (t *setTarget) stats() collection.Stats {
	return t.s.Stats()
}
