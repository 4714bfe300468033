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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamnative/hashkit/common"
)

type pair struct {
	name  string
	value int
}

type id uint32

type node struct {
	N int
}

type fpoint struct {
	X, Y float64
}

type labelled struct {
	label any
	ref   *node
	ch    chan int
	pos   [2]float32
	_     int
}

func TestDefaultHasher(t *testing.T) {
	s := DefaultHasher[string]()
	assert.Equal(t, common.Xxh364("foo"), s("foo"))
	assert.Equal(t, s("foo"), s("foo"))
	assert.NotEqual(t, s("foo"), s("bar"))

	i := DefaultHasher[int]()
	assert.Equal(t, i(42), i(42))
	assert.NotEqual(t, i(42), i(43))
	assert.Equal(t, common.Xxh3Uint64(42), i(42))

	// Same bits, different widths
	assert.Equal(t, DefaultHasher[int8]()(-1), DefaultHasher[int64]()(-1))

	b := DefaultHasher[bool]()
	assert.NotEqual(t, b(true), b(false))

	p := DefaultHasher[pair]()
	assert.Equal(t, p(pair{"a", 1}), p(pair{"a", 1}))
	assert.NotEqual(t, p(pair{"a", 1}), p(pair{"a", 2}))

	named := DefaultHasher[id]()
	assert.Equal(t, named(7), named(7))
	assert.NotEqual(t, named(7), named(8))
}

func TestDefaultHasher_Floats(t *testing.T) {
	f := DefaultHasher[float64]()
	negativeZero := math.Copysign(0, -1)
	assert.Equal(t, f(0), f(negativeZero))
	assert.NotEqual(t, f(1.5), f(2.5))

	f32 := DefaultHasher[float32]()
	assert.Equal(t, f32(0), f32(float32(negativeZero)))
	assert.Equal(t, f(1.5), f32(1.5))
}

func TestDefaultHasher_Hashable(t *testing.T) {
	h := DefaultHasher[point]()
	assert.Equal(t, uint64(33), h(point{1, 2}))
}

func TestDefaultHasher_Interface(t *testing.T) {
	h := DefaultHasher[any]()
	assert.Equal(t, common.Xxh364("foo"), h("foo"))
	assert.Equal(t, h(3), h(3))
	assert.NotEqual(t, h(3), h("3"))
}

func TestDefaultHasher_Pointers(t *testing.T) {
	h := DefaultHasher[*node]()
	n := &node{N: 1}
	before := h(n)

	n.N = 2
	assert.Equal(t, before, h(n))
	assert.NotEqual(t, h(n), h(&node{N: 2}))
	assert.Equal(t, h(nil), h(nil))

	c := DefaultHasher[chan int]()
	ch := make(chan int)
	assert.Equal(t, c(ch), c(ch))
	assert.NotEqual(t, c(ch), c(make(chan int)))
}

func TestDefaultHasher_ConsistentWithEquality(t *testing.T) {
	negativeZero := math.Copysign(0, -1)
	n := &node{N: 1}
	ch := make(chan int)

	for _, test := range []struct {
		name string
		a, b any
	}{
		{"struct-zero-sign", fpoint{0, 1}, fpoint{negativeZero, 1}},
		{"array-zero-sign", [2]float64{0, negativeZero}, [2]float64{negativeZero, 0}},
		{"complex-zero-sign", complex(0, 1), complex(negativeZero, 1)},
		{"pointer", n, n},
		{"nested-interface", labelled{label: fpoint{0, 1}}, labelled{label: fpoint{negativeZero, 1}}},
		{"nested-refs", labelled{ref: n, ch: ch, pos: [2]float32{0, 1}}, labelled{ref: n, ch: ch, pos: [2]float32{float32(negativeZero), 1}}},
		{"nil-interface", labelled{}, labelled{}},
		{"nil", nil, nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			require.True(t, test.a == test.b)
			h := DefaultHasher[any]()
			assert.Equal(t, h(test.a), h(test.b))
		})
	}

	f := DefaultHasher[fpoint]()
	assert.Equal(t, f(fpoint{0, 1}), f(fpoint{negativeZero, 1}))
	assert.NotEqual(t, f(fpoint{0, 1}), f(fpoint{1, 0}))

	l := DefaultHasher[labelled]()
	before := l(labelled{ref: n})
	n.N = 5
	assert.Equal(t, before, l(labelled{ref: n}))
	assert.NotEqual(t, l(labelled{label: 1}), l(labelled{label: "1"}))
}

func TestDefaultHasher_StringFields(t *testing.T) {
	h := DefaultHasher[[2]string]()
	assert.NotEqual(t, h([2]string{"ab", "c"}), h([2]string{"a", "bc"}))
}

func TestDefaultHasher_NotComparable(t *testing.T) {
	h := DefaultHasher[any]()
	assert.Panics(t, func() { h([]int{1}) })
	assert.Panics(t, func() { h(labelled{label: map[string]int{}}) })
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 3, bucketIndex(13, 10))
	assert.Equal(t, 0, bucketIndex(0, 1))
	assert.Equal(t, 1, bucketIndex(math.MaxUint64, 2))
}
