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
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"

	"github.com/streamnative/hashkit/common"
)

// Hasher maps a key to a deterministic 64 bits hash. Keys that are equal
// according to == must produce the same hash.
type Hasher[K any] func(key K) uint64

// Hashable can be implemented by key types that know how to hash themselves.
// It takes precedence over the built-in hashing of [DefaultHasher].
type Hashable interface {
	Hash() uint64
}

// DefaultHasher returns an xxh3 based hasher.
//
// Strings are hashed directly, integers, floats and booleans through their
// 8 bytes little-endian encoding. Any other type is walked with reflection
// following the rules of ==: pointers and channels hash their address,
// structs and arrays their fields, interfaces their dynamic value, and -0
// hashes like +0 at any depth. The walk is slow, prefer implementing
// [Hashable] or passing a custom [Hasher] for composite keys.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		return hashOf(key)
	}
}

func hashOf(key any) uint64 {
	switch k := key.(type) {
	case Hashable:
		return k.Hash()
	case string:
		return common.Xxh364(k)
	case int:
		return common.Xxh3Uint64(uint64(k))
	case int8:
		return common.Xxh3Uint64(uint64(k))
	case int16:
		return common.Xxh3Uint64(uint64(k))
	case int32:
		return common.Xxh3Uint64(uint64(k))
	case int64:
		return common.Xxh3Uint64(uint64(k))
	case uint:
		return common.Xxh3Uint64(uint64(k))
	case uint8:
		return common.Xxh3Uint64(uint64(k))
	case uint16:
		return common.Xxh3Uint64(uint64(k))
	case uint32:
		return common.Xxh3Uint64(uint64(k))
	case uint64:
		return common.Xxh3Uint64(k)
	case uintptr:
		return common.Xxh3Uint64(uint64(k))
	case float32:
		return hashFloat(float64(k))
	case float64:
		return hashFloat(k)
	case bool:
		if k {
			return common.Xxh3Uint64(1)
		}
		return common.Xxh3Uint64(0)
	}
	return xxh3.Hash(appendValue(nil, reflect.ValueOf(key)))
}

func hashFloat(f float64) uint64 {
	return common.Xxh3Uint64(floatBits(f))
}

func floatBits(f float64) uint64 {
	if f == 0 {
		// +0 == -0
		f = 0
	}
	return math.Float64bits(f)
}

// appendValue appends an encoding of v such that values equal under ==
// produce the same bytes.
func appendValue(buf []byte, v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.Invalid:
		// nil interface
		return append(buf, 0)
	case reflect.Bool:
		if v.Bool() {
			return append(buf, 1)
		}
		return append(buf, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(buf, v.Uint())
	case reflect.Float32, reflect.Float64:
		return binary.LittleEndian.AppendUint64(buf, floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		buf = binary.LittleEndian.AppendUint64(buf, floatBits(real(c)))
		return binary.LittleEndian.AppendUint64(buf, floatBits(imag(c)))
	case reflect.String:
		// Length prefix keeps {"ab", "c"} and {"a", "bc"} apart
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v.Len()))
		return append(buf, v.String()...)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return binary.LittleEndian.AppendUint64(buf, uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			return append(buf, 0)
		}
		return appendValue(append(buf, 1), v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			buf = appendValue(buf, v.Index(i))
		}
		return buf
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).Name == "_" {
				continue
			}
			buf = appendValue(buf, v.Field(i))
		}
		return buf
	}
	// Slices, maps and funcs are not comparable, == would panic as well
	panic(fmt.Sprintf("collection: cannot hash value of type %s", v.Type()))
}

func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
