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
	"strings"

	"github.com/pkg/errors"
)

// Placement selects how a [HashSet] picks the slot of a new value.
type Placement int

const (
	// PlacementFirstFree stores a value in the first free slot, scanning from
	// index 0. Lookups scan every slot and resizing keeps each value at the
	// index it already occupied.
	PlacementFirstFree Placement = iota

	// PlacementLinearProbe stores a value in the first free slot starting at
	// hash(value) mod capacity, wrapping around. Lookups follow the same probe
	// sequence and resizing rehashes every value.
	PlacementLinearProbe
)

const (
	placementFirstFree   = "first-free"
	placementLinearProbe = "linear-probe"
)

func (p Placement) String() string {
	switch p {
	case PlacementFirstFree:
		return placementFirstFree
	case PlacementLinearProbe:
		return placementLinearProbe
	}
	return "unknown"
}

func (p Placement) valid() bool {
	return p == PlacementFirstFree || p == PlacementLinearProbe
}

// Set implements pflag.Value.
func (p *Placement) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case placementFirstFree:
		*p = PlacementFirstFree
	case placementLinearProbe:
		*p = PlacementLinearProbe
	default:
		return errors.Wrapf(ErrInvalidPlacement, "'%s', expected %s or %s", s, placementFirstFree, placementLinearProbe)
	}
	return nil
}

// Type implements pflag.Value.
func (*Placement) Type() string {
	return "placement"
}

func (p Placement) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, errors.Wrapf(ErrInvalidPlacement, "%d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Placement) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
