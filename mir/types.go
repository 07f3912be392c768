// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package mir is the typed mid-level IR (spec §4.7): HIR lowered to
// Move's value universe {Num, Bool, Storage, Memory, Signer} with
// explicit casts, ready for the emitter to walk into Move file_format
// tables.
package mir

import (
	"fmt"

	"github.com/holiman/uint256"
)

// SType is one of Move's handful of value kinds this translator needs.
type SType int

const (
	Number SType = iota // a u128/u256 word, the math-model's choice
	Bool
	Storage // &mut GlobalStorage-style resource handle
	Memory  // &mut vector<u8> scratch buffer handle
	Signer
)

func (t SType) String() string {
	switch t {
	case Number:
		return "Number"
	case Bool:
		return "Bool"
	case Storage:
		return "Storage"
	case Memory:
		return "Memory"
	case Signer:
		return "Signer"
	default:
		return fmt.Sprintf("SType(%d)", int(t))
	}
}

// LocalIndex is a function-local variable's slot in the Move local plan.
type LocalIndex = uint8

// Variable references one function-local slot by its type and index —
// distinct slots never alias even across types (spec §4.7 step 6's
// per-type free list).
type Variable struct {
	Type  SType
	Index LocalIndex
}

// Value is a compile-time-known MIR constant. Num carries the full
// 256-bit width regardless of math model; clamping to the u128 maximum
// (if that model is selected) happens only at emission, per spec §4.9's
// MathModel split.
type Value struct {
	Num    *uint256.Int
	Bool   bool
	IsBool bool
}

// NumValue builds a Number-typed constant.
func NumValue(n *uint256.Int) Value { return Value{Num: n} }

// BoolValue builds a Bool-typed constant.
func BoolValue(b bool) Value { return Value{Bool: b, IsBool: true} }

func (v Value) sType() SType {
	if v.IsBool {
		return Bool
	}
	return Number
}
