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

// Package abi loads the Solidity ABI JSON describing a contract's external
// surface and turns it into the canonical signatures, selectors and
// scalar types the rest of the pipeline needs (spec §6, §4.10).
package abi

import "fmt"

// Type is the subset of Solidity ABI scalar types this translator
// supports — every EVM word the pipeline can round-trip through a single
// 256-bit stack slot. Arrays, tuples, strings and bytes are a non-goal:
// a multi-word ABI input is not supported per spec §4.7 step 1.
type Type int

const (
	Uint256 Type = iota
	Uint128
	Uint64
	Uint32
	Uint8
	Bool
	Address
)

func (t Type) String() string {
	switch t {
	case Uint256:
		return "uint256"
	case Uint128:
		return "uint128"
	case Uint64:
		return "uint64"
	case Uint32:
		return "uint32"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Address:
		return "address"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// parseType maps a Solidity ABI type string to Type, or reports
// UnsupportedType (spec §7's AbiError taxonomy).
func parseType(s string) (Type, error) {
	switch s {
	case "uint256", "int256":
		return Uint256, nil
	case "uint128", "int128":
		return Uint128, nil
	case "uint64", "int64":
		return Uint64, nil
	case "uint32", "int32":
		return Uint32, nil
	case "uint8", "int8":
		return Uint8, nil
	case "bool":
		return Bool, nil
	case "address":
		return Address, nil
	default:
		return 0, &Error{Kind: UnsupportedType, Detail: s}
	}
}
