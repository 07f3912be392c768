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

package abi

import "fmt"

// ErrorKind classifies an ABI-loading failure (spec §7's AbiError).
type ErrorKind int

const (
	Malformed ErrorKind = iota
	UnsupportedType
)

func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "Malformed"
	case UnsupportedType:
		return "UnsupportedType"
	default:
		return "Unknown"
	}
}

// Error reports a failure loading or interpreting an ABI JSON document.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("abi: %s: %s", e.Kind, e.Detail)
}
