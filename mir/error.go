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

package mir

import "fmt"

// ErrorKind names why hir->mir lowering failed (spec §7).
type ErrorKind int

const (
	// TypeMismatch is raised when a Bool/Number cast cannot be inserted,
	// or a Result region can't be decoded against the ABI outputs.
	TypeMismatch ErrorKind = iota
	// UnsupportedOp is raised for an opcode with no Move equivalent:
	// EXTCODE*, BLOCKHASH, chain-metadata reads, and
	// any non-constant calldata offset (spec §4.7).
	UnsupportedOp
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case UnsupportedOp:
		return "UnsupportedOp"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error reports a lowering failure.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
