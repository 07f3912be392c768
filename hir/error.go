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

package hir

import (
	"fmt"

	"github.com/pontem-network/e2m-go/evm"
)

// ErrorKind classifies an HIR executor failure (spec §7's ExecutionError).
type ErrorKind int

const (
	StackUnderflow ErrorKind = iota
	UnknownOpcode
	UnsupportedOp
)

func (k ErrorKind) String() string {
	switch k {
	case StackUnderflow:
		return "StackUnderflow"
	case UnknownOpcode:
		return "UnknownOpcode"
	case UnsupportedOp:
		return "UnsupportedOp"
	default:
		return "Unknown"
	}
}

// Error reports an executor failure at a specific offset.
type Error struct {
	Kind   ErrorKind
	Offset evm.Offset
	Op     evm.OpCode
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("hir: %s at offset %d (%s): %s", e.Kind, e.Offset, e.Op, e.Detail)
	}
	return fmt.Sprintf("hir: %s at offset %d (%s)", e.Kind, e.Offset, e.Op)
}
