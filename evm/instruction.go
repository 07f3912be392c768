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

package evm

import "fmt"

// Offset is a non-negative byte position within the EVM code stream.
type Offset = uint64

// Instruction pairs a decoded opcode with its starting offset and, for
// PUSH opcodes, its immediate payload.
type Instruction struct {
	Offset Offset
	Op     OpCode
	Arg    []byte // push immediate, nil for non-push opcodes
}

// Size is the instruction's total encoded size in bytes.
func (in Instruction) Size() int { return 1 + len(in.Arg) }

// End returns the offset one past the instruction's last byte.
func (in Instruction) End() Offset { return in.Offset + Offset(in.Size()) }

// String renders "offset: MNEMONIC [0xARG]".
func (in Instruction) String() string {
	if len(in.Arg) > 0 {
		return fmt.Sprintf("%d: %s 0x%x", in.Offset, in.Op, in.Arg)
	}
	return fmt.Sprintf("%d: %s", in.Offset, in.Op)
}
