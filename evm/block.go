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

import "sort"

// BlockId identifies a basic block by the offset of its first
// instruction. It is also a valid JUMP/JUMPI target.
type BlockId = Offset

// InstructionBlock is one basic block: a contiguous run of instructions
// ending at a control-flow terminator (or at the start of the next
// block).
type InstructionBlock struct {
	Id           BlockId
	Instructions []Instruction
}

// Terminator returns the block's last instruction, which classifies how
// control leaves the block (JUMP/JUMPI/STOP/RETURN/REVERT/INVALID/
// SELFDESTRUCT, or a plain fall-through into the next block).
func (b *InstructionBlock) Terminator() Instruction {
	return b.Instructions[len(b.Instructions)-1]
}

// FallsThrough reports whether control can reach the instruction
// immediately following the block without an explicit jump.
func (b *InstructionBlock) FallsThrough() bool {
	return !b.Terminator().Op.IsTerminator()
}

// End returns the offset one past the block's last instruction.
func (b *InstructionBlock) End() Offset {
	return b.Terminator().End()
}

// BlockMap is a mapping from BlockId to the block starting there.
type BlockMap map[BlockId]*InstructionBlock

// SortedIds returns the block ids in ascending order, for deterministic
// iteration (spec §5's ordering requirement).
func (m BlockMap) SortedIds() []BlockId {
	ids := make([]BlockId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Partition groups an instruction stream into basic blocks. A new block
// begins at offset 0, at every JUMPDEST, and at the instruction
// immediately after any terminator; it is closed at the next
// terminator (inclusive) or at the instruction preceding the next
// JUMPDEST. Unreachable blocks are retained — reachability is a flow-
// builder concern, not a partitioning one, because a constructor/runtime
// split performed afterwards can make a presently-unreachable block
// reachable (it becomes the runtime section's entry).
func Partition(instrs []Instruction) BlockMap {
	blocks := make(BlockMap)
	if len(instrs) == 0 {
		return blocks
	}

	starts := map[Offset]bool{instrs[0].Offset: true}
	for i, in := range instrs {
		if in.Op == JUMPDEST {
			starts[in.Offset] = true
		}
		if in.Op.IsTerminator() && i+1 < len(instrs) {
			starts[instrs[i+1].Offset] = true
		}
	}

	var cur *InstructionBlock
	for _, in := range instrs {
		if starts[in.Offset] {
			cur = &InstructionBlock{Id: in.Offset}
			blocks[in.Offset] = cur
		}
		cur.Instructions = append(cur.Instructions, in)
	}
	return blocks
}
