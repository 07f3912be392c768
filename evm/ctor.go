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

// Split is the result of the constructor/runtime split (spec §4.3).
type Split struct {
	HasCtor bool
	Entry   Offset // E: runtime section's entry offset in the original stream
	Ctor    BlockMap
	Main    BlockMap // rebased so the runtime entry point is offset 0
}

// findRuntimeEntry scans instrs for the first CODECOPY whose destination
// operand is the constant 0; its second operand (src) is returned as the
// runtime section's entry offset. Both operands must be statically
// resolvable via ConstStack, matching how solc always emits this pattern
// (a linear PUSH;PUSH;PUSH;CODECOPY sequence with no intervening control
// flow). If no such CODECOPY exists, ok is false: the whole program is
// runtime code and the constructor is empty.
func findRuntimeEntry(instrs []Instruction) (entry Offset, ok bool) {
	stack := NewConstStack()
	for _, in := range instrs {
		if in.Op == CODECOPY {
			dest := stack.Pop()
			src := stack.Pop()
			stack.Pop() // length; unused here
			if dest != nil && src != nil && dest.IsZero() {
				return src.Uint64(), true
			}
			continue
		}
		stack.Step(in)
	}
	return 0, false
}

// SplitConstructor partitions code into constructor and runtime
// instruction streams using the CODECOPY(dest=0, src=E, len) pattern,
// then block-partitions each side. The main (runtime) side is rebased so
// its blocks are keyed by offset-from-E, matching how the rest of the
// pipeline — and the final emitted module — addresses runtime code.
func SplitConstructor(code []byte) (*Split, error) {
	instrs, err := Decode(code)
	if err != nil {
		return nil, err
	}

	entry, ok := findRuntimeEntry(instrs)
	if !ok {
		return &Split{HasCtor: false, Main: Partition(instrs)}, nil
	}

	var ctorInstrs, mainInstrs []Instruction
	for _, in := range instrs {
		if in.Offset < entry {
			ctorInstrs = append(ctorInstrs, in)
		} else {
			mainInstrs = append(mainInstrs, Instruction{
				Offset: in.Offset - entry,
				Op:     in.Op,
				Arg:    in.Arg,
			})
		}
	}

	return &Split{
		HasCtor: true,
		Entry:   entry,
		Ctor:    Partition(ctorInstrs),
		Main:    Partition(mainInstrs),
	}, nil
}
